// Package pqc is the facade over the circl post-quantum primitives.
//
// Each function uses exactly one scheme instance for the duration of one
// call and holds no state across calls, so concurrent use from multiple
// goroutines needs no external locking. Key material enters and leaves as
// raw byte slices; callers are expected to have validated lengths against
// the resolved profile before calling in.
package pqc
