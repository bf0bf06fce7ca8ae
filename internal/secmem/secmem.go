// Package secmem holds helpers for handling short-lived secret buffers.
package secmem

import "runtime"

// Zeroize overwrites buf with zeros and keeps the slice alive past the loop
// so the stores are not eliminated as dead (golang/go#33325). Go's garbage
// collector may still have moved or copied the data, so this is best effort,
// not a guarantee of sanitized memory.
func Zeroize(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
	runtime.KeepAlive(buf)
}
