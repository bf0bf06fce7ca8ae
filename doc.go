// Package keystone exposes post-quantum key establishment and signing to
// applications behind a validated, error-classified boundary.
//
// The cryptographic mathematics live in github.com/cloudflare/circl; this
// package owns everything around them: mapping security-level tokens to
// algorithm instances and their fixed byte-length contracts, validating
// every buffer that crosses the boundary, and classifying every failure
// into a small, stable set of errors.
//
// # Algorithms
//
//   - ML-KEM (NIST FIPS 203) for key encapsulation, levels "512", "768"
//     and "1024".
//   - ML-DSA (NIST FIPS 204) for signatures, levels "2", "3" and "5"
//     (the NIST security category of the parameter set).
//   - AES-256-GCM with HKDF-SHA-512 key derivation for the combined
//     Encrypt/Decrypt path.
//
// Basic usage:
//
//	bridge := keystone.New()
//
//	kp, err := bridge.GenerateKEMKeypair(keystone.KEMLevel768)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	enc, err := bridge.Encapsulate(keystone.KEMLevel768, kp.PublicKey)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	secret, err := bridge.Decapsulate(keystone.KEMLevel768, kp.SecretKey, enc.KEMCiphertext)
//	// secret now equals enc.SharedSecret
//
// # Error classification
//
// Every failure is one of a closed set of sentinel errors, matched with
// errors.Is: [ErrInvalidSecurityLevel], [ErrInvalidInput],
// [ErrAllocationFailure], [ErrPrimitiveFailure] and [ErrIntegrity].
// A signature that is well formed but cryptographically wrong is not a
// failure: Verify reports it as (false, nil) so callers can tell "could
// not check" from "checked and rejected".
//
// # Concurrency
//
// A Bridge holds no per-call state; all operations are safe for concurrent
// use from multiple goroutines. Keypair generation and signing are
// CPU-bound and block the calling goroutine until done; there is no
// cancellation and no internal retry — every failure is terminal for that
// call.
//
// Keep secret keys secure. They should never be logged, transmitted in
// plaintext, or stored in version control.
package keystone
