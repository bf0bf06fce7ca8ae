package keystone

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is() checks. Together they form the complete
// failure classification of the bridge: no other error kinds, and no
// primitive-library error values, cross the boundary.
var (
	// ErrInvalidSecurityLevel is returned when a level token is not
	// recognized for the requested algorithm family.
	ErrInvalidSecurityLevel = errors.New("unrecognized security level")

	// ErrInvalidInput is returned when a required buffer is empty or its
	// length does not match the resolved algorithm profile.
	ErrInvalidInput = errors.New("invalid input")

	// ErrAllocationFailure is returned when an output buffer cannot be
	// allocated. It is part of the classification shared with the native
	// bindings of this protocol; the pure-Go implementation does not
	// produce it.
	ErrAllocationFailure = errors.New("buffer allocation failed")

	// ErrPrimitiveFailure is returned when the underlying cryptographic
	// operation itself reports failure.
	ErrPrimitiveFailure = errors.New("cryptographic operation failed")

	// ErrIntegrity is returned when a hybrid ciphertext fails its
	// authentication check on decrypt.
	ErrIntegrity = errors.New("ciphertext integrity check failed")
)

// LengthError reports a buffer whose length does not match the fixed length
// the resolved profile requires. It matches ErrInvalidInput under errors.Is.
type LengthError struct {
	// Field names the offending argument, e.g. "publicKey".
	Field string
	// Want is the exact length the profile requires.
	Want int
	// Got is the length that was supplied.
	Got int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("invalid input: %s length = %d, want %d", e.Field, e.Got, e.Want)
}

// Is implements errors.Is for sentinel error matching.
func (e *LengthError) Is(target error) bool {
	return target == ErrInvalidInput
}
