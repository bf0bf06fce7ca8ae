// Package alg maps security-level tokens to algorithm profiles.
//
// Each supported level token resolves to exactly one circl scheme and a
// Profile describing the fixed byte lengths every buffer crossing the
// boundary must match. Resolution is deterministic and has no side effects.
package alg

import (
	"errors"
	"fmt"

	"github.com/cloudflare/circl/kem"
	"github.com/cloudflare/circl/kem/mlkem/mlkem1024"
	"github.com/cloudflare/circl/kem/mlkem/mlkem512"
	"github.com/cloudflare/circl/kem/mlkem/mlkem768"
	"github.com/cloudflare/circl/sign"
	"github.com/cloudflare/circl/sign/mldsa/mldsa44"
	"github.com/cloudflare/circl/sign/mldsa/mldsa65"
	"github.com/cloudflare/circl/sign/mldsa/mldsa87"
)

// Family identifies which algorithm family a level token belongs to.
// Tokens are not interchangeable across families: "768" names an ML-KEM
// parameter set, "3" names an ML-DSA parameter set.
type Family string

const (
	// FamilyKEM is the key-encapsulation family (ML-KEM, FIPS 203).
	FamilyKEM Family = "kem"
	// FamilySignature is the digital-signature family (ML-DSA, FIPS 204).
	FamilySignature Family = "signature"
)

// ErrUnknownLevel is returned when a level token is not recognized for the
// requested family.
var ErrUnknownLevel = errors.New("unknown security level")

// Profile describes one algorithm instance and its fixed length contract.
type Profile struct {
	// Family is the algorithm family the profile belongs to.
	Family Family
	// Level is the token the profile was resolved from.
	Level string
	// Name is the algorithm identifier, e.g. "ML-KEM-768" or "ML-DSA-65".
	Name string
	// PublicKeySize is the exact public key length in bytes.
	PublicKeySize int
	// SecretKeySize is the exact secret key length in bytes.
	SecretKeySize int
	// CiphertextSize is the exact KEM ciphertext length (KEM family) or the
	// maximum signature length (signature family) in bytes.
	CiphertextSize int
	// SharedKeySize is the shared secret length in bytes. KEM family only;
	// zero for signature profiles.
	SharedKeySize int
}

// KEMScheme returns the circl KEM scheme for a level token.
// Recognized tokens are "512", "768" and "1024".
func KEMScheme(level string) (kem.Scheme, error) {
	switch level {
	case "512":
		return mlkem512.Scheme(), nil
	case "768":
		return mlkem768.Scheme(), nil
	case "1024":
		return mlkem1024.Scheme(), nil
	default:
		return nil, fmt.Errorf("%w: %q is not a KEM level (want 512, 768 or 1024)", ErrUnknownLevel, level)
	}
}

// SigningScheme returns the circl signature scheme for a level token.
// Recognized tokens are "2", "3" and "5", matching the NIST category of the
// corresponding ML-DSA parameter set.
func SigningScheme(level string) (sign.Scheme, error) {
	switch level {
	case "2":
		return mldsa44.Scheme(), nil
	case "3":
		return mldsa65.Scheme(), nil
	case "5":
		return mldsa87.Scheme(), nil
	default:
		return nil, fmt.Errorf("%w: %q is not a signature level (want 2, 3 or 5)", ErrUnknownLevel, level)
	}
}

// ResolveKEM resolves a KEM level token to its scheme and profile.
func ResolveKEM(level string) (*Profile, kem.Scheme, error) {
	scheme, err := KEMScheme(level)
	if err != nil {
		return nil, nil, err
	}
	return &Profile{
		Family:         FamilyKEM,
		Level:          level,
		Name:           scheme.Name(),
		PublicKeySize:  scheme.PublicKeySize(),
		SecretKeySize:  scheme.PrivateKeySize(),
		CiphertextSize: scheme.CiphertextSize(),
		SharedKeySize:  scheme.SharedKeySize(),
	}, scheme, nil
}

// ResolveSigning resolves a signature level token to its scheme and profile.
func ResolveSigning(level string) (*Profile, sign.Scheme, error) {
	scheme, err := SigningScheme(level)
	if err != nil {
		return nil, nil, err
	}
	return &Profile{
		Family:         FamilySignature,
		Level:          level,
		Name:           scheme.Name(),
		PublicKeySize:  scheme.PublicKeySize(),
		SecretKeySize:  scheme.PrivateKeySize(),
		CiphertextSize: scheme.SignatureSize(),
	}, scheme, nil
}
