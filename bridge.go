package keystone

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/cloudflare/circl/kem"
	"github.com/cloudflare/circl/sign"

	"github.com/Brandon1138/keystone/internal/alg"
)

// KEMLevel selects an ML-KEM parameter set.
type KEMLevel string

const (
	// KEMLevel512 selects ML-KEM-512.
	KEMLevel512 KEMLevel = "512"
	// KEMLevel768 selects ML-KEM-768.
	KEMLevel768 KEMLevel = "768"
	// KEMLevel1024 selects ML-KEM-1024.
	KEMLevel1024 KEMLevel = "1024"
)

// SigningLevel selects an ML-DSA parameter set by NIST security category.
type SigningLevel string

const (
	// SigningLevel2 selects ML-DSA-44.
	SigningLevel2 SigningLevel = "2"
	// SigningLevel3 selects ML-DSA-65.
	SigningLevel3 SigningLevel = "3"
	// SigningLevel5 selects ML-DSA-87.
	SigningLevel5 SigningLevel = "5"
)

// Keypair is a freshly generated public/secret key pair. Ownership passes
// to the caller as a whole; the bridge keeps no copy after returning.
type Keypair struct {
	// PublicKey is the raw public key bytes.
	PublicKey []byte
	// SecretKey is the raw secret key bytes. Handle securely.
	SecretKey []byte
}

// Encapsulation is the result of one KEM encapsulation. Both fields are
// always populated together.
type Encapsulation struct {
	// KEMCiphertext is sent to the secret key holder.
	KEMCiphertext []byte
	// SharedSecret is the locally established secret.
	SharedSecret []byte
}

// Bridge is the boundary adapter over the post-quantum primitives. The zero
// configuration from New is ready for production use; a Bridge holds no
// per-call state and is safe for concurrent use.
type Bridge struct {
	logger *slog.Logger
	rand   io.Reader
}

// New creates a bridge.
func New(opts ...Option) *Bridge {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &Bridge{logger: cfg.logger, rand: cfg.rand}
}

// resolveKEM maps a KEM level to its profile and scheme, classifying
// unknown tokens.
func resolveKEM(level KEMLevel) (*alg.Profile, kem.Scheme, error) {
	profile, scheme, err := alg.ResolveKEM(string(level))
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %q (KEM levels are 512, 768, 1024)", ErrInvalidSecurityLevel, level)
	}
	return profile, scheme, nil
}

// resolveSigning maps a signing level to its profile and scheme,
// classifying unknown tokens.
func resolveSigning(level SigningLevel) (*alg.Profile, sign.Scheme, error) {
	profile, scheme, err := alg.ResolveSigning(string(level))
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %q (signature levels are 2, 3, 5)", ErrInvalidSecurityLevel, level)
	}
	return profile, scheme, nil
}

// checkLen enforces the profile's exact length contract for one argument.
func checkLen(field string, buf []byte, want int) error {
	if len(buf) != want {
		return &LengthError{Field: field, Want: want, Got: len(buf)}
	}
	return nil
}

// checkNonEmpty enforces presence of a variable-length argument.
func checkNonEmpty(field string, buf []byte) error {
	if len(buf) == 0 {
		return fmt.Errorf("%w: %s must not be empty", ErrInvalidInput, field)
	}
	return nil
}

// primitiveErr classifies a facade failure without letting the underlying
// error value join the errors.Is chain.
func primitiveErr(op, algorithm string, err error) error {
	return fmt.Errorf("%w: %s %s: %v", ErrPrimitiveFailure, algorithm, op, err)
}
