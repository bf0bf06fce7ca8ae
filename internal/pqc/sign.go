package pqc

import (
	"fmt"
	"io"

	"github.com/cloudflare/circl/sign"

	"github.com/Brandon1138/keystone/internal/secmem"
)

// GenerateSigningKeyPair creates a fresh ML-DSA keypair for the given scheme,
// drawing the key generation seed from rng.
func GenerateSigningKeyPair(s sign.Scheme, rng io.Reader) (publicKey, secretKey []byte, err error) {
	seed := make([]byte, s.SeedSize())
	defer secmem.Zeroize(seed)
	if _, err := io.ReadFull(rng, seed); err != nil {
		return nil, nil, fmt.Errorf("read keypair seed: %w", err)
	}

	pub, priv := s.DeriveKey(seed)

	// MarshalBinary never fails for keys produced by DeriveKey.
	publicKey, _ = pub.MarshalBinary()
	secretKey, _ = priv.MarshalBinary()
	return publicKey, secretKey, nil
}

// Sign signs message with secretKey. The returned slice is exactly as long
// as the scheme wrote it; for ML-DSA that is the scheme's fixed signature
// size, but callers should treat the returned length as authoritative.
func Sign(s sign.Scheme, secretKey, message []byte) ([]byte, error) {
	priv, err := s.UnmarshalBinaryPrivateKey(secretKey)
	if err != nil {
		return nil, fmt.Errorf("parse secret key: %w", err)
	}
	return s.Sign(priv, message, nil), nil
}

// Verify checks signature over message with publicKey. A cryptographically
// failing signature is reported as (false, nil), not as an error; only the
// inability to run the check at all is an error.
func Verify(s sign.Scheme, publicKey, message, signature []byte) (bool, error) {
	pub, err := s.UnmarshalBinaryPublicKey(publicKey)
	if err != nil {
		return false, fmt.Errorf("parse public key: %w", err)
	}
	return s.Verify(pub, message, signature, nil), nil
}
