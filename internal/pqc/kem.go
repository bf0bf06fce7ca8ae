package pqc

import (
	"fmt"
	"io"

	"github.com/cloudflare/circl/kem"

	"github.com/Brandon1138/keystone/internal/secmem"
)

// GenerateKEMKeyPair creates a fresh ML-KEM keypair for the given scheme,
// drawing the key generation seed from rng.
func GenerateKEMKeyPair(s kem.Scheme, rng io.Reader) (publicKey, secretKey []byte, err error) {
	seed := make([]byte, s.SeedSize())
	defer secmem.Zeroize(seed)
	if _, err := io.ReadFull(rng, seed); err != nil {
		return nil, nil, fmt.Errorf("read keypair seed: %w", err)
	}

	pub, priv := s.DeriveKeyPair(seed)

	// MarshalBinary never fails for keys produced by DeriveKeyPair.
	publicKey, _ = pub.MarshalBinary()
	secretKey, _ = priv.MarshalBinary()
	return publicKey, secretKey, nil
}

// Encapsulate produces a KEM ciphertext and shared secret for publicKey.
// Both outputs are returned together or not at all.
func Encapsulate(s kem.Scheme, publicKey []byte) (kemCiphertext, sharedSecret []byte, err error) {
	pub, err := s.UnmarshalBinaryPublicKey(publicKey)
	if err != nil {
		return nil, nil, fmt.Errorf("parse public key: %w", err)
	}

	kemCiphertext, sharedSecret, err = s.Encapsulate(pub)
	if err != nil {
		return nil, nil, fmt.Errorf("encapsulate: %w", err)
	}
	return kemCiphertext, sharedSecret, nil
}

// Decapsulate recovers the shared secret from a KEM ciphertext.
//
// ML-KEM uses implicit rejection: a tampered ciphertext still decapsulates
// "successfully" but yields a secret unrelated to the sender's. Callers must
// not treat a nil error here as proof of a matching secret; only the
// symmetric layer's authentication can establish that.
func Decapsulate(s kem.Scheme, secretKey, kemCiphertext []byte) ([]byte, error) {
	priv, err := s.UnmarshalBinaryPrivateKey(secretKey)
	if err != nil {
		return nil, fmt.Errorf("parse secret key: %w", err)
	}

	sharedSecret, err := s.Decapsulate(priv, kemCiphertext)
	if err != nil {
		return nil, fmt.Errorf("decapsulate: %w", err)
	}
	return sharedSecret, nil
}
