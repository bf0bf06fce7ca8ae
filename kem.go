package keystone

import (
	"github.com/Brandon1138/keystone/internal/pqc"
)

// GenerateKEMKeypair creates a new ML-KEM keypair for the given level.
func (b *Bridge) GenerateKEMKeypair(level KEMLevel) (*Keypair, error) {
	profile, scheme, err := resolveKEM(level)
	if err != nil {
		return nil, err
	}

	publicKey, secretKey, err := pqc.GenerateKEMKeyPair(scheme, b.rand)
	if err != nil {
		return nil, primitiveErr("keypair", profile.Name, err)
	}

	b.logger.Debug("generated KEM keypair",
		"alg", profile.Name,
		"public_key_len", len(publicKey),
		"secret_key_len", len(secretKey))

	return &Keypair{PublicKey: publicKey, SecretKey: secretKey}, nil
}

// Encapsulate establishes a shared secret against publicKey and returns it
// together with the KEM ciphertext that transports it. The caller owns the
// symmetric protection of any payload; use Encrypt for the combined path.
func (b *Bridge) Encapsulate(level KEMLevel, publicKey []byte) (*Encapsulation, error) {
	profile, scheme, err := resolveKEM(level)
	if err != nil {
		return nil, err
	}
	if err := checkLen("publicKey", publicKey, profile.PublicKeySize); err != nil {
		return nil, err
	}

	kemCiphertext, sharedSecret, err := pqc.Encapsulate(scheme, publicKey)
	if err != nil {
		return nil, primitiveErr("encapsulate", profile.Name, err)
	}

	b.logger.Debug("encapsulated", "alg", profile.Name, "ciphertext_len", len(kemCiphertext))

	return &Encapsulation{KEMCiphertext: kemCiphertext, SharedSecret: sharedSecret}, nil
}

// Decapsulate recovers the shared secret from kemCiphertext with secretKey.
//
// ML-KEM rejects implicitly: for a tampered or mismatched ciphertext this
// still succeeds and returns a secret unrelated to the sender's. A nil
// error therefore proves nothing about agreement — confirm the secret
// through an authenticated symmetric layer before trusting it.
func (b *Bridge) Decapsulate(level KEMLevel, secretKey, kemCiphertext []byte) ([]byte, error) {
	profile, scheme, err := resolveKEM(level)
	if err != nil {
		return nil, err
	}
	if err := checkLen("secretKey", secretKey, profile.SecretKeySize); err != nil {
		return nil, err
	}
	if err := checkLen("kemCiphertext", kemCiphertext, profile.CiphertextSize); err != nil {
		return nil, err
	}

	sharedSecret, err := pqc.Decapsulate(scheme, secretKey, kemCiphertext)
	if err != nil {
		return nil, primitiveErr("decapsulate", profile.Name, err)
	}

	b.logger.Debug("decapsulated", "alg", profile.Name)

	return sharedSecret, nil
}
