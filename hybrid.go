package keystone

import (
	"errors"
	"fmt"

	"github.com/Brandon1138/keystone/internal/hybrid"
	"github.com/Brandon1138/keystone/internal/pqc"
	"github.com/Brandon1138/keystone/internal/secmem"
)

// Encrypt protects plaintext for the holder of the matching secret key and
// returns one self-contained ciphertext:
//
//	KEM ciphertext || nonce (16 bytes) || AES-256-GCM payload+tag
//
// The payload key is derived from a fresh encapsulation with HKDF-SHA-512,
// so every call produces an unrelated ciphertext even for equal plaintexts.
// Callers who want to choose their own symmetric construction should use
// Encapsulate and key it from the shared secret instead.
func (b *Bridge) Encrypt(level KEMLevel, publicKey, plaintext []byte) ([]byte, error) {
	profile, scheme, err := resolveKEM(level)
	if err != nil {
		return nil, err
	}
	if err := checkLen("publicKey", publicKey, profile.PublicKeySize); err != nil {
		return nil, err
	}
	if err := checkNonEmpty("plaintext", plaintext); err != nil {
		return nil, err
	}

	kemCiphertext, sharedSecret, err := pqc.Encapsulate(scheme, publicKey)
	if err != nil {
		return nil, primitiveErr("encapsulate", profile.Name, err)
	}
	defer secmem.Zeroize(sharedSecret)

	frame, err := hybrid.Seal(b.rand, kemCiphertext, sharedSecret, plaintext)
	if err != nil {
		return nil, primitiveErr("seal", profile.Name, err)
	}

	b.logger.Debug("encrypted", "alg", profile.Name, "plaintext_len", len(plaintext), "ciphertext_len", len(frame))

	return frame, nil
}

// Decrypt recovers the plaintext from a ciphertext produced by Encrypt.
// Tampering with any part of the frame, or presenting it to the wrong
// secret key, yields ErrIntegrity and no plaintext.
func (b *Bridge) Decrypt(level KEMLevel, secretKey, ciphertext []byte) ([]byte, error) {
	profile, scheme, err := resolveKEM(level)
	if err != nil {
		return nil, err
	}
	if err := checkLen("secretKey", secretKey, profile.SecretKeySize); err != nil {
		return nil, err
	}
	if minLen := profile.CiphertextSize + hybrid.Overhead; len(ciphertext) < minLen {
		return nil, fmt.Errorf("%w: ciphertext length = %d, want at least %d", ErrInvalidInput, len(ciphertext), minLen)
	}

	kemCiphertext := ciphertext[:profile.CiphertextSize]

	sharedSecret, err := pqc.Decapsulate(scheme, secretKey, kemCiphertext)
	if err != nil {
		return nil, primitiveErr("decapsulate", profile.Name, err)
	}
	defer secmem.Zeroize(sharedSecret)

	plaintext, err := hybrid.Open(kemCiphertext, sharedSecret, ciphertext[profile.CiphertextSize:])
	if err != nil {
		if errors.Is(err, hybrid.ErrAuth) {
			return nil, fmt.Errorf("%w: hybrid payload rejected", ErrIntegrity)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	b.logger.Debug("decrypted", "alg", profile.Name, "plaintext_len", len(plaintext))

	return plaintext, nil
}
