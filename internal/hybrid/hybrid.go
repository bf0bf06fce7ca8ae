// Package hybrid implements the self-contained hybrid ciphertext container.
//
// A hybrid ciphertext is the concatenation
//
//	KEM ciphertext || nonce (16 bytes) || AES-256-GCM ciphertext+tag
//
// The AES key is derived from the KEM shared secret with HKDF-SHA-512,
// salted with SHA-256 of the KEM ciphertext and bound to the frame nonce,
// so every encapsulation yields an unrelated symmetric key. The GCM tag is
// the integrity check for the payload; a mismatch on open means the frame
// was tampered with or decapsulation produced a non-matching secret
// (ML-KEM's implicit rejection), and no plaintext is released either way.
package hybrid

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"crypto/sha512"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"

	"github.com/Brandon1138/keystone/internal/secmem"
)

const (
	// NonceSize is the per-frame nonce length in bytes.
	NonceSize = 16
	// TagSize is the AES-GCM authentication tag length in bytes.
	TagSize = 16
	// Overhead is the fixed framing overhead beyond the KEM ciphertext and
	// the payload.
	Overhead = NonceSize + TagSize

	aesKeySize   = 32
	gcmNonceSize = 12

	// kdfContext separates keystone hybrid keys from any other use of the
	// same shared secret.
	kdfContext = "keystone:hybrid:v2"
)

var (
	// ErrAuth is returned when the payload fails authentication on open.
	ErrAuth = errors.New("hybrid payload authentication failed")

	// ErrTooShort is returned when a frame cannot hold the fixed fields.
	ErrTooShort = errors.New("hybrid ciphertext too short")
)

// Seal builds a hybrid ciphertext frame from an already-performed
// encapsulation and the plaintext. The nonce is drawn fresh from rng on
// every call.
func Seal(rng io.Reader, kemCiphertext, sharedSecret, plaintext []byte) ([]byte, error) {
	nonce := make([]byte, NonceSize)
	if _, err := io.ReadFull(rng, nonce); err != nil {
		return nil, fmt.Errorf("read nonce: %w", err)
	}

	aead, err := newAEAD(sharedSecret, kemCiphertext, nonce)
	if err != nil {
		return nil, err
	}

	frame := make([]byte, 0, len(kemCiphertext)+NonceSize+len(plaintext)+TagSize)
	frame = append(frame, kemCiphertext...)
	frame = append(frame, nonce...)
	frame = aead.Seal(frame, nonce[:gcmNonceSize], plaintext, nil)
	return frame, nil
}

// Open authenticates and decrypts the tail of a hybrid frame. rest is
// everything after the KEM ciphertext, i.e. nonce || sealed payload; the
// KEM ciphertext and the decapsulated shared secret are passed separately.
// On authentication failure no partial plaintext is returned.
func Open(kemCiphertext, sharedSecret, rest []byte) ([]byte, error) {
	if len(rest) < Overhead {
		return nil, fmt.Errorf("%w: %d bytes after KEM ciphertext, need at least %d", ErrTooShort, len(rest), Overhead)
	}

	nonce := rest[:NonceSize]
	sealed := rest[NonceSize:]

	aead, err := newAEAD(sharedSecret, kemCiphertext, nonce)
	if err != nil {
		return nil, err
	}

	plaintext, err := aead.Open(nil, nonce[:gcmNonceSize], sealed, nil)
	if err != nil {
		return nil, ErrAuth
	}
	return plaintext, nil
}

// newAEAD derives the frame key and constructs the AES-256-GCM instance.
//
// Derivation: HKDF-SHA-512 with the shared secret as input key material,
// SHA-256 of the KEM ciphertext as salt, and context string plus the full
// 16-byte nonce as info. The first 12 nonce bytes double as the GCM nonce;
// key uniqueness comes from the fresh shared secret and the nonce binding.
func newAEAD(sharedSecret, kemCiphertext, nonce []byte) (cipher.AEAD, error) {
	saltHash := sha256.Sum256(kemCiphertext)

	info := make([]byte, 0, len(kdfContext)+NonceSize)
	info = append(info, kdfContext...)
	info = append(info, nonce...)

	key := make([]byte, aesKeySize)
	defer secmem.Zeroize(key)
	if _, err := io.ReadFull(hkdf.New(sha512.New, sharedSecret, saltHash[:], info), key); err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("init cipher: %w", err)
	}
	return cipher.NewGCM(block)
}
