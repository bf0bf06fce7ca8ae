package keystone

import "github.com/Brandon1138/keystone/internal/hybrid"

// Profile describes the fixed byte-length contract of one algorithm
// instance. Every buffer crossing the bridge for that level must match
// these lengths exactly.
type Profile struct {
	// Algorithm is the instance name, e.g. "ML-KEM-768" or "ML-DSA-87".
	Algorithm string
	// PublicKeySize is the exact public key length in bytes.
	PublicKeySize int
	// SecretKeySize is the exact secret key length in bytes.
	SecretKeySize int
	// CiphertextSize is the exact KEM ciphertext length in bytes.
	// Zero for signature profiles.
	CiphertextSize int
	// SignatureSize is the signature length in bytes.
	// Zero for KEM profiles.
	SignatureSize int
	// SharedSecretSize is the shared secret length in bytes.
	// Zero for signature profiles.
	SharedSecretSize int
}

// KEMProfile returns the length contract for a KEM level.
func KEMProfile(level KEMLevel) (*Profile, error) {
	profile, _, err := resolveKEM(level)
	if err != nil {
		return nil, err
	}
	return &Profile{
		Algorithm:        profile.Name,
		PublicKeySize:    profile.PublicKeySize,
		SecretKeySize:    profile.SecretKeySize,
		CiphertextSize:   profile.CiphertextSize,
		SharedSecretSize: profile.SharedKeySize,
	}, nil
}

// SigningProfile returns the length contract for a signature level.
func SigningProfile(level SigningLevel) (*Profile, error) {
	profile, _, err := resolveSigning(level)
	if err != nil {
		return nil, err
	}
	return &Profile{
		Algorithm:     profile.Name,
		PublicKeySize: profile.PublicKeySize,
		SecretKeySize: profile.SecretKeySize,
		SignatureSize: profile.CiphertextSize,
	}, nil
}

// EncryptOverhead returns the fixed number of bytes Encrypt adds on top of
// the plaintext for a level: KEM ciphertext, nonce and authentication tag.
func EncryptOverhead(level KEMLevel) (int, error) {
	profile, err := KEMProfile(level)
	if err != nil {
		return 0, err
	}
	return profile.CiphertextSize + hybrid.Overhead, nil
}
