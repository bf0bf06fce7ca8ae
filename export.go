package keystone

import (
	"fmt"
	"time"

	"github.com/Brandon1138/keystone/internal/alg"
	"github.com/Brandon1138/keystone/internal/b64"
)

// ExportVersion is the current keypair export format version.
const ExportVersion = 1

// ErrInvalidExportData is returned when imported keypair data is invalid.
var ErrInvalidExportData = fmt.Errorf("%w: invalid export data", ErrInvalidInput)

// ExportedKeypair is a serializable envelope for one keypair.
// WARNING: it contains private key material - handle securely.
type ExportedKeypair struct {
	// Version is the export format version. MUST be 1.
	Version int `json:"version"`
	// Family is "kem" or "signature".
	Family string `json:"family"`
	// Level is the security-level token the keypair was generated with.
	Level string `json:"level"`
	// Algorithm is the resolved instance name, e.g. "ML-KEM-768".
	Algorithm string `json:"algorithm"`
	// PublicKey is the public key (base64url, profile length decoded).
	PublicKey string `json:"publicKey"`
	// SecretKey is the secret key (base64url, profile length decoded).
	SecretKey string `json:"secretKey"`
	// ExportedAt is the export timestamp. Informational only.
	ExportedAt time.Time `json:"exportedAt"`
}

// ExportKEMKeypair packages a KEM keypair for storage or transfer.
func ExportKEMKeypair(level KEMLevel, kp *Keypair) (*ExportedKeypair, error) {
	profile, _, err := resolveKEM(level)
	if err != nil {
		return nil, err
	}
	return exportKeypair(profile, kp)
}

// ExportSigningKeypair packages a signing keypair for storage or transfer.
func ExportSigningKeypair(level SigningLevel, kp *Keypair) (*ExportedKeypair, error) {
	profile, _, err := resolveSigning(level)
	if err != nil {
		return nil, err
	}
	return exportKeypair(profile, kp)
}

func exportKeypair(profile *alg.Profile, kp *Keypair) (*ExportedKeypair, error) {
	if kp == nil {
		return nil, fmt.Errorf("%w: keypair must not be nil", ErrInvalidInput)
	}
	if err := checkLen("publicKey", kp.PublicKey, profile.PublicKeySize); err != nil {
		return nil, err
	}
	if err := checkLen("secretKey", kp.SecretKey, profile.SecretKeySize); err != nil {
		return nil, err
	}

	return &ExportedKeypair{
		Version:    ExportVersion,
		Family:     string(profile.Family),
		Level:      profile.Level,
		Algorithm:  profile.Name,
		PublicKey:  b64.Encode(kp.PublicKey),
		SecretKey:  b64.Encode(kp.SecretKey),
		ExportedAt: time.Now().UTC(),
	}, nil
}

// Validate checks the envelope before key material is decoded and used.
// Validation stops at the first failure.
func (e *ExportedKeypair) Validate() error {
	if e.Version != ExportVersion {
		return fmt.Errorf("%w: unsupported version %d, expected %d", ErrInvalidExportData, e.Version, ExportVersion)
	}

	var profile *alg.Profile
	switch alg.Family(e.Family) {
	case alg.FamilyKEM:
		p, _, err := alg.ResolveKEM(e.Level)
		if err != nil {
			return fmt.Errorf("%w: unknown KEM level %q", ErrInvalidExportData, e.Level)
		}
		profile = p
	case alg.FamilySignature:
		p, _, err := alg.ResolveSigning(e.Level)
		if err != nil {
			return fmt.Errorf("%w: unknown signature level %q", ErrInvalidExportData, e.Level)
		}
		profile = p
	default:
		return fmt.Errorf("%w: unknown family %q", ErrInvalidExportData, e.Family)
	}

	if e.Algorithm != "" && e.Algorithm != profile.Name {
		return fmt.Errorf("%w: algorithm %q does not match level %q (%s)", ErrInvalidExportData, e.Algorithm, e.Level, profile.Name)
	}

	publicKey, err := b64.Decode(e.PublicKey)
	if err != nil {
		return fmt.Errorf("%w: invalid publicKey encoding", ErrInvalidExportData)
	}
	if len(publicKey) != profile.PublicKeySize {
		return fmt.Errorf("%w: publicKey size %d, expected %d", ErrInvalidExportData, len(publicKey), profile.PublicKeySize)
	}

	secretKey, err := b64.Decode(e.SecretKey)
	if err != nil {
		return fmt.Errorf("%w: invalid secretKey encoding", ErrInvalidExportData)
	}
	if len(secretKey) != profile.SecretKeySize {
		return fmt.Errorf("%w: secretKey size %d, expected %d", ErrInvalidExportData, len(secretKey), profile.SecretKeySize)
	}

	return nil
}

// Keypair decodes the key material after validation.
func (e *ExportedKeypair) Keypair() (*Keypair, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}

	// Validate already proved both fields decode.
	publicKey, _ := b64.Decode(e.PublicKey)
	secretKey, _ := b64.Decode(e.SecretKey)
	return &Keypair{PublicKey: publicKey, SecretKey: secretKey}, nil
}
