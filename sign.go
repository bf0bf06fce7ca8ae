package keystone

import (
	"github.com/Brandon1138/keystone/internal/pqc"
)

// GenerateSigningKeypair creates a new ML-DSA keypair for the given level.
func (b *Bridge) GenerateSigningKeypair(level SigningLevel) (*Keypair, error) {
	profile, scheme, err := resolveSigning(level)
	if err != nil {
		return nil, err
	}

	publicKey, secretKey, err := pqc.GenerateSigningKeyPair(scheme, b.rand)
	if err != nil {
		return nil, primitiveErr("keypair", profile.Name, err)
	}

	b.logger.Debug("generated signing keypair",
		"alg", profile.Name,
		"public_key_len", len(publicKey),
		"secret_key_len", len(secretKey))

	return &Keypair{PublicKey: publicKey, SecretKey: secretKey}, nil
}

// Sign signs message with secretKey. The message must be non-empty and the
// secret key must match the level's exact secret key length.
func (b *Bridge) Sign(level SigningLevel, secretKey, message []byte) ([]byte, error) {
	profile, scheme, err := resolveSigning(level)
	if err != nil {
		return nil, err
	}
	if err := checkLen("secretKey", secretKey, profile.SecretKeySize); err != nil {
		return nil, err
	}
	if err := checkNonEmpty("message", message); err != nil {
		return nil, err
	}

	signature, err := pqc.Sign(scheme, secretKey, message)
	if err != nil {
		return nil, primitiveErr("sign", profile.Name, err)
	}

	b.logger.Debug("signed", "alg", profile.Name, "message_len", len(message), "signature_len", len(signature))

	return signature, nil
}

// Verify checks signature over message with publicKey. It distinguishes
// three outcomes: (true, nil) for a valid signature, (false, nil) for a
// well-formed signature that fails cryptographically, and (false, err) when
// the check could not be run at all (bad level, wrong buffer lengths).
func (b *Bridge) Verify(level SigningLevel, publicKey, message, signature []byte) (bool, error) {
	profile, scheme, err := resolveSigning(level)
	if err != nil {
		return false, err
	}
	if err := checkLen("publicKey", publicKey, profile.PublicKeySize); err != nil {
		return false, err
	}
	if err := checkNonEmpty("message", message); err != nil {
		return false, err
	}
	if err := checkLen("signature", signature, profile.CiphertextSize); err != nil {
		return false, err
	}

	ok, err := pqc.Verify(scheme, publicKey, message, signature)
	if err != nil {
		return false, primitiveErr("verify", profile.Name, err)
	}

	b.logger.Debug("verified", "alg", profile.Name, "valid", ok)

	return ok, nil
}
