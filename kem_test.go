package keystone

import (
	"bytes"
	"errors"
	"testing"
)

func TestGenerateKEMKeypairSizes(t *testing.T) {
	b := New()

	tests := []struct {
		level         KEMLevel
		publicKeyLen  int
		secretKeyLen  int
		ciphertextLen int
	}{
		{KEMLevel512, 800, 1632, 768},
		{KEMLevel768, 1184, 2400, 1088},
		{KEMLevel1024, 1568, 3168, 1568},
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			kp, err := b.GenerateKEMKeypair(tt.level)
			if err != nil {
				t.Fatalf("GenerateKEMKeypair(%q) error = %v", tt.level, err)
			}
			if len(kp.PublicKey) != tt.publicKeyLen {
				t.Errorf("PublicKey length = %d, want %d", len(kp.PublicKey), tt.publicKeyLen)
			}
			if len(kp.SecretKey) != tt.secretKeyLen {
				t.Errorf("SecretKey length = %d, want %d", len(kp.SecretKey), tt.secretKeyLen)
			}
		})
	}
}

func TestGenerateKEMKeypairUnknownLevel(t *testing.T) {
	b := New()
	for _, level := range []KEMLevel{"", "256", "2048", "2"} {
		if _, err := b.GenerateKEMKeypair(level); !errors.Is(err, ErrInvalidSecurityLevel) {
			t.Errorf("GenerateKEMKeypair(%q) error = %v, want ErrInvalidSecurityLevel", level, err)
		}
	}
}

func TestKEMAgreementAllLevels(t *testing.T) {
	b := New()

	for _, level := range []KEMLevel{KEMLevel512, KEMLevel768, KEMLevel1024} {
		t.Run(string(level), func(t *testing.T) {
			kp, err := b.GenerateKEMKeypair(level)
			if err != nil {
				t.Fatalf("GenerateKEMKeypair() error = %v", err)
			}

			enc, err := b.Encapsulate(level, kp.PublicKey)
			if err != nil {
				t.Fatalf("Encapsulate() error = %v", err)
			}
			if len(enc.KEMCiphertext) == 0 || len(enc.SharedSecret) == 0 {
				t.Fatal("Encapsulate() returned partial result")
			}
			if len(enc.SharedSecret) != 32 {
				t.Errorf("SharedSecret length = %d, want 32", len(enc.SharedSecret))
			}

			secret, err := b.Decapsulate(level, kp.SecretKey, enc.KEMCiphertext)
			if err != nil {
				t.Fatalf("Decapsulate() error = %v", err)
			}
			if !bytes.Equal(secret, enc.SharedSecret) {
				t.Error("decapsulated secret does not match encapsulated secret")
			}
		})
	}
}

func TestEncapsulateLengthEnforcement(t *testing.T) {
	b := New()

	tests := []struct {
		name      string
		publicKey []byte
	}{
		{"nil", nil},
		{"empty", []byte{}},
		{"short", make([]byte, 1183)},
		{"long", make([]byte, 1185)},
		{"other level's size", make([]byte, 800)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := b.Encapsulate(KEMLevel768, tt.publicKey); !errors.Is(err, ErrInvalidInput) {
				t.Errorf("Encapsulate() error = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestDecapsulateLengthEnforcement(t *testing.T) {
	b := New()

	kp, err := b.GenerateKEMKeypair(KEMLevel768)
	if err != nil {
		t.Fatalf("GenerateKEMKeypair() error = %v", err)
	}
	enc, err := b.Encapsulate(KEMLevel768, kp.PublicKey)
	if err != nil {
		t.Fatalf("Encapsulate() error = %v", err)
	}

	if _, err := b.Decapsulate(KEMLevel768, kp.SecretKey[:2399], enc.KEMCiphertext); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Decapsulate() with short secret key: error = %v, want ErrInvalidInput", err)
	}
	if _, err := b.Decapsulate(KEMLevel768, kp.SecretKey, enc.KEMCiphertext[:1087]); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Decapsulate() with short ciphertext: error = %v, want ErrInvalidInput", err)
	}
	if _, err := b.Decapsulate(KEMLevel512, kp.SecretKey, enc.KEMCiphertext); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Decapsulate() with mismatched level: error = %v, want ErrInvalidInput", err)
	}

	var lenErr *LengthError
	_, err = b.Decapsulate(KEMLevel768, kp.SecretKey, enc.KEMCiphertext[:10])
	if !errors.As(err, &lenErr) {
		t.Fatalf("Decapsulate() error = %v, want *LengthError", err)
	}
	if lenErr.Field != "kemCiphertext" || lenErr.Want != 1088 || lenErr.Got != 10 {
		t.Errorf("LengthError = %+v, want {kemCiphertext 1088 10}", lenErr)
	}
}

func TestKEMProfile(t *testing.T) {
	profile, err := KEMProfile(KEMLevel768)
	if err != nil {
		t.Fatalf("KEMProfile() error = %v", err)
	}
	if profile.Algorithm != "ML-KEM-768" {
		t.Errorf("Algorithm = %s, want ML-KEM-768", profile.Algorithm)
	}
	if profile.PublicKeySize != 1184 || profile.SecretKeySize != 2400 {
		t.Errorf("key sizes = %d/%d, want 1184/2400", profile.PublicKeySize, profile.SecretKeySize)
	}
	if profile.CiphertextSize != 1088 || profile.SharedSecretSize != 32 {
		t.Errorf("ciphertext/shared sizes = %d/%d, want 1088/32", profile.CiphertextSize, profile.SharedSecretSize)
	}
	if profile.SignatureSize != 0 {
		t.Errorf("SignatureSize = %d, want 0 for KEM profile", profile.SignatureSize)
	}

	if _, err := KEMProfile("3"); !errors.Is(err, ErrInvalidSecurityLevel) {
		t.Errorf("KEMProfile(\"3\") error = %v, want ErrInvalidSecurityLevel", err)
	}
}
