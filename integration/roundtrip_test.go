//go:build integration

package integration

import (
	"bytes"
	"crypto/rand"
	"errors"
	"os"
	"strconv"
	"testing"

	"github.com/joho/godotenv"

	"github.com/Brandon1138/keystone"
)

// soakBytes is the payload size for the large-message pass, overridable
// with KEYSTONE_SOAK_BYTES.
var soakBytes = 1 << 20

func TestMain(m *testing.M) {
	// Load .env file if it exists (won't error if missing)
	if err := godotenv.Load("../.env"); err != nil {
		os.Stderr.WriteString("Note: .env file not found at project root\n")
	}

	if v := os.Getenv("KEYSTONE_SOAK_BYTES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			os.Stderr.WriteString("Invalid KEYSTONE_SOAK_BYTES: " + v + "\n")
			os.Exit(1)
		}
		soakBytes = n
	}

	os.Exit(m.Run())
}

func TestAllLevelsLargePayloads(t *testing.T) {
	bridge := keystone.New()

	payload := make([]byte, soakBytes)
	if _, err := rand.Read(payload); err != nil {
		t.Fatalf("rand.Read() error = %v", err)
	}

	for _, level := range []keystone.KEMLevel{keystone.KEMLevel512, keystone.KEMLevel768, keystone.KEMLevel1024} {
		t.Run("kem-"+string(level), func(t *testing.T) {
			kp, err := bridge.GenerateKEMKeypair(level)
			if err != nil {
				t.Fatalf("GenerateKEMKeypair() error = %v", err)
			}

			ciphertext, err := bridge.Encrypt(level, kp.PublicKey, payload)
			if err != nil {
				t.Fatalf("Encrypt() error = %v", err)
			}
			plaintext, err := bridge.Decrypt(level, kp.SecretKey, ciphertext)
			if err != nil {
				t.Fatalf("Decrypt() error = %v", err)
			}
			if !bytes.Equal(plaintext, payload) {
				t.Error("large payload round trip failed")
			}
		})
	}

	for _, level := range []keystone.SigningLevel{keystone.SigningLevel2, keystone.SigningLevel3, keystone.SigningLevel5} {
		t.Run("sign-"+string(level), func(t *testing.T) {
			kp, err := bridge.GenerateSigningKeypair(level)
			if err != nil {
				t.Fatalf("GenerateSigningKeypair() error = %v", err)
			}

			sig, err := bridge.Sign(level, kp.SecretKey, payload)
			if err != nil {
				t.Fatalf("Sign() error = %v", err)
			}
			ok, err := bridge.Verify(level, kp.PublicKey, payload, sig)
			if err != nil {
				t.Fatalf("Verify() error = %v", err)
			}
			if !ok {
				t.Error("Verify() = false for a large valid message")
			}
		})
	}
}

func TestConcurrentBridgeUse(t *testing.T) {
	bridge := keystone.New()

	kp, err := bridge.GenerateKEMKeypair(keystone.KEMLevel768)
	if err != nil {
		t.Fatalf("GenerateKEMKeypair() error = %v", err)
	}

	const workers = 8
	done := make(chan error, workers)
	for i := 0; i < workers; i++ {
		go func() {
			enc, err := bridge.Encapsulate(keystone.KEMLevel768, kp.PublicKey)
			if err != nil {
				done <- err
				return
			}
			secret, err := bridge.Decapsulate(keystone.KEMLevel768, kp.SecretKey, enc.KEMCiphertext)
			if err != nil {
				done <- err
				return
			}
			if !bytes.Equal(secret, enc.SharedSecret) {
				done <- errMismatch
				return
			}
			done <- nil
		}()
	}
	for i := 0; i < workers; i++ {
		if err := <-done; err != nil {
			t.Errorf("worker error = %v", err)
		}
	}
}

var errMismatch = errors.New("shared secret mismatch")
