// Command keystone exercises the bridge from the shell: generating
// keypairs, signing and verifying files, and encrypting small payloads.
//
// Keypairs are stored as JSON export envelopes; binary values on stdout are
// base64url. Default levels come from KEYSTONE_KEM_LEVEL and
// KEYSTONE_SIGNING_LEVEL, loaded from a .env file when present.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/Brandon1138/keystone"
	"github.com/Brandon1138/keystone/internal/b64"
)

func main() {
	// Load .env if it exists (won't error if missing).
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		fatal("usage: keystone <command> [args]\ncommands: keygen, sign, verify, encapsulate, decapsulate, encrypt, decrypt")
	}

	bridge := keystone.New()

	switch os.Args[1] {
	case "keygen":
		keygen(bridge, os.Args[2:])
	case "sign":
		signFile(bridge, os.Args[2:])
	case "verify":
		verifyFile(bridge, os.Args[2:])
	case "encapsulate":
		encapsulate(bridge, os.Args[2:])
	case "decapsulate":
		decapsulate(bridge, os.Args[2:])
	case "encrypt":
		encryptFile(bridge, os.Args[2:])
	case "decrypt":
		decryptFile(bridge, os.Args[2:])
	default:
		fatal("unknown command: %s", os.Args[1])
	}
}

func keygen(bridge *keystone.Bridge, args []string) {
	if len(args) < 1 {
		fatal("usage: keystone keygen kem|sign [level]")
	}

	var exported *keystone.ExportedKeypair
	switch args[0] {
	case "kem":
		level := keystone.KEMLevel(argOrEnv(args, 1, "KEYSTONE_KEM_LEVEL", "768"))
		kp, err := bridge.GenerateKEMKeypair(level)
		if err != nil {
			fatal("generate KEM keypair: %v", err)
		}
		exported, err = keystone.ExportKEMKeypair(level, kp)
		if err != nil {
			fatal("export keypair: %v", err)
		}
	case "sign":
		level := keystone.SigningLevel(argOrEnv(args, 1, "KEYSTONE_SIGNING_LEVEL", "3"))
		kp, err := bridge.GenerateSigningKeypair(level)
		if err != nil {
			fatal("generate signing keypair: %v", err)
		}
		exported, err = keystone.ExportSigningKeypair(level, kp)
		if err != nil {
			fatal("export keypair: %v", err)
		}
	default:
		fatal("unknown family: %s (want kem or sign)", args[0])
	}

	if err := json.NewEncoder(os.Stdout).Encode(exported); err != nil {
		fatal("encode export: %v", err)
	}
}

func signFile(bridge *keystone.Bridge, args []string) {
	if len(args) < 2 {
		fatal("usage: keystone sign <keyfile> <messagefile>")
	}

	level, kp := loadKeypair(args[0])
	message := readFile(args[1])

	sig, err := bridge.Sign(keystone.SigningLevel(level), kp.SecretKey, message)
	if err != nil {
		fatal("sign: %v", err)
	}
	fmt.Println(b64.Encode(sig))
}

func verifyFile(bridge *keystone.Bridge, args []string) {
	if len(args) < 3 {
		fatal("usage: keystone verify <keyfile> <messagefile> <sigfile>")
	}

	level, kp := loadKeypair(args[0])
	message := readFile(args[1])

	sig, err := b64.Decode(string(readFile(args[2])))
	if err != nil {
		fatal("decode signature: %v", err)
	}

	ok, err := bridge.Verify(keystone.SigningLevel(level), kp.PublicKey, message, sig)
	if err != nil {
		fatal("verify: %v", err)
	}
	if !ok {
		fmt.Println("signature: REJECTED")
		os.Exit(1)
	}
	fmt.Println("signature: valid")
}

func encapsulate(bridge *keystone.Bridge, args []string) {
	if len(args) < 1 {
		fatal("usage: keystone encapsulate <keyfile>")
	}

	level, kp := loadKeypair(args[0])

	enc, err := bridge.Encapsulate(keystone.KEMLevel(level), kp.PublicKey)
	if err != nil {
		fatal("encapsulate: %v", err)
	}

	out := map[string]string{
		"kemCiphertext": b64.Encode(enc.KEMCiphertext),
		"sharedSecret":  b64.Encode(enc.SharedSecret),
	}
	if err := json.NewEncoder(os.Stdout).Encode(out); err != nil {
		fatal("encode result: %v", err)
	}
}

func decapsulate(bridge *keystone.Bridge, args []string) {
	if len(args) < 2 {
		fatal("usage: keystone decapsulate <keyfile> <ciphertextfile>")
	}

	level, kp := loadKeypair(args[0])

	kemCiphertext, err := b64.Decode(string(readFile(args[1])))
	if err != nil {
		fatal("decode KEM ciphertext: %v", err)
	}

	secret, err := bridge.Decapsulate(keystone.KEMLevel(level), kp.SecretKey, kemCiphertext)
	if err != nil {
		fatal("decapsulate: %v", err)
	}
	fmt.Println(b64.Encode(secret))
}

func encryptFile(bridge *keystone.Bridge, args []string) {
	if len(args) < 2 {
		fatal("usage: keystone encrypt <keyfile> <plaintextfile>")
	}

	level, kp := loadKeypair(args[0])
	plaintext := readFile(args[1])

	ciphertext, err := bridge.Encrypt(keystone.KEMLevel(level), kp.PublicKey, plaintext)
	if err != nil {
		fatal("encrypt: %v", err)
	}
	fmt.Println(b64.Encode(ciphertext))
}

func decryptFile(bridge *keystone.Bridge, args []string) {
	if len(args) < 2 {
		fatal("usage: keystone decrypt <keyfile> <ciphertextfile>")
	}

	level, kp := loadKeypair(args[0])

	ciphertext, err := b64.Decode(string(readFile(args[1])))
	if err != nil {
		fatal("decode ciphertext: %v", err)
	}

	plaintext, err := bridge.Decrypt(keystone.KEMLevel(level), kp.SecretKey, ciphertext)
	if err != nil {
		fatal("decrypt: %v", err)
	}
	os.Stdout.Write(plaintext)
}

// loadKeypair reads and validates a JSON export envelope, returning the
// level token alongside the decoded keys.
func loadKeypair(path string) (string, *keystone.Keypair) {
	data := readFile(path)

	var exported keystone.ExportedKeypair
	if err := json.Unmarshal(data, &exported); err != nil {
		fatal("parse keyfile %s: %v", path, err)
	}

	kp, err := exported.Keypair()
	if err != nil {
		fatal("invalid keyfile %s: %v", path, err)
	}
	return exported.Level, kp
}

func readFile(path string) []byte {
	data, err := os.ReadFile(path)
	if err != nil {
		fatal("read %s: %v", path, err)
	}
	return data
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

func argOrEnv(args []string, i int, envKey, fallback string) string {
	if len(args) > i && args[i] != "" {
		return args[i]
	}
	if v := os.Getenv(envKey); v != "" {
		return v
	}
	return fallback
}
