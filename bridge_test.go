package keystone

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"testing"
)

func TestConcurrentOperations(t *testing.T) {
	// No cross-call state: concurrent calls with different parameters must
	// not interfere.
	b := New()

	kemKeys, err := b.GenerateKEMKeypair(KEMLevel512)
	if err != nil {
		t.Fatalf("GenerateKEMKeypair() error = %v", err)
	}
	sigKeys, err := b.GenerateSigningKeypair(SigningLevel2)
	if err != nil {
		t.Fatalf("GenerateSigningKeypair() error = %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			enc, err := b.Encapsulate(KEMLevel512, kemKeys.PublicKey)
			if err != nil {
				t.Errorf("Encapsulate() error = %v", err)
				return
			}
			secret, err := b.Decapsulate(KEMLevel512, kemKeys.SecretKey, enc.KEMCiphertext)
			if err != nil {
				t.Errorf("Decapsulate() error = %v", err)
				return
			}
			if !bytes.Equal(secret, enc.SharedSecret) {
				t.Error("shared secret mismatch under concurrency")
			}
		}()
		go func() {
			defer wg.Done()
			message := []byte("concurrent signing")
			sig, err := b.Sign(SigningLevel2, sigKeys.SecretKey, message)
			if err != nil {
				t.Errorf("Sign() error = %v", err)
				return
			}
			ok, err := b.Verify(SigningLevel2, sigKeys.PublicKey, message, sig)
			if err != nil {
				t.Errorf("Verify() error = %v", err)
				return
			}
			if !ok {
				t.Error("Verify() = false under concurrency")
			}
		}()
	}
	wg.Wait()
}

type countingHandler struct {
	mu      sync.Mutex
	records int
}

func (h *countingHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *countingHandler) Handle(context.Context, slog.Record) error {
	h.mu.Lock()
	h.records++
	h.mu.Unlock()
	return nil
}

func (h *countingHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h *countingHandler) WithGroup(string) slog.Handler { return h }

func TestLoggerReceivesOperationTraces(t *testing.T) {
	handler := &countingHandler{}
	b := New(WithLogger(slog.New(handler)))

	if _, err := b.GenerateKEMKeypair(KEMLevel512); err != nil {
		t.Fatalf("GenerateKEMKeypair() error = %v", err)
	}

	handler.mu.Lock()
	defer handler.mu.Unlock()
	if handler.records == 0 {
		t.Error("no log records emitted with an injected logger")
	}
}
