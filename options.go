package keystone

import (
	"crypto/rand"
	"io"
	"log/slog"
)

// bridgeConfig holds configuration for the bridge.
type bridgeConfig struct {
	logger *slog.Logger
	rand   io.Reader
}

// Option configures the bridge.
type Option func(*bridgeConfig)

// WithLogger sets a structured logger for operation tracing. The bridge
// logs at debug level only and never logs key material, secrets or
// plaintext. By default logging is disabled.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *bridgeConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithRand sets the randomness source used for keypair seeds and hybrid
// nonces. Intended for tests that need deterministic output; the default is
// crypto/rand.Reader and production callers should leave it alone.
func WithRand(r io.Reader) Option {
	return func(cfg *bridgeConfig) {
		if r != nil {
			cfg.rand = r
		}
	}
}

func defaultConfig() *bridgeConfig {
	return &bridgeConfig{
		logger: slog.New(slog.DiscardHandler),
		rand:   rand.Reader,
	}
}
