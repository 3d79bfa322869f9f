package main

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	// Samples is the number of values drawn per operation.
	Samples int `env:"SAMPLES" envDefault:"100000"`

	// Seed makes the run reproducible. Zero uses the shared, entropy seeded sampler.
	Seed uint64 `env:"SEED"`

	Bins int `env:"BINS" envDefault:"10"`

	// Profile enables profiling, either "cpu" or "mem".
	Profile     string `env:"PROFILE"`
	ProfilePath string `env:"PROFILE_PATH" envDefault:"."`

	LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"info"`
}

// ParseConfig loads the configuration from SAMPLESTATS_ prefixed environment variables.
func ParseConfig(environ map[string]string) (Config, error) {
	var config Config

	opts := env.Options{Prefix: "SAMPLESTATS_"}
	if environ != nil {
		opts.Environment = environ
	}

	if err := env.ParseWithOptions(&config, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}

	return config, nil
}

func (c Config) Validate() error {
	if c.Samples <= 0 {
		return fmt.Errorf("samples must be positive, got %d", c.Samples)
	}

	if c.Bins <= 0 {
		return fmt.Errorf("bins must be positive, got %d", c.Bins)
	}

	switch c.Profile {
	case "", "cpu", "mem":
	default:
		return fmt.Errorf("unknown profile mode %q", c.Profile)
	}

	return nil
}
