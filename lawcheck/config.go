package lawcheck

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/npillmayer/alga/approx"
)

// Config configures a law check run. Every field may be set from the
// environment, see ConfigFromEnv.
type Config struct {
	Samples int   `env:"SAMPLES" envDefault:"1000"` // samples per law
	Seed    int64 `env:"SEED" envDefault:"1"`       // base seed; check i uses Seed+i
	Workers int   `env:"WORKERS" envDefault:"4"`    // checks run concurrently
	// Tolerance overrides the per-type default tolerance of float witnesses.
	Tolerance approx.Tolerance `envPrefix:"TOL_"`
}

// DefaultConfig returns the configuration used if nothing is set.
func DefaultConfig() Config {
	return Config{Samples: 1000, Seed: 1, Workers: 4}
}

// ConfigFromEnv loads a configuration from environment variables prefixed
// with ALGA_, e.g. ALGA_SAMPLES or ALGA_TOL_REL.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "ALGA_"}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg.normalized(), nil
}

func (cfg Config) normalized() Config {
	if cfg.Workers == 0 {
		cfg.Workers = 1
	}
	return cfg
}

func (cfg Config) validate() error {
	if cfg.Samples <= 0 {
		return fmt.Errorf("%w: samples must be > 0", ErrInvalidConfig)
	}
	if cfg.Workers < 0 {
		return fmt.Errorf("%w: workers must be >= 0", ErrInvalidConfig)
	}
	if err := cfg.Tolerance.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}
