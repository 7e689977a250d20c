package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// envConfig lists the settings that may come from the environment.
type envConfig struct {
	Verbosity   int    `env:"MOVETRACK_VERBOSITY"`
	OnCollision string `env:"MOVETRACK_COLLISION_POLICY"`
}

// LoadEnv overlays environment variables onto cfg and validates the result.
// Unset variables leave the existing values alone.
func LoadEnv(cfg *Config) error {
	return loadEnv(cfg, env.Options{})
}

// LoadEnvFrom is LoadEnv reading from environ instead of the process environment.
func LoadEnvFrom(cfg *Config, environ map[string]string) error {
	return loadEnv(cfg, env.Options{Environment: environ})
}

func loadEnv(cfg *Config, opts env.Options) error {
	ec := envConfig{
		Verbosity:   cfg.Verbosity,
		OnCollision: string(cfg.OnCollision),
	}
	if err := env.ParseWithOptions(&ec, opts); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	cfg.Verbosity = ec.Verbosity
	cfg.OnCollision = CollisionPolicy(ec.OnCollision)
	return cfg.Validate()
}
