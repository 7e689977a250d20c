package config

import (
	"io"
	"time"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// WithLogFile sets the diagnostic writer.
func (b *ConfigBuilder) WithLogFile(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithClock sets the timestamp source.
func (b *ConfigBuilder) WithClock(clock func() time.Time) *ConfigBuilder {
	b.cfg.Clock = clock
	return b
}

// WithCollisionPolicy sets how registry key collisions are handled.
func (b *ConfigBuilder) WithCollisionPolicy(p CollisionPolicy) *ConfigBuilder {
	b.cfg.OnCollision = p
	return b
}
