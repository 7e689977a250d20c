// Package config provides configuration for matches.
package config

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/lgbarn/chess-move-tracker/internal/errors"
)

// CollisionPolicy decides what a match does when a move would land a piece
// on a registry key already held by a different piece.
type CollisionPolicy string

const (
	// RejectCollisions refuses the move before anything changes.
	RejectCollisions CollisionPolicy = "reject"
	// OverwriteCollisions replaces the existing entry and logs a warning.
	OverwriteCollisions CollisionPolicy = "overwrite"
)

// Valid reports whether p is a known policy.
func (p CollisionPolicy) Valid() bool {
	switch p {
	case RejectCollisions, OverwriteCollisions:
		return true
	default:
		return false
	}
}

// Config holds match configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=warnings, 2=running commentary

	// Registry key collisions
	OnCollision CollisionPolicy

	// Timestamp source for moves; nil means time.Now
	Clock func() time.Time

	// Diagnostic output; nil disables it
	LogFile io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:   1,
		OnCollision: RejectCollisions,
		Clock:       time.Now,
		LogFile:     os.Stderr,
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Verbosity < 0 {
		return fmt.Errorf("verbosity %d < 0: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if !c.OnCollision.Valid() {
		return fmt.Errorf("unknown collision policy %q: %w", c.OnCollision, errors.ErrInvalidConfig)
	}
	return nil
}

// Now reads the configured clock.
func (c *Config) Now() time.Time {
	if c.Clock == nil {
		return time.Now()
	}
	return c.Clock()
}

// Logf writes a diagnostic line if Verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format+"\n", args...)
}
