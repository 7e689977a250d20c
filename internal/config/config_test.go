package config

import (
	"bytes"
	"testing"
	"time"

	"github.com/lgbarn/chess-move-tracker/internal/errors"
	"github.com/lgbarn/chess-move-tracker/internal/testutil"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.Verbosity != 1 {
		t.Errorf("Verbosity = %d, want 1", cfg.Verbosity)
	}
	if cfg.OnCollision != RejectCollisions {
		t.Errorf("OnCollision = %q, want %q", cfg.OnCollision, RejectCollisions)
	}
	if cfg.Clock == nil {
		t.Error("Clock should default to time.Now")
	}
	if cfg.LogFile == nil {
		t.Error("LogFile should default to stderr")
	}
	testutil.AssertNoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"overwrite policy", func(c *Config) { c.OnCollision = OverwriteCollisions }, false},
		{"silent", func(c *Config) { c.Verbosity = 0 }, false},
		{"negative verbosity", func(c *Config) { c.Verbosity = -1 }, true},
		{"unknown policy", func(c *Config) { c.OnCollision = "sometimes" }, true},
		{"empty policy", func(c *Config) { c.OnCollision = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				testutil.AssertErrorIs(t, err, errors.ErrInvalidConfig)
			} else {
				testutil.AssertNoError(t, err)
			}
		})
	}
}

func TestConfigBuilder(t *testing.T) {
	var buf bytes.Buffer
	clock := testutil.FixedClock(testutil.Epoch)

	cfg := NewConfigBuilder().
		WithVerbosity(2).
		WithLogFile(&buf).
		WithClock(clock).
		WithCollisionPolicy(OverwriteCollisions).
		Build()

	testutil.AssertEqual(t, cfg.Verbosity, 2)
	testutil.AssertEqual(t, cfg.OnCollision, OverwriteCollisions)
	testutil.AssertTrue(t, cfg.LogFile == &buf, "LogFile should be the supplied buffer")
	testutil.AssertTrue(t, cfg.Now().Equal(testutil.Epoch), "Now() should read the supplied clock")
}

func TestConfig_NowWithoutClock(t *testing.T) {
	cfg := &Config{}
	before := time.Now()
	got := cfg.Now()
	if got.Before(before) {
		t.Errorf("Now() = %v, want at or after %v", got, before)
	}
}

func TestConfig_Logf(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		level     int
		want      string
	}{
		{"at level", 1, 1, "moved a1-a5\n"},
		{"above level", 2, 1, "moved a1-a5\n"},
		{"below level", 1, 2, ""},
		{"silent", 0, 1, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			cfg := NewConfigBuilder().WithVerbosity(tt.verbosity).WithLogFile(&buf).Build()
			cfg.Logf(tt.level, "moved %s-%s", "a1", "a5")
			testutil.AssertEqual(t, buf.String(), tt.want)
		})
	}

	t.Run("nil writer", func(t *testing.T) {
		cfg := NewConfigBuilder().WithVerbosity(2).WithLogFile(nil).Build()
		cfg.Logf(1, "dropped")
	})
}

func TestLoadEnvFrom(t *testing.T) {
	tests := []struct {
		name          string
		environ       map[string]string
		wantVerbosity int
		wantPolicy    CollisionPolicy
		wantErr       error
	}{
		{
			name:          "nothing set keeps defaults",
			environ:       map[string]string{},
			wantVerbosity: 1,
			wantPolicy:    RejectCollisions,
		},
		{
			name: "both set",
			environ: map[string]string{
				"MOVETRACK_VERBOSITY":        "2",
				"MOVETRACK_COLLISION_POLICY": "overwrite",
			},
			wantVerbosity: 2,
			wantPolicy:    OverwriteCollisions,
		},
		{
			name:    "unknown policy",
			environ: map[string]string{"MOVETRACK_COLLISION_POLICY": "merge"},
			wantErr: errors.ErrInvalidConfig,
		},
		{
			name:    "negative verbosity",
			environ: map[string]string{"MOVETRACK_VERBOSITY": "-3"},
			wantErr: errors.ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			err := LoadEnvFrom(cfg, tt.environ)
			if tt.wantErr != nil {
				testutil.AssertErrorIs(t, err, tt.wantErr)
				return
			}
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, cfg.Verbosity, tt.wantVerbosity)
			testutil.AssertEqual(t, cfg.OnCollision, tt.wantPolicy)
		})
	}
}

func TestLoadEnvFrom_BadInteger(t *testing.T) {
	cfg := NewConfig()
	err := LoadEnvFrom(cfg, map[string]string{"MOVETRACK_VERBOSITY": "loud"})
	if err == nil {
		t.Fatal("LoadEnvFrom() with a non-integer verbosity should fail")
	}
	testutil.AssertContains(t, err.Error(), "parse env")
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("MOVETRACK_VERBOSITY", "0")
	t.Setenv("MOVETRACK_COLLISION_POLICY", "overwrite")

	cfg := NewConfig()
	testutil.AssertNoError(t, LoadEnv(cfg))
	testutil.AssertEqual(t, cfg.Verbosity, 0)
	testutil.AssertEqual(t, cfg.OnCollision, OverwriteCollisions)
}
