package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default config should validate, got: %v", err)
	}
}

func TestDefaultValues(t *testing.T) {
	cfg := Default()

	if cfg.World.Width != 480 || cfg.World.Height != 640 {
		t.Errorf("Default world = %gx%g, expected 480x640", cfg.World.Width, cfg.World.Height)
	}
	if cfg.Physics.Gravity != 0.35 {
		t.Errorf("Default gravity = %g, expected 0.35", cfg.Physics.Gravity)
	}
	if cfg.Physics.FlapImpulse != -7.5 {
		t.Errorf("Default flap_impulse = %g, expected -7.5", cfg.Physics.FlapImpulse)
	}
	if cfg.Obstacles.IntervalTicks != 90 {
		t.Errorf("Default interval_ticks = %d, expected 90", cfg.Obstacles.IntervalTicks)
	}
	if cfg.Obstacles.GapStart != 170 || cfg.Obstacles.GapMin != 100 {
		t.Errorf("Default gap = %g..%g, expected 170..100", cfg.Obstacles.GapStart, cfg.Obstacles.GapMin)
	}
	if cfg.Episode.MaxTicks != 0 {
		t.Errorf("Default max_ticks = %d, expected 0 (unlimited)", cfg.Episode.MaxTicks)
	}
}

func TestEmbeddedYAMLMatchesDefault(t *testing.T) {
	if len(DefaultYAML()) == 0 {
		t.Fatal("Embedded default YAML should not be empty")
	}

	var cfg Config
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("Embedded default YAML should parse: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Embedded default config differs from Default():\n got: %+v\nwant: %+v", cfg, Default())
	}
}

func TestValidateRejectsMalformed(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero world width", func(c *Config) { c.World.Width = 0 }},
		{"negative world height", func(c *Config) { c.World.Height = -10 }},
		{"zero gravity", func(c *Config) { c.Physics.Gravity = 0 }},
		{"upward gravity", func(c *Config) { c.Physics.Gravity = -0.35 }},
		{"downward flap", func(c *Config) { c.Physics.FlapImpulse = 7.5 }},
		{"zero flap", func(c *Config) { c.Physics.FlapImpulse = 0 }},
		{"zero velocity scale", func(c *Config) { c.Physics.VelocityScale = 0 }},
		{"zero entity size", func(c *Config) { c.Entity.Size = 0 }},
		{"entity taller than world", func(c *Config) { c.Entity.Size = 1000 }},
		{"zero pipe width", func(c *Config) { c.Obstacles.Width = 0 }},
		{"zero spawn interval", func(c *Config) { c.Obstacles.IntervalTicks = 0 }},
		{"zero speed", func(c *Config) { c.Obstacles.SpeedStart = 0 }},
		{"negative speed increment", func(c *Config) { c.Obstacles.SpeedIncrement = -0.1 }},
		{"zero gap floor", func(c *Config) { c.Obstacles.GapMin = 0 }},
		{"gap floor above start", func(c *Config) { c.Obstacles.GapMin = 200 }},
		{"negative gap decrement", func(c *Config) { c.Obstacles.GapDecrement = -1 }},
		{"negative margin", func(c *Config) { c.Obstacles.Margin = -5 }},
		{"margins plus gap exceed world", func(c *Config) { c.Obstacles.Margin = 300 }},
		{"gap floor below entity", func(c *Config) { c.Obstacles.GapMin = 30; c.Entity.Size = 38 }},
		{"negative max ticks", func(c *Config) { c.Episode.MaxTicks = -1 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate should reject malformed config")
			}

			var cfgErr *ConfigurationError
			if !errors.As(err, &cfgErr) {
				t.Errorf("Validation error should be *ConfigurationError, got %T", err)
			}
		})
	}
}

func TestLoadCustomFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")

	content := []byte(`
world:
  width: 320
  height: 480
physics:
  gravity: 0.25
  flap_impulse: -6.0
  velocity_scale: 10.0
entity:
  size: 20
obstacles:
  width: 40
  margin: 40
  interval_ticks: 60
  speed_start: 2.0
  speed_increment: 0.1
  gap_start: 150
  gap_min: 90
  gap_decrement: 5
rewards:
  pass: 1.0
  step: -0.01
  collision: -1.0
  shaping_scale: 0.1
episode:
  max_ticks: 500
`)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.World.Width != 320 || cfg.World.Height != 480 {
		t.Errorf("World = %gx%g, expected 320x480", cfg.World.Width, cfg.World.Height)
	}
	if cfg.Physics.Gravity != 0.25 {
		t.Errorf("Gravity = %g, expected 0.25", cfg.Physics.Gravity)
	}
	if cfg.Episode.MaxTicks != 500 {
		t.Errorf("MaxTicks = %d, expected 500", cfg.Episode.MaxTicks)
	}
}

func TestLoadMissingCustomFile(t *testing.T) {
	_, err := Load("/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("Load should fail for a missing custom path")
	}
}

func TestLoadRejectsInvalidCustomFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")

	// Parses fine but fails validation (gravity missing -> zero).
	content := []byte(`
world:
  width: 480
  height: 640
`)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load should reject a config that fails validation")
	}

	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Errorf("Expected *ConfigurationError, got %T", err)
	}
}

func TestLoadUnparsableCustomFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "garbage.yaml")

	if err := os.WriteFile(path, []byte("{{{not yaml"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if err == nil {
		t.Error("Load should fail for an unparsable custom file")
	}
}
