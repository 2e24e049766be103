// Package config provides YAML-based simulation configuration loading
// and validation for the FunGame platform.
package config

import "fmt"

// Config contains all tunables for the simulation. It is immutable once
// handed to an environment; every episode of that environment uses the
// same parameters.
type Config struct {
	World     WorldConfig     `yaml:"world"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Entity    EntityConfig    `yaml:"entity"`
	Obstacles ObstaclesConfig `yaml:"obstacles"`
	Rewards   RewardsConfig   `yaml:"rewards"`
	Episode   EpisodeConfig   `yaml:"episode"`
}

// WorldConfig defines the logical world dimensions. The simulation runs
// in continuous coordinates inside this fixed box; the terminal renderer
// scales it to cells.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig defines entity physics parameters.
type PhysicsConfig struct {
	Gravity       float64 `yaml:"gravity"`        // Downward acceleration per tick
	FlapImpulse   float64 `yaml:"flap_impulse"`   // Velocity set on flap (negative = up)
	VelocityScale float64 `yaml:"velocity_scale"` // Normalization divisor for observations
}

// EntityConfig defines the player square.
type EntityConfig struct {
	Size float64 `yaml:"size"` // Square side length
}

// ObstaclesConfig defines pipe spawning and difficulty progression.
type ObstaclesConfig struct {
	Width          float64 `yaml:"width"`           // Pipe width
	Margin         float64 `yaml:"margin"`          // Min distance of gap from world top/bottom
	IntervalTicks  int     `yaml:"interval_ticks"`  // Ticks between spawns
	SpeedStart     float64 `yaml:"speed_start"`     // Initial horizontal pipe speed
	SpeedIncrement float64 `yaml:"speed_increment"` // Speed gain per pipe passed
	GapStart       float64 `yaml:"gap_start"`       // Initial gap height
	GapMin         float64 `yaml:"gap_min"`         // Gap floor (difficulty cap)
	GapDecrement   float64 `yaml:"gap_decrement"`   // Gap shrink per pipe passed
}

// RewardsConfig defines the per-step reward components.
type RewardsConfig struct {
	Pass         float64 `yaml:"pass"`          // Reward per pipe passed
	Step         float64 `yaml:"step"`          // Base survival reward per tick (negative)
	Collision    float64 `yaml:"collision"`     // Terminal reward on collision
	ShapingScale float64 `yaml:"shaping_scale"` // Scale of the gap-center proximity reward
}

// EpisodeConfig defines episode-level limits.
type EpisodeConfig struct {
	// MaxTicks truncates an episode after this many ticks. 0 disables
	// truncation; interactive play always runs unlimited.
	MaxTicks int `yaml:"max_ticks"`
}

// Validate checks the configuration for malformed tunables. It returns a
// *ConfigurationError describing the first problem found, or nil.
func (c Config) Validate() error {
	switch {
	case c.World.Width <= 0 || c.World.Height <= 0:
		return configErrf("world dimensions must be positive, got %gx%g", c.World.Width, c.World.Height)
	case c.Physics.Gravity <= 0:
		return configErrf("gravity must be positive, got %g", c.Physics.Gravity)
	case c.Physics.FlapImpulse >= 0:
		return configErrf("flap_impulse must be negative (upward), got %g", c.Physics.FlapImpulse)
	case c.Physics.VelocityScale <= 0:
		return configErrf("velocity_scale must be positive, got %g", c.Physics.VelocityScale)
	case c.Entity.Size <= 0:
		return configErrf("entity size must be positive, got %g", c.Entity.Size)
	case c.Entity.Size >= c.World.Height:
		return configErrf("entity size %g does not fit world height %g", c.Entity.Size, c.World.Height)
	case c.Obstacles.Width <= 0:
		return configErrf("obstacle width must be positive, got %g", c.Obstacles.Width)
	case c.Obstacles.IntervalTicks <= 0:
		return configErrf("interval_ticks must be positive, got %d", c.Obstacles.IntervalTicks)
	case c.Obstacles.SpeedStart <= 0:
		return configErrf("speed_start must be positive, got %g", c.Obstacles.SpeedStart)
	case c.Obstacles.SpeedIncrement < 0:
		return configErrf("speed_increment must be non-negative, got %g", c.Obstacles.SpeedIncrement)
	case c.Obstacles.GapMin <= 0:
		return configErrf("gap_min must be positive, got %g", c.Obstacles.GapMin)
	case c.Obstacles.GapMin > c.Obstacles.GapStart:
		return configErrf("gap_min %g exceeds gap_start %g", c.Obstacles.GapMin, c.Obstacles.GapStart)
	case c.Obstacles.GapDecrement < 0:
		return configErrf("gap_decrement must be non-negative, got %g", c.Obstacles.GapDecrement)
	case c.Obstacles.Margin < 0:
		return configErrf("margin must be non-negative, got %g", c.Obstacles.Margin)
	case 2*c.Obstacles.Margin+c.Obstacles.GapStart > c.World.Height:
		return configErrf("margins %g and gap_start %g do not fit world height %g",
			c.Obstacles.Margin, c.Obstacles.GapStart, c.World.Height)
	case c.Obstacles.GapMin <= c.Entity.Size:
		return configErrf("gap_min %g leaves no room for entity of size %g", c.Obstacles.GapMin, c.Entity.Size)
	case c.Episode.MaxTicks < 0:
		return configErrf("max_ticks must be non-negative, got %d", c.Episode.MaxTicks)
	}
	return nil
}

// ConfigurationError reports a malformed tunable parameter. It is only
// returned at construction/load time; a validated configuration never
// fails mid-episode.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "config: " + e.Reason
}

func configErrf(format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Reason: fmt.Sprintf(format, args...)}
}
