package config

import (
	_ "embed"
)

//go:embed defaults/fungame.yaml
var defaultYAML []byte

// Default returns the default simulation configuration: a 480x640 world
// with the classic tuning (gravity 0.35, flap -7.5, pipes every 90 ticks
// at speed 3.0, gap shrinking from 170 to a floor of 100).
func Default() Config {
	return Config{
		World: WorldConfig{
			Width:  480,
			Height: 640,
		},
		Physics: PhysicsConfig{
			Gravity:       0.35,
			FlapImpulse:   -7.5,
			VelocityScale: 10.0,
		},
		Entity: EntityConfig{
			Size: 38,
		},
		Obstacles: ObstaclesConfig{
			Width:          60,
			Margin:         60,
			IntervalTicks:  90,
			SpeedStart:     3.0,
			SpeedIncrement: 0.15,
			GapStart:       170,
			GapMin:         100,
			GapDecrement:   4,
		},
		Rewards: RewardsConfig{
			Pass:         1.0,
			Step:         -0.01,
			Collision:    -1.0,
			ShapingScale: 0.1,
		},
		Episode: EpisodeConfig{
			MaxTicks: 0,
		},
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultYAML
}
