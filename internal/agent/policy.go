// Package agent drives the environment programmatically: policies map
// observations to actions, and the runner executes whole episodes
// headlessly. It is the second front end next to the terminal UI and
// exercises exactly the same step/observe/reset contract.
package agent

import (
	"fmt"
	"math/rand"

	"github.com/MarcelZelent/FunGame/internal/env"
)

// Policy selects one action per tick from the latest observation.
type Policy interface {
	// Name identifies the policy in logs and telemetry.
	Name() string
	// Act returns the action for the current tick.
	Act(obs env.Observation) env.Action
}

// NonePolicy never flaps. The entity free-falls until it leaves the
// world; useful as a floor baseline and in boundary tests.
type NonePolicy struct{}

func (NonePolicy) Name() string                   { return "none" }
func (NonePolicy) Act(env.Observation) env.Action { return env.ActionNone }

// RandomPolicy flaps with a fixed probability each tick, from its own
// seeded source so batch runs stay reproducible.
type RandomPolicy struct {
	rng  *rand.Rand
	prob float64
}

// NewRandomPolicy creates a seeded random policy flapping with
// probability prob per tick.
func NewRandomPolicy(seed int64, prob float64) *RandomPolicy {
	return &RandomPolicy{rng: rand.New(rand.NewSource(seed)), prob: prob}
}

func (p *RandomPolicy) Name() string { return "random" }

func (p *RandomPolicy) Act(env.Observation) env.Action {
	if p.rng.Float64() < p.prob {
		return env.ActionFlap
	}
	return env.ActionNone
}

// GapChaser is a reactive baseline: it flaps whenever the entity sits
// below the nearest upcoming gap center by more than a threshold.
// Observation component 0 is the normalized signed vertical distance to
// that center (positive = below).
type GapChaser struct {
	// Threshold is the normalized distance below the gap center at
	// which the policy flaps. Zero chases the center aggressively.
	Threshold float64
}

func (GapChaser) Name() string { return "chaser" }

func (p GapChaser) Act(obs env.Observation) env.Action {
	if obs[0] > p.Threshold {
		return env.ActionFlap
	}
	return env.ActionNone
}

// ByName constructs a policy from its CLI name.
func ByName(name string, seed int64) (Policy, error) {
	switch name {
	case "none":
		return NonePolicy{}, nil
	case "random":
		return NewRandomPolicy(seed, 0.1), nil
	case "chaser":
		return GapChaser{Threshold: 0.02}, nil
	default:
		return nil, fmt.Errorf("agent: unknown policy %q", name)
	}
}
