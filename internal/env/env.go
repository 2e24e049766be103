// Package env implements the deterministic FunGame simulation: a square
// falling under gravity that must pass through gaps in pipes scrolling
// in from the right. The package is the single canonical game loop; the
// interactive terminal front end and the headless agent driver both
// consume its step/observe/reset contract and never duplicate the rules.
//
// The simulation is single-threaded and fixed-timestep: one Step call
// advances exactly one tick. All randomness (the gap offset of spawned
// pipes) comes from one seedable source owned by the environment, so a
// seed plus an action sequence replays bit-identically.
package env

import (
	"math/rand"

	"github.com/MarcelZelent/FunGame/internal/config"
	"github.com/MarcelZelent/FunGame/internal/core"
)

// Action is a discrete control input for one tick.
type Action int

const (
	ActionNone Action = iota // Let the entity fall
	ActionFlap               // Apply the upward impulse
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionFlap:
		return "flap"
	default:
		return "unknown"
	}
}

// State identifies where the environment is in its episode lifecycle.
type State int

const (
	StateReady      State = iota // Constructed, no episode started yet
	StateRunning                 // Episode in progress, Step accepted
	StateTerminated              // Collision ended the episode
	StateTruncated               // Tick limit ended the episode
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateRunning:
		return "running"
	case StateTerminated:
		return "terminated"
	case StateTruncated:
		return "truncated"
	default:
		return "unknown"
	}
}

// Info carries auxiliary episode data returned alongside observations.
type Info struct {
	Score int
}

// StepResult is the outcome of one accepted tick.
type StepResult struct {
	Obs        Observation
	Reward     float64
	Terminated bool // Collision: episode over, reward forced to the collision value
	Truncated  bool // Tick limit reached without collision
	Info       Info
}

// Env is the game loop / state machine. It exclusively owns the episode
// state; front ends read it between steps and must not retain references
// across ticks.
type Env struct {
	cfg config.Config
	rng *rand.Rand

	ent   entity
	pipes pipeSet
	diff  difficulty
	score int
	tick  int
	state State
}

// New creates an environment from a validated configuration. A malformed
// configuration is the only construction failure; randomness is not
// touched until Reset.
func New(cfg config.Config) (*Env, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Env{
		cfg: cfg,
		pipes: newPipeSet(
			cfg.Obstacles.Width,
			cfg.Obstacles.Margin,
			cfg.Obstacles.IntervalTicks,
			cfg.World.Width,
			cfg.World.Height,
		),
		diff:  newDifficulty(cfg.Obstacles),
		state: StateReady,
	}, nil
}

// Reset starts a new episode: entity centered with neutral velocity,
// no live pipes, tick 0, starting speed and gap, score 0. The RNG is
// re-seeded, so identical seeds replay identical episodes.
func (e *Env) Reset(seed int64) (Observation, Info) {
	e.rng = rand.New(rand.NewSource(seed))
	e.ent = entity{y: e.cfg.World.Height / 2}
	e.pipes.reset()
	e.diff.reset()
	e.score = 0
	e.tick = 0
	e.state = StateRunning
	return e.observe(), Info{Score: 0}
}

// Step advances the simulation by exactly one tick. It returns
// ErrInvalidState unless a Reset has produced a running episode.
//
// Tick order is fixed and observable: integrate physics, spawn, advance,
// retire, score passes (escalating difficulty per pass), check
// collision, then encode the observation. A borderline pipe therefore
// scores before the collision check of the same tick.
func (e *Env) Step(action Action) (StepResult, error) {
	if e.state != StateRunning {
		return StepResult{}, ErrInvalidState
	}

	reward := e.cfg.Rewards.Step

	e.ent.integrate(action == ActionFlap, e.cfg.Physics.Gravity, e.cfg.Physics.FlapImpulse)

	e.pipes.maybeSpawn(e.tick, e.diff.gap, e.rng)
	e.pipes.advance(e.diff.speed)
	e.pipes.retire()
	e.pipes.scorePass(e.entityX(), func() {
		e.score++
		reward += e.cfg.Rewards.Pass
		e.diff.onScore()
	})

	terminated := checkCollision(e.EntityRect(), e.pipes.live(), e.cfg.Obstacles.Width, e.cfg.World.Height)
	if terminated {
		// The collision reward replaces everything accumulated this tick.
		reward = e.cfg.Rewards.Collision
		e.state = StateTerminated
	} else if p := e.pipes.nearestUpcoming(e.entityX()); p != nil {
		dist := core.AbsF(e.ent.y - p.GapCenter())
		reward += e.cfg.Rewards.ShapingScale * (1.0 - dist/(e.cfg.World.Height/2))
	}

	e.tick++

	truncated := false
	if !terminated && e.cfg.Episode.MaxTicks > 0 && e.tick >= e.cfg.Episode.MaxTicks {
		truncated = true
		e.state = StateTruncated
	}

	return StepResult{
		Obs:        e.observe(),
		Reward:     reward,
		Terminated: terminated,
		Truncated:  truncated,
		Info:       Info{Score: e.score},
	}, nil
}

// Close releases resources held by the environment. The headless core
// holds none; the method exists for the external contract.
func (e *Env) Close() error {
	return nil
}

// entityX returns the entity's fixed horizontal position: a quarter of
// the world width. Scoring, observations and collision all use this same
// coordinate.
func (e *Env) entityX() float64 {
	return e.cfg.World.Width / 4
}

// EntityRect returns the entity's current collision rectangle.
func (e *Env) EntityRect() core.Rect {
	return core.NewRect(e.entityX(), e.ent.y, e.cfg.Entity.Size, e.cfg.Entity.Size)
}

// EntityVelocity returns the entity's vertical velocity.
func (e *Env) EntityVelocity() float64 {
	return e.ent.vel
}

// Pipes returns the live pipes ordered by creation. Read-only view for
// renderers; mutating it is a contract violation.
func (e *Env) Pipes() []Pipe {
	return e.pipes.live()
}

// PipeWidth returns the configured pipe width.
func (e *Env) PipeWidth() float64 {
	return e.cfg.Obstacles.Width
}

// Score returns the current episode score.
func (e *Env) Score() int {
	return e.score
}

// Tick returns the number of accepted steps this episode.
func (e *Env) Tick() int {
	return e.tick
}

// Speed returns the current pipe speed.
func (e *Env) Speed() float64 {
	return e.diff.speed
}

// GapHeight returns the gap height the next spawned pipe will get.
func (e *Env) GapHeight() float64 {
	return e.diff.gap
}

// State returns the episode lifecycle state.
func (e *Env) State() State {
	return e.state
}

// Done reports whether the current episode has ended (terminated or
// truncated) and a Reset is required before the next Step.
func (e *Env) Done() bool {
	return e.state == StateTerminated || e.state == StateTruncated
}

// Config returns the immutable configuration the environment runs with.
func (e *Env) Config() config.Config {
	return e.cfg
}
