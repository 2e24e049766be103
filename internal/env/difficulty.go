package env

import "github.com/MarcelZelent/FunGame/internal/config"

// difficulty tracks the episode's escalating parameters: pipe speed only
// grows, gap height only shrinks down to its floor. Both reset at
// episode start and advance exactly once per pipe passed.
type difficulty struct {
	speed float64
	gap   float64

	speedStart float64
	gapStart   float64
	speedInc   float64
	gapDec     float64
	gapMin     float64
}

func newDifficulty(cfg config.ObstaclesConfig) difficulty {
	d := difficulty{
		speedStart: cfg.SpeedStart,
		gapStart:   cfg.GapStart,
		speedInc:   cfg.SpeedIncrement,
		gapDec:     cfg.GapDecrement,
		gapMin:     cfg.GapMin,
	}
	d.reset()
	return d
}

func (d *difficulty) reset() {
	d.speed = d.speedStart
	d.gap = d.gapStart
}

// onScore escalates difficulty by one step. Never reversed within an
// episode.
func (d *difficulty) onScore() {
	d.speed += d.speedInc
	d.gap -= d.gapDec
	if d.gap < d.gapMin {
		d.gap = d.gapMin
	}
}
