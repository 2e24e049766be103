package env

import (
	"math/rand"

	"github.com/MarcelZelent/FunGame/internal/core"
)

// Pipe represents a vertical obstacle pair with a gap for the entity to
// pass through. The top rectangle spans [0, GapY), the bottom rectangle
// [GapY+GapHeight, worldH).
type Pipe struct {
	X         float64 // Left edge, decreases every tick
	GapY      float64 // Top of the gap
	GapHeight float64 // Height of the passable gap
	Passed    bool    // One-way flag, set when the trailing edge crosses the entity
}

// TopRect returns the collision rectangle for the top portion of the pipe.
func (p Pipe) TopRect(pipeWidth float64) core.Rect {
	return core.NewRect(p.X, 0, pipeWidth, p.GapY)
}

// BottomRect returns the collision rectangle for the bottom portion of the pipe.
func (p Pipe) BottomRect(pipeWidth, worldH float64) core.Rect {
	bottomY := p.GapY + p.GapHeight
	return core.NewRect(p.X, bottomY, pipeWidth, worldH-bottomY)
}

// GapCenter returns the vertical center of the gap.
func (p Pipe) GapCenter() float64 {
	return p.GapY + p.GapHeight/2
}

// pipeSet owns the live obstacle collection, ordered by creation (and
// therefore by horizontal position, since all pipes share one speed).
type pipeSet struct {
	pipes         []Pipe
	width         float64
	margin        float64
	intervalTicks int
	worldW        float64
	worldH        float64
}

func newPipeSet(width, margin float64, intervalTicks int, worldW, worldH float64) pipeSet {
	return pipeSet{
		pipes:         make([]Pipe, 0, 8),
		width:         width,
		margin:        margin,
		intervalTicks: intervalTicks,
		worldW:        worldW,
		worldH:        worldH,
	}
}

// reset drops all live pipes at episode start.
func (ps *pipeSet) reset() {
	ps.pipes = ps.pipes[:0]
}

// maybeSpawn creates one pipe at the right world edge on spawn ticks.
// The gap offset is an inclusive uniform integer draw from
// [margin, worldH - margin - gapHeight], so the full gap always fits
// between the margins.
func (ps *pipeSet) maybeSpawn(tick int, gapHeight float64, rng *rand.Rand) {
	if tick%ps.intervalTicks != 0 {
		return
	}

	lo := int(ps.margin)
	hi := int(ps.worldH - ps.margin - gapHeight)
	if hi < lo {
		hi = lo // Config validation makes this unreachable for the starting gap
	}

	ps.pipes = append(ps.pipes, Pipe{
		X:         ps.worldW,
		GapY:      float64(lo + rng.Intn(hi-lo+1)),
		GapHeight: gapHeight,
	})
}

// advance moves every live pipe left by the current speed.
func (ps *pipeSet) advance(speed float64) {
	for i := range ps.pipes {
		ps.pipes[i].X -= speed
	}
}

// retire removes pipes whose trailing edge has left the world.
func (ps *pipeSet) retire() {
	live := ps.pipes[:0]
	for _, p := range ps.pipes {
		if p.X+ps.width > 0 {
			live = append(live, p)
		}
	}
	ps.pipes = live
}

// scorePass flips the Passed flag on every pipe whose trailing edge has
// crossed entityX and invokes onPass exactly once per such pipe.
func (ps *pipeSet) scorePass(entityX float64, onPass func()) {
	for i := range ps.pipes {
		if !ps.pipes[i].Passed && ps.pipes[i].X+ps.width < entityX {
			ps.pipes[i].Passed = true
			onPass()
		}
	}
}

// nearestUpcoming returns the live pipe with the smallest X among those
// whose trailing edge has not yet crossed entityX, or nil if none is
// live. Linear scan; the collection is small and changes every tick.
func (ps *pipeSet) nearestUpcoming(entityX float64) *Pipe {
	var nearest *Pipe
	for i := range ps.pipes {
		p := &ps.pipes[i]
		if p.X+ps.width < entityX {
			continue
		}
		if nearest == nil || p.X < nearest.X {
			nearest = p
		}
	}
	return nearest
}

// live returns the live pipes. Callers must treat the slice as read-only.
func (ps *pipeSet) live() []Pipe {
	return ps.pipes
}
