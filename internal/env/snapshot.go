package env

// Snapshot captures the episode state for determinism testing and
// replay verification.
type Snapshot struct {
	Tick      int
	Score     int
	Speed     float64
	GapHeight float64
	EntityY   float64
	EntityVel float64
	PipeCount int
	NearestX  float64 // X of the nearest upcoming pipe, -1 if none
	State     State
}

// Snapshot returns the current episode snapshot.
func (e *Env) Snapshot() Snapshot {
	nearestX := -1.0
	if p := e.pipes.nearestUpcoming(e.entityX()); p != nil {
		nearestX = p.X
	}

	return Snapshot{
		Tick:      e.tick,
		Score:     e.score,
		Speed:     e.diff.speed,
		GapHeight: e.diff.gap,
		EntityY:   e.ent.y,
		EntityVel: e.ent.vel,
		PipeCount: len(e.pipes.live()),
		NearestX:  nearestX,
		State:     e.state,
	}
}
