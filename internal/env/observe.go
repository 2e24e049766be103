package env

// Observation is the normalized feature vector derived from the episode
// state after each step. Components are scaled to approximately [-1, 1]:
//
//	0: vertical distance from the entity to the nearest upcoming gap
//	   center, divided by half the world height
//	1: horizontal distance from the entity to that pipe's trailing edge,
//	   divided by the world width (full width when no pipe is live)
//	2: entity velocity divided by the velocity scale constant
//	3: gap height rescaled from [gap_min, gap_start] to [0, 1]
type Observation [4]float64

// observe encodes the current state. Fallbacks when no upcoming pipe is
// live: zero vertical distance, full-width horizontal distance and the
// ambient gap height, so the vector is always fully defined.
func (e *Env) observe() Observation {
	var (
		vert  float64
		horiz = e.cfg.World.Width
		gap   = e.diff.gap
	)

	if p := e.pipes.nearestUpcoming(e.entityX()); p != nil {
		vert = e.ent.y - p.GapCenter()
		horiz = p.X + e.cfg.Obstacles.Width - e.entityX()
		gap = p.GapHeight
	}

	gapRange := e.cfg.Obstacles.GapStart - e.cfg.Obstacles.GapMin
	gapNorm := 1.0
	if gapRange > 0 {
		gapNorm = (gap - e.cfg.Obstacles.GapMin) / gapRange
	}

	return Observation{
		vert / (e.cfg.World.Height / 2),
		horiz / e.cfg.World.Width,
		e.ent.vel / e.cfg.Physics.VelocityScale,
		gapNorm,
	}
}
