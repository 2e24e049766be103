package env

// entity is the falling square. Its horizontal position is fixed at a
// quarter of the world width; only the vertical coordinate moves.
type entity struct {
	y   float64 // Top edge of the hitbox
	vel float64 // Vertical velocity, positive = down
}

// integrate advances the entity by exactly one tick. A flap replaces the
// velocity with the fixed upward impulse; gravity always accumulates and
// the position integrates from the resulting velocity. One call = one
// fixed timestep, no hidden scaling.
func (e *entity) integrate(flapped bool, gravity, flapImpulse float64) {
	if flapped {
		e.vel = flapImpulse
	}
	e.vel += gravity
	e.y += e.vel
}
