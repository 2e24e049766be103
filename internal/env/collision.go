package env

import "github.com/MarcelZelent/FunGame/internal/core"

// checkCollision reports whether the entity rectangle leaves the vertical
// world bounds [0, worldH] or intersects any pipe rectangle. Pure
// function: no state is touched, identical inputs yield identical
// results. Rectangle overlap follows the half-open [p, p+s) convention.
func checkCollision(entityRect core.Rect, pipes []Pipe, pipeWidth, worldH float64) bool {
	if entityRect.Y < 0 || entityRect.Bottom() > worldH {
		return true
	}
	for _, p := range pipes {
		if entityRect.Intersects(p.TopRect(pipeWidth)) || entityRect.Intersects(p.BottomRect(pipeWidth, worldH)) {
			return true
		}
	}
	return false
}
