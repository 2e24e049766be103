package env

import (
	"math/rand"
	"testing"
)

func newTestPipeSet() pipeSet {
	return newPipeSet(60, 60, 90, 480, 640)
}

func TestPipeSetSpawnCadence(t *testing.T) {
	ps := newTestPipeSet()
	rng := rand.New(rand.NewSource(1))

	for tick := 0; tick < 360; tick++ {
		ps.maybeSpawn(tick, 170, rng)
	}

	// Ticks 0, 90, 180, 270 are spawn ticks.
	if len(ps.pipes) != 4 {
		t.Errorf("Expected 4 spawned pipes over 360 ticks, got %d", len(ps.pipes))
	}
	for i, p := range ps.pipes {
		if p.X != 480 {
			t.Errorf("Pipe %d should spawn at the right world edge, got X=%g", i, p.X)
		}
		if p.Passed {
			t.Errorf("Pipe %d should spawn unpassed", i)
		}
	}
}

func TestPipeSetGapBounds(t *testing.T) {
	ps := newTestPipeSet()
	rng := rand.New(rand.NewSource(99))

	const gapHeight = 170.0
	for i := 0; i < 500; i++ {
		ps.maybeSpawn(0, gapHeight, rng)
	}

	// Gap must always fit between the top and bottom margins.
	for i, p := range ps.pipes {
		if p.GapY < 60 {
			t.Fatalf("Pipe %d gap starts above the margin: GapY=%g", i, p.GapY)
		}
		if p.GapY+gapHeight > 640-60 {
			t.Fatalf("Pipe %d gap ends below the margin: GapY=%g", i, p.GapY)
		}
		if p.GapHeight != gapHeight {
			t.Fatalf("Pipe %d gap height = %g, expected %g", i, p.GapHeight, gapHeight)
		}
	}

	// The draw is inclusive on both ends; over 500 spawns both extremes
	// should appear somewhere in between too.
	seen := map[float64]bool{}
	for _, p := range ps.pipes {
		seen[p.GapY] = true
	}
	if len(seen) < 10 {
		t.Errorf("Gap positions look degenerate: only %d distinct values", len(seen))
	}
}

func TestPipeSetTightGapClampsToMargin(t *testing.T) {
	// With a gap filling everything between the margins there is exactly
	// one legal position.
	ps := newPipeSet(60, 60, 90, 480, 640)
	rng := rand.New(rand.NewSource(5))

	ps.maybeSpawn(0, 640-2*60, rng)

	if len(ps.pipes) != 1 {
		t.Fatalf("Expected one pipe, got %d", len(ps.pipes))
	}
	if ps.pipes[0].GapY != 60 {
		t.Errorf("GapY = %g, expected 60", ps.pipes[0].GapY)
	}
}

func TestPipeSetAdvanceAndRetire(t *testing.T) {
	ps := newTestPipeSet()
	ps.pipes = append(ps.pipes,
		Pipe{X: 480, GapY: 200, GapHeight: 170},
		Pipe{X: -55, GapY: 200, GapHeight: 170}, // Trailing edge at 5, still visible
		Pipe{X: -61, GapY: 200, GapHeight: 170}, // Fully off screen
	)

	ps.advance(3)
	ps.retire()

	if len(ps.pipes) != 2 {
		t.Fatalf("Expected 2 live pipes after retire, got %d", len(ps.pipes))
	}
	if ps.pipes[0].X != 477 {
		t.Errorf("First pipe X = %g, expected 477", ps.pipes[0].X)
	}
	if ps.pipes[1].X != -58 {
		t.Errorf("Second pipe X = %g, expected -58", ps.pipes[1].X)
	}
}

func TestPipeSetScorePassOneShot(t *testing.T) {
	ps := newTestPipeSet()
	ps.pipes = append(ps.pipes, Pipe{X: 70, GapY: 200, GapHeight: 170})

	const entityX = 120.0
	calls := 0

	// Trailing edge at 130: not yet past the entity.
	ps.scorePass(entityX, func() { calls++ })
	if calls != 0 {
		t.Fatalf("Pipe scored before its trailing edge crossed, calls=%d", calls)
	}

	ps.advance(15) // Trailing edge now at 115
	ps.scorePass(entityX, func() { calls++ })
	if calls != 1 {
		t.Fatalf("Expected exactly one pass callback, got %d", calls)
	}
	if !ps.pipes[0].Passed {
		t.Error("Passed flag should be set after scoring")
	}

	// Further ticks never score the same pipe again.
	for i := 0; i < 10; i++ {
		ps.advance(3)
		ps.scorePass(entityX, func() { calls++ })
	}
	if calls != 1 {
		t.Errorf("Pass callback fired %d times, expected 1", calls)
	}
}

func TestPipeSetNearestUpcoming(t *testing.T) {
	ps := newTestPipeSet()
	const entityX = 120.0

	if ps.nearestUpcoming(entityX) != nil {
		t.Error("nearestUpcoming should be nil with no live pipes")
	}

	ps.pipes = append(ps.pipes,
		Pipe{X: 40, GapY: 100, GapHeight: 170},  // Trailing edge at 100, already passed
		Pipe{X: 300, GapY: 200, GapHeight: 170}, // Upcoming, nearest
		Pipe{X: 430, GapY: 300, GapHeight: 170}, // Upcoming, farther
	)

	p := ps.nearestUpcoming(entityX)
	if p == nil {
		t.Fatal("nearestUpcoming returned nil with upcoming pipes live")
	}
	if p.X != 300 {
		t.Errorf("nearestUpcoming X = %g, expected 300", p.X)
	}

	// A pipe overlapping the entity column still counts as upcoming.
	ps.reset()
	ps.pipes = append(ps.pipes, Pipe{X: 110, GapY: 200, GapHeight: 170})
	if p := ps.nearestUpcoming(entityX); p == nil || p.X != 110 {
		t.Error("A pipe overlapping the entity column should be the upcoming pipe")
	}
}

func TestPipeRects(t *testing.T) {
	p := Pipe{X: 100, GapY: 200, GapHeight: 170}

	top := p.TopRect(60)
	if top.X != 100 || top.Y != 0 || top.W != 60 || top.H != 200 {
		t.Errorf("TopRect = %+v, expected {100 0 60 200}", top)
	}

	bottom := p.BottomRect(60, 640)
	if bottom.X != 100 || bottom.Y != 370 || bottom.W != 60 || bottom.H != 270 {
		t.Errorf("BottomRect = %+v, expected {100 370 60 270}", bottom)
	}

	if p.GapCenter() != 285 {
		t.Errorf("GapCenter = %g, expected 285", p.GapCenter())
	}
}
