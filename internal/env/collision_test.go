package env

import (
	"testing"

	"github.com/MarcelZelent/FunGame/internal/core"
)

func TestCheckCollision(t *testing.T) {
	const (
		pipeWidth = 60.0
		worldH    = 640.0
	)

	gapPipe := Pipe{X: 100, GapY: 200, GapHeight: 170} // Gap spans [200, 370)

	tests := []struct {
		name     string
		entity   core.Rect
		pipes    []Pipe
		expected bool
	}{
		{
			name:     "free space",
			entity:   core.NewRect(120, 300, 38, 38),
			expected: false,
		},
		{
			name:     "above world",
			entity:   core.NewRect(120, -1, 38, 38),
			expected: true,
		},
		{
			name:     "below world",
			entity:   core.NewRect(120, 603, 38, 38),
			expected: true,
		},
		{
			name:     "exactly at bottom edge",
			entity:   core.NewRect(120, 602, 38, 38),
			expected: false,
		},
		{
			name:     "exactly at top edge",
			entity:   core.NewRect(120, 0, 38, 38),
			expected: false,
		},
		{
			name:     "inside gap",
			entity:   core.NewRect(110, 250, 38, 38),
			pipes:    []Pipe{gapPipe},
			expected: false,
		},
		{
			name:     "hits top pipe section",
			entity:   core.NewRect(110, 150, 38, 38),
			pipes:    []Pipe{gapPipe},
			expected: true,
		},
		{
			name:     "hits bottom pipe section",
			entity:   core.NewRect(110, 400, 38, 38),
			pipes:    []Pipe{gapPipe},
			expected: true,
		},
		{
			name:     "clips top pipe by one unit",
			entity:   core.NewRect(110, 163, 38, 38), // Bottom at 201, pipe ends at 200
			pipes:    []Pipe{gapPipe},
			expected: true,
		},
		{
			name:     "flush under the top pipe section",
			entity:   core.NewRect(110, 200, 38, 38), // Touching, half-open = no overlap
			pipes:    []Pipe{gapPipe},
			expected: false,
		},
		{
			name:     "left of the pipe",
			entity:   core.NewRect(20, 150, 38, 38),
			pipes:    []Pipe{gapPipe},
			expected: false,
		},
		{
			name:     "right of the pipe",
			entity:   core.NewRect(200, 150, 38, 38),
			pipes:    []Pipe{gapPipe},
			expected: false,
		},
		{
			name:   "second of several pipes hits",
			entity: core.NewRect(110, 150, 38, 38),
			pipes: []Pipe{
				{X: 400, GapY: 200, GapHeight: 170},
				gapPipe,
			},
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := checkCollision(tc.entity, tc.pipes, pipeWidth, worldH)
			if result != tc.expected {
				t.Errorf("checkCollision() = %v, expected %v", result, tc.expected)
			}
		})
	}
}

func TestCheckCollisionIsPure(t *testing.T) {
	entity := core.NewRect(120, 300, 38, 38)
	pipes := []Pipe{{X: 100, GapY: 200, GapHeight: 170}}

	first := checkCollision(entity, pipes, 60, 640)
	for i := 0; i < 10; i++ {
		if checkCollision(entity, pipes, 60, 640) != first {
			t.Fatal("checkCollision must be deterministic for identical inputs")
		}
	}
	if pipes[0].Passed {
		t.Error("checkCollision must not mutate pipe state")
	}
}
