package env

import "testing"

func TestSnapshotReflectsState(t *testing.T) {
	e := newTestEnv(t)
	e.Reset(42)

	snap := e.Snapshot()
	if snap.Tick != 0 || snap.Score != 0 || snap.State != StateRunning {
		t.Errorf("Fresh snapshot = %+v, expected tick 0 / score 0 / running", snap)
	}
	if snap.EntityY != e.Config().World.Height/2 {
		t.Errorf("EntityY = %g, expected centered", snap.EntityY)
	}
	if snap.PipeCount != 0 || snap.NearestX != -1 {
		t.Errorf("Fresh snapshot should have no pipes: %+v", snap)
	}

	if _, err := e.Step(ActionFlap); err != nil {
		t.Fatalf("Step failed: %v", err)
	}

	snap = e.Snapshot()
	if snap.Tick != 1 {
		t.Errorf("Tick = %d, expected 1", snap.Tick)
	}
	if snap.PipeCount != 1 {
		t.Errorf("PipeCount = %d, expected 1 after the spawn tick", snap.PipeCount)
	}
	if snap.NearestX < 0 {
		t.Errorf("NearestX = %g, expected the spawned pipe", snap.NearestX)
	}
	if snap.EntityVel != e.EntityVelocity() {
		t.Errorf("EntityVel = %g, expected %g", snap.EntityVel, e.EntityVelocity())
	}
}

func TestSnapshotReplayEquivalence(t *testing.T) {
	run := func() []Snapshot {
		e := newTestEnv(t)
		e.Reset(777)

		var snaps []Snapshot
		for i := 0; i < 120; i++ {
			action := ActionNone
			if i%14 == 0 {
				action = ActionFlap
			}
			res, err := e.Step(action)
			if err != nil {
				t.Fatalf("Step failed at tick %d: %v", i, err)
			}
			snaps = append(snaps, e.Snapshot())
			if res.Terminated || res.Truncated {
				break
			}
		}
		return snaps
	}

	first := run()
	second := run()

	if len(first) != len(second) {
		t.Fatalf("Replay lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("Snapshots diverge at tick %d:\n first: %+v\nsecond: %+v", i, first[i], second[i])
		}
	}
}
