package system

import (
	"math"
	"testing"

	"go-rail-defense/pkg/grid"
)

func TestMovementAdvancesAlongSegment(t *testing.T) {
	w := newTestWorld()
	e := newEnemy(w, 10, 50)
	s := NewMovementSystem(w)

	s.Update(1.0)

	if e.Path.Segment != 0 {
		t.Fatalf("expected segment 0, got %d", e.Path.Segment)
	}
	if math.Abs(e.Path.Progress-0.5) > 1e-9 {
		t.Errorf("expected progress 0.5, got %f", e.Path.Progress)
	}
	if math.Abs(e.Position.X-50) > 1e-9 || e.Position.Y != 0 {
		t.Errorf("expected position (50,0), got (%f,%f)", e.Position.X, e.Position.Y)
	}
}

func TestMovementDropsOvershootOnSegmentAdvance(t *testing.T) {
	w := newTestWorld()
	e := newEnemy(w, 10, 150)
	NewMovementSystem(w).Update(1.0)

	if e.Path.Segment != 1 || e.Path.Progress != 0 {
		t.Errorf("expected segment 1 progress 0, got segment %d progress %f", e.Path.Segment, e.Path.Progress)
	}
	if e.Position.X != 100 || e.Position.Y != 0 {
		t.Errorf("expected enemy at the corner, got (%f,%f)", e.Position.X, e.Position.Y)
	}
}

func TestMovementProgressStaysBounded(t *testing.T) {
	w := newTestWorld()
	e := newEnemy(w, 10, 37)
	s := NewMovementSystem(w)
	last := w.Path.Len() - 1

	for i := 0; i < 1000 && !e.ReachedEnd; i++ {
		s.Update(0.05)
		if e.Path.Progress < 0 || e.Path.Progress >= 1 {
			t.Fatalf("tick %d: progress %f out of [0,1)", i, e.Path.Progress)
		}
		if e.Path.Segment > last {
			t.Fatalf("tick %d: segment %d beyond %d", i, e.Path.Segment, last)
		}
	}
	if !e.ReachedEnd {
		t.Fatal("expected the enemy to reach the end")
	}
}

func TestMovementReachesEnd(t *testing.T) {
	w := newTestWorld()
	e := newEnemy(w, 10, 100)
	s := NewMovementSystem(w)

	s.Update(1.0)
	if e.ReachedEnd {
		t.Fatal("reached end after the first segment")
	}
	s.Update(1.0)
	if !e.ReachedEnd {
		t.Fatal("expected ReachedEnd after the final segment")
	}
	if e.Position.X != 100 || e.Position.Y != 100 {
		t.Errorf("expected enemy at the last waypoint, got (%f,%f)", e.Position.X, e.Position.Y)
	}
}

func TestMovementAppliesSlow(t *testing.T) {
	w := newTestWorld()
	e := newEnemy(w, 10, 50)
	ApplySlow(e, 0.5, 2)
	NewMovementSystem(w).Update(1.0)

	if math.Abs(e.Path.Progress-0.25) > 1e-9 {
		t.Errorf("expected slowed progress 0.25, got %f", e.Path.Progress)
	}
}

func TestMovementSkipsZeroLengthSegment(t *testing.T) {
	w := newTestWorld()
	// повторённый угол даёт сегмент нулевой длины
	w.Path = grid.NewPath([]grid.Point{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 100}})
	e := newEnemy(w, 10, 50)
	s := NewMovementSystem(w)

	for i := 0; i < 4; i++ {
		s.Update(1.0)
	}
	if e.Path.Segment != 2 {
		t.Fatalf("expected enemy past the repeated corner on segment 2, got %d", e.Path.Segment)
	}
	if math.Abs(e.Position.X-100) > 1e-9 || math.Abs(e.Position.Y-50) > 1e-9 {
		t.Errorf("expected position (100,50), got (%f,%f)", e.Position.X, e.Position.Y)
	}

	for i := 0; i < 10 && !e.ReachedEnd; i++ {
		s.Update(1.0)
	}
	if !e.ReachedEnd {
		t.Error("expected the enemy to reach the end")
	}
}

func TestStatusEffectCountsDown(t *testing.T) {
	w := newTestWorld()
	e := newEnemy(w, 10, 50)
	ApplySlow(e, 0.65, 1.0)
	s := NewStatusEffectSystem(w)

	s.Update(0.4)
	if !e.Slow.Active() || math.Abs(e.Slow.Timer-0.6) > 1e-9 {
		t.Fatalf("expected active slow with 0.6s left, got %+v", e.Slow)
	}
	s.Update(0.7)
	if e.Slow.Active() {
		t.Errorf("expected slow to expire, got %+v", e.Slow)
	}
	if e.Slow.Multiplier() != 1 {
		t.Errorf("expected multiplier 1 after expiry, got %f", e.Slow.Multiplier())
	}
}
