package grid

import (
	"math"
	"testing"
)

func TestGridSnap(t *testing.T) {
	g := New(40, 800, 600)
	tests := []struct {
		in   Point
		want Point
	}{
		{Point{0, 0}, Point{20, 20}},
		{Point{39.9, 39.9}, Point{20, 20}},
		{Point{40, 40}, Point{60, 60}},
		{Point{123, 401}, Point{140, 420}},
	}
	for _, tt := range tests {
		if got := g.Snap(tt.in); got != tt.want {
			t.Errorf("Snap(%v): expected %v, got %v", tt.in, tt.want, got)
		}
	}
}

func TestGridContains(t *testing.T) {
	g := New(40, 800, 600)
	if g.Cols() != 20 || g.Rows() != 15 {
		t.Fatalf("expected 20x15 cells, got %dx%d", g.Cols(), g.Rows())
	}
	if !g.Contains(Cell{0, 0}) || !g.Contains(Cell{19, 14}) {
		t.Error("expected corner cells to be inside the field")
	}
	if g.Contains(Cell{20, 0}) || g.Contains(Cell{0, -1}) {
		t.Error("expected out-of-range cells to be outside the field")
	}
}

func TestClosestPointOnSegment(t *testing.T) {
	a, b := Point{0, 0}, Point{10, 0}
	tests := []struct {
		p    Point
		want Point
	}{
		{Point{5, 5}, Point{5, 0}},
		{Point{-3, 2}, Point{0, 0}},
		{Point{14, -1}, Point{10, 0}},
	}
	for _, tt := range tests {
		if got := ClosestPointOnSegment(tt.p, a, b); got != tt.want {
			t.Errorf("ClosestPointOnSegment(%v): expected %v, got %v", tt.p, tt.want, got)
		}
	}
	if got := ClosestPointOnSegment(Point{3, 4}, a, a); got != a {
		t.Errorf("degenerate segment: expected %v, got %v", a, got)
	}
}

func TestPathDistanceAndClamp(t *testing.T) {
	p := NewPath([]Point{{0, 0}, {100, 0}, {100, 100}})
	if p.Segments() != 2 {
		t.Fatalf("expected 2 segments, got %d", p.Segments())
	}
	if d := p.DistanceTo(Point{50, 30}); math.Abs(d-30) > 1e-9 {
		t.Errorf("expected distance 30, got %v", d)
	}
	if d := p.DistanceTo(Point{130, 50}); math.Abs(d-30) > 1e-9 {
		t.Errorf("expected distance 30 to second segment, got %v", d)
	}
	from, to := p.Segment(2)
	if from != (Point{100, 100}) || to != (Point{100, 100}) {
		t.Errorf("segment past the end should collapse to the last point, got %v-%v", from, to)
	}
	if got := p.PositionAt(0, 0.25); got != (Point{25, 0}) {
		t.Errorf("PositionAt: expected {25 0}, got %v", got)
	}
}
