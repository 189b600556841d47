// pkg/grid/path.go
package grid

import "math"

// Path — неизменяемая ломаная, по которой идут враги от первой точки к последней.
type Path struct {
	points []Point
}

// NewPath copies the waypoints into a new path.
func NewPath(points []Point) Path {
	cp := make([]Point, len(points))
	copy(cp, points)
	return Path{points: cp}
}

// Len returns the number of waypoints.
func (p Path) Len() int {
	return len(p.points)
}

// Segments returns the number of segments (Len-1, never negative).
func (p Path) Segments() int {
	if len(p.points) < 2 {
		return 0
	}
	return len(p.points) - 1
}

// Point returns waypoint i, clamped to the last waypoint.
func (p Path) Point(i int) Point {
	if i >= len(p.points) {
		i = len(p.points) - 1
	}
	if i < 0 {
		i = 0
	}
	return p.points[i]
}

// Points returns a copy of the waypoints.
func (p Path) Points() []Point {
	cp := make([]Point, len(p.points))
	copy(cp, p.points)
	return cp
}

// Start returns the first waypoint.
func (p Path) Start() Point {
	return p.Point(0)
}

// Segment returns the endpoints of segment i. The segment past the last
// waypoint degenerates to the final point.
func (p Path) Segment(i int) (from, to Point) {
	return p.Point(i), p.Point(i + 1)
}

// PositionAt interpolates the position on segment i at fraction t.
func (p Path) PositionAt(i int, t float64) Point {
	from, to := p.Segment(i)
	return Lerp(from, to, t)
}

// DistanceTo returns the smallest distance from pt to any segment.
func (p Path) DistanceTo(pt Point) float64 {
	if len(p.points) == 1 {
		return Distance(pt, p.points[0])
	}
	best := math.Inf(1)
	for i := 0; i < p.Segments(); i++ {
		a, b := p.Segment(i)
		d := Distance(pt, ClosestPointOnSegment(pt, a, b))
		if d < best {
			best = d
		}
	}
	return best
}
