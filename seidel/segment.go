package seidel

// Point is a plain 2D coordinate. Points live in the Triangulator's
// append-only table, and every other record refers to a point by its table
// slot, so that records can be copied and recycled without aliasing concerns.
type Point struct {
	X, Y float64
}

// Below orders points as if the whole plane were rotated by an infinitesimal
// angle, so that no two distinct points ever share a height: ties in Y fall
// back to X. Every Y comparison that steers the structure goes through this,
// which is what lets vertices at equal heights coexist without degenerate
// splits.
func (p Point) Below(o Point) bool {
	if Equal(p.Y, o.Y) {
		return p.X < o.X
	}
	return p.Y < o.Y
}

// Segment is one polygon edge (or synthetic bounding side), stored by the
// slots of its endpoints. A is the upper endpoint and B the lower one once
// the segment has been normalized; which endpoint the original directed edge
// started from survives in Down. Slope caches the inverse slope dx/dy so
// that evaluating the segment's X at a height is a single multiply.
type Segment struct {
	A, B     int
	Slope    float64
	Down     bool // the original directed edge pointed downward
	Boundary bool // synthetic bounding-box side rather than a polygon edge
}

// newSegment builds the segment for the directed edge from a to b, normalized
// so that A is the upper endpoint. A horizontal edge has no upper endpoint
// and is stored as given; it is rejected when an insertion tries to use it.
func newSegment(points []Point, a, b int) Segment {
	s := Segment{A: a, B: b}
	switch {
	case points[a].Y > points[b].Y:
		s.Down = true
	case !Equal(points[a].Y, points[b].Y):
		s.A, s.B = b, a
	}
	s.Slope = (points[s.A].X - points[s.B].X) / (points[s.A].Y - points[s.B].Y)
	return s
}

func (s *Segment) IsHorizontal(points []Point) bool {
	return Equal(points[s.A].Y, points[s.B].Y)
}

// SolveForX evaluates the segment's X at height y. Like the side tests below,
// this extrapolates along the supporting line rather than clamping to the
// segment's extent, which is what the trapezoid geometry wants.
func (s *Segment) SolveForX(points []Point, y float64) float64 {
	return points[s.B].X + s.Slope*(y-points[s.B].Y)
}

// IsLeftOf reports whether the segment's supporting line lies to the left of
// p, by the sign of the cross product of A-B with p-B.
func (s *Segment) IsLeftOf(points []Point, p Point) bool {
	a, b := points[s.A], points[s.B]
	return (a.X-b.X)*(p.Y-b.Y)-(a.Y-b.Y)*(p.X-b.X) < 0
}

// IsRightOf reports whether the segment's supporting line lies to the right
// of p. Note that a point on the line is neither left nor right.
func (s *Segment) IsRightOf(points []Point, p Point) bool {
	a, b := points[s.A], points[s.B]
	return (a.X-b.X)*(p.Y-b.Y)-(a.Y-b.Y)*(p.X-b.X) > 0
}
