package seidel

// Polygon is a single closed loop of points, the input unit for the
// decomposition.
type Polygon struct {
	Points []Point
}

// PolygonList treats a set of loops as one shape under the even-odd rule.
type PolygonList []Polygon

// Even-odd point-in-polygon over all the loops. This is provided primarily
// for testing the trapezoidal map against an independent answer. If you are
// checking many points inside the same large polygon set, it is more
// efficient to decompose it and use Contains.
func (pl PolygonList) ContainsPointByEvenOdd(p Point) bool {
	crossingCount := 0
	for _, poly := range pl {
		crossingCount += poly.CrossingCount(p)
	}
	return crossingCount%2 == 1
}

func (poly Polygon) ContainsPointByEvenOdd(p Point) bool {
	return poly.CrossingCount(p)%2 == 1
}

// Crossing count helper for even odd rule: the number of edges crossing the
// horizontal ray going right from p.
func (poly Polygon) CrossingCount(p Point) int {
	crossingCount := 0
	for i, vertex := range poly.Points {
		nextVertex := poly.Points[CircularIndex(i+1, len(poly.Points))]
		if (vertex.Y < p.Y) == (nextVertex.Y < p.Y) {
			continue
		}
		x := vertex.X + (nextVertex.X-vertex.X)*(p.Y-vertex.Y)/(nextVertex.Y-vertex.Y)
		if x > p.X {
			crossingCount++
		}
	}
	return crossingCount
}

func (poly Polygon) Reverse() Polygon {
	newPoly := Polygon{}
	for i := len(poly.Points) - 1; i >= 0; i-- {
		newPoly.Points = append(newPoly.Points, poly.Points[i])
	}
	return newPoly
}

// SignedArea by the shoelace formula, positive for counterclockwise loops.
func (poly Polygon) SignedArea() float64 {
	sum := 0.0
	for i, vertex := range poly.Points {
		nextVertex := poly.Points[CircularIndex(i+1, len(poly.Points))]
		sum += vertex.X*nextVertex.Y - nextVertex.X*vertex.Y
	}
	return sum / 2
}

func (poly Polygon) IsCCW() bool {
	return poly.SignedArea() > 0
}
