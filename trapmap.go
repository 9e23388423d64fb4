// An asymptotically fast trapezoidal decomposition package for Go.
//
// This package converts a set of simple polygons, which may be non-convex,
// may be disjoint, and may contain holes, into a trapezoidal map: a covering
// of the plane around them by axially bounded trapezoids, paired with a
// query structure that locates the trapezoid containing any point in
// logarithmic time. That makes repeated point-in-polygon queries against the
// same shape cheap, and the map itself is the standard first stage of seam
// carving, triangulation, and other sweep-style geometry.
package trapmap

import "github.com/osuushi/trapmap/seidel"

type Point = seidel.Point
type Polygon = seidel.Polygon

// Map is a built trapezoidal decomposition. See the seidel package for the
// lower level pieces: incremental insertion, the raw tables, diagnostics.
type Map = seidel.Triangulator

// ErrHorizontalEdge is reported when any polygon edge has equal endpoint
// heights. The decomposition does not support horizontal edges; rotating the
// input slightly is the usual workaround.
var ErrHorizontalEdge = seidel.ErrHorizontalEdge

// ErrDegenerateLoop is reported for loops with fewer than three points.
var ErrDegenerateLoop = seidel.ErrDegenerateLoop

// Decompose takes a set of point lists and builds their trapezoidal map.
//
// The polygons must be simple and non-intersecting. "Solid" polygons must
// give their points in counterclockwise order, while "holes" must be in
// clockwise order. Loops close themselves; don't repeat the first point.
//
// The order of the polygons is irrelevant.
func Decompose(loops ...[]Point) (result *Map, err error) {
	defer func() {
		recoveredErr := seidel.HandleDecomposePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	tr, err := seidel.New(loops)
	if err != nil {
		return nil, err
	}
	tr.Build()
	return tr, nil
}

// Contains reports whether p is inside the shape described by the loops.
// This is a convenience for one-off checks; if you are testing many points,
// call Decompose once and use the map's Contains.
func Contains(p Point, loops ...[]Point) (bool, error) {
	m, err := Decompose(loops...)
	if err != nil {
		return false, err
	}
	return m.Contains(p), nil
}
