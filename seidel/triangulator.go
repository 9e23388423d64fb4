package seidel

// This implements Raimund Seidel's 1991 algorithm for decomposing a set of
// simple, non-intersecting polygon loops into a trapezoidal map, along with
// the query structure for logarithmic point location in the result. The two
// are built together by inserting polygon segments one at a time in random
// order: each insertion first splits the containing trapezoids horizontally
// at the segment's endpoints, then walks the segment from top to bottom,
// slicing every trapezoid it passes through.
//
// Nesting needs no special casing: a hole's loop just contributes segments
// like any other, and the winding convention (solids counterclockwise, holes
// clockwise) is enough to classify every trapezoid as inside or outside once
// the map is built.
//
// All four record kinds live in append-only tables on the Triangulator, and
// every reference between records is a table slot. Splits recycle the
// original slot as one half and append the other, so slots stay live for the
// whole build and the tables never shrink.

import (
	"math"
	"math/rand"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// How far the synthetic bounding box clears the input's extents.
const boxMargin = 1.0

type Triangulator struct {
	Points   []Point
	Segments []Segment
	Traps    []Trapezoid
	Nodes    []Node
	Root     int

	// Rand drives the segment insertion order, which is what gives the
	// expected O(n log n) build. It is seeded with a constant so runs are
	// reproducible; swap it out or reseed for nondeterministic builds.
	Rand *rand.Rand

	// Logger receives construction progress at debug level. No-op unless
	// replaced.
	Logger *zap.Logger

	done  []bool // which points have been inserted
	built bool
}

// New ingests the polygon loops into the point and segment tables and seeds
// the map with its bounding-box trapezoid and the root of the query
// structure. Loops are implicitly closed; solid loops wind counterclockwise
// and holes clockwise. Horizontal edges are stored as given here and
// rejected when an insertion tries to use one.
func New(loops [][]Point) (*Triangulator, error) {
	if len(loops) == 0 {
		return nil, errors.Wrap(ErrDegenerateLoop, "no loops given")
	}
	total := 0
	for i, loop := range loops {
		if len(loop) < 3 {
			return nil, errors.Wrapf(ErrDegenerateLoop, "loop %d has %d points", i, len(loop))
		}
		total += len(loop)
	}

	tr := &Triangulator{
		Points:   make([]Point, 0, total+4),
		Segments: make([]Segment, 0, total+2),
		Rand:     rand.New(rand.NewSource(0)),
		Logger:   zap.NewNop(),
	}

	// One point per loop point, one segment per consecutive pair with
	// wraparound.
	for _, loop := range loops {
		base := len(tr.Points)
		tr.Points = append(tr.Points, loop...)
		for i := range loop {
			a := base + i
			b := base + CircularIndex(i+1, len(loop))
			tr.Segments = append(tr.Segments, newSegment(tr.Points, a, b))
		}
	}

	// Bounding box of all the loops, inflated so that no input point can
	// touch it.
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range tr.Points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	minX -= boxMargin
	minY -= boxMargin
	maxX += boxMargin
	maxY += boxMargin

	// Box corners, then the two synthetic side segments in the last two
	// segment slots.
	c := len(tr.Points)
	tr.Points = append(tr.Points,
		Point{minX, minY}, Point{minX, maxY},
		Point{maxX, minY}, Point{maxX, maxY},
	)
	left := newSegment(tr.Points, c, c+1)
	left.Boundary = true
	right := newSegment(tr.Points, c+2, c+3)
	right.Boundary = true
	tr.Segments = append(tr.Segments, left, right)

	tr.done = make([]bool, len(tr.Points))

	// Seed trapezoid spanning the whole box, and the root leaf standing
	// for it.
	tr.Traps = append(tr.Traps, Trapezoid{
		YMin: minY, YMax: maxY,
		BotP: c, TopP: c + 1,
		Left:  len(tr.Segments) - 2,
		Right: len(tr.Segments) - 1,
		Above: noNeighbors, Below: noNeighbors,
		Sink: 0,
	})
	tr.Nodes = append(tr.Nodes, Node{Kind: SinkNode, Key: 0, First: -1, Second: -1})
	tr.Root = 0

	tr.Logger.Debug("ingested loops",
		zap.Int("loops", len(loops)),
		zap.Int("points", len(tr.Points)),
		zap.Int("segments", len(tr.Segments)))
	return tr, nil
}

// Build inserts every polygon segment in shuffled order. It panics with the
// package's internal error convention on unsupported input such as
// horizontal edges; Decompose at the package root converts that back into an
// error. A Triangulator builds once; make a fresh one per polygon set.
func (tr *Triangulator) Build() {
	if tr.built {
		fatalf("already built; a Triangulator is single use")
	}
	tr.built = true

	order := make([]int, len(tr.Segments)-2)
	for i := range order {
		order[i] = i
	}
	tr.Rand.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})

	for _, si := range order {
		s := &tr.Segments[si]
		if s.IsHorizontal(tr.Points) {
			fatalWrapf(ErrHorizontalEdge, "segment S%d %v-%v", si, tr.Points[s.A], tr.Points[s.B])
		}
		tr.InsertPoint(s.A)
		tr.InsertPoint(s.B)
		tr.InsertSegment(si)
	}

	tr.Logger.Debug("built trapezoidal map",
		zap.Int("trapezoids", len(tr.Traps)),
		zap.Int("nodes", len(tr.Nodes)))
}

// Contains reports whether p is inside the polygon set, by locating its
// trapezoid in the finished map. The answer for points exactly on an edge
// can go either way.
func (tr *Triangulator) Contains(p Point) bool {
	return tr.IsInside(tr.Find(p))
}
