package seidel

import (
	"math"

	"go.uber.org/zap"
)

// InsertPoint splits the trapezoid containing the point at slot pi into a
// lower and an upper half along the point's horizontal. The original record
// is recycled as the lower half and keeps its lower neighbors; the upper
// half is appended and takes over the upper neighbors. The leaf that stood
// for the trapezoid becomes a Y node over two fresh sinks, lower side first.
// Returns the slot of the new upper trapezoid, or -1 if the point was
// already inserted, in which case nothing changes.
func (tr *Triangulator) InsertPoint(pi int) int {
	if tr.done[pi] {
		return -1
	}
	tr.done[pi] = true

	p := tr.Points[pi]
	n := tr.findNode(p)
	t := tr.Nodes[n].Key
	trap := tr.Traps[t] // copied, the slot is about to be recycled
	if p.Y < trap.YMin-Tolerance || p.Y > trap.YMax+Tolerance {
		fatalf("point P%d %v is outside the Y extent of %s", pi, p, tr.DbgString(t))
	}

	// Upper half appended, keeping the old upper neighbors.
	up := len(tr.Traps)
	tr.Traps = append(tr.Traps, Trapezoid{
		YMin: p.Y, YMax: trap.YMax,
		BotP: pi, TopP: trap.TopP,
		Left: trap.Left, Right: trap.Right,
		Above: trap.Above,
		Below: NeighborList{t, -1, -1},
	})

	// Lower half recycled in place, keeping the old lower neighbors.
	lower := &tr.Traps[t]
	lower.YMax = p.Y
	lower.TopP = pi
	lower.Above = NeighborList{up, -1, -1}

	// The old upper neighbors now border the upper half.
	for _, nb := range trap.Above {
		if nb != -1 {
			tr.Traps[nb].Below.ReplaceOrAdd(t, up)
		}
	}

	first := tr.appendSink(t)
	second := tr.appendSink(up)
	tr.Nodes[n] = Node{Kind: YNode, Key: pi, First: first, Second: second}
	tr.Traps[t].Sink = first
	tr.Traps[up].Sink = second

	tr.Logger.Debug("split trapezoid at point",
		zap.Int("point", pi),
		zap.Int("lower", t),
		zap.Int("upper", up))
	if selfCheck {
		tr.mustValidate()
	}
	return up
}

// InsertSegment splits every trapezoid the segment at slot si passes
// through, walking from the trapezoid just below its upper endpoint down
// through the bottom adjacency until the trapezoid resting on its lower
// endpoint has been sliced. The walk recognizes that trapezoid by the
// identity of its bottom boundary point, not its height, since other
// vertices may sit at the same height as the endpoint. Both endpoints must
// have been inserted already.
func (tr *Triangulator) InsertSegment(si int) {
	s := &tr.Segments[si]
	if s.IsHorizontal(tr.Points) {
		fatalWrapf(ErrHorizontalEdge, "segment S%d %v-%v", si, tr.Points[s.A], tr.Points[s.B])
	}
	if !tr.done[s.A] || !tr.done[s.B] {
		fatalf("segment S%d inserted before its endpoints", si)
	}
	tr.Logger.Debug("inserting segment", zap.Int("segment", si))

	t := tr.FindSlice(s.A, si, true)
	for {
		bp := tr.Traps[t].BotP
		right := tr.slice(t, si)
		if bp == s.B {
			break
		}
		if tr.Points[bp].Below(tr.Points[s.B]) {
			fatalf("segment S%d walked past its lower endpoint", si)
		}
		t = tr.nextBelow(t, right, si)
	}
	// The walk leaves three-way adjacency behind at each boundary it
	// crosses until the next slice cleans it up, so the structure is only
	// checkable once the whole segment is in.
	if selfCheck {
		tr.mustValidate()
	}
}

// nextBelow picks the trapezoid the segment continues into after a slice:
// the lower neighbor of either half whose interior the segment crosses at
// the shared boundary. The adjacency was just restitched by the slice, so
// the continuation can be read off it instead of searching from the root.
func (tr *Triangulator) nextBelow(left, right, si int) int {
	y := tr.Traps[left].YMin
	candidates := [6]int{
		tr.Traps[left].Below[0], tr.Traps[left].Below[1], tr.Traps[left].Below[2],
		tr.Traps[right].Below[0], tr.Traps[right].Below[1], tr.Traps[right].Below[2],
	}
	for _, c := range candidates {
		if c != -1 && tr.crossesInterior(c, si, y) {
			return c
		}
	}
	fatalf("segment S%d has no continuation below %s", si, tr.DbgName(left))
	return -1
}

// sharedProbe returns the endpoint of the segment at slot si opposite the
// vertex it shares with the segment at slot sj, or -1 if they share none.
// Testing that endpoint against sj's supporting line compares the two
// segments' slopes at the shared vertex; the same substitution FindSlice
// makes at X nodes.
func (tr *Triangulator) sharedProbe(si, sj int) int {
	s, o := &tr.Segments[si], &tr.Segments[sj]
	switch {
	case s.A == o.A || s.A == o.B:
		return s.B
	case s.B == o.A || s.B == o.B:
		return s.A
	}
	return -1
}

// crossesInterior reports whether the segment at slot si passes strictly
// between trapezoid t's sides at height y. When the segment's crossing lands
// exactly on a side, the two segments meet at a shared vertex there and the
// slope tie-break via sharedProbe decides which opens toward the other.
func (tr *Triangulator) crossesInterior(t, si int, y float64) bool {
	trap := &tr.Traps[t]
	sx := tr.Segments[si].SolveForX(tr.Points, y)
	lx := tr.Segments[trap.Left].SolveForX(tr.Points, y)
	rx := tr.Segments[trap.Right].SolveForX(tr.Points, y)

	var insideLeft bool
	switch {
	case sx > lx+Tolerance:
		insideLeft = true
	case sx < lx-Tolerance:
		insideLeft = false
	default:
		p := tr.sharedProbe(si, trap.Left)
		insideLeft = p != -1 && tr.Segments[trap.Left].IsLeftOf(tr.Points, tr.Points[p])
	}

	var insideRight bool
	switch {
	case sx < rx-Tolerance:
		insideRight = true
	case sx > rx+Tolerance:
		insideRight = false
	default:
		p := tr.sharedProbe(si, trap.Right)
		insideRight = p != -1 && tr.Segments[trap.Right].IsRightOf(tr.Points, tr.Points[p])
	}

	return insideLeft && insideRight
}

// slice splits trapezoid slot t along the segment at slot si, recycling t as
// the left half and appending the right half, and restitches the neighbors
// on both horizontal boundaries. The leaf standing for t becomes an X node,
// left side first. Returns the right half's slot.
//
// The preconditions are strict: the trapezoid must still be represented by a
// leaf, and the segment must pass through its full vertical extent.
func (tr *Triangulator) slice(t, si int) int {
	trap := tr.Traps[t] // copied, the slot is about to be recycled

	n := trap.Sink
	if tr.Nodes[n].Kind != SinkNode || tr.Nodes[n].Key != t {
		fatalf("%s is no longer represented by a leaf", tr.DbgName(t))
	}
	s := &tr.Segments[si]
	midY := (trap.YMin + trap.YMax) / 2
	if !tr.crossesInterior(t, si, midY) {
		fatalf("segment S%d does not pass through %s", si, tr.DbgString(t))
	}

	r := len(tr.Traps)
	tr.Traps = append(tr.Traps, Trapezoid{
		YMin: trap.YMin, YMax: trap.YMax,
		BotP: trap.BotP, TopP: trap.TopP,
		Left: si, Right: trap.Right,
		Above: noNeighbors, Below: noNeighbors,
	})
	tr.Traps[t].Right = si
	tr.Traps[t].Above = noNeighbors
	tr.Traps[t].Below = noNeighbors

	// Reattach each old neighbor to whichever halves it still touches: the
	// ones whose contact interval along the shared boundary has positive
	// length. This one rule covers a lone neighbor spanning both halves,
	// two neighbors whose own boundary meets the segment's crossing, a
	// neighbor spanning across the crossing, and a half pinched off by the
	// segment passing through a corner, which touches nothing on that side.
	sx := s.SolveForX(tr.Points, trap.YMax)
	lx := tr.Segments[trap.Left].SolveForX(tr.Points, trap.YMax)
	rx := tr.Segments[trap.Right].SolveForX(tr.Points, trap.YMax)
	for _, nb := range trap.Above {
		if nb == -1 {
			continue
		}
		neighbor := &tr.Traps[nb]
		nl := math.Max(tr.Segments[neighbor.Left].SolveForX(tr.Points, trap.YMax), lx)
		nr := math.Min(tr.Segments[neighbor.Right].SolveForX(tr.Points, trap.YMax), rx)
		touchesLeft := math.Min(nr, sx)-nl > Tolerance
		touchesRight := nr-math.Max(nl, sx) > Tolerance
		switch {
		case touchesLeft && touchesRight:
			tr.Traps[t].Above.Add(nb)
			tr.Traps[r].Above.Add(nb)
			neighbor.Below.Add(r)
		case touchesLeft:
			tr.Traps[t].Above.Add(nb)
		case touchesRight:
			tr.Traps[r].Above.Add(nb)
			neighbor.Below.ReplaceOrAdd(t, r)
		default:
			neighbor.Below.Remove(t)
		}
	}
	sx = s.SolveForX(tr.Points, trap.YMin)
	lx = tr.Segments[trap.Left].SolveForX(tr.Points, trap.YMin)
	rx = tr.Segments[trap.Right].SolveForX(tr.Points, trap.YMin)
	for _, nb := range trap.Below {
		if nb == -1 {
			continue
		}
		neighbor := &tr.Traps[nb]
		nl := math.Max(tr.Segments[neighbor.Left].SolveForX(tr.Points, trap.YMin), lx)
		nr := math.Min(tr.Segments[neighbor.Right].SolveForX(tr.Points, trap.YMin), rx)
		touchesLeft := math.Min(nr, sx)-nl > Tolerance
		touchesRight := nr-math.Max(nl, sx) > Tolerance
		switch {
		case touchesLeft && touchesRight:
			tr.Traps[t].Below.Add(nb)
			tr.Traps[r].Below.Add(nb)
			neighbor.Above.Add(r)
		case touchesLeft:
			tr.Traps[t].Below.Add(nb)
		case touchesRight:
			tr.Traps[r].Below.Add(nb)
			neighbor.Above.ReplaceOrAdd(t, r)
		default:
			neighbor.Above.Remove(t)
		}
	}

	first := tr.appendSink(t)
	second := tr.appendSink(r)
	tr.Nodes[n] = Node{Kind: XNode, Key: si, First: first, Second: second}
	tr.Traps[t].Sink = first
	tr.Traps[r].Sink = second

	tr.Logger.Debug("sliced trapezoid along segment",
		zap.Int("segment", si),
		zap.Int("left", t),
		zap.Int("right", r))
	return r
}
