package seidel

import "github.com/pkg/errors"

// selfCheck makes every mutation revalidate the whole structure. Tests flip
// it on; it is far too slow to leave on for real use.
var selfCheck = false

func (tr *Triangulator) mustValidate() {
	if err := tr.Validate(); err != nil {
		fatalf("self check failed: %v", err)
	}
}

// Validate checks the structural invariants of the map and the query
// structure and returns an error naming the first violation it finds: every
// leaf and trapezoid pair off one to one, every trapezoid has sane extents
// and ordered sides, adjacency is symmetric with at most two stable
// neighbors per side and aligned boundaries, and every inserted point has
// exactly one Y node.
func (tr *Triangulator) Validate() error {
	for i := range tr.Nodes {
		node := &tr.Nodes[i]
		if node.Kind != SinkNode {
			continue
		}
		if node.Key < 0 || node.Key >= len(tr.Traps) {
			return errors.Errorf("sink N%d points at trapezoid slot %d of %d", i, node.Key, len(tr.Traps))
		}
		if tr.Traps[node.Key].Sink != i {
			return errors.Errorf("sink N%d points at T%d, which is represented by N%d", i, node.Key, tr.Traps[node.Key].Sink)
		}
	}

	for t := range tr.Traps {
		trap := &tr.Traps[t]

		n := trap.Sink
		if n < 0 || n >= len(tr.Nodes) || tr.Nodes[n].Kind != SinkNode || tr.Nodes[n].Key != t {
			return errors.Errorf("T%d is not represented by its sink N%d", t, n)
		}

		if trap.YMin > trap.YMax+Tolerance {
			return errors.Errorf("T%d has inverted extents y[%v, %v]", t, trap.YMin, trap.YMax)
		}
		if !Equal(tr.Points[trap.BotP].Y, trap.YMin) || !Equal(tr.Points[trap.TopP].Y, trap.YMax) {
			return errors.Errorf("T%d boundary points P%d, P%d disagree with its extents y[%v, %v]",
				t, trap.BotP, trap.TopP, trap.YMin, trap.YMax)
		}
		left, right := &tr.Segments[trap.Left], &tr.Segments[trap.Right]
		for _, y := range [3]float64{trap.YMin, (trap.YMin + trap.YMax) / 2, trap.YMax} {
			if left.SolveForX(tr.Points, y) > right.SolveForX(tr.Points, y)+Tolerance {
				return errors.Errorf("T%d has crossed sides at y=%v", t, y)
			}
		}

		if trap.Above.Len() > 2 || trap.Below.Len() > 2 {
			return errors.Errorf("T%d has more than two neighbors on a side", t)
		}
		for _, nb := range trap.Above {
			if nb == -1 {
				continue
			}
			if nb < 0 || nb >= len(tr.Traps) {
				return errors.Errorf("T%d has out of range upper neighbor %d", t, nb)
			}
			if !Equal(tr.Traps[nb].YMin, trap.YMax) {
				return errors.Errorf("T%d and its upper neighbor T%d do not share a boundary", t, nb)
			}
			if !tr.Traps[nb].Below.Contains(t) {
				return errors.Errorf("T%d names T%d above, which does not name it back", t, nb)
			}
		}
		for _, nb := range trap.Below {
			if nb == -1 {
				continue
			}
			if nb < 0 || nb >= len(tr.Traps) {
				return errors.Errorf("T%d has out of range lower neighbor %d", t, nb)
			}
			if !Equal(tr.Traps[nb].YMax, trap.YMin) {
				return errors.Errorf("T%d and its lower neighbor T%d do not share a boundary", t, nb)
			}
			if !tr.Traps[nb].Above.Contains(t) {
				return errors.Errorf("T%d names T%d below, which does not name it back", t, nb)
			}
		}
	}

	splits := make(map[int]int)
	for i := range tr.Nodes {
		if tr.Nodes[i].Kind == YNode {
			splits[tr.Nodes[i].Key]++
		}
	}
	for pi := range tr.Points {
		want := 0
		if tr.done[pi] {
			want = 1
		}
		if splits[pi] != want {
			return errors.Errorf("point P%d has %d Y nodes, want %d", pi, splits[pi], want)
		}
	}

	return nil
}
