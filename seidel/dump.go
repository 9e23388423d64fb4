package seidel

import (
	"fmt"
	"strings"
)

// Outline materializes trapezoid slot t as a quadrilateral, inset by the
// tolerance so the corners evaluate just off any degenerate intersections.
// Corners run counterclockwise from the bottom left.
func (tr *Triangulator) Outline(t int) [4]Point {
	trap := &tr.Traps[t]
	yb := trap.YMin + Tolerance
	yt := trap.YMax - Tolerance
	left, right := &tr.Segments[trap.Left], &tr.Segments[trap.Right]
	return [4]Point{
		{left.SolveForX(tr.Points, yb), yb},
		{right.SolveForX(tr.Points, yb), yb},
		{right.SolveForX(tr.Points, yt), yt},
		{left.SolveForX(tr.Points, yt), yt},
	}
}

// DumpTrapezoids renders the whole trapezoid table, one slot per line with
// its extents, sides, and outline corners. For a fixed insertion order the
// output is byte for byte stable, which makes it useful as a regression
// golden.
func (tr *Triangulator) DumpTrapezoids() string {
	var b strings.Builder
	for t := range tr.Traps {
		trap := &tr.Traps[t]
		fmt.Fprintf(&b, "T%d y[%v %v] L:S%d R:S%d", t, trap.YMin, trap.YMax, trap.Left, trap.Right)
		for _, p := range tr.Outline(t) {
			fmt.Fprintf(&b, " (%v %v)", p.X, p.Y)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// DumpTree serializes the query structure as an indented tree, one node per
// line with its slot and payload: the split height for Y nodes, the segment
// for X nodes, the trapezoid for sinks. First children print before Second
// children.
func (tr *Triangulator) DumpTree() string {
	var b strings.Builder
	tr.dumpNode(&b, tr.Root, 0)
	return b.String()
}

func (tr *Triangulator) dumpNode(b *strings.Builder, n, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
	node := &tr.Nodes[n]
	switch node.Kind {
	case SinkNode:
		fmt.Fprintf(b, "Sink N%d T%d\n", n, node.Key)
		return
	case YNode:
		fmt.Fprintf(b, "Y N%d P%d y=%v\n", n, node.Key, tr.Points[node.Key].Y)
	case XNode:
		fmt.Fprintf(b, "X N%d S%d\n", n, node.Key)
	}
	tr.dumpNode(b, node.First, depth+1)
	tr.dumpNode(b, node.Second, depth+1)
}
