package seidel

import (
	"fmt"

	"github.com/logrusorgru/aurora"
)

// NeighborList holds the slots of the trapezoids adjacent across one
// horizontal boundary, with -1 marking empty entries. Trapezoids can have up
// to two neighbors per side in the stable state, but in the middle of a
// segment walk a boundary can briefly see three, until the continuation
// trapezoid is sliced in turn. This should never be the case after an
// insertion is complete.
type NeighborList [3]int

var noNeighbors = NeighborList{-1, -1, -1}

// Add a neighbor to the list. Duplicate adds are ignored.
func (nl *NeighborList) Add(t int) {
	for _, existing := range nl {
		if existing == t {
			return
		}
	}
	for i, existing := range nl {
		if existing == -1 {
			nl[i] = t
			return
		}
	}
	fatalf("too many neighbors")
}

// Remove a neighbor from the list. It is not an error to remove a slot that
// isn't there.
func (nl *NeighborList) Remove(t int) {
	for i, existing := range nl {
		if existing == t {
			nl[i] = -1
		}
	}
}

// ReplaceOrAdd replaces the given neighbor, or adds the replacement if the
// original isn't in the list. This is used when a trapezoid has been split
// and its other halves may or may not border the neighbor anymore.
func (nl *NeighborList) ReplaceOrAdd(orig, replacement int) {
	for i, existing := range nl {
		if existing == orig {
			nl[i] = replacement
			return
		}
	}
	nl.Add(replacement)
}

func (nl *NeighborList) Contains(t int) bool {
	for _, existing := range nl {
		if existing == t {
			return true
		}
	}
	return false
}

// Count of non-empty entries.
func (nl *NeighborList) Len() int {
	n := 0
	for _, existing := range nl {
		if existing != -1 {
			n++
		}
	}
	return n
}

// Trapezoid is one region of the map: bounded below by y = YMin, above by
// y = YMax, and on the sides by the Left and Right segments evaluated at the
// relevant height. Every record lives in the Triangulator's table and is
// identified by its slot. A record may be recycled in place as one half of a
// split while its sibling is appended, so callers must not hold element
// pointers across a mutation.
// BotP and TopP are the points whose insertions produced the horizontal
// boundaries, so every height carries an identity as well as a coordinate.
// Vertices at equal heights make raw Y comparisons ambiguous; walking and
// termination decisions compare these points instead.
type Trapezoid struct {
	YMin, YMax   float64
	BotP, TopP   int // point slots on the horizontal boundaries
	Left, Right  int // segment slots
	Above, Below NeighborList
	Sink         int // slot of the leaf currently standing for this trapezoid
}

// IsInside reports whether trapezoid slot t lies inside the polygon set. For
// counterclockwise solid loops the interior is always to the right of an
// edge whose original direction pointed down, and the clockwise winding of a
// hole flips that, so a trapezoid is interior exactly when both of its sides
// are real polygon edges and the left one points down.
func (tr *Triangulator) IsInside(t int) bool {
	trap := &tr.Traps[t]
	left, right := &tr.Segments[trap.Left], &tr.Segments[trap.Right]
	return !left.Boundary && !right.Boundary && left.Down
}

// DbgName gives a short colored name for a trapezoid slot: cyan for
// trapezoids against the synthetic bounding box, red for zero-height ones,
// green for ordinary ones.
func (tr *Triangulator) DbgName(t int) string {
	name := fmt.Sprintf("T%d", t)
	trap := &tr.Traps[t]
	switch {
	case tr.Segments[trap.Left].Boundary || tr.Segments[trap.Right].Boundary:
		return aurora.Cyan(name).String()
	case Equal(trap.YMin, trap.YMax):
		return aurora.Red(name).String()
	default:
		return aurora.Green(name).String()
	}
}

// DbgString renders a trapezoid slot with its extents and adjacency for
// panic messages and debug logs.
func (tr *Triangulator) DbgString(t int) string {
	trap := &tr.Traps[t]
	names := func(nl NeighborList) string {
		result := ""
		for _, nb := range nl {
			if nb == -1 {
				continue
			}
			if result != "" {
				result += " "
			}
			result += tr.DbgName(nb)
		}
		return result
	}
	return fmt.Sprintf(
		"%s y[%v, %v] <L: S%d, R: S%d> {⬆ %s} {⬇ %s}",
		tr.DbgName(t), trap.YMin, trap.YMax, trap.Left, trap.Right,
		names(trap.Above), names(trap.Below),
	)
}
