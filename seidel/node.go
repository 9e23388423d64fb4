package seidel

// The query structure is the search half of the map: a binary decision
// structure whose leaves stand for trapezoids, letting us find the trapezoid
// containing a point in expected logarithmic time. It grows in place as
// trapezoids split. When a trapezoid is split in two, the leaf that stood for
// it morphs into a Y or X decision node over two fresh leaves, which keeps
// every link from existing parents valid without ever touching them.

// NodeKind discriminates the three query node variants.
type NodeKind uint8

const (
	// SinkNode is a leaf; Key is the slot of the trapezoid it stands for.
	SinkNode NodeKind = iota
	// YNode splits on the point at slot Key, ordered by height with X
	// breaking ties. Queries below go to First, the rest to Second.
	YNode
	// XNode splits on the side of the segment at slot Key. Queries right
	// of its supporting line go to Second, queries on or left of it go to
	// First.
	XNode
)

func (k NodeKind) String() string {
	switch k {
	case SinkNode:
		return "Sink"
	case YNode:
		return "Y"
	case XNode:
		return "X"
	}
	return "invalid"
}

// Node is one record of the query structure. Key indexes the point, segment,
// or trapezoid table depending on Kind. First and Second are child slots,
// -1 for leaves. The slot a node occupies doubles as its id in dumps; slots
// are handed out in allocation order and never reused, so the ids also tell
// the story of how the structure grew.
type Node struct {
	Kind          NodeKind
	Key           int
	First, Second int
}

func (tr *Triangulator) appendSink(t int) int {
	tr.Nodes = append(tr.Nodes, Node{Kind: SinkNode, Key: t, First: -1, Second: -1})
	return len(tr.Nodes) - 1
}

// Find walks the query structure from the root and returns the slot of the
// trapezoid containing p. Points exactly at a split height resolve by the
// X tie-break of Point.Below, and points exactly on a segment's line resolve
// to its left. Callers that need a particular side of already inserted
// geometry should use FindSlice instead.
func (tr *Triangulator) Find(p Point) int {
	return tr.Nodes[tr.findNode(p)].Key
}

func (tr *Triangulator) findNode(p Point) int {
	n := tr.Root
	for tr.Nodes[n].Kind != SinkNode {
		node := &tr.Nodes[n]
		switch node.Kind {
		case YNode:
			if p.Below(tr.Points[node.Key]) {
				n = node.First
			} else {
				n = node.Second
			}
		case XNode:
			if tr.Segments[node.Key].IsLeftOf(tr.Points, p) {
				n = node.Second
			} else {
				n = node.First
			}
		}
	}
	return n
}

// FindSlice locates a trapezoid for a query that sits exactly on inserted
// geometry: the point at slot pi, probed as an endpoint of the segment at
// slot along. Plain coordinate comparisons can't resolve such a query, so
// two tie-breaks apply. At a Y node splitting on the query point itself,
// below picks the side. At an X node whose segment shares the query point,
// the far endpoint of along substitutes for the query: testing it against
// the node's supporting line is the same as nudging the query along the new
// segment, since the side test doesn't care about the key segment's extent.
func (tr *Triangulator) FindSlice(pi, along int, below bool) int {
	p := tr.Points[pi]
	n := tr.Root
	for tr.Nodes[n].Kind != SinkNode {
		node := &tr.Nodes[n]
		switch node.Kind {
		case YNode:
			switch {
			case node.Key == pi:
				if below {
					n = node.First
				} else {
					n = node.Second
				}
			case p.Below(tr.Points[node.Key]):
				n = node.First
			default:
				n = node.Second
			}
		case XNode:
			key := &tr.Segments[node.Key]
			q := p
			if key.A == pi || key.B == pi {
				s := &tr.Segments[along]
				far := s.A
				if far == pi {
					far = s.B
				}
				q = tr.Points[far]
			}
			if key.IsLeftOf(tr.Points, q) {
				n = node.Second
			} else {
				n = node.First
			}
		}
	}
	return tr.Nodes[n].Key
}
