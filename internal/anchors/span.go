package anchors

import (
	"go/token"

	"github.com/sirkon/rbtree"
)

// span is a [start, end] range of a directive statement. Spans strictly inside it live
// in children.
type span struct {
	start token.Pos
	end   token.Pos

	marks    []Mark
	children *rbtree.Tree[*span]
}

// Cmp orders disjoint spans by position. Any overlap compares as equal, and since spans
// only nest, equality means one of them contains the other.
func (n *span) Cmp(other *span) int {
	if n.end < other.start {
		return -1
	}
	if n.start > other.end {
		return 1
	}

	return 0
}

func (n *span) contains(other *span) bool {
	return n.start <= other.start && n.end >= other.end
}

func (n *span) same(other *span) bool {
	return n.start == other.start && n.end == other.end
}

// attachSpan inserts s into t keeping the containment hierarchy:
//
//   - s overlapping nothing becomes a new top level entry.
//   - s equal to an existing span r adds its marks to r.
//   - s containing r takes the place of r inside the tree and r moves into its children.
//   - s contained in r goes down into r's children.
func attachSpan(t *rbtree.Tree[*span], s *span) {
	r := t.InsertReturn(s)
	if r == s {
		return
	}

	switch {
	case r.same(s):
		r.marks = append(r.marks, s.marks...)

	case s.contains(r):
		// The tree keeps the pointer to r, so r itself becomes s.
		old := *r
		*r = *s
		if r.children == nil {
			r.children = rbtree.New[*span]()
		}
		attachSpan(r.children, &old)

	case r.contains(s):
		if r.children == nil {
			r.children = rbtree.New[*span]()
		}
		attachSpan(r.children, s)

	default:
		panic("anchors: partially overlapping spans are not supported")
	}
}

// innermost returns marks of the deepest span under n covering pos.
func innermost(n *span, pos token.Pos) []Mark {
	for n.children != nil {
		child := searchSpan(n.children, pos)
		if child == nil {
			break
		}
		n = child
	}

	return n.marks
}

// searchSpan returns the span of t covering pos or nil if there is none. Spans of a single
// level are disjoint, so the in order walk stops at the first one starting after pos.
func searchSpan(t *rbtree.Tree[*span], pos token.Pos) *span {
	probe := &span{start: pos, end: pos}
	for s := range t.Iter() {
		switch s.Cmp(probe) {
		case 0:
			return s
		case 1:
			return nil
		}
	}

	return nil
}
