package anchors

import (
	"go/token"

	"github.com/sirkon/rbtree"
)

// Mark is what a directive leaves on the statement it is attached to.
type Mark struct {
	Group     string
	Directive token.Pos
}

// Index keeps directive statement spans of a package.
type Index struct {
	tree *rbtree.Tree[*span]
	hits map[token.Pos]int
}

// NewIndex creates an empty index.
func NewIndex() *Index {
	return &Index{
		tree: rbtree.New[*span](),
		hits: map[token.Pos]int{},
	}
}

// Add registers the mark over the [start, end] span. Spans can nest or be equal, but must
// not overlap partially. A span containing more than one already registered span must be
// added before them.
func (x *Index) Add(mark Mark, start, end token.Pos) {
	attachSpan(x.tree, &span{
		start: start,
		end:   end,
		marks: []Mark{mark},
	})
	if _, ok := x.hits[mark.Directive]; !ok {
		x.hits[mark.Directive] = 0
	}
}

// Lookup returns marks of the innermost span covering the position and counts a hit for
// each of their directives.
func (x *Index) Lookup(pos token.Pos) []Mark {
	if !pos.IsValid() {
		return nil
	}

	top := searchSpan(x.tree, pos)
	if top == nil {
		return nil
	}

	marks := innermost(top, pos)
	for _, m := range marks {
		x.hits[m.Directive]++
	}

	return marks
}

// Hits returns how many lookups the directive served.
func (x *Index) Hits(directive token.Pos) int {
	return x.hits[directive]
}
