package seme

import (
	"cmp"
	"fmt"
	"iter"
)

// Point identifies a node of the flow graph.
type Point interface {
	cmp.Ordered
}

// Graph gives read-only access to a flow graph and its dominator tree.
//
// Implementations are expected to be cheap values (a pointer or a small struct) which can
// be passed around freely. Regions never mutate or retain them.
type Graph[P Point] interface {
	// Entry returns the root of the flow graph. It dominates every other point.
	Entry() P

	// Predecessors iterates over direct flow-graph predecessors of the point.
	Predecessors(point P) iter.Seq[P]

	// ImmediateDominator returns the parent of the point on the dominator tree.
	// It reports false for the entry point, which has no parent.
	ImmediateDominator(point P) (P, bool)

	// Dominates reports whether a dominates b. Every point dominates itself.
	Dominates(a, b P) bool

	// MutualDominator returns the nearest common ancestor of a and b on the
	// dominator tree. It always exists since the entry dominates everything.
	MutualDominator(a, b P) P
}

// immediateDominator steps one level up the dominator tree. Walks in this package always
// stop at the head or at a tail first, so running out of dominators means the graph
// handed in is broken.
func immediateDominator[P Point](g Graph[P], point P) P {
	idom, ok := g.ImmediateDominator(point)
	if !ok {
		panic(fmt.Sprintf("seme: point %v has no immediate dominator, dominator tree is malformed", point))
	}

	return idom
}
