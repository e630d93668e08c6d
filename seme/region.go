package seme

import (
	"fmt"
	"iter"
	"slices"
)

// Region is a single entry, multiple exit region. See the package documentation for the
// definition.
//
// The zero value is an empty region. Use [Region.AddPoint] and [Region.AddRegion] to grow it.
type Region[P Point] struct {
	head  P
	tails []P
}

// Empty returns an empty region whose head is the entry of g.
func Empty[P Point](g Graph[P]) Region[P] {
	return Region[P]{head: g.Entry()}
}

// IsEmpty checks if the region has no points at all.
func (r *Region[P]) IsEmpty() bool {
	return len(r.tails) == 0
}

// Head returns the single entry of the region.
func (r *Region[P]) Head() P {
	return r.head
}

// Tails returns a copy of region exits in insertion order.
func (r *Region[P]) Tails() []P {
	return slices.Clone(r.tails)
}

// Clone returns an independent copy of the region.
func (r *Region[P]) Clone() Region[P] {
	return Region[P]{
		head:  r.head,
		tails: slices.Clone(r.tails),
	}
}

func (r *Region[P]) String() string {
	if r.IsEmpty() {
		return "{}"
	}

	return fmt.Sprintf("{%v, %v}", r.head, r.tails)
}

// Contains checks if the point belongs to the region.
func (r *Region[P]) Contains(g Graph[P], point P) bool {
	return g.Dominates(r.head, point) && r.dominatesAnyTail(g, point)
}

// Members returns points of the universe that belong to the region, in universe order.
func (r *Region[P]) Members(g Graph[P], universe iter.Seq[P]) []P {
	var res []P
	for point := range universe {
		if r.Contains(g, point) {
			res = append(res, point)
		}
	}

	return res
}

func (r *Region[P]) dominatesAnyTail(g Graph[P], point P) bool {
	return slices.ContainsFunc(r.tails, func(tail P) bool {
		return g.Dominates(point, tail)
	})
}
