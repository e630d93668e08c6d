package seme

import (
	"fmt"
	"iter"
	"slices"
)

// Invariant names a property every region must keep.
type Invariant int

const (
	_ Invariant = iota

	// InvariantHeadDominance the head dominates every tail.
	InvariantHeadDominance

	// InvariantDuplicateTail no tail is listed twice.
	InvariantDuplicateTail

	// InvariantTailAntichain no tail dominates another tail.
	InvariantTailAntichain

	// InvariantContinuity predecessors of every member except the head are members.
	InvariantContinuity
)

func (i Invariant) String() string {
	switch i {
	case InvariantHeadDominance:
		return "head-dominance"
	case InvariantDuplicateTail:
		return "duplicate-tail"
	case InvariantTailAntichain:
		return "tail-antichain"
	case InvariantContinuity:
		return "continuity"
	default:
		return fmt.Sprintf("invariant(%d)", int(i))
	}
}

// InvariantError describes a broken region.
type InvariantError struct {
	Invariant Invariant
	Message   string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("seme: %s violated: %s", e.Invariant, e.Message)
}

// Verify checks region invariants. Continuity is only checked for members found in the
// universe, so the universe should cover every point of the graph.
//
// A nil error means the region is fine. Otherwise it is an *InvariantError.
func (r *Region[P]) Verify(g Graph[P], universe iter.Seq[P]) error {
	if r.IsEmpty() {
		return nil
	}

	for i, tail := range r.tails {
		if !g.Dominates(r.head, tail) {
			return &InvariantError{
				Invariant: InvariantHeadDominance,
				Message:   fmt.Sprintf("head %v does not dominate tail %v", r.head, tail),
			}
		}

		if j := slices.Index(r.tails[i+1:], tail); j >= 0 {
			return &InvariantError{
				Invariant: InvariantDuplicateTail,
				Message:   fmt.Sprintf("tail %v is listed at %d and %d", tail, i, i+1+j),
			}
		}
	}

	for _, a := range r.tails {
		for _, b := range r.tails {
			if a == b {
				continue
			}

			if g.Dominates(a, b) {
				return &InvariantError{
					Invariant: InvariantTailAntichain,
					Message:   fmt.Sprintf("tail %v dominates tail %v", a, b),
				}
			}
		}
	}

	for point := range universe {
		if point == r.head || !r.Contains(g, point) {
			continue
		}

		for pred := range g.Predecessors(point) {
			if !r.Contains(g, pred) {
				return &InvariantError{
					Invariant: InvariantContinuity,
					Message:   fmt.Sprintf("member %v has predecessor %v outside of the region", point, pred),
				}
			}
		}
	}

	return nil
}
