package seme

import (
	"slices"
)

// AddPoint grows the region until it contains the point and is continuous again.
//
// Predecessors pulled in by continuity repair are queued and inserted one by one by this
// call, so the work is bounded by the number of predecessor edges met on the walked
// dominator tree paths rather than by the call stack.
func (r *Region[P]) AddPoint(g Graph[P], point P) {
	pending := []P{point}
	for len(pending) > 0 {
		last := len(pending) - 1
		p := pending[last]
		pending = r.insert(g, p, pending[:last])
	}
}

// AddRegion grows the region until it contains every point of other.
//
// The head and tails of other are replayed through AddPoint. It is not the cheapest way
// to compute a union, but it reuses the only code path which is known to keep invariants.
func (r *Region[P]) AddRegion(g Graph[P], other *Region[P]) {
	if other.IsEmpty() {
		return
	}

	tails := slices.Clone(other.tails)
	r.AddPoint(g, other.head)
	for _, tail := range tails {
		r.AddPoint(g, tail)
	}
}

// insert adds a single point and returns pending extended with points continuity
// repair wants to see inserted.
func (r *Region[P]) insert(g Graph[P], point P, pending []P) []P {
	if r.IsEmpty() {
		r.head = point
		r.tails = append(r.tails, point)
		return pending
	}

	if g.Dominates(r.head, point) {
		return r.addDominatedByHead(g, point, pending)
	}

	// The head H does not dominate the point P. Nothing can be done without a new head M,
	// the nearest point dominating both:
	//
	//	      M
	//	     . .
	//	    H   P
	//	   / \
	//	  T1..Tn
	//
	// Nodes on the way from H up to M become members, so their predecessors must join the
	// region as well. Those predecessors are dominated by M, they cannot move the head again.
	// After that P is dominated by the head and falls into a regular case.
	oldHead := r.head
	newHead := g.MutualDominator(oldHead, point)
	r.head = newHead
	pending = r.ensureContinuity(g, newHead, oldHead, pending)

	return r.addDominatedByHead(g, point, pending)
}

// addDominatedByHead inserts the point which is known to be dominated by the head.
//
// There are three outcomes:
//
//   - The point dominates a tail, it is already inside.
//   - A tail dominates the point. The tail is replaced with the point and the path between
//     them is repaired.
//   - The point is not related to any tail. It becomes a new tail and the path from the
//     head is repaired.
//
// A walk up the dominator tree from the point tells which one it is: meeting a tail
// first means extension, meeting the head first means either of the other two.
func (r *Region[P]) addDominatedByHead(g Graph[P], point P, pending []P) []P {
	p := point
	for {
		if i := slices.Index(r.tails, p); i >= 0 {
			if p == point {
				return pending
			}

			r.tails[i] = point
			return r.ensureContinuity(g, p, point, pending)
		}

		if p == r.head {
			return r.addBranch(g, point, pending)
		}

		p = immediateDominator(g, p)
	}
}

// addBranch handles a head dominated point which no tail dominates.
func (r *Region[P]) addBranch(g Graph[P], point P, pending []P) []P {
	if r.dominatesAnyTail(g, point) {
		return pending
	}

	r.tails = append(r.tails, point)
	return r.ensureContinuity(g, r.head, point, pending)
}

// ensureContinuity queues predecessors of every point lying between parent (exclusive)
// and child (inclusive) on the dominator tree.
//
// When both parent and child are dominated by the head the queued points cannot change
// the head. Take a point N strictly dominated by parent and its predecessor Q. If Q were
// not dominated by the head there would be a path into N bypassing the head, yet the head
// dominates N. So Q is either the head itself or dominated by it.
func (r *Region[P]) ensureContinuity(g Graph[P], parent, child P, pending []P) []P {
	for p := child; p != parent; p = immediateDominator(g, p) {
		for pred := range g.Predecessors(p) {
			pending = append(pending, pred)
		}
	}

	return pending
}
