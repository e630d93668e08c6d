// Package domgraph provides a flow graph built from a list of edges together with its
// dominator tree. It implements seme.Graph[int64] and is mostly used in tests and tools
// where there is no compiler IR at hand.
package domgraph

import (
	"fmt"
	"iter"
	"slices"

	"github.com/oleiade/lane"
	"gonum.org/v1/gonum/graph/flow"
	"gonum.org/v1/gonum/graph/simple"
)

// Edge is a flow graph edge.
type Edge struct {
	From int64
	To   int64
}

// Edges builds edges out of a flat list of from-to pairs.
func Edges(pairs ...int64) []Edge {
	if len(pairs)%2 != 0 {
		panic(fmt.Sprintf("domgraph: odd number of edge ends %d", len(pairs)))
	}

	res := make([]Edge, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		res = append(res, Edge{From: pairs[i], To: pairs[i+1]})
	}

	return res
}

// Graph is an immutable flow graph with a precomputed dominator tree.
type Graph struct {
	entry int64
	nodes []int64
	preds map[int64][]int64
	succs map[int64][]int64
	idom  map[int64]int64
	depth map[int64]int
}

// New builds a graph rooted at entry. Nodes not reachable from the entry are dropped along
// with their edges.
func New(entry int64, edges ...Edge) *Graph {
	succs := map[int64][]int64{}
	for _, e := range edges {
		if slices.Contains(succs[e.From], e.To) {
			continue
		}
		succs[e.From] = append(succs[e.From], e.To)
	}

	g := &Graph{
		entry: entry,
		preds: map[int64][]int64{},
		succs: map[int64][]int64{},
		idom:  map[int64]int64{},
		depth: map[int64]int{},
	}

	// Collect reachable nodes first.
	reached := map[int64]struct{}{entry: {}}
	q := lane.NewQueue()
	for q.Enqueue(entry); !q.Empty(); {
		p := q.Dequeue().(int64)
		g.nodes = append(g.nodes, p)
		for _, s := range succs[p] {
			if _, ok := reached[s]; ok {
				continue
			}
			reached[s] = struct{}{}
			q.Enqueue(s)
		}
	}
	slices.Sort(g.nodes)

	dg := simple.NewDirectedGraph()
	for _, p := range g.nodes {
		dg.AddNode(simple.Node(p))
	}
	for _, p := range g.nodes {
		for _, s := range succs[p] {
			g.succs[p] = append(g.succs[p], s)
			g.preds[s] = append(g.preds[s], p)
			if p == s {
				// Self loops cannot change dominance and simple graphs do not accept them.
				continue
			}
			dg.SetEdge(simple.Edge{F: simple.Node(p), T: simple.Node(s)})
		}
	}

	tree := flow.Dominators(simple.Node(entry), dg)
	for _, p := range g.nodes {
		if d := tree.DominatorOf(p); d != nil {
			g.idom[p] = d.ID()
		}
	}

	// Depths are laid out from the root down over the dominator tree.
	g.depth[entry] = 0
	q = lane.NewQueue()
	for q.Enqueue(entry); !q.Empty(); {
		p := q.Dequeue().(int64)
		for _, c := range tree.DominatedBy(p) {
			g.depth[c.ID()] = g.depth[p] + 1
			q.Enqueue(c.ID())
		}
	}

	return g
}

// Entry returns the root of the graph.
func (g *Graph) Entry() int64 {
	return g.entry
}

// Has checks if the node is reachable from the entry.
func (g *Graph) Has(p int64) bool {
	_, ok := g.depth[p]
	return ok
}

// Nodes returns reachable nodes in ascending order.
func (g *Graph) Nodes() []int64 {
	return slices.Clone(g.nodes)
}

// All iterates over reachable nodes in ascending order.
func (g *Graph) All() iter.Seq[int64] {
	return slices.Values(g.nodes)
}

// Predecessors iterates over direct predecessors of the node.
func (g *Graph) Predecessors(p int64) iter.Seq[int64] {
	return slices.Values(g.preds[p])
}

// Successors returns direct successors of the node.
func (g *Graph) Successors(p int64) []int64 {
	return slices.Clone(g.succs[p])
}

// ImmediateDominator returns the dominator tree parent of the node. There is no parent for
// the entry and for unknown nodes.
func (g *Graph) ImmediateDominator(p int64) (int64, bool) {
	d, ok := g.idom[p]
	return d, ok
}

// Dominates checks if a dominates b.
func (g *Graph) Dominates(a, b int64) bool {
	if !g.Has(a) || !g.Has(b) {
		return false
	}

	da := g.depth[a]
	for g.depth[b] > da {
		b = g.idom[b]
	}

	return a == b
}

// MutualDominator returns the nearest common dominator of a and b.
func (g *Graph) MutualDominator(a, b int64) int64 {
	if !g.Has(a) || !g.Has(b) {
		panic(fmt.Sprintf("domgraph: no mutual dominator for %d and %d, one of them is not in the graph", a, b))
	}

	for g.depth[a] > g.depth[b] {
		a = g.idom[a]
	}
	for g.depth[b] > g.depth[a] {
		b = g.idom[b]
	}
	for a != b {
		a = g.idom[a]
		b = g.idom[b]
	}

	return a
}
