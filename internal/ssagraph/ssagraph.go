// Package ssagraph exposes basic blocks of an SSA function as a flow graph with the
// dominator tree computed by the SSA builder. Points are block indices.
package ssagraph

import (
	"fmt"
	"iter"
	"slices"

	"golang.org/x/tools/go/ssa"

	"github.com/sirkon/seme/seme"
)

// Func implements seme.Graph[int] over blocks of an SSA function.
//
// The function must have a body. Block 0 is the entry.
type Func struct {
	fn *ssa.Function
}

// New wraps the function.
func New(fn *ssa.Function) Func {
	if len(fn.Blocks) == 0 {
		panic(fmt.Sprintf("ssagraph: function %s has no body", fn))
	}

	return Func{fn: fn}
}

// Function returns the underlying SSA function.
func (f Func) Function() *ssa.Function {
	return f.fn
}

// Entry returns the index of the entry block.
func (f Func) Entry() int {
	return 0
}

// Block returns the block with the given index.
func (f Func) Block(i int) *ssa.BasicBlock {
	return f.fn.Blocks[i]
}

// IsRecover checks if the block is where control continues after a recovered panic.
// It is the second root of the dominator forest and is not reachable from the entry.
func (f Func) IsRecover(i int) bool {
	return f.fn.Recover != nil && f.fn.Recover.Index == i
}

// Predecessors iterates over indices of predecessor blocks.
func (f Func) Predecessors(i int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for _, pred := range f.fn.Blocks[i].Preds {
			if !yield(pred.Index) {
				return
			}
		}
	}
}

// ImmediateDominator returns the index of the immediate dominator of the block.
func (f Func) ImmediateDominator(i int) (int, bool) {
	idom := f.fn.Blocks[i].Idom()
	if idom == nil {
		return 0, false
	}

	return idom.Index, true
}

// Dominates checks if the block a dominates the block b.
func (f Func) Dominates(a, b int) bool {
	return f.fn.Blocks[a].Dominates(f.fn.Blocks[b])
}

// MutualDominator returns the nearest block dominating both a and b.
func (f Func) MutualDominator(a, b int) int {
	target := f.fn.Blocks[b]
	for x := f.fn.Blocks[a]; x != nil; x = x.Idom() {
		if x.Dominates(target) {
			return x.Index
		}
	}

	panic(fmt.Sprintf("ssagraph: blocks %d and %d of %s have no mutual dominator", a, b, f.fn))
}

// Reachable returns indices of blocks reachable from the entry, in ascending order.
func (f Func) Reachable() []int {
	visited := make([]bool, len(f.fn.Blocks))
	stack := []*ssa.BasicBlock{f.fn.Blocks[0]}
	var res []int

	for len(stack) > 0 {
		n := len(stack) - 1
		b := stack[n]
		stack = stack[:n]

		if visited[b.Index] {
			continue
		}
		visited[b.Index] = true
		res = append(res, b.Index)

		for _, succ := range b.Succs {
			if !visited[succ.Index] {
				stack = append(stack, succ)
			}
		}
	}

	slices.Sort(res)
	return res
}

// Points iterates over blocks reachable from the entry in ascending order.
func (f Func) Points() iter.Seq[int] {
	return slices.Values(f.Reachable())
}

// Blocks lists blocks of the region in dominator tree preorder.
func (f Func) Blocks(r *seme.Region[int]) []*ssa.BasicBlock {
	if r.IsEmpty() {
		return nil
	}

	var res []*ssa.BasicBlock
	for _, b := range f.fn.DomPreorder() {
		if f.IsRecover(b.Index) {
			continue
		}
		if r.Contains(f, b.Index) {
			res = append(res, b)
		}
	}

	return res
}
