package anchors

import (
	"go/token"
	"maps"
	"slices"

	"golang.org/x/tools/go/ssa"
)

// Anchor is an instruction that must be covered by a region.
type Anchor struct {
	Block int
	Pos   token.Pos
}

// Collected are anchors of a single function.
type Collected struct {
	// Groups maps group names to their anchors in block order.
	Groups map[string][]Anchor

	// Recover keeps positions of anchors found in the recover block. Regions cannot
	// reach that block since it is not dominated by the entry.
	Recover map[string]token.Pos
}

// Names returns group names in ascending order.
func (c *Collected) Names() []string {
	return slices.Sorted(maps.Keys(c.Groups))
}

// First returns the anchor of the group appearing first in the source.
func (c *Collected) First(group string) Anchor {
	return slices.MinFunc(c.Groups[group], func(a, b Anchor) int {
		switch {
		case a.Pos == b.Pos:
			return a.Block - b.Block
		case !a.Pos.IsValid():
			return 1
		case !b.Pos.IsValid():
			return -1
		case a.Pos < b.Pos:
			return -1
		default:
			return 1
		}
	})
}

// Collect finds anchors of the function. Calls are matched by m and instruction positions
// are looked up in idx. Both of them can be nil.
func Collect(fn *ssa.Function, m *Matcher, idx *Index) Collected {
	res := Collected{
		Groups:  map[string][]Anchor{},
		Recover: map[string]token.Pos{},
	}

	add := func(b *ssa.BasicBlock, group string, pos token.Pos) {
		if b == fn.Recover {
			if _, ok := res.Recover[group]; !ok {
				res.Recover[group] = pos
			}
			return
		}

		res.Groups[group] = append(res.Groups[group], Anchor{
			Block: b.Index,
			Pos:   pos,
		})
	}

	for _, b := range fn.Blocks {
		for _, instr := range b.Instrs {
			if idx != nil {
				for _, mark := range idx.Lookup(instr.Pos()) {
					add(b, mark.Group, instr.Pos())
				}
			}

			call, ok := instr.(ssa.CallInstruction)
			if !ok || m == nil {
				continue
			}
			if group, ok := m.GroupOf(call.Common()); ok {
				add(b, group, instr.Pos())
			}
		}
	}

	return res
}
