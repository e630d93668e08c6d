package ssagraph

import (
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/ssa"
	"golang.org/x/tools/go/ssa/ssautil"

	"github.com/sirkon/seme/seme"
)

const source = `package demo

func branches(x int) int {
	if x > 0 {
		x++
	} else {
		x--
	}
	return x * 2
}

func loop(x int) int {
	s := 0
	for i := 0; i < x; i++ {
		s += i
	}
	return s
}

func guarded() (res int) {
	defer func() {
		recover()
	}()
	res = 1
	return
}
`

func build(t *testing.T) *ssa.Package {
	t.Helper()

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "demo.go", source, 0)
	require.NoError(t, err)

	pkg, _, err := ssautil.BuildPackage(
		&types.Config{Importer: importer.Default()},
		fset,
		types.NewPackage("demo", "demo"),
		[]*ast.File{file},
		ssa.SanityCheckFunctions,
	)
	require.NoError(t, err)

	return pkg
}

func block(t *testing.T, f Func, comment string) int {
	t.Helper()

	for _, b := range f.Function().Blocks {
		if b.Comment == comment {
			return b.Index
		}
	}

	t.Fatalf("no block %q in %s", comment, f.Function())
	return -1
}

func TestDominance(t *testing.T) {
	pkg := build(t)

	for _, name := range []string{"branches", "loop", "guarded"} {
		t.Run(name, func(t *testing.T) {
			f := New(pkg.Func(name))
			blocks := f.Function().Blocks

			require.Equal(t, 0, f.Entry())
			_, ok := f.ImmediateDominator(f.Entry())
			require.False(t, ok, "entry has no immediate dominator")

			for _, a := range blocks {
				if idom, ok := f.ImmediateDominator(a.Index); ok {
					require.Equal(t, a.Idom(), blocks[idom])
				}
				require.Equal(t, len(a.Preds), len(slices.Collect(f.Predecessors(a.Index))))

				for _, b := range blocks {
					require.Equal(t, a.Dominates(b), f.Dominates(a.Index, b.Index), "%s vs %s", a, b)
					if f.IsRecover(a.Index) || f.IsRecover(b.Index) {
						continue
					}

					m := f.MutualDominator(a.Index, b.Index)
					require.True(t, f.Dominates(m, a.Index))
					require.True(t, f.Dominates(m, b.Index))
					for _, c := range blocks {
						if c.Dominates(a) && c.Dominates(b) {
							require.True(t, c.Dominates(blocks[m]), "%s is not the nearest one", blocks[m])
						}
					}
				}
			}
		})
	}
}

func TestRegion(t *testing.T) {
	pkg := build(t)

	t.Run("branches", func(t *testing.T) {
		f := New(pkg.Func("branches"))
		then := block(t, f, "if.then")
		els := block(t, f, "if.else")
		done := block(t, f, "if.done")

		r := seme.Empty[int](f)
		r.AddPoint(f, then)
		r.AddPoint(f, els)
		require.Equal(t, f.Entry(), r.Head())
		require.ElementsMatch(t, []int{0, then, els}, r.Members(f, f.Points()))

		r.AddPoint(f, done)
		require.ElementsMatch(t, f.Reachable(), r.Members(f, f.Points()))
		require.NoError(t, r.Verify(f, f.Points()))

		var got []int
		for _, b := range f.Blocks(&r) {
			got = append(got, b.Index)
		}
		require.Equal(t, 0, got[0], "blocks must go in dominator tree preorder")
		require.ElementsMatch(t, f.Reachable(), got)
	})

	t.Run("loop", func(t *testing.T) {
		f := New(pkg.Func("loop"))
		body := block(t, f, "for.body")

		r := seme.Empty[int](f)
		r.AddPoint(f, 0)
		r.AddPoint(f, body)

		// The loop header is reached from the entry and through the back edge, both come in.
		loop := block(t, f, "for.loop")
		require.ElementsMatch(t, []int{0, loop, body}, r.Members(f, f.Points()))
		require.Equal(t, []int{body}, r.Tails())
		require.NotContains(t, r.Members(f, f.Points()), block(t, f, "for.done"))
		require.NoError(t, r.Verify(f, f.Points()))
	})

	t.Run("recover", func(t *testing.T) {
		f := New(pkg.Func("guarded"))
		require.NotNil(t, f.Function().Recover)

		rec := f.Function().Recover.Index
		require.True(t, f.IsRecover(rec))
		require.NotContains(t, f.Reachable(), rec)
		require.False(t, f.Dominates(f.Entry(), rec))

		r := seme.Empty[int](f)
		for p := range f.Points() {
			r.AddPoint(f, p)
		}
		for _, b := range f.Blocks(&r) {
			require.NotEqual(t, rec, b.Index)
		}
	})

	t.Run("empty", func(t *testing.T) {
		f := New(pkg.Func("branches"))
		r := seme.Empty[int](f)
		require.Nil(t, f.Blocks(&r))
	})
}

func TestNoBody(t *testing.T) {
	require.Panics(t, func() {
		New(&ssa.Function{})
	})
}
