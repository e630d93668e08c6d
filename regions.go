package main

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"

	"golang.org/x/tools/go/ssa"

	"github.com/sirkon/seme/internal/anchors"
	"github.com/sirkon/seme/internal/report"
	"github.com/sirkon/seme/internal/semerules"
	"github.com/sirkon/seme/internal/ssagraph"
	"github.com/sirkon/seme/seme"
)

// grower builds regions of anchor groups function by function.
type grower struct {
	cfg     *Config
	logger  *slog.Logger
	matcher *anchors.Matcher
	index   *anchors.Index

	grow   *report.PhaseReporter
	verify *report.PhaseReporter
}

func (g *grower) function(fn *ssa.Function) {
	if len(fn.Blocks) == 0 {
		return
	}

	collected := anchors.Collect(fn, g.matcher, g.index)
	for _, group := range slices.Sorted(maps.Keys(collected.Recover)) {
		g.grow.Report(
			semerules.AnchorInRecover(),
			collected.Recover[group],
			"anchor of group %q in %s can only be reached after a recovered panic",
			group,
			fn.Name(),
		)
	}
	if len(collected.Groups) == 0 {
		return
	}

	f := ssagraph.New(fn)
	var formed []*seme.Region[int]
	for _, group := range collected.Names() {
		r := seme.Empty[int](f)
		for _, a := range collected.Groups[group] {
			r.AddPoint(f, a.Block)
		}

		first := collected.First(group)
		members := f.Blocks(&r)
		g.logger.Debug(
			"region grown",
			slog.String("function", fn.String()),
			slog.String("group", group),
			slog.Int("anchors", len(collected.Groups[group])),
			slog.Int("head", r.Head()),
			slog.Any("tails", r.Tails()),
			slog.Int("blocks", len(members)),
		)

		if g.cfg.Verify {
			if err := r.Verify(f, f.Points()); err != nil {
				g.verify.Report(semerules.InvariantBroken(), first.Pos, "group %q in %s: %s", group, fn.Name(), err)
				continue
			}
		}

		if len(members) < g.cfg.MinBlocks {
			g.logger.Debug(
				"region is too small",
				slog.String("function", fn.String()),
				slog.String("group", group),
				slog.Int("blocks", len(members)),
			)
			continue
		}

		g.grow.Report(semerules.RegionFormed(), first.Pos, "group %q %s", group, g.describe(&r, members))
		formed = append(formed, &r)
	}

	if len(formed) < 2 {
		return
	}

	merged := seme.Empty[int](f)
	for _, r := range formed {
		merged.AddRegion(f, r)
	}
	members := f.Blocks(&merged)
	g.logger.Debug(
		"regions merged",
		slog.String("function", fn.String()),
		slog.Int("regions", len(formed)),
		slog.Int("head", merged.Head()),
		slog.Int("blocks", len(members)),
	)
	g.grow.Report(
		semerules.RegionsMerged(),
		fn.Pos(),
		"%d groups of %s %s",
		len(formed),
		fn.Name(),
		g.describe(&merged, members),
	)
}

// describe renders the region the way the config asks.
func (g *grower) describe(r *seme.Region[int], members []*ssa.BasicBlock) string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "blocks=%d head=b%d", len(members), r.Head())

	switch g.cfg.Detail {
	case DetailTails:
		buf.WriteString(" tails=")
		writeBlocks(&buf, r.Tails())
	case DetailBlocks:
		indices := make([]int, 0, len(members))
		for _, b := range members {
			indices = append(indices, b.Index)
		}
		buf.WriteString(" members=")
		writeBlocks(&buf, indices)
	}

	return buf.String()
}

func writeBlocks(buf *strings.Builder, indices []int) {
	buf.WriteByte('[')
	for i, index := range indices {
		if i > 0 {
			buf.WriteByte(' ')
		}
		fmt.Fprintf(buf, "b%d", index)
	}
	buf.WriteByte(']')
}
