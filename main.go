package main

import (
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/buildssa"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/analysis/singlechecker"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/sirkon/seme/internal/anchors"
	"github.com/sirkon/seme/internal/report"
	"github.com/sirkon/seme/internal/semerules"
)

const doc = `semeregion builds single entry multiple exit regions around anchors

Anchors are calls of known functions (sync locks and program exits by default, more
can be configured) and statements marked with

	//seme:anchor <group>

For every function and every anchor group the analyzer grows the smallest region
covering all anchors of the group, so that control can enter it through the head
block only, and reports it.`

// Analyzer is the main entry point for the linter
var Analyzer = &analysis.Analyzer{
	Name:     "semeregion",
	Doc:      doc,
	Requires: []*analysis.Analyzer{inspect.Analyzer, buildssa.Analyzer},
	Run:      run,
}

var (
	flagConfig  string
	flagVerbose bool
)

func init() {
	Analyzer.Flags.StringVar(&flagConfig, "config", "", "path to the YAML config")
	Analyzer.Flags.BoolVar(&flagVerbose, "verbose", false, "log region growth to stderr")
}

func main() {
	singlechecker.Main(Analyzer)
}

func run(pass *analysis.Pass) (any, error) {
	cfg, err := loadConfig(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := newLogger(flagVerbose).With(slog.String("package", pass.Pkg.Path()))
	pector := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	input := pass.ResultOf[buildssa.Analyzer].(*buildssa.SSA)

	var rep report.Reporter
	scan := rep.Phase(report.PhaseScan)

	index := anchors.NewIndex()
	directives := anchors.Scan(pass.Fset, pass.Files, pector, index)
	for _, d := range directives {
		switch d.Status {
		case anchors.DirectiveMalformed:
			scan.Report(semerules.DirectiveMalformed(), d.Pos, "%s must be followed by a single group name", anchors.DirectivePrefix)
		case anchors.DirectiveUnattached:
			scan.Report(semerules.DirectiveUnattached(), d.Pos, "no statement for group %q", d.Group)
		}
	}

	g := &grower{
		cfg:     cfg,
		logger:  logger,
		matcher: cfg.matcher(),
		index:   index,
		grow:    rep.Phase(report.PhaseGrow),
		verify:  rep.Phase(report.PhaseVerify),
	}
	for _, fn := range input.SrcFuncs {
		g.function(fn)
	}

	// Hits are only known once every function was looked through.
	for _, d := range directives {
		if d.Status == anchors.DirectiveAttached && index.Hits(d.Pos) == 0 {
			scan.Report(semerules.DirectiveUnattached(), d.Pos, "statement marked for group %q has no instructions", d.Group)
		}
	}

	logger.Debug("package done", slog.Int("directives", len(directives)), slog.Int("reports", len(rep.Reports())))
	rep.Flush(pass)

	return nil, nil
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
