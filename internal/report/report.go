// Package report collects diagnostics of the region analyzer before they are handed to
// the analysis driver.
package report

import (
	"cmp"
	"fmt"
	"go/token"
	"slices"
	"sync"

	"golang.org/x/tools/go/analysis"

	"github.com/sirkon/seme/internal/semerules"
)

// Reporter collects diagnostics of a single analysis pass.
type Reporter struct {
	mu      sync.Mutex
	reports []Report
}

// Report represents a single diagnostic entry.
type Report struct {
	Phase    Phase
	RuleCode semerules.Rule
	Pos      token.Pos
	Message  string
}

// Phase marks the analyzer stage where a report was generated.
type Phase int

const (
	phaseInvalid Phase = iota
	PhaseScan          // directive scan
	PhaseGrow          // anchor collection and region growth
	PhaseVerify        // region invariant checks
)

func (p Phase) String() string {
	switch p {
	case PhaseScan:
		return "scan"
	case PhaseGrow:
		return "grow"
	case PhaseVerify:
		return "verify"
	default:
		return fmt.Sprintf("unknown-phase(%d)", p)
	}
}

// PhaseReporter binds a Reporter to a fixed phase.
type PhaseReporter struct {
	parent *Reporter
	phase  Phase
}

// Phase returns a reporter which sets the given phase for all reports produced through it.
func (r *Reporter) Phase(p Phase) *PhaseReporter {
	if p == phaseInvalid {
		panic("report: invalid phase")
	}

	return &PhaseReporter{parent: r, phase: p}
}

// Report adds a new record to the reporter.
func (r *Reporter) Report(rep Report) {
	r.mu.Lock()
	r.reports = append(r.reports, rep)
	r.mu.Unlock()
}

// Report records a diagnostic under the bound phase. An empty message is replaced with
// the rule description.
func (rp *PhaseReporter) Report(rule semerules.Rule, pos token.Pos, format string, a ...any) {
	message := fmt.Sprintf(format, a...)
	if message == "" {
		message = rule.Description()
	}

	rp.parent.Report(Report{
		Phase:    rp.phase,
		RuleCode: rule,
		Pos:      pos,
		Message:  message,
	})
}

// Reports returns a snapshot of all collected records.
func (r *Reporter) Reports() []Report {
	r.mu.Lock()
	defer r.mu.Unlock()

	return slices.Clone(r.reports)
}

// Flush hands collected records to the pass in position order and forgets them.
func (r *Reporter) Flush(pass *analysis.Pass) {
	r.mu.Lock()
	reports := r.reports
	r.reports = nil
	r.mu.Unlock()

	slices.SortStableFunc(reports, func(a, b Report) int {
		return cmp.Compare(a.Pos, b.Pos)
	})
	for _, rep := range reports {
		pass.Report(analysis.Diagnostic{
			Pos:      rep.Pos,
			Category: rep.RuleCode.Code(),
			Message:  fmt.Sprintf("%s: %s", rep.RuleCode, rep.Message),
		})
	}
}
