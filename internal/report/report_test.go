package report

import (
	"go/token"
	"reflect"
	"sync"
	"testing"

	"github.com/sirkon/deepequal"
	"golang.org/x/tools/go/analysis"

	"github.com/sirkon/seme/internal/semerules"
)

func TestReporter_ReportPhases(t *testing.T) {
	tests := []struct {
		name    string
		phase   Phase
		rule    semerules.Rule
		message string
		pos     token.Pos
		want    string
	}{
		{
			name:    "scan-phase malformed",
			phase:   PhaseScan,
			rule:    semerules.DirectiveMalformed(),
			message: "group %q is not valid",
			pos:     10,
			want:    `group "1st" is not valid`,
		},
		{
			name:  "grow-phase default message",
			phase: PhaseGrow,
			rule:  semerules.AnchorInRecover(),
			pos:   20,
			want:  semerules.AnchorInRecover().Description(),
		},
		{
			name:    "verify-phase broken",
			phase:   PhaseVerify,
			rule:    semerules.InvariantBroken(),
			message: "continuity violated",
			pos:     5,
			want:    "continuity violated",
		},
	}

	var r Reporter
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var args []any
			if tt.phase == PhaseScan {
				args = append(args, "1st")
			}
			r.Phase(tt.phase).Report(tt.rule, tt.pos, tt.message, args...)
		})
	}

	reps := r.Reports()
	if len(reps) != len(tests) {
		t.Fatalf("expected %d reports, got %d", len(tests), len(reps))
	}
	for i, rep := range reps {
		want := tests[i]
		if rep.Phase != want.phase {
			t.Errorf("[%s] phase mismatch: got %v, want %v", want.name, rep.Phase, want.phase)
		}
		if rep.RuleCode != want.rule {
			t.Errorf("[%s] rule mismatch: got %v, want %v", want.name, rep.RuleCode, want.rule)
		}
		if rep.Message != want.want {
			t.Errorf("[%s] message mismatch: got %q, want %q", want.name, rep.Message, want.want)
		}
		if rep.Pos != want.pos {
			t.Errorf("[%s] position mismatch: got %d, want %d", want.name, rep.Pos, want.pos)
		}
	}

	var got []analysis.Diagnostic
	r.Flush(&analysis.Pass{
		Report: func(d analysis.Diagnostic) {
			got = append(got, d)
		},
	})
	expected := []analysis.Diagnostic{
		{Pos: 5, Category: "SEM100", Message: "SEM100: InvariantBroken: continuity violated"},
		{Pos: 10, Category: "SEM040", Message: `SEM040: DirectiveMalformed: group "1st" is not valid`},
		{Pos: 20, Category: "SEM020", Message: "SEM020: AnchorInRecover: " + semerules.AnchorInRecover().Description()},
	}
	if !reflect.DeepEqual(expected, got) {
		deepequal.SideBySide(t, "diagnostics", expected, got)
		t.Fatal("unexpected diagnostics")
	}
	if len(r.Reports()) != 0 {
		t.Error("reports must be gone after flush")
	}
}

func TestReporter_InvalidPhase(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("panic was expected for an invalid phase")
		}
	}()

	var r Reporter
	r.Phase(phaseInvalid)
}

func TestReporter_ConcurrencySafety(t *testing.T) {
	const n = 500
	var (
		r  Reporter
		wg sync.WaitGroup
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r.Report(Report{
				Phase:    PhaseGrow,
				RuleCode: semerules.RegionFormed(),
				Message:  "parallel add",
				Pos:      token.Pos(i),
			})
		}(i)
	}
	wg.Wait()

	reps := r.Reports()
	if len(reps) != n {
		t.Fatalf("expected %d reports, got %d", n, len(reps))
	}
	reps[0].Message = "changed"
	reps2 := r.Reports()
	if reps2[0].Message == "changed" {
		t.Fatalf("Reports() returned shared slice, expected copy")
	}
}
