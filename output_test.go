package main

import (
	"errors"
	"strings"
	"testing"
)

func TestRenderPreviewCapsAtLimit(t *testing.T) {
	plan := &RenamePlan{Dir: "."}
	for _, r := range [][2]string{
		{"a.txt", "1.txt"}, {"b.txt", "2.txt"}, {"c.txt", "3.txt"}, {"d.txt", "4.txt"},
	} {
		plan.Candidates = append(plan.Candidates, RenameCandidate{OriginalName: r[0], NewName: r[1]})
	}

	out := renderPreview(plan, 2)
	if !strings.Contains(out, "a.txt -> 1.txt\n") || !strings.Contains(out, "b.txt -> 2.txt\n") {
		t.Errorf("preview missing leading lines:\n%s", out)
	}
	if strings.Contains(out, "c.txt") {
		t.Errorf("preview shows entries beyond the limit:\n%s", out)
	}
	if !strings.Contains(out, "... and 2 more") {
		t.Errorf("preview missing overflow tail:\n%s", out)
	}

	// Limit 0 means unlimited.
	out = renderPreview(plan, 0)
	if !strings.Contains(out, "d.txt -> 4.txt\n") || strings.Contains(out, "more") {
		t.Errorf("unlimited preview wrong:\n%s", out)
	}
}

func TestRenderPreviewWarnings(t *testing.T) {
	plan := &RenamePlan{Dir: "."}
	plan.Candidates = append(plan.Candidates,
		RenameCandidate{OriginalName: "a.txt", NewName: "same.txt"},
		RenameCandidate{OriginalName: "b.txt", NewName: "same.txt"},
		RenameCandidate{OriginalName: "c.txt", NewName: "c_[Date].txt", Unresolved: true},
		RenameCandidate{OriginalName: "d.txt", NewName: "d.txt", NoOp: true},
	)

	out := renderPreview(plan, 10)
	for _, want := range []string{"more than one file", "same.txt", "[tokens]", "keep their current name"} {
		if !strings.Contains(out, want) {
			t.Errorf("preview missing %q:\n%s", want, out)
		}
	}
}

func TestResultLines(t *testing.T) {
	c := RenameCandidate{OriginalName: "old.txt", NewName: "new.txt"}
	cases := []struct {
		r    ExecutionResult
		want string
	}{
		{ExecutionResult{Candidate: c, Outcome: Renamed}, "Renamed: old.txt -> new.txt"},
		{ExecutionResult{Candidate: c, Outcome: SkippedTargetExists}, "Skipped: old.txt -> new.txt (target already exists)"},
	}
	for _, tc := range cases {
		if got := resultLine(tc.r); got != tc.want {
			t.Errorf("resultLine = %q, want %q", got, tc.want)
		}
	}

	failed := resultLine(ExecutionResult{Candidate: c, Outcome: RenameFailed, Err: errors.New("permission denied")})
	if !strings.Contains(failed, "permission denied") {
		t.Errorf("failure line missing reason: %q", failed)
	}
}

func TestRenderReportSummary(t *testing.T) {
	c := RenameCandidate{OriginalName: "a", NewName: "b"}
	results := []ExecutionResult{
		{Candidate: c, Outcome: Renamed},
		{Candidate: c, Outcome: SkippedTargetExists},
		{Candidate: c, Outcome: RenameFailed, Err: errors.New("busy")},
	}

	out := renderReport(results, false)
	for _, want := range []string{"--- Summary ---", "Renamed: 1\n", "Skipped (target exists): 1\n", "Failed: 1\n"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Dry run") {
		t.Errorf("report mentions dry run without it:\n%s", out)
	}

	if out := renderReport(results, true); !strings.Contains(out, "Dry run, nothing was renamed.") {
		t.Errorf("dry-run report missing note:\n%s", out)
	}
}
