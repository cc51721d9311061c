package main

import (
	"fmt"
	"strings"
)

// renderPreview generates the pre-confirmation preview: one
// "{original} -> {new}" line per candidate, capped at limit with a
// "... and N more" tail, followed by plan-level warnings (duplicate
// targets, unresolved tokens, no-ops).
func renderPreview(plan *RenamePlan, limit int) string {
	var builder strings.Builder

	shown := len(plan.Candidates)
	if limit > 0 && shown > limit {
		shown = limit
	}
	for _, c := range plan.Candidates[:shown] {
		builder.WriteString(fmt.Sprintf("%s -> %s\n", c.OriginalName, c.NewName))
	}
	if remaining := len(plan.Candidates) - shown; remaining > 0 {
		builder.WriteString(fmt.Sprintf("... and %d more\n", remaining))
	}

	if dups := plan.DuplicateTargets(); len(dups) > 0 {
		builder.WriteString(fmt.Sprintf("Warning: %d name(s) targeted by more than one file (only the first will be renamed): %s\n",
			len(dups), strings.Join(dups, ", ")))
	}
	if n := plan.CountUnresolved(); n > 0 {
		builder.WriteString(fmt.Sprintf("Warning: %d new name(s) still contain [tokens] the input pattern never captured\n", n))
	}
	if n := plan.CountNoOps(); n > 0 {
		builder.WriteString(fmt.Sprintf("Note: %d file(s) keep their current name\n", n))
	}
	return builder.String()
}

// resultLine formats the status line for a single execution result.
func resultLine(r ExecutionResult) string {
	c := r.Candidate
	switch r.Outcome {
	case Renamed:
		return fmt.Sprintf("Renamed: %s -> %s", c.OriginalName, c.NewName)
	case SkippedTargetExists:
		return fmt.Sprintf("Skipped: %s -> %s (target already exists)", c.OriginalName, c.NewName)
	case BackupFailed:
		return fmt.Sprintf("Warning: backup of %s failed: %v (renaming anyway)", c.OriginalName, r.Err)
	case RenameFailed:
		return fmt.Sprintf("Failed: %s -> %s: %v", c.OriginalName, c.NewName, r.Err)
	}
	return ""
}

// renderReport generates the post-run report: every status line plus the
// summary block. This is also what --clipboard copies.
func renderReport(results []ExecutionResult, dryRun bool) string {
	var builder strings.Builder
	for _, r := range results {
		builder.WriteString(resultLine(r))
		builder.WriteString("\n")
	}

	s := Summarize(results)
	builder.WriteString("\n--- Summary ---\n")
	if dryRun {
		builder.WriteString("Dry run, nothing was renamed.\n")
	}
	builder.WriteString(fmt.Sprintf("Renamed: %d\n", s.Renamed))
	builder.WriteString(fmt.Sprintf("Skipped (target exists): %d\n", s.Skipped))
	if s.BackupFailures > 0 {
		builder.WriteString(fmt.Sprintf("Backup failures: %d\n", s.BackupFailures))
	}
	if s.Failed > 0 {
		builder.WriteString(fmt.Sprintf("Failed: %d\n", s.Failed))
	}
	return builder.String()
}
