package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"
)

// Execute runs a confirmed plan in order, one candidate at a time, and
// returns the per-candidate results. It never aborts the batch: target
// collisions are skipped, backup failures are warnings, and a failed
// move only fails that candidate. The plan itself is read-only here.
//
// onResult, when non-nil, is called after each result is recorded (the
// caller uses it for status lines and the progress bar).
func Execute(ctx context.Context, plan *RenamePlan, opts Options, onResult func(ExecutionResult)) []ExecutionResult {
	var results []ExecutionResult
	record := func(r ExecutionResult) {
		results = append(results, r)
		if onResult != nil {
			onResult(r)
		}
	}

	// The backup directory is created once, up front. If that fails,
	// backups are off for the whole run but the renames still happen.
	backupDir := ""
	if opts.CreateBackup && !opts.DryRun && len(plan.Candidates) > 0 {
		dir, err := NewBackupDir(plan.Dir, time.Now())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v (continuing without backups)\n", err)
		} else {
			backupDir = dir
		}
	}

	claimed := make(map[string]bool) // dry-run stand-in for created targets

	for _, c := range plan.Candidates {
		if ctx.Err() != nil {
			break // interrupted; completed renames stay in effect
		}

		// 1. Target existence check. Also what quietly retires no-op
		// candidates: their target path is their own original file.
		if targetExists(c.NewFullPath) || (opts.DryRun && claimed[c.NewFullPath]) {
			record(ExecutionResult{Candidate: c, Outcome: SkippedTargetExists})
			continue
		}

		if opts.DryRun {
			claimed[c.NewFullPath] = true
			record(ExecutionResult{Candidate: c, Outcome: Renamed})
			continue
		}

		// 2. Best-effort backup copy before the destructive move.
		if backupDir != "" {
			if err := backupFile(c.OriginalFullPath, backupDir); err != nil {
				record(ExecutionResult{Candidate: c, Outcome: BackupFailed, Err: err})
			}
		}

		// 3. The move itself must not clobber even if the check raced.
		if err := moveNoClobber(c.OriginalFullPath, c.NewFullPath); err != nil {
			outcome := RenameFailed
			if errors.Is(err, fs.ErrExist) {
				outcome = SkippedTargetExists
				err = nil
			}
			record(ExecutionResult{Candidate: c, Outcome: outcome, Err: err})
			continue
		}
		record(ExecutionResult{Candidate: c, Outcome: Renamed})
	}
	return results
}

// targetExists reports whether anything (file, dir, dangling symlink)
// occupies path.
func targetExists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// moveNoClobber renames oldPath to newPath without ever overwriting an
// existing newPath. Plain os.Rename silently replaces the target on
// Unix, so link-then-remove does the move where the filesystem supports
// hard links, with a re-checked rename as the fallback.
func moveNoClobber(oldPath, newPath string) error {
	err := os.Link(oldPath, newPath)
	if err == nil {
		return os.Remove(oldPath)
	}
	if errors.Is(err, fs.ErrExist) {
		return err
	}
	// Hard links unsupported here; re-check and rename.
	if targetExists(newPath) {
		return fs.ErrExist
	}
	return os.Rename(oldPath, newPath)
}

// Summarize folds execution results into the totals for the report.
func Summarize(results []ExecutionResult) Summary {
	var s Summary
	for _, r := range results {
		switch r.Outcome {
		case Renamed:
			s.Renamed++
		case SkippedTargetExists:
			s.Skipped++
		case BackupFailed:
			s.BackupFailures++
		case RenameFailed:
			s.Failed++
		}
	}
	return s
}
