package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// backupDirName builds the per-run backup directory name from the run's
// capture timestamp, e.g. "_backup_20260830_141502".
func backupDirName(ts time.Time) string {
	return "_backup_" + ts.Format("20060102_150405")
}

// NewBackupDir creates the session backup directory under dir. Called at
// most once per run, before any renames.
func NewBackupDir(dir string, ts time.Time) (string, error) {
	path := filepath.Join(dir, backupDirName(ts))
	if err := os.MkdirAll(path, 0755); err != nil {
		return "", fmt.Errorf("creating backup directory %s: %w", path, err)
	}
	return path, nil
}

// backupFile copies src into backupDir under its original base name and
// syncs the copy to disk. Best-effort safety net, not a transaction: the
// caller treats failure as a warning, not a stop.
func backupFile(src, backupDir string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening %s for backup: %w", src, err)
	}
	defer in.Close()

	dst := filepath.Join(backupDir, filepath.Base(src))
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return fmt.Errorf("creating backup copy %s: %w", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return fmt.Errorf("copying %s to backup: %w", src, err)
	}
	if err := out.Sync(); err != nil {
		out.Close()
		return fmt.Errorf("syncing backup copy %s: %w", dst, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("closing backup copy %s: %w", dst, err)
	}
	return nil
}
