package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	gitignore "github.com/monochromegane/go-gitignore"
)

// ListCandidates returns the names of the files directly inside dir
// (non-recursive), in name order (os.ReadDir keeps entries sorted, so
// the preview is deterministic). Hidden files are skipped unless
// opts.ShowHidden, and a .gitignore in dir is respected unless
// opts.NoIgnore. Directories never qualify, which also keeps backup
// directories from earlier runs out of the candidate list.
func ListCandidates(dir string, opts ListOptions) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}

	var ignoreMatcher gitignore.IgnoreMatcher
	if !opts.NoIgnore {
		gitIgnorePath := filepath.Join(dir, ".gitignore")
		if _, err := os.Stat(gitIgnorePath); err == nil {
			matcher, err := gitignore.NewGitIgnore(gitIgnorePath)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Warning: could not parse .gitignore file %s: %v\n", gitIgnorePath, err)
			} else {
				ignoreMatcher = matcher
			}
		}
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !opts.ShowHidden && isHidden(name) {
			continue
		}
		if ignoreMatcher != nil && ignoreMatcher.Match(name, false) {
			continue
		}
		files = append(files, name)
	}
	return files, nil
}

// FilterByGlob narrows candidate names with the compiled pattern's glob
// before full matching. The glob is an over-approximation, so a pattern
// error or a miss here never drops a true match silently: on a bad glob
// we fall back to keeping the name for the matcher to decide.
func FilterByGlob(files []string, glob string) []string {
	if glob == "" || glob == "*" {
		return files
	}
	var kept []string
	for _, name := range files {
		ok, err := filepath.Match(glob, name)
		if err != nil || ok {
			kept = append(kept, name)
		}
	}
	return kept
}

// MatchCandidates runs the full matcher over the (pre-filtered)
// candidates and pairs each match with its captures, preserving order.
func MatchCandidates(files []string, cp *CompiledPattern) []MatchedFile {
	var matches []MatchedFile
	for _, name := range files {
		if captures, ok := cp.Match(name); ok {
			matches = append(matches, MatchedFile{Name: name, Captures: captures})
		}
	}
	return matches
}

// isHidden checks if a file name is hidden (starts with '.').
func isHidden(name string) bool {
	if name == "." || name == ".." {
		return false
	}
	return strings.HasPrefix(name, ".")
}
