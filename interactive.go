package main

import (
	"bufio"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	fuzzyfinder "github.com/ktr0731/go-fuzzyfinder"
)

// runInteractiveDirPicker lists directories under the working directory
// and uses a fuzzy finder for selection. Returns "" (and nil error) when
// the user aborts.
func runInteractiveDirPicker() (string, error) {
	candidates := []string{"."}
	root := "."

	// Shallow-ish walk just to gather directory paths for the finder.
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // ignore unreadable entries, keep walking
		}
		if path == root || !d.IsDir() {
			return nil
		}
		if !showHidden && isHidden(d.Name()) {
			return fs.SkipDir
		}
		candidates = append(candidates, path)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("error scanning for directories: %w", err)
	}

	idx, err := fuzzyfinder.Find(
		candidates,
		func(i int) string {
			return candidates[i]
		},
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return "Select the directory whose files should be renamed. Enter to confirm."
			}
			dir := candidates[i]
			files, statErr := ListCandidates(dir, ListOptions{ShowHidden: showHidden, NoIgnore: noIgnore})
			if statErr != nil {
				return fmt.Sprintf("Directory: %s\nError listing: %v", dir, statErr)
			}
			preview := fmt.Sprintf("Directory: %s\nFiles: %d\n", dir, len(files))
			for j, name := range files {
				if j == 8 {
					preview += "...\n"
					break
				}
				preview += "  " + name + "\n"
			}
			return preview
		}),
	)
	if err != nil {
		if err == fuzzyfinder.ErrAbort { // Esc or Ctrl+C
			fmt.Println("Interactive selection aborted.")
			return "", nil
		}
		return "", fmt.Errorf("fuzzy finder error: %w", err)
	}

	return candidates[idx], nil
}

// stdin is shared across prompts so a buffered read never swallows the
// next prompt's line.
var stdin = bufio.NewReader(os.Stdin)

// promptLine prints prompt and reads one trimmed line from stdin.
func promptLine(prompt string) (string, error) {
	fmt.Print(prompt)
	line, err := stdin.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// confirmProceed asks for a y/N answer; anything but y/yes declines.
func confirmProceed(count int) (bool, error) {
	answer, err := promptLine(fmt.Sprintf("Rename %d file(s)? [y/N] ", count))
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
