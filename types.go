package main

// TokenKind distinguishes the two pattern token variants.
type TokenKind int

const (
	// TokenLiteral is a run of characters matched exactly (a bare '*'
	// inside a literal run acts as a wildcard, see pattern.go).
	TokenLiteral TokenKind = iota
	// TokenVariable is a bracketed placeholder like [Name].
	TokenVariable
)

// PatternToken is one element of a compiled pattern: either literal text
// or a named variable placeholder.
type PatternToken struct {
	Kind TokenKind
	Text string // literal text, or the variable name
}

// CaptureSet maps variable names to the substrings captured for one file.
// It is created fresh per match attempt and handed to the plan builder.
type CaptureSet map[string]string

// MatchedFile pairs a candidate file name with its captures.
type MatchedFile struct {
	Name     string
	Captures CaptureSet
}

// RenameCandidate is one planned rename. Both paths are anchored at the
// same directory. NewName contains no bracket tokens from the *input*
// pattern's variables; Unresolved marks output-pattern tokens that had no
// capture and passed through as literal text.
type RenameCandidate struct {
	OriginalName     string
	OriginalFullPath string
	NewName          string
	NewFullPath      string
	NoOp             bool // new name equals original name
	Unresolved       bool // output pattern referenced a variable we never captured
}

// RenamePlan is an ordered list of candidates in candidate-discovery
// order. Building a plan never touches the filesystem.
type RenamePlan struct {
	Dir        string
	Candidates []RenameCandidate
}

// Outcome classifies the result of executing one candidate.
type Outcome int

const (
	// Renamed means the move succeeded (or would have, under dry-run).
	Renamed Outcome = iota
	// SkippedTargetExists means a file already occupied the new path.
	SkippedTargetExists
	// BackupFailed means the pre-rename copy failed; the rename itself
	// still went ahead and its own outcome is reported separately.
	BackupFailed
	// RenameFailed means the move itself failed.
	RenameFailed
)

// ExecutionResult records the per-candidate outcome. Executing one
// candidate can produce two results: a BackupFailed warning followed by
// the outcome of the move itself. Err is set for failures.
type ExecutionResult struct {
	Candidate RenameCandidate
	Outcome   Outcome
	Err       error
}

// Options carries the run configuration the engine cares about, built
// once from flags/config in main and passed down explicitly.
type Options struct {
	CreateBackup        bool
	RequireConfirmation bool
	PreviewLimit        int
	DryRun              bool
	Verbose             bool
}

// ListOptions controls candidate listing within the target directory.
type ListOptions struct {
	ShowHidden bool
	NoIgnore   bool
}

// Summary aggregates per-candidate outcomes for the final report.
type Summary struct {
	Renamed        int
	Skipped        int
	BackupFailures int
	Failed         int
}
