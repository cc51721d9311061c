package main

import (
	"path/filepath"
	"strings"
)

// BuildPlan assembles the rename plan for the matched files. The plan
// preserves the discovery order of the matches and never touches the
// filesystem; collisions are surfaced later (DuplicateTargets for the
// preview, the executor's existence check at run time).
//
// An empty output pattern keeps the original name: the candidate stays
// in the plan as an explicit no-op rather than being filtered out.
func BuildPlan(dir string, matches []MatchedFile, outputPattern string, in *CompiledPattern) *RenamePlan {
	plan := &RenamePlan{Dir: dir}

	for _, m := range matches {
		newName := m.Name
		unresolved := false
		if outputPattern != "" {
			newName = substitute(outputPattern, in.VarNames, m.Captures)
			unresolved = hasBracketToken(newName)
		}

		plan.Candidates = append(plan.Candidates, RenameCandidate{
			OriginalName:     m.Name,
			OriginalFullPath: filepath.Join(dir, m.Name),
			NewName:          newName,
			NewFullPath:      filepath.Join(dir, newName),
			NoOp:             newName == m.Name,
			Unresolved:       unresolved,
		})
	}
	return plan
}

// substitute replaces every [name] occurrence in the output pattern with
// the captured value, walking variables in the input pattern's discovery
// order. Plain text replacement only: output-pattern tokens naming a
// variable we never captured pass through unchanged.
func substitute(outputPattern string, varOrder []string, captures CaptureSet) string {
	result := outputPattern
	for _, name := range varOrder {
		value, ok := captures[name]
		if !ok {
			continue
		}
		result = strings.ReplaceAll(result, "["+name+"]", value)
	}
	return result
}

// hasBracketToken reports whether s still contains a [name] token, i.e.
// a '[' with a matching ']' after it and at least one character between.
func hasBracketToken(s string) bool {
	open := strings.IndexByte(s, '[')
	if open < 0 {
		return false
	}
	end := strings.IndexByte(s[open+1:], ']')
	return end > 0
}

// BuildPrefixPlan is the prefix-only mode: every file that does not
// already start with prefix gets it prepended. Already-prefixed files
// are left out of the plan entirely.
func BuildPrefixPlan(dir string, files []string, prefix string) *RenamePlan {
	plan := &RenamePlan{Dir: dir}
	for _, name := range files {
		if strings.HasPrefix(name, prefix) {
			continue
		}
		newName := prefix + name
		plan.Candidates = append(plan.Candidates, RenameCandidate{
			OriginalName:     name,
			OriginalFullPath: filepath.Join(dir, name),
			NewName:          newName,
			NewFullPath:      filepath.Join(dir, newName),
		})
	}
	return plan
}

// DuplicateTargets returns the new names claimed by more than one
// candidate, in first-appearance order. Both claimants stay in the plan;
// at execution time the first one wins and the rest are skipped by the
// target-exists check.
func (p *RenamePlan) DuplicateTargets() []string {
	seen := make(map[string]int)
	var dups []string
	for _, c := range p.Candidates {
		seen[c.NewName]++
		if seen[c.NewName] == 2 {
			dups = append(dups, c.NewName)
		}
	}
	return dups
}

// CountNoOps returns how many candidates keep their original name.
func (p *RenamePlan) CountNoOps() int {
	n := 0
	for _, c := range p.Candidates {
		if c.NoOp {
			n++
		}
	}
	return n
}

// CountUnresolved returns how many candidates carry leftover bracket
// tokens from the output pattern.
func (p *RenamePlan) CountUnresolved() int {
	n := 0
	for _, c := range p.Candidates {
		if c.Unresolved {
			n++
		}
	}
	return n
}
