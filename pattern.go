package main

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Pattern syntax errors. A bad pattern aborts the whole run before any
// filesystem work, so these surface as fatal CLI errors.
var (
	ErrEmptyPattern        = errors.New("pattern is empty")
	ErrUnterminatedBracket = errors.New("unterminated '[' in pattern")
	ErrNestedBracket       = errors.New("'[' inside variable name")
	ErrEmptyVariableName   = errors.New("empty variable name '[]' in pattern")
)

// CompiledPattern is the reusable form of an input pattern: the ordered
// token sequence, a regexp compiled once and applied to every candidate,
// and a coarse glob used as a cheap pre-filter before full matching.
type CompiledPattern struct {
	Source    string
	Tokens    []PatternToken
	VarNames  []string // distinct variable names in discovery order
	re        *regexp.Regexp
	groupVars []string // capture group index-1 → variable name
	glob      string
}

// Compile parses a bracketed input pattern into a CompiledPattern.
//
// '[' opens a variable placeholder terminated by the next ']'; the text
// between is the variable name. Outside brackets a '*' matches any
// substring and every other character is an exact literal. Unterminated
// or nested brackets and empty variable names are compile errors.
func Compile(pattern string) (*CompiledPattern, error) {
	if pattern == "" {
		return nil, ErrEmptyPattern
	}

	cp := &CompiledPattern{Source: pattern}
	var literal strings.Builder
	flushLiteral := func() {
		if literal.Len() > 0 {
			cp.Tokens = append(cp.Tokens, PatternToken{Kind: TokenLiteral, Text: literal.String()})
			literal.Reset()
		}
	}

	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		if c != '[' {
			literal.WriteByte(c)
			continue
		}

		flushLiteral()
		end := strings.IndexByte(pattern[i+1:], ']')
		if end < 0 {
			return nil, fmt.Errorf("%w at offset %d", ErrUnterminatedBracket, i)
		}
		name := pattern[i+1 : i+1+end]
		if name == "" {
			return nil, fmt.Errorf("%w at offset %d", ErrEmptyVariableName, i)
		}
		if strings.ContainsRune(name, '[') {
			return nil, fmt.Errorf("%w at offset %d", ErrNestedBracket, i)
		}
		cp.Tokens = append(cp.Tokens, PatternToken{Kind: TokenVariable, Text: name})
		if !containsString(cp.VarNames, name) {
			cp.VarNames = append(cp.VarNames, name)
		}
		i += end + 1 // skip past ']'
	}
	flushLiteral()

	if err := cp.build(); err != nil {
		return nil, err
	}
	return cp, nil
}

// build derives the anchored regexp and the glob pre-filter from the
// token sequence.
func (cp *CompiledPattern) build() error {
	var reb, globb strings.Builder
	reb.WriteString(`\A`)

	for _, tok := range cp.Tokens {
		switch tok.Kind {
		case TokenVariable:
			// Shortest non-empty capture; adjacent literals decide where
			// the variable ends.
			reb.WriteString(`(.+?)`)
			cp.groupVars = append(cp.groupVars, tok.Text)
			globb.WriteByte('*')
		case TokenLiteral:
			for i := 0; i < len(tok.Text); i++ {
				c := tok.Text[i]
				if c == '*' {
					reb.WriteString(`.*`)
					globb.WriteByte('*')
					continue
				}
				reb.WriteString(regexp.QuoteMeta(string(c)))
				// '\' would act as an escape in filepath.Match and drop a
				// real character from the filter; ']' is harmless either
				// way once escaped.
				if c == '\\' || c == ']' {
					globb.WriteByte('\\')
				}
				globb.WriteByte(c)
			}
		}
	}
	reb.WriteString(`\z`)

	re, err := regexp.Compile(reb.String())
	if err != nil {
		return fmt.Errorf("compiling pattern %q: %w", cp.Source, err)
	}
	cp.re = re

	cp.glob = globb.String()
	if cp.glob == "" {
		cp.glob = "*" // degenerate pattern, match everything
	}
	return nil
}

// Glob returns the derived wildcard pre-filter. It is an
// over-approximation: it may admit names the full matcher rejects, but
// never excludes a name the matcher would accept.
func (cp *CompiledPattern) Glob() string {
	return cp.glob
}

// Match applies the pattern to a file name. It returns the captured
// variable values and true on a match, or nil and false otherwise.
// The match is anchored at both ends and case-sensitive; each variable
// captures at least one character. A variable name repeated in the input
// pattern must capture the same value at every occurrence.
func (cp *CompiledPattern) Match(name string) (CaptureSet, bool) {
	m := cp.re.FindStringSubmatch(name)
	if m == nil {
		return nil, false
	}

	captures := make(CaptureSet, len(cp.VarNames))
	for i, varName := range cp.groupVars {
		value := m[i+1]
		if prev, seen := captures[varName]; seen && prev != value {
			// Repeated variable captured two different values.
			return nil, false
		}
		captures[varName] = value
	}
	return captures, true
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
