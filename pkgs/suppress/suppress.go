// Package suppress implements the suppression/inclusion file format and
// the tag filter spec.md §4.7 and §6 describe: inclusion lists gate which
// diagnostics may be emitted at all, suppression lists drop matching
// diagnostics (or, in census-whitespace mode, keep them with a rewritten
// description) and track which of their own entries were never matched.
package suppress

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/aledsdavies/hoonlint/pkgs/lint"
)

// Entry is one line of a suppression or inclusion file:
// "<file> <line>:<col> <kind> <optional-message>".
type Entry struct {
	File    string
	Line    int
	Column  int
	Kind    lint.Kind
	Message string
}

func kindFromString(s string) (lint.Kind, error) {
	switch s {
	case "indent":
		return lint.KindIndent, nil
	case "sequence":
		return lint.KindSequence, nil
	default:
		return 0, fmt.Errorf("unknown kind %q (want indent or sequence)", s)
	}
}

// ParseEntries reads the suppression/inclusion file format from r:
// one entry per line, `#…` comments and surrounding whitespace stripped,
// blank lines skipped. A malformed line fails the whole parse, naming the
// offending line number, per spec.md §6.
func ParseEntries(r io.Reader) ([]Entry, error) {
	var entries []Entry
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		entry, err := parseEntryLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

func parseEntryLine(line string) (Entry, error) {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return Entry{}, fmt.Errorf("malformed entry %q: want \"<file> <line>:<col> <kind> [message]\"", line)
	}

	file := fields[0]
	lc := strings.SplitN(fields[1], ":", 2)
	if len(lc) != 2 {
		return Entry{}, fmt.Errorf("malformed position %q: want \"<line>:<col>\"", fields[1])
	}
	lineNum, err := strconv.Atoi(lc[0])
	if err != nil {
		return Entry{}, fmt.Errorf("malformed line number %q: %w", lc[0], err)
	}
	col, err := strconv.Atoi(lc[1])
	if err != nil {
		return Entry{}, fmt.Errorf("malformed column %q: %w", lc[1], err)
	}
	kind, err := kindFromString(fields[2])
	if err != nil {
		return Entry{}, err
	}

	message := ""
	if len(fields) > 3 {
		message = strings.Join(fields[3:], " ")
	}
	return Entry{File: file, Line: lineNum, Column: col, Kind: kind, Message: message}, nil
}

// LoadEntries opens path and parses it with ParseEntries, wrapping any
// error with the path for a user-facing message per spec.md §7.
func LoadEntries(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("suppression file %s: %w", path, err)
	}
	defer f.Close()

	entries, err := ParseEntries(f)
	if err != nil {
		return nil, fmt.Errorf("suppression file %s: %w", path, err)
	}
	return entries, nil
}

type key struct {
	file   string
	line   int
	column int
	kind   lint.Kind
}

func keyOf(file string, line, column int, kind lint.Kind) key {
	return key{file: file, line: line, column: column, kind: kind}
}

// Filter applies spec.md §4.7's per-mistake decision: inclusion gate
// first, then suppression match. It is not safe for concurrent use, since
// Decide mutates the suppression-usage set (spec.md §5's shared state).
type Filter struct {
	suppressions     map[key]Entry
	used             map[key]bool
	inclusions       map[key]bool
	hasInclusions    bool
	censusWhitespace bool
}

// NewFilter builds a Filter from parsed suppression and inclusion
// entries. inclusions == nil means no inclusion list is active (the gate
// is a no-op); a non-nil, possibly empty, slice activates it.
func NewFilter(suppressions, inclusions []Entry, censusWhitespace bool) *Filter {
	f := &Filter{
		suppressions:     make(map[key]Entry, len(suppressions)),
		used:             make(map[key]bool, len(suppressions)),
		censusWhitespace: censusWhitespace,
	}
	for _, e := range suppressions {
		f.suppressions[keyOf(e.File, e.Line, e.Column, e.Kind)] = e
	}
	if inclusions != nil {
		f.hasInclusions = true
		f.inclusions = make(map[key]bool, len(inclusions))
		for _, e := range inclusions {
			f.inclusions[keyOf(e.File, e.Line, e.Column, e.Kind)] = true
		}
	}
	return f
}

// Decide applies the inclusion/suppression rules to one diagnostic tag at
// (file, reportLine, reportCol, kind) — the 1-based line and column the
// diagnostic is rendered at, i.e. mistake.Line and mistake.Column+1.
// emit reports whether the diagnostic should be printed at all;
// suppressed reports whether it matched a suppression (meaning, when
// emit is true, its description must be rewritten to the
// "SUPPRESSION <text>" form census-whitespace mode uses).
func (f *Filter) Decide(file string, reportLine, reportCol int, kind lint.Kind) (emit, suppressed bool) {
	k := keyOf(file, reportLine, reportCol, kind)
	if f.hasInclusions && !f.inclusions[k] {
		return false, false
	}
	if _, ok := f.suppressions[k]; ok {
		f.used[k] = true
		if f.censusWhitespace {
			return true, true
		}
		return false, true
	}
	return true, false
}

// UnusedSuppressions returns every suppression entry whose tag never
// matched a diagnostic, sorted by file/line/column/kind for stable
// output.
func (f *Filter) UnusedSuppressions() []Entry {
	var out []Entry
	for k, e := range f.suppressions {
		if !f.used[k] {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.File != b.File {
			return a.File < b.File
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		if a.Column != b.Column {
			return a.Column < b.Column
		}
		return a.Kind < b.Kind
	})
	return out
}
