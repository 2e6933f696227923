// Package catalog holds the grammar's symbol and rule metadata and the
// static classifier that partitions rules into whitespace shape classes.
// It is built once per grammar (never per file) and is safe to share by
// reference across concurrent lint runs, since nothing in it mutates
// after construction.
package catalog

import "regexp"

// SymbolID identifies a grammar symbol (terminal or nonterminal).
type SymbolID int

// Symbol describes one grammar symbol.
type Symbol struct {
	ID       SymbolID
	Name     string
	IsLexeme bool
	IsGap    bool
}

// gapPattern matches the language's rune-named gap terminals, e.g.
// TISFASGAP, WUTSEMGAP. Rule: <uppercase><vowel><uppercase><uppercase>
// <vowel><uppercase>GAP.
var gapPattern = regexp.MustCompile(`^[A-Z][AEIOU][A-Z][A-Z][AEIOU][A-Z]GAP$`)

// isGapName reports whether name identifies a gap-bearing terminal.
func isGapName(name string) bool {
	return name == "GAP" || gapPattern.MatchString(name)
}

// SymbolTable is the immutable set of symbols known to a grammar.
type SymbolTable struct {
	byID   map[SymbolID]Symbol
	byName map[string]Symbol
}

// NewSymbolTable builds a SymbolTable from (name, isLexeme) pairs, in
// caller-assigned ID order starting at 0.
func NewSymbolTable(names []string, isLexeme []bool) *SymbolTable {
	t := &SymbolTable{
		byID:   make(map[SymbolID]Symbol, len(names)),
		byName: make(map[string]Symbol, len(names)),
	}
	for i, name := range names {
		sym := Symbol{
			ID:       SymbolID(i),
			Name:     name,
			IsLexeme: isLexeme[i],
			IsGap:    isGapName(name),
		}
		t.byID[sym.ID] = sym
		t.byName[sym.Name] = sym
	}
	return t
}

// ByID looks up a symbol by ID. ok is false for an unknown ID.
func (t *SymbolTable) ByID(id SymbolID) (Symbol, bool) {
	sym, ok := t.byID[id]
	return sym, ok
}

// ByName looks up a symbol by name. ok is false for an unknown name.
func (t *SymbolTable) ByName(name string) (Symbol, bool) {
	sym, ok := t.byName[name]
	return sym, ok
}

// IsGap reports whether id names a gap-bearing symbol. Unknown IDs are
// not gaps.
func (t *SymbolTable) IsGap(id SymbolID) bool {
	sym, ok := t.byID[id]
	return ok && sym.IsGap
}
