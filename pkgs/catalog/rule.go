package catalog

// RuleID identifies a grammar production.
type RuleID int

// Rule describes one grammar production: its left-hand side, the
// right-hand side symbols in source order, an optional separator symbol
// for gap-separated sequence rules, and its gapiness.
type Rule struct {
	ID          RuleID
	LHS         SymbolID
	RHS         []SymbolID
	Separator   SymbolID
	HasSep      bool
	Gapiness    int // number of gap-bearing RHS symbols, or -1 for a gap-separated sequence rule
}

// RuleTable is the immutable set of rules known to a grammar.
type RuleTable struct {
	byID    map[RuleID]Rule
	symbols *SymbolTable
}

// RuleSpec is the caller-supplied description of one production, before
// gapiness is computed.
type RuleSpec struct {
	LHS       SymbolID
	RHS       []SymbolID
	Separator SymbolID
	HasSep    bool
}

// NewRuleTable builds a RuleTable, computing each rule's gapiness from
// symbols: gapiness is -1 if the rule has a separator symbol named "GAP"
// or matching the gap-terminal naming pattern; otherwise it is the count
// of gap-bearing RHS symbols.
func NewRuleTable(symbols *SymbolTable, specs []RuleSpec) *RuleTable {
	t := &RuleTable{byID: make(map[RuleID]Rule, len(specs)), symbols: symbols}
	for i, spec := range specs {
		id := RuleID(i)
		gapiness := 0
		if spec.HasSep {
			if sym, ok := symbols.ByID(spec.Separator); ok && sym.IsGap {
				gapiness = -1
			}
		}
		if gapiness != -1 {
			for _, rhsSym := range spec.RHS {
				if symbols.IsGap(rhsSym) {
					gapiness++
				}
			}
		}
		t.byID[id] = Rule{
			ID:        id,
			LHS:       spec.LHS,
			RHS:       spec.RHS,
			Separator: spec.Separator,
			HasSep:    spec.HasSep,
			Gapiness:  gapiness,
		}
	}
	return t
}

// ByID looks up a rule by ID. ok is false for an unknown ID.
func (t *RuleTable) ByID(id RuleID) (Rule, bool) {
	r, ok := t.byID[id]
	return r, ok
}

// LHSName returns the name of a rule's left-hand-side symbol, or "" if
// either is unknown.
func (t *RuleTable) LHSName(id RuleID) string {
	r, ok := t.byID[id]
	if !ok {
		return ""
	}
	sym, ok := t.symbols.ByID(r.LHS)
	if !ok {
		return ""
	}
	return sym.Name
}

// IsSequenceRule reports whether a rule is a gap-separated sequence rule
// (gapiness == -1).
func (t *RuleTable) IsSequenceRule(id RuleID) bool {
	r, ok := t.byID[id]
	return ok && r.Gapiness == -1
}
