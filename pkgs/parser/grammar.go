// Package parser implements the demonstration frontend grammar spec.md
// §4.8 describes: a recursive-descent parser over pkgs/lexer's token
// stream, building pkgs/cst trees the pkgs/lint core can walk. The
// grammar itself — its symbol table, rule table, and classifier — is
// assembled once in grammar.go; parser.go drives the actual recursive
// descent.
package parser

import "github.com/aledsdavies/hoonlint/pkgs/catalog"

// Symbol and rule names, spelled out as constants so the parser can
// refer to them without magic numbers.
const (
	symIdent = iota
	symTag
	symRune
	symTisTis
	symGap
	symHoon // abstract placeholder: "any sub-hoon", used only in RHS metadata

	symColhepCell
	symTallCastmold
	symLushepCell
	symTallSemsig
	symTallSemsigSequence
	symTallWutbar
	symTallWuthep
	symTallWutlus
	symTallWutpat
	symJog
	symJoggingList

	symbolCount
)

const (
	RuleColhepCell = catalog.RuleID(iota)
	RuleTallCastmold
	RuleLushepCell
	RuleTallSemsig
	RuleTallSemsigSequence
	RuleTallWutbar
	RuleTallWuthep
	RuleTallWutlus
	RuleTallWutpat
	RuleJog
	RuleJoggingList
)

// Grammar bundles the symbol/rule metadata and classifier the parser and
// walker share, plus the SymbolIDs the parser needs to build lexemes.
type Grammar struct {
	Symbols    *catalog.SymbolTable
	Rules      *catalog.RuleTable
	Classifier *catalog.Classifier

	Ident  catalog.SymbolID
	Tag    catalog.SymbolID
	Rune   catalog.SymbolID
	TisTis catalog.SymbolID
	Gap    catalog.SymbolID
}

// runeRules maps each of the eight construct-introducing runes (spec.md
// §4.8's table) to the rule it introduces.
var runeRules = map[string]catalog.RuleID{
	":-": RuleColhepCell,
	"^-": RuleTallCastmold,
	"+-": RuleLushepCell,
	";;": RuleTallSemsig,
	"?|": RuleTallWutbar,
	"?-": RuleTallWuthep,
	"?+": RuleTallWutlus,
	"?@": RuleTallWutpat,
}

// RuleForRune returns the rule a rune spelling introduces. ok is false
// for any other string.
func RuleForRune(spelling string) (catalog.RuleID, bool) {
	id, ok := runeRules[spelling]
	return id, ok
}

// NewGrammar builds the frontend's symbol table, rule table, and
// classifier, per the table in spec.md §4.8.
func NewGrammar() *Grammar {
	names := make([]string, symbolCount)
	isLexeme := make([]bool, symbolCount)
	names[symIdent], isLexeme[symIdent] = "IDENT", true
	names[symTag], isLexeme[symTag] = "TAG", true
	names[symRune], isLexeme[symRune] = "RUNE", true
	names[symTisTis], isLexeme[symTisTis] = "TISTIS", true
	names[symGap], isLexeme[symGap] = "GAP", true
	names[symHoon] = "Hoon"
	names[symColhepCell] = "ColhepCell"
	names[symTallCastmold] = "tallCastmold"
	names[symLushepCell] = "LushepCell"
	names[symTallSemsig] = "tallSemsig"
	names[symTallSemsigSequence] = "tallSemsigSequence"
	names[symTallWutbar] = "tallWutbar"
	names[symTallWuthep] = "tallWuthep"
	names[symTallWutlus] = "tallWutlus"
	names[symTallWutpat] = "tallWutpat"
	names[symJog] = "Jog"
	names[symJoggingList] = "JoggingList"

	symbols := catalog.NewSymbolTable(names, isLexeme)
	gapID := catalog.SymbolID(symGap)
	hoonID := catalog.SymbolID(symHoon)
	runeID := catalog.SymbolID(symRune)
	tisTisID := catalog.SymbolID(symTisTis)
	jogID := catalog.SymbolID(symJog)
	joggingListID := catalog.SymbolID(symJoggingList)

	specs := make([]catalog.RuleSpec, 11)
	specs[RuleColhepCell] = catalog.RuleSpec{LHS: symColhepCell, RHS: []catalog.SymbolID{hoonID, gapID, hoonID}}
	specs[RuleTallCastmold] = catalog.RuleSpec{LHS: symTallCastmold, RHS: []catalog.SymbolID{hoonID, gapID, hoonID}}
	specs[RuleLushepCell] = catalog.RuleSpec{LHS: symLushepCell, RHS: []catalog.SymbolID{hoonID, gapID, hoonID}}
	specs[RuleTallSemsig] = catalog.RuleSpec{LHS: symTallSemsig, RHS: []catalog.SymbolID{hoonID, gapID, hoonID}}
	specs[RuleTallSemsigSequence] = catalog.RuleSpec{LHS: symTallSemsigSequence, RHS: []catalog.SymbolID{hoonID}, Separator: gapID, HasSep: true}
	specs[RuleTallWutbar] = catalog.RuleSpec{LHS: symTallWutbar, RHS: []catalog.SymbolID{runeID, hoonID, joggingListID, tisTisID}}
	specs[RuleTallWuthep] = catalog.RuleSpec{LHS: symTallWuthep, RHS: []catalog.SymbolID{runeID, hoonID, joggingListID, tisTisID}}
	specs[RuleTallWutlus] = catalog.RuleSpec{LHS: symTallWutlus, RHS: []catalog.SymbolID{runeID, hoonID, hoonID, joggingListID, tisTisID}}
	specs[RuleTallWutpat] = catalog.RuleSpec{LHS: symTallWutpat, RHS: []catalog.SymbolID{runeID, joggingListID, tisTisID, hoonID}}
	specs[RuleJog] = catalog.RuleSpec{LHS: symJog, RHS: []catalog.SymbolID{hoonID, gapID, hoonID}}
	specs[RuleJoggingList] = catalog.RuleSpec{LHS: symJoggingList, RHS: []catalog.SymbolID{jogID}, Separator: gapID, HasSep: true}

	rules := catalog.NewRuleTable(symbols, specs)

	classifier := catalog.NewClassifier(rules, catalog.ClassifierConfig{
		// Jog and JoggingList are structural glue: a reported mistake
		// inside either takes the name of the nearest enclosing jogging
		// construct (e.g. "tallWutbar"), not "Jog" itself.
		MortarLHS:     []catalog.RuleID{RuleJog, RuleJoggingList},
		TallNote:      []catalog.RuleID{RuleTallCastmold},
		TallLusLus:    []catalog.RuleID{RuleLushepCell},
		TallJog:       []catalog.RuleID{RuleJog},
		Tall0Jogging:  []catalog.RuleID{RuleTallWutbar},
		Tall1Jogging:  []catalog.RuleID{RuleTallWuthep},
		Tall2Jogging:  []catalog.RuleID{RuleTallWutlus},
		TallJogging1_: []catalog.RuleID{RuleTallWutpat},
		Sequence:      []catalog.RuleID{RuleTallSemsigSequence},
		JoggingList:   []catalog.RuleID{RuleJoggingList},
		TallBody:      []catalog.RuleID{RuleTallSemsig},
	})

	return &Grammar{
		Symbols:    symbols,
		Rules:      rules,
		Classifier: classifier,
		Ident:      catalog.SymbolID(symIdent),
		Tag:        catalog.SymbolID(symTag),
		Rune:       runeID,
		TisTis:     tisTisID,
		Gap:        gapID,
	}
}
