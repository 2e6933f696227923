// Package lexer implements the demonstration frontend tokenizer spec.md
// §4.8 describes: a small rune/gap scanner covering exactly the
// constructs the shape checkers in pkgs/lint validate, grounded on the
// teacher's ASCII lookup-table scanning technique (pkgs/lexer/lexer.go)
// rewritten for a rune-prefixed, whitespace-significant grammar instead
// of a brace-delimited shell-command one.
package lexer

import "fmt"

// Kind distinguishes the token classes this frontend recognizes.
type Kind int

const (
	EOF Kind = iota
	Illegal
	Rune    // a two-character construct-introducing rune, e.g. "?-", "^-"
	TisTis  // the "==" jogging terminator
	Ident   // a lowercase identifier
	Tag     // a "%"-prefixed atom
	Gap     // a run of mandatory inter-token whitespace (spaces and/or newlines)
)

var kindNames = [...]string{
	EOF:     "EOF",
	Illegal: "ILLEGAL",
	Rune:    "RUNE",
	TisTis:  "TISTIS",
	Ident:   "IDENT",
	Tag:     "TAG",
	Gap:     "GAP",
}

func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Token is one lexical unit: its kind, literal text, and position.
// Line and Column are 1-based (the first byte of a line is column 1,
// unlike pkgs/posidx.Position's 0-based column); a newline byte is
// reported at column 0 of the line it starts.
type Token struct {
	Kind   Kind
	Value  string
	Start  int
	Line   int
	Column int
}
