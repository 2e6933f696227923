package lint

import "github.com/aledsdavies/hoonlint/pkgs/catalog"

// Sidedness is a jogging's inferred chess-sidedness.
type Sidedness int

const (
	Kingside Sidedness = iota
	Queenside
)

func (s Sidedness) String() string {
	if s == Queenside {
		return "queenside"
	}
	return "kingside"
}

// maxAncestors bounds the ancestor chain to the 5 most recent entries,
// per spec.md §3.
const maxAncestors = 5

// Ancestor is one entry in the bounded ancestor chain.
type Ancestor struct {
	RuleID catalog.RuleID
	Start  int
}

// Context is the lint context threaded down the walk. It is a small
// value type: every With* method returns a derived copy, never mutating
// the receiver, so a jogging's chess_side/jog_rune_column/jog_body_column
// can be cleared on the copy passed to its own children without touching
// what the caller (or a sibling jog) sees.
type Context struct {
	Line        int
	IndentStack []int
	Ancestors   []Ancestor

	HasBodyIndent bool
	BodyIndent    int

	HasTallRuneIndent bool
	TallRuneIndent    int

	HasChessSide bool
	ChessSide    Sidedness

	HasJogRuneColumn bool
	JogRuneColumn    int

	HasJogBodyColumn bool
	JogBodyColumn    int

	HoonName string
}

// Root returns the initial context for the top of a walk.
func Root() Context {
	return Context{}
}

// EnterLine updates the indent stack for a node being visited at
// (line, column): if the node starts a new line relative to the parent's
// line, the stack resets to [column]; otherwise column is pushed only if
// it differs from the current top (spec.md §4.6 step 5).
func (c Context) EnterLine(line, column int) Context {
	next := c
	if line != c.Line {
		next.IndentStack = []int{column}
	} else if len(c.IndentStack) == 0 || c.IndentStack[len(c.IndentStack)-1] != column {
		stack := make([]int, len(c.IndentStack), len(c.IndentStack)+1)
		copy(stack, c.IndentStack)
		next.IndentStack = append(stack, column)
	}
	next.Line = line
	return next
}

// PushAncestor appends (ruleID, start) to the ancestor chain, bounded to
// the 5 most recent entries.
func (c Context) PushAncestor(ruleID catalog.RuleID, start int) Context {
	next := c
	entries := append(append([]Ancestor(nil), c.Ancestors...), Ancestor{RuleID: ruleID, Start: start})
	if len(entries) > maxAncestors {
		entries = entries[len(entries)-maxAncestors:]
	}
	next.Ancestors = entries
	return next
}

// WithBodyIndent records the column of the nearest enclosing tallBody
// node.
func (c Context) WithBodyIndent(col int) Context {
	next := c
	next.HasBodyIndent, next.BodyIndent = true, col
	return next
}

// WithTallRuneIndent records the column of the nearest enclosing tallRune
// (body or note) node.
func (c Context) WithTallRuneIndent(col int) Context {
	next := c
	next.HasTallRuneIndent, next.TallRuneIndent = true, col
	return next
}

// WithJogging records the chess-sidedness and jog columns a jogging
// ancestor derives for its immediate jog children.
func (c Context) WithJogging(side Sidedness, runeColumn, bodyColumn int, hasBodyColumn bool) Context {
	next := c
	next.HasChessSide, next.ChessSide = true, side
	next.HasJogRuneColumn, next.JogRuneColumn = true, runeColumn
	next.HasJogBodyColumn, next.JogBodyColumn = hasBodyColumn, bodyColumn
	return next
}

// ClearJogging removes chess_side/jog_rune_column/jog_body_column so they
// do not leak past the jog that consumes them, per spec.md §4.5.5.
func (c Context) ClearJogging() Context {
	next := c
	next.HasChessSide, next.ChessSide = false, 0
	next.HasJogRuneColumn, next.JogRuneColumn = false, 0
	next.HasJogBodyColumn, next.JogBodyColumn = false, 0
	return next
}

// WithHoonName updates the nearest enclosing non-mortar LHS name used for
// readable diagnostics.
func (c Context) WithHoonName(name string) Context {
	next := c
	next.HoonName = name
	return next
}

// NoteIndent computes the cast-alignment target column: the innermost of
// the enclosing body indent, else the enclosing tall-rune indent, else
// fallbackCol (the cast node's own column), per spec.md §4.5.2.
func (c Context) NoteIndent(fallbackCol int) int {
	if c.HasBodyIndent {
		return c.BodyIndent
	}
	if c.HasTallRuneIndent {
		return c.TallRuneIndent
	}
	return fallbackCol
}
