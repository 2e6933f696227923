// Package cst implements the concrete syntax tree the linter walks:
// Node/Lexeme/Separator/Null variants, arena-allocated with integer
// parent/prev/next indices rather than owning back-pointers, so the tree
// cannot form a reference cycle and its lifetime is exactly the arena's
// lifetime (spec.md §9).
package cst

import "github.com/aledsdavies/hoonlint/pkgs/catalog"

// Kind distinguishes the four CST node variants.
type Kind int

const (
	KindNode Kind = iota
	KindLexeme
	KindSeparator
	KindNull
)

// Ref is an index into a Tree's arena. Use None, not the zero value, to
// mean "no node" — see None below.
type Ref int

// None is the Ref value meaning "no node" (no parent, no sibling).
const None Ref = -1

type item struct {
	kind     Kind
	ruleID   catalog.RuleID
	symbol   catalog.SymbolID
	start    int
	length   int
	children []Ref
	parent   Ref
	prev     Ref
	next     Ref
}

// Tree is an arena of CST nodes for a single parse. The arena owns all
// nodes; Refs into it do not keep anything else alive.
type Tree struct {
	items []item
}

// NewTree returns an empty arena.
func NewTree() *Tree {
	return &Tree{}
}

func (t *Tree) alloc(it item) Ref {
	it.parent, it.prev, it.next = None, None, None
	t.items = append(t.items, it)
	return Ref(len(t.items) - 1)
}

// NewLexeme allocates a terminal occupying source[start:start+length].
func (t *Tree) NewLexeme(symbol catalog.SymbolID, start, length int) Ref {
	return t.alloc(item{kind: KindLexeme, symbol: symbol, start: start, length: length})
}

// NewSeparator allocates a synthetic inter-sibling gap node.
func (t *Tree) NewSeparator(symbol catalog.SymbolID, start, length int) Ref {
	return t.alloc(item{kind: KindSeparator, symbol: symbol, start: start, length: length})
}

// NewNull allocates an empty production.
func (t *Tree) NewNull(symbol catalog.SymbolID, start int) Ref {
	return t.alloc(item{kind: KindNull, symbol: symbol, start: start})
}

// NewNode allocates an interior production application over children,
// which must be non-empty and already allocated in this tree. The new
// node's start/length are derived from its children per the invariant
// that start equals the first child's start and start+length equals the
// last child's end. Parent/prev/next links on the children are set to
// point at the new node and at each other, in the order given.
func (t *Tree) NewNode(ruleID catalog.RuleID, children []Ref) Ref {
	if len(children) == 0 {
		panic("cst: NewNode requires at least one child")
	}
	first := t.items[children[0]]
	last := t.items[children[len(children)-1]]
	ref := t.alloc(item{
		kind:     KindNode,
		ruleID:   ruleID,
		start:    first.start,
		length:   (last.start + last.length) - first.start,
		children: append([]Ref(nil), children...),
	})
	for i, c := range children {
		child := t.items[c]
		child.parent = ref
		if i > 0 {
			child.prev = children[i-1]
		}
		if i < len(children)-1 {
			child.next = children[i+1]
		}
		t.items[c] = child
	}
	return ref
}

// Kind returns a node's variant.
func (t *Tree) Kind(ref Ref) Kind { return t.items[ref].kind }

// RuleID returns the production a Node applies. Only meaningful when
// Kind(ref) == KindNode.
func (t *Tree) RuleID(ref Ref) catalog.RuleID { return t.items[ref].ruleID }

// Symbol returns the symbol of a Lexeme, Separator, or Null.
func (t *Tree) Symbol(ref Ref) catalog.SymbolID { return t.items[ref].symbol }

// Start returns the byte offset at which ref begins.
func (t *Tree) Start(ref Ref) int { return t.items[ref].start }

// Length returns ref's byte length.
func (t *Tree) Length(ref Ref) int { return t.items[ref].length }

// End returns the byte offset immediately after ref.
func (t *Tree) End(ref Ref) int { return t.items[ref].start + t.items[ref].length }

// Children returns a Node's children in source order. Empty for
// Lexeme/Separator/Null.
func (t *Tree) Children(ref Ref) []Ref { return t.items[ref].children }

// Parent returns ref's parent, or None at the root.
func (t *Tree) Parent(ref Ref) Ref { return t.items[ref].parent }

// PrevSibling returns the sibling immediately before ref, or None.
func (t *Tree) PrevSibling(ref Ref) Ref { return t.items[ref].prev }

// NextSibling returns the sibling immediately after ref, or None.
func (t *Tree) NextSibling(ref Ref) Ref { return t.items[ref].next }

// Valid reports whether ref addresses an allocated node in this tree.
func (t *Tree) Valid(ref Ref) bool { return ref >= 0 && int(ref) < len(t.items) }
