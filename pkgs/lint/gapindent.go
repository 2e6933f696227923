package lint

import (
	"github.com/aledsdavies/hoonlint/pkgs/catalog"
	"github.com/aledsdavies/hoonlint/pkgs/cst"
	"github.com/aledsdavies/hoonlint/pkgs/posidx"
)

// GapIndent is one position at which the language's tall form may break a
// line: the first child of a node, or any child immediately following a
// gap-bearing symbol.
type GapIndent struct {
	Line int
	Col  int
	Node cst.Ref
}

// GapIndents computes the gap-indent list for node's children, per
// spec.md §4.3. The result is monotone in line number, and strictly
// increasing in column among same-line entries, by construction: each
// entry is some child's start position and children appear in source
// order.
func GapIndents(tr *cst.Tree, idx *posidx.Index, symbols *catalog.SymbolTable, node cst.Ref) []GapIndent {
	children := tr.Children(node)
	if len(children) == 0 {
		return nil
	}

	var out []GapIndent
	add := func(ref cst.Ref) {
		pos := idx.LineColumn(tr.Start(ref))
		out = append(out, GapIndent{Line: pos.Line, Col: pos.Column, Node: ref})
	}

	add(children[0])
	for i, child := range children {
		if tr.Kind(child) == cst.KindNode {
			continue
		}
		if symbols.IsGap(tr.Symbol(child)) && i+1 < len(children) {
			add(children[i+1])
		}
	}
	return out
}
