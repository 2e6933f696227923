package lint

import (
	"github.com/aledsdavies/hoonlint/pkgs/cst"
	"github.com/aledsdavies/hoonlint/pkgs/posidx"
)

// JogParts returns a Jog node's head, gap, and body children. A Jog is
// always exactly {head, gap, body}, per spec.md's glossary definition of
// a jog as a two-part head/body construct separated by a gap.
func JogParts(tr *cst.Tree, jog cst.Ref) (head, gap, body cst.Ref) {
	children := tr.Children(jog)
	if len(children) != 3 {
		panic("lint: jog node does not have exactly 3 children (head, gap, body)")
	}
	return children[0], children[1], children[2]
}

// jogGeometry is the per-jog measurement the census and the jog checker
// both need.
type jogGeometry struct {
	jog       cst.Ref
	headLine  int
	headCol   int
	bodyLine  int
	bodyCol   int
	gapLength int
	flat      bool // head and body on the same line
}

func measureJog(tr *cst.Tree, idx *posidx.Index, jog cst.Ref) jogGeometry {
	head, gap, body := JogParts(tr, jog)
	headPos := idx.LineColumn(tr.Start(head))
	bodyPos := idx.LineColumn(tr.Start(body))
	return jogGeometry{
		jog:       jog,
		headLine:  headPos.Line,
		headCol:   headPos.Column,
		bodyLine:  bodyPos.Line,
		bodyCol:   bodyPos.Column,
		gapLength: tr.Length(gap),
		flat:      headPos.Line == bodyPos.Line,
	}
}

// jogsIn returns the Jog node children of a jogging sequence, skipping
// the synthetic gap separators between them.
func jogsIn(tr *cst.Tree, joggingSeq cst.Ref) []cst.Ref {
	var out []cst.Ref
	for _, child := range tr.Children(joggingSeq) {
		if tr.Kind(child) == cst.KindNode {
			out = append(out, child)
		}
	}
	return out
}
