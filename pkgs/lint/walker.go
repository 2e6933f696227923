package lint

import (
	"github.com/aledsdavies/hoonlint/pkgs/catalog"
	"github.com/aledsdavies/hoonlint/pkgs/cst"
	"github.com/aledsdavies/hoonlint/pkgs/posidx"
)

// Walker drives the depth-first preorder traversal spec.md §4.6
// describes, dispatching each Node to its shape checker and threading an
// immutable Context down to its children.
type Walker struct {
	Tree       *cst.Tree
	Index      *posidx.Index
	Symbols    *catalog.SymbolTable
	Rules      *catalog.RuleTable
	Classifier *catalog.Classifier

	// CensusWhitespace, when set, makes WalkCensus return one CensusRecord
	// per inspected construct regardless of whether its checker found a
	// mistake, per spec.md §6 --census-whitespace.
	CensusWhitespace bool
}

// CensusRecord is one construct visited by the walk during
// --census-whitespace mode: its inferred shape and position, independent
// of whether a mistake was found there.
type CensusRecord struct {
	HoonName string
	Shape    string
	Line     int
	Column   int
}

func NewWalker(tr *cst.Tree, idx *posidx.Index, symbols *catalog.SymbolTable, rules *catalog.RuleTable, classifier *catalog.Classifier) *Walker {
	return &Walker{Tree: tr, Index: idx, Symbols: symbols, Rules: rules, Classifier: classifier}
}

// checkersByShape maps every catalog.Shape to the Checker that validates
// it. ShapeNone has no entry: nodes classified ShapeNone (terminals,
// single-child wrappers, jogging-list containers) carry no
// node-level check of their own.
var checkersByShape = map[catalog.Shape]Checker{
	catalog.ShapeBackdented:    checkBackdented,
	catalog.ShapeCast:          checkCast,
	catalog.ShapeLusLus:        checkLusLus,
	catalog.ShapeSequence:      checkSequence,
	catalog.ShapeJog:           checkJog,
	catalog.Shape0Jogging:      checkJogging0,
	catalog.Shape1Jogging:      checkJogging1,
	catalog.Shape2Jogging:      checkJogging2,
	catalog.ShapePrefixJogging: checkPrefixJogging,
}

// Walk runs the traversal from root and returns every mistake found.
// A panic carrying an *InternalError (an invariant violation a checker
// raised) is converted into a returned error rather than propagated;
// any other panic is a genuine bug and is re-raised.
func (w *Walker) Walk(root cst.Ref) (mistakes []Mistake, err error) {
	mistakes, _, err = w.WalkCensus(root)
	return mistakes, err
}

// WalkCensus behaves like Walk but additionally returns one CensusRecord
// per inspected construct when w.CensusWhitespace is set (nil otherwise).
func (w *Walker) WalkCensus(root cst.Ref) (mistakes []Mistake, census []CensusRecord, err error) {
	defer func() {
		if r := recover(); r != nil {
			if ie, ok := r.(*InternalError); ok {
				err = ie
				mistakes = nil
				census = nil
				return
			}
			panic(r)
		}
	}()
	mistakes, census = w.walk(root, Root())
	return mistakes, census, nil
}

func (w *Walker) walk(node cst.Ref, ctx Context) ([]Mistake, []CensusRecord) {
	if !w.Tree.Valid(node) || w.Tree.Kind(node) != cst.KindNode {
		return nil, nil
	}

	pos := w.Index.LineColumn(w.Tree.Start(node))
	ctx = ctx.EnterLine(pos.Line, pos.Column)

	ruleID := w.Tree.RuleID(node)
	shape := w.Classifier.ShapeForRule(ruleID)

	if w.Classifier.IsTallBody(ruleID) {
		ctx = ctx.WithBodyIndent(pos.Column)
	}
	if w.Classifier.IsTallRune(ruleID) {
		ctx = ctx.WithTallRuneIndent(pos.Column)
	}

	if !w.Classifier.IsMortar(ruleID) {
		ctx = ctx.WithHoonName(w.Rules.LHSName(ruleID))
	}

	parentLine := 0
	if n := len(ctx.Ancestors); n > 0 {
		parentLine = w.Index.LineColumn(ctx.Ancestors[n-1].Start).Line
	}
	ctx = ctx.PushAncestor(ruleID, w.Tree.Start(node))

	var mistakes []Mistake
	var records []CensusRecord
	if checker, ok := checkersByShape[shape]; ok {
		gaps := GapIndents(w.Tree, w.Index, w.Symbols, node)
		in := CheckInput{
			Tree:       w.Tree,
			Index:      w.Index,
			Symbols:    w.Symbols,
			Rules:      w.Rules,
			Classifier: w.Classifier,
			Node:       node,
			Gaps:       gaps,
			Ctx:        ctx,
		}
		for _, m := range checker(in) {
			m.HoonName = ctx.HoonName
			m.ParentLine = parentLine
			mistakes = append(mistakes, m)
		}
		if w.CensusWhitespace {
			records = append(records, CensusRecord{
				HoonName: ctx.HoonName,
				Shape:    shape.String(),
				Line:     pos.Line,
				Column:   pos.Column,
			})
		}
	}

	childCtx := ctx
	if idx, ok := joggingListIndex(shape); ok {
		children := w.Tree.Children(node)
		if idx < len(children) {
			joggingList := children[idx]
			census := Census(w.Tree, w.Index, joggingList, pos.Column)
			childCtx = ctx.WithJogging(census.Side, pos.Column, census.BodyColumn, census.HasBodyColumn)
		}
	}
	if shape == catalog.ShapeJog {
		childCtx = ctx.ClearJogging()
	}

	for _, child := range w.Tree.Children(node) {
		childMistakes, childRecords := w.walk(child, childCtx)
		mistakes = append(mistakes, childMistakes...)
		records = append(records, childRecords...)
	}

	return mistakes, records
}

// joggingListIndex returns the position of the jogging-list child among
// a jogging-bearing node's children (which lead with the rune itself, so
// a node's start matches cst.NewNode's first-child-start invariant): the
// four jogging shapes disagree on where the jogging-list falls after it.
func joggingListIndex(shape catalog.Shape) (int, bool) {
	switch shape {
	case catalog.Shape0Jogging, catalog.Shape1Jogging:
		return 2, true
	case catalog.Shape2Jogging:
		return 3, true
	case catalog.ShapePrefixJogging:
		return 1, true
	default:
		return 0, false
	}
}
