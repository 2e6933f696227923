package lint

import (
	"github.com/aledsdavies/hoonlint/pkgs/catalog"
	"github.com/aledsdavies/hoonlint/pkgs/cst"
	"github.com/aledsdavies/hoonlint/pkgs/posidx"
)

// CheckInput is everything a shape checker needs: the tree and position
// service to measure against, the node being checked, its precomputed
// gap-indent list, and the context inherited from its ancestors.
type CheckInput struct {
	Tree       *cst.Tree
	Index      *posidx.Index
	Symbols    *catalog.SymbolTable
	Rules      *catalog.RuleTable
	Classifier *catalog.Classifier
	Node       cst.Ref
	Gaps       []GapIndent
	Ctx        Context
}

// Checker validates one node's children against its shape's rules and
// returns the (possibly empty) list of mistakes found.
type Checker func(in CheckInput) []Mistake
