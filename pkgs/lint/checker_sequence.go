package lint

import (
	"fmt"

	"github.com/aledsdavies/hoonlint/pkgs/cst"
)

// semsigLHS is the one production name spec.md §4.5.4 singles out for the
// parent-relative exception.
const semsigLHS = "tallSemsig"

// checkSequence implements spec.md §4.5.4: every non-gap child either
// shares the previous line or lands at exactly parent_col, except when
// the parent production is tallSemsig, whose target is parent_col + 2.
// The elements' grandparent is the sequence node's own parent: the
// sequence node holds the elements, and tallSemsig holds the sequence.
func checkSequence(in CheckInput) []Mistake {
	gaps := in.Gaps
	if len(gaps) < 2 {
		return nil
	}

	target := gaps[0].Col
	if parent := in.Tree.Parent(in.Node); in.Tree.Valid(parent) && in.Tree.Kind(parent) == cst.KindNode {
		if in.Rules.LHSName(in.Tree.RuleID(parent)) == semsigLHS {
			pos := in.Index.LineColumn(in.Tree.Start(parent))
			target = pos.Column + 2
		}
	}

	var mistakes []Mistake
	for i := 1; i < len(gaps); i++ {
		if gaps[i].Line == gaps[i-1].Line {
			continue
		}
		if gaps[i].Col != target {
			m := sequenceMistake(
				fmt.Sprintf("sequence element misaligned: expected column %d, got column %d", target, gaps[i].Col),
				gaps[i].Line, gaps[i].Col, i,
			)
			mistakes = append(mistakes, withExpectedColumn(m, target))
		}
	}
	return mistakes
}
