package lint

import "fmt"

// checkLusLus implements spec.md §4.5.3: children on lines after the
// first all sit at base_col + 2; same-line children are unconstrained.
// The commented-out "+2 body-indent override" policy spec.md §9 flags is
// left disabled, per that section's explicit instruction.
func checkLusLus(in CheckInput) []Mistake {
	gaps := in.Gaps
	if len(gaps) < 2 {
		return nil
	}
	baseCol := gaps[0].Col
	expected := baseCol + 2

	var mistakes []Mistake
	for i := 1; i < len(gaps); i++ {
		if gaps[i].Line == gaps[i-1].Line {
			continue
		}
		if gaps[i].Col != expected {
			m := indentMistake(
				fmt.Sprintf("lusLus alignment mismatch: expected column %d, got column %d", expected, gaps[i].Col),
				gaps[i].Line, gaps[i].Col, i,
			)
			mistakes = append(mistakes, withExpectedColumn(m, expected))
		}
	}
	return mistakes
}
