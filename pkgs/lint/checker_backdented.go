package lint

import "fmt"

// checkBackdented implements spec.md §4.5.1: a descending staircase,
// each successive gap-indent one stop left of the previous, except a
// child sharing its previous child's line is unconstrained.
func checkBackdented(in CheckInput) []Mistake {
	gaps := in.Gaps
	if len(gaps) < 2 {
		return nil
	}
	baseCol := gaps[0].Col
	n := len(gaps) - 1

	var mistakes []Mistake
	for i := 1; i < len(gaps); i++ {
		if gaps[i].Line == gaps[i-1].Line {
			continue
		}
		expected := baseCol + 2*(n-i+1)
		if gaps[i].Col != expected {
			m := indentMistake(
				fmt.Sprintf("backdent mismatch: expected column %d, got column %d", expected, gaps[i].Col),
				gaps[i].Line, gaps[i].Col, i,
			)
			mistakes = append(mistakes, withBackdentColumn(m, expected))
		}
	}
	return mistakes
}
