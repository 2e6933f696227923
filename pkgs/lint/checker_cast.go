package lint

import "fmt"

// checkCast implements spec.md §4.5.2: children align to note_indent
// (innermost of enclosing body-indent, else enclosing tall-rune-indent,
// else the cast's own column), otherwise identical to backdented.
func checkCast(in CheckInput) []Mistake {
	gaps := in.Gaps
	if len(gaps) < 2 {
		return nil
	}
	noteIndent := in.Ctx.NoteIndent(gaps[0].Col)

	var mistakes []Mistake
	for i := 1; i < len(gaps); i++ {
		if gaps[i].Line == gaps[i-1].Line {
			continue
		}
		if gaps[i].Col != noteIndent {
			m := indentMistake(
				fmt.Sprintf("cast alignment mismatch: expected column %d, got column %d", noteIndent, gaps[i].Col),
				gaps[i].Line, gaps[i].Col, i,
			)
			mistakes = append(mistakes, withExpectedColumn(m, noteIndent))
		}
	}
	return mistakes
}
