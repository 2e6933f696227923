package lint

import "fmt"

// checkJog implements spec.md §4.5.5. The enclosing jogging's
// chess_side, rune_column, and jog_body_column are consumed here; the
// walker clears them on the context copy passed to this jog's own
// children so they never leak into grandchildren.
func checkJog(in CheckInput) []Mistake {
	if !in.Ctx.HasChessSide || !in.Ctx.HasJogRuneColumn {
		panic(internalErrorf("lint", "checkJog", "jog visited without an enclosing jogging's chess-side/rune-column in context"))
	}

	g := measureJog(in.Tree, in.Index, in.Node)
	side := in.Ctx.ChessSide
	runeCol := in.Ctx.JogRuneColumn

	var mistakes []Mistake

	expectedHead := runeCol + 2
	if side == Queenside {
		expectedHead = runeCol + 4
	}
	if g.headCol != expectedHead {
		mistakes = append(mistakes, jogColumnMistake(
			fmt.Sprintf("jog %s head %s by %d", side, direction(g.headCol, expectedHead), abs(g.headCol-expectedHead)),
			g.headLine, g.headCol, expectedHead,
		))
	}

	switch {
	case !g.flat:
		expectedBody := runeCol + 4
		if side == Queenside {
			expectedBody = runeCol + 2
		}
		if g.bodyCol != expectedBody {
			mistakes = append(mistakes, jogColumnMistake(
				fmt.Sprintf("jog %s split body %s by %d", side, direction(g.bodyCol, expectedBody), abs(g.bodyCol-expectedBody)),
				g.bodyLine, g.bodyCol, expectedBody,
			))
		}
	case g.gapLength != alignedGapThreshold:
		if in.Ctx.HasJogBodyColumn && g.bodyCol != in.Ctx.JogBodyColumn {
			mistakes = append(mistakes, jogColumnMistake(
				fmt.Sprintf("jog %s flat body misaligned with jogging body column", side),
				g.bodyLine, g.bodyCol, in.Ctx.JogBodyColumn,
			))
		}
	}

	return mistakes
}

func jogColumnMistake(desc string, line, col, expected int) Mistake {
	m := indentMistake(desc, line, col, 0)
	return withExpectedColumn(m, expected)
}

func direction(got, expected int) string {
	if got < expected {
		return "underindented"
	}
	return "overindented"
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
