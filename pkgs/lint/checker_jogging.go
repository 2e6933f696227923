package lint

import (
	"fmt"

	"github.com/aledsdavies/hoonlint/pkgs/cst"
)

// The four jogging-bearing productions carry their rune as children[0]:
// a Tree node's start equals its first child's start (cst.NewNode), and
// rune_column is the node's own start column, so the rune lexeme must be
// the leading child even though the §4.8 grammar table only names the
// semantically meaningful children after it.

// checkClosingRune implements the closing-`==` validator spec.md §4.5.6
// describes and §9 flags as duplicated across the four jogging-bearing
// shapes: the terminator must not share the rune's line and must land at
// expectedCol. If the two bytes at the reported position are not
// literally "==", the parser's terminator recovery may have synthesized
// it, so the mismatch is suppressed rather than reported.
func checkClosingRune(in CheckInput, closing cst.Ref, runeLine, expectedCol int) []Mistake {
	start := in.Tree.Start(closing)
	if string(in.Index.Literal(start, 2)) != "==" {
		return nil
	}

	pos := in.Index.LineColumn(start)
	var mistakes []Mistake
	if pos.Line == runeLine {
		mistakes = append(mistakes, withExpectedLine(
			indentMistake("closing == must not share the rune's line", pos.Line, pos.Column, 0),
			runeLine+1,
		))
	}
	if pos.Column != expectedCol {
		mistakes = append(mistakes, withExpectedColumn(
			indentMistake(fmt.Sprintf("closing == misaligned: expected column %d, got column %d", expectedCol, pos.Column), pos.Line, pos.Column, 0),
			expectedCol,
		))
	}
	return mistakes
}

// checkJogging0 implements spec.md §4.5.6: tall_0Jogging (`?|`). Children
// are [rune, sub-hoon, jogging-list, closing ==].
func checkJogging0(in CheckInput) []Mistake {
	children := in.Tree.Children(in.Node)
	if len(children) != 4 {
		return nil
	}
	subhoon, closing := children[1], children[3]

	runePos := in.Index.LineColumn(in.Tree.Start(in.Node))
	var mistakes []Mistake

	childPos := in.Index.LineColumn(in.Tree.Start(subhoon))
	if childPos.Line != runePos.Line && childPos.Column != runePos.Column+2 {
		mistakes = append(mistakes, withExpectedColumn(
			indentMistake("0-jogging first child must be on the rune line or at rune_column+2", childPos.Line, childPos.Column, 0),
			runePos.Column+2,
		))
	}

	mistakes = append(mistakes, checkClosingRune(in, closing, runePos.Line, runePos.Column)...)
	return mistakes
}

// checkJogging1 implements spec.md §4.5.7: tall_1Jogging (`?-`). Children
// are [rune, head sub-hoon, jogging-list, closing ==].
func checkJogging1(in CheckInput) []Mistake {
	children := in.Tree.Children(in.Node)
	if len(children) != 4 {
		return nil
	}
	head, joggingList, closing := children[1], children[2], children[3]

	runePos := in.Index.LineColumn(in.Tree.Start(in.Node))
	census := Census(in.Tree, in.Index, joggingList, runePos.Column)

	expectedHead := runePos.Column + 4
	if census.Side == Queenside {
		expectedHead = runePos.Column + 6
	}

	var mistakes []Mistake
	headPos := in.Index.LineColumn(in.Tree.Start(head))
	if headPos.Line != runePos.Line || headPos.Column != expectedHead {
		mistakes = append(mistakes, withExpectedColumn(
			indentMistake(fmt.Sprintf("1-jogging head must be on the rune line at column %d", expectedHead), headPos.Line, headPos.Column, 0),
			expectedHead,
		))
	}

	mistakes = append(mistakes, checkClosingRune(in, closing, runePos.Line, runePos.Column)...)
	return mistakes
}

// checkJogging2 implements spec.md §4.5.8: tall_2Jogging (`?+`). Children
// are [rune, first sub-hoon, second sub-hoon, jogging-list, closing ==].
func checkJogging2(in CheckInput) []Mistake {
	children := in.Tree.Children(in.Node)
	if len(children) != 5 {
		return nil
	}
	first, second, joggingList, closing := children[1], children[2], children[3], children[4]

	runePos := in.Index.LineColumn(in.Tree.Start(in.Node))
	census := Census(in.Tree, in.Index, joggingList, runePos.Column)

	expectedFirst := runePos.Column + 6
	expectedSecond := runePos.Column + 4
	if census.Side == Queenside {
		expectedFirst = runePos.Column + 8
		expectedSecond = runePos.Column + 6
	}

	var mistakes []Mistake
	firstPos := in.Index.LineColumn(in.Tree.Start(first))
	if firstPos.Line != runePos.Line || firstPos.Column != expectedFirst {
		mistakes = append(mistakes, withExpectedColumn(
			indentMistake(fmt.Sprintf("2-jogging first child must be on the rune line at column %d", expectedFirst), firstPos.Line, firstPos.Column, 0),
			expectedFirst,
		))
	}

	secondPos := in.Index.LineColumn(in.Tree.Start(second))
	if secondPos.Line != runePos.Line && secondPos.Column != expectedSecond {
		mistakes = append(mistakes, withExpectedColumn(
			indentMistake(fmt.Sprintf("2-jogging second child must be on the rune line or at column %d", expectedSecond), secondPos.Line, secondPos.Column, 1),
			expectedSecond,
		))
	}

	mistakes = append(mistakes, checkClosingRune(in, closing, runePos.Line, runePos.Column)...)
	return mistakes
}

// checkPrefixJogging implements spec.md §4.5.9: tallJogging1_ (`?@`).
// Children are [rune, jogging-list, closing ==, tail sub-hoon]. Only the
// kingside form is documented in the corpus; the same closing and tail
// columns are applied whatever the jogging's sidedness.
func checkPrefixJogging(in CheckInput) []Mistake {
	children := in.Tree.Children(in.Node)
	if len(children) != 4 {
		return nil
	}
	closing, tail := children[2], children[3]

	runePos := in.Index.LineColumn(in.Tree.Start(in.Node))
	mistakes := checkClosingRune(in, closing, runePos.Line, runePos.Column+2)

	tailPos := in.Index.LineColumn(in.Tree.Start(tail))
	if tailPos.Column != runePos.Column {
		mistakes = append(mistakes, withExpectedColumn(
			indentMistake("prefix-jogging tail must be at rune_column", tailPos.Line, tailPos.Column, 2),
			runePos.Column,
		))
	}
	return mistakes
}
