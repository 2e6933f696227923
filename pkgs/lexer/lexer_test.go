package lexer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func assertToken(t *testing.T, got Token, kind Kind, value string, start, line, col int) {
	t.Helper()
	if got.Kind != kind {
		t.Fatalf("Kind = %s, want %s", got.Kind, kind)
	}
	if got.Value != value {
		t.Fatalf("Value = %q, want %q", got.Value, value)
	}
	if got.Start != start {
		t.Fatalf("Start = %d, want %d", got.Start, start)
	}
	if got.Line != line {
		t.Fatalf("Line = %d, want %d", got.Line, line)
	}
	if got.Column != col {
		t.Fatalf("Column = %d, want %d", got.Column, col)
	}
}

func TestNextRecognizesAllEightRunes(t *testing.T) {
	for _, spelling := range []string{":-", "^-", "+-", ";;", "?|", "?-", "?+", "?@"} {
		l := New([]byte(spelling))
		tok := l.Next()
		assertToken(t, tok, Rune, spelling, 0, 1, 1)
		if eof := l.Next(); eof.Kind != EOF {
			t.Fatalf("%s: trailing token Kind = %s, want EOF", spelling, eof.Kind)
		}
	}
}

func TestNextIdentAndGapAndTisTis(t *testing.T) {
	// "foo == bar", positions: f=0 o=1 o=2 (gap)3 ==4-5 (gap)6 b=7 a=8 r=9
	l := New([]byte("foo == bar"))

	assertToken(t, l.Next(), Ident, "foo", 0, 1, 1)
	assertToken(t, l.Next(), Gap, " ", 3, 1, 4)
	assertToken(t, l.Next(), TisTis, "==", 4, 1, 5)
	assertToken(t, l.Next(), Gap, " ", 6, 1, 7)
	assertToken(t, l.Next(), Ident, "bar", 7, 1, 8)
	assertToken(t, l.Next(), EOF, "", 10, 1, 11)
}

func TestNextTag(t *testing.T) {
	// "%foo-bar": % at col 1, content starts col 2
	l := New([]byte("%foo-bar"))
	assertToken(t, l.Next(), Tag, "%foo-bar", 0, 1, 1)
}

func TestNextGapSpansNewlinesAndAdvancesLine(t *testing.T) {
	// "a\n  b": a=byte0, gap="\n  "=bytes1-3, b=byte4.
	// readChar attributes a '\n' character's own line/column to the line
	// it starts (line+1, column 0), matching the teacher's readChar, so
	// the gap token's reported position is already past the break.
	l := New([]byte("a\n  b"))

	assertToken(t, l.Next(), Ident, "a", 0, 1, 1)
	gap := l.Next()
	assertToken(t, gap, Gap, "\n  ", 1, 2, 0)
	assertToken(t, l.Next(), Ident, "b", 4, 2, 3)
}

func TestNextIllegalCharacter(t *testing.T) {
	l := New([]byte("$"))
	assertToken(t, l.Next(), Illegal, "$", 0, 1, 1)
}

func TestNextSingleEqualsIsIllegal(t *testing.T) {
	// A lone '=' (not followed by a second '=') is not TisTis and has no
	// other meaning in this grammar; the lexer reports it Illegal and
	// lets the parser's error path name the construct it appeared in.
	l := New([]byte("=x"))
	assertToken(t, l.Next(), Illegal, "=", 0, 1, 1)
	assertToken(t, l.Next(), Ident, "x", 1, 1, 2)
}

func TestNextRuneHeadNotFollowedBySecondCharIsIllegal(t *testing.T) {
	// ':' alone (not ":-") has no meaning; only the colon itself is
	// consumed so the parser can resynchronize on the next character.
	l := New([]byte(":x"))
	assertToken(t, l.Next(), Illegal, ":", 0, 1, 1)
	assertToken(t, l.Next(), Ident, "x", 1, 1, 2)
}

func TestNextTokenKindSequenceForJoggingSource(t *testing.T) {
	l := New([]byte("?| a b ==")) // rune gap ident gap ident gap tistis eof
	var kinds []Kind
	for {
		tok := l.Next()
		kinds = append(kinds, tok.Kind)
		if tok.Kind == EOF {
			break
		}
	}
	expected := []Kind{Rune, Gap, Ident, Gap, Ident, Gap, TisTis, EOF}
	if diff := cmp.Diff(expected, kinds); diff != "" {
		t.Errorf("token kind sequence mismatch (-want +got):\n%s", diff)
	}
}
