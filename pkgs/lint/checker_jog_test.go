package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aledsdavies/hoonlint/pkgs/cst"
	"github.com/aledsdavies/hoonlint/pkgs/posidx"
)

func buildJog(t *testing.T, tr *cst.Tree, headStart, headLen, gapStart, gapLen, bodyStart, bodyLen int) cst.Ref {
	t.Helper()
	head := tr.NewLexeme(0, headStart, headLen)
	gap := tr.NewSeparator(0, gapStart, gapLen)
	body := tr.NewLexeme(0, bodyStart, bodyLen)
	return tr.NewNode(0, []cst.Ref{head, gap, body})
}

func TestCheckJogKingsideFlatAligned(t *testing.T) {
	source := []byte("    head  body\n")
	idx := posidx.New(source)
	tr := cst.NewTree()
	jog := buildJog(t, tr, 4, 4, 8, 2, 10, 4)

	ctx := Root().WithJogging(Kingside, 2, 0, false)
	in := CheckInput{Tree: tr, Index: idx, Node: jog, Ctx: ctx}

	assert.Empty(t, checkJog(in))
}

func TestCheckJogKingsideHeadMisaligned(t *testing.T) {
	source := []byte("    head  body\n")
	idx := posidx.New(source)
	tr := cst.NewTree()
	jog := buildJog(t, tr, 4, 4, 8, 2, 10, 4)

	ctx := Root().WithJogging(Kingside, 0, 0, false)
	in := CheckInput{Tree: tr, Index: idx, Node: jog, Ctx: ctx}

	mistakes := checkJog(in)
	require.Len(t, mistakes, 1)
	assert.True(t, mistakes[0].HasExpectedColumn)
	assert.Equal(t, 2, mistakes[0].ExpectedColumn)
}

func TestCheckJogKingsideSplitSeaside(t *testing.T) {
	source := []byte("  head\n      body\n")
	idx := posidx.New(source)
	tr := cst.NewTree()
	headEnd := 6 // "  head" length 6
	jog := buildJog(t, tr, 2, 4, headEnd, 1, 13, 4)

	ctx := Root().WithJogging(Kingside, 0, 0, false)
	in := CheckInput{Tree: tr, Index: idx, Node: jog, Ctx: ctx}

	mistakes := checkJog(in)
	require.Len(t, mistakes, 1)
	assert.Equal(t, 4, mistakes[0].ExpectedColumn)
}

func TestCheckJogQueensideFlatUsesJogBodyColumn(t *testing.T) {
	source := []byte("        head    body\n")
	idx := posidx.New(source)
	tr := cst.NewTree()
	jog := buildJog(t, tr, 8, 4, 12, 4, 16, 4)

	ctx := Root().WithJogging(Queenside, 4, 16, true)
	in := CheckInput{Tree: tr, Index: idx, Node: jog, Ctx: ctx}

	assert.Empty(t, checkJog(in))
}

func TestCheckJogPanicsWithoutContext(t *testing.T) {
	source := []byte("head body\n")
	idx := posidx.New(source)
	tr := cst.NewTree()
	jog := buildJog(t, tr, 0, 4, 4, 1, 5, 4)

	in := CheckInput{Tree: tr, Index: idx, Node: jog, Ctx: Root()}

	assert.Panics(t, func() { checkJog(in) })
}

func TestCheckJogFlatGapOfTwoAcceptedRegardlessOfColumn(t *testing.T) {
	source := []byte("  head  body\n")
	idx := posidx.New(source)
	tr := cst.NewTree()
	jog := buildJog(t, tr, 2, 4, 6, 2, 8, 4)

	ctx := Root().WithJogging(Kingside, 0, 99, true)
	in := CheckInput{Tree: tr, Index: idx, Node: jog, Ctx: ctx}

	assert.Empty(t, checkJog(in), "gap of exactly 2 is unaligned and accepted regardless of jog_body_column")
}
