package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsGapName(t *testing.T) {
	assert.True(t, isGapName("GAP"))
	assert.True(t, isGapName("TISFASGAP"))
	assert.True(t, isGapName("WUTSEMGAP"))
	assert.False(t, isGapName("TISTIS"))
	assert.False(t, isGapName("gap"))
}

func TestSymbolTable(t *testing.T) {
	names := []string{"RUNE", "GAP", "NAME"}
	isLexeme := []bool{true, true, true}
	st := NewSymbolTable(names, isLexeme)

	sym, ok := st.ByName("GAP")
	require.True(t, ok)
	assert.True(t, sym.IsGap)

	sym, ok = st.ByName("RUNE")
	require.True(t, ok)
	assert.False(t, sym.IsGap)

	assert.True(t, st.IsGap(sym.ID+1)) // GAP is index 1
}

func TestRuleGapinessSequence(t *testing.T) {
	names := []string{"SEQ", "GAP", "ELEM"}
	st := NewSymbolTable(names, []bool{false, true, false})
	gapID, _ := st.ByName("GAP")
	elemID, _ := st.ByName("ELEM")

	rt := NewRuleTable(st, []RuleSpec{
		{LHS: 0, RHS: []SymbolID{elemID.ID, elemID.ID}, Separator: gapID.ID, HasSep: true},
	})
	r, ok := rt.ByID(0)
	require.True(t, ok)
	assert.Equal(t, -1, r.Gapiness)
	assert.True(t, rt.IsSequenceRule(0))
}

func TestRuleGapinessCount(t *testing.T) {
	names := []string{"NODE", "GAP", "CHILD"}
	st := NewSymbolTable(names, []bool{false, true, false})
	gapID, _ := st.ByName("GAP")
	childID, _ := st.ByName("CHILD")

	rt := NewRuleTable(st, []RuleSpec{
		{LHS: 0, RHS: []SymbolID{gapID.ID, childID.ID, gapID.ID, childID.ID}},
	})
	r, ok := rt.ByID(0)
	require.True(t, ok)
	assert.Equal(t, 2, r.Gapiness)
}

func TestClassifierPriority(t *testing.T) {
	names := []string{"tallWutbar", "tallCastmold", "plainCell"}
	st := NewSymbolTable(names, []bool{false, false, false})
	rt := NewRuleTable(st, []RuleSpec{
		{LHS: 0, RHS: []SymbolID{}}, // tallWutbar: would match tallRune pattern too
		{LHS: 1, RHS: []SymbolID{}}, // tallCastmold: enumerated tallNote; the tallRune pattern does not match it
		{LHS: 2, RHS: []SymbolID{0}},
	})

	cl := NewClassifier(rt, ClassifierConfig{
		Tall0Jogging: []RuleID{0},
		TallNote:     []RuleID{1},
	})

	assert.Equal(t, Shape0Jogging, cl.ShapeForRule(0), "enumerated jogging set wins over name pattern")
	assert.Equal(t, ShapeCast, cl.ShapeForRule(1), "enumerated note set classifies it as cast")
	assert.Equal(t, ShapeNone, cl.ShapeForRule(2), "unclassified, no gap children, no shape")
}

func TestClassifierNamePatternFallback(t *testing.T) {
	names := []string{"tallSemsig"}
	st := NewSymbolTable(names, []bool{false})
	rt := NewRuleTable(st, []RuleSpec{{LHS: 0, RHS: []SymbolID{}}})
	cl := NewClassifier(rt, ClassifierConfig{})
	assert.Equal(t, ShapeBackdented, cl.ShapeForRule(0))
}

func TestIsJoggingShape(t *testing.T) {
	for _, s := range []Shape{Shape0Jogging, Shape1Jogging, Shape2Jogging, ShapePrefixJogging} {
		assert.True(t, IsJoggingShape(s))
	}
	assert.False(t, IsJoggingShape(ShapeBackdented))
	assert.False(t, IsJoggingShape(ShapeJog))
}
