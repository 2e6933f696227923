package suppress

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aledsdavies/hoonlint/pkgs/lint"
)

func TestParseEntriesBasic(t *testing.T) {
	src := `# a leading comment
file.hoon 3:5 indent some message here

file.hoon 10:1 sequence   # trailing comment after an empty message
`
	entries, err := ParseEntries(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, Entry{File: "file.hoon", Line: 3, Column: 5, Kind: lint.KindIndent, Message: "some message here"}, entries[0])
	assert.Equal(t, Entry{File: "file.hoon", Line: 10, Column: 1, Kind: lint.KindSequence, Message: ""}, entries[1])
}

func TestParseEntriesMalformedKindFailsFast(t *testing.T) {
	src := "good 1:1 indent\n" +
		"bad 2:2 not-a-kind\n" +
		"good 3:3 sequence\n"
	_, err := ParseEntries(strings.NewReader(src))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestParseEntriesMalformedPositionFailsFast(t *testing.T) {
	_, err := ParseEntries(strings.NewReader("file.hoon 3 indent\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 1")
}

func TestParseEntriesTooFewFields(t *testing.T) {
	_, err := ParseEntries(strings.NewReader("file.hoon 3:5\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 1")
}

func TestFilterDecideNoListsEmitsUnmarked(t *testing.T) {
	f := NewFilter(nil, nil, false)
	emit, suppressed := f.Decide("f.hoon", 3, 6, lint.KindIndent)
	assert.True(t, emit)
	assert.False(t, suppressed)
}

func TestFilterDecideSuppressionDropsByDefault(t *testing.T) {
	suppressions := []Entry{{File: "f.hoon", Line: 3, Column: 6, Kind: lint.KindIndent}}
	f := NewFilter(suppressions, nil, false)

	emit, suppressed := f.Decide("f.hoon", 3, 6, lint.KindIndent)
	assert.False(t, emit)
	assert.True(t, suppressed)

	unused := f.UnusedSuppressions()
	assert.Empty(t, unused, "the matched suppression must not appear as unused")
}

func TestFilterDecideSuppressionWithCensusWhitespaceEmitsRewritten(t *testing.T) {
	suppressions := []Entry{{File: "f.hoon", Line: 3, Column: 6, Kind: lint.KindIndent}}
	f := NewFilter(suppressions, nil, true)

	emit, suppressed := f.Decide("f.hoon", 3, 6, lint.KindIndent)
	assert.True(t, emit)
	assert.True(t, suppressed)
}

func TestFilterDecideInclusionGateDropsUnlistedTag(t *testing.T) {
	inclusions := []Entry{{File: "f.hoon", Line: 3, Column: 6, Kind: lint.KindIndent}}
	f := NewFilter(nil, inclusions, false)

	emit, _ := f.Decide("f.hoon", 3, 6, lint.KindIndent)
	assert.True(t, emit)

	emit, _ = f.Decide("f.hoon", 9, 1, lint.KindIndent)
	assert.False(t, emit, "tags absent from an active inclusion list are dropped")
}

func TestFilterDecideEmptyInclusionListDropsEverything(t *testing.T) {
	f := NewFilter(nil, []Entry{}, false)
	emit, _ := f.Decide("f.hoon", 1, 1, lint.KindIndent)
	assert.False(t, emit)
}

func TestFilterUnusedSuppressionsTracksOnlyUnmatched(t *testing.T) {
	suppressions := []Entry{
		{File: "f.hoon", Line: 3, Column: 6, Kind: lint.KindIndent},
		{File: "f.hoon", Line: 9, Column: 1, Kind: lint.KindSequence},
	}
	f := NewFilter(suppressions, nil, false)

	f.Decide("f.hoon", 3, 6, lint.KindIndent) // matched

	unused := f.UnusedSuppressions()
	require.Len(t, unused, 1)
	assert.Equal(t, 9, unused[0].Line)
	assert.Equal(t, lint.KindSequence, unused[0].Kind)
}

func TestFilterUnusedSuppressionsSortedDeterministically(t *testing.T) {
	suppressions := []Entry{
		{File: "b.hoon", Line: 1, Column: 1, Kind: lint.KindIndent},
		{File: "a.hoon", Line: 5, Column: 1, Kind: lint.KindIndent},
		{File: "a.hoon", Line: 2, Column: 1, Kind: lint.KindIndent},
	}
	f := NewFilter(suppressions, nil, false)

	unused := f.UnusedSuppressions()
	require.Len(t, unused, 3)
	assert.Equal(t, "a.hoon", unused[0].File)
	assert.Equal(t, 2, unused[0].Line)
	assert.Equal(t, "a.hoon", unused[1].File)
	assert.Equal(t, 5, unused[1].Line)
	assert.Equal(t, "b.hoon", unused[2].File)
}
