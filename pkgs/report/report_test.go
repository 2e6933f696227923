package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aledsdavies/hoonlint/pkgs/lint"
	"github.com/aledsdavies/hoonlint/pkgs/posidx"
	"github.com/aledsdavies/hoonlint/pkgs/suppress"
)

// numberedSource builds an n-line source with no trailing newline, so
// posidx.Index.LineCount() reports exactly n — a trailing "\n" would add
// a phantom (n+1)th empty line to the scan.
func numberedSource(n int) *posidx.Index {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = "line"
	}
	return posidx.New([]byte(strings.Join(lines, "\n")))
}

func TestRecordFormatsDiagnosticLine(t *testing.T) {
	idx := numberedSource(5)
	r := New("f.hoon", idx, 0)
	r.Record(lint.Mistake{Kind: lint.KindIndent, HoonName: "tallCastmold", Line: 3, Column: 5}, "misaligned note")

	require.Len(t, r.DiagnosticLines(), 1)
	assert.Equal(t, "f.hoon 3:6 indent tallCastmold misaligned note", r.DiagnosticLines()[0])
}

func TestRenderSourceZeroContextIsEmpty(t *testing.T) {
	idx := numberedSource(5)
	r := New("f.hoon", idx, 0)
	r.Record(lint.Mistake{Kind: lint.KindIndent, Line: 2, Column: 0}, "x")
	assert.Empty(t, r.RenderSource())
}

func TestRenderSourceNoMistakesIsEmpty(t *testing.T) {
	idx := numberedSource(5)
	r := New("f.hoon", idx, 2)
	assert.Empty(t, r.RenderSource())
}

func TestRenderSourceSingleBlockPrefixesMistakeAndParent(t *testing.T) {
	idx := numberedSource(6)
	r := New("f.hoon", idx, 2) // window: line +/- 1
	// mistake at line 4, parent (e.g. the enclosing rune line) at line 2;
	// both become topic lines but only line 4 carries a description.
	r.Record(lint.Mistake{Kind: lint.KindIndent, Line: 4, Column: 0, ParentLine: 2}, "bad indent")

	out := r.RenderSource()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	// windows: line 2 -> [1,3], line 4 -> [3,5]; 3 <= 3+1 so they merge
	// into one block [1,5].
	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[0], " "), "line 1 is plain context: %q", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], ">"), "line 2 is the parent topic line: %q", lines[1])
	assert.True(t, strings.HasPrefix(lines[2], " "), "line 3 is plain context: %q", lines[2])
	assert.True(t, strings.HasPrefix(lines[3], "!"), "line 4 is the mistake line: %q", lines[3])
	assert.True(t, strings.HasPrefix(lines[4], " "), "line 5 is plain context: %q", lines[4])
}

func TestRenderSourceDisjointBlocksGetDivider(t *testing.T) {
	idx := numberedSource(20)
	r := New("f.hoon", idx, 2) // window: line +/- 1
	r.Record(lint.Mistake{Kind: lint.KindIndent, Line: 2, Column: 0}, "a")
	r.Record(lint.Mistake{Kind: lint.KindIndent, Line: 15, Column: 0}, "b")

	out := r.RenderSource()
	assert.Equal(t, 1, strings.Count(out, "---\n"), "two far-apart mistakes render as two blocks with one divider")

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// block 1: lines 1-3 (3 lines), divider, block 2: lines 14-16 (3 lines)
	require.Len(t, lines, 3+1+3)
	assert.Equal(t, "---", lines[3])
}

func TestRenderSourceClampsToLastLine(t *testing.T) {
	idx := numberedSource(4)
	r := New("f.hoon", idx, 3) // window [line-2, line+2] = [2,6], would reach past line 4
	r.Record(lint.Mistake{Kind: lint.KindIndent, Line: 4, Column: 0}, "a")

	out := r.RenderSource()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 3, "window end clamps at the last real line (4), start at 2")
}

func TestFormatUnusedSuppressions(t *testing.T) {
	entries := []suppress.Entry{
		{File: "f.hoon", Line: 3, Column: 5, Kind: lint.KindIndent},
		{File: "f.hoon", Line: 9, Column: 1, Kind: lint.KindSequence},
	}
	lines := FormatUnusedSuppressions(entries)
	require.Len(t, lines, 2)
	assert.Equal(t, "Unused suppression: indent 3:5", lines[0])
	assert.Equal(t, "Unused suppression: sequence 9:1", lines[1])
}
