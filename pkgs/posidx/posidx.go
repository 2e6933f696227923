// Package posidx precomputes a line-to-byte-offset mapping for a source
// buffer and answers (line, column) queries against byte offsets.
package posidx

import "sort"

// Position is a 1-based line and 0-based column, plus the byte offset it
// was derived from.
type Position struct {
	Line   int
	Column int
	Offset int
}

// Index maps byte offsets in a source buffer to (line, column) pairs.
type Index struct {
	source     []byte
	lineToPos  []int // lineToPos[i] is the byte offset of line i+1
}

// New scans source once and builds an Index. Line 1 starts at offset 0;
// line N (N>1) starts immediately after the (N-1)th newline.
func New(source []byte) *Index {
	lineToPos := make([]int, 1, 64)
	lineToPos[0] = 0
	for i, b := range source {
		if b == '\n' {
			lineToPos = append(lineToPos, i+1)
		}
	}
	return &Index{source: source, lineToPos: lineToPos}
}

// LineColumn returns the 1-based line and 0-based column for offset.
// Lookup is O(log lines) via binary search over line start offsets.
func (idx *Index) LineColumn(offset int) Position {
	// Find the last line whose start offset is <= offset.
	line := sort.Search(len(idx.lineToPos), func(i int) bool {
		return idx.lineToPos[i] > offset
	})
	if line == 0 {
		line = 1
	}
	lineStart := idx.lineToPos[line-1]
	return Position{Line: line, Column: offset - lineStart, Offset: offset}
}

// Literal returns the length bytes of source starting at offset.
func (idx *Index) Literal(offset, length int) []byte {
	if offset < 0 || offset+length > len(idx.source) {
		return nil
	}
	return idx.source[offset : offset+length]
}

// LineCount returns the number of lines scanned.
func (idx *Index) LineCount() int {
	return len(idx.lineToPos)
}

// LineStart returns the byte offset at which the given 1-based line
// number begins.
func (idx *Index) LineStart(line int) int {
	if line < 1 {
		line = 1
	}
	if line > len(idx.lineToPos) {
		return len(idx.source)
	}
	return idx.lineToPos[line-1]
}

// LineText returns the raw bytes of the given 1-based line, excluding the
// trailing newline.
func (idx *Index) LineText(line int) []byte {
	start := idx.LineStart(line)
	end := len(idx.source)
	if line < len(idx.lineToPos) {
		end = idx.lineToPos[line] - 1
	}
	if start > end || start > len(idx.source) {
		return nil
	}
	if end > len(idx.source) {
		end = len(idx.source)
	}
	return idx.source[start:end]
}
