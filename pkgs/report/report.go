// Package report implements the Mistake Reporter and its context-window
// renderer from spec.md §4.7: accumulating emitted diagnostics and their
// source-line context, then rendering a compiler-style listing grouped
// into blocks with `---` dividers, grounded on the teacher's
// pkgs/parser/errors.go FormatErrors/context-window style.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aledsdavies/hoonlint/pkgs/lint"
	"github.com/aledsdavies/hoonlint/pkgs/posidx"
	"github.com/aledsdavies/hoonlint/pkgs/suppress"
)

// Reporter accumulates the diagnostic lines and context-window state for
// one file, per spec.md §4.7. It is not safe for concurrent use.
type Reporter struct {
	file        string
	index       *posidx.Index
	contextSize int

	diagnosticLines []string
	mistakeDescs    map[int][]string
	topicLines      map[int]bool
}

// New returns a Reporter for file, whose source is indexed by idx.
// contextSize is the `-C`/`--context` window size in lines; 0 means no
// source is ever rendered.
func New(file string, idx *posidx.Index, contextSize int) *Reporter {
	return &Reporter{
		file:         file,
		index:        idx,
		contextSize:  contextSize,
		mistakeDescs: make(map[int][]string),
		topicLines:   make(map[int]bool),
	}
}

// Record adds one already-filtered mistake to the report. description is
// the text to print — ordinarily mistake.Description, but the caller
// substitutes the census-whitespace "SUPPRESSION <text>" form when the
// suppression filter says the diagnostic matched a suppression tag.
func (r *Reporter) Record(mistake lint.Mistake, description string) {
	reportCol := mistake.Column + 1
	r.diagnosticLines = append(r.diagnosticLines, fmt.Sprintf(
		"%s %d:%d %s %s %s", r.file, mistake.Line, reportCol, mistake.Kind, mistake.HoonName, description,
	))

	r.mistakeDescs[mistake.Line] = append(r.mistakeDescs[mistake.Line], description)
	r.topicLines[mistake.Line] = true
	if mistake.ParentLine > 0 {
		r.topicLines[mistake.ParentLine] = true
	}
}

// RecordCensus adds one --census-whitespace entry: a diagnostic for an
// inspected construct, tagged with its inferred shape, regardless of
// whether its checker found a mistake there.
func (r *Reporter) RecordCensus(rec lint.CensusRecord) {
	reportCol := rec.Column + 1
	r.diagnosticLines = append(r.diagnosticLines, fmt.Sprintf(
		"%s %d:%d census %s %s", r.file, rec.Line, reportCol, rec.Shape, rec.HoonName,
	))
}

// DiagnosticLines returns every recorded diagnostic line, in recording
// order.
func (r *Reporter) DiagnosticLines() []string {
	return r.diagnosticLines
}

// window is an inclusive [start, end] range of 1-based source lines.
type window struct{ start, end int }

// contextWindows merges each topic line's ±(contextSize-1) window with
// its neighbors, per spec.md §4.7, returning the merged blocks in source
// order. Overlapping windows, and adjacent ones (one starting on the line
// right after the other ends), merge into one.
func contextWindows(topicLines map[int]bool, contextSize int) []window {
	lines := make([]int, 0, len(topicLines))
	for l := range topicLines {
		lines = append(lines, l)
	}
	sort.Ints(lines)

	var blocks []window
	for _, l := range lines {
		start, end := l-(contextSize-1), l+(contextSize-1)
		if start < 1 {
			start = 1
		}
		if len(blocks) > 0 && start <= blocks[len(blocks)-1].end+1 {
			if end > blocks[len(blocks)-1].end {
				blocks[len(blocks)-1].end = end
			}
			continue
		}
		blocks = append(blocks, window{start, end})
	}
	return blocks
}

// RenderSource renders the context-window listing: one block per group of
// contiguous topic lines, `---` dividers between non-adjacent blocks, and
// each source line prefixed `!` (a mistake line), `>` (a topic line
// pulled in for context only), or a space. Returns "" when contextSize is
// 0 or nothing was recorded.
func (r *Reporter) RenderSource() string {
	if r.contextSize <= 0 || len(r.topicLines) == 0 {
		return ""
	}

	blocks := contextWindows(r.topicLines, r.contextSize)
	lastLine := r.index.LineCount()

	var b strings.Builder
	for i, blk := range blocks {
		if i > 0 {
			b.WriteString("---\n")
		}
		end := blk.end
		if end > lastLine {
			end = lastLine
		}
		for line := blk.start; line <= end; line++ {
			prefix := " "
			switch {
			case len(r.mistakeDescs[line]) > 0:
				prefix = "!"
			case r.topicLines[line]:
				prefix = ">"
			}
			fmt.Fprintf(&b, "%s %4d | %s\n", prefix, line, r.index.LineText(line))
		}
	}
	return b.String()
}

// FormatUnusedSuppressions renders the trailing `Unused suppression: ...`
// lines spec.md §6 describes, one per suppression entry whose tag never
// matched a diagnostic.
func FormatUnusedSuppressions(entries []suppress.Entry) []string {
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = fmt.Sprintf("Unused suppression: %s %d:%d", e.Kind, e.Line, e.Column)
	}
	return lines
}
