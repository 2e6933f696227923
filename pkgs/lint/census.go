package lint

import (
	"github.com/aledsdavies/hoonlint/pkgs/cst"
	"github.com/aledsdavies/hoonlint/pkgs/posidx"
)

// alignedGapThreshold is the length (in bytes) of the minimal one-stop
// separator; only a flat gap longer than this counts as a deliberate
// alignment attempt. A flat jog's gap of exactly one stop (2 bytes) is
// "treated as unaligned and accepted" per spec.md §4.5.5; only a wider
// gap signals the body was pushed out to line up with something.
const alignedGapThreshold = 2

// CensusResult is a jogging's inferred chess-sidedness and aligned body
// column, per spec.md §4.4.
type CensusResult struct {
	Side             Sidedness
	BodyColumn       int
	HasBodyColumn    bool
}

// Census inspects a jogging sequence's jogs relative to runeColumn and
// decides the jogging's sidedness and body alignment column.
func Census(tr *cst.Tree, idx *posidx.Index, joggingSeq cst.Ref, runeColumn int) CensusResult {
	jogs := jogsIn(tr, joggingSeq)
	if len(jogs) == 0 {
		return CensusResult{Side: Kingside}
	}

	var kingsideCount, queensideCount int
	geoms := make([]jogGeometry, 0, len(jogs))
	for _, jog := range jogs {
		g := measureJog(tr, idx, jog)
		geoms = append(geoms, g)
		if g.headCol-runeColumn >= 4 {
			queensideCount++
		} else {
			kingsideCount++
		}
	}

	side := Queenside
	if kingsideCount > queensideCount {
		side = Kingside
	}

	return CensusResult{Side: side, BodyColumn: bodyColumn(geoms), HasBodyColumn: true}
}

// bodyColumn picks the aligned body column: among jogs whose gap is wider
// than the minimal one-stop separator, the column with the most
// occurrences, ties broken by earliest line and then by column value for
// determinism. Falls back to the first jog's body column when no jog is
// aligned.
func bodyColumn(geoms []jogGeometry) int {
	type stat struct {
		count       int
		earliestLine int
	}
	stats := make(map[int]stat)
	anyAligned := false
	for _, g := range geoms {
		if !g.flat || g.gapLength <= alignedGapThreshold {
			continue
		}
		anyAligned = true
		s := stats[g.bodyCol]
		s.count++
		if s.earliestLine == 0 || g.bodyLine < s.earliestLine {
			s.earliestLine = g.bodyLine
		}
		stats[g.bodyCol] = s
	}

	if !anyAligned {
		return geoms[0].bodyCol
	}

	bestCol := 0
	best := stat{}
	first := true
	for col, s := range stats {
		if first || s.count > best.count ||
			(s.count == best.count && s.earliestLine < best.earliestLine) ||
			(s.count == best.count && s.earliestLine == best.earliestLine && col < bestCol) {
			bestCol, best, first = col, s, false
		}
	}
	return bestCol
}
