package alignment

import (
	"fmt"

	"github.com/willf/bitset"

	"github.com/aria-lang/nwaffine/internal/sequence"
)

// ScoreBreakdown is the column-by-column evaluation of an alignment.
type ScoreBreakdown struct {
	Score      int     `json:"score"`
	Matches    int     `json:"matches"`
	Mismatches int     `json:"mismatches"`
	GapColumns int     `json:"gap_columns"`
	GapRuns    int     `json:"gap_runs"`
	Identity   float64 `json:"identity"`
	Similarity float64 `json:"similarity"`
	Length     int     `json:"length"`
	Sequence1  string  `json:"sequence1"`
	Sequence2  string  `json:"sequence2"`
}

// Rescore evaluates two aligned strings under scoring. Each aligned pair
// adds the match or mismatch score; each maximal run of gaps in one row
// costs GapOpen + (length-1)*GapExtend. For an alignment produced by
// TraceBack the result equals the score Align reported.
//
// Characters are compared byte for byte, as Align compares them, so 'a'
// and 'A' are a mismatch. Upper-case both rows first to score
// case-insensitively. Sequence1 and Sequence2 hold the rows with gaps
// removed.
func Rescore(aligned1, aligned2 string, scoring *ScoringMatrix) (*ScoreBreakdown, error) {
	if len(aligned1) != len(aligned2) {
		return nil, fmt.Errorf("aligned sequences must have equal length (%d != %d)", len(aligned1), len(aligned2))
	}
	if scoring == nil {
		scoring = Default()
	}

	n := uint(len(aligned1))
	gaps1, gaps2 := bitset.New(n), bitset.New(n)
	b := &ScoreBreakdown{
		Length:    len(aligned1),
		Sequence1: sequence.StripGaps(aligned1),
		Sequence2: sequence.StripGaps(aligned2),
	}

	for i := 0; i < len(aligned1); i++ {
		c1, c2 := aligned1[i], aligned2[i]
		switch {
		case c1 == sequence.Gap && c2 == sequence.Gap:
			return nil, fmt.Errorf("column %d has a gap in both rows", i)
		case c1 == sequence.Gap:
			gaps1.Set(uint(i))
		case c2 == sequence.Gap:
			gaps2.Set(uint(i))
		case c1 == c2:
			b.Matches++
			b.Score += scoring.MatchScore
		default:
			b.Mismatches++
			b.Score += scoring.MismatchScore
		}
	}

	for _, gaps := range []*bitset.BitSet{gaps1, gaps2} {
		for _, run := range gapRuns(gaps) {
			b.GapRuns++
			b.Score += scoring.GapCost(run)
		}
		b.GapColumns += int(gaps.Count())
	}

	if b.Length > 0 {
		b.Identity = float64(b.Matches) / float64(b.Length)
	}
	if aligned := b.Length - b.GapColumns; aligned > 0 {
		b.Similarity = float64(b.Matches) / float64(aligned)
	}
	return b, nil
}

// gapRuns returns the lengths of the maximal runs of set bits, in order.
func gapRuns(gaps *bitset.BitSet) []int {
	var runs []int
	for i, ok := gaps.NextSet(0); ok; i, ok = gaps.NextSet(i) {
		start := i
		for i < gaps.Len() && gaps.Test(i) {
			i++
		}
		runs = append(runs, int(i-start))
	}
	return runs
}
