// Package stats provides summaries over sets of alignments.
package stats

import (
	"fmt"
	"sort"

	"github.com/aria-lang/nwaffine/internal/alignment"
)

// AlignmentSetStats represents aggregated statistics for many alignments.
type AlignmentSetStats struct {
	Count          int     `json:"count"`
	MinScore       int     `json:"min_score"`
	MaxScore       int     `json:"max_score"`
	MeanScore      float64 `json:"mean_score"`
	MedianScore    float64 `json:"median_score"`
	MeanIdentity   float64 `json:"mean_identity"`
	TotalColumns   int     `json:"total_columns"`
	TotalGaps      int     `json:"total_gaps"`
	TotalGapOpens  int     `json:"total_gap_opens"`
	TotalMismatch  int     `json:"total_mismatches"`
	MeanLength     float64 `json:"mean_length"`
	GappedFraction float64 `json:"gapped_fraction"`
}

// FromAlignments calculates statistics for a collection of alignments.
func FromAlignments(alignments []*alignment.Alignment) (*AlignmentSetStats, error) {
	if len(alignments) == 0 {
		return nil, fmt.Errorf("alignment list cannot be empty")
	}

	count := len(alignments)
	scores := make([]int, count)
	s := &AlignmentSetStats{Count: count}

	scoreSum := 0
	identitySum := 0.0
	gapped := 0
	for i, a := range alignments {
		scores[i] = a.Score
		scoreSum += a.Score
		identitySum += a.Identity
		s.TotalColumns += a.Length()
		s.TotalGaps += a.TotalGaps()
		s.TotalGapOpens += a.GapOpenings()
		s.TotalMismatch += a.MismatchCount()
		if a.TotalGaps() > 0 {
			gapped++
		}
	}

	sorted := make([]int, count)
	copy(sorted, scores)
	sort.Ints(sorted)

	s.MinScore = sorted[0]
	s.MaxScore = sorted[count-1]

	mid := count / 2
	if count%2 == 0 {
		s.MedianScore = float64(sorted[mid-1]+sorted[mid]) / 2
	} else {
		s.MedianScore = float64(sorted[mid])
	}

	s.MeanScore = float64(scoreSum) / float64(count)
	s.MeanIdentity = identitySum / float64(count)
	s.MeanLength = float64(s.TotalColumns) / float64(count)
	s.GappedFraction = float64(gapped) / float64(count)

	return s, nil
}

func (s *AlignmentSetStats) String() string {
	return fmt.Sprintf(`AlignmentSetStats {
  count: %d
  score range: %d - %d
  mean score: %.1f
  median score: %.1f
  mean identity: %.1f%%
  mean length: %.1f
  gaps: %d in %d runs
  mismatches: %d
}`, s.Count, s.MinScore, s.MaxScore, s.MeanScore, s.MedianScore,
		s.MeanIdentity*100, s.MeanLength, s.TotalGaps, s.TotalGapOpens, s.TotalMismatch)
}
