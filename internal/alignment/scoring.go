// Package alignment implements global pairwise alignment with affine gap
// costs.
//
// Align fills the three score matrices of the Gotoh recurrence (S for
// substitutions, Ix for gaps in sequence 2, Iy for gaps in sequence 1) and
// TraceBack walks them from the bottom-right corner to recover one optimal
// alignment. No direction matrices are stored; the walk re-derives each
// predecessor from the cost parameters.
package alignment

import (
	"fmt"
	"sort"
	"strings"
)

// AlignDirection represents a traceback step.
type AlignDirection int

const (
	// Diagonal represents a match or mismatch
	Diagonal AlignDirection = iota
	// Up represents a gap in sequence 2
	Up
	// Left represents a gap in sequence 1
	Left
)

func (d AlignDirection) String() string {
	switch d {
	case Diagonal:
		return "diagonal"
	case Up:
		return "up"
	case Left:
		return "left"
	default:
		return "unknown"
	}
}

// ScoringMatrix holds the four cost scalars of the affine model.
//
// MatchScore is added for equal characters and MismatchScore for unequal
// ones. A gap run of length n costs GapOpen + (n-1)*GapExtend. Any sign is
// accepted.
type ScoringMatrix struct {
	MatchScore    int `json:"match"`
	MismatchScore int `json:"mismatch"`
	GapOpen       int `json:"gap_open"`
	GapExtend     int `json:"gap_extend"`
}

// NewScoringMatrix creates a scoring matrix. No combination is rejected;
// use Validate to flag unusual signs.
func NewScoringMatrix(match, mismatch, gapOpen, gapExtend int) *ScoringMatrix {
	return &ScoringMatrix{
		MatchScore:    match,
		MismatchScore: mismatch,
		GapOpen:       gapOpen,
		GapExtend:     gapExtend,
	}
}

// Default returns the costs the batch command uses when none are given:
// match 7, mismatch -5, gap open -3, gap extend -1.
func Default() *ScoringMatrix {
	return &ScoringMatrix{
		MatchScore:    7,
		MismatchScore: -5,
		GapOpen:       -3,
		GapExtend:     -1,
	}
}

// DefaultDNA creates a small-integer DNA scoring matrix.
func DefaultDNA() *ScoringMatrix {
	return &ScoringMatrix{
		MatchScore:    2,
		MismatchScore: -1,
		GapOpen:       -2,
		GapExtend:     -1,
	}
}

// BLASTLike creates a BLAST-like scoring matrix.
func BLASTLike() *ScoringMatrix {
	return &ScoringMatrix{
		MatchScore:    1,
		MismatchScore: -3,
		GapOpen:       -5,
		GapExtend:     -2,
	}
}

// Linear creates a scoring matrix with uniform gap penalty.
func Linear(match, mismatch, gap int) *ScoringMatrix {
	return NewScoringMatrix(match, mismatch, gap, gap)
}

var presets = map[string]func() *ScoringMatrix{
	"default": Default,
	"dna":     DefaultDNA,
	"blast":   BLASTLike,
}

// Preset returns a named scoring matrix.
func Preset(name string) (*ScoringMatrix, error) {
	p, ok := presets[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown scoring preset %q (have %s)", name, strings.Join(PresetNames(), ", "))
	}
	return p(), nil
}

// PresetNames lists the preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate reports costs with unconventional signs: a non-positive match,
// or a positive mismatch, gap open or gap extend. The aligner itself
// accepts them.
func (s *ScoringMatrix) Validate() error {
	if s.MatchScore <= 0 {
		return fmt.Errorf("match score %d is not positive", s.MatchScore)
	}
	if s.MismatchScore > 0 {
		return fmt.Errorf("mismatch score %d is positive", s.MismatchScore)
	}
	if s.GapOpen > 0 {
		return fmt.Errorf("gap open cost %d is positive", s.GapOpen)
	}
	if s.GapExtend > 0 {
		return fmt.Errorf("gap extend cost %d is positive", s.GapExtend)
	}
	return nil
}

// Score returns the substitution score for two characters.
func (s *ScoringMatrix) Score(a, b byte) int {
	if a == b {
		return s.MatchScore
	}
	return s.MismatchScore
}

// GapCost returns the cost of a single gap run of length n.
func (s *ScoringMatrix) GapCost(n int) int {
	if n <= 0 {
		return 0
	}
	return s.GapOpen + (n-1)*s.GapExtend
}

// String returns a string representation of the scoring matrix.
func (s *ScoringMatrix) String() string {
	return fmt.Sprintf("ScoringMatrix { match: %d, mismatch: %d, gap_open: %d, gap_extend: %d }",
		s.MatchScore, s.MismatchScore, s.GapOpen, s.GapExtend)
}
