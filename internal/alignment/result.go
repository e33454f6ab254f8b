package alignment

import (
	"fmt"
	"strings"

	"github.com/biogo/hts/sam"
)

// Alignment is one optimal global alignment of two sequences.
//
// Removing the gap characters from AlignedSeq1 gives the first input and
// from AlignedSeq2 the second; both strings have the same length.
type Alignment struct {
	AlignedSeq1 string
	AlignedSeq2 string
	Score       int
	Identity    float64
	ID1         string
	ID2         string
}

// NewAlignment creates an alignment result from two aligned strings.
func NewAlignment(aligned1, aligned2 string, score int) (*Alignment, error) {
	if len(aligned1) != len(aligned2) {
		return nil, fmt.Errorf("aligned sequences must have equal length")
	}
	return newAlignment(aligned1, aligned2, score), nil
}

func newAlignment(aligned1, aligned2 string, score int) *Alignment {
	a := &Alignment{
		AlignedSeq1: aligned1,
		AlignedSeq2: aligned2,
		Score:       score,
	}
	a.Identity = a.calculateIdentity()
	return a
}

// calculateIdentity calculates the sequence identity.
func (a *Alignment) calculateIdentity() float64 {
	if len(a.AlignedSeq1) == 0 {
		return 0.0
	}
	return float64(a.MatchCount()) / float64(len(a.AlignedSeq1))
}

// Length returns the length of the alignment.
func (a *Alignment) Length() int {
	return len(a.AlignedSeq1)
}

// MatchCount returns the number of matches.
func (a *Alignment) MatchCount() int {
	count := 0
	for i := 0; i < len(a.AlignedSeq1); i++ {
		if a.AlignedSeq1[i] == a.AlignedSeq2[i] && a.AlignedSeq1[i] != '-' {
			count++
		}
	}
	return count
}

// MismatchCount returns the number of mismatches.
func (a *Alignment) MismatchCount() int {
	count := 0
	for i := 0; i < len(a.AlignedSeq1); i++ {
		if a.AlignedSeq1[i] != a.AlignedSeq2[i] &&
			a.AlignedSeq1[i] != '-' && a.AlignedSeq2[i] != '-' {
			count++
		}
	}
	return count
}

// GapsSeq1 returns the number of gaps in sequence 1.
func (a *Alignment) GapsSeq1() int {
	return strings.Count(a.AlignedSeq1, "-")
}

// GapsSeq2 returns the number of gaps in sequence 2.
func (a *Alignment) GapsSeq2() int {
	return strings.Count(a.AlignedSeq2, "-")
}

// TotalGaps returns the total number of gaps.
func (a *Alignment) TotalGaps() int {
	return a.GapsSeq1() + a.GapsSeq2()
}

// GapOpenings counts the number of gap openings.
func (a *Alignment) GapOpenings() int {
	openings := 0
	inGap1, inGap2 := false, false

	for i := 0; i < len(a.AlignedSeq1); i++ {
		if a.AlignedSeq1[i] == '-' && !inGap1 {
			openings++
			inGap1 = true
		} else if a.AlignedSeq1[i] != '-' {
			inGap1 = false
		}

		if a.AlignedSeq2[i] == '-' && !inGap2 {
			openings++
			inGap2 = true
		} else if a.AlignedSeq2[i] != '-' {
			inGap2 = false
		}
	}

	return openings
}

// Cigar returns the alignment as CIGAR operations: I for a gap in
// sequence 1, D for a gap in sequence 2, M for a match and X for a
// mismatch.
func (a *Alignment) Cigar() sam.Cigar {
	var cigar sam.Cigar
	var current sam.CigarOpType
	count := 0

	for i := 0; i < len(a.AlignedSeq1); i++ {
		var op sam.CigarOpType
		switch {
		case a.AlignedSeq1[i] == '-':
			op = sam.CigarInsertion
		case a.AlignedSeq2[i] == '-':
			op = sam.CigarDeletion
		case a.AlignedSeq1[i] == a.AlignedSeq2[i]:
			op = sam.CigarMatch
		default:
			op = sam.CigarMismatch
		}

		if count > 0 && op == current {
			count++
			continue
		}
		if count > 0 {
			cigar = append(cigar, sam.NewCigarOp(current, count))
		}
		current, count = op, 1
	}

	if count > 0 {
		cigar = append(cigar, sam.NewCigarOp(current, count))
	}
	return cigar
}

// ToCIGAR generates a CIGAR string representation.
func (a *Alignment) ToCIGAR() string {
	cigar := a.Cigar()
	if len(cigar) == 0 {
		return ""
	}
	return cigar.String()
}

// MatchLine returns the middle line of the pretty format: '|' for a match,
// '.' for a mismatch and ' ' for a gap column.
func (a *Alignment) MatchLine() string {
	var matchLine strings.Builder
	for i := 0; i < len(a.AlignedSeq1); i++ {
		if a.AlignedSeq1[i] == a.AlignedSeq2[i] && a.AlignedSeq1[i] != '-' {
			matchLine.WriteByte('|')
		} else if a.AlignedSeq1[i] == '-' || a.AlignedSeq2[i] == '-' {
			matchLine.WriteByte(' ')
		} else {
			matchLine.WriteByte('.')
		}
	}
	return matchLine.String()
}

// Format returns a formatted string representation of the alignment.
func (a *Alignment) Format() string {
	return fmt.Sprintf("Seq1: %s\n      %s\nSeq2: %s\nScore: %d\nIdentity: %.1f%%\nCIGAR: %s",
		a.AlignedSeq1, a.MatchLine(), a.AlignedSeq2,
		a.Score, a.Identity*100, a.ToCIGAR())
}

func (a *Alignment) String() string {
	return fmt.Sprintf("Alignment { score: %d, identity: %.1f%%, length: %d }",
		a.Score, a.Identity*100, a.Length())
}
