// Package nwaffine provides a high-level API for affine-gap global
// alignment of two sequences.
//
// Example usage:
//
//	a := nwaffine.AlignGlobal("GATTACA", "GCATGCT", nwaffine.DefaultScoring())
//	fmt.Println(a.Format())
//
//	mat, score := nwaffine.Align("AC", "AG", nil)
//	aligned1, aligned2 := nwaffine.TraceBack(mat, "AC", "AG", nil)
package nwaffine

import (
	"context"
	"fmt"

	"github.com/aria-lang/nwaffine/internal/alignment"
	"github.com/aria-lang/nwaffine/internal/batch"
	"github.com/aria-lang/nwaffine/internal/loader"
	"github.com/aria-lang/nwaffine/internal/sequence"
	"github.com/aria-lang/nwaffine/internal/stats"
)

// Re-export types for convenience
type (
	Sequence       = sequence.Sequence
	SequenceType   = sequence.SequenceType
	Alignment      = alignment.Alignment
	ScoringMatrix  = alignment.ScoringMatrix
	Matrices       = alignment.Matrices
	Grid           = alignment.Grid
	ScoreBreakdown = alignment.ScoreBreakdown
	TracebackMode  = alignment.TracebackMode
	Pair           = loader.Pair
	Run            = batch.Run
	Result         = batch.Result
	SetStats       = stats.AlignmentSetStats
)

// Constants
const (
	DNA     = sequence.DNA
	RNA     = sequence.RNA
	Protein = sequence.Protein
	Unknown = sequence.Unknown

	TraceAffine = alignment.TraceAffine
	TraceSOnly  = alignment.TraceSOnly
)

// NewSequence creates a sequence from raw bases.
func NewSequence(bases string) (*Sequence, error) {
	return sequence.New(bases)
}

// NewSequenceWithID creates a new sequence with an identifier.
func NewSequenceWithID(bases, id string) (*Sequence, error) {
	return sequence.WithID(bases, id)
}

// NewScoring creates a scoring matrix from the four costs.
func NewScoring(match, mismatch, gapOpen, gapExtend int) *ScoringMatrix {
	return alignment.NewScoringMatrix(match, mismatch, gapOpen, gapExtend)
}

// DefaultScoring returns match 7, mismatch -5, gap open -3, gap extend -1.
func DefaultScoring() *ScoringMatrix {
	return alignment.Default()
}

// Preset returns a named scoring matrix ("default", "dna", "blast").
func Preset(name string) (*ScoringMatrix, error) {
	return alignment.Preset(name)
}

// Align fills the S, Ix and Iy matrices and returns the optimal score.
func Align(seq1, seq2 string, scoring *ScoringMatrix) (*Matrices, int) {
	return alignment.Align(seq1, seq2, scoring)
}

// TraceBack recovers one optimal alignment from filled matrices.
func TraceBack(m *Matrices, seq1, seq2 string, scoring *ScoringMatrix) (string, string) {
	return alignment.TraceBack(m, seq1, seq2, scoring)
}

// TraceBackS recovers an alignment from S and the costs alone.
func TraceBackS(S *Grid, seq1, seq2 string, match, mismatch, gapExtend int) (string, string) {
	return alignment.TraceBackS(S, seq1, seq2, match, mismatch, gapExtend)
}

// AlignGlobal aligns two raw sequences end to end.
func AlignGlobal(seq1, seq2 string, scoring *ScoringMatrix) *Alignment {
	return alignment.Global(seq1, seq2, scoring)
}

// AlignSequences aligns two typed sequences end to end.
func AlignSequences(seq1, seq2 *Sequence, scoring *ScoringMatrix) (*Alignment, error) {
	return alignment.NeedlemanWunsch(seq1, seq2, scoring)
}

// ScoreOnly returns the optimal score in linear memory.
func ScoreOnly(seq1, seq2 string, scoring *ScoringMatrix) int {
	return alignment.ScoreOnly(seq1, seq2, scoring)
}

// Rescore evaluates two aligned strings column by column.
func Rescore(aligned1, aligned2 string, scoring *ScoringMatrix) (*ScoreBreakdown, error) {
	return alignment.Rescore(aligned1, aligned2, scoring)
}

// ReadDir loads the pair files with extension ext from dir.
func ReadDir(dir, ext string) ([]Pair, []string, error) {
	return loader.ReadDir(dir, ext)
}

// AlignPairs aligns every pair concurrently.
func AlignPairs(ctx context.Context, pairs []Pair, scoring *ScoringMatrix, mode TracebackMode) (*Run, error) {
	r := batch.NewRunner(scoring)
	r.Mode = mode
	return r.Run(ctx, pairs)
}

// Summarize calculates statistics over a set of alignments.
func Summarize(alignments []*Alignment) (*SetStats, error) {
	return stats.FromAlignments(alignments)
}

// Version returns the nwaffine version.
func Version() string {
	return "1.0.0"
}

// Info returns information about nwaffine.
func Info() string {
	return fmt.Sprintf(`nwaffine v%s - Affine-gap global sequence alignment

Features:
  - Needleman-Wunsch global alignment with affine gaps (Gotoh)
  - State-aware traceback over S, Ix and Iy, or S-only reconstruction
  - Linear-memory score-only mode
  - Column-by-column rescoring of aligned strings
  - Batch alignment of .seq and FASTA pair files
  - CIGAR, text, pretty and JSON output
`, Version())
}
