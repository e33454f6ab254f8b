package alignment

import (
	"fmt"

	"github.com/aria-lang/nwaffine/internal/sequence"
)

// TracebackMode selects how the optimal path is recovered.
type TracebackMode int

const (
	// TraceAffine follows the matrix that holds the optimum at each cell.
	TraceAffine TracebackMode = iota
	// TraceSOnly reconstructs the path from S and the costs alone. It can
	// disagree with the final score when the optimum passes through gap
	// states; see TraceBackS.
	TraceSOnly
)

func (m TracebackMode) String() string {
	switch m {
	case TraceAffine:
		return "affine"
	case TraceSOnly:
		return "s-only"
	default:
		return "unknown"
	}
}

// ParseTracebackMode maps "affine" or "s-only" to a TracebackMode.
// The empty string selects TraceAffine.
func ParseTracebackMode(name string) (TracebackMode, error) {
	switch name {
	case "", "affine":
		return TraceAffine, nil
	case "s-only", "s":
		return TraceSOnly, nil
	default:
		return TraceAffine, fmt.Errorf("unknown traceback mode %q", name)
	}
}

// Align fills the S, Ix and Iy matrices for seq1 against seq2 and returns
// them with the optimal global score. A nil scoring selects Default. Empty
// sequences are allowed and degenerate to an all-gap alignment.
func Align(seq1, seq2 string, scoring *ScoringMatrix) (*Matrices, int) {
	if scoring == nil {
		scoring = Default()
	}

	m, n := len(seq1), len(seq2)
	mat := newMatrices(m+1, n+1)
	open, extend := scoring.GapOpen, scoring.GapExtend

	// Boundaries: a prefix aligned against nothing is one gap run.
	mat.S.setAt(0, 0, 0)
	mat.Ix.setAt(0, 0, Sentinel)
	mat.Iy.setAt(0, 0, Sentinel)
	for i := 1; i <= m; i++ {
		mat.S.setAt(i, 0, Sentinel)
		mat.Ix.setAt(i, 0, open+(i-1)*extend)
		mat.Iy.setAt(i, 0, Sentinel)
	}
	for j := 1; j <= n; j++ {
		mat.S.setAt(0, j, Sentinel)
		mat.Ix.setAt(0, j, Sentinel)
		mat.Iy.setAt(0, j, open+(j-1)*extend)
	}

	prevS, prevIx, prevIy := mat.S.RowView(0), mat.Ix.RowView(0), mat.Iy.RowView(0)
	for i := 1; i <= m; i++ {
		curS, curIx, curIy := mat.S.RowView(i), mat.Ix.RowView(i), mat.Iy.RowView(i)
		a := seq1[i-1]

		for j := 1; j <= n; j++ {
			curS[j] = scoring.Score(a, seq2[j-1]) + max3(prevS[j-1], prevIx[j-1], prevIy[j-1])
			// No Iy -> Ix or Ix -> Iy transition: switching gap sides
			// requires a substitution in between.
			curIx[j] = max(prevS[j]+open, prevIx[j]+extend)
			curIy[j] = max(curS[j-1]+open, curIy[j-1]+extend)
		}

		prevS, prevIx, prevIy = curS, curIx, curIy
	}

	score, _ := mat.Best(m, n)
	return mat, score
}

// ScoreOnly returns the same score as Align using O(len(seq2)) memory.
func ScoreOnly(seq1, seq2 string, scoring *ScoringMatrix) int {
	if scoring == nil {
		scoring = Default()
	}

	m, n := len(seq1), len(seq2)
	open, extend := scoring.GapOpen, scoring.GapExtend

	prevS, prevIx, prevIy := make([]int, n+1), make([]int, n+1), make([]int, n+1)
	curS, curIx, curIy := make([]int, n+1), make([]int, n+1), make([]int, n+1)

	prevS[0], prevIx[0], prevIy[0] = 0, Sentinel, Sentinel
	for j := 1; j <= n; j++ {
		prevS[j] = Sentinel
		prevIx[j] = Sentinel
		prevIy[j] = open + (j-1)*extend
	}

	for i := 1; i <= m; i++ {
		curS[0], curIx[0], curIy[0] = Sentinel, open+(i-1)*extend, Sentinel
		a := seq1[i-1]

		for j := 1; j <= n; j++ {
			curS[j] = scoring.Score(a, seq2[j-1]) + max3(prevS[j-1], prevIx[j-1], prevIy[j-1])
			curIx[j] = max(prevS[j]+open, prevIx[j]+extend)
			curIy[j] = max(curS[j-1]+open, curIy[j-1]+extend)
		}

		prevS, curS = curS, prevS
		prevIx, curIx = curIx, prevIx
		prevIy, curIy = curIy, prevIy
	}

	return max3(prevS[n], prevIx[n], prevIy[n])
}

// Global aligns seq1 against seq2 end to end and returns one optimal
// alignment, recovered with the state-aware traceback.
func Global(seq1, seq2 string, scoring *ScoringMatrix) *Alignment {
	return GlobalWithMode(seq1, seq2, scoring, TraceAffine)
}

// GlobalWithMode is Global with an explicit traceback mode. The reported
// score is always the filled optimum, whichever path the mode recovers.
func GlobalWithMode(seq1, seq2 string, scoring *ScoringMatrix, mode TracebackMode) *Alignment {
	if scoring == nil {
		scoring = Default()
	}

	mat, score := Align(seq1, seq2, scoring)

	var aligned1, aligned2 string
	if mode == TraceSOnly {
		aligned1, aligned2 = TraceBackS(&mat.S, seq1, seq2,
			scoring.MatchScore, scoring.MismatchScore, scoring.GapExtend)
	} else {
		aligned1, aligned2 = TraceBack(mat, seq1, seq2, scoring)
	}

	return newAlignment(aligned1, aligned2, score)
}

// NeedlemanWunsch performs affine-gap global alignment of two sequences.
func NeedlemanWunsch(seq1, seq2 *sequence.Sequence, scoring *ScoringMatrix) (*Alignment, error) {
	if seq1 == nil || seq2 == nil {
		return nil, fmt.Errorf("sequences must not be nil")
	}

	a := Global(seq1.Bases, seq2.Bases, scoring)
	a.ID1, a.ID2 = seq1.ID, seq2.ID
	return a, nil
}
