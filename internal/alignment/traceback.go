package alignment

import "strings"

// TraceBack walks the filled matrices from (len(seq1), len(seq2)) back to
// the origin and returns one optimal alignment.
//
// The walk tracks which matrix it is in. It starts in the matrix holding
// the corner optimum and, at each cell, moves to the predecessor that
// reproduces the current value. Ties prefer a substitution, then a gap in
// seq2 (up), then a gap in seq1 (left). Rescoring the result always gives
// the filled optimum.
func TraceBack(m *Matrices, seq1, seq2 string, scoring *ScoringMatrix) (string, string) {
	if scoring == nil {
		scoring = Default()
	}

	var aligned1, aligned2 strings.Builder
	i, j := len(seq1), len(seq2)
	_, state := m.Best(i, j)

	for i > 0 || j > 0 {
		if i == 0 {
			aligned1.WriteByte('-')
			aligned2.WriteByte(seq2[j-1])
			j--
			continue
		}
		if j == 0 {
			aligned1.WriteByte(seq1[i-1])
			aligned2.WriteByte('-')
			i--
			continue
		}

		switch state {
		case Diagonal:
			aligned1.WriteByte(seq1[i-1])
			aligned2.WriteByte(seq2[j-1])
			i--
			j--
			_, state = m.Best(i, j)
		case Up:
			aligned1.WriteByte(seq1[i-1])
			aligned2.WriteByte('-')
			if m.Ix.At(i, j) == m.S.At(i-1, j)+scoring.GapOpen {
				state = Diagonal
			}
			i--
		case Left:
			aligned1.WriteByte('-')
			aligned2.WriteByte(seq2[j-1])
			if m.Iy.At(i, j) == m.S.At(i, j-1)+scoring.GapOpen {
				state = Diagonal
			}
			j--
		}
	}

	return reverse(aligned1.String()), reverse(aligned2.String())
}

// TraceBackS reconstructs an alignment from the S matrix and the costs
// alone, without consulting Ix or Iy.
//
// At an interior cell it steps diagonally when S[i][j] equals
// S[i-1][j-1] plus the substitution score, otherwise up when S[i][j]
// equals S[i-1][j] + gapExtend, otherwise left. Row 0 forces left moves and
// column 0 forces up moves.
//
// S only records alignments that end in a substitution, so when the
// optimum ends in a gap at some cell this walk can leave the optimal path.
// The strings are still a valid alignment of seq1 and seq2, but their
// rescored value may be lower than the filled optimum. Use TraceBack
// unless the S-only reconstruction itself is wanted.
func TraceBackS(S *Grid, seq1, seq2 string, matchScore, mismatchScore, gapExtend int) (string, string) {
	var aligned1, aligned2 strings.Builder
	i, j := len(seq1), len(seq2)

	for i > 0 || j > 0 {
		switch {
		case i == 0:
			aligned1.WriteByte('-')
			aligned2.WriteByte(seq2[j-1])
			j--
		case j == 0:
			aligned1.WriteByte(seq1[i-1])
			aligned2.WriteByte('-')
			i--
		default:
			sub := mismatchScore
			if seq1[i-1] == seq2[j-1] {
				sub = matchScore
			}

			switch cur := S.At(i, j); {
			case cur == S.At(i-1, j-1)+sub:
				aligned1.WriteByte(seq1[i-1])
				aligned2.WriteByte(seq2[j-1])
				i--
				j--
			case cur == S.At(i-1, j)+gapExtend:
				aligned1.WriteByte(seq1[i-1])
				aligned2.WriteByte('-')
				i--
			default:
				aligned1.WriteByte('-')
				aligned2.WriteByte(seq2[j-1])
				j--
			}
		}
	}

	return reverse(aligned1.String()), reverse(aligned2.String())
}

// reverse reverses a byte string.
func reverse(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}
