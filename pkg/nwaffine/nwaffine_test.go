package nwaffine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlignAndTraceBack(t *testing.T) {
	scoring := NewScoring(7, -5, -3, -1)

	mat, score := Align("ACGT", "ACGT", scoring)
	assert.Equal(t, 28, score)

	a1, a2 := TraceBack(mat, "ACGT", "ACGT", scoring)
	assert.Equal(t, "ACGT", a1)
	assert.Equal(t, "ACGT", a2)

	s1, s2 := TraceBackS(&mat.S, "ACGT", "ACGT", 7, -5, -1)
	assert.Equal(t, a1, s1)
	assert.Equal(t, a2, s2)
}

func TestAlignGlobal(t *testing.T) {
	a := AlignGlobal("", "AC", DefaultScoring())
	assert.Equal(t, "--", a.AlignedSeq1)
	assert.Equal(t, "AC", a.AlignedSeq2)
	assert.Equal(t, -4, a.Score)
	assert.Equal(t, a.Score, ScoreOnly("", "AC", nil))

	b, err := Rescore(a.AlignedSeq1, a.AlignedSeq2, nil)
	require.NoError(t, err)
	assert.Equal(t, -4, b.Score)
}

func TestAlignSequences(t *testing.T) {
	s1, err := NewSequenceWithID("AC", "one")
	require.NoError(t, err)
	s2, err := NewSequence("AG")
	require.NoError(t, err)

	a, err := AlignSequences(s1, s2, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, a.Score)
	assert.Equal(t, "one", a.ID1)
}

func TestAlignPairs(t *testing.T) {
	run, err := AlignPairs(context.Background(), []Pair{
		{Label: "x", Seq1: "AA", Seq2: "A"},
	}, nil, TraceAffine)
	require.NoError(t, err)
	require.Len(t, run.Results, 1)
	assert.Equal(t, "-A", run.Results[0].Alignment.AlignedSeq2)

	s, err := Summarize(run.Alignments())
	require.NoError(t, err)
	assert.Equal(t, 4, s.MaxScore)
}

func TestPreset(t *testing.T) {
	s, err := Preset("dna")
	require.NoError(t, err)
	assert.Equal(t, 2, s.MatchScore)

	assert.Contains(t, Info(), Version())
}
