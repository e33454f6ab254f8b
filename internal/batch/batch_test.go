package batch

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aria-lang/nwaffine/internal/alignment"
	"github.com/aria-lang/nwaffine/internal/loader"
)

func TestRunnerRun(t *testing.T) {
	pairs := []loader.Pair{
		{Label: "identical.seq", Seq1: "ACGT", Seq2: "ACGT"},
		{Label: "empty.seq", Seq1: "", Seq2: "AC"},
		{Label: "mismatch.seq", Seq1: "AC", Seq2: "AG"},
	}

	run, err := NewRunner(nil).Run(context.Background(), pairs)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, run.ID)
	require.Len(t, run.Results, 3)

	want := []int{28, -4, 2}
	seen := map[uuid.UUID]bool{}
	for i, res := range run.Results {
		assert.Equal(t, pairs[i].Label, res.Label)
		assert.Equal(t, want[i], res.Alignment.Score)
		assert.False(t, seen[res.ID], "duplicate result id")
		seen[res.ID] = true
	}
	assert.Equal(t, "--", run.Results[1].Alignment.AlignedSeq1)
	assert.Len(t, run.Alignments(), 3)
}

func TestRunnerMatchesSequentialAlignment(t *testing.T) {
	var pairs []loader.Pair
	for i := 0; i < 64; i++ {
		pairs = append(pairs, loader.Pair{
			Label: fmt.Sprintf("p%02d", i),
			Seq1:  "GATTACA"[:1+i%7],
			Seq2:  "GCATGCT"[:1+(i/7)%7],
		})
	}

	r := NewRunner(alignment.DefaultDNA())
	r.Grain = 8
	run, err := r.Run(context.Background(), pairs)
	require.NoError(t, err)

	for i, p := range pairs {
		want := alignment.Global(p.Seq1, p.Seq2, alignment.DefaultDNA())
		got := run.Results[i].Alignment
		assert.Equal(t, want.AlignedSeq1, got.AlignedSeq1, p.Label)
		assert.Equal(t, want.AlignedSeq2, got.AlignedSeq2, p.Label)
		assert.Equal(t, want.Score, got.Score, p.Label)
	}
}

func TestRunnerSOnlyMode(t *testing.T) {
	r := NewRunner(nil)
	r.Mode = alignment.TraceSOnly

	run, err := r.Run(context.Background(), []loader.Pair{{Label: "tie", Seq1: "AA", Seq2: "A"}})
	require.NoError(t, err)
	assert.Equal(t, "AA-", run.Results[0].Alignment.AlignedSeq1)
	assert.Equal(t, 4, run.Results[0].Alignment.Score)
}

func TestRunnerCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRunner(nil).Run(ctx, []loader.Pair{{Seq1: "A", Seq2: "A"}})
	require.ErrorIs(t, err, context.Canceled)
}

func TestRunnerEmpty(t *testing.T) {
	run, err := NewRunner(nil).Run(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, run.Results)
}
