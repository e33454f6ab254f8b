package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aria-lang/nwaffine/internal/alignment"
	"github.com/aria-lang/nwaffine/internal/batch"
	"github.com/aria-lang/nwaffine/internal/stats"
)

func sampleRun() *batch.Run {
	return &batch.Run{
		ID: uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8"),
		Results: []batch.Result{
			{
				ID:        uuid.MustParse("6ba7b811-9dad-11d1-80b4-00c04fd430c8"),
				Label:     "a.seq",
				Alignment: alignment.Global("AC", "AG", nil),
			},
			{
				ID:        uuid.MustParse("6ba7b812-9dad-11d1-80b4-00c04fd430c8"),
				Label:     "b.seq",
				Alignment: alignment.Global("", "AC", nil),
			},
		},
	}
}

func TestParseFormat(t *testing.T) {
	for name, want := range map[string]Format{"": Text, "text": Text, "PRETTY": Pretty, "json": JSON, "fasta": FASTA} {
		got, err := ParseFormat(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseFormat("xml")
	require.Error(t, err)
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, Text, sampleRun()))

	want := "File: a.seq\nAlignment Score: 2\nSequence 1: AC\nSequence 2: AG\n\n" +
		"File: b.seq\nAlignment Score: -4\nSequence 1: --\nSequence 2: AC\n\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteFASTA(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FASTA, sampleRun()))

	want := ">a.seq/1 score=2\nAC\n>a.seq/2 score=2\nAG\n" +
		">b.seq/1 score=-4\n--\n>b.seq/2 score=-4\nAC\n"
	assert.Equal(t, want, buf.String())
}

func TestWritePretty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, Pretty, sampleRun()))

	out := buf.String()
	assert.Contains(t, out, "File: a.seq\nSeq1: AC\n      |.\nSeq2: AG\n")
	assert.Contains(t, out, "CIGAR: 1M1X")
	assert.Contains(t, out, "CIGAR: 2I")
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, JSON, sampleRun()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var rec Record
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "a.seq", rec.Label)
	assert.Equal(t, 2, rec.Score)
	assert.Equal(t, "6ba7b810-9dad-11d1-80b4-00c04fd430c8", rec.RunID)
	assert.Equal(t, "6ba7b811-9dad-11d1-80b4-00c04fd430c8", rec.ID)
	assert.Equal(t, 1, rec.Mismatches)
}

func TestWriteSummary(t *testing.T) {
	s, err := stats.FromAlignments(sampleRun().Alignments())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteSummary(&buf, Text, s))
	assert.Contains(t, buf.String(), "Alignments: 2")
	assert.Contains(t, buf.String(), "Score range: -4 - 2")

	buf.Reset()
	require.NoError(t, WriteSummary(&buf, JSON, s))
	assert.Contains(t, buf.String(), `"summary":{"count":2`)
}

func TestWriteSkipped(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSkipped(&buf, []string{"short.seq"}))
	assert.Equal(t, "Skipped: short.seq (fewer than two sequences)\n", buf.String())
}
