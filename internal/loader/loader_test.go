package loader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Pair
		wantErr error
	}{
		{
			name:  "two lines",
			input: "ACGT\nACGA\n",
			want:  Pair{Label: "x", Seq1: "ACGT", Seq2: "ACGA"},
		},
		{
			name:  "extra lines ignored",
			input: "ACGT\nACGA\nTTTT\n",
			want:  Pair{Label: "x", Seq1: "ACGT", Seq2: "ACGA"},
		},
		{
			name:  "windows line endings",
			input: "ACGT\r\nACGA\r\n",
			want:  Pair{Label: "x", Seq1: "ACGT", Seq2: "ACGA"},
		},
		{
			name:  "raw lines kept",
			input: "acgt \n\n",
			want:  Pair{Label: "x", Seq1: "acgt ", Seq2: ""},
		},
		{
			name:  "fasta wrapped records",
			input: ">s1 first\nACG\nTAC\n>s2\nGGT\n>s3\nCCC\n",
			want:  Pair{Label: "x", Seq1: "ACGTAC", Seq2: "GGT"},
		},
		{
			name:    "one line",
			input:   "ACGT\n",
			wantErr: ErrTooFewSequences,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: ErrTooFewSequences,
		},
		{
			name:    "fasta single record",
			input:   ">s1\nACGT\n",
			wantErr: ErrTooFewSequences,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(strings.NewReader(tt.input), "x")
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.seq", "GATTACA\nGATCA\n")
	writeFile(t, dir, "a.seq", "AC\nAG\n")
	writeFile(t, dir, "short.seq", "ACGT\n")
	writeFile(t, dir, "notes.txt", "ACGT\nACGT\n")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.seq"), 0o755))

	pairs, skipped, err := ReadDir(dir, "")
	require.NoError(t, err)

	require.Len(t, pairs, 2)
	assert.Equal(t, Pair{Label: "a.seq", Seq1: "AC", Seq2: "AG"}, pairs[0])
	assert.Equal(t, "b.seq", pairs[1].Label)
	assert.Equal(t, []string{"short.seq"}, skipped)

	pairs, _, err = ReadDir(dir, ".txt")
	require.NoError(t, err)
	require.Len(t, pairs, 1)
	assert.Equal(t, "notes.txt", pairs[0].Label)
}

func TestReadDirMissing(t *testing.T) {
	_, _, err := ReadDir(filepath.Join(t.TempDir(), "nope"), ".seq")
	require.Error(t, err)
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "pair.fa", ">a\nACGT\n>b\nAGT\n")

	pair, err := ReadFile(filepath.Join(dir, "pair.fa"))
	require.NoError(t, err)
	assert.Equal(t, Pair{Label: "pair.fa", Seq1: "ACGT", Seq2: "AGT"}, pair)

	_, err = ReadFile(filepath.Join(dir, "missing.fa"))
	require.Error(t, err)
}
