// Package report renders alignment results.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/aria-lang/nwaffine/internal/batch"
	"github.com/aria-lang/nwaffine/internal/sequence"
	"github.com/aria-lang/nwaffine/internal/stats"
)

// Format selects an output layout.
type Format string

const (
	// Text is the classic per-file block: label, score, both aligned rows.
	Text Format = "text"
	// Pretty adds a match line, identity and CIGAR.
	Pretty Format = "pretty"
	// JSON writes one object per line.
	JSON Format = "json"
	// FASTA writes both aligned rows of each pair as gapped records.
	FASTA Format = "fasta"
)

// ParseFormat maps a name to a Format.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(name)); f {
	case Text, Pretty, JSON, FASTA:
		return f, nil
	case "":
		return Text, nil
	default:
		return "", fmt.Errorf("unknown output format %q", name)
	}
}

// Record is the JSON shape of one result.
type Record struct {
	ID          string  `json:"id"`
	RunID       string  `json:"run_id,omitempty"`
	Label       string  `json:"label"`
	Score       int     `json:"score"`
	AlignedSeq1 string  `json:"aligned_seq1"`
	AlignedSeq2 string  `json:"aligned_seq2"`
	Identity    float64 `json:"identity"`
	CIGAR       string  `json:"cigar"`
	Matches     int     `json:"matches"`
	Mismatches  int     `json:"mismatches"`
	Gaps        int     `json:"gaps"`
	GapOpenings int     `json:"gap_openings"`
}

// NewRecord converts a batch result.
func NewRecord(runID string, r batch.Result) Record {
	a := r.Alignment
	return Record{
		ID:          r.ID.String(),
		RunID:       runID,
		Label:       r.Label,
		Score:       a.Score,
		AlignedSeq1: a.AlignedSeq1,
		AlignedSeq2: a.AlignedSeq2,
		Identity:    a.Identity,
		CIGAR:       a.ToCIGAR(),
		Matches:     a.MatchCount(),
		Mismatches:  a.MismatchCount(),
		Gaps:        a.TotalGaps(),
		GapOpenings: a.GapOpenings(),
	}
}

// Write renders every result of run to w.
func Write(w io.Writer, format Format, run *batch.Run) error {
	if format == JSON {
		enc := json.NewEncoder(w)
		for _, r := range run.Results {
			if err := enc.Encode(NewRecord(run.ID.String(), r)); err != nil {
				return fmt.Errorf("writing %s: %w", r.Label, err)
			}
		}
		return nil
	}

	for _, r := range run.Results {
		var err error
		switch format {
		case Pretty:
			err = writePretty(w, r)
		case FASTA:
			err = writeFASTA(w, r)
		default:
			err = writeText(w, r)
		}
		if err != nil {
			return fmt.Errorf("writing %s: %w", r.Label, err)
		}
	}
	return nil
}

func writeText(w io.Writer, r batch.Result) error {
	_, err := fmt.Fprintf(w, "File: %s\nAlignment Score: %d\nSequence 1: %s\nSequence 2: %s\n\n",
		r.Label, r.Alignment.Score, r.Alignment.AlignedSeq1, r.Alignment.AlignedSeq2)
	return err
}

func writePretty(w io.Writer, r batch.Result) error {
	_, err := fmt.Fprintf(w, "File: %s\n%s\n\n", r.Label, r.Alignment.Format())
	return err
}

// writeFASTA emits records <label>/1 and <label>/2 holding the aligned rows.
func writeFASTA(w io.Writer, r batch.Result) error {
	desc := fmt.Sprintf("score=%d", r.Alignment.Score)
	rows := []sequence.Sequence{
		{Bases: r.Alignment.AlignedSeq1, ID: r.Label + "/1", Description: desc},
		{Bases: r.Alignment.AlignedSeq2, ID: r.Label + "/2", Description: desc},
	}
	for i := range rows {
		if _, err := io.WriteString(w, rows[i].ToFASTA()); err != nil {
			return err
		}
	}
	return nil
}

// WriteSkipped lists input files that did not hold a pair.
func WriteSkipped(w io.Writer, skipped []string) error {
	for _, name := range skipped {
		if _, err := fmt.Fprintf(w, "Skipped: %s (fewer than two sequences)\n", name); err != nil {
			return err
		}
	}
	return nil
}

// WriteSummary renders set statistics.
func WriteSummary(w io.Writer, format Format, s *stats.AlignmentSetStats) error {
	if format == JSON {
		return json.NewEncoder(w).Encode(struct {
			Summary *stats.AlignmentSetStats `json:"summary"`
		}{s})
	}

	_, err := fmt.Fprintf(w, `Summary
%s
Alignments: %d
Score range: %d - %d
Mean score: %.2f
Median score: %.1f
Mean identity: %.2f%%
Gap columns: %d in %d runs
`, strings.Repeat("-", 40), s.Count, s.MinScore, s.MaxScore, s.MeanScore,
		s.MedianScore, s.MeanIdentity*100, s.TotalGaps, s.TotalGapOpens)
	return err
}
