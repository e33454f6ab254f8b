package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/aria-lang/nwaffine/internal/alignment"
	"github.com/aria-lang/nwaffine/internal/loader"
	"github.com/aria-lang/nwaffine/internal/sequence"
	"github.com/aria-lang/nwaffine/pkg/nwaffine"
)

// Limits on request size. A cell is one (i, j) entry of the
// (len1+1) x (len2+1) alignment grid.
const (
	// MaxRequestBytes caps the body of every request.
	MaxRequestBytes = 1 << 20
	// MaxMatrixCells caps the matrices endpoint, which returns every cell.
	MaxMatrixCells = 10000
	// MaxAlignCells caps one pair on the global and batch endpoints. Each
	// cell costs three ints across S, Ix and Iy.
	MaxAlignCells = 4000000
	// MaxBatchCells caps the sum of cells over all pairs of a batch.
	MaxBatchCells = 4 * MaxAlignCells
	// MaxScoreCells caps the score endpoint, which keeps only two rows
	// but still visits every cell.
	MaxScoreCells = 100000000
	// MaxBatchPairs caps the number of pairs in one batch request.
	MaxBatchPairs = 1000
)

// AlignmentRequest represents an alignment request.
type AlignmentRequest struct {
	Sequence1 string                   `json:"sequence1"`
	Sequence2 string                   `json:"sequence2"`
	Scoring   *alignment.ScoringMatrix `json:"scoring,omitempty"`
	Preset    string                   `json:"preset,omitempty"`
	Traceback string                   `json:"traceback,omitempty"`
	Alphabet  string                   `json:"alphabet,omitempty"`
}

// AlignmentResponse represents the response for alignment.
type AlignmentResponse struct {
	AlignedSeq1 string  `json:"aligned_seq1"`
	AlignedSeq2 string  `json:"aligned_seq2"`
	Score       int     `json:"score"`
	Identity    float64 `json:"identity"`
	CIGAR       string  `json:"cigar"`
	Matches     int     `json:"matches"`
	Mismatches  int     `json:"mismatches"`
	Gaps        int     `json:"gaps"`
	GapOpenings int     `json:"gap_openings"`
	Traceback   string  `json:"traceback"`
}

// ScoreResponse represents the response for score-only alignment.
type ScoreResponse struct {
	Score   int                      `json:"score"`
	Scoring *alignment.ScoringMatrix `json:"scoring"`
}

// MatricesResponse holds the three filled score matrices.
type MatricesResponse struct {
	Score    int     `json:"score"`
	Sentinel int     `json:"sentinel"`
	S        [][]int `json:"s"`
	Ix       [][]int `json:"ix"`
	Iy       [][]int `json:"iy"`
}

// RescoreRequest represents a request to score an existing alignment.
type RescoreRequest struct {
	Aligned1 string                   `json:"aligned1"`
	Aligned2 string                   `json:"aligned2"`
	Scoring  *alignment.ScoringMatrix `json:"scoring,omitempty"`
	Preset   string                   `json:"preset,omitempty"`
}

// BatchRequest represents a request to align many pairs.
type BatchRequest struct {
	Pairs     []loader.Pair            `json:"pairs"`
	Scoring   *alignment.ScoringMatrix `json:"scoring,omitempty"`
	Preset    string                   `json:"preset,omitempty"`
	Traceback string                   `json:"traceback,omitempty"`
}

// BatchResult is one aligned pair of a batch response.
type BatchResult struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	AlignmentResponse
}

// BatchResponse represents the response for a batch alignment.
type BatchResponse struct {
	RunID   string             `json:"run_id"`
	Results []BatchResult      `json:"results"`
	Summary *nwaffine.SetStats `json:"summary,omitempty"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

// decodeRequest reads a JSON body of at most MaxRequestBytes into v. On
// failure it writes the error response and returns false.
func decodeRequest(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, MaxRequestBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit))
			return false
		}
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// cells returns the number of grid cells aligning seq1 against seq2 fills.
func cells(seq1, seq2 string) int {
	return (len(seq1) + 1) * (len(seq2) + 1)
}

func checkCells(w http.ResponseWriter, what string, n, limit int) bool {
	if n > limit {
		writeError(w, http.StatusBadRequest,
			fmt.Sprintf("%s would hold %d cells, limit is %d", what, n, limit))
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// resolveScoring picks explicit costs, a named preset, or the defaults.
func resolveScoring(scoring *alignment.ScoringMatrix, preset string) (*alignment.ScoringMatrix, error) {
	switch {
	case scoring != nil && preset != "":
		return nil, fmt.Errorf("scoring and preset are mutually exclusive")
	case scoring != nil:
	case preset != "":
		p, err := alignment.Preset(preset)
		if err != nil {
			return nil, err
		}
		scoring = p
	default:
		scoring = alignment.Default()
	}

	if err := scoring.Validate(); err != nil {
		log.Printf("warning: %v", err)
	}
	return scoring, nil
}

func checkAlphabet(alphabet string, seqs ...string) error {
	if alphabet == "" {
		return nil
	}
	t, err := sequence.ParseType(alphabet)
	if err != nil {
		return err
	}
	for i, s := range seqs {
		if err := sequence.Validate(strings.ToUpper(s), t); err != nil {
			return fmt.Errorf("sequence%d: %w", i+1, err)
		}
	}
	return nil
}

func newAlignmentResponse(a *alignment.Alignment, mode alignment.TracebackMode) AlignmentResponse {
	return AlignmentResponse{
		AlignedSeq1: a.AlignedSeq1,
		AlignedSeq2: a.AlignedSeq2,
		Score:       a.Score,
		Identity:    a.Identity,
		CIGAR:       a.ToCIGAR(),
		Matches:     a.MatchCount(),
		Mismatches:  a.MismatchCount(),
		Gaps:        a.TotalGaps(),
		GapOpenings: a.GapOpenings(),
		Traceback:   mode.String(),
	}
}

// GlobalAlignHandler handles global alignment requests.
func GlobalAlignHandler(w http.ResponseWriter, r *http.Request) {
	var req AlignmentRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	scoring, err := resolveScoring(req.Scoring, req.Preset)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	mode, err := alignment.ParseTracebackMode(req.Traceback)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := checkAlphabet(req.Alphabet, req.Sequence1, req.Sequence2); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if !checkCells(w, "alignment", cells(req.Sequence1, req.Sequence2), MaxAlignCells) {
		return
	}

	a := alignment.GlobalWithMode(req.Sequence1, req.Sequence2, scoring, mode)
	writeJSON(w, newAlignmentResponse(a, mode))
}

// AlignmentScoreHandler handles alignment score requests.
func AlignmentScoreHandler(w http.ResponseWriter, r *http.Request) {
	var req AlignmentRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	scoring, err := resolveScoring(req.Scoring, req.Preset)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := checkAlphabet(req.Alphabet, req.Sequence1, req.Sequence2); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if !checkCells(w, "alignment", cells(req.Sequence1, req.Sequence2), MaxScoreCells) {
		return
	}

	writeJSON(w, ScoreResponse{
		Score:   nwaffine.ScoreOnly(req.Sequence1, req.Sequence2, scoring),
		Scoring: scoring,
	})
}

// MatricesHandler returns the filled S, Ix and Iy matrices for small inputs.
func MatricesHandler(w http.ResponseWriter, r *http.Request) {
	var req AlignmentRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	if !checkCells(w, "matrices", cells(req.Sequence1, req.Sequence2), MaxMatrixCells) {
		return
	}

	scoring, err := resolveScoring(req.Scoring, req.Preset)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	m, score := nwaffine.Align(req.Sequence1, req.Sequence2, scoring)
	writeJSON(w, MatricesResponse{
		Score:    score,
		Sentinel: alignment.Sentinel,
		S:        m.S.Rows(),
		Ix:       m.Ix.Rows(),
		Iy:       m.Iy.Rows(),
	})
}

// RescoreHandler scores a supplied pair of aligned strings.
func RescoreHandler(w http.ResponseWriter, r *http.Request) {
	var req RescoreRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	scoring, err := resolveScoring(req.Scoring, req.Preset)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	b, err := nwaffine.Rescore(req.Aligned1, req.Aligned2, scoring)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, b)
}

// BatchAlignHandler aligns every pair of the request concurrently.
func BatchAlignHandler(w http.ResponseWriter, r *http.Request) {
	var req BatchRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	if len(req.Pairs) == 0 {
		writeError(w, http.StatusBadRequest, "pairs cannot be empty")
		return
	}
	if len(req.Pairs) > MaxBatchPairs {
		writeError(w, http.StatusBadRequest,
			fmt.Sprintf("%d pairs exceed the limit of %d", len(req.Pairs), MaxBatchPairs))
		return
	}

	scoring, err := resolveScoring(req.Scoring, req.Preset)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	mode, err := alignment.ParseTracebackMode(req.Traceback)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	total := 0
	for i := range req.Pairs {
		if req.Pairs[i].Label == "" {
			req.Pairs[i].Label = fmt.Sprintf("pair-%d", i+1)
		}
		n := cells(req.Pairs[i].Seq1, req.Pairs[i].Seq2)
		if !checkCells(w, req.Pairs[i].Label, n, MaxAlignCells) {
			return
		}
		total += n
	}
	if !checkCells(w, "batch", total, MaxBatchCells) {
		return
	}

	run, err := nwaffine.AlignPairs(r.Context(), req.Pairs, scoring, mode)
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, err.Error())
		return
	}

	resp := BatchResponse{
		RunID:   run.ID.String(),
		Results: make([]BatchResult, len(run.Results)),
	}
	for i, res := range run.Results {
		resp.Results[i] = BatchResult{
			ID:                res.ID.String(),
			Label:             res.Label,
			AlignmentResponse: newAlignmentResponse(res.Alignment, mode),
		}
	}
	if s, err := nwaffine.Summarize(run.Alignments()); err == nil {
		resp.Summary = s
	}

	writeJSON(w, resp)
}
