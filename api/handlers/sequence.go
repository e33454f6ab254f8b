// Package handlers provides HTTP handlers for the nwaffine API.
package handlers

import (
	"net/http"
	"strings"

	"github.com/aria-lang/nwaffine/internal/sequence"
)

// SequenceRequest represents a request with a sequence.
type SequenceRequest struct {
	Sequence string `json:"sequence"`
	Alphabet string `json:"alphabet,omitempty"`
}

// ValidateResponse represents the response for validation.
type ValidateResponse struct {
	Valid    bool   `json:"valid"`
	Type     string `json:"type"`
	Length   int    `json:"length"`
	Message  string `json:"message,omitempty"`
	Position *int   `json:"position,omitempty"`
}

// ValidateHandler checks a sequence against an alphabet. Without an
// alphabet the type is detected and any sequence is valid.
func ValidateHandler(w http.ResponseWriter, r *http.Request) {
	var req SequenceRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	t := sequence.Detect(req.Sequence)
	if req.Alphabet != "" {
		var err error
		if t, err = sequence.ParseType(req.Alphabet); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	resp := ValidateResponse{
		Valid:  true,
		Type:   t.String(),
		Length: len(req.Sequence),
	}
	if err := sequence.Validate(strings.ToUpper(req.Sequence), t); err != nil {
		resp.Valid = false
		resp.Message = err.Error()
		if ib, ok := err.(*sequence.InvalidBaseError); ok {
			pos := ib.Position
			resp.Position = &pos
		}
	}

	writeJSON(w, resp)
}
