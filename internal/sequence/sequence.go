// Package sequence provides the sequence type fed to the aligner.
//
// Sequences are plain byte strings over a finite alphabet. Construction
// never rejects unexpected letters: the aligner treats any two unequal
// bytes as a mismatch. Alphabet checks are available separately for
// callers that want them.
package sequence

import (
	"fmt"
	"strings"
)

// SequenceType represents the type of biological sequence.
type SequenceType int

const (
	// DNA represents a DNA sequence (A, C, G, T)
	DNA SequenceType = iota
	// RNA represents an RNA sequence (A, C, G, U)
	RNA
	// Protein represents an amino acid sequence
	Protein
	// Unknown represents an unknown sequence type
	Unknown
)

func (t SequenceType) String() string {
	switch t {
	case DNA:
		return "DNA"
	case RNA:
		return "RNA"
	case Protein:
		return "Protein"
	default:
		return "Unknown"
	}
}

// ParseType maps a name such as "dna" or "protein" to a SequenceType.
func ParseType(name string) (SequenceType, error) {
	switch strings.ToLower(name) {
	case "dna":
		return DNA, nil
	case "rna":
		return RNA, nil
	case "protein", "aa":
		return Protein, nil
	default:
		return Unknown, fmt.Errorf("unknown alphabet %q", name)
	}
}

// Gap is the character inserted into aligned strings.
const Gap = '-'

// Sequence is an immutable sequence plus its identifying label.
type Sequence struct {
	Bases       string
	ID          string
	Description string
	SeqType     SequenceType
}

// New creates a sequence from raw bases. The bases are kept as given.
func New(bases string) (*Sequence, error) {
	if len(bases) == 0 {
		return nil, &EmptySequenceError{}
	}

	return &Sequence{
		Bases:   bases,
		SeqType: Detect(bases),
	}, nil
}

// WithID creates a new sequence with an identifier.
func WithID(bases, id string) (*Sequence, error) {
	if len(id) == 0 {
		return nil, fmt.Errorf("ID cannot be empty")
	}

	seq, err := New(bases)
	if err != nil {
		return nil, err
	}

	seq.ID = id
	return seq, nil
}

// Detect guesses the sequence type from its letters, ignoring case.
// Nucleotide alphabets win over protein when both fit.
func Detect(bases string) SequenceType {
	upper := strings.ToUpper(bases)
	switch {
	case ValidateDNA(upper) == nil:
		return DNA
	case ValidateRNA(upper) == nil:
		return RNA
	case ValidateProtein(upper) == nil:
		return Protein
	default:
		return Unknown
	}
}

// Len returns the length of the sequence.
func (s *Sequence) Len() int {
	return len(s.Bases)
}

// StripGaps removes gap characters from an aligned string.
func StripGaps(aligned string) string {
	return strings.ReplaceAll(aligned, string(Gap), "")
}

// ToFASTA returns the sequence in FASTA format.
func (s *Sequence) ToFASTA() string {
	var header string
	if s.ID != "" {
		header = ">" + s.ID
		if s.Description != "" {
			header += " " + s.Description
		}
	} else {
		header = ">sequence"
	}

	var sb strings.Builder
	sb.WriteString(header)
	sb.WriteRune('\n')

	// Split sequence into 80-character lines
	for i := 0; i < len(s.Bases); i += 80 {
		end := i + 80
		if end > len(s.Bases) {
			end = len(s.Bases)
		}
		sb.WriteString(s.Bases[i:end])
		sb.WriteRune('\n')
	}

	return sb.String()
}

// String returns a string representation of the sequence.
func (s *Sequence) String() string {
	if s.ID != "" {
		return fmt.Sprintf(">%s\n%s", s.ID, s.Bases)
	}
	return s.Bases
}
