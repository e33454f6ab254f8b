package sequence

import "fmt"

// SequenceError is the base error type for sequence operations.
type SequenceError interface {
	error
	IsSequenceError()
}

// EmptySequenceError is returned when a sequence is empty.
type EmptySequenceError struct{}

func (e *EmptySequenceError) Error() string {
	return "sequence must have at least one base"
}

func (e *EmptySequenceError) IsSequenceError() {}

// InvalidBaseError is returned when an invalid base is encountered.
// Position counts characters, not bytes.
type InvalidBaseError struct {
	Position int
	Found    rune
	Alphabet SequenceType
}

func (e *InvalidBaseError) Error() string {
	return fmt.Sprintf("invalid %s base '%c' at position %d", e.Alphabet, e.Found, e.Position)
}

func (e *InvalidBaseError) IsSequenceError() {}

// Valid letters per alphabet. N and X are the usual "any" codes.
var (
	ValidDNABases     = alphabet("ACGTN")
	ValidRNABases     = alphabet("ACGUN")
	ValidProteinBases = alphabet("ACDEFGHIKLMNPQRSTVWYBZX*")
)

func alphabet(letters string) map[rune]bool {
	m := make(map[rune]bool, len(letters))
	for _, c := range letters {
		m[c] = true
	}
	return m
}

func validate(bases string, valid map[rune]bool, t SequenceType) error {
	pos := 0
	for _, b := range bases {
		if !valid[b] {
			return &InvalidBaseError{Position: pos, Found: b, Alphabet: t}
		}
		pos++
	}
	return nil
}

// ValidateDNA validates that a string contains only valid DNA bases.
func ValidateDNA(bases string) error {
	return validate(bases, ValidDNABases, DNA)
}

// ValidateRNA validates that a string contains only valid RNA bases.
func ValidateRNA(bases string) error {
	return validate(bases, ValidRNABases, RNA)
}

// ValidateProtein validates that a string contains only amino acid codes.
func ValidateProtein(bases string) error {
	return validate(bases, ValidProteinBases, Protein)
}

// Validate checks bases against the alphabet of t. Unknown accepts anything.
func Validate(bases string, t SequenceType) error {
	switch t {
	case DNA:
		return ValidateDNA(bases)
	case RNA:
		return ValidateRNA(bases)
	case Protein:
		return ValidateProtein(bases)
	default:
		return nil
	}
}
