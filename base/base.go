// Package base defines the nucleotide alphabet and the error Kind
// taxonomy shared by every quivercore package.
package base

// Base is one of the four DNA nucleotides, or the gap sentinel in
// contexts that admit one (transcripts, position maps).
type Base byte

// The four-letter alphabet, plus the gap sentinel accepted by
// Mutation construction for Deletion (by convention).
const (
	A    Base = 'A'
	C    Base = 'C'
	G    Base = 'G'
	T    Base = 'T'
	Gap  Base = '-'
)

// IsValid reports whether b is one of A, C, G, T.
func (b Base) IsValid() bool {
	switch b {
	case A, C, G, T:
		return true
	default:
		return false
	}
}

// IsValidOrGap reports whether b is one of A, C, G, T, or the gap
// sentinel '-'. Mutation construction uses this set.
func (b Base) IsValidOrGap() bool {
	return b.IsValid() || b == Gap
}

func (b Base) String() string {
	return string(rune(b))
}

// Sequence is an ordered run of Base, used for both templates and reads.
type Sequence []Base

// String renders the sequence as plain text, e.g. for error messages and
// the demo CLI's alignment output.
func (s Sequence) String() string {
	buf := make([]byte, len(s))
	for i, b := range s {
		buf[i] = byte(b)
	}
	return string(buf)
}

// NewSequence converts a plain string into a Sequence without validating
// its contents; callers that need validation (e.g. QvSequenceFeatures)
// check each Base explicitly.
func NewSequence(s string) Sequence {
	seq := make(Sequence, len(s))
	for i := 0; i < len(s); i++ {
		seq[i] = Base(s[i])
	}
	return seq
}
