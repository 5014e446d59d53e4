package recursor

import (
	"github.com/pbio/quivercore/base"
)

// MoveSet is a bitmask of which pair-HMM move types a Recursor considers
// when filling a cell. Grounded on the three_opt package's segKind
// bitmask convention for small closed move vocabularies.
type MoveSet uint8

const (
	// MoveInc enables the match/mismatch transition.
	MoveInc MoveSet = 1 << iota
	// MoveDel enables the template-only deletion transition.
	MoveDel
	// MoveExtra enables the read-only insertion transition.
	MoveExtra
	// MoveMerge enables the homopolymer-merge transition.
	MoveMerge
)

// AllMoves enables every move type.
const AllMoves = MoveInc | MoveDel | MoveExtra | MoveMerge

// Has reports whether m includes move.
func (m MoveSet) Has(move MoveSet) bool { return m&move != 0 }

// Matrix is the storage contract a Recursor fills. *bandmatrix.Matrix
// satisfies it.
type Matrix interface {
	Rows() int
	Cols() int
	GetExtent(j int) (start, end int)
	StartEditingColumn(j, start, end int) error
	Set(i, j int, v float64)
	Get(i, j int) float64
}

// Evaluator is the per-cell score source a Recursor consults.
// *evaluator.QvEvaluator satisfies it.
type Evaluator interface {
	Read() base.Sequence
	Template() base.Sequence
	ReadLength() int
	TemplateLength() int
	PinStart() bool
	PinEnd() bool
	Inc(i, j int) float64
	Del(i, j int) float64
	Extra(i, j int) float64
	Merge(i, j int) float64
}

// Combiner reduces the scores of the candidate transitions into a cell
// down to a single score. It must be associative and commutative with
// identity Identity().
type Combiner interface {
	// Combine folds scores down to one value. Combine() with no
	// arguments must return Identity().
	Combine(scores ...float64) float64
	// Identity is the value that leaves any other value unchanged
	// under Combine, and the default score of an unreachable cell.
	Identity() float64
}
