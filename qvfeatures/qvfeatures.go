package qvfeatures

import (
	"github.com/pbio/quivercore/base"
)

// QvSequenceFeatures is the read as a Base sequence plus five parallel
// per-base float arrays (InsQv, SubsQv, DelQv, DelTag, MergeQv), each of
// length equal to the read, plus a SIMD-aligned parallel mirror of the
// sequence (SequenceAsFloat) carrying each base's byte value as a
// float64, so the Evaluator's 4-wide kernels can compare four lanes
// against a broadcast template base in one shot.
//
// All slices are copied defensively at construction; callers may freely
// mutate the arrays they passed in afterward without affecting the
// constructed features.
type QvSequenceFeatures struct {
	sequence base.Sequence

	InsQv   []float64
	SubsQv  []float64
	DelQv   []float64
	DelTag  []float64
	MergeQv []float64

	// SequenceAsFloat mirrors sequence one-for-one, each element holding
	// the corresponding base's byte value as a float64.
	SequenceAsFloat []float64
}

// New validates and constructs a QvSequenceFeatures. All six arguments
// must share the same length, and every DelTag element must encode a
// valid Base (A, C, G, or T — never the gap sentinel); violating either
// requirement fails with base.ErrInternal, since features are expected
// to arrive pre-validated from the feature-loading layer (out of scope
// here) and a mismatch indicates corruption upstream, not a caller typo.
func New(sequence base.Sequence, insQv, subsQv, delQv, delTag, mergeQv []float64) (*QvSequenceFeatures, error) {
	n := len(sequence)
	for name, arr := range map[string][]float64{
		"insQv": insQv, "subsQv": subsQv, "delQv": delQv, "delTag": delTag, "mergeQv": mergeQv,
	} {
		if len(arr) != n {
			return nil, base.WrapKind(base.Internal, "qvfeatures.New",
				"%s has length %d, want %d (len(sequence))", name, len(arr), n)
		}
	}

	for i, tag := range delTag {
		b := base.Base(tag)
		if !b.IsValid() {
			return nil, base.WrapKind(base.Internal, "qvfeatures.New",
				"DelTag[%d]=%v does not encode a valid Base", i, tag)
		}
	}

	f := &QvSequenceFeatures{
		sequence:        append(base.Sequence(nil), sequence...),
		InsQv:           append([]float64(nil), insQv...),
		SubsQv:          append([]float64(nil), subsQv...),
		DelQv:           append([]float64(nil), delQv...),
		DelTag:          append([]float64(nil), delTag...),
		MergeQv:         append([]float64(nil), mergeQv...),
		SequenceAsFloat: make([]float64, n),
	}
	for i, b := range f.sequence {
		f.SequenceAsFloat[i] = float64(b)
	}
	return f, nil
}

// Sequence returns the read's base sequence.
func (f *QvSequenceFeatures) Sequence() base.Sequence { return f.sequence }

// Length returns the read length (= len(Sequence())).
func (f *QvSequenceFeatures) Length() int { return len(f.sequence) }

// At returns the base at read position i.
func (f *QvSequenceFeatures) At(i int) base.Base { return f.sequence[i] }
