package evaluator

import (
	"math"

	"github.com/pbio/quivercore/base"
	"github.com/pbio/quivercore/qvfeatures"
	"github.com/pbio/quivercore/qvmodel"
)

// NegInf is the log-space score for "impossible"; Go's float64 has a
// real representable negative infinity, so there is no need for the
// −FLT_MAX sentinel hack the original C++ used.
var NegInf = math.Inf(-1)

// QvEvaluator computes pair-HMM move scores for one (read, template)
// pair. It borrows features and params for its lifetime; the template
// may be swapped in place via SetTemplate, which is the only mutation
// this type supports.
type QvEvaluator struct {
	features *qvfeatures.QvSequenceFeatures
	template base.Sequence
	params   qvmodel.QvModelParams
	pinStart bool
	pinEnd   bool
}

// New constructs a QvEvaluator. Construction validates features' DelTag
// array (every entry must encode a valid Base); a violation fails with
// base.ErrInternal since this indicates feature-loading corruption, not
// a caller mistake recoverable here.
func New(features *qvfeatures.QvSequenceFeatures, template base.Sequence, params qvmodel.QvModelParams, pinStart, pinEnd bool) (*QvEvaluator, error) {
	for i, tag := range features.DelTag {
		if !base.Base(tag).IsValid() {
			return nil, base.WrapKind(base.Internal, "evaluator.New",
				"DelTag[%d]=%v does not encode a valid Base", i, tag)
		}
	}
	return &QvEvaluator{
		features: features,
		template: append(base.Sequence(nil), template...),
		params:   params,
		pinStart: pinStart,
		pinEnd:   pinEnd,
	}, nil
}

// Read returns the read's base sequence.
func (e *QvEvaluator) Read() base.Sequence { return e.features.Sequence() }

// Template returns the current template.
func (e *QvEvaluator) Template() base.Sequence { return e.template }

// SetTemplate replaces the template in place, e.g. so the outer search
// loop can rescore a hypothesized mutation without constructing a new
// Evaluator.
func (e *QvEvaluator) SetTemplate(tpl base.Sequence) {
	e.template = append(base.Sequence(nil), tpl...)
}

// ReadLength returns len(Read()).
func (e *QvEvaluator) ReadLength() int { return e.features.Length() }

// TemplateLength returns len(Template()).
func (e *QvEvaluator) TemplateLength() int { return len(e.template) }

// PinStart reports whether the alignment origin is forced to (0,0).
func (e *QvEvaluator) PinStart() bool { return e.pinStart }

// PinEnd reports whether the alignment must terminate at
// (ReadLength, TemplateLength).
func (e *QvEvaluator) PinEnd() bool { return e.pinEnd }

func (e *QvEvaluator) isMatch(i, j int) bool {
	return e.features.At(i) == e.template[j]
}

func internalBoundsPanic(method string, i, j int) {
	panic(base.WrapKind(base.Internal, method, "cell (i=%d, j=%d) out of bounds", i, j))
}

// Inc is the cost of consuming read[i] against template[j]: a match
// scores params.Match, a mismatch scores an affine function of
// SubsQv[i].
func (e *QvEvaluator) Inc(i, j int) float64 {
	if i < 0 || i >= e.ReadLength() || j < 0 || j >= e.TemplateLength() {
		internalBoundsPanic("QvEvaluator.Inc", i, j)
	}
	if e.isMatch(i, j) {
		return e.params.Match
	}
	return e.params.Mismatch + e.params.MismatchS*e.features.SubsQv[i]
}

// Del is the cost of deleting template[j] without consuming a read
// base. Free end-gaps (cost 0) are granted at i==0 when PinStart is
// false, and at i==ReadLength when PinEnd is false.
func (e *QvEvaluator) Del(i, j int) float64 {
	if j < 0 || j >= e.TemplateLength() || i < 0 || i > e.ReadLength() {
		internalBoundsPanic("QvEvaluator.Del", i, j)
	}
	if (!e.pinStart && i == 0) || (!e.pinEnd && i == e.ReadLength()) {
		return 0.0
	}
	if i < e.ReadLength() && base.Base(e.features.DelTag[i]) == e.template[j] {
		return e.params.DeletionWithTag + e.params.DeletionWithTagS*e.features.DelQv[i]
	}
	return e.params.DeletionN
}

// Extra is the cost of consuming read[i] without advancing the
// template. A "branch" event (the inserted base matches the template
// base it sits against) is cheaper than a non-cognate extra base.
func (e *QvEvaluator) Extra(i, j int) float64 {
	if j < 0 || j > e.TemplateLength() || i < 0 || i >= e.ReadLength() {
		internalBoundsPanic("QvEvaluator.Extra", i, j)
	}
	if j < e.TemplateLength() && e.isMatch(i, j) {
		return e.params.Branch + e.params.BranchS*e.features.InsQv[i]
	}
	return e.params.Nce + e.params.NceS*e.features.InsQv[i]
}

// Merge is the cost of a homopolymer merge: legal only when
// template[j]==template[j+1] and read[i] equals both; NegInf otherwise.
func (e *QvEvaluator) Merge(i, j int) float64 {
	if j < 0 || j >= e.TemplateLength()-1 || i < 0 || i >= e.ReadLength() {
		internalBoundsPanic("QvEvaluator.Merge", i, j)
	}
	readBase := e.features.At(i)
	if readBase != e.template[j] || readBase != e.template[j+1] {
		return NegInf
	}
	return e.params.Merge + e.params.MergeS*e.features.MergeQv[i]
}

// Burst would score a homopolymer-burst move of the given length; the
// reference implementation never specified its semantics, so this
// always panics with base.ErrNotYetImplemented.
func (e *QvEvaluator) Burst(i, j, hpLength int) float64 {
	panic(base.WrapKind(base.NotYetImplemented, "QvEvaluator.Burst",
		"homopolymer burst scoring is unspecified (i=%d, j=%d, hpLength=%d)", i, j, hpLength))
}
