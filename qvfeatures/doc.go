// Package qvfeatures holds a read's sequence and its five parallel
// per-base quality-value arrays, plus a SIMD-aligned float mirror of the
// sequence used by the Evaluator's 4-wide score kernels.
//
// QvSequenceFeatures is never modified by this package after
// construction; its QV arrays are exported slices, though, so nothing
// stops a caller from writing to them. It is validated eagerly at
// construction: a DelTag entry that is not a valid Base fails construction
// with base.ErrInternal, since a read whose tag array disagrees with
// the alphabet indicates upstream feature-loading corruption, not a
// caller mistake recoverable at this layer.
package qvfeatures
