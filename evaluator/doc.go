// Package evaluator answers, for a given (read, template) pair under a
// fitted pair-HMM, "what does it cost to make the next DP move at cell
// (i, j)?"
//
// QvEvaluator exposes four move scorers — Inc (match/mismatch), Del
// (delete a template base), Extra (insert a read base), Merge
// (homopolymer collapse) — each in scalar form and as a 4-wide sibling
// (Inc4, Del4, Extra4, Merge4) that must agree with four scalar calls
// bit-for-bit. Inc4 and Merge4 vectorize by comparing the read's
// SIMD-aligned float mirror (qvfeatures.SequenceAsFloat) against a
// broadcast template base, and Del4 compares the DelTag array against
// it, mirroring the mask-and-select shape of the original SSE kernels;
// Del4 falls back to four scalar calls at the read boundary, where the
// free-end-gap rule is row-dependent. Extra4 is four scalar calls.
//
// Burst and Burst4 are placeholders: the reference implementation never
// specified a homopolymer-burst scoring rule, so both panic with
// base.ErrNotYetImplemented rather than guess at semantics.
//
// Out-of-band (i, j) access is a programmer error, not a caller
// mistake — the Recursor is responsible for never asking the Evaluator
// about a cell outside its own preconditions — so bound violations
// panic with base.ErrInternal instead of returning an error, matching
// the "should not be reached with validated inputs" contract these
// kernels operate under.
package evaluator
