// Package qvmodel holds the fitted coefficients of the pair-HMM and the
// banding configuration that controls how much of the DP matrix the
// Recursor actually fills. Both are plain, caller-constructed records —
// this package consumes fitted parameters, it does not fit them
// (model-parameter fitting is an external collaborator per spec).
package qvmodel

// QvModelParams is the set of named scalar coefficients the Evaluator
// combines with per-base quality values to score pair-HMM moves. Each
// "...S" field is the slope of an affine-in-QV term: cost = Base +
// Slope*QV.
type QvModelParams struct {
	Match float64
	Mismatch float64
	MismatchS float64

	Branch  float64
	BranchS float64
	Nce     float64
	NceS    float64

	DeletionN        float64
	DeletionWithTag  float64
	DeletionWithTagS float64

	Merge  float64
	MergeS float64
}

// BandingOptions governs the width of the live band the Recursor
// maintains per DP column.
type BandingOptions struct {
	// ScoreDiff is the maximum gap below a column's best score at which
	// a cell is still considered live.
	ScoreDiff float64
	// DiagCross bounds how far the band may shift from one column to
	// the next, preventing alignment "jumps".
	DiagCross int
}

// DefaultBandingOptions returns the banding configuration used by
// quiverbench when the caller does not supply one: a 12.5-log-unit
// score window and a 4-row diagonal-cross allowance, values carried
// over unchanged from the reference Quiver banding defaults.
func DefaultBandingOptions() BandingOptions {
	return BandingOptions{
		ScoreDiff: 12.5,
		DiagCross: 4,
	}
}

// DefaultQvModelParams returns a placeholder coefficient set in the
// same ballpark as a typical fitted PacBio chemistry model: matches
// score 0, every edit is a real (negative) cost, and a homopolymer
// merge is cheaper than an ordinary deletion. The retrieved reference
// sources never carried the fitted production constants (those live in
// a chemistry-specific parameters file outside this repo's scope), so
// quiverbench ships this as a demonstration default rather than a
// calibrated model; real use requires a fitted QvModelParams.
func DefaultQvModelParams() QvModelParams {
	return QvModelParams{
		Match: 0, Mismatch: -5, MismatchS: -0.1,
		Branch: -3, BranchS: -0.1,
		Nce: -8, NceS: -0.2,
		DeletionN: -6, DeletionWithTag: -2, DeletionWithTagS: -0.1,
		Merge: -4, MergeS: -0.1,
	}
}
