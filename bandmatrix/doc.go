// Package bandmatrix is the banded DP score matrix the Recursor fills.
//
// Matrix stores one contiguous float64 buffer per template column,
// covering only the live row band [rowStart, rowEnd) for that column;
// cells outside a column's band are implicitly −∞ and never allocated.
// Columns may be edited in either direction — α fill proceeds
// left-to-right, β fill right-to-left — so StartEditingColumn takes an
// explicit column index rather than assuming append-only growth.
//
// Get and Set are hot-path, called once per DP cell; they panic with
// base.ErrInternal on an out-of-range column or an out-of-band row
// passed to Set, since both indicate the Recursor asked for a cell it
// had no business touching, not a caller-facing validation failure.
// StartEditingColumn, called once per column, returns an ordinary error
// instead, since a malformed band there is a banding-policy bug worth
// surfacing to the caller rather than panicking on.
package bandmatrix
