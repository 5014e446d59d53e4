// Package recursor fills the banded α (forward) and β (backward) score
// matrices for a pair-HMM alignment between one read and one template,
// and reads a traceback alignment out of a filled α matrix.
//
// Recursor is parametric over three concerns instead of dispatching
// through interfaces at every cell: the matrix implementation (M), the
// per-cell score source (E), and the reduction used to combine
// candidate transitions at a cell (C, Viterbi max or log-domain Forward
// sum). Go's generics monomorphize each instantiation at compile time,
// so there is no per-cell vtable indirection despite the abstraction.
package recursor
