// Package quivercore is the computational core of a consensus-calling
// engine for noisy, per-base quality-annotated DNA reads.
//
//	Given a candidate template sequence and one or more reads (each
//	carrying per-base quality metrics), quivercore scores the probability
//	that the reads were generated from the template under a pair-HMM of
//	sequencing errors, and exposes the primitives an outer greedy search
//	loop needs to propose and apply single-base mutations that improve
//	that score.
//
// Three subsystems, bottom to top:
//
//	mutation/    — single-base edit algebra: apply, compose, transcript, position map
//	evaluator/   — per-(read,template) move scores (scalar + 4-wide SIMD-equivalent)
//	recursor/    — banded forward/backward DP engine over a Matrix + Combiner
//
// Supporting packages:
//
//	base/        — shared alphabet, error Kind taxonomy
//	qvfeatures/  — per-read quality-value arrays
//	qvmodel/     — fitted pair-HMM coefficients, banding configuration
//	bandmatrix/  — sparse-by-band DP column storage
//	alignment/   — traceback product (aligned strings + transcript)
//
// quivercore is a library, not a binary: no wire protocol, no file I/O, no
// environment dependencies. See cmd/quiverbench for a small CLI that
// drives the library over synthetic or user-supplied reads.
package quivercore
