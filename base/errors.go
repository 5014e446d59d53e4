// SPDX-License-Identifier: MIT
//
// errors.go — sentinel errors and Kind taxonomy shared across quivercore.
//
// Error policy (mirrors lvlath/builder's errors.go discipline):
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Sentinels are never wrapped with fmt.Errorf at the definition site.
//   • Call sites attach context with WrapKind, which preserves the
//     sentinel via %w so errors.Is(err, ErrInternal) keeps working.
//   • Internal-kind errors additionally carry a stack trace (via
//     github.com/pkg/errors) because they mark should-not-reach-here
//     paths: when one fires, the trace is the fastest way back to the
//     caller that broke an invariant.
package base

import (
	"errors"

	pkgerrors "github.com/pkg/errors"
)

// Kind classifies every error quivercore can return.
type Kind int

const (
	// InvalidInput marks a malformed Mutation or out-of-range position
	// supplied by the caller.
	InvalidInput Kind = iota
	// Internal marks an invariant violation that validated inputs
	// should never trigger (e.g. a corrupt DelTag array).
	Internal
	// NotYetImplemented marks the Burst/Burst4 score kernels, whose
	// semantics were never specified upstream.
	NotYetImplemented
	// AlphaBetaMismatch marks an α/β reconciliation that did not
	// converge within the configured refill bound.
	AlphaBetaMismatch
)

func (k Kind) String() string {
	switch k {
	case InvalidInput:
		return "InvalidInput"
	case Internal:
		return "Internal"
	case NotYetImplemented:
		return "NotYetImplemented"
	case AlphaBetaMismatch:
		return "AlphaBetaMismatch"
	default:
		return "UnknownKind"
	}
}

// Sentinel errors, one per Kind. Use errors.Is against these, never
// string comparison.
var (
	// ErrInvalidInput is returned when a Mutation's Base is outside
	// {A,C,G,T,-} or its Position is out of range for its Type.
	ErrInvalidInput = errors.New("quivercore: invalid input")

	// ErrInternal is returned when a should-not-reach-here invariant
	// breaks, e.g. QvSequenceFeatures constructed with a DelTag entry
	// that is not a valid Base.
	ErrInternal = errors.New("quivercore: internal invariant violated")

	// ErrNotYetImplemented is the sentinel Burst and Burst4 panic with,
	// since their scoring semantics are unspecified upstream. This is a
	// fatal program error, not a recoverable condition.
	ErrNotYetImplemented = errors.New("quivercore: not yet implemented")

	// ErrAlphaBetaMismatch is returned when FillAlphaBeta exhausts its
	// refill budget without reconciling the α and β endpoint scores.
	ErrAlphaBetaMismatch = errors.New("quivercore: alpha and beta could not be mated")
)

// sentinelFor maps a Kind to its package sentinel.
func sentinelFor(k Kind) error {
	switch k {
	case InvalidInput:
		return ErrInvalidInput
	case NotYetImplemented:
		return ErrNotYetImplemented
	case AlphaBetaMismatch:
		return ErrAlphaBetaMismatch
	default:
		return ErrInternal
	}
}

// WrapKind attaches method context to the sentinel for k, in the form
// "<method>: <formatted message>: <sentinel>". Internal-kind errors are
// additionally wrapped with github.com/pkg/errors so the first call
// site gets a stack trace; the other Kinds stay plain since they are
// ordinary, expected-at-the-boundary validation failures.
func WrapKind(k Kind, method, format string, args ...interface{}) error {
	sentinel := sentinelFor(k)
	if k == Internal {
		return pkgerrors.Wrapf(sentinel, "%s: "+format, prepend(method, args)...)
	}
	return fmtErrorf(method, format, sentinel, args...)
}

// prepend inserts method as the first formatting argument.
func prepend(method string, args []interface{}) []interface{} {
	out := make([]interface{}, 0, len(args)+1)
	out = append(out, method)
	out = append(out, args...)
	return out
}
