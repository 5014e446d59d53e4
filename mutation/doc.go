// Package mutation is the single-base edit algebra at the heart of
// consensus refinement.
//
// A Mutation is an immutable value: a Type (Insertion, Substitution, or
// Deletion), a Position interpreted against an *unmutated* template, and
// a Base. The free functions in this package are pure functions of
// (mutations, template) with no hidden state:
//
//	ApplyMutation          — apply one Mutation to a template
//	ApplyMutations         — apply an ordered set, tracking position drift
//	MutationsToTranscript  — render the implied alignment as an {M,I,D,R} string
//	TargetToQueryPositions — map template positions to mutated-template positions
//
// All four treat their template argument as read-only and return a new
// value; none mutate the input.
package mutation
