package mutation

import (
	"sort"

	"github.com/pbio/quivercore/base"
)

// sorted returns a stable-sorted copy of ms per the Mutation total order,
// leaving the caller's slice untouched.
func sorted(ms []Mutation) []Mutation {
	out := make([]Mutation, len(ms))
	copy(out, ms)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// validatePosition checks m.Position against the length of the
// unmutated template, per the bounds ApplyMutation requires: a half-open
// range [0, len(t)) for Substitution/Deletion (there must be a base to
// overwrite or remove) and the closed range [0, len(t)] for Insertion
// (a position just past the end inserts at the tail).
func validatePosition(m Mutation, tplLen int) error {
	switch m.Type() {
	case Insertion:
		if m.Position() < 0 || m.Position() > tplLen {
			return base.WrapKind(base.InvalidInput, "ApplyMutation",
				"insertion position %d out of [0,%d]", m.Position(), tplLen)
		}
	default: // Substitution, Deletion
		if m.Position() < 0 || m.Position() >= tplLen {
			return base.WrapKind(base.InvalidInput, "ApplyMutation",
				"%s position %d out of [0,%d)", m.Type(), m.Position(), tplLen)
		}
	}
	return nil
}

// applyAt applies m to tpl at the effective index idx (which may differ
// from m.Position() once a running offset from prior mutations is
// applied), returning a new Sequence. tpl is never modified.
func applyAt(m Mutation, idx int, tpl base.Sequence) base.Sequence {
	switch m.Type() {
	case Substitution:
		out := make(base.Sequence, len(tpl))
		copy(out, tpl)
		out[idx] = m.Base()
		return out
	case Deletion:
		out := make(base.Sequence, 0, len(tpl)-1)
		out = append(out, tpl[:idx]...)
		out = append(out, tpl[idx+1:]...)
		return out
	case Insertion:
		out := make(base.Sequence, 0, len(tpl)+1)
		out = append(out, tpl[:idx]...)
		out = append(out, m.Base())
		out = append(out, tpl[idx:]...)
		return out
	default:
		// unreachable: Type is one of the three constants above.
		return tpl
	}
}

// ApplyMutation returns a new sequence obtained by applying m to tpl at
// m.Position(), interpreted against tpl directly. tpl is not modified.
func ApplyMutation(m Mutation, tpl base.Sequence) (base.Sequence, error) {
	if err := validatePosition(m, len(tpl)); err != nil {
		return nil, err
	}
	return applyAt(m, m.Position(), tpl), nil
}

// ApplyMutations applies an ordered set of Mutations to tpl, maintaining
// a running offset equal to the cumulative LengthDiff of previously
// applied mutations, so every mutation's Position is interpreted
// stably against the *original* tpl regardless of application order.
// Mutations are applied in the Mutation total order (ApplyMutation's own
// positional validation is checked against the original, un-offset
// template length at each step).
func ApplyMutations(ms []Mutation, tpl base.Sequence) (base.Sequence, error) {
	ordered := sorted(ms)
	out := make(base.Sequence, len(tpl))
	copy(out, tpl)

	offset := 0
	originalLen := len(tpl)
	for _, m := range ordered {
		if err := validatePosition(m, originalLen); err != nil {
			return nil, err
		}
		out = applyAt(m, m.Position()+offset, out)
		offset += m.LengthDiff()
	}
	return out, nil
}

// MutationsToTranscript produces an alignment transcript over {M, I, D,
// R} describing the composition of identity-plus-ms against tpl:
// 'M' for an untouched template base, 'I' for an inserted read base
// (template cursor does not advance), 'D' for a deleted template base,
// 'R' for a substituted (replaced) template base.
func MutationsToTranscript(ms []Mutation, tpl base.Sequence) (string, error) {
	ordered := sorted(ms)
	originalLen := len(tpl)

	transcript := make([]byte, 0, originalLen+len(ordered))
	tpos := 0
	for _, m := range ordered {
		if err := validatePosition(m, originalLen); err != nil {
			return "", err
		}
		for ; tpos < m.Position(); tpos++ {
			transcript = append(transcript, 'M')
		}
		switch m.Type() {
		case Insertion:
			transcript = append(transcript, 'I')
		case Deletion:
			transcript = append(transcript, 'D')
			tpos++
		case Substitution:
			transcript = append(transcript, 'R')
			tpos++
		}
	}
	for ; tpos < originalLen; tpos++ {
		transcript = append(transcript, 'M')
	}
	return string(transcript), nil
}

// TargetToQueryPositions returns the position map mtp, of length
// len(tpl)+1, such that for any slice [s,e) of tpl, the corresponding
// slice of ApplyMutations(ms, tpl) is [mtp[s], mtp[e]). It is derived
// purely from the transcript: 'M'/'R' advance both the target cursor tc
// and the query cursor qc; 'D' advances tc only; 'I' advances qc only;
// mtp[tc] is recorded after every step, so the final value at a given tc
// wins when multiple transcript characters share it (e.g. a Substitution
// at position p immediately followed by an Insertion at p+1).
func TargetToQueryPositions(ms []Mutation, tpl base.Sequence) ([]int, error) {
	transcript, err := MutationsToTranscript(ms, tpl)
	if err != nil {
		return nil, err
	}

	mtp := make([]int, len(tpl)+1)
	tc, qc := 0, 0
	for _, ch := range transcript {
		switch ch {
		case 'M', 'R':
			tc++
			qc++
		case 'D':
			tc++
		case 'I':
			qc++
		}
		mtp[tc] = qc
	}
	return mtp, nil
}
