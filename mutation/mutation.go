package mutation

import (
	"fmt"

	"github.com/pbio/quivercore/base"
)

// Type is the kind of single-base edit a Mutation represents.
//
// Ordinal order matters: it is the tie-break field of the Mutation total
// order, and fixes that at a shared Position, an Insertion is applied
// before a Substitution, which is applied before a Deletion.
type Type int

const (
	Insertion Type = iota
	Substitution
	Deletion
)

func (t Type) String() string {
	switch t {
	case Insertion:
		return "Insertion"
	case Substitution:
		return "Substitution"
	case Deletion:
		return "Deletion"
	default:
		return "UnknownMutationType"
	}
}

// Mutation is an immutable single-base edit against a template,
// interpreted at construction time against the *unmutated* template.
type Mutation struct {
	typ      Type
	position int
	b        base.Base
}

// New constructs a Mutation. It fails with base.ErrInvalidInput if b is
// not one of {A,C,G,T,-}; by convention Deletion mutations carry
// base.Gap, but the check is the same for every Type.
func New(t Type, position int, b base.Base) (Mutation, error) {
	if !b.IsValidOrGap() {
		return Mutation{}, base.WrapKind(base.InvalidInput, "mutation.New",
			"base %q is not one of {A,C,G,T,-}", b)
	}
	return Mutation{typ: t, position: position, b: b}, nil
}

// Type returns the mutation's edit kind.
func (m Mutation) Type() Type { return m.typ }

// Position returns the mutation's position, interpreted against the
// unmutated template it was constructed for.
func (m Mutation) Position() int { return m.position }

// Base returns the mutation's base (ignored, but validated, for Deletion).
func (m Mutation) Base() base.Base { return m.b }

// LengthDiff is the template length delta this mutation induces: +1 for
// Insertion, -1 for Deletion, 0 for Substitution.
func (m Mutation) LengthDiff() int {
	switch m.typ {
	case Insertion:
		return 1
	case Deletion:
		return -1
	default:
		return 0
	}
}

// String renders the mutation the way the original ConsensusCore
// Mutation::ToString did, e.g. "Substitution (C) @4".
func (m Mutation) String() string {
	switch m.typ {
	case Insertion:
		return fmt.Sprintf("Insertion (%c) @%d", byte(m.b), m.position)
	case Deletion:
		return fmt.Sprintf("Deletion @%d", m.position)
	case Substitution:
		return fmt.Sprintf("Substitution (%c) @%d", byte(m.b), m.position)
	default:
		return "InvalidMutation"
	}
}

// Equal reports whether m and other carry identical Type, Position, and
// Base.
func (m Mutation) Equal(other Mutation) bool {
	return m.position == other.position && m.typ == other.typ && m.b == other.b
}

// Less implements the Mutation total order: lexicographic by
// (Position, Type ordinal, Base).
func (m Mutation) Less(other Mutation) bool {
	if m.position != other.position {
		return m.position < other.position
	}
	if m.typ != other.typ {
		return m.typ < other.typ
	}
	return m.b < other.b
}
