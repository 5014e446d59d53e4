package mutation_test

import (
	"testing"

	"github.com/pbio/quivercore/base"
	"github.com/pbio/quivercore/mutation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustNew(t *testing.T, typ mutation.Type, pos int, b base.Base) mutation.Mutation {
	t.Helper()
	m, err := mutation.New(typ, pos, b)
	require.NoError(t, err)
	return m
}

func TestNew_RejectsBadBase(t *testing.T) {
	_, err := mutation.New(mutation.Substitution, 0, base.Base('N'))
	assert.ErrorIs(t, err, base.ErrInvalidInput)
}

func TestApplyMutation_Substitution(t *testing.T) {
	tpl := base.NewSequence("ACGTACGTACGT")
	m := mustNew(t, mutation.Substitution, 0, base.C)

	out, err := mutation.ApplyMutation(m, tpl)
	require.NoError(t, err)
	assert.Equal(t, "CCGTACGTACGT", out.String())
	assert.Equal(t, "ACGTACGTACGT", tpl.String(), "original template must be untouched")
}

func TestApplyMutation_Deletion(t *testing.T) {
	tpl := base.NewSequence("ACGTACGTACGT")
	m := mustNew(t, mutation.Deletion, 4, base.Gap)

	out, err := mutation.ApplyMutation(m, tpl)
	require.NoError(t, err)
	assert.Equal(t, "ACGTCGTACGT", out.String())
	assert.Equal(t, "ACGTACGTACGT", tpl.String())
}

func TestApplyMutation_Insertion(t *testing.T) {
	tpl := base.NewSequence("ACGTACGTACGT")
	m := mustNew(t, mutation.Insertion, 0, base.C)

	out, err := mutation.ApplyMutation(m, tpl)
	require.NoError(t, err)
	assert.Equal(t, "CACGTACGTACGT", out.String())
}

func TestApplyMutation_OutOfRange(t *testing.T) {
	tpl := base.NewSequence("ACGT")
	m := mustNew(t, mutation.Substitution, 4, base.A)
	_, err := mutation.ApplyMutation(m, tpl)
	assert.ErrorIs(t, err, base.ErrInvalidInput)

	mIns := mustNew(t, mutation.Insertion, 4, base.A)
	_, err = mutation.ApplyMutation(mIns, tpl)
	assert.NoError(t, err, "insertion at len(tpl) is a legal tail insert")
}

func TestMutation_Ordering(t *testing.T) {
	m1 := mustNew(t, mutation.Insertion, 0, base.G)
	m2 := mustNew(t, mutation.Insertion, 2, base.T)
	m3 := mustNew(t, mutation.Insertion, 3, base.C)
	m4 := mustNew(t, mutation.Deletion, 4, base.Gap)
	m5 := mustNew(t, mutation.Substitution, 6, base.T)

	assert.True(t, m1.Less(m2))
	assert.True(t, m2.Less(m3))
	assert.True(t, m3.Less(m4))
	assert.True(t, m4.Less(m5))
}

func TestApplyMutations_OutOfOrderInput(t *testing.T) {
	tpl := base.NewSequence("GATTACA")
	m1 := mustNew(t, mutation.Insertion, 0, base.G)
	m2 := mustNew(t, mutation.Insertion, 2, base.T)
	m3 := mustNew(t, mutation.Insertion, 3, base.C)
	m4 := mustNew(t, mutation.Deletion, 4, base.Gap)
	m5 := mustNew(t, mutation.Substitution, 6, base.T)

	// Deliberately scrambled order; ApplyMutations must still sort.
	out, err := mutation.ApplyMutations([]mutation.Mutation{m3, m2, m1, m5, m4}, tpl)
	require.NoError(t, err)
	assert.Equal(t, "GGATTCTCT", out.String())
	assert.Equal(t, "GATTACA", tpl.String())
}

func TestApplyMutations_SamePosition(t *testing.T) {
	tpl := base.NewSequence("GATTACA")
	ins := mustNew(t, mutation.Insertion, 2, base.T)
	sub := mustNew(t, mutation.Substitution, 2, base.A)

	out, err := mutation.ApplyMutations([]mutation.Mutation{sub, ins}, tpl)
	require.NoError(t, err)
	assert.Equal(t, "GATATACA", out.String())
}

func TestMutationsToTranscript(t *testing.T) {
	tpl := base.NewSequence("GATTACA")

	transcript, err := mutation.MutationsToTranscript(nil, tpl)
	require.NoError(t, err)
	assert.Equal(t, "MMMMMMM", transcript)

	ins1 := mustNew(t, mutation.Insertion, 1, base.T)
	ins2 := mustNew(t, mutation.Insertion, 5, base.C)
	transcript, err = mutation.MutationsToTranscript([]mutation.Mutation{ins2, ins1}, tpl)
	require.NoError(t, err)
	assert.Equal(t, "MIMMMMIMM", transcript)

	del := mustNew(t, mutation.Deletion, 2, base.Gap)
	sub := mustNew(t, mutation.Substitution, 4, base.G)
	ins := mustNew(t, mutation.Insertion, 5, base.C)
	transcript, err = mutation.MutationsToTranscript([]mutation.Mutation{del, ins, sub}, tpl)
	require.NoError(t, err)
	assert.Equal(t, "MMDMRIMM", transcript)
}

func TestTargetToQueryPositions(t *testing.T) {
	tpl := base.NewSequence("GATTACA")
	del := mustNew(t, mutation.Deletion, 2, base.Gap)
	sub := mustNew(t, mutation.Substitution, 4, base.G)
	ins := mustNew(t, mutation.Insertion, 5, base.C)

	mtp, err := mutation.TargetToQueryPositions([]mutation.Mutation{del, ins, sub}, tpl)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 2, 3, 5, 6, 7}, mtp)

	tpl2 := base.NewSequence("GG")
	insA := mustNew(t, mutation.Insertion, 0, base.A)
	mtp2, err := mutation.TargetToQueryPositions([]mutation.Mutation{insA}, tpl2)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, mtp2)

	tpl3 := base.NewSequence("AGG")
	delA := mustNew(t, mutation.Deletion, 0, base.Gap)
	mtp3, err := mutation.TargetToQueryPositions([]mutation.Mutation{delA}, tpl3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 1, 2}, mtp3)
}

func TestTargetToQueryPositions_Monotone(t *testing.T) {
	tpl := base.NewSequence("GATTACAGATTACA")
	del := mustNew(t, mutation.Deletion, 2, base.Gap)
	sub := mustNew(t, mutation.Substitution, 9, base.G)
	ins := mustNew(t, mutation.Insertion, 5, base.C)

	mtp, err := mutation.TargetToQueryPositions([]mutation.Mutation{del, ins, sub}, tpl)
	require.NoError(t, err)
	for i := 1; i < len(mtp); i++ {
		assert.GreaterOrEqual(t, mtp[i], mtp[i-1], "mtp must be monotone non-decreasing")
	}
	mutated, err := mutation.ApplyMutations([]mutation.Mutation{del, ins, sub}, tpl)
	require.NoError(t, err)
	assert.Equal(t, len(mutated), mtp[len(mtp)-1], "last element is len(mutated template)")
}

func TestMutation_String(t *testing.T) {
	m := mustNew(t, mutation.Substitution, 4, base.C)
	assert.Equal(t, "Substitution (C) @4", m.String())

	d := mustNew(t, mutation.Deletion, 2, base.Gap)
	assert.Equal(t, "Deletion @2", d.String())

	i := mustNew(t, mutation.Insertion, 0, base.G)
	assert.Equal(t, "Insertion (G) @0", i.String())
}
