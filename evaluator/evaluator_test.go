package evaluator_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/pbio/quivercore/base"
	"github.com/pbio/quivercore/evaluator"
	"github.com/pbio/quivercore/qvfeatures"
	"github.com/pbio/quivercore/qvmodel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var alphabet = []base.Base{base.A, base.C, base.G, base.T}

func randomSequence(rng *rand.Rand, n int) base.Sequence {
	seq := make(base.Sequence, n)
	for i := range seq {
		seq[i] = alphabet[rng.Intn(4)]
	}
	return seq
}

func randomQv(rng *rand.Rand, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = rng.Float64()
	}
	return out
}

func randomTag(rng *rand.Rand, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(alphabet[rng.Intn(4)])
	}
	return out
}

func fuzzParams() qvmodel.QvModelParams {
	return qvmodel.QvModelParams{
		Match: 0, Mismatch: -5, MismatchS: -0.1,
		Branch: -3, BranchS: -0.1, Nce: -8, NceS: -0.2,
		DeletionN: -6, DeletionWithTag: -2, DeletionWithTagS: -0.1,
		Merge: -4, MergeS: -0.1,
	}
}

func newRandomEvaluator(t *testing.T, rng *rand.Rand, tplLen int) *evaluator.QvEvaluator {
	t.Helper()
	readLen := 16 + rng.Intn(8)
	seq := randomSequence(rng, readLen)
	f, err := qvfeatures.New(seq, randomQv(rng, readLen), randomQv(rng, readLen),
		randomQv(rng, readLen), randomTag(rng, readLen), randomQv(rng, readLen))
	require.NoError(t, err)

	tpl := randomSequence(rng, tplLen)
	e, err := evaluator.New(f, tpl, fuzzParams(), true, true)
	require.NoError(t, err)
	return e
}

func TestNew_RejectsBadDelTag(t *testing.T) {
	seq := base.NewSequence("ACGTACGTACGTACGTACGT")
	goodTag := make([]float64, 20)
	for i := range goodTag {
		goodTag[i] = float64(base.A)
	}
	features, err := qvfeatures.New(seq, make([]float64, 20), make([]float64, 20), make([]float64, 20), goodTag, make([]float64, 20))
	require.NoError(t, err)
	features.DelTag[5] = 3 // corrupt after construction, bypassing qvfeatures.New's own check

	_, err = evaluator.New(features, seq, fuzzParams(), true, true)
	assert.ErrorIs(t, err, base.ErrInternal)
}

func TestInc_MatchAndMismatch(t *testing.T) {
	seq := base.NewSequence("AC")
	f, err := qvfeatures.New(seq, []float64{0, 0}, []float64{2, 3}, []float64{0, 0}, []float64{float64(base.A), float64(base.A)}, []float64{0, 0})
	require.NoError(t, err)

	tpl := base.NewSequence("AG")
	e, err := evaluator.New(f, tpl, fuzzParams(), true, true)
	require.NoError(t, err)

	assert.Equal(t, fuzzParams().Match, e.Inc(0, 0), "A vs A is a match")
	want := fuzzParams().Mismatch + fuzzParams().MismatchS*3
	assert.Equal(t, want, e.Inc(1, 1), "C vs G is a mismatch")
}

func TestDel_FreeEndGap(t *testing.T) {
	seq := base.NewSequence("AC")
	f, err := qvfeatures.New(seq, []float64{0, 0}, []float64{0, 0}, []float64{0, 0}, []float64{float64(base.A), float64(base.A)}, []float64{0, 0})
	require.NoError(t, err)
	tpl := base.NewSequence("AG")

	e, err := evaluator.New(f, tpl, fuzzParams(), false, false)
	require.NoError(t, err)
	assert.Equal(t, 0.0, e.Del(0, 0), "PinStart=false grants a free gap at i=0")
	assert.Equal(t, 0.0, e.Del(2, 0), "PinEnd=false grants a free gap at i=ReadLength")

	pinned, err := evaluator.New(f, tpl, fuzzParams(), true, true)
	require.NoError(t, err)
	assert.NotEqual(t, 0.0, pinned.Del(0, 0), "pinned start must not get a free gap")
}

func TestMerge_IllegalReturnsNegInf(t *testing.T) {
	seq := base.NewSequence("A")
	f, err := qvfeatures.New(seq, []float64{0}, []float64{0}, []float64{0}, []float64{float64(base.A)}, []float64{0})
	require.NoError(t, err)
	tpl := base.NewSequence("AC") // template[0] != template[1]

	e, err := evaluator.New(f, tpl, fuzzParams(), true, true)
	require.NoError(t, err)
	assert.True(t, math.IsInf(e.Merge(0, 0), -1))
}

func TestBurst_Panics(t *testing.T) {
	seq := base.NewSequence("A")
	f, err := qvfeatures.New(seq, []float64{0}, []float64{0}, []float64{0}, []float64{float64(base.A)}, []float64{0})
	require.NoError(t, err)
	tpl := base.NewSequence("AC")
	e, err := evaluator.New(f, tpl, fuzzParams(), true, true)
	require.NoError(t, err)

	assert.Panics(t, func() { e.Burst(0, 0, 3) })
	assert.Panics(t, func() { e.Burst4(0, 0, 3) })
}

// TestScalarVs4Wide exercises the correctness invariant the 4-wide
// kernels must uphold: for all legal (i, j), the four-lane output must
// equal four scalar invocations, element-wise.
func TestScalarVs4Wide(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	const numEvaluators = 64
	const tplLen = 20

	for n := 0; n < numEvaluators; n++ {
		e := newRandomEvaluator(t, rng, tplLen)
		I := e.ReadLength()
		J := e.TemplateLength()

		for j := 0; j <= J-1; j++ {
			for i := 0; i <= I-4; i++ {
				lane := e.Inc4(i, j)
				for k := 0; k < 4; k++ {
					assert.Equal(t, e.Inc(i+k, j), lane[k])
				}
			}
		}
		for j := 0; j <= J-1; j++ {
			for i := 0; i <= I-3; i++ {
				lane := e.Del4(i, j)
				for k := 0; k < 4; k++ {
					assert.Equal(t, e.Del(i+k, j), lane[k])
				}
			}
		}
		for j := 0; j <= J; j++ {
			for i := 0; i <= I-4; i++ {
				lane := e.Extra4(i, j)
				for k := 0; k < 4; k++ {
					assert.Equal(t, e.Extra(i+k, j), lane[k])
				}
			}
		}
		for j := 0; j <= J-2; j++ {
			for i := 0; i <= I-4; i++ {
				lane := e.Merge4(i, j)
				for k := 0; k < 4; k++ {
					assert.Equal(t, e.Merge(i+k, j), lane[k])
				}
			}
		}
	}
}
