package qvfeatures_test

import (
	"testing"

	"github.com/pbio/quivercore/base"
	"github.com/pbio/quivercore/qvfeatures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uniform(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func TestNew_ValidFeatures(t *testing.T) {
	seq := base.NewSequence("ACGT")
	delTag := []float64{float64(base.A), float64(base.C), float64(base.G), float64(base.T)}

	f, err := qvfeatures.New(seq, uniform(4, 1), uniform(4, 2), uniform(4, 3), delTag, uniform(4, 4))
	require.NoError(t, err)
	assert.Equal(t, 4, f.Length())
	assert.Equal(t, "ACGT", f.Sequence().String())
	assert.Equal(t, float64(base.A), f.SequenceAsFloat[0])
}

func TestNew_BadDelTag(t *testing.T) {
	seq := base.NewSequence("ACGTA")
	delTag := uniform(5, float64(base.A))
	delTag[2] = 3 // not a valid Base encoding

	_, err := qvfeatures.New(seq, uniform(5, 0), uniform(5, 0), uniform(5, 0), delTag, uniform(5, 0))
	assert.ErrorIs(t, err, base.ErrInternal)
}

func TestNew_MismatchedLengths(t *testing.T) {
	seq := base.NewSequence("ACGT")
	_, err := qvfeatures.New(seq, uniform(3, 0), uniform(4, 0), uniform(4, 0), uniform(4, float64(base.A)), uniform(4, 0))
	assert.ErrorIs(t, err, base.ErrInternal)
}

func TestNew_DefensiveCopy(t *testing.T) {
	seq := base.NewSequence("ACGT")
	insQv := uniform(4, 1)
	delTag := []float64{float64(base.A), float64(base.C), float64(base.G), float64(base.T)}

	f, err := qvfeatures.New(seq, insQv, uniform(4, 0), uniform(4, 0), delTag, uniform(4, 0))
	require.NoError(t, err)

	insQv[0] = 999
	assert.NotEqual(t, 999.0, f.InsQv[0], "mutating the caller's slice must not affect the constructed features")
}
