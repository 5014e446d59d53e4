package bandmatrix_test

import (
	"math"
	"testing"

	"github.com/pbio/quivercore/bandmatrix"
	"github.com/pbio/quivercore/base"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RejectsBadShape(t *testing.T) {
	_, err := bandmatrix.New(0, 5)
	assert.ErrorIs(t, err, base.ErrInvalidInput)

	_, err = bandmatrix.New(5, -1)
	assert.ErrorIs(t, err, base.ErrInvalidInput)
}

func TestMatrix_DefaultsToEmptyBand(t *testing.T) {
	m, err := bandmatrix.New(5, 5)
	require.NoError(t, err)

	s, e := m.GetExtent(2)
	assert.Equal(t, 0, s)
	assert.Equal(t, 0, e)
	assert.True(t, math.IsInf(m.Get(0, 2), -1))
}

func TestMatrix_SetAndGetWithinBand(t *testing.T) {
	m, err := bandmatrix.New(5, 5)
	require.NoError(t, err)

	require.NoError(t, m.StartEditingColumn(2, 1, 4))
	m.Set(1, 2, 10)
	m.Set(3, 2, 20)

	assert.Equal(t, 10.0, m.Get(1, 2))
	assert.Equal(t, 20.0, m.Get(3, 2))
	assert.Equal(t, bandmatrix.NegInf, m.Get(2, 2), "uninitialized cell within band defaults to NegInf")
	assert.True(t, math.IsInf(m.Get(0, 2), -1), "row outside band is -inf")
	assert.True(t, math.IsInf(m.Get(4, 2), -1), "row outside band is -inf")
}

func TestMatrix_StartEditingColumn_RejectsInvalidBand(t *testing.T) {
	m, err := bandmatrix.New(5, 5)
	require.NoError(t, err)

	assert.ErrorIs(t, m.StartEditingColumn(0, -1, 3), base.ErrInvalidInput)
	assert.ErrorIs(t, m.StartEditingColumn(0, 3, 1), base.ErrInvalidInput)
	assert.ErrorIs(t, m.StartEditingColumn(0, 0, 6), base.ErrInvalidInput)
	assert.ErrorIs(t, m.StartEditingColumn(9, 0, 1), base.ErrInvalidInput)
}

func TestMatrix_Set_PanicsOutOfBand(t *testing.T) {
	m, err := bandmatrix.New(5, 5)
	require.NoError(t, err)
	require.NoError(t, m.StartEditingColumn(0, 1, 3))

	assert.Panics(t, func() { m.Set(0, 0, 1) })
	assert.Panics(t, func() { m.Set(3, 0, 1) })
}

func TestMatrix_ReEditingColumnOverwrites(t *testing.T) {
	m, err := bandmatrix.New(5, 5)
	require.NoError(t, err)

	require.NoError(t, m.StartEditingColumn(1, 0, 3))
	m.Set(0, 1, 7)
	require.NoError(t, m.StartEditingColumn(1, 2, 5))
	s, e := m.GetExtent(1)
	assert.Equal(t, 2, s)
	assert.Equal(t, 5, e)
	assert.Equal(t, bandmatrix.NegInf, m.Get(0, 1), "old band content is gone after re-editing")
}

func TestMatrix_ColumnsEditableOutOfOrder(t *testing.T) {
	m, err := bandmatrix.New(4, 4)
	require.NoError(t, err)

	require.NoError(t, m.StartEditingColumn(3, 0, 4))
	require.NoError(t, m.StartEditingColumn(0, 0, 4))
	m.Set(0, 3, 1)
	m.Set(0, 0, 2)
	assert.Equal(t, 1.0, m.Get(0, 3))
	assert.Equal(t, 2.0, m.Get(0, 0))
}
