package bandmatrix

import (
	"math"

	"github.com/pbio/quivercore/base"
)

// NegInf is the implicit value of any cell outside its column's band.
var NegInf = math.Inf(-1)

// Matrix is a banded (ReadLength+1) x (TemplateLength+1) DP score
// matrix, stored one column at a time.
type Matrix struct {
	rows, cols int
	rowStart   []int
	rowEnd     []int
	data       [][]float64
}

// New allocates an empty rows x cols Matrix; every column starts with
// an empty band (no live cells) until StartEditingColumn is called for
// it.
func New(rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, base.WrapKind(base.InvalidInput, "bandmatrix.New",
			"dimensions must be positive, got rows=%d cols=%d", rows, cols)
	}
	return &Matrix{
		rows:     rows,
		cols:     cols,
		rowStart: make([]int, cols),
		rowEnd:   make([]int, cols),
		data:     make([][]float64, cols),
	}, nil
}

// Rows returns ReadLength+1.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns TemplateLength+1.
func (m *Matrix) Cols() int { return m.cols }

func (m *Matrix) checkColumn(method string, j int) {
	if j < 0 || j >= m.cols {
		panic(base.WrapKind(base.Internal, method, "column %d out of [0,%d)", j, m.cols))
	}
}

// GetExtent returns the live row band [start, end) for column j.
func (m *Matrix) GetExtent(j int) (start, end int) {
	m.checkColumn("Matrix.GetExtent", j)
	return m.rowStart[j], m.rowEnd[j]
}

// StartEditingColumn establishes the live band [start, end) for column
// j, overwriting any prior content for that column. Every cell in the
// new band is initialized to NegInf until Set is called.
func (m *Matrix) StartEditingColumn(j, start, end int) error {
	if j < 0 || j >= m.cols {
		return base.WrapKind(base.InvalidInput, "Matrix.StartEditingColumn",
			"column %d out of [0,%d)", j, m.cols)
	}
	if start < 0 || start > end || end > m.rows {
		return base.WrapKind(base.InvalidInput, "Matrix.StartEditingColumn",
			"invalid band [%d,%d) for %d rows", start, end, m.rows)
	}
	buf := make([]float64, end-start)
	for i := range buf {
		buf[i] = NegInf
	}
	m.rowStart[j] = start
	m.rowEnd[j] = end
	m.data[j] = buf
	return nil
}

// Set writes v at (i, j). i must lie within column j's current band;
// violating that is a Recursor bug, not a caller-facing error, so Set
// panics with base.ErrInternal instead.
func (m *Matrix) Set(i, j int, v float64) {
	m.checkColumn("Matrix.Set", j)
	s, e := m.rowStart[j], m.rowEnd[j]
	if i < s || i >= e {
		panic(base.WrapKind(base.Internal, "Matrix.Set",
			"row %d out of band [%d,%d) for column %d", i, s, e, j))
	}
	m.data[j][i-s] = v
}

// Get returns the score at (i, j), or NegInf if i falls outside column
// j's live band.
func (m *Matrix) Get(i, j int) float64 {
	m.checkColumn("Matrix.Get", j)
	s, e := m.rowStart[j], m.rowEnd[j]
	if i < s || i >= e {
		return NegInf
	}
	return m.data[j][i-s]
}
