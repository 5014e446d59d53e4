package recursor

import (
	"math"

	"github.com/pbio/quivercore/base"
	"github.com/pbio/quivercore/qvmodel"
)

// Option configures a Recursor at construction time.
type Option func(*config)

type config struct {
	tolerance  float64
	maxRefills int
}

func defaultConfig() config {
	return config{tolerance: 1e-3, maxRefills: 2}
}

// WithTolerance overrides the absolute tolerance FillAlphaBeta accepts
// between the α and β terminal scores before declaring a mismatch.
func WithTolerance(tol float64) Option {
	return func(c *config) { c.tolerance = tol }
}

// WithMaxRefills overrides how many extra α/β refill passes
// FillAlphaBeta attempts before declaring a mismatch.
func WithMaxRefills(n int) Option {
	return func(c *config) { c.maxRefills = n }
}

// Recursor fills banded α/β matrices of type M against an Evaluator of
// type E, combining candidate transitions at each cell with a Combiner
// of type C.
type Recursor[M Matrix, E Evaluator, C Combiner] struct {
	moves    MoveSet
	banding  qvmodel.BandingOptions
	combiner C
	cfg      config
}

// New constructs a Recursor. combiner is typically a zero-value
// ViterbiCombiner{} or SumCombiner{}, since both are stateless.
func New[M Matrix, E Evaluator, C Combiner](moves MoveSet, banding qvmodel.BandingOptions, combiner C, opts ...Option) *Recursor[M, E, C] {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Recursor[M, E, C]{moves: moves, banding: banding, combiner: combiner, cfg: cfg}
}

// computeColumn scores every row of template column col, given get(c,
// i), an accessor for already-committed column c < col. col == 0 is the
// left boundary, built purely from Extra transitions (zero template
// bases consumed); every other column's row 0 is built purely from a
// Del transition (zero read bases consumed so far).
func (r *Recursor[M, E, C]) computeColumn(e E, col int, get func(c, i int) float64) []float64 {
	rows := e.ReadLength() + 1
	raw := make([]float64, rows)

	if col == 0 {
		raw[0] = 0
		for i := 1; i < rows; i++ {
			if !r.moves.Has(MoveExtra) {
				raw[i] = r.combiner.Identity()
				continue
			}
			raw[i] = raw[i-1] + e.Extra(i-1, 0)
		}
		return raw
	}

	if !r.moves.Has(MoveDel) {
		raw[0] = r.combiner.Identity()
	} else {
		raw[0] = get(col-1, 0) + e.Del(0, col-1)
	}

	for i := 1; i < rows; i++ {
		var cands []float64
		if r.moves.Has(MoveInc) {
			cands = append(cands, get(col-1, i-1)+e.Inc(i-1, col-1))
		}
		if r.moves.Has(MoveDel) {
			cands = append(cands, get(col-1, i)+e.Del(i, col-1))
		}
		if r.moves.Has(MoveExtra) {
			cands = append(cands, raw[i-1]+e.Extra(i-1, col))
		}
		if r.moves.Has(MoveMerge) && col >= 2 {
			m := e.Merge(i-1, col-2)
			if !math.IsInf(m, -1) {
				cands = append(cands, get(col-2, i-1)+m)
			}
		}
		raw[i] = r.combiner.Combine(cands...)
	}
	return raw
}

// computeColumnBackward is computeColumn's mirror for β: it scores
// column col given get(c, i), an accessor for already-committed column
// c > col, filling bottom row up, right column first.
func (r *Recursor[M, E, C]) computeColumnBackward(e E, col int, get func(c, i int) float64) []float64 {
	readLen := e.ReadLength()
	rows := readLen + 1
	tplLen := e.TemplateLength()
	raw := make([]float64, rows)

	if col == tplLen {
		raw[readLen] = 0
		for i := readLen - 1; i >= 0; i-- {
			if !r.moves.Has(MoveExtra) {
				raw[i] = r.combiner.Identity()
				continue
			}
			raw[i] = raw[i+1] + e.Extra(i, col)
		}
		return raw
	}

	if !r.moves.Has(MoveDel) {
		raw[readLen] = r.combiner.Identity()
	} else {
		raw[readLen] = get(col+1, readLen) + e.Del(readLen, col)
	}

	for i := readLen - 1; i >= 0; i-- {
		var cands []float64
		if r.moves.Has(MoveInc) {
			cands = append(cands, get(col+1, i+1)+e.Inc(i, col))
		}
		if r.moves.Has(MoveDel) {
			cands = append(cands, get(col+1, i)+e.Del(i, col))
		}
		if r.moves.Has(MoveExtra) {
			cands = append(cands, raw[i+1]+e.Extra(i, col))
		}
		if r.moves.Has(MoveMerge) && col <= tplLen-2 {
			m := e.Merge(i, col)
			if !math.IsInf(m, -1) {
				cands = append(cands, get(col+2, i+1)+m)
			}
		}
		raw[i] = r.combiner.Combine(cands...)
	}
	return raw
}

func (r *Recursor[M, E, C]) checkDims(e E, mat M, method string) error {
	if mat.Rows() != e.ReadLength()+1 || mat.Cols() != e.TemplateLength()+1 {
		return base.WrapKind(base.InvalidInput, method,
			"matrix shape (%d,%d) does not match evaluator (%d,%d)",
			mat.Rows(), mat.Cols(), e.ReadLength()+1, e.TemplateLength()+1)
	}
	return nil
}

// FillAlpha fills alpha left-to-right. If hasGuide is true, guide's band
// at each column (typically a previously filled β matrix) widens the
// band selected for that column.
func (r *Recursor[M, E, C]) FillAlpha(e E, hasGuide bool, guide M, alpha M) error {
	if err := r.checkDims(e, alpha, "Recursor.FillAlpha"); err != nil {
		return err
	}
	cols := e.TemplateLength() + 1
	get := func(c, i int) float64 { return alpha.Get(i, c) }

	var prevStart, prevEnd int
	hasPrev := false
	for col := 0; col < cols; col++ {
		raw := r.computeColumn(e, col, get)

		gs, ge, gok := 0, 0, false
		if hasGuide {
			gs, ge = guide.GetExtent(col)
			gok = gs < ge
		}
		lo, hi := selectBand(raw, gok, gs, ge, hasPrev, prevStart, prevEnd, r.banding)

		if err := alpha.StartEditingColumn(col, lo, hi); err != nil {
			return err
		}
		for i := lo; i < hi; i++ {
			alpha.Set(i, col, raw[i])
		}
		prevStart, prevEnd, hasPrev = lo, hi, true
	}
	return nil
}

// FillBeta fills beta right-to-left, mirroring FillAlpha.
func (r *Recursor[M, E, C]) FillBeta(e E, hasGuide bool, guide M, beta M) error {
	if err := r.checkDims(e, beta, "Recursor.FillBeta"); err != nil {
		return err
	}
	tplLen := e.TemplateLength()
	get := func(c, i int) float64 { return beta.Get(i, c) }

	var prevStart, prevEnd int
	hasPrev := false
	for col := tplLen; col >= 0; col-- {
		raw := r.computeColumnBackward(e, col, get)

		gs, ge, gok := 0, 0, false
		if hasGuide {
			gs, ge = guide.GetExtent(col)
			gok = gs < ge
		}
		lo, hi := selectBand(raw, gok, gs, ge, hasPrev, prevStart, prevEnd, r.banding)

		if err := beta.StartEditingColumn(col, lo, hi); err != nil {
			return err
		}
		for i := lo; i < hi; i++ {
			beta.Set(i, col, raw[i])
		}
		prevStart, prevEnd, hasPrev = lo, hi, true
	}
	return nil
}

// terminalCell returns the cell Alignment and FillAlphaBeta treat as
// the end of the alignment: (ReadLength, TemplateLength) if e.PinEnd(),
// otherwise whichever cell on the last row or column scores highest.
func (r *Recursor[M, E, C]) terminalCell(e E, alpha M) (i, j int) {
	readLen, tplLen := e.ReadLength(), e.TemplateLength()
	if e.PinEnd() {
		return readLen, tplLen
	}
	besti, bestj, bestv := readLen, tplLen, r.combiner.Identity()
	for j := 0; j <= tplLen; j++ {
		if v := alpha.Get(readLen, j); v > bestv {
			besti, bestj, bestv = readLen, j, v
		}
	}
	for i := 0; i <= readLen; i++ {
		if v := alpha.Get(i, tplLen); v > bestv {
			besti, bestj, bestv = i, tplLen, v
		}
	}
	return besti, bestj
}

// originCell is terminalCell's mirror for β: (0, 0) if e.PinStart(),
// otherwise whichever cell on the first row or column scores highest.
func (r *Recursor[M, E, C]) originCell(e E, beta M) (i, j int) {
	if e.PinStart() {
		return 0, 0
	}
	readLen, tplLen := e.ReadLength(), e.TemplateLength()
	besti, bestj, bestv := 0, 0, r.combiner.Identity()
	for j := 0; j <= tplLen; j++ {
		if v := beta.Get(0, j); v > bestv {
			besti, bestj, bestv = 0, j, v
		}
	}
	for i := 0; i <= readLen; i++ {
		if v := beta.Get(i, 0); v > bestv {
			besti, bestj, bestv = i, 0, v
		}
	}
	return besti, bestj
}

// TerminalScore returns α's total alignment score at its terminal cell.
func (r *Recursor[M, E, C]) TerminalScore(e E, alpha M) float64 {
	i, j := r.terminalCell(e, alpha)
	return alpha.Get(i, j)
}

// OriginScore returns β's total alignment score at its origin cell.
func (r *Recursor[M, E, C]) OriginScore(e E, beta M) float64 {
	i, j := r.originCell(e, beta)
	return beta.Get(i, j)
}

// FillAlphaBeta fills alpha, then fills beta using alpha as a banding
// guide, then refills each using the other as a banding guide until
// alpha's terminal score and beta's origin score agree
// within tolerance (default 1e-3, see WithTolerance) or maxRefills
// additional passes (default 2, see WithMaxRefills) are exhausted, in
// which case it returns a base.ErrAlphaBetaMismatch-wrapped error.
func (r *Recursor[M, E, C]) FillAlphaBeta(e E, alpha M, beta M) error {
	if err := r.FillAlpha(e, false, alpha, alpha); err != nil {
		return err
	}
	if err := r.FillBeta(e, true, alpha, beta); err != nil {
		return err
	}

	for attempt := 0; attempt <= r.cfg.maxRefills; attempt++ {
		aScore := r.TerminalScore(e, alpha)
		bScore := r.OriginScore(e, beta)
		if math.Abs(aScore-bScore) <= r.cfg.tolerance {
			return nil
		}
		if attempt == r.cfg.maxRefills {
			return base.WrapKind(base.AlphaBetaMismatch, "Recursor.FillAlphaBeta",
				"alpha=%.6f beta=%.6f diff=%.6g exceeds tolerance %.6g after %d refills",
				aScore, bScore, math.Abs(aScore-bScore), r.cfg.tolerance, r.cfg.maxRefills)
		}
		if err := r.FillAlpha(e, true, beta, alpha); err != nil {
			return err
		}
		if err := r.FillBeta(e, true, alpha, beta); err != nil {
			return err
		}
	}
	return nil
}

// ExtendAlpha recomputes the two columns [columnBegin, columnBegin+2)
// into ext, using alphaIn's column columnBegin-1 (and, where a merge
// reaches further back, columnBegin-2) as the left boundary. It is the
// cheap path for rescoring a template mutation localized near
// columnBegin without refilling the whole matrix.
func (r *Recursor[M, E, C]) ExtendAlpha(e E, alphaIn M, columnBegin int, ext M) error {
	cols := e.TemplateLength() + 1
	if columnBegin < 1 || columnBegin >= cols {
		return base.WrapKind(base.InvalidInput, "Recursor.ExtendAlpha",
			"columnBegin %d out of [1,%d)", columnBegin, cols)
	}
	if err := r.checkDims(e, ext, "Recursor.ExtendAlpha"); err != nil {
		return err
	}

	endCol := columnBegin + 2
	if endCol > cols {
		endCol = cols
	}
	get := func(c, i int) float64 {
		if c < columnBegin {
			return alphaIn.Get(i, c)
		}
		return ext.Get(i, c)
	}

	prevStart, prevEnd := alphaIn.GetExtent(columnBegin - 1)
	hasPrev := prevStart < prevEnd
	for col := columnBegin; col < endCol; col++ {
		raw := r.computeColumn(e, col, get)
		lo, hi := selectBand(raw, false, 0, 0, hasPrev, prevStart, prevEnd, r.banding)
		if err := ext.StartEditingColumn(col, lo, hi); err != nil {
			return err
		}
		for i := lo; i < hi; i++ {
			ext.Set(i, col, raw[i])
		}
		prevStart, prevEnd, hasPrev = lo, hi, true
	}
	return nil
}

// LinkAlphaBeta joins an α matrix filled through column alphaColumn and
// a β matrix filled back to column betaColumn, returning the overall
// alignment score obtained by summing their per-row joint scores at
// absoluteColumn and reducing the result with the Recursor's combiner.
func (r *Recursor[M, E, C]) LinkAlphaBeta(e E, alpha M, alphaColumn int, beta M, betaColumn int, absoluteColumn int) float64 {
	_, _ = alphaColumn, betaColumn // documents which columns must already be filled; the join itself only reads absoluteColumn
	rows := e.ReadLength() + 1
	scores := make([]float64, 0, rows)
	for i := 0; i < rows; i++ {
		a := alpha.Get(i, absoluteColumn)
		b := beta.Get(i, absoluteColumn)
		if math.IsInf(a, -1) || math.IsInf(b, -1) {
			continue
		}
		scores = append(scores, a+b)
	}
	if len(scores) == 0 {
		return r.combiner.Identity()
	}
	return r.combiner.Combine(scores...)
}
