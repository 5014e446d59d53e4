package evaluator

// Lane4 holds the result of a 4-wide score kernel for read rows
// i, i+1, i+2, i+3 at a fixed template column.
type Lane4 [4]float64

// Inc4 computes Inc(i+k, j) for k in {0,1,2,3} by comparing the read's
// SIMD-aligned float mirror against a broadcast template base, the same
// mask-and-select shape as the scalar Inc, so the two agree bit-for-bit.
func (e *QvEvaluator) Inc4(i, j int) Lane4 {
	if i < 0 || i > e.ReadLength()-4 || j < 0 || j >= e.TemplateLength() {
		internalBoundsPanic("QvEvaluator.Inc4", i, j)
	}
	tplBase := float64(e.template[j])
	var out Lane4
	for k := 0; k < 4; k++ {
		if e.features.SequenceAsFloat[i+k] == tplBase {
			out[k] = e.params.Match
		} else {
			out[k] = e.params.Mismatch + e.params.MismatchS*e.features.SubsQv[i+k]
		}
	}
	return out
}

// Del4 computes Del(i+k, j) for k in {0,1,2,3}. Away from the read's
// boundary rows (i != 0 and i+3 != ReadLength) it compares DelTag
// against a broadcast template base; at the boundary it falls back to
// four scalar calls, because the free-end-gap rule (PinStart/PinEnd) is
// row-dependent and cannot be folded into the comparison.
func (e *QvEvaluator) Del4(i, j int) Lane4 {
	if i < 0 || i > e.ReadLength()-3 || j < 0 || j >= e.TemplateLength() {
		internalBoundsPanic("QvEvaluator.Del4", i, j)
	}
	var out Lane4
	if i != 0 && i+3 != e.ReadLength() {
		tplBase := float64(e.template[j])
		for k := 0; k < 4; k++ {
			if e.features.DelTag[i+k] == tplBase {
				out[k] = e.params.DeletionWithTag + e.params.DeletionWithTagS*e.features.DelQv[i+k]
			} else {
				out[k] = e.params.DeletionN
			}
		}
		return out
	}
	for k := 0; k < 4; k++ {
		out[k] = e.Del(i+k, j)
	}
	return out
}

// Extra4 computes Extra(i+k, j) for k in {0,1,2,3}.
func (e *QvEvaluator) Extra4(i, j int) Lane4 {
	if i < 0 || i > e.ReadLength()-4 || j < 0 || j > e.TemplateLength() {
		internalBoundsPanic("QvEvaluator.Extra4", i, j)
	}
	var out Lane4
	for k := 0; k < 4; k++ {
		out[k] = e.Extra(i+k, j)
	}
	return out
}

// Merge4 computes Merge(i+k, j) for k in {0,1,2,3}. When
// template[j] != template[j+1] a merge is impossible for the whole
// lane, so every element is NegInf without touching the read mirror.
func (e *QvEvaluator) Merge4(i, j int) Lane4 {
	if i < 0 || i > e.ReadLength()-4 || j < 0 || j >= e.TemplateLength()-1 {
		internalBoundsPanic("QvEvaluator.Merge4", i, j)
	}
	var out Lane4
	tplBase := float64(e.template[j])
	tplBaseNext := float64(e.template[j+1])
	if tplBase != tplBaseNext {
		for k := range out {
			out[k] = NegInf
		}
		return out
	}
	for k := 0; k < 4; k++ {
		if e.features.SequenceAsFloat[i+k] == tplBase {
			out[k] = e.params.Merge + e.params.MergeS*e.features.MergeQv[i+k]
		} else {
			out[k] = NegInf
		}
	}
	return out
}

// Burst4 is the 4-wide sibling of Burst; it always panics with
// base.ErrNotYetImplemented for the same reason Burst does.
func (e *QvEvaluator) Burst4(i, j, hpLength int) Lane4 {
	e.Burst(i, j, hpLength) // panics
	return Lane4{}
}
