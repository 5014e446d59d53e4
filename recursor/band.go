package recursor

import "github.com/pbio/quivercore/qvmodel"

// rangeUnion returns the smallest half-open range covering both [aStart,
// aEnd) and [bStart, bEnd), treating an empty range ([0,0) or any range
// with start>=end) as absent. Grounded on RecursorBase's RangeUnion,
// used to widen a column's live band to cover a guide matrix's band at
// the same column.
func rangeUnion(aStart, aEnd, bStart, bEnd int) (start, end int) {
	aEmpty := aStart >= aEnd
	bEmpty := bStart >= bEnd
	switch {
	case aEmpty && bEmpty:
		return 0, 0
	case aEmpty:
		return bStart, bEnd
	case bEmpty:
		return aStart, aEnd
	}
	start = aStart
	if bStart < start {
		start = bStart
	}
	end = aEnd
	if bEnd > end {
		end = bEnd
	}
	return start, end
}

// selectBand picks the live row band to store for a freshly computed
// column: every row within opts.ScoreDiff of the column's best score,
// widened to cover the guide band (if any) at this column, then clamped
// so it overlaps the previous column's band by at least one row and
// never shifts from it by more than opts.DiagCross rows. Banding here is
// a storage policy applied after scoring the full column rather than a
// restriction on the scoring domain itself: raw is always computed over
// every row, and only the selected subset is persisted.
func selectBand(raw []float64, hasGuide bool, guideStart, guideEnd int, hasPrev bool, prevStart, prevEnd int, opts qvmodel.BandingOptions) (start, end int) {
	rows := len(raw)
	best := ViterbiCombiner{}.Identity()
	for _, v := range raw {
		if v > best {
			best = v
		}
	}

	lo, hi := rows, 0
	for i, v := range raw {
		if v >= best-opts.ScoreDiff {
			if i < lo {
				lo = i
			}
			if i+1 > hi {
				hi = i + 1
			}
		}
	}
	if lo >= hi {
		center := 0
		if hasPrev && prevStart < prevEnd {
			center = (prevStart + prevEnd) / 2
		}
		lo, hi = center, center+1
	}

	if hasGuide {
		lo, hi = rangeUnion(lo, hi, guideStart, guideEnd)
	}

	if hasPrev && prevStart < prevEnd {
		if lo >= prevEnd {
			lo = prevEnd - 1
		}
		if hi <= prevStart {
			hi = prevStart + 1
		}
		if lo < prevStart-opts.DiagCross {
			lo = prevStart - opts.DiagCross
		}
		if hi > prevEnd+opts.DiagCross {
			hi = prevEnd + opts.DiagCross
		}
	}

	if lo < 0 {
		lo = 0
	}
	if hi > rows {
		hi = rows
	}
	if lo >= hi {
		lo, hi = 0, rows
	}
	return lo, hi
}
