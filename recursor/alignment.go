package recursor

import (
	"math"
	"strings"

	"github.com/pbio/quivercore/alignment"
	"github.com/pbio/quivercore/base"
)

const tieEpsilon = 1e-6

// tracebackCandidate is one possible predecessor of a DP cell, in the
// tie-break priority order Match > Substitution > Insertion > Deletion
// > Merge. Inc candidates disambiguate Match from Substitution once
// chosen, by comparing the actual bases.
type tracebackCandidate struct {
	pi, pj     int
	moveScore  float64
	kind       byte // 'c' Inc, 'i' Extra, 'd' Del, 'm' Merge
}

func (r *Recursor[M, E, C]) candidatesAt(e E, i, j int) []tracebackCandidate {
	var cands []tracebackCandidate
	if r.moves.Has(MoveInc) && i >= 1 && j >= 1 {
		cands = append(cands, tracebackCandidate{i - 1, j - 1, e.Inc(i-1, j-1), 'c'})
	}
	if r.moves.Has(MoveExtra) && i >= 1 {
		cands = append(cands, tracebackCandidate{i - 1, j, e.Extra(i-1, j), 'i'})
	}
	if r.moves.Has(MoveDel) && j >= 1 {
		cands = append(cands, tracebackCandidate{i, j - 1, e.Del(i, j-1), 'd'})
	}
	if r.moves.Has(MoveMerge) && i >= 1 && j >= 2 {
		m := e.Merge(i-1, j-2)
		if !math.IsInf(m, -1) {
			cands = append(cands, tracebackCandidate{i - 1, j - 2, m, 'm'})
		}
	}
	return cands
}

// Alignment traces back through a filled α matrix from its terminal
// cell to (0, 0), reconstructing the target- and query-aligned strings
// and the transcript relating them. It is defined for matrices filled
// under ViterbiCombiner; tracing back a Forward (SumCombiner) matrix,
// which has no single best path, falls back to the highest-scoring
// predecessor at each step.
func (r *Recursor[M, E, C]) Alignment(e E, alpha M) (*alignment.PairwiseAlignment, error) {
	read, tpl := e.Read(), e.Template()
	i, j := r.terminalCell(e, alpha)

	var target, query, transcript strings.Builder
	for i > 0 || j > 0 {
		cands := r.candidatesAt(e, i, j)
		if len(cands) == 0 {
			return nil, base.WrapKind(base.Internal, "Recursor.Alignment",
				"no legal predecessor at cell (i=%d, j=%d)", i, j)
		}

		target0 := alpha.Get(i, j)
		chosen := cands[0]
		found := false
		for _, c := range cands {
			if math.Abs(alpha.Get(c.pi, c.pj)+c.moveScore-target0) <= tieEpsilon {
				chosen = c
				found = true
				break
			}
		}
		if !found {
			best := cands[0]
			bestScore := alpha.Get(best.pi, best.pj) + best.moveScore
			for _, c := range cands[1:] {
				if s := alpha.Get(c.pi, c.pj) + c.moveScore; s > bestScore {
					best, bestScore = c, s
				}
			}
			chosen = best
		}

		switch chosen.kind {
		case 'c':
			if read[i-1] == tpl[j-1] {
				transcript.WriteByte('M')
			} else {
				transcript.WriteByte('R')
			}
			target.WriteByte(byte(tpl[j-1]))
			query.WriteByte(byte(read[i-1]))
		case 'i':
			transcript.WriteByte('I')
			target.WriteByte('-')
			query.WriteByte(byte(read[i-1]))
		case 'd':
			transcript.WriteByte('D')
			target.WriteByte(byte(tpl[j-1]))
			query.WriteByte('-')
		case 'm':
			// A merge collapses two identical template bases (j-2, j-1)
			// against one read base: j-2 takes the match, j-1 has no
			// corresponding read base. Builder writes land in the final
			// string reversed, so the j-1/gap pair is written first here
			// to come out second after reverseString.
			transcript.WriteByte('D')
			target.WriteByte(byte(tpl[j-1]))
			query.WriteByte('-')
			transcript.WriteByte('M')
			target.WriteByte(byte(tpl[j-2]))
			query.WriteByte(byte(read[i-1]))
		}
		i, j = chosen.pi, chosen.pj
	}

	result := &alignment.PairwiseAlignment{
		Target:     reverseString(target.String()),
		Query:      reverseString(query.String()),
		Transcript: reverseString(transcript.String()),
	}
	return result, nil
}

func reverseString(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}
