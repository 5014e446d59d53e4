package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pbio/quivercore/base"
	"github.com/pbio/quivercore/evaluator"
	"github.com/pbio/quivercore/mutation"
	"github.com/pbio/quivercore/quiverlog"
)

var flagRounds int

var refineCmd = &cobra.Command{
	Use:   "refine",
	Short: "Greedily apply the single best-scoring mutation per round",
	Long: `refine is a minimal stand-in for the outer greedy mutation search loop
that drives real consensus calling: each round it tries every
single-base substitution, insertion, and deletion against the current
template, keeps whichever improves the Viterbi score the most, and
applies it before the next round.`,
	RunE: runRefine,
}

func init() {
	refineCmd.Flags().IntVar(&flagRounds, "rounds", 1, "number of greedy refinement rounds")
	rootCmd.AddCommand(refineCmd)
}

// candidateMutations never fails: every (Type, Position, Base) combo it
// builds is within range for tpl and uses a valid Base, so mutation.New's
// error is always nil here.
func candidateMutations(tpl base.Sequence) []mutation.Mutation {
	alphabet := []base.Base{base.A, base.C, base.G, base.T}
	var out []mutation.Mutation
	for p := 0; p < len(tpl); p++ {
		for _, b := range alphabet {
			if b != tpl[p] {
				if m, err := mutation.New(mutation.Substitution, p, b); err == nil {
					out = append(out, m)
				}
			}
			if m, err := mutation.New(mutation.Insertion, p, b); err == nil {
				out = append(out, m)
			}
		}
		if m, err := mutation.New(mutation.Deletion, p, base.Gap); err == nil {
			out = append(out, m)
		}
	}
	return out
}

// scoreTemplate fills a fresh alpha matrix for tpl against e's read and
// returns the Viterbi terminal score, leaving e's own template
// untouched.
func scoreTemplate(e *evaluator.QvEvaluator, tpl base.Sequence) (float64, error) {
	saved := e.Template()
	e.SetTemplate(tpl)
	defer e.SetTemplate(saved)

	alpha, err := newAlphaMatrix(e)
	if err != nil {
		return 0, err
	}
	rec := newViterbiRecursor()
	if err := rec.FillAlpha(e, false, alpha, alpha); err != nil {
		return 0, err
	}
	return rec.TerminalScore(e, alpha), nil
}

func runRefine(cmd *cobra.Command, args []string) error {
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	e, err := newEvaluator()
	if err != nil {
		log.Error("failed to build evaluator", err)
		return err
	}

	tpl := e.Template()
	best, err := scoreTemplate(e, tpl)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "round 0: template=%s score=%.4f\n", tpl.String(), best)

	for round := 1; round <= flagRounds; round++ {
		var bestMutation *mutation.Mutation
		bestNext := tpl
		bestScore := best

		for _, m := range candidateMutations(tpl) {
			candidate, err := mutation.ApplyMutation(m, tpl)
			if err != nil {
				continue // e.g. a deletion or substitution past a shrinking template
			}
			score, err := scoreTemplate(e, candidate)
			if err != nil {
				return err
			}
			accepted := score > bestScore
			log.MutationTrace(m.String(), score-best, accepted)
			if accepted {
				mCopy := m
				bestMutation = &mCopy
				bestNext = candidate
				bestScore = score
			}
		}

		if bestMutation == nil {
			fmt.Fprintf(cmd.OutOrStdout(), "round %d: no improving mutation found, stopping\n", round)
			break
		}
		tpl, best = bestNext, bestScore
		fmt.Fprintf(cmd.OutOrStdout(), "round %d: applied %s -> template=%s score=%.4f\n",
			round, bestMutation.String(), tpl.String(), best)
	}

	return nil
}
