package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pbio/quivercore/bandmatrix"
	"github.com/pbio/quivercore/evaluator"
	"github.com/pbio/quivercore/qvmodel"
	"github.com/pbio/quivercore/recursor"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Print the Viterbi alignment score of --read against --template",
	RunE:  runScore,
}

func init() {
	rootCmd.AddCommand(scoreCmd)
}

// newAlphaMatrix allocates an empty (ReadLength+1) x (TemplateLength+1)
// band matrix, sized for e.
func newAlphaMatrix(e *evaluator.QvEvaluator) (*bandmatrix.Matrix, error) {
	return bandmatrix.New(e.ReadLength()+1, e.TemplateLength()+1)
}

// newViterbiRecursor builds a Recursor over every move type, using the
// default banding policy.
func newViterbiRecursor() *recursor.Recursor[*bandmatrix.Matrix, *evaluator.QvEvaluator, recursor.ViterbiCombiner] {
	return recursor.New[*bandmatrix.Matrix, *evaluator.QvEvaluator](
		recursor.AllMoves, qvmodel.DefaultBandingOptions(), recursor.ViterbiCombiner{})
}

func runScore(cmd *cobra.Command, args []string) error {
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

	alpha, err := newAlphaMatrix(e)
	if err != nil {
		return err
	}
	rec := newViterbiRecursor()
	if err := rec.FillAlpha(e, false, alpha, alpha); err != nil {
		log.Error("failed to fill alpha", err)
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "score: %.4f\n", rec.TerminalScore(e, alpha))
	return nil
}
