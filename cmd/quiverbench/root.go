package main

import (
	"github.com/spf13/cobra"

	"github.com/pbio/quivercore/base"
	"github.com/pbio/quivercore/evaluator"
	"github.com/pbio/quivercore/qvfeatures"
	"github.com/pbio/quivercore/qvmodel"
	"github.com/pbio/quivercore/quiverlog"
)

var (
	flagTemplate string
	flagRead     string
	flagPinStart bool
	flagPinEnd   bool
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:   "quiverbench",
	Short: "Exercise the quivercore pair-HMM alignment core",
	Long: `quiverbench scores and aligns one read against one template using the
quivercore Evaluator and Recursor, with flat quality values and
demonstration (unfitted) model parameters. It exists to demonstrate and sanity-check the library, not
to call consensus on real PacBio data.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagTemplate, "template", "", "template sequence (A/C/G/T)")
	rootCmd.PersistentFlags().StringVar(&flagRead, "read", "", "read sequence (A/C/G/T)")
	rootCmd.PersistentFlags().BoolVar(&flagPinStart, "pin-start", true, "require the alignment to start at (0,0)")
	rootCmd.PersistentFlags().BoolVar(&flagPinEnd, "pin-end", true, "require the alignment to end at (ReadLength,TemplateLength)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "log level: debug, info, warn, error")

	_ = rootCmd.MarkPersistentFlagRequired("template")
	_ = rootCmd.MarkPersistentFlagRequired("read")
}

// newLogger builds the shared quiverlog.Logger from the --log-level
// flag.
func newLogger() (*quiverlog.Logger, error) {
	return quiverlog.New(flagLogLevel)
}

// newEvaluator builds a QvEvaluator from flagTemplate/flagRead with flat
// (zero) quality values: quiverbench is a scoring demonstration, not a
// feature-loading pipeline, so every QV track is uniform.
func newEvaluator() (*evaluator.QvEvaluator, error) {
	seq := base.NewSequence(flagRead)
	flat := make([]float64, len(seq))
	delTag := make([]float64, len(seq))
	for i, b := range seq {
		delTag[i] = float64(b)
	}
	f, err := qvfeatures.New(seq, flat, flat, flat, delTag, flat)
	if err != nil {
		return nil, err
	}
	return evaluator.New(f, base.NewSequence(flagTemplate), qvmodel.DefaultQvModelParams(), flagPinStart, flagPinEnd)
}
