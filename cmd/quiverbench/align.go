package main

import (
	"os"

	"github.com/aquasecurity/table"
	"github.com/spf13/cobra"
)

var alignCmd = &cobra.Command{
	Use:   "align",
	Short: "Render the traceback alignment of --read against --template",
	RunE:  runAlign,
}

func init() {
	rootCmd.AddCommand(alignCmd)
}

func runAlign(cmd *cobra.Command, args []string) error {
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

	aln, err := rec.Alignment(e, alpha)
	if err != nil {
		log.Error("traceback failed", err)
		return err
	}

	t := table.New(os.Stdout)
	t.SetHeaders("", "alignment")
	t.SetHeaderStyle(table.StyleBold)
	t.SetLineStyle(table.StyleBlue)
	t.SetDividers(table.UnicodeRoundedDividers)
	t.AddRow("target", aln.Target)
	t.AddRow("query", aln.Query)
	t.AddRow("transcript", aln.Transcript)
	t.Render()

	return nil
}
