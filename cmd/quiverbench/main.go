// Command quiverbench drives the quivercore library end to end over a
// synthetic or user-supplied (read, template) pair: it is a thin demo
// harness for the Evaluator/Recursor stack, not a production consensus
// caller.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
