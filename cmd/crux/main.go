// Command crux is a thin CLI over the crux library: parse a textual
// Boolean expression, then solve it, enumerate its satisfying scenarios,
// synthesize a decision tree, emit DIMACS, or validate an assignment file.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	logger := logrus.New()
	var debug bool

	cmd := &cobra.Command{
		Use:           "crux",
		Short:         "crux reasons about propositional Boolean expressions",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			if debug {
				logger.SetLevel(logrus.DebugLevel)
			}
		},
	}
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "v", false, "enable debug-level logging")

	cmd.AddCommand(
		newSolveCmd(logger),
		newScenariosCmd(logger),
		newTreeCmd(logger),
		newDimacsCmd(logger),
		newSolveDimacsCmd(logger),
		newValidateCmd(logger),
	)
	return cmd
}
