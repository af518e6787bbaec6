package main

import (
	"fmt"

	"github.com/ash-project/crux/cnf"
	"github.com/ash-project/crux/sat"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// newSolveDimacsCmd solves an external DIMACS CNF file directly, bypassing
// expression parsing entirely: this is the round-trip path spec's cnf
// package keeps ParseDIMACS for, letting crux act on CNF produced by
// another tool rather than only CNF it derived itself.
func newSolveDimacsCmd(logger logrus.FieldLogger) *cobra.Command {
	var naive bool

	cmd := &cobra.Command{
		Use:   "solve-dimacs <file>",
		Short: "solve a raw DIMACS CNF file, printing a model or reporting it unsatisfiable",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := openInput(args[0])
			if err != nil {
				return err
			}
			defer r.Close()

			clauses, nbVars, err := cnf.ParseDIMACS(r)
			if err != nil {
				return err
			}
			logger.WithField("clauses", len(clauses)).Debug("crux: dimacs parsed")

			backend := sat.DefaultBackend()
			if naive {
				backend = sat.NewNaiveBackend()
			}
			result := backend.Solve(clauses, nbVars)
			switch result.Status {
			case sat.Sat:
				printSignedModel(result.Model)
			default:
				fmt.Println("unsat")
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&naive, "naive", false, "use the brute-force reference backend instead of the default")
	return cmd
}

func printSignedModel(model []int) {
	for _, lit := range model {
		if lit < 0 {
			fmt.Printf("%d=false\n", -lit)
			continue
		}
		fmt.Printf("%d=true\n", lit)
	}
}
