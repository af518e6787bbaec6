package main

import (
	"fmt"
	"sort"

	"github.com/ash-project/crux/cnf"
	"github.com/ash-project/crux/sat"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newSolveCmd(logger logrus.FieldLogger) *cobra.Command {
	var naive bool

	cmd := &cobra.Command{
		Use:   "solve <file>",
		Short: "solve a Boolean expression, printing a model or reporting it unsatisfiable",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := parseExpressionFile(args[0])
			if err != nil {
				return err
			}
			f := cnf.FromExpression(e)
			logger.WithField("clauses", f.NumClauses()).Debug("crux: formula built")

			backend := sat.DefaultBackend()
			if naive {
				backend = sat.NewNaiveBackend()
			}
			model, err := sat.SolveWith(f, backend)
			if err != nil {
				fmt.Println("unsat")
				return nil
			}
			printModel(model)
			return nil
		},
	}
	cmd.Flags().BoolVar(&naive, "naive", false, "use the brute-force reference backend instead of the default")
	return cmd
}

func printModel(model map[string]bool) {
	vars := make([]string, 0, len(model))
	for v := range model {
		vars = append(vars, v)
	}
	sort.Strings(vars)
	for _, v := range vars {
		fmt.Printf("%s=%t\n", v, model[v])
	}
}
