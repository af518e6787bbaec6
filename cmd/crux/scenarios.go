package main

import (
	"fmt"
	"sort"

	"github.com/ash-project/crux/cnf"
	"github.com/ash-project/crux/scenario"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newScenariosCmd(logger logrus.FieldLogger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scenarios <file>",
		Short: "enumerate minimized satisfying scenarios for a Boolean expression",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := parseExpressionFile(args[0])
			if err != nil {
				return err
			}
			f := cnf.FromExpression(e)
			logger.WithField("clauses", f.NumClauses()).Debug("crux: formula built")

			scenarios := scenario.SatisfyingScenarios(f, scenario.Options[string]{})
			if len(scenarios) == 0 {
				fmt.Println("unsat")
				return nil
			}
			for _, s := range scenarios {
				fmt.Println(formatScenario(s))
			}
			return nil
		},
	}
	return cmd
}

func formatScenario(s scenario.Scenario[string]) string {
	vars := make([]string, 0, len(s))
	for v := range s {
		vars = append(vars, v)
	}
	sort.Strings(vars)
	out := ""
	for i, v := range vars {
		if i > 0 {
			out += ", "
		}
		out += v
	}
	if out == "" {
		return "{}"
	}
	return "{" + out + "}"
}
