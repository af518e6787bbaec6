package main

import (
	"fmt"

	"github.com/ash-project/crux/cnf"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newDimacsCmd(logger logrus.FieldLogger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dimacs <file>",
		Short: "convert a Boolean expression to DIMACS CNF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := parseExpressionFile(args[0])
			if err != nil {
				return err
			}
			f := cnf.FromExpression(e)
			logger.WithField("clauses", f.NumClauses()).Debug("crux: formula built")

			fmt.Println(cnf.ToDIMACS(f))
			return nil
		},
	}
	return cmd
}
