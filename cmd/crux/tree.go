package main

import (
	"fmt"

	"github.com/ash-project/crux/cnf"
	"github.com/ash-project/crux/dtree"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newTreeCmd(logger logrus.FieldLogger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree <file>",
		Short: "synthesize a decision tree for a Boolean expression",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := parseExpressionFile(args[0])
			if err != nil {
				return err
			}
			f := cnf.FromExpression(e)
			logger.WithField("clauses", f.NumClauses()).Debug("crux: formula built")

			tree := dtree.DecisionTree(f, dtree.Options[string]{})
			fmt.Println(tree.String())
			return nil
		},
	}
	return cmd
}
