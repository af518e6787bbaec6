package main

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/ash-project/crux/validate"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newValidateCmd(logger logrus.FieldLogger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "validate an assignment file (one \"name true|false\" pair per line)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pairs, err := parseAssignmentFile(args[0])
			if err != nil {
				return err
			}
			logger.WithField("assignments", len(pairs)).Debug("crux: assignments parsed")

			accepted, err := validate.ValidateAssignments(pairs, validate.Options[string]{})
			if err != nil {
				fmt.Println("unsat")
				return nil
			}
			for _, p := range accepted {
				fmt.Printf("%s=%t\n", p.Var, p.Value)
			}
			return nil
		},
	}
	return cmd
}

func parseAssignmentFile(path string) ([]validate.Pair[string], error) {
	r, err := openInput(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var pairs []validate.Pair[string]
	scanner := bufio.NewScanner(r)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, errors.Errorf("%s:%d: expected \"name true|false\", got %q", path, lineNo, line)
		}
		b, err := strconv.ParseBool(fields[1])
		if err != nil {
			return nil, errors.Wrapf(err, "%s:%d: invalid boolean %q", path, lineNo, fields[1])
		}
		pairs = append(pairs, validate.Pair[string]{Var: fields[0], Value: b})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading %q", path)
	}
	return pairs, nil
}
