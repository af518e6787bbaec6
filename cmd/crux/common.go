package main

import (
	"io"
	"os"

	"github.com/ash-project/crux/expr"
	"github.com/pkg/errors"
)

// openInput opens path for reading, treating "-" as stdin, matching
// gophersat's own CLI convention of taking a file path argument.
func openInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %q", path)
	}
	return f, nil
}

// parseExpressionFile reads and parses a textual Boolean expression from
// path, per expr.Parse's grammar.
func parseExpressionFile(path string) (expr.Expression[string], error) {
	r, err := openInput(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	e, err := expr.Parse(r)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %q", path)
	}
	return e, nil
}
