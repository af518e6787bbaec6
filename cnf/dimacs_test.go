package cnf

import (
	"strconv"
	"strings"
	"testing"

	"github.com/ash-project/crux/expr"
)

func TestToDIMACSExamples(t *testing.T) {
	a, b := expr.Var[string]("a"), expr.Var[string]("b")

	cases := []struct {
		name string
		f    Formula[string]
		want string
	}{
		{"and", FromExpression(expr.And(a, b)), "p cnf 2 2\n1 0\n2 0"},
		{"or", FromExpression(expr.Or(a, b)), "p cnf 2 1\n1 2 0"},
		{"not", FromExpression(expr.Not(a)), "p cnf 1 1\n-1 0"},
	}
	for _, c := range cases {
		if got := ToDIMACS(c.f); got != c.want {
			t.Errorf("%s: got %q, want %q", c.name, got, c.want)
		}
	}
}

func TestDIMACSWellFormed(t *testing.T) {
	a, b, c := expr.Var[string]("a"), expr.Var[string]("b"), expr.Var[string]("c")
	f := FromExpression(expr.Or(expr.And(a, b), expr.Not(c)))
	dimacs := ToDIMACS(f)
	lines := strings.Split(dimacs, "\n")

	header := strings.Fields(lines[0])
	if len(header) != 4 || header[0] != "p" || header[1] != "cnf" {
		t.Fatalf("bad header %q", lines[0])
	}
	n, err := strconv.Atoi(header[2])
	if err != nil {
		t.Fatalf("bad var count: %v", err)
	}
	m, err := strconv.Atoi(header[3])
	if err != nil {
		t.Fatalf("bad clause count: %v", err)
	}
	if n != f.NumVars() || m != f.NumClauses() {
		t.Errorf("header %d/%d does not match formula %d/%d", n, m, f.NumVars(), f.NumClauses())
	}
	if len(lines)-1 != m {
		t.Errorf("expected %d clause lines, got %d", m, len(lines)-1)
	}
	for _, l := range lines[1:] {
		if !strings.HasSuffix(l, " 0") && l != "0" {
			t.Errorf("clause line %q does not end in \" 0\"", l)
		}
	}
}

func TestParseDIMACSRoundTrip(t *testing.T) {
	a, b := expr.Var[string]("a"), expr.Var[string]("b")
	f := FromExpression(expr.Or(a, b))
	clauses, nbVars, err := ParseDIMACS(strings.NewReader(ToDIMACS(f)))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if nbVars != f.NumVars() {
		t.Errorf("got %d vars, want %d", nbVars, f.NumVars())
	}
	if len(clauses) != f.NumClauses() {
		t.Errorf("got %d clauses, want %d", len(clauses), f.NumClauses())
	}
}
