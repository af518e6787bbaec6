package cnf

import (
	"testing"

	"github.com/ash-project/crux/expr"
)

func TestFromExpressionConstants(t *testing.T) {
	top := FromExpression(expr.Const[string](true))
	if top.NumClauses() != 0 || top.NumVars() != 0 {
		t.Errorf("⊤: got %d clauses, %d vars", top.NumClauses(), top.NumVars())
	}

	bottom := FromExpression(expr.Const[string](false))
	if !bottom.IsCanonicalUnsat() {
		t.Errorf("⊥: expected canonical unsat encoding, got %v", bottom.Clauses)
	}
}

func TestFromExpressionSimpleAnd(t *testing.T) {
	a, b := expr.Var[string]("a"), expr.Var[string]("b")
	f := FromExpression(expr.And(a, b))
	if f.NumVars() != 2 || f.NumClauses() != 2 {
		t.Fatalf("got %d vars, %d clauses", f.NumVars(), f.NumClauses())
	}
	for _, c := range f.Clauses {
		if len(c) != 1 {
			t.Errorf("expected unit clauses, got %v", c)
		}
	}
}

func TestFromExpressionOr(t *testing.T) {
	a, b := expr.Var[string]("a"), expr.Var[string]("b")
	f := FromExpression(expr.Or(a, b))
	if f.NumClauses() != 1 {
		t.Fatalf("expected a single clause, got %d", f.NumClauses())
	}
	if len(f.Clauses[0]) != 2 {
		t.Errorf("expected a 2-literal clause, got %v", f.Clauses[0])
	}
}

func TestFromExpressionUnsatContradiction(t *testing.T) {
	a := expr.Var[string]("a")
	f := FromExpression(expr.And(a, expr.Not(a)))
	if !f.IsCanonicalUnsat() {
		t.Errorf("a & !a should canonicalize to unsat, got %v / %v", f.Clauses, f.Bindings())
	}
}

func TestFromExpressionDistributesToConjunctionOfClauses(t *testing.T) {
	// (a & !b) | (!c & d): every clause must be non-unit, since none of
	// the four variables here are independently forced.
	a, b, c, d := expr.Var[string]("a"), expr.Var[string]("b"), expr.Var[string]("c"), expr.Var[string]("d")
	f := FromExpression(expr.Or(expr.And(a, expr.Not(b)), expr.And(expr.Not(c), d)))
	if f.NumClauses() != 4 {
		t.Fatalf("expected 4 clauses, got %d: %v", f.NumClauses(), f.Clauses)
	}
	for _, cl := range f.Clauses {
		if len(cl) != 2 {
			t.Errorf("expected 2-literal clauses, got %v", cl)
		}
	}
}

func TestRoundTripPreservesSatisfiability(t *testing.T) {
	a, b, c := expr.Var[string]("a"), expr.Var[string]("b"), expr.Var[string]("c")
	original := expr.Or(expr.And(a, b), expr.Not(c))
	f := FromExpression(original)
	back := ToExpression(f)

	assignments := []map[string]bool{
		{"a": true, "b": true, "c": true},
		{"a": false, "b": false, "c": false},
		{"a": true, "b": false, "c": false},
	}
	for _, m := range assignments {
		oracle := func(v string) bool { return m[v] }
		if got, want := expr.Run(back, oracle), expr.Run(original, oracle); got != want {
			t.Errorf("assignment %v: roundtrip eval %v, original eval %v", m, got, want)
		}
	}
}

func TestToExpressionConstants(t *testing.T) {
	if _, ok := expr.AsConst(ToExpression(emptyFormula[string]())); !ok {
		t.Errorf("expected constant from empty formula")
	}
	if b, ok := expr.AsConst(ToExpression(unsatFormula[string]())); !ok || b {
		t.Errorf("expected ⊥ from canonical unsat formula")
	}
}
