package dtree

import (
	"testing"

	"github.com/ash-project/crux/cnf"
	"github.com/ash-project/crux/expr"
)

func TestDecisionTreeAnd(t *testing.T) {
	a, b := expr.Var[string]("a"), expr.Var[string]("b")
	f := cnf.FromExpression(expr.And(a, b))

	got := DecisionTree(f, Options[string]{})

	want := Node("a", Leaf[string](false), Node("b", Leaf[string](false), Leaf[string](true)))
	if !equalTree(got, want) {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestDecisionTreeOr(t *testing.T) {
	a, b := expr.Var[string]("a"), expr.Var[string]("b")
	f := cnf.FromExpression(expr.Or(a, b))

	got := DecisionTree(f, Options[string]{})

	want := Node("a", Node("b", Leaf[string](false), Leaf[string](true)), Leaf[string](true))
	if !equalTree(got, want) {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestDecisionTreeOrWithSorter(t *testing.T) {
	a, b := expr.Var[string]("a"), expr.Var[string]("b")
	f := cnf.FromExpression(expr.Or(a, b))

	descending := func(x, y string) bool { return x > y }
	got := DecisionTree(f, Options[string]{Sorter: descending})

	want := Node("b", Node("a", Leaf[string](false), Leaf[string](true)), Leaf[string](true))
	if !equalTree(got, want) {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestDecisionTreeConstants(t *testing.T) {
	top := cnf.FromExpression[string](expr.Const[string](true))
	if got := DecisionTree(top, Options[string]{}); !got.IsLeaf || !got.Value {
		t.Fatalf("⊤: got %s", got)
	}

	bottom := cnf.FromExpression[string](expr.Const[string](false))
	if got := DecisionTree(bottom, Options[string]{}); !got.IsLeaf || got.Value {
		t.Fatalf("⊥: got %s", got)
	}
}

func TestDecisionTreeIrrelevantVariableCollapses(t *testing.T) {
	a, b := expr.Var[string]("a"), expr.Var[string]("b")
	f := cnf.FromExpression(expr.Or(a, expr.Not[string](a)))
	_ = b

	got := DecisionTree(f, Options[string]{})
	if !got.IsLeaf || !got.Value {
		t.Fatalf("tautology over a: got %s", got)
	}
}

func TestDecisionTreeConflictsPruneBranch(t *testing.T) {
	a, b := expr.Var[string]("a"), expr.Var[string]("b")
	f := cnf.FromExpression(expr.And(a, b))

	conflicts := func(u, v string) bool { return u == "a" && v == "b" }
	got := DecisionTree(f, Options[string]{Conflicts: conflicts})

	// a=false forces ⊥ (a∧b unsat without a); a=true forces b=true, which
	// conflicts with a, so the true branch is also pruned to ⊥. Both
	// branches collapse into a single ⊥ leaf.
	if !got.IsLeaf || got.Value {
		t.Fatalf("got %s, want ⊥", got)
	}
}
