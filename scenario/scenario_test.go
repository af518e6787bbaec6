package scenario

import (
	"testing"

	"github.com/ash-project/crux/cnf"
	"github.com/ash-project/crux/expr"
	"github.com/ash-project/crux/sat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	sat.SetDefaultBackend(sat.NewNaiveBackend())
}

func TestSatisfyingScenariosOrDisjunction(t *testing.T) {
	a, b := expr.Var[string]("a"), expr.Var[string]("b")
	f := cnf.FromExpression(expr.Or(a, b))

	got := SatisfyingScenarios(f, Options[string]{})
	assert.ElementsMatch(t, []Scenario[string]{
		{"a": true},
		{"b": true},
	}, got)
}

func TestSatisfyingScenariosEmptyFormula(t *testing.T) {
	f := cnf.FromExpression[string](expr.Const[string](true))
	got := SatisfyingScenarios(f, Options[string]{})
	require.Len(t, got, 1)
	assert.Empty(t, got[0])
}

func TestSatisfyingScenariosUnsatFormula(t *testing.T) {
	a := expr.Var[string]("a")
	f := cnf.FromExpression(expr.And(a, expr.Not[string](a)))
	got := SatisfyingScenarios(f, Options[string]{})
	assert.Empty(t, got)
}

func TestSatisfyingScenariosForwardImplication(t *testing.T) {
	a, b, c := expr.Var[string]("a"), expr.Var[string]("b"), expr.Var[string]("c")
	f := cnf.FromExpression(expr.And(expr.And(a, b), c))

	implies := func(u, v string) bool { return u == "a" && v == "b" }
	got := SatisfyingScenarios(f, Options[string]{Implies: implies})

	require.Len(t, got, 1)
	assert.Equal(t, Scenario[string]{"a": true, "c": true}, got[0])
}

func TestSatisfyingScenariosConflictsPruneModels(t *testing.T) {
	a, b := expr.Var[string]("a"), expr.Var[string]("b")
	f := cnf.FromExpression(expr.Or(a, b))

	conflicts := func(u, v string) bool {
		return (u == "a" && v == "b") || (u == "b" && v == "a")
	}
	got := SatisfyingScenarios(f, Options[string]{Conflicts: conflicts})

	assert.ElementsMatch(t, []Scenario[string]{
		{"a": true},
		{"b": true},
	}, got)
}

func TestSatisfyingScenariosDeduplicatesAndMinimizes(t *testing.T) {
	a, b := expr.Var[string]("a"), expr.Var[string]("b")
	f := cnf.FromExpression(expr.And(expr.Or(a, b), expr.Or(a, b)))

	got := SatisfyingScenarios(f, Options[string]{})
	// {a,b} is a strict superset of both {a} and {b}: it gets enumerated as
	// its own model, survives dedup (it isn't a repeat of either), and is
	// dropped only by the minimality pass.
	assert.ElementsMatch(t, []Scenario[string]{
		{"a": true},
		{"b": true},
	}, got)
}
