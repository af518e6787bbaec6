package sat

import (
	"testing"

	"github.com/ash-project/crux/cnf"
	"github.com/ash-project/crux/expr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllModelsEnumeratesEveryModel(t *testing.T) {
	a, b := expr.Var("a"), expr.Var("b")
	f := cnf.FromExpression(expr.Or[string](a, b))

	models, err := AllModels(f, NewNaiveBackend(), nil)
	require.NoError(t, err)
	assert.Len(t, models, 3)
	for _, m := range models {
		assert.True(t, m["a"] || m["b"])
	}
}

func TestAllModelsUnsatIsEmpty(t *testing.T) {
	a := expr.Var("a")
	f := cnf.FromExpression(expr.And[string](a, expr.Not[string](a)))

	models, err := AllModels(f, NewNaiveBackend(), nil)
	require.NoError(t, err)
	assert.Empty(t, models)
}

func TestAllModelsTautologyIsSingleEmptyModel(t *testing.T) {
	f := cnf.FromExpression[string](expr.Const[string](true))

	models, err := AllModels(f, NewNaiveBackend(), nil)
	require.NoError(t, err)
	require.Len(t, models, 1)
	assert.Empty(t, models[0])
}

func TestAllModelsRejectFiltersButStillTerminates(t *testing.T) {
	a, b := expr.Var("a"), expr.Var("b")
	f := cnf.FromExpression(expr.Or[string](a, b))

	reject := func(model map[string]bool) bool { return model["a"] && model["b"] }
	models, err := AllModels(f, NewNaiveBackend(), reject)
	require.NoError(t, err)
	assert.Len(t, models, 2)
	for _, m := range models {
		assert.False(t, m["a"] && m["b"])
	}
}
