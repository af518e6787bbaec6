package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAssignmentsForwardFilterDropsRedundant(t *testing.T) {
	assignments := []Pair[string]{{"a", true}, {"b", true}}
	implies := func(u, v string) bool { return u == "a" && v == "b" }

	got, err := ValidateAssignments(assignments, Options[string]{Implies: implies})
	require.NoError(t, err)
	assert.Equal(t, []Pair[string]{{"a", true}}, got)
}

func TestValidateAssignmentsBackwardConflict(t *testing.T) {
	assignments := []Pair[string]{{"a", true}, {"b", false}}
	implies := func(u, v string) bool { return u == "a" && v == "b" }

	_, err := ValidateAssignments(assignments, Options[string]{Implies: implies})
	assert.ErrorIs(t, err, ErrUnsat)
}

func TestValidateAssignmentsConflictCheck(t *testing.T) {
	assignments := []Pair[string]{{"a", true}, {"b", true}}
	conflicts := func(u, v string) bool { return u == "a" && v == "b" }

	_, err := ValidateAssignments(assignments, Options[string]{Conflicts: conflicts})
	assert.ErrorIs(t, err, ErrUnsat)
}

func TestValidateAssignmentsFalseNeverConflicts(t *testing.T) {
	assignments := []Pair[string]{{"a", false}, {"b", false}}
	conflicts := func(u, v string) bool { return true }

	got, err := ValidateAssignments(assignments, Options[string]{Conflicts: conflicts})
	require.NoError(t, err)
	assert.Equal(t, assignments, got)
}

func TestValidateAssignmentsSorterControlsOrder(t *testing.T) {
	assignments := []Pair[string]{{"b", true}, {"a", true}}
	implies := func(u, v string) bool { return u == "a" && v == "b" }
	sorter := func(x, y string) bool { return x < y }

	got, err := ValidateAssignments(assignments, Options[string]{Implies: implies, Sorter: sorter})
	require.NoError(t, err)
	assert.Equal(t, []Pair[string]{{"a", true}}, got)
}

func TestValidateAssignmentsNoTheoryKeepsEverything(t *testing.T) {
	assignments := []Pair[string]{{"a", true}, {"b", false}, {"c", true}}
	got, err := ValidateAssignments(assignments, Options[string]{})
	require.NoError(t, err)
	assert.Equal(t, assignments, got)
}
