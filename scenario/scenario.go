package scenario

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ash-project/crux/cnf"
	"github.com/ash-project/crux/sat"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

// Scenario is a (possibly partial) satisfying assignment: the set of
// variables bound true. Variables absent from a Scenario are, per crux's
// caller-facing convention, treated as false by default.
type Scenario[V comparable] map[V]bool

// Options configures satisfying-scenario minimization. All three fields
// are optional; the zero Options applies no implication reduction and no
// conflict pruning (dedup and the subset-minimality pass still run), and
// sorts variables in the formula's first-seen binding order.
type Options[V comparable] struct {
	// Implies reports whether a true implies b true. Asymmetric; no
	// closure is computed over it.
	Implies func(a, b V) bool
	// Conflicts reports whether a and b can never both be true. Symmetric;
	// any enumerated model setting both is discarded during enumeration.
	Conflicts func(a, b V) bool
	// Sorter orders variables when the algorithm must iterate them. When
	// nil, variables are ordered by the formula's binding index.
	Sorter func(a, b V) bool
}

// SatisfyingScenarios enumerates f's models, discards any that violate
// opts.Conflicts, reduces each to its true variables minus anything a true
// antecedent already implies, dedupes exact repeats, and finally drops any
// scenario whose true variables are a strict superset of another
// scenario's: for a | b the models {a}, {b} and {a, b} yield only {a} and
// {b}.
func SatisfyingScenarios[V comparable](f cnf.Formula[V], opts Options[V]) []Scenario[V] {
	models, err := sat.AllModels(f, sat.DefaultBackend(), conflictRejecter(opts.Conflicts))
	if err != nil {
		logrus.WithError(err).Warn("scenario: model enumeration hit its iteration ceiling; scenarios may be incomplete")
	}

	less := comparator(opts.Sorter, f)

	scenarios := make([]Scenario[V], 0, len(models))
	for _, model := range models {
		trues := trueVars(model)
		sort.Slice(trues, func(i, j int) bool { return less(trues[i], trues[j]) })
		scenarios = append(scenarios, reduce(trues, opts.Implies))
	}

	return minimal(lo.UniqBy(scenarios, scenarioKey[V]))
}

// minimal drops every scenario that is a strict superset (by true-variable
// set) of another scenario in the slice, leaving only the subset-minimal
// ones. Scenarios of equal size never subsume each other, and the input is
// assumed already deduped, so ties are never an issue.
func minimal[V comparable](scenarios []Scenario[V]) []Scenario[V] {
	kept := make([]Scenario[V], 0, len(scenarios))
	for _, s := range scenarios {
		subsumed := false
		for _, t := range scenarios {
			if isStrictSubset(t, s) {
				subsumed = true
				break
			}
		}
		if !subsumed {
			kept = append(kept, s)
		}
	}
	return kept
}

// isStrictSubset reports whether t's true variables are a strict subset of
// s's: every variable in t is also in s, and t is smaller.
func isStrictSubset[V comparable](t, s Scenario[V]) bool {
	if len(t) >= len(s) {
		return false
	}
	for v := range t {
		if !s[v] {
			return false
		}
	}
	return true
}

// conflictRejecter turns a symmetric conflicts? relation into the
// model-rejection predicate sat.AllModels expects, so violating models
// never make it into the enumerated set in the first place.
func conflictRejecter[V comparable](conflicts func(a, b V) bool) func(model map[V]bool) bool {
	if conflicts == nil {
		return nil
	}
	return func(model map[V]bool) bool {
		trues := trueVars(model)
		for i := range trues {
			for j := i + 1; j < len(trues); j++ {
				if conflicts(trues[i], trues[j]) {
					return true
				}
			}
		}
		return false
	}
}

// reduce drops each v that some other true variable in trueVars implies,
// per the one-pass (non-closure) forward-implication filter: the check is
// always against the full set of true variables in the model, never
// against an already-reduced accumulator.
func reduce[V comparable](trueVars []V, implies func(a, b V) bool) Scenario[V] {
	kept := make(Scenario[V], len(trueVars))
	for _, v := range trueVars {
		if implies != nil && impliedByOther(trueVars, v, implies) {
			continue
		}
		kept[v] = true
	}
	return kept
}

func impliedByOther[V comparable](trueVars []V, v V, implies func(a, b V) bool) bool {
	for _, u := range trueVars {
		if u == v {
			continue
		}
		if implies(u, v) {
			return true
		}
	}
	return false
}

func trueVars[V comparable](model map[V]bool) []V {
	return lo.Keys(lo.PickBy(model, func(_ V, v bool) bool { return v }))
}

// comparator builds the less-function the algorithm uses whenever it must
// iterate variables in a stable order: the caller's sorter if supplied,
// else the formula's own first-seen binding order.
func comparator[V comparable](sorter func(a, b V) bool, f cnf.Formula[V]) func(a, b V) bool {
	if sorter != nil {
		return sorter
	}
	return func(a, b V) bool {
		ai, _ := f.IndexOf(a)
		bi, _ := f.IndexOf(b)
		return ai < bi
	}
}

// scenarioKey produces a canonical, order-independent string key for
// deduplication: map iteration order is random, so dedup cannot compare
// Scenarios directly (maps aren't comparable) or rely on insertion order.
func scenarioKey[V comparable](s Scenario[V]) string {
	parts := make([]string, 0, len(s))
	for v := range s {
		parts = append(parts, fmt.Sprintf("%v", v))
	}
	sort.Strings(parts)
	return strings.Join(parts, "\x00")
}
