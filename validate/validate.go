package validate

import (
	"sort"

	"github.com/pkg/errors"
)

// Pair is one variable/value entry of an assignment sequence.
type Pair[V comparable] struct {
	Var   V
	Value bool
}

// Options configures assignment validation. All fields are optional.
type Options[V comparable] struct {
	// Implies reports whether a true implies b true. Asymmetric.
	Implies func(a, b V) bool
	// Conflicts reports whether a and b can never both be true. Symmetric;
	// checked both ways regardless, since the caller's predicate isn't
	// assumed to be called with arguments in a canonical order.
	Conflicts func(a, b V) bool
	// Sorter orders the input sequence before processing. When nil, the
	// assignments are processed in the order given.
	Sorter func(a, b V) bool
}

// ErrUnsat is returned when the supplied theory contradicts the
// assignment: a forced variable is set to the wrong value, or two
// variables declared to conflict are both set true.
var ErrUnsat = errors.New("validate: assignment is unsatisfiable under the supplied theory")

// FromMap converts an assignment map into a Pair sequence. Map iteration
// order is unspecified, so callers that need deterministic processing
// should supply Options.Sorter.
func FromMap[V comparable](assignments map[V]bool) []Pair[V] {
	pairs := make([]Pair[V], 0, len(assignments))
	for v, b := range assignments {
		pairs = append(pairs, Pair[V]{Var: v, Value: b})
	}
	return pairs
}

// ValidateAssignments processes assignments in sorter order (or input
// order, if Sorter is nil), filtering out variables implied redundant by
// an already-accumulated true variable and rejecting the whole sequence
// the moment the theory is contradicted.
func ValidateAssignments[V comparable](assignments []Pair[V], opts Options[V]) ([]Pair[V], error) {
	ordered := order(assignments, opts.Sorter)

	var acc []Pair[V]
	for _, p := range ordered {
		if p.Value {
			if impliedByTrue(acc, p.Var, opts.Implies) {
				continue // forward filter: v=⊤ is redundant with an already-true antecedent
			}
			if conflictsWithTrue(acc, p.Var, opts.Conflicts) {
				return nil, errors.Wrapf(ErrUnsat, "%v conflicts with an assignment already accepted", p.Var)
			}
			acc = append(acc, p)
			continue
		}

		if impliedByTrue(acc, p.Var, opts.Implies) {
			return nil, errors.Wrapf(ErrUnsat, "%v is forced true by an accepted assignment but given as false", p.Var)
		}
		acc = append(acc, p)
	}
	return acc, nil
}

func order[V comparable](assignments []Pair[V], sorter func(a, b V) bool) []Pair[V] {
	if sorter == nil {
		return assignments
	}
	ordered := make([]Pair[V], len(assignments))
	copy(ordered, assignments)
	sort.SliceStable(ordered, func(i, j int) bool { return sorter(ordered[i].Var, ordered[j].Var) })
	return ordered
}

func impliedByTrue[V comparable](acc []Pair[V], v V, implies func(a, b V) bool) bool {
	if implies == nil {
		return false
	}
	for _, p := range acc {
		if p.Value && implies(p.Var, v) {
			return true
		}
	}
	return false
}

func conflictsWithTrue[V comparable](acc []Pair[V], v V, conflicts func(a, b V) bool) bool {
	if conflicts == nil {
		return false
	}
	for _, p := range acc {
		if p.Value && (conflicts(p.Var, v) || conflicts(v, p.Var)) {
			return true
		}
	}
	return false
}
