package sat

import (
	"sync"

	"github.com/ash-project/crux/cnf"
	"github.com/pkg/errors"
)

// Status is the outcome of a solve attempt.
type Status int

const (
	// Unknown means the backend could not determine satisfiability (a
	// resource bound was hit, or the backend gave up).
	Unknown Status = iota
	// Sat means a model was found.
	Sat
	// Unsat means the formula has no model.
	Unsat
)

// BackendResult is what a Backend returns for one Solve call. Model is a
// sequence of signed integers, one per variable index from 1 to nbVars,
// positive meaning true; it is only meaningful when Status is Sat.
type BackendResult struct {
	Status Status
	Model  []int
}

// Backend is the trait crux solves against. clauses is plain DIMACS-style
// CNF (no bindings attached — that translation is the facade's job);
// nbVars is the number of problem variables, i.e. the highest literal
// index that may appear.
type Backend interface {
	Solve(clauses [][]int, nbVars int) BackendResult
}

var (
	backendMu      sync.Mutex
	defaultBackend Backend = NewGiniBackend()
)

// SetDefaultBackend replaces the process-scoped default backend. This is
// the configuration slot of spec's §5/§9: a single mutable knob read by
// Solve, Satisfiable and scenario.SatisfyingScenarios. SolveWith and
// AllModels always use the backend they are given.
// Tests typically call SetDefaultBackend(NewNaiveBackend()) for
// determinism.
func SetDefaultBackend(b Backend) {
	backendMu.Lock()
	defer backendMu.Unlock()
	defaultBackend = b
}

// DefaultBackend returns the current process-scoped default backend.
func DefaultBackend() Backend {
	backendMu.Lock()
	defer backendMu.Unlock()
	return defaultBackend
}

// ErrUnsat is returned by Solve when the formula has no model.
var ErrUnsat = errors.New("sat: formula is unsatisfiable")

// Solve solves f using the default backend. Constant formulas are handled
// without invoking a backend at all: ⊤ solves to the empty model, ⊥
// always returns ErrUnsat.
func Solve[V comparable](f cnf.Formula[V]) (map[V]bool, error) {
	return SolveWith(f, DefaultBackend())
}

// SolveWith solves f using an explicit backend.
func SolveWith[V comparable](f cnf.Formula[V], backend Backend) (map[V]bool, error) {
	if f.NumClauses() == 0 {
		return map[V]bool{}, nil
	}
	if f.IsCanonicalUnsat() {
		return nil, ErrUnsat
	}
	result := backend.Solve(f.Clauses, f.NumVars())
	switch result.Status {
	case Sat:
		return modelOf(f, result.Model), nil
	case Unsat:
		return nil, ErrUnsat
	default:
		return nil, errors.New("sat: backend returned an indeterminate result")
	}
}

// Satisfiable reports whether f has a model.
func Satisfiable[V comparable](f cnf.Formula[V]) bool {
	_, err := Solve(f)
	return err == nil
}

// modelOf converts a backend's signed-index model into a variable->bool
// mapping using f's bindings, discarding indices with no bound variable
// (the synthetic placeholder index never reaches here, since Solve/
// SolveWith short-circuit the canonical ⊥ encoding before calling a
// backend).
func modelOf[V comparable](f cnf.Formula[V], signed []int) map[V]bool {
	out := make(map[V]bool, f.NumVars())
	for _, lit := range signed {
		idx := lit
		val := true
		if idx < 0 {
			idx = -idx
			val = false
		}
		if v, ok := f.VarAt(idx); ok {
			out[v] = val
		}
	}
	return out
}
