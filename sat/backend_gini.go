package sat

import (
	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
)

// GiniBackend is the default Backend: a real CDCL SAT engine, the
// "performant DPLL-style backend" spec calls for. It wraps
// github.com/go-air/gini exactly the way operator-framework/deppy's
// internal/sat package drives it: build a fresh solver, Add each clause
// literal-by-literal terminated by 0, Solve, then read out Value per
// literal.
type GiniBackend struct{}

// NewGiniBackend constructs the default backend.
func NewGiniBackend() Backend {
	return GiniBackend{}
}

func (GiniBackend) Solve(clauses [][]int, nbVars int) BackendResult {
	g := gini.New()
	for _, clause := range clauses {
		for _, lit := range clause {
			g.Add(z.Dimacs2Lit(lit))
		}
		g.Add(0)
	}
	switch g.Solve() {
	case 1:
		return BackendResult{Status: Sat, Model: modelFromGini(g, nbVars)}
	case -1:
		return BackendResult{Status: Unsat}
	default:
		return BackendResult{Status: Unknown}
	}
}

func modelFromGini(g *gini.Gini, nbVars int) []int {
	model := make([]int, nbVars)
	for i := 1; i <= nbVars; i++ {
		if g.Value(z.Dimacs2Lit(i)) {
			model[i-1] = i
		} else {
			model[i-1] = -i
		}
	}
	return model
}
