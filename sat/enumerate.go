package sat

import (
	"github.com/ash-project/crux/cnf"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// maxEnumerationIterations bounds AllModels when 2^NumVars would itself be
// unreasonably large to even consider; past this, enumeration gives up
// rather than spin forever. Small, specification-style formulas (crux's
// target use case) stay well under it.
const maxEnumerationIterations = 1 << 20

// ErrSearchSpaceTooLarge is returned by AllModels when the formula's
// variable count makes exhaustive blocking-clause enumeration impractical.
var ErrSearchSpaceTooLarge = errors.New("sat: formula has too many variables to enumerate all models")

// AllModels enumerates every model of f by repeated solve-and-block: after
// finding a model, it adds a clause blocking that exact total assignment
// and re-solves, until Unsat. Iterations are bounded at 2^NumVars (or
// maxEnumerationIterations, whichever is smaller) per spec's design note.
//
// If reject is non-nil, any model for which reject returns true is
// blocked (so enumeration moves past it) but not included in the
// returned slice — this is how scenario.SatisfyingScenarios applies a
// conflicts? theory during enumeration rather than as a later filter.
func AllModels[V comparable](f cnf.Formula[V], backend Backend, reject func(model map[V]bool) bool) ([]map[V]bool, error) {
	if f.NumClauses() == 0 {
		if reject != nil && reject(map[V]bool{}) {
			return nil, nil
		}
		return []map[V]bool{{}}, nil
	}
	if f.IsCanonicalUnsat() {
		return nil, nil
	}

	ceiling := maxEnumerationIterations
	if f.NumVars() > 0 && f.NumVars() < 20 && (1<<f.NumVars()) < ceiling {
		ceiling = 1 << f.NumVars()
	}

	working := make([][]int, len(f.Clauses))
	copy(working, f.Clauses)

	var models []map[V]bool
	exhausted := false
	for iter := 0; iter < ceiling; iter++ {
		result := backend.Solve(working, f.NumVars())
		if result.Status == Unknown {
			return models, errors.New("sat: backend returned an indeterminate result during enumeration")
		}
		if result.Status == Unsat {
			exhausted = true
			break
		}
		model := modelOf(f, result.Model)
		logrus.WithFields(logrus.Fields{"iteration": iter, "model_size": len(model)}).Debug("sat: enumerated model")
		if reject == nil || !reject(model) {
			models = append(models, model)
		}
		working = append(working, blockingClause(f, result.Model))
	}
	if !exhausted {
		// The ceiling was hit while the backend still had models left to
		// report; the caller asked for all of them and didn't get that.
		return models, ErrSearchSpaceTooLarge
	}
	return models, nil
}

// blockingClause negates a total assignment into a single clause that
// excludes it from future models.
func blockingClause[V comparable](f cnf.Formula[V], signed []int) []int {
	clause := make([]int, len(signed))
	for i, lit := range signed {
		clause[i] = -lit
	}
	return clause
}
