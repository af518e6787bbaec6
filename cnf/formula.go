package cnf

import (
	"github.com/ash-project/crux/expr"
	"github.com/sirupsen/logrus"
)

// largeFormulaThreshold is the clause-count above which FromExpression
// warns: distribution-based CNF conversion can explode exponentially, and
// while that's an accepted cost for the small, specification-style
// formulas crux targets, a formula this large is worth flagging.
const largeFormulaThreshold = 100

// Log is the logger FromExpression uses for its size warning. It defaults
// to logrus's standard logger; callers that want the warning routed
// elsewhere can replace it.
var Log logrus.FieldLogger = logrus.StandardLogger()

// Formula is a CNF formula: an ordered sequence of clauses, each a nonempty
// ordered set of nonzero signed literals, plus a one-to-one mapping between
// literal indices and the variables of V they denote.
//
// The empty clause list denotes ⊤. ⊥ is encoded, per crux's fixed contract,
// as the two clauses [[1],[-1]] over a synthetic index with no
// corresponding variable — not as a tautology-free single-variable clause.
type Formula[V comparable] struct {
	Clauses    [][]int
	indexToVar map[int]V
	varToIndex map[V]int
}

// NumVars returns the number of distinct problem variables bound in the
// formula (the synthetic placeholder variable of the ⊥ encoding does not
// count).
func (f Formula[V]) NumVars() int {
	return len(f.indexToVar)
}

// NumClauses returns the number of clauses in the formula.
func (f Formula[V]) NumClauses() int {
	return len(f.Clauses)
}

// VarAt returns the variable bound to index i (1-based), if any.
func (f Formula[V]) VarAt(i int) (v V, ok bool) {
	v, ok = f.indexToVar[i]
	return
}

// IndexOf returns the index bound to v, if any.
func (f Formula[V]) IndexOf(v V) (i int, ok bool) {
	i, ok = f.varToIndex[v]
	return
}

// Bindings returns a copy of the index->variable mapping.
func (f Formula[V]) Bindings() map[int]V {
	out := make(map[int]V, len(f.indexToVar))
	for k, v := range f.indexToVar {
		out[k] = v
	}
	return out
}

// IsCanonicalUnsat reports whether f is the canonical ⊥ encoding of
// spec's fixed contract.
func (f Formula[V]) IsCanonicalUnsat() bool {
	return len(f.indexToVar) == 0 && len(f.Clauses) == 2 &&
		len(f.Clauses[0]) == 1 && f.Clauses[0][0] == 1 &&
		len(f.Clauses[1]) == 1 && f.Clauses[1][0] == -1
}

func emptyFormula[V comparable]() Formula[V] {
	return Formula[V]{indexToVar: map[int]V{}, varToIndex: map[V]int{}}
}

func unsatFormula[V comparable]() Formula[V] {
	return Formula[V]{
		Clauses:    [][]int{{1}, {-1}},
		indexToVar: map[int]V{},
		varToIndex: map[V]int{},
	}
}

// indexOf returns the stable index for v, assigning the next unused index
// in first-seen order if v hasn't appeared yet.
func (f *Formula[V]) indexOf(v V) int {
	if idx, ok := f.varToIndex[v]; ok {
		return idx
	}
	idx := len(f.varToIndex) + 1
	f.varToIndex[v] = idx
	f.indexToVar[idx] = v
	return idx
}

// FromExpression converts e to CNF: normalize to NNF-then-distributed form
// (Expand with Aggressive), assign variable indices in first-seen,
// left-to-right leaves-first order, then emit one clause per top-level
// disjunction.
func FromExpression[V comparable](e expr.Expression[V]) Formula[V] {
	normalized := expr.Expand(e, expr.ExpandOptions{Aggressive: true})

	if b, ok := expr.AsConst(normalized); ok {
		if b {
			return emptyFormula[V]()
		}
		return unsatFormula[V]()
	}

	f := emptyFormula[V]()
	for _, conjunct := range flattenAnd(normalized) {
		if b, ok := expr.AsConst(conjunct); ok {
			if b {
				continue
			}
			return unsatFormula[V]()
		}
		clause, tautological := f.buildClause(conjunct)
		if tautological {
			continue
		}
		f.Clauses = append(f.Clauses, clause)
	}

	if f.NumClauses() > largeFormulaThreshold {
		Log.WithField("clauses", f.NumClauses()).Warn("cnf: large formula, distribution-based conversion may have blown up")
	}
	return f
}

// buildClause converts one top-level disjunction into a clause, deduping
// literals in first-occurrence order and reporting whether the clause is
// tautological (contains both x and ¬x, so it is dropped rather than
// collapsing the whole conjunction).
func (f *Formula[V]) buildClause(disjunction expr.Expression[V]) (clause []int, tautological bool) {
	seen := make(map[int]bool)
	for _, lit := range flattenOr(disjunction) {
		v, neg, ok := literalOf(lit)
		if !ok {
			if b, isConst := expr.AsConst(lit); isConst {
				if b {
					return nil, true // a ⊤ literal makes the whole clause tautological
				}
				continue // a ⊥ literal contributes nothing
			}
			panic("cnf: clause disjunct is not a literal after normalization")
		}
		idx := f.indexOf(v)
		signed := idx
		if neg {
			signed = -idx
		}
		if seen[-signed] {
			return nil, true
		}
		if !seen[signed] {
			seen[signed] = true
			clause = append(clause, signed)
		}
	}
	return clause, false
}

func literalOf[V comparable](e expr.Expression[V]) (v V, neg bool, ok bool) {
	if vv, isVar := expr.AsVar(e); isVar {
		return vv, false, true
	}
	if inner, isNot := expr.AsNot(e); isNot {
		if vv, isVar := expr.AsVar(inner); isVar {
			return vv, true, true
		}
	}
	var zero V
	return zero, false, false
}

func flattenAnd[V comparable](e expr.Expression[V]) []expr.Expression[V] {
	if l, r, ok := expr.AsAnd(e); ok {
		return append(flattenAnd(l), flattenAnd(r)...)
	}
	return []expr.Expression[V]{e}
}

func flattenOr[V comparable](e expr.Expression[V]) []expr.Expression[V] {
	if l, r, ok := expr.AsOr(e); ok {
		return append(flattenOr(l), flattenOr(r)...)
	}
	return []expr.Expression[V]{e}
}

// ToExpression reconstructs a balanced expression from f: a min-depth And
// tree of clauses, each a min-depth Or tree of literals.
func ToExpression[V comparable](f Formula[V]) expr.Expression[V] {
	if len(f.Clauses) == 0 {
		return expr.Const[V](true)
	}
	if f.IsCanonicalUnsat() {
		return expr.Const[V](false)
	}

	clauseExprs := make([]expr.Expression[V], len(f.Clauses))
	for i, clause := range f.Clauses {
		lits := make([]expr.Expression[V], len(clause))
		for j, signed := range clause {
			idx := signed
			neg := false
			if idx < 0 {
				idx = -idx
				neg = true
			}
			v, ok := f.indexToVar[idx]
			if !ok {
				panic("cnf: clause references unbound literal index")
			}
			lit := expr.Var(v)
			if neg {
				lit = expr.Not(lit)
			}
			lits[j] = lit
		}
		clauseExprs[i] = balancedOr(lits)
	}
	return balancedAnd(clauseExprs)
}

func balancedOr[V comparable](lits []expr.Expression[V]) expr.Expression[V] {
	if len(lits) == 1 {
		return lits[0]
	}
	mid := len(lits) / 2
	return expr.Or(balancedOr(lits[:mid]), balancedOr(lits[mid:]))
}

func balancedAnd[V comparable](clauses []expr.Expression[V]) expr.Expression[V] {
	if len(clauses) == 1 {
		return clauses[0]
	}
	mid := len(clauses) / 2
	return expr.And(balancedAnd(clauses[:mid]), balancedAnd(clauses[mid:]))
}
