package dtree

import (
	"fmt"
	"sort"

	"github.com/ash-project/crux/cnf"
	"github.com/samber/lo"
)

// Tree is a binary decision tree: leaves carry a constant, internal nodes
// carry a variable and a false-branch / true-branch pair. No variable
// appears twice along any root-to-leaf path.
type Tree[V comparable] struct {
	IsLeaf bool
	Value  bool

	Var         V
	False, True *Tree[V]
}

// Leaf builds a constant ⊤/⊥ leaf.
func Leaf[V comparable](b bool) *Tree[V] {
	return &Tree[V]{IsLeaf: true, Value: b}
}

// Node builds an internal node branching on v.
func Node[V comparable](v V, falseBranch, trueBranch *Tree[V]) *Tree[V] {
	return &Tree[V]{Var: v, False: falseBranch, True: trueBranch}
}

func (t *Tree[V]) String() string {
	if t == nil {
		return "<nil>"
	}
	if t.IsLeaf {
		if t.Value {
			return "⊤"
		}
		return "⊥"
	}
	return fmt.Sprintf("node(%v, %s, %s)", t.Var, t.False.String(), t.True.String())
}

// Options configures decision-tree synthesis.
type Options[V comparable] struct {
	// Conflicts reports whether a and b can never both be true. A branch
	// that would set a variable true while it conflicts with a variable
	// already fixed true on the current path is replaced by a ⊥ leaf
	// without recursing further.
	Conflicts func(a, b V) bool
	// Sorter orders the variables still free in the residual formula when
	// choosing the next branch variable. When nil, the first variable
	// encountered scanning the residual clauses is chosen.
	Sorter func(a, b V) bool
}

// DecisionTree builds a decision tree for f. Variable choice at each step
// is driven by opts.Sorter (or first-appearance order); each branch is
// pruned against opts.Conflicts before recursing, and structurally
// identical sibling branches collapse into their shared subtree, which is
// how variables that don't affect the outcome disappear from the result.
func DecisionTree[V comparable](f cnf.Formula[V], opts Options[V]) *Tree[V] {
	if f.IsCanonicalUnsat() {
		return Leaf[V](false)
	}
	if f.NumClauses() == 0 {
		return Leaf[V](true)
	}
	return build(f, f.Clauses, map[int]bool{}, map[V]bool{}, opts)
}

// build recurses on the residual clauses implied by fixed (an index->bool
// partial assignment over the formula's variable indices) and trueSoFar
// (the same assignment's true variables, in V's domain, for conflict
// checks).
func build[V comparable](f cnf.Formula[V], clauses [][]int, fixed map[int]bool, trueSoFar map[V]bool, opts Options[V]) *Tree[V] {
	remaining, isConst, constVal := simplify(clauses, fixed)
	if isConst {
		return Leaf[V](constVal)
	}

	idx, v, ok := nextVariable(f, remaining, opts.Sorter)
	if !ok {
		panic("dtree: residual formula has clauses left but no free variable")
	}

	falseBranch := branch(f, remaining, fixed, trueSoFar, opts, idx, v, false)
	trueBranch := branch(f, remaining, fixed, trueSoFar, opts, idx, v, true)

	if equalTree(falseBranch, trueBranch) {
		return falseBranch
	}
	return Node(v, falseBranch, trueBranch)
}

// branch computes one child of a node: a conflict check against the
// variables already fixed true on this path (relevant only when b sets v
// true), then a recursive build with v fixed to b.
func branch[V comparable](f cnf.Formula[V], clauses [][]int, fixed map[int]bool, trueSoFar map[V]bool, opts Options[V], idx int, v V, b bool) *Tree[V] {
	if b && opts.Conflicts != nil && conflictsWithAny(trueSoFar, v, opts.Conflicts) {
		return Leaf[V](false)
	}

	nextFixed := make(map[int]bool, len(fixed)+1)
	for k, val := range fixed {
		nextFixed[k] = val
	}
	nextFixed[idx] = b

	nextTrueSoFar := trueSoFar
	if b {
		nextTrueSoFar = make(map[V]bool, len(trueSoFar)+1)
		for k, val := range trueSoFar {
			nextTrueSoFar[k] = val
		}
		nextTrueSoFar[v] = true
	}

	return build(f, clauses, nextFixed, nextTrueSoFar, opts)
}

func conflictsWithAny[V comparable](trueSoFar map[V]bool, v V, conflicts func(a, b V) bool) bool {
	for u := range trueSoFar {
		if conflicts(u, v) || conflicts(v, u) {
			return true
		}
	}
	return false
}

// simplify substitutes fixed's assignment into clauses: satisfied clauses
// are dropped, falsified literals are removed from their clause, and a
// clause that empties out without being satisfied proves the residual
// formula unsatisfiable. Returns isConst=true with constVal when the
// result is a bare constant rather than a still-open set of clauses.
func simplify(clauses [][]int, fixed map[int]bool) (remaining [][]int, isConst bool, constVal bool) {
	for _, clause := range clauses {
		satisfied := false
		var kept []int
		for _, lit := range clause {
			idx, neg := unsign(lit)
			val, ok := fixed[idx]
			if !ok {
				kept = append(kept, lit)
				continue
			}
			if val != neg {
				satisfied = true
				break
			}
		}
		if satisfied {
			continue
		}
		if len(kept) == 0 {
			return nil, true, false
		}
		remaining = append(remaining, kept)
	}
	if len(remaining) == 0 {
		return nil, true, true
	}
	return remaining, false, false
}

// nextVariable picks the branch variable: the first free index encountered
// scanning clauses in order, unless sorter orders the free set otherwise.
func nextVariable[V comparable](f cnf.Formula[V], clauses [][]int, sorter func(a, b V) bool) (idx int, v V, ok bool) {
	literals := lo.FlatMap(clauses, func(clause []int, _ int) []int { return clause })
	indices := lo.Uniq(lo.Map(literals, func(lit int, _ int) int {
		i, _ := unsign(lit)
		return i
	}))
	if len(indices) == 0 {
		return 0, v, false
	}
	if sorter != nil {
		sort.Slice(indices, func(i, j int) bool {
			vi, _ := f.VarAt(indices[i])
			vj, _ := f.VarAt(indices[j])
			return sorter(vi, vj)
		})
	}
	v, _ = f.VarAt(indices[0])
	return indices[0], v, true
}

func unsign(lit int) (idx int, neg bool) {
	if lit < 0 {
		return -lit, true
	}
	return lit, false
}

// equalTree reports structural equality between two trees: the only
// notion of equivalence the collapse step needs.
func equalTree[V comparable](a, b *Tree[V]) bool {
	if a.IsLeaf != b.IsLeaf {
		return false
	}
	if a.IsLeaf {
		return a.Value == b.Value
	}
	return a.Var == b.Var && equalTree(a.False, b.False) && equalTree(a.True, b.True)
}
