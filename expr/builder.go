package expr

import "sort"

// Implies builds a -> b as not(a) or b, the macro gophersat's bf package
// uses for the same connective.
func Implies[V comparable](a, b Expression[V]) Expression[V] {
	return Or(Not(a), b)
}

// Eq builds a <-> b as (not(a) or b) and (a or not(b)).
func Eq[V comparable](a, b Expression[V]) Expression[V] {
	return And(Or(Not(a), b), Or(a, Not(b)))
}

// Xor builds "exactly one of a, b" as (not(a) or not(b)) and (a or b).
func Xor[V comparable](a, b Expression[V]) Expression[V] {
	return And(Or(Not(a), Not(b)), Or(a, b))
}

// AndAll left-folds a sequence of expressions into a left-leaning binary
// And tree: AndAll(a, b, c) is And(And(a, b), c). An empty sequence is the
// identity element, ⊤.
func AndAll[V comparable](es ...Expression[V]) Expression[V] {
	if len(es) == 0 {
		return Const[V](true)
	}
	acc := es[0]
	for _, e := range es[1:] {
		acc = And(acc, e)
	}
	return acc
}

// OrAll left-folds a sequence of expressions into a binary Or tree. An
// empty sequence is the identity element, ⊥.
func OrAll[V comparable](es ...Expression[V]) Expression[V] {
	if len(es) == 0 {
		return Const[V](false)
	}
	acc := es[0]
	for _, e := range es[1:] {
		acc = Or(acc, e)
	}
	return acc
}

// AtMostOne returns the conjunction of not(vi) or not(vj) for every
// unordered pair i<j drawn from vs, in deterministic lexicographic order
// by less. For |vs| <= 1 it returns the constant ⊤.
func AtMostOne[V comparable](vs []V, less func(a, b V) bool) Expression[V] {
	if len(vs) <= 1 {
		return Const[V](true)
	}
	sorted := make([]V, len(vs))
	copy(sorted, vs)
	sort.Slice(sorted, func(i, j int) bool { return less(sorted[i], sorted[j]) })

	var pairs []Expression[V]
	for i := 0; i < len(sorted); i++ {
		for j := i + 1; j < len(sorted); j++ {
			pairs = append(pairs, Or(Not(Var(sorted[i])), Not(Var(sorted[j]))))
		}
	}
	return AndAll(pairs...)
}
