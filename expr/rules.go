package expr

// ruleSet returns the fixed rule sequence Expand applies at each node.
// Distribution is appended only in aggressive mode (CNF conversion); it is
// the one rule that grows the expression, so it is gated to keep Expand's
// non-aggressive output roughly the same size as its input.
func ruleSet[V comparable](aggressive bool) []Rule[V] {
	rules := []Rule[V]{
		doubleNegation[V],
		constantNegation[V],
		idempotent[V],
		identity[V],
		domination[V],
		complement[V],
		absorption[V],
		deMorgan[V],
	}
	if aggressive {
		rules = append(rules, distribute[V])
	}
	return rules
}

// ¬¬a → a
func doubleNegation[V comparable](e Expression[V]) Expression[V] {
	n, ok := e.(*notNode[V])
	if !ok {
		return e
	}
	n2, ok := n.X.(*notNode[V])
	if !ok {
		return e
	}
	return n2.X
}

// ¬⊤ → ⊥, ¬⊥ → ⊤
func constantNegation[V comparable](e Expression[V]) Expression[V] {
	n, ok := e.(*notNode[V])
	if !ok {
		return e
	}
	c, ok := n.X.(*constNode[V])
	if !ok {
		return e
	}
	return Const[V](!c.Value)
}

// a ∧ a → a, a ∨ a → a
func idempotent[V comparable](e Expression[V]) Expression[V] {
	switch n := e.(type) {
	case *andNode[V]:
		if equalExpr(n.L, n.R) {
			return n.L
		}
	case *orNode[V]:
		if equalExpr(n.L, n.R) {
			return n.L
		}
	}
	return e
}

// a ∧ ⊤ → a, a ∨ ⊥ → a
func identity[V comparable](e Expression[V]) Expression[V] {
	switch n := e.(type) {
	case *andNode[V]:
		if isConst(n.R, true) {
			return n.L
		}
		if isConst(n.L, true) {
			return n.R
		}
	case *orNode[V]:
		if isConst(n.R, false) {
			return n.L
		}
		if isConst(n.L, false) {
			return n.R
		}
	}
	return e
}

// a ∧ ⊥ → ⊥, a ∨ ⊤ → ⊤
func domination[V comparable](e Expression[V]) Expression[V] {
	switch n := e.(type) {
	case *andNode[V]:
		if isConst(n.L, false) || isConst(n.R, false) {
			return Const[V](false)
		}
	case *orNode[V]:
		if isConst(n.L, true) || isConst(n.R, true) {
			return Const[V](true)
		}
	}
	return e
}

// a ∧ ¬a → ⊥, a ∨ ¬a → ⊤
func complement[V comparable](e Expression[V]) Expression[V] {
	isNegationOf := func(a, b Expression[V]) bool {
		n, ok := a.(*notNode[V])
		return ok && equalExpr(n.X, b)
	}
	switch n := e.(type) {
	case *andNode[V]:
		if isNegationOf(n.L, n.R) || isNegationOf(n.R, n.L) {
			return Const[V](false)
		}
	case *orNode[V]:
		if isNegationOf(n.L, n.R) || isNegationOf(n.R, n.L) {
			return Const[V](true)
		}
	}
	return e
}

// a ∧ (a ∨ b) → a, a ∨ (a ∧ b) → a
func absorption[V comparable](e Expression[V]) Expression[V] {
	switch n := e.(type) {
	case *andNode[V]:
		if or, ok := n.R.(*orNode[V]); ok && (equalExpr(or.L, n.L) || equalExpr(or.R, n.L)) {
			return n.L
		}
		if or, ok := n.L.(*orNode[V]); ok && (equalExpr(or.L, n.R) || equalExpr(or.R, n.R)) {
			return n.R
		}
	case *orNode[V]:
		if and, ok := n.R.(*andNode[V]); ok && (equalExpr(and.L, n.L) || equalExpr(and.R, n.L)) {
			return n.L
		}
		if and, ok := n.L.(*andNode[V]); ok && (equalExpr(and.L, n.R) || equalExpr(and.R, n.R)) {
			return n.R
		}
	}
	return e
}

// ¬(a ∧ b) → ¬a ∨ ¬b, ¬(a ∨ b) → ¬a ∧ ¬b
func deMorgan[V comparable](e Expression[V]) Expression[V] {
	n, ok := e.(*notNode[V])
	if !ok {
		return e
	}
	switch x := n.X.(type) {
	case *andNode[V]:
		return Or(Not(x.L), Not(x.R))
	case *orNode[V]:
		return And(Not(x.L), Not(x.R))
	}
	return e
}

// a ∨ (b ∧ c) → (a ∨ b) ∧ (a ∨ c), and symmetric. Aggressive-only: this is
// the one rule that grows the expression, and the one that turns an NNF
// tree into a conjunction of disjunctions (CNF) by pushing Or inward past
// And until no Or node has an And child left.
func distribute[V comparable](e Expression[V]) Expression[V] {
	n, ok := e.(*orNode[V])
	if !ok {
		return e
	}
	if and, ok := n.R.(*andNode[V]); ok {
		return And(Or(n.L, and.L), Or(n.L, and.R))
	}
	if and, ok := n.L.(*andNode[V]); ok {
		return And(Or(and.L, n.R), Or(and.R, n.R))
	}
	return e
}
