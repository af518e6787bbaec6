package expr

// Rule is a pure rewrite step: given a node whose children have already
// been rewritten, it returns a rewritten form, or its argument unchanged
// if it does not match.
type Rule[V comparable] func(Expression[V]) Expression[V]

// ExpandOptions controls Expand.
type ExpandOptions struct {
	// Aggressive enables the distribution law that pushes disjunction
	// inward past conjunction, turning an Or over And into an And of Ors.
	// CNF conversion is the only caller that needs this; leaving it off
	// elsewhere keeps expanded expressions roughly the same size as their
	// input.
	Aggressive bool
}

// Expand rewrites e to a fixpoint using the standard rule set (double
// negation, idempotence, identity, domination, complement, absorption,
// De Morgan, constant negation, and — when opts.Aggressive is set —
// distribution).
func Expand[V comparable](e Expression[V], opts ExpandOptions) Expression[V] {
	rules := ruleSet[V](opts.Aggressive)
	cache := make(map[Expression[V]]Expression[V])
	return rewriteFixpoint(e, rules, cache)
}

// rewriteFixpoint implements the traversal of spec §4.2: rewrite children
// first (post-order), apply the rule sequence to the rewritten node until
// it stops changing, then re-enter the node if anything changed so the new
// shape can expose further matches.
func rewriteFixpoint[V comparable](e Expression[V], rules []Rule[V], cache map[Expression[V]]Expression[V]) Expression[V] {
	if cached, ok := cache[e]; ok {
		return cached
	}

	var rebuilt Expression[V]
	switch n := e.(type) {
	case *constNode[V], *varNode[V]:
		rebuilt = e
	case *notNode[V]:
		rebuilt = Not(rewriteFixpoint(n.X, rules, cache))
	case *andNode[V]:
		rebuilt = And(rewriteFixpoint(n.L, rules, cache), rewriteFixpoint(n.R, rules, cache))
	case *orNode[V]:
		rebuilt = Or(rewriteFixpoint(n.L, rules, cache), rewriteFixpoint(n.R, rules, cache))
	default:
		panic("expr: unknown expression node")
	}

	result, changed := applyUntilStable(rebuilt, rules)
	if changed {
		result = rewriteFixpoint(result, rules, cache)
	}
	cache[e] = result
	return result
}

// applyUntilStable runs the rule sequence over node repeatedly until a full
// pass makes no change.
func applyUntilStable[V comparable](node Expression[V], rules []Rule[V]) (Expression[V], bool) {
	cur := node
	anyChange := false
	for {
		progressed := false
		for _, rule := range rules {
			next := rule(cur)
			if !equalExpr(next, cur) {
				cur = next
				progressed = true
				anyChange = true
			}
		}
		if !progressed {
			break
		}
	}
	return cur, anyChange
}
