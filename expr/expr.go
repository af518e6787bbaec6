package expr

import "fmt"

// Expression is any Boolean formula over a variable domain V. V need only
// be comparable: equality is all the AST itself requires, any total order
// needed by a caller is passed in explicitly where it matters (see the
// sorter options in the scenario, dtree and validate packages).
type Expression[V comparable] interface {
	// Eval evaluates the expression under oracle.
	Eval(oracle Oracle[V]) bool
	String() string
}

// Oracle answers the truth value of a variable during evaluation. The
// oracle is expected to panic (or otherwise fail) if asked about a
// variable it cannot answer; that failure is a host error, not part of
// the semantic domain described by crux.
type Oracle[V comparable] func(v V) bool

type constNode[V comparable] struct {
	Value bool
}

func (c *constNode[V]) Eval(Oracle[V]) bool { return c.Value }

func (c *constNode[V]) String() string {
	if c.Value {
		return "⊤"
	}
	return "⊥"
}

type varNode[V comparable] struct {
	Var V
}

func (n *varNode[V]) Eval(oracle Oracle[V]) bool { return oracle(n.Var) }

func (n *varNode[V]) String() string { return fmt.Sprintf("%v", n.Var) }

type notNode[V comparable] struct {
	X Expression[V]
}

func (n *notNode[V]) Eval(oracle Oracle[V]) bool { return !n.X.Eval(oracle) }

func (n *notNode[V]) String() string { return "not(" + n.X.String() + ")" }

type andNode[V comparable] struct {
	L, R Expression[V]
}

func (n *andNode[V]) Eval(oracle Oracle[V]) bool {
	l := n.L.Eval(oracle)
	r := n.R.Eval(oracle)
	return l && r
}

func (n *andNode[V]) String() string {
	return "and(" + n.L.String() + ", " + n.R.String() + ")"
}

type orNode[V comparable] struct {
	L, R Expression[V]
}

func (n *orNode[V]) Eval(oracle Oracle[V]) bool {
	l := n.L.Eval(oracle)
	r := n.R.Eval(oracle)
	return l || r
}

func (n *orNode[V]) String() string {
	return "or(" + n.L.String() + ", " + n.R.String() + ")"
}

// Const builds the constant ⊤ (b == true) or ⊥ (b == false).
func Const[V comparable](b bool) Expression[V] {
	return &constNode[V]{Value: b}
}

// Var builds a reference to variable v.
func Var[V comparable](v V) Expression[V] {
	return &varNode[V]{Var: v}
}

// Not builds the negation of e.
func Not[V comparable](e Expression[V]) Expression[V] {
	return &notNode[V]{X: e}
}

// And builds the (binary) conjunction of l and r.
func And[V comparable](l, r Expression[V]) Expression[V] {
	return &andNode[V]{L: l, R: r}
}

// Or builds the (binary) disjunction of l and r.
func Or[V comparable](l, r Expression[V]) Expression[V] {
	return &orNode[V]{L: l, R: r}
}

// Run evaluates e under oracle. Both operands of And and Or are always
// evaluated, by design: this keeps evaluation equivalent to the algebraic
// semantics (no short-circuiting) and makes it safe to use against
// property tests that don't care about evaluation order.
func Run[V comparable](e Expression[V], oracle Oracle[V]) bool {
	return e.Eval(oracle)
}

// AsConst reports whether e is a constant, and its value if so. Other
// packages (cnf's conversion and clause builder) use this and its siblings
// below to pattern-match on expression shape without reaching into expr's
// unexported node types.
func AsConst[V comparable](e Expression[V]) (value bool, ok bool) {
	c, ok := e.(*constNode[V])
	if !ok {
		return false, false
	}
	return c.Value, true
}

// AsVar reports whether e is a variable reference, and the variable if so.
func AsVar[V comparable](e Expression[V]) (v V, ok bool) {
	n, ok := e.(*varNode[V])
	if !ok {
		var zero V
		return zero, false
	}
	return n.Var, true
}

// AsNot reports whether e is a negation, and its operand if so.
func AsNot[V comparable](e Expression[V]) (x Expression[V], ok bool) {
	n, ok := e.(*notNode[V])
	if !ok {
		return nil, false
	}
	return n.X, true
}

// AsAnd reports whether e is a conjunction, and its operands if so.
func AsAnd[V comparable](e Expression[V]) (l, r Expression[V], ok bool) {
	n, ok := e.(*andNode[V])
	if !ok {
		return nil, nil, false
	}
	return n.L, n.R, true
}

// AsOr reports whether e is a disjunction, and its operands if so.
func AsOr[V comparable](e Expression[V]) (l, r Expression[V], ok bool) {
	n, ok := e.(*orNode[V])
	if !ok {
		return nil, nil, false
	}
	return n.L, n.R, true
}

// isConst reports whether e is the constant b.
func isConst[V comparable](e Expression[V], b bool) bool {
	c, ok := e.(*constNode[V])
	return ok && c.Value == b
}

// equalExpr reports structural equality between two expressions: the
// rewrite engine's only notion of equivalence. It never attempts semantic
// equivalence (that is SAT's job, not the rule engine's).
func equalExpr[V comparable](a, b Expression[V]) bool {
	switch x := a.(type) {
	case *constNode[V]:
		y, ok := b.(*constNode[V])
		return ok && x.Value == y.Value
	case *varNode[V]:
		y, ok := b.(*varNode[V])
		return ok && x.Var == y.Var
	case *notNode[V]:
		y, ok := b.(*notNode[V])
		return ok && equalExpr(x.X, y.X)
	case *andNode[V]:
		y, ok := b.(*andNode[V])
		return ok && equalExpr(x.L, y.L) && equalExpr(x.R, y.R)
	case *orNode[V]:
		y, ok := b.(*orNode[V])
		return ok && equalExpr(x.L, y.L) && equalExpr(x.R, y.R)
	default:
		return false
	}
}
