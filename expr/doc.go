// Package expr defines the Boolean expression AST used throughout crux:
// constants, variables, negation, conjunction and disjunction, plus an
// evaluator, a handful of builder macros, and a bottom-up rewrite engine
// used to simplify expressions before they are converted to CNF.
//
// Expressions are parameterized over a variable type V, which need only
// support equality; any ordering required by a caller (for at_most_one,
// or for the sorter options used elsewhere in crux) is supplied explicitly
// rather than assumed of V.
package expr
