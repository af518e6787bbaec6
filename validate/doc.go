// Package validate screens a candidate assignment against a caller-supplied
// implication/conflict theory, without ever invoking a SAT backend: it is
// a plain sequential scan, not a constraint solve.
package validate
