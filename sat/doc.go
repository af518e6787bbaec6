// Package sat is crux's SAT facade: a pluggable Backend trait, a
// process-scoped default backend slot, and the Solve/Satisfiable entry
// points that turn a cnf.Formula into a variable->bool model.
//
// Two backends ship: GiniBackend wraps github.com/go-air/gini, a real
// CDCL SAT engine, and is the default; NaiveBackend is a deterministic
// brute-force enumerator used as a reference/testing fallback for small
// formulas.
package sat
