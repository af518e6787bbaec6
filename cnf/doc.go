// Package cnf converts between crux's expression AST and a clausal
// (conjunctive normal form) Formula with stable, first-seen variable
// numbering, and emits the DIMACS text format SAT solvers expect.
package cnf
