// Package dtree builds a binary decision tree from a cnf.Formula: each
// internal node branches on one variable, each leaf is a constant, and no
// variable appears twice along any root-to-leaf path. Synthesis makes no
// SAT calls: each branch substitutes its variable's value into the
// residual clauses (dropping satisfied clauses and falsified literals) and
// recurses until the residual formula is a constant.
package dtree
