// Package scenario implements crux's satisfying-scenario minimization:
// enumerate every model of a formula via sat.AllModels, prune models that
// violate a caller-supplied conflicts? theory during enumeration, reduce
// each surviving model to its true variables minus anything redundant
// under a caller-supplied implies? theory, then collapse duplicates.
package scenario
