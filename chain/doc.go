// Package chain emits a constructed Markov Process Graph (package mpg) as a
// sparse column-stochastic transition chain: a canonical node ordering plus,
// for each destination node, the parallel (source index, weight) arrays
// feeding it. This is the representation PageRank-style power iteration
// consumes directly — one column per destination, summed over its sources
// each step.
//
// Parallel edges are preserved, not merged: two input edges landing on the
// same (source, destination) pair after MPG construction appear as two
// separate entries in that destination's column.
package chain
