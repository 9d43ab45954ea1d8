// Package mpg implements the Markov Process Graph (MPG): the transformation
// from a weighted, bidirectional contribution graph plus a small set of
// teleportation/fibration parameters into a well-formed, stochastic,
// unidirectional transition graph suitable for power-iteration.
//
// Build is the single entry point: it synthesizes three node classes
// (Seed, Base, Epoch) and five edge classes (Base, Radiation, Minting,
// Payout, Webbing) into one coherent MarkovProcessGraph, normalizes
// transition probabilities per source node, and verifies stochasticity
// before returning. Construction is a pure function of its inputs — no
// global state, no I/O, no mutation of the inputs — and the returned
// MarkovProcessGraph is immutable thereafter.
//
// See README-level spec §3 for the data model this package implements and
// §7 for its error taxonomy.
package mpg
