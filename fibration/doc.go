// Package fibration identifies which input-graph node addresses are
// "scoring" addresses (matching any of a set of user-supplied prefixes) and
// plans the epoch-node and epoch-webbing structure each of them needs once
// split across the week grid produced by package epoch.
//
// A scoring address with k+1 epochs (one per half-open interval from the
// boundary partition) gets k+1 epoch node addresses, one per interval, plus
// the forward/backward webbing pairs linking every pair of consecutive
// epochs. The Plan this package produces is pure data; the MPG Builder
// (package mpg) is responsible for turning it into actual graph nodes and
// edges with mint/probability values attached.
package fibration
