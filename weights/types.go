package weights

import (
	"math"

	"github.com/ayushgupta0610/sourcecred/address"
)

// NodeWeightFn maps a node address to a non-negative, finite mint weight.
// Implementations must never return a negative or non-finite value; the
// Builder treats such a result as a fatal InputError.
type NodeWeightFn func(addr address.NodeAddress) (float64, error)

// EdgeWeightFn maps an edge address to a (forward, backward) pair of
// non-negative reals. A zero on either side suppresses the MPG edge for
// that direction entirely.
type EdgeWeightFn func(addr address.EdgeAddress) (forward, backward float64, err error)

// Finite reports whether w is usable as a node or edge weight: finite and
// non-negative. Exported so mpg's Builder can apply it to NodeWeightFn
// results; PrefixRules does not check the weights it returns.
func Finite(w float64) bool {
	return !math.IsNaN(w) && !math.IsInf(w, 0) && w >= 0
}
