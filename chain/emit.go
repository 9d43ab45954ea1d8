package chain

import (
	"fmt"
	"sort"

	"github.com/ayushgupta0610/sourcecred/address"
	"github.com/ayushgupta0610/sourcecred/mpg"
	"gonum.org/v1/gonum/floats"
)

// Chain is the emitted sparse column-stochastic transition matrix. NodeOrder
// gives the canonical index assigned to each node address (via
// address.NodeAddress.Compare); SourceIndices[j]/Weights[j] are the parallel
// arrays of the edges feeding destination node j.
type Chain struct {
	NodeOrder []address.NodeAddress

	// SourceIndices[j] lists the node index of every edge's source landing
	// on destination j; Weights[j][k] is that edge's probability.
	SourceIndices [][]int
	Weights       [][]float64

	index map[address.NodeAddress]int
}

// IndexOf returns the canonical index assigned to addr, or (-1, false) if
// addr is not a node of this chain.
func (c *Chain) IndexOf(addr address.NodeAddress) (int, bool) {
	i, ok := c.index[addr]
	return i, ok
}

// Emit converts g into its canonical Chain representation (spec §4.6).
// Node indices follow address.NodeAddress's total order, not construction
// order, so two Emit calls over graphs with the same node set always agree
// on indices regardless of input graph iteration order upstream.
func Emit(g *mpg.MarkovProcessGraph) (*Chain, error) {
	nodes := g.Nodes(address.NodeAddress{})
	sort.Slice(nodes, func(i, j int) bool {
		return nodes[i].Address.Compare(nodes[j].Address) < 0
	})

	order := make([]address.NodeAddress, len(nodes))
	index := make(map[address.NodeAddress]int, len(nodes))
	for i, n := range nodes {
		order[i] = n.Address
		index[n.Address] = i
	}

	srcIdx := make([][]int, len(order))
	weights := make([][]float64, len(order))
	outSum := make([]float64, len(order))

	for _, n := range nodes {
		srcI := index[n.Address]
		for _, eAddr := range g.OutEdges(n.Address) {
			e, ok := g.Edge(eAddr)
			if !ok {
				return nil, &mpg.Error{
					Kind:      mpg.LookupError,
					Detail:    "adjacency references an edge absent from the graph",
					Offending: eAddr.String(),
					Err:       mpg.ErrUnknownSource,
				}
			}
			dstI, ok := index[e.Dst]
			if !ok {
				return nil, &mpg.Error{
					Kind:      mpg.LookupError,
					Detail:    "edge destination is not a node of this graph",
					Offending: e.Dst.String(),
					Err:       mpg.ErrUnknownSource,
				}
			}
			srcIdx[dstI] = append(srcIdx[dstI], srcI)
			weights[dstI] = append(weights[dstI], e.Probability)
			outSum[srcI] += e.Probability
		}
	}

	for i, sum := range outSum {
		if !floats.EqualWithinAbs(sum, 1.0, mpg.StochasticityTolerance) {
			return nil, &mpg.Error{
				Kind:      mpg.InvariantError,
				Detail:    fmt.Sprintf("node out-probabilities sum to %g, want 1.0", sum),
				Offending: order[i].String(),
				Err:       mpg.ErrStochasticityViolated,
			}
		}
	}

	return &Chain{NodeOrder: order, SourceIndices: srcIdx, Weights: weights, index: index}, nil
}
