package chain

import "gonum.org/v1/gonum/graph/simple"

// ToWeightedDirectedGraph renders c as a gonum graph/simple.WeightedDirectedGraph,
// one gonum node per chain index, one weighted edge per (source, destination)
// pair. This is the format gonum's own graph/network and graph/traverse
// algorithms consume directly, for callers who want those over a hand-rolled
// power iteration.
//
// Parallel edges collapse here: simple.WeightedDirectedGraph has at most one
// edge per ordered node pair, so if the same (source, destination) pair
// appears twice in c (distinct underlying input edges normalized to the same
// rewritten endpoints), only the last SetWeightedEdge call for that pair
// survives. Chain itself (via SourceIndices/Weights) remains the
// parallel-edge-preserving representation; this conversion is a lossy
// convenience for gonum-algorithm interop.
func (c *Chain) ToWeightedDirectedGraph() *simple.WeightedDirectedGraph {
	g := simple.NewWeightedDirectedGraph(0, 0)
	for i := range c.NodeOrder {
		g.AddNode(simple.Node(int64(i)))
	}
	for dst, srcs := range c.SourceIndices {
		for k, src := range srcs {
			g.SetWeightedEdge(simple.WeightedEdge{
				F: simple.Node(int64(src)),
				T: simple.Node(int64(dst)),
				W: c.Weights[dst][k],
			})
		}
	}
	return g
}
