package mpg

import "github.com/ayushgupta0610/sourcecred/address"

// Restore reconstructs a MarkovProcessGraph directly from a node set, edge
// set, and scoring set, without re-running Build's validation or
// normalization — spec §4.7: "the deserializer trusts the payload." Only
// package serial should call this; every other caller should go through
// Build.
func Restore(nodes []Node, edges []Edge, scoring []address.NodeAddress) *MarkovProcessGraph {
	g := &MarkovProcessGraph{
		nodes:    make(map[address.NodeAddress]Node, len(nodes)),
		edges:    make(map[address.MarkovEdgeAddress]Edge, len(edges)),
		outEdges: map[address.NodeAddress][]address.MarkovEdgeAddress{},
		inEdges:  map[address.NodeAddress][]address.MarkovEdgeAddress{},
		scoring:  scoring,
	}
	for _, n := range nodes {
		g.nodes[n.Address] = n
		g.order = append(g.order, n.Address)
	}
	for _, e := range edges {
		g.edges[e.Address] = e
		g.outEdges[e.Src] = append(g.outEdges[e.Src], e.Address)
		g.inEdges[e.Dst] = append(g.inEdges[e.Dst], e.Address)
	}
	return g
}
