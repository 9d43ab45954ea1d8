// query.go — the read-only surface of a constructed MarkovProcessGraph.
package mpg

import (
	"strconv"

	"github.com/ayushgupta0610/sourcecred/address"
)

// Node looks up a node by address. The second return value is false if no
// such node exists.
func (g *MarkovProcessGraph) Node(addr address.NodeAddress) (Node, bool) {
	n, ok := g.nodes[addr]
	return n, ok
}

// Nodes returns every node, in construction order (seed, then base nodes in
// input order, then epoch nodes grouped by owner). If prefix is not the
// root address, only nodes under it are returned.
func (g *MarkovProcessGraph) Nodes(prefix address.NodeAddress) []Node {
	out := make([]Node, 0, len(g.order))
	for _, addr := range g.order {
		if !prefix.IsRoot() && !addr.HasPrefix(prefix) {
			continue
		}
		out = append(out, g.nodes[addr])
	}
	return out
}

// NodeCount reports the total number of nodes.
func (g *MarkovProcessGraph) NodeCount() int {
	return len(g.nodes)
}

// Edge looks up an edge by its markov edge address.
func (g *MarkovProcessGraph) Edge(addr address.MarkovEdgeAddress) (Edge, bool) {
	e, ok := g.edges[addr]
	return e, ok
}

// Edges returns every edge, in no particular order beyond what the caller
// imposes by sorting on Edge.Address.
func (g *MarkovProcessGraph) Edges() []Edge {
	out := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	return out
}

// EdgeCount reports the total number of edges.
func (g *MarkovProcessGraph) EdgeCount() int {
	return len(g.edges)
}

// OutEdges returns the markov edge addresses of every edge leaving addr.
func (g *MarkovProcessGraph) OutEdges(addr address.NodeAddress) []address.MarkovEdgeAddress {
	return g.outEdges[addr]
}

// InEdges returns the markov edge addresses of every edge entering addr.
func (g *MarkovProcessGraph) InEdges(addr address.NodeAddress) []address.MarkovEdgeAddress {
	return g.inEdges[addr]
}

// ScoringAddresses returns the node addresses identified as scoring
// (fibrated) during construction, sorted and deduplicated.
func (g *MarkovProcessGraph) ScoringAddresses() []address.NodeAddress {
	return g.scoring
}

// Report returns the diagnostic construction report (SPEC_FULL.md §C).
func (g *MarkovProcessGraph) Report() *ConstructionReport {
	return g.report
}

// Describe renders a short human-readable summary, e.g. for CLI or log use.
func (g *MarkovProcessGraph) Describe() string {
	return "MarkovProcessGraph{nodes=" + strconv.Itoa(len(g.nodes)) +
		", edges=" + strconv.Itoa(len(g.edges)) +
		", scoring=" + strconv.Itoa(len(g.scoring)) + "}"
}
