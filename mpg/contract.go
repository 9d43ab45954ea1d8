package mpg

import "github.com/ayushgupta0610/sourcecred/address"

// InputNode is one node of the external weighted-graph input contract
// (spec §6.1): an address and a human-readable description. Weight is
// derived separately via a weights.NodeWeightFn, not carried here.
type InputNode struct {
	Address     address.NodeAddress
	Description string
}

// InputEdge is one edge of the external weighted-graph input contract
// (spec §6.1). Dangling edges reference an endpoint the graph does not
// otherwise materialize and must be excluded from construction (spec
// §4.5 step 6: "iterate input edges (excluding any flagged as dangling)").
type InputEdge struct {
	Address     address.EdgeAddress
	Src, Dst    address.NodeAddress
	TimestampMs int64
	Dangling    bool
}

// WeightedGraph is the minimal interface the Builder consumes from its
// environment: a finite node sequence and a finite edge sequence. The
// underlying graph/weight-rule data model that produces these values is an
// external collaborator and out of scope for this package (spec §1).
type WeightedGraph interface {
	Nodes() []InputNode
	Edges() []InputEdge
}

// SliceGraph is the simplest possible WeightedGraph: two plain slices. It
// exists so callers (and this package's own tests) can construct a
// WeightedGraph without standing up a real graph/weight-rule data model.
type SliceGraph struct {
	NodeList []InputNode
	EdgeList []InputEdge
}

// Nodes implements WeightedGraph.
func (g SliceGraph) Nodes() []InputNode { return g.NodeList }

// Edges implements WeightedGraph.
func (g SliceGraph) Edges() []InputEdge { return g.EdgeList }
