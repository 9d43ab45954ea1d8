package mpg

import "github.com/ayushgupta0610/sourcecred/address"

// NodeClass identifies which of the three node classes (spec §3) a Node
// belongs to.
type NodeClass int

const (
	// SeedNodeClass is the single inserted sentinel seed node.
	SeedNodeClass NodeClass = iota
	// BaseNodeClass is a node carried over from the input graph, one per
	// input node.
	BaseNodeClass
	// EpochNodeClass is a synthesized per-(scoring node, interval) node.
	EpochNodeClass
)

// String renders the NodeClass for diagnostics.
func (c NodeClass) String() string {
	switch c {
	case SeedNodeClass:
		return "Seed"
	case BaseNodeClass:
		return "Base"
	case EpochNodeClass:
		return "Epoch"
	default:
		return "UnknownNodeClass"
	}
}

// ParseNodeClass reverses NodeClass.String, for the Serializer's
// deserialization path. The second return value is false for any string
// not produced by String.
func ParseNodeClass(s string) (NodeClass, bool) {
	switch s {
	case "Seed":
		return SeedNodeClass, true
	case "Base":
		return BaseNodeClass, true
	case "Epoch":
		return EpochNodeClass, true
	default:
		return 0, false
	}
}

// Node is an MPG node: (address, description, mint), mint >= 0.
type Node struct {
	Address     address.NodeAddress
	Description string
	Mint        float64
	Class       NodeClass
}

// EdgeClass identifies which of the five edge classes (spec §3) an Edge
// belongs to.
type EdgeClass int

const (
	// BaseEdgeClass is an edge rewritten from one direction of an input
	// edge.
	BaseEdgeClass EdgeClass = iota
	// RadiationEdgeClass closes a node's outgoing mass back to the seed.
	RadiationEdgeClass
	// MintingEdgeClass distributes mint from the seed.
	MintingEdgeClass
	// PayoutEdgeClass carries an epoch node's payout share to its owner.
	PayoutEdgeClass
	// WebbingEdgeClass links an owner's consecutive epoch nodes.
	WebbingEdgeClass
)

// String renders the EdgeClass for diagnostics.
func (c EdgeClass) String() string {
	switch c {
	case BaseEdgeClass:
		return "Base"
	case RadiationEdgeClass:
		return "Radiation"
	case MintingEdgeClass:
		return "Minting"
	case PayoutEdgeClass:
		return "Payout"
	case WebbingEdgeClass:
		return "Webbing"
	default:
		return "UnknownEdgeClass"
	}
}

// ParseEdgeClass reverses EdgeClass.String, for the Serializer's
// deserialization path. The second return value is false for any string
// not produced by String.
func ParseEdgeClass(s string) (EdgeClass, bool) {
	switch s {
	case "Base":
		return BaseEdgeClass, true
	case "Radiation":
		return RadiationEdgeClass, true
	case "Minting":
		return MintingEdgeClass, true
	case "Payout":
		return PayoutEdgeClass, true
	case "Webbing":
		return WebbingEdgeClass, true
	default:
		return 0, false
	}
}

// Edge is a directed MPG transition. Address is the edge's primary key
// (underlying edge address + direction tag, spec §3 "Primary key of an
// edge"); for synthesized edge classes without a genuine bidirectional
// underlying edge (Radiation/Minting/Payout), Address.Direction() is always
// Forward and Reversed is always false. Webbing edges use Forward/Backward
// exactly as the forward/backward halves of one owner-epoch adjacency.
type Edge struct {
	Address     address.MarkovEdgeAddress
	Src, Dst    address.NodeAddress
	Probability float64
	Reversed    bool
	Class       EdgeClass
}

// MarkovProcessGraph is the immutable result of Build: a synthesized,
// normalized, verified transition graph. Zero value is not usable; obtain
// one via Build.
type MarkovProcessGraph struct {
	nodes    map[address.NodeAddress]Node
	order    []address.NodeAddress // insertion order; Nodes() returns nodes in this order
	edges    map[address.MarkovEdgeAddress]Edge
	outEdges map[address.NodeAddress][]address.MarkovEdgeAddress
	inEdges  map[address.NodeAddress][]address.MarkovEdgeAddress
	scoring  []address.NodeAddress // sorted, deduped
	report   *ConstructionReport
}

// ConstructionReport carries additive diagnostic data alongside a
// successfully constructed MarkovProcessGraph (SPEC_FULL.md §C): per-node
// exact stochasticity residuals and a class-by-class edge count, neither of
// which gate construction — they exist purely for callers auditing beyond
// spec §6.3's coarse 1e-3 tolerance.
type ConstructionReport struct {
	// Residual maps each non-seed node to (1 - sum of its out-probabilities)
	// as computed immediately before the radiation edge closes it — i.e.
	// the exact share radiation absorbed, with no tolerance rounding.
	Residual map[address.NodeAddress]float64
	// EdgeCountByClass tallies emitted edges per EdgeClass.
	EdgeCountByClass map[EdgeClass]int
}
