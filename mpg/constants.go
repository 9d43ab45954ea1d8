package mpg

import "github.com/ayushgupta0610/sourcecred/address"

// Reserved address-algebra constants (spec §6.3). Every input graph node
// address is rejected if it falls under CorePrefix; every address the
// Builder itself synthesizes is rooted in it.
var (
	// CorePrefix is the reserved node-address prefix owned entirely by the
	// MPG core; no input graph node may use it.
	CorePrefix = address.NewNodeAddress("sourcecred", "core")

	// SeedAddress is the single sentinel seed node's address.
	SeedAddress = CorePrefix.Append("SEED")

	// EpochNodePrefix roots every synthesized epoch node address.
	EpochNodePrefix = CorePrefix.Append("EPOCH")

	corePrefixEdge = address.NewEdgeAddress("sourcecred", "core")

	// EpochPayoutEdgePrefix roots every payout edge's underlying address.
	EpochPayoutEdgePrefix = corePrefixEdge.Append("fibration", "EPOCH_PAYOUT")

	// EpochWebbingEdgePrefix roots every webbing edge's underlying address.
	EpochWebbingEdgePrefix = corePrefixEdge.Append("fibration", "EPOCH_WEBBING")

	// EpochRadiationEdgePrefix roots every epoch-node radiation edge's
	// underlying address.
	EpochRadiationEdgePrefix = corePrefixEdge.Append("fibration", "EPOCH_RADIATION")

	// ContributionRadiationEdgePrefix roots every non-epoch radiation edge's
	// underlying address.
	ContributionRadiationEdgePrefix = corePrefixEdge.Append("CONTRIBUTION_RADIATION")

	// SeedMintEdgePrefix roots every minting edge's underlying address.
	SeedMintEdgePrefix = corePrefixEdge.Append("SEED_MINT")
)

// StochasticityTolerance is the numerical tolerance (spec §6.3) within
// which every node's out-transition probabilities must sum to 1.0.
const StochasticityTolerance = 1e-3

// radiationClosureTolerance is the tighter tolerance (spec §8 property 6:
// "within 1e-9") the Builder's radiation step uses to reject a node whose
// pre-radiation outgoing mass exceeds 1.0 by more than numerical noise —
// a negative radiation probability beyond this tolerance means an earlier
// construction step (minting, base, payout, or webbing) over-allocated.
const radiationClosureTolerance = 1e-9
