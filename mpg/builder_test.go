package mpg_test

import (
	"errors"
	"testing"

	"github.com/ayushgupta0610/sourcecred/address"
	"github.com/ayushgupta0610/sourcecred/mpg"
	"github.com/stretchr/testify/require"
)

func nodeAddr(parts ...string) address.NodeAddress { return address.NewNodeAddress(parts...) }
func edgeAddr(parts ...string) address.EdgeAddress { return address.NewEdgeAddress(parts...) }

func constantWeights(nodeWeights map[address.NodeAddress]float64, edgeWeights map[address.EdgeAddress][2]float64) (
	func(address.NodeAddress) (float64, error),
	func(address.EdgeAddress) (float64, float64, error),
) {
	nodeFn := func(a address.NodeAddress) (float64, error) {
		return nodeWeights[a], nil
	}
	edgeFn := func(a address.EdgeAddress) (float64, float64, error) {
		w := edgeWeights[a]
		return w[0], w[1], nil
	}
	return nodeFn, edgeFn
}

func sumOutProbabilities(t *testing.T, g *mpg.MarkovProcessGraph, addr address.NodeAddress) float64 {
	t.Helper()
	var sum float64
	for _, eAddr := range g.OutEdges(addr) {
		e, ok := g.Edge(eAddr)
		require.True(t, ok)
		sum += e.Probability
	}
	return sum
}

// S1: empty input graph yields ErrZeroTotalMint, since the seed alone has
// nothing to mint to.
func TestBuild_EmptyGraph_ZeroTotalMint(t *testing.T) {
	nodeFn, edgeFn := constantWeights(nil, nil)
	_, err := mpg.Build(mpg.SliceGraph{}, mpg.Options{
		Seed:       mpg.SeedOptions{Alpha: 0.1},
		NodeWeight: nodeFn,
		EdgeWeight: edgeFn,
	})
	require.Error(t, err)
	var cerr *mpg.Error
	require.True(t, errors.As(err, &cerr))
	require.Equal(t, mpg.InvariantError, cerr.Kind)
	require.ErrorIs(t, err, mpg.ErrZeroTotalMint)
}

// S2: a single weighted edge between two non-scoring nodes normalizes to
// the expected base/radiation/minting split.
func TestBuild_SingleEdge_NonScoring(t *testing.T) {
	a, b := nodeAddr("a"), nodeAddr("b")
	e := edgeAddr("a", "b")

	nodeFn, edgeFn := constantWeights(
		map[address.NodeAddress]float64{a: 1, b: 0},
		map[address.EdgeAddress][2]float64{e: {1, 0}},
	)

	g, err := mpg.Build(mpg.SliceGraph{
		NodeList: []mpg.InputNode{{Address: a}, {Address: b}},
		EdgeList: []mpg.InputEdge{{Address: e, Src: a, Dst: b, TimestampMs: 0}},
	}, mpg.Options{
		Seed:       mpg.SeedOptions{Alpha: 0.1},
		NodeWeight: nodeFn,
		EdgeWeight: edgeFn,
	})
	require.NoError(t, err)

	require.InDelta(t, 1.0, sumOutProbabilities(t, g, mpg.SeedAddress), 1e-12)
	require.InDelta(t, 1.0, sumOutProbabilities(t, g, a), 1e-12)
	require.InDelta(t, 1.0, sumOutProbabilities(t, g, b), 1e-12)

	// The only mint recipient is a, so the single minting edge carries p=1.0.
	mintAddrs := g.OutEdges(mpg.SeedAddress)
	require.Len(t, mintAddrs, 1)
	mintEdge, _ := g.Edge(mintAddrs[0])
	require.Equal(t, a, mintEdge.Dst)
	require.InDelta(t, 1.0, mintEdge.Probability, 1e-12)

	// a's base edge to b carries 0.9 of a's mass; the remaining 0.1 radiates.
	var baseProb, radProb float64
	for _, eAddr := range g.OutEdges(a) {
		edge, _ := g.Edge(eAddr)
		switch edge.Class {
		case mpg.BaseEdgeClass:
			baseProb = edge.Probability
		case mpg.RadiationEdgeClass:
			radProb = edge.Probability
		}
	}
	require.InDelta(t, 0.9, baseProb, 1e-12)
	require.InDelta(t, 0.1, radProb, 1e-12)

	// b receives the edge but has no outgoing base edges, so it radiates
	// its entire mass back to the seed.
	require.Len(t, g.OutEdges(b), 1)
	bOut, _ := g.Edge(g.OutEdges(b)[0])
	require.Equal(t, mpg.RadiationEdgeClass, bOut.Class)
	require.InDelta(t, 1.0, bOut.Probability, 1e-12)
}

// S3: as S2, but a is a scoring address. Its base edge now originates from
// a synthesized epoch node instead of a itself, and a radiates its full
// mass since it has no other outgoing edge.
func TestBuild_SingleEdge_ScoringOwner(t *testing.T) {
	a, b := nodeAddr("a"), nodeAddr("b")
	e := edgeAddr("a", "b")

	nodeFn, edgeFn := constantWeights(
		map[address.NodeAddress]float64{a: 1, b: 0},
		map[address.EdgeAddress][2]float64{e: {1, 0}},
	)

	g, err := mpg.Build(mpg.SliceGraph{
		NodeList: []mpg.InputNode{{Address: a}, {Address: b}},
		EdgeList: []mpg.InputEdge{{Address: e, Src: a, Dst: b, TimestampMs: 0}},
	}, mpg.Options{
		Fibration: mpg.FibrationOptions{ScoringPrefixes: []address.NodeAddress{a}},
		Seed:      mpg.SeedOptions{Alpha: 0.1},
		NodeWeight: nodeFn,
		EdgeWeight: edgeFn,
	})
	require.NoError(t, err)

	require.Len(t, g.ScoringAddresses(), 1)
	require.Equal(t, a, g.ScoringAddresses()[0])

	// a's base node now has no outgoing base edge; it radiates entirely.
	require.Len(t, g.OutEdges(a), 1)
	aOut, _ := g.Edge(g.OutEdges(a)[0])
	require.Equal(t, mpg.RadiationEdgeClass, aOut.Class)
	require.InDelta(t, 1.0, aOut.Probability, 1e-12)

	for _, addr := range append([]address.NodeAddress{mpg.SeedAddress, a, b}, epochNodeAddresses(g)...) {
		require.InDelta(t, 1.0, sumOutProbabilities(t, g, addr), 1e-9, "node %s", addr)
	}
}

func epochNodeAddresses(g *mpg.MarkovProcessGraph) []address.NodeAddress {
	var out []address.NodeAddress
	for _, n := range g.Nodes(mpg.EpochNodePrefix) {
		out = append(out, n.Address)
	}
	return out
}

// S4: teleportation parameters exceeding the unit budget reject before any
// node or edge is emitted.
func TestBuild_TeleportationBudgetExceeded(t *testing.T) {
	nodeFn, edgeFn := constantWeights(nil, nil)
	_, err := mpg.Build(mpg.SliceGraph{}, mpg.Options{
		Fibration: mpg.FibrationOptions{Beta: 0.5, GammaForward: 0.3, GammaBackward: 0.3},
		Seed:      mpg.SeedOptions{Alpha: 0.2},
		NodeWeight: nodeFn,
		EdgeWeight: edgeFn,
	})
	require.Error(t, err)
	var cerr *mpg.Error
	require.True(t, errors.As(err, &cerr))
	require.Equal(t, mpg.ConfigurationError, cerr.Kind)
	require.ErrorIs(t, err, mpg.ErrTeleportationBudget)
}

// S5: parallel edges from the same source normalize proportionally to
// their own weight within the shared remainder.
func TestBuild_ParallelEdges(t *testing.T) {
	a, b := nodeAddr("a"), nodeAddr("b")
	e1, e2 := edgeAddr("a", "b", "1"), edgeAddr("a", "b", "2")

	nodeFn, edgeFn := constantWeights(
		map[address.NodeAddress]float64{a: 1, b: 0},
		map[address.EdgeAddress][2]float64{e1: {1, 0}, e2: {3, 0}},
	)

	g, err := mpg.Build(mpg.SliceGraph{
		NodeList: []mpg.InputNode{{Address: a}, {Address: b}},
		EdgeList: []mpg.InputEdge{
			{Address: e1, Src: a, Dst: b, TimestampMs: 0},
			{Address: e2, Src: a, Dst: b, TimestampMs: 0},
		},
	}, mpg.Options{
		Seed:       mpg.SeedOptions{Alpha: 0.1},
		NodeWeight: nodeFn,
		EdgeWeight: edgeFn,
	})
	require.NoError(t, err)

	var p1, p2 float64
	for _, eAddr := range g.OutEdges(a) {
		edge, _ := g.Edge(eAddr)
		if edge.Class != mpg.BaseEdgeClass {
			continue
		}
		switch edge.Address.Underlying() {
		case e1:
			p1 = edge.Probability
		case e2:
			p2 = edge.Probability
		}
	}
	require.InDelta(t, 0.25*0.9, p1, 1e-12)
	require.InDelta(t, 0.75*0.9, p2, 1e-12)
}

// S6: a bidirectional edge produces two distinct markov edges, one per
// direction, each normalized within its own source's group.
func TestBuild_BidirectionalEdge(t *testing.T) {
	a, b := nodeAddr("a"), nodeAddr("b")
	e := edgeAddr("a", "b")

	nodeFn, edgeFn := constantWeights(
		map[address.NodeAddress]float64{a: 1, b: 1},
		map[address.EdgeAddress][2]float64{e: {2, 1}},
	)

	g, err := mpg.Build(mpg.SliceGraph{
		NodeList: []mpg.InputNode{{Address: a}, {Address: b}},
		EdgeList: []mpg.InputEdge{{Address: e, Src: a, Dst: b, TimestampMs: 0}},
	}, mpg.Options{
		Seed:       mpg.SeedOptions{Alpha: 0.1},
		NodeWeight: nodeFn,
		EdgeWeight: edgeFn,
	})
	require.NoError(t, err)

	var fwd, bwd mpg.Edge
	for _, eAddr := range g.OutEdges(a) {
		edge, _ := g.Edge(eAddr)
		if edge.Class == mpg.BaseEdgeClass {
			fwd = edge
		}
	}
	for _, eAddr := range g.OutEdges(b) {
		edge, _ := g.Edge(eAddr)
		if edge.Class == mpg.BaseEdgeClass {
			bwd = edge
		}
	}
	require.Equal(t, a, fwd.Src)
	require.Equal(t, b, fwd.Dst)
	require.False(t, fwd.Reversed)
	require.Equal(t, b, bwd.Src)
	require.Equal(t, a, bwd.Dst)
	require.True(t, bwd.Reversed)
	require.True(t, fwd.Address.Underlying().Equal(bwd.Address.Underlying()))
	require.NotEqual(t, fwd.Address, bwd.Address)
}

// A reserved-prefix input node address is rejected as an InputError before
// any normalization happens.
func TestBuild_ReservedPrefixRejected(t *testing.T) {
	nodeFn, edgeFn := constantWeights(nil, nil)
	_, err := mpg.Build(mpg.SliceGraph{
		NodeList: []mpg.InputNode{{Address: mpg.CorePrefix.Append("squatter")}},
	}, mpg.Options{
		Seed:       mpg.SeedOptions{Alpha: 0.1},
		NodeWeight: nodeFn,
		EdgeWeight: edgeFn,
	})
	require.Error(t, err)
	var cerr *mpg.Error
	require.True(t, errors.As(err, &cerr))
	require.Equal(t, mpg.InputError, cerr.Kind)
	require.ErrorIs(t, err, mpg.ErrReservedPrefix)
}

// A duplicate input node address is an InvariantError.
func TestBuild_DuplicateNodeAddress(t *testing.T) {
	a := nodeAddr("a")
	nodeFn, edgeFn := constantWeights(map[address.NodeAddress]float64{a: 1}, nil)
	_, err := mpg.Build(mpg.SliceGraph{
		NodeList: []mpg.InputNode{{Address: a}, {Address: a}},
	}, mpg.Options{
		Seed:       mpg.SeedOptions{Alpha: 0.1},
		NodeWeight: nodeFn,
		EdgeWeight: edgeFn,
	})
	require.Error(t, err)
	require.ErrorIs(t, err, mpg.ErrDuplicateNodeAddress)
}

// A dangling edge is excluded from construction entirely: it contributes
// neither a base edge nor a boundary timestamp.
func TestBuild_DanglingEdgeExcluded(t *testing.T) {
	a, b := nodeAddr("a"), nodeAddr("b")
	e := edgeAddr("a", "b")
	nodeFn, edgeFn := constantWeights(
		map[address.NodeAddress]float64{a: 1, b: 0},
		map[address.EdgeAddress][2]float64{e: {1, 0}},
	)
	g, err := mpg.Build(mpg.SliceGraph{
		NodeList: []mpg.InputNode{{Address: a}, {Address: b}},
		EdgeList: []mpg.InputEdge{{Address: e, Src: a, Dst: b, TimestampMs: 0, Dangling: true}},
	}, mpg.Options{
		Seed:       mpg.SeedOptions{Alpha: 0.1},
		NodeWeight: nodeFn,
		EdgeWeight: edgeFn,
	})
	require.NoError(t, err)

	// a has no base edge: the dangling edge contributed no candidate, so
	// a radiates its entire mass.
	require.Len(t, g.OutEdges(a), 1)
	aOut, _ := g.Edge(g.OutEdges(a)[0])
	require.Equal(t, mpg.RadiationEdgeClass, aOut.Class)
	require.InDelta(t, 1.0, aOut.Probability, 1e-12)
}

// The construction report tallies edges by class and exposes exact
// per-node residuals alongside the coarser 1e-3 stochasticity tolerance.
func TestBuild_ConstructionReport(t *testing.T) {
	a, b := nodeAddr("a"), nodeAddr("b")
	e := edgeAddr("a", "b")
	nodeFn, edgeFn := constantWeights(
		map[address.NodeAddress]float64{a: 1, b: 0},
		map[address.EdgeAddress][2]float64{e: {1, 0}},
	)
	g, err := mpg.Build(mpg.SliceGraph{
		NodeList: []mpg.InputNode{{Address: a}, {Address: b}},
		EdgeList: []mpg.InputEdge{{Address: e, Src: a, Dst: b, TimestampMs: 0}},
	}, mpg.Options{
		Seed:       mpg.SeedOptions{Alpha: 0.1},
		NodeWeight: nodeFn,
		EdgeWeight: edgeFn,
	})
	require.NoError(t, err)

	report := g.Report()
	require.NotNil(t, report)
	require.Equal(t, 1, report.EdgeCountByClass[mpg.MintingEdgeClass])
	require.Equal(t, 1, report.EdgeCountByClass[mpg.BaseEdgeClass])
	require.Equal(t, 2, report.EdgeCountByClass[mpg.RadiationEdgeClass])
	require.InDelta(t, 0.1, report.Residual[a], 1e-12)
	require.InDelta(t, 1.0, report.Residual[b], 1e-12)
}
