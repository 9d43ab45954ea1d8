// builder.go — the MPG Builder: the orchestrating constructor (spec §4.5).
//
// Construction order (fixed, for diagnostic consistency — the end-state
// does not depend on it beyond the emitter's own iteration order):
//  1. Determine scoring addresses and week-aligned boundaries.
//  2. Emit the seed node.
//  3. Emit one base node per input graph node (rejecting reserved-prefix
//     addresses and non-finite/negative weights).
//  4. Emit epoch nodes, payout edges, and webbing edges.
//  5. Emit minting edges from the seed.
//  6. Emit base edges, rewriting scoring endpoints to their epoch
//     incarnation and normalizing per source group.
//  7. Emit radiation edges closing every non-seed node's outgoing mass.
// Finally, verify every node's out-transition probabilities sum to 1.0
// within spec §6.3's tolerance.
package mpg

import (
	"fmt"
	"sort"

	"github.com/ayushgupta0610/sourcecred/address"
	"github.com/ayushgupta0610/sourcecred/epoch"
	"github.com/ayushgupta0610/sourcecred/fibration"
	"github.com/ayushgupta0610/sourcecred/weights"
	"gonum.org/v1/gonum/floats"
)

// baseCandidate is a single rewritten, unidirectional base-edge candidate
// awaiting per-source normalization (spec §4.5 step 6).
type baseCandidate struct {
	underlying address.EdgeAddress
	direction  address.Direction
	src, dst   address.NodeAddress
	weight     float64
}

// Build is the MPG's single pure constructor. It returns a fully
// normalized, verified MarkovProcessGraph, or an *Error identifying the
// first violated precondition or invariant.
func Build(graph WeightedGraph, opts Options) (*MarkovProcessGraph, error) {
	log := withLogger(opts.Logger)

	if err := validateOptions(opts.Fibration, opts.Seed); err != nil {
		log.WithError(err).Debug("rejected: configuration")
		return nil, err
	}
	tauEpoch := epochTransitionRemainder(opts.Fibration, opts.Seed)
	baseRemainder := baseNodeRemainder(opts.Seed)

	inputNodes := graph.Nodes()
	inputEdges := graph.Edges()

	nodeAddrs := make([]address.NodeAddress, len(inputNodes))
	for i, n := range inputNodes {
		nodeAddrs[i] = n.Address
	}

	timestamps := make([]int64, 0, len(inputEdges))
	for _, e := range inputEdges {
		if e.Dangling {
			continue
		}
		timestamps = append(timestamps, e.TimestampMs)
	}
	boundaries := epoch.Partition(timestamps)
	plan := fibration.Build(CorePrefix, nodeAddrs, opts.Fibration.ScoringPrefixes, boundaries)

	log.WithFields(map[string]interface{}{
		"inputNodes":   len(inputNodes),
		"inputEdges":   len(inputEdges),
		"scoring":      len(plan.ScoringAddresses),
		"boundaries":   len(boundaries),
		"tauEpoch":     tauEpoch,
		"baseRemainder": baseRemainder,
	}).Debug("fibration planned")

	mg := &MarkovProcessGraph{
		nodes:    map[address.NodeAddress]Node{},
		edges:    map[address.MarkovEdgeAddress]Edge{},
		outEdges: map[address.NodeAddress][]address.MarkovEdgeAddress{},
		inEdges:  map[address.NodeAddress][]address.MarkovEdgeAddress{},
		scoring:  plan.ScoringAddresses,
	}

	addNode := func(n Node) error {
		if _, exists := mg.nodes[n.Address]; exists {
			return newError(InvariantError, ErrDuplicateNodeAddress, "duplicate node address", n.Address.String())
		}
		mg.nodes[n.Address] = n
		mg.order = append(mg.order, n.Address)
		return nil
	}

	addEdge := func(e Edge) error {
		if _, exists := mg.edges[e.Address]; exists {
			return newError(InvariantError, ErrDuplicateEdgeAddress, "duplicate markov edge address", e.Address.String())
		}
		if e.Probability < 0 || e.Probability > 1 {
			return newError(InvariantError, ErrProbabilityOutOfRange, "probability outside [0,1]",
				fmt.Sprintf("%s=%g", e.Address, e.Probability))
		}
		mg.edges[e.Address] = e
		mg.outEdges[e.Src] = append(mg.outEdges[e.Src], e.Address)
		mg.inEdges[e.Dst] = append(mg.inEdges[e.Dst], e.Address)
		return nil
	}

	// Step 2: seed node.
	if err := addNode(Node{Address: SeedAddress, Description: "seed", Class: SeedNodeClass}); err != nil {
		return nil, err
	}

	// Step 3: base nodes.
	seen := map[address.NodeAddress]bool{}
	for _, n := range inputNodes {
		if n.Address.HasPrefix(CorePrefix) {
			return nil, newError(InputError, ErrReservedPrefix, "input node uses the reserved core prefix", n.Address.String())
		}
		if seen[n.Address] {
			return nil, newError(InvariantError, ErrDuplicateNodeAddress, "duplicate input node address", n.Address.String())
		}
		seen[n.Address] = true

		w, err := opts.NodeWeight(n.Address)
		if err != nil {
			return nil, newError(InputError, ErrNonFiniteWeight, err.Error(), n.Address.String())
		}
		if !weights.Finite(w) {
			return nil, newError(InputError, ErrNonFiniteWeight, "node weight must be finite and non-negative", n.Address.String())
		}
		if err := addNode(Node{Address: n.Address, Description: n.Description, Mint: w, Class: BaseNodeClass}); err != nil {
			return nil, err
		}
	}

	// Step 4: epoch nodes, payout edges, webbing edges.
	for _, oe := range plan.Owners {
		for i, epochAddr := range oe.EpochAddr {
			desc := fmt.Sprintf("epoch node for %s at interval %d", oe.Owner, i)
			if err := addNode(Node{Address: epochAddr, Description: desc, Class: EpochNodeClass}); err != nil {
				return nil, err
			}
			payoutUnderlying := EpochPayoutEdgePrefix.Append(epochAddr.Parts()...)
			payoutAddr := address.NewMarkovEdgeAddress(address.Forward, payoutUnderlying)
			if err := addEdge(Edge{
				Address: payoutAddr, Src: epochAddr, Dst: oe.Owner,
				Probability: opts.Fibration.Beta, Class: PayoutEdgeClass,
			}); err != nil {
				return nil, err
			}
		}
	}
	for _, wp := range plan.Webbing {
		underlying := EpochWebbingEdgePrefix.Append(wp.PrevEpoch.Parts()...).Append(wp.ThisEpoch.Parts()...)
		fwdAddr := address.NewMarkovEdgeAddress(address.Forward, underlying)
		bwdAddr := address.NewMarkovEdgeAddress(address.Backward, underlying)
		if err := addEdge(Edge{
			Address: fwdAddr, Src: wp.PrevEpoch, Dst: wp.ThisEpoch,
			Probability: opts.Fibration.GammaForward, Class: WebbingEdgeClass,
		}); err != nil {
			return nil, err
		}
		if err := addEdge(Edge{
			Address: bwdAddr, Src: wp.ThisEpoch, Dst: wp.PrevEpoch,
			Probability: opts.Fibration.GammaBackward, Reversed: true, Class: WebbingEdgeClass,
		}); err != nil {
			return nil, err
		}
	}

	// Step 5: minting edges.
	var totalMint float64
	for _, n := range mg.nodes {
		totalMint += n.Mint
	}
	if totalMint <= 0 {
		return nil, newError(InvariantError, ErrZeroTotalMint, "total mint across all nodes must be positive", "")
	}
	for _, addr := range mg.order {
		n := mg.nodes[addr]
		if n.Mint <= 0 {
			continue
		}
		p := n.Mint / totalMint
		underlying := SeedMintEdgePrefix.Append(addr.Parts()...)
		mintAddr := address.NewMarkovEdgeAddress(address.Forward, underlying)
		if err := addEdge(Edge{Address: mintAddr, Src: SeedAddress, Dst: addr, Probability: p, Class: MintingEdgeClass}); err != nil {
			return nil, err
		}
	}

	// Step 6: base edges — build rewritten candidates, then normalize
	// per rewritten source group.
	bySource := map[address.NodeAddress][]baseCandidate{}
	for _, e := range inputEdges {
		if e.Dangling {
			continue
		}
		fwd, bwd, err := opts.EdgeWeight(e.Address)
		if err != nil {
			return nil, newError(InputError, ErrNonFiniteWeight, err.Error(), e.Address.String())
		}
		if fwd > 0 {
			src, err := rewriteEndpoint(mg, plan, e.Src, e.TimestampMs)
			if err != nil {
				return nil, err
			}
			dst, err := rewriteEndpoint(mg, plan, e.Dst, e.TimestampMs)
			if err != nil {
				return nil, err
			}
			bySource[src] = append(bySource[src], baseCandidate{
				underlying: e.Address, direction: address.Forward, src: src, dst: dst, weight: fwd,
			})
		}
		if bwd > 0 {
			src, err := rewriteEndpoint(mg, plan, e.Dst, e.TimestampMs)
			if err != nil {
				return nil, err
			}
			dst, err := rewriteEndpoint(mg, plan, e.Src, e.TimestampMs)
			if err != nil {
				return nil, err
			}
			bySource[src] = append(bySource[src], baseCandidate{
				underlying: e.Address, direction: address.Backward, src: src, dst: dst, weight: bwd,
			})
		}
	}

	sources := make([]address.NodeAddress, 0, len(bySource))
	for src := range bySource {
		sources = append(sources, src)
	}
	sort.Slice(sources, func(i, j int) bool { return sources[i].Compare(sources[j]) < 0 })

	for _, src := range sources {
		cands := bySource[src]
		sort.Slice(cands, func(i, j int) bool {
			ai := address.NewMarkovEdgeAddress(cands[i].direction, cands[i].underlying)
			aj := address.NewMarkovEdgeAddress(cands[j].direction, cands[j].underlying)
			return ai.Compare(aj) < 0
		})

		var w float64
		for _, c := range cands {
			w += c.weight
		}
		remainder := baseRemainder
		if mg.nodes[src].Class == EpochNodeClass {
			remainder = tauEpoch
		}
		for _, c := range cands {
			p := (c.weight / w) * remainder
			edgeAddr := address.NewMarkovEdgeAddress(c.direction, c.underlying)
			if err := addEdge(Edge{
				Address: edgeAddr, Src: c.src, Dst: c.dst,
				Probability: p, Reversed: c.direction.Reversed(), Class: BaseEdgeClass,
			}); err != nil {
				return nil, err
			}
		}
	}

	// Step 7: radiation edges close every non-seed node's outgoing mass.
	report := &ConstructionReport{
		Residual:         map[address.NodeAddress]float64{},
		EdgeCountByClass: map[EdgeClass]int{},
	}
	for _, addr := range mg.order {
		if addr.Equal(SeedAddress) {
			continue
		}
		var m float64
		for _, eAddr := range mg.outEdges[addr] {
			m += mg.edges[eAddr].Probability
		}
		p := 1 - m
		report.Residual[addr] = p
		if p < -radiationClosureTolerance {
			return nil, newError(InvariantError, ErrProbabilityOutOfRange,
				fmt.Sprintf("pre-radiation outgoing mass %g exceeds 1.0 by more than the closure tolerance", m), addr.String())
		}
		if p < 0 {
			p = 0 // within closure tolerance of exact; clamp so addEdge's range check accepts it
		}

		prefix := ContributionRadiationEdgePrefix
		if mg.nodes[addr].Class == EpochNodeClass {
			prefix = EpochRadiationEdgePrefix
		}
		underlying := prefix.Append(addr.Parts()...)
		radAddr := address.NewMarkovEdgeAddress(address.Forward, underlying)
		if err := addEdge(Edge{Address: radAddr, Src: addr, Dst: SeedAddress, Probability: p, Class: RadiationEdgeClass}); err != nil {
			return nil, err
		}
	}

	for _, e := range mg.edges {
		report.EdgeCountByClass[e.Class]++
	}
	mg.report = report

	// Final verification: every node's out-transition probabilities sum
	// to 1.0 within tolerance.
	for _, addr := range mg.order {
		var sum float64
		for _, eAddr := range mg.outEdges[addr] {
			sum += mg.edges[eAddr].Probability
		}
		if !floats.EqualWithinAbs(sum, 1.0, StochasticityTolerance) {
			return nil, newError(InvariantError, ErrStochasticityViolated,
				fmt.Sprintf("node out-probabilities sum to %g, want 1.0", sum), addr.String())
		}
	}

	log.WithFields(map[string]interface{}{
		"nodes": len(mg.nodes),
		"edges": len(mg.edges),
	}).Debug("construction complete")

	return mg, nil
}

// rewriteEndpoint resolves addr to the node that should actually serve as a
// base-edge endpoint: its owning epoch node if addr is a scoring address
// (evaluated at timestamp t), else addr itself — provided addr names a node
// that actually exists in the graph under construction.
func rewriteEndpoint(mg *MarkovProcessGraph, plan *fibration.Plan, addr address.NodeAddress, t int64) (address.NodeAddress, error) {
	if plan.IsScoring(addr) {
		epochAddr, ok := plan.EpochNodeAddress(addr, t)
		if !ok {
			return address.NodeAddress{}, newError(LookupError, ErrUnknownSource, "scoring address has no planned epoch node", addr.String())
		}
		return epochAddr, nil
	}
	if _, ok := mg.nodes[addr]; !ok {
		return address.NodeAddress{}, newError(LookupError, ErrUnknownSource, "edge endpoint references an unknown node", addr.String())
	}
	return addr, nil
}
