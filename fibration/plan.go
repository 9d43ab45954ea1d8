package fibration

import (
	"sort"
	"strconv"

	"github.com/ayushgupta0610/sourcecred/address"
	"github.com/ayushgupta0610/sourcecred/epoch"
)

// epochNodeSegment is the fixed part that immediately follows the reserved
// core prefix in every epoch node address (spec §6.3: core prefix + "EPOCH").
const epochNodeSegment = "EPOCH"

// OwnerEpochs holds the planned epoch node addresses for one scoring owner,
// indexed by the same interval index EpochIndex would return (0..k).
type OwnerEpochs struct {
	Owner     address.NodeAddress
	EpochAddr []address.NodeAddress
}

// WebbingPair is one planned forward/backward webbing link between two
// consecutive epochs of the same owner.
type WebbingPair struct {
	Owner     address.NodeAddress
	PrevEpoch address.NodeAddress
	ThisEpoch address.NodeAddress
}

// Plan is the immutable output of Build: the scoring addresses found, the
// boundaries they were fibrated against, and the resulting epoch/webbing
// structure.
type Plan struct {
	ScoringAddresses []address.NodeAddress
	Boundaries       epoch.Boundaries
	Owners           []OwnerEpochs
	Webbing          []WebbingPair

	ownerIndex map[address.NodeAddress]int // Owner -> index into Owners
}

// corePrefix is passed in by the caller of Build so that this package does
// not need to hard-code the reserved namespace itself; mpg.Build passes
// mpg.CorePrefix.
func epochNodeAddress(corePrefix address.NodeAddress, owner address.NodeAddress, boundary int64) address.NodeAddress {
	return corePrefix.Append(epochNodeSegment, boundaryToken(boundary)).Append(owner.Parts()...)
}

func boundaryToken(b int64) string {
	if b == epoch.NegInf {
		return "-inf"
	}
	if b == epoch.PosInf {
		return "+inf"
	}
	return strconv.FormatInt(b, 10)
}

// Build identifies scoring addresses (every node address in nodeAddrs
// matching any of scoringPrefixes) and plans one epoch node per interval of
// boundaries for each, plus webbing pairs for every pair of consecutive
// epochs. corePrefix is the reserved node-address prefix under which epoch
// node addresses are synthesized (spec §6.3).
//
// Complexity: O(n * p + s * k) where n=len(nodeAddrs), p=len(scoringPrefixes),
// s=number of scoring addresses, k=epoch count (len(boundaries)-1).
func Build(corePrefix address.NodeAddress, nodeAddrs []address.NodeAddress, scoringPrefixes []address.NodeAddress, boundaries epoch.Boundaries) *Plan {
	scoringSet := map[address.NodeAddress]struct{}{}
	for _, n := range nodeAddrs {
		for _, prefix := range scoringPrefixes {
			if n.HasPrefix(prefix) {
				scoringSet[n] = struct{}{}
				break
			}
		}
	}

	scoring := make([]address.NodeAddress, 0, len(scoringSet))
	for n := range scoringSet {
		scoring = append(scoring, n)
	}
	sort.Slice(scoring, func(i, j int) bool { return scoring[i].Compare(scoring[j]) < 0 })

	epochCount := len(boundaries) - 1 // number of half-open intervals

	owners := make([]OwnerEpochs, 0, len(scoring))
	ownerIndex := make(map[address.NodeAddress]int, len(scoring))
	var webbing []WebbingPair

	for _, owner := range scoring {
		oe := OwnerEpochs{Owner: owner, EpochAddr: make([]address.NodeAddress, epochCount)}
		for i := 0; i < epochCount; i++ {
			oe.EpochAddr[i] = epochNodeAddress(corePrefix, owner, boundaries[i])
		}
		ownerIndex[owner] = len(owners)
		owners = append(owners, oe)

		for i := 1; i < epochCount; i++ {
			webbing = append(webbing, WebbingPair{
				Owner:     owner,
				PrevEpoch: oe.EpochAddr[i-1],
				ThisEpoch: oe.EpochAddr[i],
			})
		}
	}

	return &Plan{
		ScoringAddresses: scoring,
		Boundaries:       boundaries,
		Owners:           owners,
		Webbing:          webbing,
		ownerIndex:       ownerIndex,
	}
}

// IsScoring reports whether addr was identified as a scoring address.
func (p *Plan) IsScoring(addr address.NodeAddress) bool {
	_, ok := p.ownerIndex[addr]
	return ok
}

// EpochNodeAddress returns the epoch node address owned by owner that
// covers timestamp t, per the partition's EpochIndex. The second return
// value is false if owner is not a scoring address.
func (p *Plan) EpochNodeAddress(owner address.NodeAddress, t int64) (address.NodeAddress, bool) {
	idx, ok := p.ownerIndex[owner]
	if !ok {
		return address.NodeAddress{}, false
	}
	i := epoch.EpochIndex(p.Boundaries, t)
	return p.Owners[idx].EpochAddr[i], true
}

// OwnerOf reports which scoring address owns the given epoch node address.
// It scans the owners linearly, O(epochCount) per owner scanned.
func (p *Plan) OwnerOf(epochAddr address.NodeAddress) (address.NodeAddress, bool) {
	for _, oe := range p.Owners {
		for _, e := range oe.EpochAddr {
			if e.Equal(epochAddr) {
				return oe.Owner, true
			}
		}
	}
	return address.NodeAddress{}, false
}
