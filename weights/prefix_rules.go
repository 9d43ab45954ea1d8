package weights

import (
	"github.com/ayushgupta0610/sourcecred/address"
)

// NodeWeightRule assigns weight to every node address matching Prefix,
// with ties broken in favor of the longest matching prefix.
type NodeWeightRule struct {
	Prefix []string `yaml:"prefix"`
	Weight float64  `yaml:"weight"`
}

// EdgeWeightRule assigns (Forward, Backward) weights to every edge address
// matching Prefix, with ties broken in favor of the longest matching
// prefix.
type EdgeWeightRule struct {
	Prefix   []string `yaml:"prefix"`
	Forward  float64  `yaml:"forward"`
	Backward float64  `yaml:"backward"`
}

// PrefixRules is a concrete, longest-prefix-wins rule table: the reference
// implementation of the "concrete rule language" spec §4.3 leaves external.
// Nodes or edges matching no rule get weight zero on every side.
type PrefixRules struct {
	NodeRules []NodeWeightRule `yaml:"nodeRules"`
	EdgeRules []EdgeWeightRule `yaml:"edgeRules"`
}

// NodeWeight implements NodeWeightFn's signature by scanning NodeRules for
// the longest prefix match. Complexity: O(len(NodeRules) * avg prefix len).
func (r *PrefixRules) NodeWeight(addr address.NodeAddress) (float64, error) {
	best := -1
	bestWeight := 0.0
	for _, rule := range r.NodeRules {
		prefix := address.NewNodeAddress(rule.Prefix...)
		if !addr.HasPrefix(prefix) {
			continue
		}
		if len(rule.Prefix) > best {
			best = len(rule.Prefix)
			bestWeight = rule.Weight
		}
	}
	return bestWeight, nil
}

// EdgeWeight implements EdgeWeightFn's signature with the same
// longest-prefix discipline as NodeWeight; the single best-matching rule
// supplies both the forward and the backward weight together.
func (r *PrefixRules) EdgeWeight(addr address.EdgeAddress) (forward, backward float64, err error) {
	best := -1
	for _, rule := range r.EdgeRules {
		prefix := address.NewEdgeAddress(rule.Prefix...)
		if !addr.HasPrefix(prefix) {
			continue
		}
		if len(rule.Prefix) > best {
			best = len(rule.Prefix)
			forward, backward = rule.Forward, rule.Backward
		}
	}
	return forward, backward, nil
}

// AsFns adapts r into the NodeWeightFn/EdgeWeightFn pair the Builder
// consumes.
func (r *PrefixRules) AsFns() (NodeWeightFn, EdgeWeightFn) {
	return r.NodeWeight, r.EdgeWeight
}
