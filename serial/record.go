package serial

import (
	"encoding/json"
	"fmt"

	"github.com/ayushgupta0610/sourcecred/address"
	"github.com/ayushgupta0610/sourcecred/mpg"
)

// RecordType and RecordVersion are the envelope's expected type tag and
// semantic version (spec §6.2). Unmarshal rejects any record carrying
// different values.
const (
	RecordType    = "sourcecred/markovProcessGraph"
	RecordVersion = "0.1.0"
)

type nodeRecord struct {
	Description string  `json:"description"`
	Mint        float64 `json:"mint"`
	Class       string  `json:"class"`
}

type edgeRecord struct {
	Src                   address.NodeAddress `json:"src"`
	Dst                   address.NodeAddress `json:"dst"`
	Reversed              bool                `json:"reversed"`
	TransitionProbability float64             `json:"transitionProbability"`
	Class                 string              `json:"class"`
}

type payload struct {
	Nodes            map[address.NodeAddress]nodeRecord       `json:"nodes"`
	Edges            map[address.MarkovEdgeAddress]edgeRecord `json:"edges"`
	ScoringAddresses []address.NodeAddress                    `json:"scoringAddresses"`
}

type record struct {
	Type    string  `json:"type"`
	Version string  `json:"version"`
	Payload payload `json:"payload"`
}

// Marshal renders g as the JSON-compatible record of spec §6.2.
func Marshal(g *mpg.MarkovProcessGraph) ([]byte, error) {
	nodes := g.Nodes(address.NodeAddress{})
	nodeMap := make(map[address.NodeAddress]nodeRecord, len(nodes))
	for _, n := range nodes {
		nodeMap[n.Address] = nodeRecord{Description: n.Description, Mint: n.Mint, Class: n.Class.String()}
	}

	edges := g.Edges()
	edgeMap := make(map[address.MarkovEdgeAddress]edgeRecord, len(edges))
	for _, e := range edges {
		edgeMap[e.Address] = edgeRecord{
			Src: e.Src, Dst: e.Dst, Reversed: e.Reversed,
			TransitionProbability: e.Probability, Class: e.Class.String(),
		}
	}

	rec := record{
		Type:    RecordType,
		Version: RecordVersion,
		Payload: payload{
			Nodes:            nodeMap,
			Edges:            edgeMap,
			ScoringAddresses: g.ScoringAddresses(),
		},
	}
	return json.Marshal(rec)
}

// Unmarshal parses data as the record of spec §6.2 and reconstructs the
// MarkovProcessGraph it describes, trusting the payload without
// re-validating stochasticity (spec §4.7).
func Unmarshal(data []byte) (*mpg.MarkovProcessGraph, error) {
	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("serial: malformed record: %w", err)
	}
	if rec.Type != RecordType {
		return nil, &mpg.Error{
			Kind: mpg.ConfigurationError, Detail: "unrecognized record type tag",
			Offending: rec.Type, Err: mpg.ErrUnknownType,
		}
	}
	if rec.Version != RecordVersion {
		return nil, &mpg.Error{
			Kind: mpg.ConfigurationError, Detail: "unsupported record version",
			Offending: rec.Version, Err: mpg.ErrUnknownVersion,
		}
	}

	nodes := make([]mpg.Node, 0, len(rec.Payload.Nodes))
	for addr, nr := range rec.Payload.Nodes {
		class, ok := mpg.ParseNodeClass(nr.Class)
		if !ok {
			return nil, fmt.Errorf("serial: unknown node class %q", nr.Class)
		}
		nodes = append(nodes, mpg.Node{Address: addr, Description: nr.Description, Mint: nr.Mint, Class: class})
	}

	edges := make([]mpg.Edge, 0, len(rec.Payload.Edges))
	for addr, er := range rec.Payload.Edges {
		class, ok := mpg.ParseEdgeClass(er.Class)
		if !ok {
			return nil, fmt.Errorf("serial: unknown edge class %q", er.Class)
		}
		edges = append(edges, mpg.Edge{
			Address: addr, Src: er.Src, Dst: er.Dst,
			Probability: er.TransitionProbability, Reversed: er.Reversed, Class: class,
		})
	}

	return mpg.Restore(nodes, edges, rec.Payload.ScoringAddresses), nil
}
