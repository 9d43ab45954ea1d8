package serial_test

import (
	"sort"
	"testing"

	"github.com/ayushgupta0610/sourcecred/address"
	"github.com/ayushgupta0610/sourcecred/mpg"
	"github.com/ayushgupta0610/sourcecred/serial"
	"github.com/stretchr/testify/require"
)

func buildRoundTripGraph(t *testing.T) *mpg.MarkovProcessGraph {
	t.Helper()
	a := address.NewNodeAddress("a")
	b := address.NewNodeAddress("b")
	e := address.NewEdgeAddress("a", "b")

	g, err := mpg.Build(mpg.SliceGraph{
		NodeList: []mpg.InputNode{{Address: a, Description: "node a"}, {Address: b, Description: "node b"}},
		EdgeList: []mpg.InputEdge{{Address: e, Src: a, Dst: b, TimestampMs: 0}},
	}, mpg.Options{
		Fibration: mpg.FibrationOptions{ScoringPrefixes: []address.NodeAddress{a}},
		Seed:      mpg.SeedOptions{Alpha: 0.1},
		NodeWeight: func(addr address.NodeAddress) (float64, error) {
			if addr.Equal(a) {
				return 1, nil
			}
			return 0, nil
		},
		EdgeWeight: func(addr address.EdgeAddress) (float64, float64, error) {
			return 1, 0, nil
		},
	})
	require.NoError(t, err)
	return g
}

func nodeAddressSet(t *testing.T, g *mpg.MarkovProcessGraph) []string {
	t.Helper()
	var out []string
	for _, n := range g.Nodes(address.NodeAddress{}) {
		out = append(out, n.Address.String())
	}
	sort.Strings(out)
	return out
}

func edgeAddressSet(t *testing.T, g *mpg.MarkovProcessGraph) []string {
	t.Helper()
	var out []string
	for _, e := range g.Edges() {
		out = append(out, e.Address.String())
	}
	sort.Strings(out)
	return out
}

func TestMarshalUnmarshal_RoundTrip(t *testing.T) {
	original := buildRoundTripGraph(t)

	data, err := serial.Marshal(original)
	require.NoError(t, err)

	restored, err := serial.Unmarshal(data)
	require.NoError(t, err)

	require.Equal(t, nodeAddressSet(t, original), nodeAddressSet(t, restored))
	require.Equal(t, edgeAddressSet(t, original), edgeAddressSet(t, restored))

	for _, e := range original.Edges() {
		re, ok := restored.Edge(e.Address)
		require.True(t, ok)
		require.InDelta(t, e.Probability, re.Probability, 1e-12)
		require.Equal(t, e.Reversed, re.Reversed)
		require.Equal(t, e.Class, re.Class)
	}

	var origScoring, restScoring []string
	for _, s := range original.ScoringAddresses() {
		origScoring = append(origScoring, s.String())
	}
	for _, s := range restored.ScoringAddresses() {
		restScoring = append(restScoring, s.String())
	}
	require.ElementsMatch(t, origScoring, restScoring)
}

func TestUnmarshal_RejectsUnknownType(t *testing.T) {
	_, err := serial.Unmarshal([]byte(`{"type":"bogus","version":"0.1.0","payload":{}}`))
	require.Error(t, err)
	var cerr *mpg.Error
	require.ErrorAs(t, err, &cerr)
	require.Equal(t, mpg.ConfigurationError, cerr.Kind)
	require.ErrorIs(t, err, mpg.ErrUnknownType)
}

func TestUnmarshal_RejectsUnknownVersion(t *testing.T) {
	data := []byte(`{"type":"sourcecred/markovProcessGraph","version":"9.9.9","payload":{}}`)
	_, err := serial.Unmarshal(data)
	require.Error(t, err)
	require.ErrorIs(t, err, mpg.ErrUnknownVersion)
}
