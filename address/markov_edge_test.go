package address_test

import (
	"testing"

	"github.com/ayushgupta0610/sourcecred/address"
	"github.com/stretchr/testify/require"
)

func TestMarkovEdgeAddress_EncodesDirectionAndUnderlying(t *testing.T) {
	underlying := address.NewEdgeAddress("repo", "pr#42")
	fwd := address.NewMarkovEdgeAddress(address.Forward, underlying)
	bwd := address.NewMarkovEdgeAddress(address.Backward, underlying)

	require.Equal(t, address.Forward, fwd.Direction())
	require.Equal(t, address.Backward, bwd.Direction())
	require.True(t, fwd.Underlying().Equal(underlying))
	require.True(t, bwd.Underlying().Equal(underlying))
	require.False(t, fwd.Equal(bwd))
	require.False(t, fwd.Direction().Reversed())
	require.True(t, bwd.Direction().Reversed())

	wantParts := append([]string{"F"}, underlying.Parts()...)
	require.Equal(t, wantParts, fwd.Parts())
}

func TestMarkovEdgeAddress_ComparableAsMapKey(t *testing.T) {
	underlying := address.NewEdgeAddress("repo", "pr#1")
	m := map[address.MarkovEdgeAddress]int{}
	fwd := address.NewMarkovEdgeAddress(address.Forward, underlying)
	bwd := address.NewMarkovEdgeAddress(address.Backward, underlying)
	m[fwd] = 1
	m[bwd] = 2
	require.Len(t, m, 2)
	require.Equal(t, 1, m[fwd])
	require.Equal(t, 2, m[bwd])
}

func TestMarkovEdgeAddress_CompareGroupsByUnderlying(t *testing.T) {
	u1 := address.NewEdgeAddress("a")
	u2 := address.NewEdgeAddress("b")
	f1 := address.NewMarkovEdgeAddress(address.Forward, u1)
	b1 := address.NewMarkovEdgeAddress(address.Backward, u1)
	f2 := address.NewMarkovEdgeAddress(address.Forward, u2)

	require.NotEqual(t, 0, f1.Compare(b1))
	require.Equal(t, u1.Compare(u2) < 0, f1.Compare(f2) < 0)
}
