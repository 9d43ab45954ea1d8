package address

import "strings"

// Direction tags the two halves of a bidirectional underlying edge as they
// appear in the Markov Process Graph.
type Direction byte

const (
	// Forward tags the src->dst half of an underlying edge (reversed=false).
	Forward Direction = 'F'
	// Backward tags the dst->src half of an underlying edge (reversed=true).
	Backward Direction = 'B'
)

// String renders the direction tag as used in markov edge address parts.
func (d Direction) String() string {
	return string(d)
}

// Reversed reports whether this direction corresponds to reversed=true
// (i.e. Backward) per spec §3/§6.2's edge record shape.
func (d Direction) Reversed() bool {
	return d == Backward
}

// MarkovEdgeAddress is the markov-namespace address formed by prepending a
// Direction tag to the parts of an underlying EdgeAddress. It is the
// primary-key component (together with the direction itself, which it
// already encodes) that distinguishes the two unidirectional halves of a
// bidirectional input edge inside the MPG.
//
// MarkovEdgeAddress is comparable and usable as a map key: it embeds
// Direction and EdgeAddress directly rather than re-deriving them from a
// joined string, so Direction() and Underlying() are O(1).
type MarkovEdgeAddress struct {
	direction  Direction
	underlying EdgeAddress
}

// NewMarkovEdgeAddress forms the markov edge address for the given
// direction over the given underlying edge address.
func NewMarkovEdgeAddress(dir Direction, underlying EdgeAddress) MarkovEdgeAddress {
	return MarkovEdgeAddress{direction: dir, underlying: underlying}
}

// Direction returns the direction tag ('F' or 'B').
func (m MarkovEdgeAddress) Direction() Direction {
	return m.direction
}

// Underlying returns the underlying edge address this markov address was
// derived from.
func (m MarkovEdgeAddress) Underlying() EdgeAddress {
	return m.underlying
}

// Parts returns the full part sequence: the direction tag, then the
// underlying edge address's parts.
func (m MarkovEdgeAddress) Parts() []string {
	return append([]string{m.direction.String()}, m.underlying.Parts()...)
}

// Equal reports whether m and other denote the same markov edge address.
func (m MarkovEdgeAddress) Equal(other MarkovEdgeAddress) bool {
	return m.direction == other.direction && m.underlying.Equal(other.underlying)
}

// Compare gives a total order: primarily by underlying edge address, then
// by direction, so that the two halves of one underlying edge sort
// adjacently.
func (m MarkovEdgeAddress) Compare(other MarkovEdgeAddress) int {
	if c := m.underlying.Compare(other.underlying); c != 0 {
		return c
	}
	switch {
	case m.direction < other.direction:
		return -1
	case m.direction > other.direction:
		return 1
	default:
		return 0
	}
}

// String renders a diagnostic-only canonical form.
func (m MarkovEdgeAddress) String() string {
	return "M:" + m.direction.String() + "/" + joinForDisplay(m.underlying.Parts())
}

// joinForDisplay renders parts for diagnostics only; it is never parsed
// back, so no escaping discipline is required here.
func joinForDisplay(parts []string) string {
	return strings.Join(parts, "/")
}
