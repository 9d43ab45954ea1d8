package address

// NodeAddress identifies a node in the Markov Process Graph namespace.
//
// The zero value is the root address (no parts); every other address is
// reached from it via Append. NodeAddress is comparable (usable as a map
// key) and totally ordered via Compare.
type NodeAddress struct {
	raw string
}

// NewNodeAddress composes a NodeAddress from a sequence of parts.
// Complexity: O(Σ len(parts)).
func NewNodeAddress(parts ...string) NodeAddress {
	return NodeAddress{raw: joinParts(parts)}
}

// Append returns a new NodeAddress formed by appending parts after the
// receiver's own parts. The receiver is left unmodified.
// Complexity: O(Σ len(parts)).
func (a NodeAddress) Append(parts ...string) NodeAddress {
	if len(parts) == 0 {
		return a
	}
	return NodeAddress{raw: a.raw + joinParts(parts)}
}

// Parts decomposes the address back into its constituent parts.
// Parts(NewNodeAddress(ps...)) is equal to ps for any ps, including parts
// that contain the internal separator or escape bytes.
// Complexity: O(len of internal representation).
func (a NodeAddress) Parts() []string {
	return splitParts(a.raw)
}

// HasPrefix reports whether prefix is a prefix of a at a part boundary.
// Complexity: O(len(prefix.raw)).
func (a NodeAddress) HasPrefix(prefix NodeAddress) bool {
	return hasRawPrefix(a.raw, prefix.raw)
}

// Equal reports whether a and b denote the same address.
func (a NodeAddress) Equal(b NodeAddress) bool {
	return a.raw == b.raw
}

// Compare gives a's position relative to b in the address algebra's total
// order: negative if a < b, zero if equal, positive if a > b. The order is
// a deterministic byte-wise comparison of the internal representation; it
// need not match any human-readable lexicographic order over Parts(), only
// be stable and total, which is all the Chain Emitter's canonical
// node_order requires.
func (a NodeAddress) Compare(b NodeAddress) int {
	switch {
	case a.raw < b.raw:
		return -1
	case a.raw > b.raw:
		return 1
	default:
		return 0
	}
}

// String renders a diagnostic-only canonical form: parts joined by "/".
// It is not used for equality, ordering, or hashing.
func (a NodeAddress) String() string {
	parts := a.Parts()
	return "N:" + joinForDisplay(parts)
}

// IsRoot reports whether a carries no parts.
func (a NodeAddress) IsRoot() bool {
	return a.raw == ""
}
