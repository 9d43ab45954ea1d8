package address

// EdgeAddress identifies an edge in the underlying (bidirectional) input
// graph's edge namespace. It shares NodeAddress's internal shape but is a
// distinct Go type, so the two families are never interchangeable at
// compile time.
type EdgeAddress struct {
	raw string
}

// NewEdgeAddress composes an EdgeAddress from a sequence of parts.
func NewEdgeAddress(parts ...string) EdgeAddress {
	return EdgeAddress{raw: joinParts(parts)}
}

// Append returns a new EdgeAddress with parts appended after the receiver's.
func (a EdgeAddress) Append(parts ...string) EdgeAddress {
	if len(parts) == 0 {
		return a
	}
	return EdgeAddress{raw: a.raw + joinParts(parts)}
}

// Parts decomposes the address back into its constituent parts.
func (a EdgeAddress) Parts() []string {
	return splitParts(a.raw)
}

// HasPrefix reports whether prefix is a prefix of a at a part boundary.
func (a EdgeAddress) HasPrefix(prefix EdgeAddress) bool {
	return hasRawPrefix(a.raw, prefix.raw)
}

// Equal reports whether a and b denote the same address.
func (a EdgeAddress) Equal(b EdgeAddress) bool {
	return a.raw == b.raw
}

// Compare gives a total order over edge addresses, consistent with Equal.
func (a EdgeAddress) Compare(b EdgeAddress) int {
	switch {
	case a.raw < b.raw:
		return -1
	case a.raw > b.raw:
		return 1
	default:
		return 0
	}
}

// String renders a diagnostic-only canonical form.
func (a EdgeAddress) String() string {
	return "E:" + joinForDisplay(a.Parts())
}
