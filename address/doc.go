// Package address implements the prefix-structured opaque identifiers used
// throughout the Markov Process Graph: node addresses, edge addresses, and
// the derived markov edge address that tags an underlying edge address with
// a traversal direction.
//
// An address is, conceptually, an ordered sequence of string "parts" (e.g.
// ["sourcecred", "core", "SEED"]). Two addresses are equal iff their part
// sequences are equal. Addresses support composition (Append), decomposition
// (Parts), prefix-testing (HasPrefix), and a total order (Compare) so that
// callers can sort node addresses deterministically (the Chain Emitter
// relies on this for its canonical node_order).
//
// Node addresses and edge addresses are deliberately distinct Go types
// (NodeAddress, EdgeAddress) even though they share the same internal
// part-sequence representation: the type system keeps the two namespaces
// disjoint, so a NodeAddress can never be accidentally substituted where an
// EdgeAddress is expected, and vice versa.
//
// Internally, parts are joined with a reserved separator byte and decoded by
// splitting on it; any part that itself contains the separator or the escape
// byte is escaped first, so NewNodeAddress(parts...).Parts() returns parts
// unchanged for arbitrary part content. String() is diagnostic-only and is
// not part of this round trip.
package address
