// Package serial converts a constructed mpg.MarkovProcessGraph to and from
// the portable JSON-compatible record shape (spec §6.2): a self-describing
// envelope tagging the record with a type name and a semantic version, so a
// reader can reject a record it does not understand before trusting its
// payload.
//
// Deserialization does not re-validate stochasticity or any other
// construction invariant — the payload is trusted as-is, per spec §4.7.
package serial
