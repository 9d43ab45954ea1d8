// Package epoch partitions a timeline into week-aligned boundaries spanning
// a set of observed edge timestamps, and answers which half-open interval
// ("epoch") a given timestamp falls into.
//
// Boundaries is the sorted sequence [-∞, b1, b2, ..., bk, +∞] where
// b1..bk are week-aligned instants (starts of calendar weeks, UTC) such
// that b1 <= min(timestamps) and bk >= max(timestamps). An empty input
// yields the degenerate Boundaries{-∞, +∞} (a single epoch spanning all
// time). The k+1 half-open intervals [bi, bi+1) are indexed 0..k; EpochIndex
// reports, for any timestamp, the largest index i with bi <= t.
//
// Boundaries are deterministic and tied to a fixed reference instant
// (referenceWeekStartMillis, a Monday 00:00:00 UTC) so that two partitioner runs
// over the same input always agree, and so that week grids computed across
// separate invocations (e.g. before/after new edges arrive) stay aligned.
package epoch
