package epoch

import (
	"math"
	"sort"
	"time"
)

// millisPerWeek is the length of one calendar week in milliseconds.
const millisPerWeek = int64(7 * 24 * time.Hour / time.Millisecond)

// referenceWeekStartMillis anchors the week grid: 1970-01-05T00:00:00Z, the
// first Monday on or after the Unix epoch (1970-01-01 was a Thursday). Every
// week boundary produced by Partition is referenceWeekStartMillis plus an
// integer multiple of millisPerWeek, so boundaries computed from disjoint
// timestamp sets still land on the same grid.
const referenceWeekStartMillis = int64(4 * 24 * time.Hour / time.Millisecond)

// NegInf and PosInf are the sentinel boundary values bracketing every
// Boundaries slice, representing -∞ and +∞ respectively.
const (
	NegInf = math.MinInt64
	PosInf = math.MaxInt64
)

// Boundaries is a sorted, deterministic sequence [-∞, b1, ..., bk, +∞].
// Boundaries[0] == NegInf and Boundaries[len-1] == PosInf always hold.
type Boundaries []int64

// Partition computes the week-aligned Boundaries spanning timestamps
// (milliseconds since the Unix epoch). The input order is irrelevant and
// duplicates are tolerated. An empty input yields {NegInf, PosInf}.
//
// Complexity: O(n) for the initial min/max scan plus O(k) to emit the
// week grid, where k is the number of weeks spanned.
func Partition(timestamps []int64) Boundaries {
	if len(timestamps) == 0 {
		return Boundaries{NegInf, PosInf}
	}

	lo, hi := timestamps[0], timestamps[0]
	for _, t := range timestamps[1:] {
		if t < lo {
			lo = t
		}
		if t > hi {
			hi = t
		}
	}

	firstWeek := weekFloor(lo)
	lastWeek := weekFloor(hi)
	if lastWeek < hi {
		// weekFloor(hi) <= hi; advance one more week so the trailing
		// boundary actually closes past the observed max (spec §4.2:
		// bk >= max(timestamps)).
		lastWeek += millisPerWeek
	}

	boundaries := make(Boundaries, 0, (lastWeek-firstWeek)/millisPerWeek+3)
	boundaries = append(boundaries, NegInf)
	for b := firstWeek; b <= lastWeek; b += millisPerWeek {
		boundaries = append(boundaries, b)
	}
	boundaries = append(boundaries, PosInf)
	return boundaries
}

// weekFloor rounds t down to the most recent week-aligned instant on the
// reference grid.
func weekFloor(t int64) int64 {
	offset := t - referenceWeekStartMillis
	weeks := floorDiv(offset, millisPerWeek)
	return referenceWeekStartMillis + weeks*millisPerWeek
}

// floorDiv computes floor(a/b) for b > 0, unlike Go's truncating "/" which
// rounds toward zero and would misplace boundaries for timestamps before
// the reference instant.
func floorDiv(a, b int64) int64 {
	q := a / b
	if r := a % b; r != 0 && ((r < 0) != (b < 0)) {
		q--
	}
	return q
}

// EpochIndex returns the largest index i such that boundaries[i] <= t. With
// the NegInf/PosInf sentinels in place this is always well-defined for any
// finite t: the result is in [0, len(boundaries)-2], identifying one of the
// k+1 half-open intervals [boundaries[i], boundaries[i+1]).
//
// Complexity: O(log len(boundaries)) via binary search.
func EpochIndex(boundaries Boundaries, t int64) int {
	// sort.Search finds the first index for which boundaries[i] > t; the
	// epoch containing t is the one just before that.
	i := sort.Search(len(boundaries), func(i int) bool {
		return boundaries[i] > t
	})
	return i - 1
}
