package search

import (
	"sort"

	"github.com/tarnvik/changegear/gear"
	"github.com/tarnvik/changegear/train"
)

// rank sorts results into the canonical order: ascending pitch, then
// the configured dispersion tie-break, then lexical slot order. The
// third key makes the order total, so physically identical placements
// land adjacent and the merge is deterministic for any worker count.
func rank(rs []train.Result, tb TieBreak) {
	sort.Slice(rs, func(i, j int) bool {
		a, b := rs[i], rs[j]
		if a.Pitch != b.Pitch {
			return a.Pitch < b.Pitch
		}
		if a.Dispersion != b.Dispersion {
			if tb == WidestSpread {
				return a.Dispersion > b.Dispersion
			}

			return a.Dispersion < b.Dispersion
		}

		return slotsLess(a.Slots, b.Slots)
	})
}

// slotsLess is the lexical order over the full six-position tuple.
func slotsLess(a, b gear.Slots) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}

	return false
}

// dedup removes physical duplicates from a ranked slice: two results
// denote the same train iff their pitch and full slot tuple (spacers
// included) are identical. Such twins arise from permutations that
// only swap equal-toothed gears or reorder spacer positions; ranking
// placed them adjacent, so one forward pass retaining the first
// occurrence suffices (stable dedup).
//
// Complexity: O(f), in place.
func dedup(rs []train.Result) []train.Result {
	if len(rs) == 0 {
		return rs
	}
	out := rs[:1]
	for _, r := range rs[1:] {
		last := out[len(out)-1]
		if r.Pitch == last.Pitch && r.Slots == last.Slots {
			continue
		}
		out = append(out, r)
	}

	return out
}
