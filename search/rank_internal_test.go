package search

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tarnvik/changegear/gear"
	"github.com/tarnvik/changegear/train"
)

// res builds a synthetic result for ordering tests.
func res(pitch, disp float64, a int) train.Result {
	return train.Result{
		Layout:     train.Line,
		Slots:      gear.Slots{gear.SlotA: gear.Slot(a), gear.SlotC: 50, gear.SlotE: 60},
		Pitch:      pitch,
		Dispersion: disp,
	}
}

// TestRank_TieBreakDirections: between pitch-equal entries the
// dispersion key follows the configured direction; TightestSpread puts
// the most uniform train first.
func TestRank_TieBreakDirections(t *testing.T) {
	rs := []train.Result{res(2, 9, 40), res(1, 5, 40), res(2, 3, 41), res(2, 6, 42)}

	tight := make([]train.Result, len(rs))
	copy(tight, rs)
	rank(tight, TightestSpread)
	require.Equal(t, []float64{1, 2, 2, 2}, pitches(tight))
	require.Equal(t, []float64{5, 3, 6, 9}, dispersions(tight))

	wide := make([]train.Result, len(rs))
	copy(wide, rs)
	rank(wide, WidestSpread)
	require.Equal(t, []float64{5, 9, 6, 3}, dispersions(wide))
}

// TestRank_TertiarySlotOrder: equal pitch and dispersion fall back to
// lexical slot order, making the ranking total and deterministic.
func TestRank_TertiarySlotOrder(t *testing.T) {
	rs := []train.Result{res(2, 4, 44), res(2, 4, 41), res(2, 4, 43)}
	rank(rs, TightestSpread)
	require.Equal(t, gear.Slot(41), rs[0].Slots[gear.SlotA])
	require.Equal(t, gear.Slot(43), rs[1].Slots[gear.SlotA])
	require.Equal(t, gear.Slot(44), rs[2].Slots[gear.SlotA])
}

// TestDedup_PlaceholderTwins: entries identical in pitch and full slot
// tuple collapse to the first occurrence; near-misses survive.
func TestDedup_PlaceholderTwins(t *testing.T) {
	twin := res(2, 4, 40)
	rs := []train.Result{res(1, 0, 40), twin, twin, res(2, 4, 41)}
	out := dedup(rs)
	require.Len(t, out, 3)
	require.Equal(t, twin, out[1])
	require.Equal(t, gear.Slot(41), out[2].Slots[gear.SlotA])

	// Same slots, different pitch (different layout context): kept.
	rs = []train.Result{res(2, 4, 40), {Layout: train.Line, Slots: twin.Slots, Pitch: 3, Dispersion: 4}}
	require.Len(t, dedup(rs), 2)

	require.Empty(t, dedup(nil))
}

func pitches(rs []train.Result) []float64 {
	out := make([]float64, len(rs))
	for i, r := range rs {
		out[i] = r.Pitch
	}
	return out
}

func dispersions(rs []train.Result) []float64 {
	out := make([]float64, len(rs))
	for i, r := range rs {
		out[i] = r.Dispersion
	}
	return out
}
