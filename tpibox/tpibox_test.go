package tpibox_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tarnvik/changegear/tpibox"
)

// TestSearch_Defaults runs the box search with the MW210 constants and
// checks the structural invariants of the outcome.
func TestSearch_Defaults(t *testing.T) {
	lim := tpibox.DefaultLimits()
	out, err := tpibox.Search(lim)
	require.NoError(t, err)
	require.Positive(t, out.Visited)
	require.NotEmpty(t, out.Sets)

	for _, s := range out.Sets {
		// Linking relations.
		require.Equal(t, s.Idler, lim.SpindleTeeth+s.Primary-s.Output, "Q = S + P − O")
		require.Equal(t, s.Secondary, s.Cluster+lim.InchFold-s.Idler, "N = M + I − Q")

		// Bounds.
		require.GreaterOrEqual(t, s.Output, lim.SpindleTeeth+lim.SnagMargin)
		require.Less(t, s.Output, lim.MaxOutput)
		require.Less(t, s.Primary, lim.MaxPrimary)
		require.GreaterOrEqual(t, s.Idler, lim.InchFold+lim.SnagMargin)
		require.Less(t, s.Cluster, lim.MaxCluster)
		require.GreaterOrEqual(t, s.Secondary, lim.MinSecondary)

		// Acceptance: the effective ratio sits on the 1/1024-inch grid.
		z := float64(lim.SpindleTeeth) / float64(s.Primary) *
			float64(lim.InchFold) / float64(s.Cluster) * float64(s.Secondary)
		require.LessOrEqual(t, math.Abs(math.Mod(z, tpibox.InchStep)), lim.Tolerance)
		require.InDelta(t, z, s.Effective, 1e-6)
	}
}

// TestSearch_Ranking: ascending primary gear, descending effective
// ratio within equal primaries.
func TestSearch_Ranking(t *testing.T) {
	out, err := tpibox.Search(tpibox.DefaultLimits())
	require.NoError(t, err)
	for i := 1; i < len(out.Sets); i++ {
		prev, cur := out.Sets[i-1], out.Sets[i]
		require.LessOrEqual(t, prev.Primary, cur.Primary)
		if prev.Primary == cur.Primary {
			require.GreaterOrEqual(t, prev.Effective, cur.Effective)
		}
	}
}

// TestSearch_Deterministic: identical limits produce identical output.
func TestSearch_Deterministic(t *testing.T) {
	a, err := tpibox.Search(tpibox.DefaultLimits())
	require.NoError(t, err)
	b, err := tpibox.Search(tpibox.DefaultLimits())
	require.NoError(t, err)
	require.Equal(t, a, b)
}

// TestLimits_Validate rejects unsearchable limit sets.
func TestLimits_Validate(t *testing.T) {
	lim := tpibox.DefaultLimits()
	require.NoError(t, lim.Validate())

	bad := lim
	bad.MaxOutput = lim.SpindleTeeth // output can never clear the spindle gear
	require.ErrorIs(t, bad.Validate(), tpibox.ErrBadLimits)

	bad = lim
	bad.Tolerance = 0
	require.ErrorIs(t, bad.Validate(), tpibox.ErrBadLimits)

	bad = lim
	bad.MinSecondary = 0
	require.ErrorIs(t, bad.Validate(), tpibox.ErrBadLimits)

	_, err := tpibox.Search(bad)
	require.ErrorIs(t, err, tpibox.ErrBadLimits)
}
