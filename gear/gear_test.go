package gear_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tarnvik/changegear/gear"
)

// TestConvert_Identity verifies that matching units leave the value
// untouched.
func TestConvert_Identity(t *testing.T) {
	require.Equal(t, 1.5, gear.Convert(1.5, gear.MM, gear.MM))
	require.Equal(t, 12.0, gear.Convert(12.0, gear.TPI, gear.TPI))
}

// TestConvert_Involutive verifies that a mm→tpi→mm round trip returns
// the original value (the two units are reciprocal through 25.4).
func TestConvert_Involutive(t *testing.T) {
	for _, x := range []float64{0.8, 1.75, 2, 12, 25.4} {
		once := gear.Convert(x, gear.MM, gear.TPI)
		require.InDelta(t, x, gear.Convert(once, gear.TPI, gear.MM), 1e-12)
	}
	// Spot value: 2 mm pitch ≡ 12.7 tpi.
	require.InDelta(t, 12.7, gear.Convert(2, gear.MM, gear.TPI), 1e-12)
}

// TestDispersion_KnownValues checks the population stddev against
// hand-computed values.
func TestDispersion_KnownValues(t *testing.T) {
	// {20,40,60}: mean 40, variance (400+0+400)/3.
	require.InDelta(t, math.Sqrt(800.0/3.0), gear.Dispersion([]int{20, 40, 60}), 1e-12)
	// Uniform counts have zero spread.
	require.Zero(t, gear.Dispersion([]int{50, 50, 50, 50}))
	// Degenerate inputs.
	require.Zero(t, gear.Dispersion(nil))
	require.Zero(t, gear.Dispersion([]int{42}))
}

// fallingFactorial is the reference n!/(n-k)! used to cross-check the
// closed-form budget.
func fallingFactorial(n, k int) uint64 {
	p := uint64(1)
	for i := 0; i < k; i++ {
		p *= uint64(n - i)
	}
	return p
}

// TestPermutationBudget_ClosedForm verifies Σ_{k∈{3,4,4,5}} n!/(n−k)!
// for the inventory sizes the tool realistically sees.
func TestPermutationBudget_ClosedForm(t *testing.T) {
	for n := 5; n <= 25; n++ {
		want := fallingFactorial(n, 3) + 2*fallingFactorial(n, 4) + fallingFactorial(n, 5)
		require.Equal(t, want, gear.PermutationBudget(n), "n=%d", n)
	}
	// The documented scale: 25 gears reach into the billions.
	require.Greater(t, gear.PermutationBudget(25), uint64(1_000_000_000))
	// Sizes below an arity skip that arity rather than wrapping.
	require.Equal(t, fallingFactorial(3, 3), gear.PermutationBudget(3))
	require.Zero(t, gear.PermutationBudget(2))
}

// TestInventory_Validate covers the three structural rejections.
func TestInventory_Validate(t *testing.T) {
	require.ErrorIs(t, gear.Inventory{}.Validate(), gear.ErrEmptyInventory)
	require.ErrorIs(t, gear.Inventory{40, 60}.Validate(), gear.ErrInventoryTooSmall)
	require.ErrorIs(t, gear.Inventory{40, 0, 60}.Validate(), gear.ErrBadToothCount)
	require.ErrorIs(t, gear.Inventory{40, -24, 60}.Validate(), gear.ErrBadToothCount)
	require.NoError(t, gear.Inventory{24, 30, 40}.Validate())
}

// TestMachine_Validate covers unit and dimension checks.
func TestMachine_Validate(t *testing.T) {
	m := gear.Machine{
		SpindleTeeth:      56,
		SpindleDiameter:   56,
		LeadscrewPitch:    2,
		LeadscrewUnit:     gear.MM,
		LeadscrewDiameter: 23,
		MaxCenters:        135,
		ReachDimension:    110,
		GearClearance:     4,
		MinBeltTeeth:      33,
	}
	require.NoError(t, m.Validate())

	bad := m
	bad.LeadscrewUnit = "inch"
	require.ErrorIs(t, bad.Validate(), gear.ErrBadUnit)

	bad = m
	bad.SpindleTeeth = 0
	require.ErrorIs(t, bad.Validate(), gear.ErrBadMachine)

	bad = m
	bad.ReachDimension = -1
	require.ErrorIs(t, bad.Validate(), gear.ErrBadMachine)
}

// TestParseSlots_RoundTrip parses an operator tuple and checks slot
// accessors.
func TestParseSlots_RoundTrip(t *testing.T) {
	s, err := gear.ParseSlots([]string{"60", "40", "H", "80", "h", "56"})
	require.NoError(t, err)
	require.Equal(t, []int{60, 40, 80, 56}, s.RealTeeth())
	require.True(t, s[gear.SlotC].IsSpacer())
	require.Equal(t, "H", s[gear.SlotE].String())
	require.Equal(t, "60", s[gear.SlotA].String())
}

// TestParseSlots_Rejections covers the hard input-validation failures.
func TestParseSlots_Rejections(t *testing.T) {
	_, err := gear.ParseSlots([]string{"60", "40", "H"})
	require.ErrorIs(t, err, gear.ErrBadSlotCount)

	_, err = gear.ParseSlots([]string{"60", "40", "H", "80", "H", "56", "33"})
	require.ErrorIs(t, err, gear.ErrBadSlotCount)

	_, err = gear.ParseSlots([]string{"60", "forty", "H", "80", "H", "56"})
	require.ErrorIs(t, err, gear.ErrBadSlotValue)

	_, err = gear.ParseSlots([]string{"60", "-40", "H", "80", "H", "56"})
	require.ErrorIs(t, err, gear.ErrBadSlotValue)
}

// TestSlots_SpacerMask verifies that the mask tracks spacer positions.
func TestSlots_SpacerMask(t *testing.T) {
	s, err := gear.ParseSlots([]string{"24", "H", "40", "H", "60", "H"})
	require.NoError(t, err)
	// Bits B, D, F (1, 3, 5).
	require.Equal(t, uint8(0b101010), s.SpacerMask())
}
