package fit_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tarnvik/changegear/fit"
	"github.com/tarnvik/changegear/gear"
)

// testMachine returns the reference MW210-style parameter set used
// throughout the boundary tests.
func testMachine() gear.Machine {
	return gear.Machine{
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
}

// TestBeltCleared_Boundary: a < MinBeltTeeth fouls, equality clears.
func TestBeltCleared_Boundary(t *testing.T) {
	m := testMachine()
	require.False(t, fit.BeltCleared(m, 32))
	require.True(t, fit.BeltCleared(m, 33))
	require.True(t, fit.BeltCleared(m, 34))
}

// TestReachFit_Boundary: sum/2 < reach fails, equality fits.
func TestReachFit_Boundary(t *testing.T) {
	m := testMachine()
	// sum 219 → 109.5 < 110.
	require.False(t, fit.ReachFit(m, 43, 44, 44, 44, 44))
	// sum 220 → exactly 110.
	require.True(t, fit.ReachFit(m, 44, 44, 44, 44, 44))
	// sum 221 → 110.5.
	require.True(t, fit.ReachFit(m, 45, 44, 44, 44, 44))
}

// TestCentersFit_Boundary: sum/2 > max fails, equality fits.
func TestCentersFit_Boundary(t *testing.T) {
	m := testMachine()
	// sum 269 → 134.5.
	require.True(t, fit.CentersFit(m, 67, 67, 67, 68))
	// sum 270 → exactly 135.
	require.True(t, fit.CentersFit(m, 67, 67, 68, 68))
	// sum 271 → 135.5 > 135.
	require.False(t, fit.CentersFit(m, 67, 68, 68, 68))
}

// TestSpindleCleared_Boundary: b + spindleDiameter >= spindleTeeth + a
// fouls; one tooth under clears.
func TestSpindleCleared_Boundary(t *testing.T) {
	m := testMachine()
	// Threshold for a=40: b + 56 vs 96 → b=40 is equality → fouls.
	require.False(t, fit.SpindleCleared(m, 40, 40))
	require.False(t, fit.SpindleCleared(m, 40, 41))
	require.True(t, fit.SpindleCleared(m, 40, 39))
}

// TestLeadCleared_Boundary: a + leadscrewDiameter >= b + c fouls.
func TestLeadCleared_Boundary(t *testing.T) {
	m := testMachine()
	// a=40: 63 vs b+c. Equality fouls.
	require.False(t, fit.LeadCleared(m, 40, 30, 33))
	require.False(t, fit.LeadCleared(m, 40, 30, 32))
	require.True(t, fit.LeadCleared(m, 40, 30, 34))
}

// TestGearCleared_Boundary: a + c + clearance >= b + d fouls.
func TestGearCleared_Boundary(t *testing.T) {
	m := testMachine()
	// a=24, c=24 → 52 vs b+d. Equality fouls.
	require.False(t, fit.GearCleared(m, 24, 26, 24, 26))
	require.False(t, fit.GearCleared(m, 24, 25, 24, 26))
	require.True(t, fit.GearCleared(m, 24, 26, 24, 27))
}
