package fit

import "github.com/tarnvik/changegear/gear"

// BeltCleared reports whether the first-position gear's shaft clears
// the belt-drive housing: a gear smaller than m.MinBeltTeeth puts its
// post inside the housing. Exactly m.MinBeltTeeth still clears.
func BeltCleared(m gear.Machine, a int) bool {
	return a >= m.MinBeltTeeth
}

// ReachFit reports whether the A gear reaches the spindle gear: half
// the summed mesh-line span must reach m.ReachDimension. Exactly
// reaching it fits.
func ReachFit(m gear.Machine, items ...int) bool {
	return half(items) >= m.ReachDimension
}

// CentersFit reports whether the total post-to-post span stays inside
// the frame: half the summed center distances must not exceed
// m.MaxCenters. Exactly hitting the limit fits.
func CentersFit(m gear.Machine, items ...int) bool {
	return half(items) <= m.MaxCenters
}

// SpindleCleared reports whether the gear behind the meshing gear
// clears the spindle: with a meshing the spindle gear and b stacked on
// the same post, b fouls once b + spindle diameter reaches the spindle
// teeth plus a.
func SpindleCleared(m gear.Machine, a, b int) bool {
	return float64(b)+m.SpindleDiameter < float64(m.SpindleTeeth+a)
}

// LeadCleared reports whether gear a clears the leadscrew shaft while
// b meshes c on the lower post.
func LeadCleared(m gear.Machine, a, b, c int) bool {
	return float64(a)+m.LeadscrewDiameter < float64(b+c)
}

// GearCleared reports whether the non-meshing A and C gears clear each
// other with both posts fully occupied (five-gear trains): a and c
// foul once their span plus the clearance margin reaches the b+d span.
func GearCleared(m gear.Machine, a, b, c, d int) bool {
	return float64(a+c)+m.GearClearance < float64(b+d)
}

// half sums the given tooth counts and halves the total: tooth counts
// are diameter-equivalent, so meshing distances are half-sums.
func half(items []int) float64 {
	var sum int
	for _, it := range items {
		sum += it
	}

	return float64(sum) / 2
}
