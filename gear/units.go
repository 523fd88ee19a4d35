package gear

// Convert maps a raw pitch value from one unit into another.
//
// The two supported units are reciprocal-proportional through
// MillimetresPerInch, so a unit mismatch is resolved by 25.4/x and a
// matching unit is the identity. The mapping is involutive: applying it
// twice with swapped units returns the original value.
//
// Contract: x must be non-zero when the units differ (a zero pitch
// never survives formula evaluation upstream).
//
// Complexity: O(1).
func Convert(x float64, from, to Unit) float64 {
	if from == to {
		return x
	}

	return MillimetresPerInch / x
}
