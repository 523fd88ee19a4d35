package gear

import "math"

// Dispersion returns the population standard deviation of the given
// tooth counts. It is the uniformity tie-break between pitch-equal
// trains: a small dispersion means similarly sized gears.
//
// Returns 0 for fewer than two values.
//
// Complexity: O(n), two passes, no allocations.
func Dispersion(teeth []int) float64 {
	n := len(teeth)
	if n < 2 {
		return 0
	}

	var sum float64
	for _, t := range teeth {
		sum += float64(t)
	}
	mean := sum / float64(n)

	var ss float64
	for _, t := range teeth {
		d := float64(t) - mean
		ss += d * d
	}

	return math.Sqrt(ss / float64(n))
}

// PermutationBudget returns the exact number of ordered placements the
// enumerator visits for an inventory of size n:
//
//	Σ_{k ∈ {3,4,4,5}} n!/(n−k)!
//
// k=4 appears twice because each 4-permutation is tried against both
// four-gear layouts. The falling factorials are multiplied directly;
// no full factorial is ever formed.
//
// Complexity: O(1).
func PermutationBudget(n int) uint64 {
	var total uint64
	for _, k := range []int{MinTrainGears, 4, 4, MaxTrainGears} {
		if n < k {
			continue
		}
		p := uint64(1)
		for i := 0; i < k; i++ {
			p *= uint64(n - i)
		}
		total += p
	}

	return total
}
