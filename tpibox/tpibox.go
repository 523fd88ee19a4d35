package tpibox

import (
	"errors"
	"math"
	"sort"

	"github.com/tarnvik/changegear/gear"
)

// ErrBadLimits indicates a limit set that bounds no search space.
var ErrBadLimits = errors.New("tpibox: limits bound no search space")

// InchStep is the acceptance grid: a usable ratio is an integer
// multiple of 1/1024 inch.
const InchStep = gear.MillimetresPerInch / 1024

// Limits bounds the nested-range search. Gear names follow the box
// drawing: P primary, I inch-fold, M cluster, N secondary, Q idler,
// O output.
type Limits struct {
	SpindleTeeth int     // S, fixed by the lathe
	InchFold     int     // I, smallest integer inch-fold: 5·25.4 = 127, prime
	SnagMargin   int     // size difference preventing overlapping teeth snagging
	MaxOutput    int     // O upper bound; more would foul the lathe's B gear
	MaxPrimary   int     // P upper bound; grows the back-bulge
	MaxCluster   int     // M upper bound
	MinSecondary int     // N lower bound
	Tolerance    float64 // absolute tolerance of the divisibility test
}

// DefaultLimits returns the MW210 box constants.
func DefaultLimits() Limits {
	return Limits{
		SpindleTeeth: 56,
		InchFold:     127,
		SnagMargin:   4,
		MaxOutput:    71,
		MaxPrimary:   171,
		MaxCluster:   100,
		MinSecondary: 20,
		Tolerance:    1e-8,
	}
}

// Validate rejects limit sets that cannot bound a search.
func (l Limits) Validate() error {
	if l.SpindleTeeth <= 0 || l.InchFold <= 0 || l.SnagMargin < 0 {
		return ErrBadLimits
	}
	if l.MaxOutput <= l.SpindleTeeth+l.SnagMargin {
		return ErrBadLimits
	}
	if l.MaxPrimary <= 0 || l.MaxCluster <= 0 || l.MinSecondary <= 0 {
		return ErrBadLimits
	}
	if l.Tolerance <= 0 {
		return ErrBadLimits
	}

	return nil
}

// Set is one accepted gear sizing.
type Set struct {
	Primary   int     // P
	InchFold  int     // I
	Cluster   int     // M
	Secondary int     // N
	Idler     int     // Q
	Output    int     // O
	Effective float64 // effective ratio, rounded to 1e-6
}

// Outcome carries the accepted sets and the number of candidates the
// nested ranges visited (the filter's denominator).
type Outcome struct {
	Sets    []Set
	Visited int
}

// Search iterates the nested ranges, applies the two linking
// relations, and keeps every sizing whose effective ratio sits on the
// 1/1024-inch grid within the tolerance. Results are ranked by
// ascending primary gear and descending effective ratio.
//
// Complexity: O(maxO · maxP · maxM) candidate visits; deterministic.
func Search(lim Limits) (Outcome, error) {
	if err := lim.Validate(); err != nil {
		return Outcome{}, err
	}

	var (
		out Outcome
		s   = lim.SpindleTeeth
		i   = lim.InchFold
	)
	// The two lower bounds below are physical constraints: the output
	// gear rides the spindle bushing, and the primary must clear the
	// output across the inch-fold pair.
	for o := s + lim.SnagMargin; o < lim.MaxOutput; o++ {
		for p := i + o + lim.SnagMargin - s; p < lim.MaxPrimary; p++ {
			q := s + p - o
			if q < i+lim.SnagMargin {
				continue
			}
			for m := q + lim.MinSecondary - i; m < lim.MaxCluster; m++ {
				out.Visited++
				n := m + i - q
				// Q and O are intermediaries with no ratio effect.
				z := float64(s) / float64(p) * float64(i) / float64(m) * float64(n)
				if rem := math.Mod(z, InchStep); math.Abs(rem) <= lim.Tolerance {
					out.Sets = append(out.Sets, Set{
						Primary:   p,
						InchFold:  i,
						Cluster:   m,
						Secondary: n,
						Idler:     q,
						Output:    o,
						Effective: math.Round(z*1e6) / 1e6,
					})
				}
			}
		}
	}

	sort.Slice(out.Sets, func(a, b int) bool {
		if out.Sets[a].Primary != out.Sets[b].Primary {
			return out.Sets[a].Primary < out.Sets[b].Primary
		}

		return out.Sets[a].Effective > out.Sets[b].Effective
	})

	return out, nil
}
