package search

import (
	"sort"

	"github.com/tarnvik/changegear/gear"
	"github.com/tarnvik/changegear/train"
)

// Matches scans the ranked feasible list once against the target
// pitches and returns one record per target, in ascending target
// order.
//
// For each target: an entry whose pitch equals the target exactly
// yields an exact match (the first such entry in rank order, i.e. the
// best one under the configured tie-break); otherwise the first entry
// above the target yields the bracketing pair around it. A target
// below the whole list gets an upper-only bracket; targets above the
// whole list get lower-only brackets.
//
// The input targets are not mutated; the scan consumes a sorted copy
// front to back. An empty feasible list is ErrNoFeasible.
//
// Complexity: O(t·log t + f) for t targets and f feasible results.
func Matches(rs []train.Result, targets []float64) ([]Match, error) {
	if len(rs) == 0 {
		return nil, ErrNoFeasible
	}
	if len(targets) == 0 {
		return nil, nil
	}

	sorted := make([]float64, len(targets))
	copy(sorted, targets)
	sort.Float64s(sorted)

	matches := make([]Match, 0, len(sorted))
	i := 0 // cursor into rs; only ever moves forward
	for _, target := range sorted {
		for i < len(rs) && rs[i].Pitch < target {
			i++
		}
		m := Match{Target: target}
		switch {
		case i == len(rs):
			// Ran off the top: everything feasible is below the target.
			m.Lower = &rs[len(rs)-1]
		case rs[i].Pitch == target:
			m.Exact = &rs[i]
		default:
			// rs[i] is the first entry above the target.
			m.Upper = &rs[i]
			if i > 0 {
				m.Lower = &rs[i-1]
			}
		}
		matches = append(matches, m)
	}

	return matches, nil
}

// Extremes returns the feasible trains with the physically smallest
// and biggest feedrate. The mapping branches on unit: under tpi a
// numerically larger pitch is a physically finer feed, so the smallest
// feedrate is the last ranked entry; under mm it is the first.
func Extremes(rs []train.Result, unit gear.Unit) (smallest, biggest train.Result, err error) {
	if len(rs) == 0 {
		return train.Result{}, train.Result{}, ErrNoFeasible
	}
	lo, hi := rs[0], rs[len(rs)-1]
	if unit == gear.TPI {
		return hi, lo, nil
	}

	return lo, hi, nil
}
