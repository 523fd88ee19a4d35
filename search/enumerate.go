package search

import (
	"context"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/tarnvik/changegear/gear"
	"github.com/tarnvik/changegear/train"
)

// Run enumerates every placement of the inventory on the frame,
// filters through the layout predicates, and returns the feasible set
// ranked and deduplicated. The result is deterministic for identical
// inputs regardless of worker count.
//
// Errors: validation sentinels from gear, option sentinels from this
// package, train.ErrInvalidSlots (unreachable with a valid inventory),
// or the context's error on cancellation.
//
// Complexity: Σ_{k∈{3,4,4,5}} n!/(n−k)! candidate evaluations plus
// O(f·log f) for ranking f feasible results.
func Run(ctx context.Context, m gear.Machine, inv gear.Inventory, unit gear.Unit, opts ...Option) ([]train.Result, error) {
	o, err := newOptions(opts...)
	if err != nil {
		return nil, err
	}
	if err = m.Validate(); err != nil {
		return nil, err
	}
	if err = inv.Validate(); err != nil {
		return nil, err
	}
	if !unit.Valid() {
		return nil, gear.ErrBadUnit
	}

	// Stage 1 - materialize the k-subsets. Their count is C(n,3) +
	// C(n,4) + C(n,5): thousands, not billions; the factorial blow-up
	// lives in the per-subset permutations, which stay streamed.
	subsets := enumerateSubsets(inv)
	total := len(subsets)

	// Stage 2 - fan the subsets out to workers. Each worker filters
	// its share locally; locals are merged under a mutex at the end of
	// each worker's life, never per candidate.
	var (
		feasible []train.Result
		mu       sync.Mutex
		done     atomic.Int64
		jobs     = make(chan []int)
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(jobs)
		for _, s := range subsets {
			select {
			case jobs <- s:
			case <-gctx.Done():
				return gctx.Err()
			}
		}

		return nil
	})

	for w := 0; w < o.Workers; w++ {
		g.Go(func() error {
			var local []train.Result
			for s := range jobs {
				if err := gctx.Err(); err != nil {
					return err
				}
				if err := placeSubset(m, s, unit, &local); err != nil {
					return err
				}
				if o.Progress != nil {
					o.Progress(int(done.Add(1)), total)
				}
			}
			mu.Lock()
			feasible = append(feasible, local...)
			mu.Unlock()

			return nil
		})
	}

	if err = g.Wait(); err != nil {
		return nil, err
	}

	// Stage 3 - canonical order and physical dedup.
	rank(feasible, o.TieBreak)

	return dedup(feasible), nil
}

// enumerateSubsets returns every k-combination of inventory positions,
// k ∈ {3,4,5}, as tooth-count slices. Positions, not values: two
// 60-tooth gears are distinct physical gears, and dedup later folds
// the resulting identical placements.
func enumerateSubsets(inv gear.Inventory) [][]int {
	var subsets [][]int
	for k := gear.MinTrainGears; k <= gear.MaxTrainGears; k++ {
		if k > len(inv) {
			break
		}
		idx := make([]int, k)
		for i := range idx {
			idx[i] = i
		}
		for {
			s := make([]int, k)
			for i, j := range idx {
				s[i] = inv[j]
			}
			subsets = append(subsets, s)

			// Advance to the next combination in lexicographic order.
			i := k - 1
			for i >= 0 && idx[i] == len(inv)-k+i {
				i--
			}
			if i < 0 {
				break
			}
			idx[i]++
			for j := i + 1; j < k; j++ {
				idx[j] = idx[j-1] + 1
			}
		}
	}

	return subsets
}

// placeSubset tries every ordering of one subset against every layout
// of its arity, appending survivors to out. 4-permutations are tried
// against both Dogleg and Flash.
func placeSubset(m gear.Machine, subset []int, unit gear.Unit, out *[]train.Result) error {
	var walkErr error
	permute(subset, func(p []int) {
		if walkErr != nil {
			return
		}
		switch len(p) {
		case 3:
			// Line: p = [A, C, E].
			walkErr = keep(m, train.NewLine(p[0], p[1], p[2]), unit, out)
		case 4:
			// Dogleg: p = [A, B, D, E].
			if walkErr = keep(m, train.NewDogleg(p[0], p[1], p[2], p[3]), unit, out); walkErr != nil {
				return
			}
			// Flash: p = [A, C, D, F].
			walkErr = keep(m, train.NewFlash(p[0], p[1], p[2], p[3]), unit, out)
		case 5:
			// Questionmark: p = [A, B, D, C, E].
			walkErr = keep(m, train.NewQuestionmark(p[0], p[1], p[3], p[2], p[4]), unit, out)
		}
	})

	return walkErr
}

// keep evaluates one candidate and appends it if it fits.
func keep(m gear.Machine, c train.Candidate, unit gear.Unit, out *[]train.Result) error {
	r, ok, err := train.Evaluate(m, c, unit)
	if err != nil {
		return err
	}
	if ok {
		*out = append(*out, r)
	}

	return nil
}

// permute visits every permutation of s in place (Heap's algorithm,
// iterative). The slice passed to visit is reused between calls; the
// callee must not retain it.
//
// Complexity: O(k!) visits, O(k) extra space.
func permute(s []int, visit func([]int)) {
	k := len(s)
	p := make([]int, k)
	copy(p, s)
	c := make([]int, k)

	visit(p)
	i := 0
	for i < k {
		if c[i] < i {
			if i%2 == 0 {
				p[0], p[i] = p[i], p[0]
			} else {
				p[c[i]], p[i] = p[i], p[c[i]]
			}
			visit(p)
			c[i]++
			i = 0
		} else {
			c[i] = 0
			i++
		}
	}
}
