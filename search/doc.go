// Package search runs the enumeration → filtering → ranking →
// nearest-match pipeline of the change-gear tool.
//
// For an inventory of n gears the enumerator visits every ordered
// placement of every k-subset, k ∈ {3,4,5}; each 4-permutation is
// tried against both four-gear layouts (Dogleg and Flash), so the
// total visit count is Σ_{k∈{3,4,4,5}} n!/(n−k)!, hundreds of
// millions to low billions for realistic inventories of 20–25 gears.
// Candidates therefore stream through the feasibility gate as they are
// generated; only survivors are ever materialized.
//
// The subset space is embarrassingly parallel: combinations are
// partitioned across workers (errgroup + context), each worker filters
// locally, and a final merge-sort-dedup pass restores a canonical
// order, so identical inputs produce identical output for any worker
// count. Cancellation is cooperative: the context is polled once per
// combination, and a cancelled run returns the context's error.
//
// Ranking sorts feasible results by ascending pitch. Between
// pitch-equal results the dispersion tie-break applies; the source
// material is ambiguous about its direction, so it is an explicit
// Option here: TightestSpread (ascending dispersion, the default,
// most mechanically uniform train first) or WidestSpread. A third,
// fixed key (lexical slot order) makes the sort total. Deduplication
// then drops every result whose (pitch, full slot tuple) equals an
// already retained one, keeping the first in sort order.
//
// The nearest-match scan walks the ranked list once against an
// ascending target list: an entry equal to the current target emits an
// exact match (the first such entry, i.e. the best one under the
// configured tie-break); the first entry above the target without a
// prior exact emits the bracketing pair around it. Targets beyond the
// largest feasible pitch receive lower-only brackets.
package search
