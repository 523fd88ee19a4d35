// Package changegear works out which gear trains, drawn from a finite
// gear inventory, can be legally mounted on a lathe's change-gear
// frame, and which of them best approach a set of desired feed rates
// or thread pitches.
//
// The pipeline runs enumeration → constraint filtering → ranking →
// nearest-match search:
//
//	gear/    – tooth counts, inventories, units, slots, machine parameters
//	fit/     – the geometric feasibility predicates
//	train/   – the four layouts, predicate bindings, pitch formulas
//	search/  – streaming enumeration, ranking, dedup, target matching
//	check/   – diagnostic validation of one operator-given placement
//	tpibox/  – companion search sizing the inch-fold gearbox
//	config/  – the YAML lathe data file
//	report/  – fixed-width operator output
//
// The search space is every ordered placement of every 3-, 4- and
// 5-gear subset of the inventory, Σ n!/(n−k)! placements with the
// four-gear pass doubled – about 1.25 billion for 25 gears – so
// candidates stream through the predicates and only fitting trains
// are ever kept.
//
// Everything is deterministic: identical inventory, machine
// parameters and targets give identical ranked output, for any worker
// count.
//
//	go get github.com/tarnvik/changegear
package changegear
