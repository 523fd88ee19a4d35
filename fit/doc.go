// Package fit holds the geometric feasibility predicates of the
// change-gear search: pure boolean functions over slot tooth counts
// and one gear.Machine value.
//
// Every predicate answers "does this partial placement physically fit
// on the frame"; a candidate train survives only when all predicates
// its layout binds return true. The predicates are not commutative in
// their arguments: each layout binds specific slots to specific
// parameters (see package train).
//
// Boundary semantics are load-bearing and deliberately uneven:
//
//   - ReachFit and CentersFit compare with strict </>: sitting exactly
//     on the limit still fits.
//   - SpindleCleared, LeadCleared and GearCleared compare with >=:
//     touching the obstruction already fouls.
//   - BeltCleared compares with <: the minimum tooth count itself
//     still clears.
//
// Design principles (shared with the rest of the module):
//   - Deterministic, side-effect free, allocation free.
//   - No logging, no panics; the functions cannot fail, only refuse.
//
// Complexity: every predicate is O(1) (ReachFit/CentersFit sum at most
// five values).
package fit
