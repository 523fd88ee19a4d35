// Package gear defines the shared data model for the change-gear search:
// tooth counts, gear inventories, pitch units, the six-position slot
// tuple a train occupies on the banjo, and the machine parameters that
// every feasibility predicate and pitch formula reads.
//
// Design principles:
//   - One immutable Machine value is passed explicitly into every
//     component; no package reads ambient state.
//   - A single canonical placeholder marks an empty slot. There is no
//     second "no gear" representation anywhere in the module.
//   - Deterministic, side-effect free helpers; only sentinel errors,
//     no logging, no panics on user input.
//
// Units:
//
//	The two supported pitch units, millimetres-per-thread (mm) and
//	threads-per-inch (tpi), are reciprocal-proportional through the
//	constant 25.4 mm/inch. Convert therefore maps x to 25.4/x when the
//	units differ and is the identity otherwise; applying it twice
//	returns the original value.
package gear
