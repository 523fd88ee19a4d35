// Package check validates one operator-supplied gear placement against
// the frame: the ad-hoc counterpart of the full search.
//
// The input is the full six-position tuple A..F with 'H' marking empty
// positions. The spacer pattern implies the layout (each of the four
// layouts leaves a unique set of positions empty); the same predicate
// bindings the search uses are then evaluated, but as a diagnostic
// surface rather than a gate: every failing predicate is reported as a
// distinct human-readable reason, and the pitch is computed either
// way.
//
// When a target pitch is supplied the report also carries the percent
// error and an absolute error in physical units: thousandths of an
// inch of thread spacing for tpi, millimetres per thread for mm.
package check
