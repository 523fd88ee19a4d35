// Package report renders search output for the operator: the
// fixed-width train block that mirrors the physical banjo, the
// per-target exact/bracket records, the unit-aware feedrate extremes,
// and the single-set check report.
//
// Two output modes exist. Layout mode prints one bracketing/exact
// block per target in the train grid; list mode prints one compact
// record per entry with an explicit percent-error annotation.
//
// Everything here returns plain strings; sinks (stdout, the result
// log) are the caller's concern.
package report
