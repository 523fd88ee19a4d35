// Package config loads the lathe data file: machine parameters, gear
// inventory, target pitches, and the requested pitch unit.
//
// The schema is explicit, strongly typed YAML. Unknown keys are
// rejected (strict field decoding) instead of silently ignored, and
// every field passes the same structural validation the core applies,
// so a loaded Config is usable as-is. A file that cannot be read or
// parsed is a hard failure; there is no fallback to built-in values.
//
// WriteExample emits a commented example file for the operator to edit
// and refuses to overwrite an existing one.
package config
