package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/tarnvik/changegear/gear"
)

// Sentinel errors of the configuration collaborator. Read and schema
// failures wrap these, so callers can branch with errors.Is while the
// message keeps the offending path or key.
var (
	// ErrRead indicates the data file could not be read.
	ErrRead = errors.New("config: cannot read data file")

	// ErrMalformed indicates YAML that does not match the schema
	// (syntax errors and unknown keys included).
	ErrMalformed = errors.New("config: malformed data file")

	// ErrMissingField indicates a required field that was left out.
	ErrMissingField = errors.New("config: missing required field")

	// ErrExists indicates WriteExample would overwrite an existing file.
	ErrExists = errors.New("config: file already exists")
)

// Config is the validated run configuration the core consumes.
type Config struct {
	Machine   gear.Machine
	Gears     gear.Inventory
	Pitches   []float64 // target pitches, ascending
	PitchUnit gear.Unit
}

// file is the YAML schema. Numeric machine fields are pointers so a
// missing field is distinguishable from a zero and reported as
// ErrMissingField rather than failing as a bad dimension.
type file struct {
	Lathe struct {
		SpindleTeeth      *int     `yaml:"spindle_teeth"`
		SpindleDiameter   *float64 `yaml:"spindle_diameter"`
		LeadscrewPitch    *float64 `yaml:"leadscrew_pitch"`
		LeadscrewUnit     *string  `yaml:"leadscrew_unit"`
		LeadscrewDiameter *float64 `yaml:"leadscrew_diameter"`
		MaxCenters        *float64 `yaml:"max_centers"`
		ReachDimension    *float64 `yaml:"reach_dimension"`
		GearClearance     *float64 `yaml:"gear_clearance"`
		MinBeltTeeth      *int     `yaml:"min_belt_teeth"`
	} `yaml:"lathe"`
	Gears     []int     `yaml:"gears"`
	Pitches   []float64 `yaml:"pitches"`
	PitchUnit string    `yaml:"pitch_unit"`
}

// Load reads, parses, and validates a data file.
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s: %v", ErrRead, path, err)
	}

	return Parse(b)
}

// Parse decodes one YAML document with strict field checking and
// validates the result with the core's own validators.
func Parse(b []byte) (Config, error) {
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)

	var f file
	if err := dec.Decode(&f); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	m, err := machineOf(f)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Machine:   m,
		Gears:     gear.Inventory(f.Gears),
		Pitches:   append([]float64(nil), f.Pitches...),
		PitchUnit: gear.Unit(f.PitchUnit),
	}
	if f.PitchUnit == "" {
		return Config{}, fmt.Errorf("%w: pitch_unit", ErrMissingField)
	}
	if !cfg.PitchUnit.Valid() {
		return Config{}, gear.ErrBadUnit
	}
	if err = cfg.Machine.Validate(); err != nil {
		return Config{}, err
	}
	if err = cfg.Gears.Validate(); err != nil {
		return Config{}, err
	}
	if len(cfg.Pitches) == 0 {
		return Config{}, fmt.Errorf("%w: pitches", ErrMissingField)
	}
	// The search consumes targets ascending; sort here once so a
	// hand-ordered file behaves the same as a sorted one.
	sort.Float64s(cfg.Pitches)

	return cfg, nil
}

// machineOf assembles the Machine, reporting the first missing field.
func machineOf(f file) (gear.Machine, error) {
	l := f.Lathe
	for _, req := range []struct {
		name string
		ok   bool
	}{
		{"lathe.spindle_teeth", l.SpindleTeeth != nil},
		{"lathe.spindle_diameter", l.SpindleDiameter != nil},
		{"lathe.leadscrew_pitch", l.LeadscrewPitch != nil},
		{"lathe.leadscrew_unit", l.LeadscrewUnit != nil},
		{"lathe.leadscrew_diameter", l.LeadscrewDiameter != nil},
		{"lathe.max_centers", l.MaxCenters != nil},
		{"lathe.reach_dimension", l.ReachDimension != nil},
		{"lathe.gear_clearance", l.GearClearance != nil},
		{"lathe.min_belt_teeth", l.MinBeltTeeth != nil},
	} {
		if !req.ok {
			return gear.Machine{}, fmt.Errorf("%w: %s", ErrMissingField, req.name)
		}
	}

	return gear.Machine{
		SpindleTeeth:      *l.SpindleTeeth,
		SpindleDiameter:   *l.SpindleDiameter,
		LeadscrewPitch:    *l.LeadscrewPitch,
		LeadscrewUnit:     gear.Unit(*l.LeadscrewUnit),
		LeadscrewDiameter: *l.LeadscrewDiameter,
		MaxCenters:        *l.MaxCenters,
		ReachDimension:    *l.ReachDimension,
		GearClearance:     *l.GearClearance,
		MinBeltTeeth:      *l.MinBeltTeeth,
	}, nil
}
