package config

import (
	"fmt"
	"os"
)

// exampleFile is the commented data file WriteExample emits. Values
// are valid for an MW210V 8x39; be careful adding gears, the
// possibility count grows factorially (25 gears give about 1.25
// billion placements).
const exampleFile = `# Lathe data file for the change-gear search.
#
# All diameters and clearances are tooth-equivalent sizes: the number
# of teeth a gear of the same physical dimension would have, with a
# safety margin folded in.
#
# Units for pitch_unit and leadscrew_unit: mm, tpi.

lathe:
  spindle_teeth: 56
  spindle_diameter: 56
  leadscrew_pitch: 2
  leadscrew_unit: mm
  leadscrew_diameter: 23
  max_centers: 135
  reach_dimension: 115
  gear_clearance: 4
  min_belt_teeth: 33

gears: [24, 30, 40, 48, 50, 52, 60, 60, 66, 70, 72, 75]

pitches: [40, 32, 28, 24, 20, 18, 16, 14, 13, 12, 11, 10, 9, 8, 7, 6]
pitch_unit: tpi
`

// WriteExample writes the commented example data file to path so the
// operator can edit it. An existing file is never overwritten.
func WriteExample(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return fmt.Errorf("%w: %s", ErrExists, path)
		}

		return err
	}
	defer f.Close()

	_, err = f.WriteString(exampleFile)

	return err
}
