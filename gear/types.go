package gear

import "errors"

// Sentinel errors shared by the change-gear packages.
var (
	// ErrEmptyInventory indicates that the gear inventory has no entries.
	ErrEmptyInventory = errors.New("gear: inventory is empty")

	// ErrInventoryTooSmall indicates that fewer than MinTrainGears gears
	// are available; no layout can be populated.
	ErrInventoryTooSmall = errors.New("gear: inventory smaller than 3 gears")

	// ErrBadToothCount indicates a zero or negative tooth count.
	ErrBadToothCount = errors.New("gear: tooth count must be positive")

	// ErrBadUnit indicates a pitch unit other than mm or tpi.
	ErrBadUnit = errors.New("gear: unit must be mm or tpi")

	// ErrBadMachine indicates a non-positive machine dimension.
	ErrBadMachine = errors.New("gear: machine dimension must be positive")

	// ErrBadSlotCount indicates a slot tuple that does not have exactly
	// six positions A..F.
	ErrBadSlotCount = errors.New("gear: slot tuple must have 6 positions")

	// ErrBadSlotValue indicates a slot token that is neither a positive
	// tooth count nor the placeholder marker.
	ErrBadSlotValue = errors.New("gear: slot must be a positive tooth count or 'H'")
)

// Train arity bounds. Every layout uses between MinTrainGears and
// MaxTrainGears real gears; the remaining positions hold spacers.
const (
	MinTrainGears = 3
	MaxTrainGears = 5
)

// MillimetresPerInch links the two supported pitch units.
const MillimetresPerInch = 25.4

// Unit is a pitch unit: millimetres-per-thread or threads-per-inch.
type Unit string

// Supported pitch units.
const (
	MM  Unit = "mm"
	TPI Unit = "tpi"
)

// Valid reports whether u is one of the supported units.
func (u Unit) Valid() bool { return u == MM || u == TPI }

// Inventory is the ordered list of available gear tooth counts.
// Duplicates are permitted: two 60-tooth gears are physically distinct.
type Inventory []int

// Validate rejects structurally invalid inventories with the matching
// sentinel: empty, smaller than MinTrainGears, or containing a
// non-positive tooth count.
//
// Complexity: O(n).
func (inv Inventory) Validate() error {
	if len(inv) == 0 {
		return ErrEmptyInventory
	}
	if len(inv) < MinTrainGears {
		return ErrInventoryTooSmall
	}
	for _, t := range inv {
		if t <= 0 {
			return ErrBadToothCount
		}
	}

	return nil
}

// Machine holds the fixed parameters of one lathe. All diameters are
// tooth-equivalent sizes: the number of teeth a gear of the same
// physical diameter would have. The value is read-only for the lifetime
// of a run; components receive it explicitly and never mutate it.
type Machine struct {
	SpindleTeeth      int     // fixed drive gear on the spindle
	SpindleDiameter   float64 // space taken up by the spindle, tooth-equivalent
	LeadscrewPitch    float64 // leadscrew pitch, in LeadscrewUnit
	LeadscrewUnit     Unit    // unit of LeadscrewPitch
	LeadscrewDiameter float64 // space taken up by the leadscrew shaft
	MaxCenters        float64 // max post-to-post center distance
	ReachDimension    float64 // min span so the A gear touches the spindle gear
	GearClearance     float64 // margin between the non-meshing A and C gears
	MinBeltTeeth      int     // smallest A gear whose shaft clears the belt housing
}

// Validate rejects a Machine whose dimensions cannot describe a real
// frame: every dimension must be positive and the leadscrew unit known.
//
// Complexity: O(1).
func (m Machine) Validate() error {
	if !m.LeadscrewUnit.Valid() {
		return ErrBadUnit
	}
	if m.SpindleTeeth <= 0 || m.MinBeltTeeth <= 0 {
		return ErrBadMachine
	}
	if m.SpindleDiameter <= 0 || m.LeadscrewPitch <= 0 || m.LeadscrewDiameter <= 0 {
		return ErrBadMachine
	}
	if m.MaxCenters <= 0 || m.ReachDimension <= 0 || m.GearClearance <= 0 {
		return ErrBadMachine
	}

	return nil
}
