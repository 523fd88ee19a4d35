package check

import (
	"github.com/tarnvik/changegear/gear"
	"github.com/tarnvik/changegear/train"
)

// Report is the structured outcome of a single-set validation.
type Report struct {
	Layout  train.Layout
	Slots   gear.Slots
	Pitch   float64           // computed pitch in the requested unit
	Fits    bool              // true iff Reasons is empty
	Reasons []train.Violation // one entry per failing predicate

	// Error figures, present only when a target was supplied.
	HasTarget  bool
	Target     float64
	PercentErr float64 // (pitch − target)/target · 100
	AbsErr     float64 // physical-unit error, see AbsErrUnit
	AbsErrUnit string  // "thou/thread" for tpi, "mm/thread" for mm
}

// Option is a functional option for a validation run.
type Option func(*options)

type options struct {
	target    float64
	hasTarget bool
}

// WithTarget supplies a target pitch to compare the computed pitch
// against.
func WithTarget(t float64) Option {
	return func(o *options) {
		o.target = t
		o.hasTarget = true
	}
}

// Run validates one six-position placement against the machine and
// reports fit, pitch, and (optionally) the error against a target.
//
// Errors: gear.ErrBadUnit, machine validation sentinels,
// train.ErrUnknownLayout when the spacer pattern matches no layout,
// and train.ErrInvalidSlots when a formula position is empty.
//
// Complexity: O(1).
func Run(m gear.Machine, unit gear.Unit, slots gear.Slots, opts ...Option) (Report, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if err := m.Validate(); err != nil {
		return Report{}, err
	}
	if !unit.Valid() {
		return Report{}, gear.ErrBadUnit
	}

	layout, err := train.LayoutOf(slots)
	if err != nil {
		return Report{}, err
	}
	c := train.Candidate{Layout: layout, Slots: slots}

	pitch, err := c.Pitch(m, unit)
	if err != nil {
		return Report{}, err
	}

	reasons := c.Violations(m)
	rep := Report{
		Layout:  layout,
		Slots:   slots,
		Pitch:   pitch,
		Fits:    len(reasons) == 0,
		Reasons: reasons,
	}
	if o.hasTarget {
		rep.HasTarget = true
		rep.Target = o.target
		rep.PercentErr = (pitch - o.target) / o.target * 100
		rep.AbsErr, rep.AbsErrUnit = absoluteError(pitch, o.target, unit)
	}

	return rep, nil
}

// absoluteError expresses the pitch deviation in the unit an operator
// measures with. Under tpi the meaningful figure is the thread-spacing
// error in thousandths of an inch (pitch is threads per inch, so the
// spacing is its reciprocal); under mm it is the spacing error
// directly, in millimetres per thread.
func absoluteError(pitch, target float64, unit gear.Unit) (float64, string) {
	if unit == gear.TPI {
		return (1/pitch - 1/target) * 1000, "thou/thread"
	}

	return pitch - target, "mm/thread"
}
