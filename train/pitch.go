package train

import "github.com/tarnvik/changegear/gear"

// Pitch evaluates the candidate's layout formula on its slots and
// converts the result into the requested unit.
//
// Contract: every slot the formula divides by must hold a real gear.
// A spacer there means the candidate was assembled by hand (not by the
// constructors) with an impossible population, and yields
// ErrInvalidSlots rather than a division fault.
//
// Complexity: O(1).
func (c Candidate) Pitch(m gear.Machine, unit gear.Unit) (float64, error) {
	raw, err := c.rawPitch(m)
	if err != nil {
		return 0, err
	}

	return gear.Convert(raw, m.LeadscrewUnit, unit), nil
}

// rawPitch computes the pitch in the leadscrew's own unit.
func (c Candidate) rawPitch(m gear.Machine) (float64, error) {
	s := c.Slots
	base := float64(m.SpindleTeeth) * m.LeadscrewPitch

	switch c.Layout {
	case Line:
		e := s[gear.SlotE].Teeth()
		if e == 0 {
			return 0, ErrInvalidSlots
		}

		return base / float64(e), nil

	case Dogleg:
		a, b, e := s[gear.SlotA].Teeth(), s[gear.SlotB].Teeth(), s[gear.SlotE].Teeth()
		if a == 0 || e == 0 {
			return 0, ErrInvalidSlots
		}

		return base / float64(a) * float64(b) / float64(e), nil

	case Flash:
		cc, d, f := s[gear.SlotC].Teeth(), s[gear.SlotD].Teeth(), s[gear.SlotF].Teeth()
		if cc == 0 || f == 0 {
			return 0, ErrInvalidSlots
		}

		return base / float64(cc) * float64(d) / float64(f), nil

	case Questionmark:
		a, b := s[gear.SlotA].Teeth(), s[gear.SlotB].Teeth()
		cc, d, e := s[gear.SlotC].Teeth(), s[gear.SlotD].Teeth(), s[gear.SlotE].Teeth()
		if a == 0 || d == 0 || e == 0 {
			return 0, ErrInvalidSlots
		}

		return base / float64(a) * float64(b) / float64(d) * float64(cc) / float64(e), nil

	default:
		return 0, ErrUnknownLayout
	}
}

// Result is a candidate that passed every predicate of its layout,
// with the computed (unit-converted) pitch and the dispersion of its
// real tooth counts attached. Immutable once created.
type Result struct {
	Layout     Layout
	Slots      gear.Slots
	Pitch      float64
	Dispersion float64
}

// Evaluate gates the candidate through its layout's predicates and, if
// it fits, attaches pitch and dispersion. The boolean reports
// feasibility; the error reports an invalid slot assignment only.
//
// Complexity: O(1).
func Evaluate(m gear.Machine, c Candidate, unit gear.Unit) (Result, bool, error) {
	if !c.Feasible(m) {
		return Result{}, false, nil
	}
	pitch, err := c.Pitch(m, unit)
	if err != nil {
		return Result{}, false, err
	}

	return Result{
		Layout:     c.Layout,
		Slots:      c.Slots,
		Pitch:      pitch,
		Dispersion: gear.Dispersion(c.Slots.RealTeeth()),
	}, true, nil
}
