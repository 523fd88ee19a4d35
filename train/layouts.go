package train

import (
	"github.com/tarnvik/changegear/fit"
	"github.com/tarnvik/changegear/gear"
)

// Candidate is one ordered placement of real gears onto a layout.
// Candidates are produced by the constructors below and never mutated.
type Candidate struct {
	Layout Layout
	Slots  gear.Slots
}

// NewLine places a three-gear train: A meshes the spindle, C idles, E
// drives the leadscrew. B, D and F hold spacers.
func NewLine(a, c, e int) Candidate {
	return Candidate{Layout: Line, Slots: gear.Slots{
		gear.SlotA: gear.Slot(a),
		gear.SlotC: gear.Slot(c),
		gear.SlotE: gear.Slot(e),
	}}
}

// NewDogleg places a four-gear train with the compound pair on the top
// post: A/B keyed together, D idles, E drives the leadscrew.
func NewDogleg(a, b, d, e int) Candidate {
	return Candidate{Layout: Dogleg, Slots: gear.Slots{
		gear.SlotA: gear.Slot(a),
		gear.SlotB: gear.Slot(b),
		gear.SlotD: gear.Slot(d),
		gear.SlotE: gear.Slot(e),
	}}
}

// NewFlash places a four-gear train with the compound pair on the
// bottom post: A meshes the spindle, C/D keyed together, F drives the
// leadscrew.
func NewFlash(a, c, d, f int) Candidate {
	return Candidate{Layout: Flash, Slots: gear.Slots{
		gear.SlotA: gear.Slot(a),
		gear.SlotC: gear.Slot(c),
		gear.SlotD: gear.Slot(d),
		gear.SlotF: gear.Slot(f),
	}}
}

// NewQuestionmark places a five-gear train: compound pairs on both
// posts, only F holds a spacer.
func NewQuestionmark(a, b, c, d, e int) Candidate {
	return Candidate{Layout: Questionmark, Slots: gear.Slots{
		gear.SlotA: gear.Slot(a),
		gear.SlotB: gear.Slot(b),
		gear.SlotC: gear.Slot(c),
		gear.SlotD: gear.Slot(d),
		gear.SlotE: gear.Slot(e),
	}}
}

// LayoutOf infers the layout implied by a six-position slot tuple from
// its spacer pattern. The mapping is unique: each layout leaves a
// distinct set of positions empty. Returns ErrUnknownLayout for any
// other pattern.
func LayoutOf(s gear.Slots) (Layout, error) {
	switch s.SpacerMask() {
	case 1<<gear.SlotB | 1<<gear.SlotD | 1<<gear.SlotF:
		return Line, nil
	case 1<<gear.SlotC | 1<<gear.SlotF:
		return Dogleg, nil
	case 1<<gear.SlotB | 1<<gear.SlotE:
		return Flash, nil
	case 1 << gear.SlotF:
		return Questionmark, nil
	default:
		return 0, ErrUnknownLayout
	}
}

// gate is one bound feasibility predicate of a layout.
type gate struct {
	name   string
	reason string
	pass   func(gear.Machine, gear.Slots) bool
}

// Per-layout predicate bindings. Argument order matters: the
// predicates are not commutative, and each binding reproduces the
// frame geometry of that layout exactly.
var layoutGates = map[Layout][]gate{
	Line: {
		{"belt", "'A' gear too small to clear belt housing", func(m gear.Machine, s gear.Slots) bool {
			return fit.BeltCleared(m, s[gear.SlotA].Teeth())
		}},
		{"centers", "total center distance too large", func(m gear.Machine, s gear.Slots) bool {
			return fit.CentersFit(m, s[gear.SlotA].Teeth(), s[gear.SlotC].Teeth(), s[gear.SlotC].Teeth(), s[gear.SlotE].Teeth())
		}},
		{"reach", "'A' gear doesn't reach spindle", func(m gear.Machine, s gear.Slots) bool {
			return fit.ReachFit(m, s[gear.SlotA].Teeth(), s[gear.SlotA].Teeth(), s[gear.SlotC].Teeth(), s[gear.SlotC].Teeth(), s[gear.SlotE].Teeth())
		}},
	},
	Dogleg: {
		{"belt", "'A' gear too small to clear belt housing", func(m gear.Machine, s gear.Slots) bool {
			return fit.BeltCleared(m, s[gear.SlotA].Teeth())
		}},
		{"centers", "total center distance too large", func(m gear.Machine, s gear.Slots) bool {
			return fit.CentersFit(m, s[gear.SlotB].Teeth(), s[gear.SlotD].Teeth(), s[gear.SlotD].Teeth(), s[gear.SlotE].Teeth())
		}},
		{"reach", "'A' gear doesn't reach spindle", func(m gear.Machine, s gear.Slots) bool {
			return fit.ReachFit(m, s[gear.SlotA].Teeth(), s[gear.SlotB].Teeth(), s[gear.SlotD].Teeth(), s[gear.SlotD].Teeth(), s[gear.SlotE].Teeth())
		}},
		{"spindle", "'B' gear fouls spindle", func(m gear.Machine, s gear.Slots) bool {
			return fit.SpindleCleared(m, s[gear.SlotA].Teeth(), s[gear.SlotB].Teeth())
		}},
	},
	Flash: {
		{"belt", "'A' gear too small to clear belt housing", func(m gear.Machine, s gear.Slots) bool {
			return fit.BeltCleared(m, s[gear.SlotA].Teeth())
		}},
		{"centers", "total center distance too large", func(m gear.Machine, s gear.Slots) bool {
			return fit.CentersFit(m, s[gear.SlotA].Teeth(), s[gear.SlotC].Teeth(), s[gear.SlotD].Teeth(), s[gear.SlotF].Teeth())
		}},
		{"reach", "'A' gear doesn't reach spindle", func(m gear.Machine, s gear.Slots) bool {
			return fit.ReachFit(m, s[gear.SlotA].Teeth(), s[gear.SlotA].Teeth(), s[gear.SlotC].Teeth(), s[gear.SlotD].Teeth(), s[gear.SlotF].Teeth())
		}},
		// The compound pair sits below the spindle gear here, so the
		// spindle check sees the full 2A+C stack, not A alone.
		{"spindle", "'D' gear fouls spindle", func(m gear.Machine, s gear.Slots) bool {
			return fit.SpindleCleared(m, 2*s[gear.SlotA].Teeth()+s[gear.SlotC].Teeth(), s[gear.SlotD].Teeth())
		}},
		{"lead", "'C' gear fouls leadscrew", func(m gear.Machine, s gear.Slots) bool {
			return fit.LeadCleared(m, s[gear.SlotC].Teeth(), s[gear.SlotD].Teeth(), s[gear.SlotF].Teeth())
		}},
	},
	Questionmark: {
		{"belt", "'A' gear too small to clear belt housing", func(m gear.Machine, s gear.Slots) bool {
			return fit.BeltCleared(m, s[gear.SlotA].Teeth())
		}},
		{"centers", "total center distance too large", func(m gear.Machine, s gear.Slots) bool {
			return fit.CentersFit(m, s[gear.SlotB].Teeth(), s[gear.SlotD].Teeth(), s[gear.SlotC].Teeth(), s[gear.SlotE].Teeth())
		}},
		{"reach", "'A' gear doesn't reach spindle", func(m gear.Machine, s gear.Slots) bool {
			return fit.ReachFit(m, s[gear.SlotA].Teeth(), s[gear.SlotB].Teeth(), s[gear.SlotD].Teeth(), s[gear.SlotC].Teeth(), s[gear.SlotE].Teeth())
		}},
		{"spindle", "'B' gear fouls spindle", func(m gear.Machine, s gear.Slots) bool {
			return fit.SpindleCleared(m, s[gear.SlotA].Teeth(), s[gear.SlotB].Teeth())
		}},
		{"lead", "'D' gear fouls leadscrew", func(m gear.Machine, s gear.Slots) bool {
			return fit.LeadCleared(m, s[gear.SlotD].Teeth(), s[gear.SlotC].Teeth(), s[gear.SlotE].Teeth())
		}},
		{"gear", "'A' and 'C' gears interfere", func(m gear.Machine, s gear.Slots) bool {
			return fit.GearCleared(m, s[gear.SlotA].Teeth(), s[gear.SlotB].Teeth(), s[gear.SlotC].Teeth(), s[gear.SlotD].Teeth())
		}},
	},
}

// Feasible reports whether the candidate passes every predicate its
// layout binds. Short-circuits on the first failure; this is the hot
// path of the enumeration pipeline.
//
// Complexity: O(1): at most seven O(1) predicates.
func (c Candidate) Feasible(m gear.Machine) bool {
	for _, g := range layoutGates[c.Layout] {
		if !g.pass(m, c.Slots) {
			return false
		}
	}

	return true
}

// Violations runs every predicate of the candidate's layout and
// collects the failures. Unlike Feasible it does not short-circuit:
// this is the diagnostic surface of the single-set validator, and the
// operator wants every reason at once.
func (c Candidate) Violations(m gear.Machine) []Violation {
	var vs []Violation
	for _, g := range layoutGates[c.Layout] {
		if !g.pass(m, c.Slots) {
			vs = append(vs, Violation{Predicate: g.name, Reason: g.reason})
		}
	}

	return vs
}
