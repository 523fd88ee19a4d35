package gear

import "strconv"

// Slot is one of the six train positions A..F. A real gear stores its
// positive tooth count; an empty position stores Spacer. Spacer is the
// only representation of "no gear" in the module.
type Slot int

// Spacer marks an empty (placeholder) slot.
const Spacer Slot = 0

// IsSpacer reports whether the slot holds no gear.
func (s Slot) IsSpacer() bool { return s == Spacer }

// Teeth returns the tooth count of a real gear, 0 for a spacer.
func (s Slot) Teeth() int { return int(s) }

// String renders a slot the way the operator writes it: the tooth
// count, or "H" for a spacer.
func (s Slot) String() string {
	if s.IsSpacer() {
		return "H"
	}

	return strconv.Itoa(int(s))
}

// Slot indices into a Slots tuple, in banjo order.
const (
	SlotA = iota
	SlotB
	SlotC
	SlotD
	SlotE
	SlotF
	SlotCount
)

// Slots is the full six-position assignment of one train, in the fixed
// order A, B, C, D, E, F. Positions a layout does not use hold Spacer.
type Slots [SlotCount]Slot

// RealTeeth returns the tooth counts of the occupied positions, in
// slot order. The result length is the layout's real-gear arity.
//
// Complexity: O(1) (fixed six positions).
func (s Slots) RealTeeth() []int {
	teeth := make([]int, 0, MaxTrainGears)
	for _, slot := range s {
		if !slot.IsSpacer() {
			teeth = append(teeth, slot.Teeth())
		}
	}

	return teeth
}

// SpacerMask returns a six-bit mask with bit i set when position i is a
// spacer. The mask identifies the layout uniquely (see package train).
func (s Slots) SpacerMask() uint8 {
	var mask uint8
	for i, slot := range s {
		if slot.IsSpacer() {
			mask |= 1 << uint(i)
		}
	}

	return mask
}

// ParseSlot converts one operator token into a Slot: "H" (either case)
// for a spacer, otherwise a positive integer tooth count.
// Returns ErrBadSlotValue on anything else.
func ParseSlot(tok string) (Slot, error) {
	if tok == "H" || tok == "h" {
		return Spacer, nil
	}
	n, err := strconv.Atoi(tok)
	if err != nil || n <= 0 {
		return Spacer, ErrBadSlotValue
	}

	return Slot(n), nil
}

// ParseSlots converts the six operator tokens A..F into a Slots tuple.
// A token count other than six is a hard input failure
// (ErrBadSlotCount); no partial parse is attempted.
func ParseSlots(toks []string) (Slots, error) {
	var s Slots
	if len(toks) != SlotCount {
		return s, ErrBadSlotCount
	}
	for i, tok := range toks {
		slot, err := ParseSlot(tok)
		if err != nil {
			return Slots{}, err
		}
		s[i] = slot
	}

	return s, nil
}
