package train

import "errors"

// Sentinel errors returned by the topology registry.
var (
	// ErrInvalidSlots indicates a spacer (or otherwise empty slot) in a
	// position the layout's pitch formula divides by.
	ErrInvalidSlots = errors.New("train: invalid slot assignment")

	// ErrUnknownLayout indicates a spacer pattern that matches none of
	// the four layouts.
	ErrUnknownLayout = errors.New("train: spacer pattern matches no layout")
)

// Layout identifies one of the four fixed mechanical layouts.
type Layout uint8

// The four layouts, in enumeration order.
const (
	Line         Layout = iota // 3 gears: A, C, E
	Dogleg                     // 4 gears: A, B, D, E
	Flash                      // 4 gears: A, C, D, F
	Questionmark               // 5 gears: A, B, C, D, E
)

// String returns the layout's conventional name.
func (l Layout) String() string {
	switch l {
	case Line:
		return "line"
	case Dogleg:
		return "dogleg"
	case Flash:
		return "flash"
	case Questionmark:
		return "questionmark"
	default:
		return "unknown"
	}
}

// Gears returns the number of real gears the layout uses.
func (l Layout) Gears() int {
	switch l {
	case Line:
		return 3
	case Questionmark:
		return 5
	default:
		return 4
	}
}

// Violation names one failed feasibility predicate, in operator terms.
type Violation struct {
	Predicate string // predicate identifier: belt, reach, centers, spindle, lead, gear
	Reason    string // human-readable explanation for the diagnostic report
}
