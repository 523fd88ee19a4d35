// Package train is the topology registry of the change-gear search: it
// knows the four fixed layouts a gear train can take on the frame, how
// each layout maps the roles A..F onto the six banjo positions, which
// feasibility predicates gate each layout, and the pitch formula each
// layout produces.
//
// The four layouts, by real-gear count ('H' is a spacer bushing, '|'
// meshing, '-' a gear post, '=' the leadscrew, 'S' the spindle gear):
//
//	 Line    Dogleg   Flash   Questionmark
//
//	S       S        S       S
//	|       |        |       |
//	A-H     A-B      A-H     A-B      One possible population each
//	|         |      |         |      with 3 and 5 gears; two with 4.
//	C-H     H-D      C-D      C-D
//	|         |        |      |
//	E=H     H=E      H=F      E=H
//
// Predicate bindings are layout-specific and not interchangeable: the
// same predicate receives different slots in different layouts (the
// Flash spindle check, for instance, sees 2A+C rather than A). The
// binding tables in layouts.go are the single source of truth; both
// the hot feasibility gate and the diagnostic violation report walk
// the same table.
//
// Pitch formulas (S = spindle teeth, L = leadscrew pitch):
//
//	Line:          S·L/E
//	Dogleg:        S·L/A · B/E
//	Flash:         S·L/C · D/F
//	Questionmark:  S·L/A · B/D · C/E
//
// A spacer in a formula slot is an invalid slot assignment and yields
// ErrInvalidSlots instead of a division fault.
package train
