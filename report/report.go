package report

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tarnvik/changegear/check"
	"github.com/tarnvik/changegear/gear"
	"github.com/tarnvik/changegear/search"
	"github.com/tarnvik/changegear/train"
)

// ErrBadMode indicates an output mode other than layout or list.
var ErrBadMode = errors.New("report: unknown output mode")

// Mode selects the output rendering.
type Mode string

// Output modes.
const (
	Layout Mode = "layout" // one train grid block per record
	List   Mode = "list"   // one compact line per record
)

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool { return m == Layout || m == List }

// Block renders one train in the fixed-width grid that mirrors the
// banjo: A and B on the top post, pitch beside C and D, E and F at the
// leadscrew. A negative target suppresses the error annotation.
//
//	             60   40
//	   1.86667    H   80  Error: -0.123%
//	             56    H
func Block(r train.Result, target float64) string {
	errStr := ""
	if target > 0 {
		errStr = fmt.Sprintf("  Error: %.3f%%", (r.Pitch-target)/target*100)
	}
	s := r.Slots

	return fmt.Sprintf("%15s%5s\n%10.5f%5s%5s%s\n%15s%5s",
		s[gear.SlotA], s[gear.SlotB],
		r.Pitch, s[gear.SlotC], s[gear.SlotD], errStr,
		s[gear.SlotE], s[gear.SlotF])
}

// Line renders one train as a compact list-mode record.
func Line(r train.Result, target float64) string {
	errStr := ""
	if target > 0 {
		errStr = fmt.Sprintf("  err %+.3f%%", (r.Pitch-target)/target*100)
	}

	return fmt.Sprintf("%10.5f  %-12s  A=%-3s B=%-3s C=%-3s D=%-3s E=%-3s F=%-3s%s",
		r.Pitch, r.Layout,
		r.Slots[gear.SlotA], r.Slots[gear.SlotB], r.Slots[gear.SlotC],
		r.Slots[gear.SlotD], r.Slots[gear.SlotE], r.Slots[gear.SlotF], errStr)
}

// Match renders one per-target record in the requested mode. Exact
// matches produce a single block; brackets produce the nearest-smaller
// and nearest-larger entries around a target separator.
func Match(m search.Match, unit gear.Unit, mode Mode) (string, error) {
	if !mode.Valid() {
		return "", ErrBadMode
	}
	render := Block
	if mode == List {
		render = Line
	}

	var b strings.Builder
	sep := fmt.Sprintf("%4v%4s %s", m.Target, strings.ToUpper(string(unit)), strings.Repeat("-", 11))
	switch {
	case m.Exact != nil:
		fmt.Fprintf(&b, "%s exact\n", sep)
		b.WriteString(render(*m.Exact, m.Target))
	default:
		if m.Lower != nil {
			b.WriteString(render(*m.Lower, m.Target))
			b.WriteByte('\n')
		}
		b.WriteString(sep)
		if m.Upper != nil {
			b.WriteByte('\n')
			b.WriteString(render(*m.Upper, m.Target))
		}
	}

	return b.String(), nil
}

// Extremes renders the physically smallest and biggest feedrate. The
// caller passes the values already unit-resolved by search.Extremes.
func Extremes(smallest, biggest train.Result) string {
	return fmt.Sprintf("Smallest feedrate:\n%s\n\nBiggest feedrate:\n%s",
		Block(smallest, 0), Block(biggest, 0))
}

// Check renders a single-set validation report: the train block, one
// line per violated predicate (or a confirmation), and the error
// figures when a target was given.
func Check(rep check.Report) string {
	var b strings.Builder
	target := 0.0
	if rep.HasTarget {
		target = rep.Target
	}
	b.WriteString(Block(train.Result{Layout: rep.Layout, Slots: rep.Slots, Pitch: rep.Pitch}, target))
	b.WriteByte('\n')
	if rep.Fits {
		b.WriteString("Gears fit.")
	} else {
		for i, v := range rep.Reasons {
			if i > 0 {
				b.WriteByte('\n')
			}
			b.WriteString(v.Reason)
		}
	}
	if rep.HasTarget {
		fmt.Fprintf(&b, "\nAbsolute error: %+.4f %s", rep.AbsErr, rep.AbsErrUnit)
	}

	return b.String()
}

// Runtime renders a duration as h:mm:ss.mmm for the closing summary.
func Runtime(d time.Duration) string {
	ms := d.Milliseconds()
	h := ms / 3_600_000
	m := ms / 60_000 % 60
	s := ms / 1000 % 60

	return fmt.Sprintf("%d:%02d:%02d.%03d", h, m, s, ms%1000)
}
