package main

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

const barWidth = 20

var (
	barDone = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	barRest = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// progressBar renders an in-place terminal progress line. The search
// calls update from several goroutines; the mutex serializes writes
// and drops no-change updates so the hot loop never blocks on the
// terminal.
type progressBar struct {
	mu      sync.Mutex
	w       io.Writer
	lastPct int
}

func newProgressBar(w io.Writer) *progressBar {
	return &progressBar{w: w, lastPct: -1}
}

func (b *progressBar) update(done, total int) {
	pct := done * 100 / total
	b.mu.Lock()
	defer b.mu.Unlock()
	if pct == b.lastPct {
		return
	}
	b.lastPct = pct

	filled := barWidth * pct / 100
	fmt.Fprintf(b.w, "\r[%s%s] %3d%%",
		barDone.Render(strings.Repeat("=", filled)),
		barRest.Render(strings.Repeat(" ", barWidth-filled)),
		pct)
}

func (b *progressBar) finish() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.lastPct >= 0 {
		fmt.Fprintln(b.w)
	}
}
