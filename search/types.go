package search

import (
	"errors"
	"runtime"

	"github.com/tarnvik/changegear/train"
)

// Sentinel errors returned by the search pipeline.
var (
	// ErrBadWorkers indicates a negative worker count.
	ErrBadWorkers = errors.New("search: worker count must be non-negative")

	// ErrBadTieBreak indicates an unknown tie-break direction.
	ErrBadTieBreak = errors.New("search: unknown tie-break direction")

	// ErrNoFeasible indicates an empty feasible set: no train from the
	// inventory fits the frame.
	ErrNoFeasible = errors.New("search: no feasible configurations")
)

// TieBreak selects the ordering between pitch-equal results.
type TieBreak int

const (
	// TightestSpread sorts pitch-equal results by ascending dispersion:
	// the most mechanically uniform train comes first. Default.
	TightestSpread TieBreak = iota

	// WidestSpread sorts pitch-equal results by descending dispersion.
	WidestSpread
)

// Progress reports enumeration progress. done counts processed
// k-subsets out of total. The hook is invoked from worker goroutines
// and must be safe for concurrent use.
type Progress func(done, total int)

// Options configures one pipeline run.
//
// Workers  – number of enumeration goroutines; 0 means GOMAXPROCS.
// TieBreak – direction of the dispersion tie-break (see TieBreak).
// Progress – optional progress hook; nil disables reporting.
type Options struct {
	Workers  int
	TieBreak TieBreak
	Progress Progress
}

// Option is a functional option for configuring a run.
type Option func(*Options)

// WithWorkers sets the number of enumeration goroutines.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithTieBreak sets the dispersion tie-break direction.
func WithTieBreak(tb TieBreak) Option {
	return func(o *Options) { o.TieBreak = tb }
}

// WithProgress installs a progress hook.
func WithProgress(p Progress) Option {
	return func(o *Options) { o.Progress = p }
}

// newOptions applies opts over defaults and validates the result.
func newOptions(opts ...Option) (Options, error) {
	o := Options{TieBreak: TightestSpread}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Workers < 0 {
		return Options{}, ErrBadWorkers
	}
	if o.Workers == 0 {
		o.Workers = runtime.GOMAXPROCS(0)
	}
	if o.TieBreak != TightestSpread && o.TieBreak != WidestSpread {
		return Options{}, ErrBadTieBreak
	}

	return o, nil
}

// Match is the outcome of the nearest-match scan for one target pitch.
// Either Exact is set, or Lower/Upper bracket the target (one of them
// may be nil at the edges of the feasible range).
type Match struct {
	Target float64
	Exact  *train.Result // entry whose pitch equals the target exactly
	Lower  *train.Result // nearest feasible pitch below the target
	Upper  *train.Result // nearest feasible pitch above the target
}
