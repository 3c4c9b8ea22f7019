package du

import "github.com/idelchi/dirusage/internal/dutime"

// Entry is an aggregated visit, ready for filtering and display.
type Entry struct {
	Path  string
	Depth int
	IsDir bool
	// Value is the entry's own value plus, for directories, its descendants'.
	Value DisplayValue
	// Time is the latest selected timestamp within the entry's subtree.
	Time dutime.DuTime
}

// Engine turns a post-order stream of records into subtree totals.
//
// sizes[d] and times[d] accumulate the entries seen so far at depth d that
// belong to the directory currently open at depth d-1. When that directory
// is visited the deeper slots are folded into it and truncated.
type Engine struct {
	opts  *Options
	sizes []uint64
	times []dutime.DuTime
}

// NewEngine returns an engine with an empty stack.
func NewEngine(opts *Options) *Engine {
	return &Engine{opts: opts}
}

// Reset empties the stack for the next root.
func (e *Engine) Reset() {
	e.sizes = e.sizes[:0]
	e.times = e.times[:0]
}

// Depth returns the number of live slots.
func (e *Engine) Depth() int {
	return len(e.sizes)
}

// Add folds r into the stack and returns its aggregated entry.
func (e *Engine) Add(r Record) Entry {
	d := r.Depth

	for len(e.sizes) <= d {
		e.sizes = append(e.sizes, 0)
		e.times = append(e.times, dutime.DuTime{})
	}

	value := e.own(r)
	latest := r.time(e.opts.TimeKind)

	if r.IsDir && d < len(e.sizes)-1 {
		var children uint64

		for _, s := range e.sizes[d+1:] {
			children += s
		}

		for _, t := range e.times[d+1:] {
			latest = dutime.Max(latest, t)
		}

		e.sizes = e.sizes[:d+1]
		e.times = e.times[:d+1]

		if !e.opts.SeparateDirs {
			value += children
		}
	}

	if !r.IsDir || !e.opts.SeparateDirs {
		e.sizes[d] += value
	}

	e.times[d] = dutime.Max(e.times[d], latest)

	return Entry{
		Path:  r.Path,
		Depth: d,
		IsDir: r.IsDir,
		Value: e.opts.valueOf(value),
		Time:  latest,
	}
}

// own is the entry's value before any descendants are added.
func (e *Engine) own(r Record) uint64 {
	switch {
	case e.opts.Inodes:
		return 1
	case e.opts.ApparentSize:
		return nonNegative(r.Size)
	default:
		return nonNegative(r.Blocks) * 512
	}
}

func nonNegative(n int64) uint64 {
	if n < 0 {
		return 0
	}

	return uint64(n)
}
