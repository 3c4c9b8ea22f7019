package du

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/idelchi/dirusage/internal/dutime"
	"github.com/idelchi/dirusage/internal/walk"
)

// ErrPartial is returned when some entries or roots could not be read.
// Each failure has already been reported on the error stream.
var ErrPartial = errors.New("some entries could not be processed")

// Streams are the output destinations of a run.
type Streams struct {
	// Out receives one line per displayed entry.
	Out io.Writer
	// Err receives diagnostics.
	Err io.Writer
}

// Summary describes a completed run.
type Summary struct {
	// Roots is the number of root arguments walked successfully.
	Roots int
	// FailedRoots is the number of root arguments that could not be opened.
	FailedRoots int
	// EntryErrors is the number of per-entry failures.
	EntryErrors int
	// Entries is the number of aggregated entries.
	Entries int64
	// Total is the sum of all roots' values.
	Total DisplayValue
	// Elapsed is the wall time of the run.
	Elapsed time.Duration
}

// logger provides conditional debug output.
type logger struct {
	enabled bool
	w       io.Writer
}

// printf prints debug output if logging is enabled.
func (l logger) printf(format string, args ...any) {
	if l.enabled {
		fmt.Fprintf(l.w, "[debug]: "+format, args...)
	}
}

// progress throttles hook calls on the walking goroutine.
type progress struct {
	hook     func(entries int64, bytes uint64)
	interval time.Duration
	last     time.Time
}

func (p *progress) tick(entries int64, bytes uint64) {
	if p.hook == nil {
		return
	}

	if now := time.Now(); now.Sub(p.last) >= p.interval {
		p.last = now
		p.hook(entries, bytes)
	}
}

// Run walks every root in order and writes one line per displayed entry.
//
// Each root gets a fresh accumulator stack and is finished before the next
// begins. Per-entry failures are reported on streams.Err and skipped; a root
// that cannot be opened is reported and the next root is processed. When
// opt.Total is set a grand total line follows the last root.
//
// Progress updates are sent to progressHook if provided. The run can be
// cancelled via ctx.
//
//nolint:funlen // Sequential driver
func Run(ctx context.Context, opt Options, roots []string, streams Streams, progressHook func(int64, uint64)) (*Summary, error) {
	if err := opt.Validate(); err != nil {
		return nil, err
	}

	if len(roots) == 0 {
		roots = []string{"."}
	}

	if opt.ProgressInterval <= 0 {
		opt.ProgressInterval = DefaultProgressInterval
	}

	log := logger{enabled: opt.Debug, w: streams.Err}

	log.printf("block size: %s, max depth: %d, threshold: %d\n", opt.BlockSize, opt.MaxDepth, opt.Threshold)
	log.printf("exclude patterns:\n")

	for _, pattern := range opt.Excludes {
		log.printf("  - %s\n", pattern)
	}

	var (
		engine    = NewEngine(&opt)
		filter    = NewFilter(&opt)
		formatter = NewFormatter(&opt)
		prog      = progress{hook: progressHook, interval: opt.ProgressInterval}
		summary   = &Summary{}
		grand     uint64
		grandTime dutime.DuTime
		bytes     uint64
		writeErr  error
	)

	start := time.Now()

	for _, root := range roots {
		engine.Reset()

		var (
			rootEntry Entry
			seenRoot  bool
		)

		visit := func(v walk.Visit) error {
			if err := ctx.Err(); err != nil {
				return err
			}

			entry := engine.Add(RecordOf(v))
			summary.Entries++

			if !entry.IsDir && !opt.Inodes {
				bytes += entry.Value.Size()
			}

			prog.tick(summary.Entries, bytes)

			if v.Depth == 0 {
				rootEntry, seenRoot = entry, true
			}

			if !filter.Show(entry, root) {
				if pattern := filter.excludedBy(entry.Path); pattern != "" {
					log.printf("excluding %s\n", entry.Path)
					log.printf("	 matched pattern: %s\n", pattern)
				}

				return nil
			}

			if _, err := io.WriteString(streams.Out, formatter.Render(entry.Value, entry.Path, entry.Time)); err != nil {
				writeErr = err

				return walk.SkipAll
			}

			return nil
		}

		onError := func(path string, err error) {
			summary.EntryErrors++

			fmt.Fprintf(streams.Err, "dirusage: %s: %v\n", path, err)
		}

		err := walk.Walk(root, opt.walkConfig(), visit, onError)

		switch {
		case writeErr != nil:
			return summary, fmt.Errorf("writing output: %w", writeErr)
		case ctx.Err() != nil:
			return summary, ctx.Err()
		case err != nil:
			summary.FailedRoots++

			fmt.Fprintf(streams.Err, "dirusage: cannot access %q: %v\n", root, err)

			continue
		}

		summary.Roots++

		if seenRoot {
			grand += rootEntry.Value.Size()
			grandTime = dutime.Max(grandTime, rootEntry.Time)

			log.printf("%s: %s\n", root, formatter.Value(rootEntry.Value))
		}
	}

	summary.Total = opt.valueOf(grand)
	summary.Elapsed = time.Since(start)

	if opt.Total {
		if _, err := io.WriteString(streams.Out, formatter.Render(summary.Total, TotalLabel, grandTime)); err != nil {
			return summary, fmt.Errorf("writing output: %w", err)
		}
	}

	log.printf("%s entries in %v\n", humanize.Comma(summary.Entries), summary.Elapsed)

	if summary.FailedRoots > 0 || summary.EntryErrors > 0 {
		return summary, ErrPartial
	}

	return summary, nil
}
