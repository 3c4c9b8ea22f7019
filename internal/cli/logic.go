package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/idelchi/dirusage/internal/du"
)

func logic(ctx context.Context, options du.Options, roots []string, stdout, stderr io.Writer, progress bool) error {
	// Only draw progress when it cannot interleave with the listing.
	enableProgress := progress &&
		!options.Debug &&
		isTerminal(stderr) &&
		!isTerminal(stdout)

	var progressHook func(entries int64, bytes uint64)

	if enableProgress {
		// Hide cursor for in-place updates; restore on exit.
		fmt.Fprint(stderr, "\033[?25l")
		defer fmt.Fprint(stderr, "\033[?25h")

		progressHook = func(entries int64, bytes uint64) {
			msg := fmt.Sprintf("Scanning… %s entries, %s", humanize.Comma(entries), humanize.IBytes(bytes))
			fmt.Fprintf(stderr, "\r\033[2K%s\r", msg)
		}
	}

	out := bufio.NewWriter(stdout)

	_, err := du.Run(ctx, options, roots, du.Streams{Out: out, Err: stderr}, progressHook)

	// Clear the status line
	if enableProgress {
		fmt.Fprint(stderr, "\r\033[2K\r")
	}

	if flushErr := out.Flush(); flushErr != nil {
		return errors.Join(err, fmt.Errorf("writing output: %w", flushErr))
	}

	return err
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)

	return ok && isatty.IsTerminal(f.Fd())
}

// Report prints err to w unless it is the bare partial-failure sentinel,
// whose causes were already reported while walking. Joined errors such as a
// failed output flush are printed.
func Report(w io.Writer, err error) {
	if err == nil || err == du.ErrPartial { //nolint:errorlint // Only the bare sentinel is silent
		return
	}

	fmt.Fprintf(w, "dirusage: %v\n", err)
}
