package du

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/idelchi/dirusage/internal/dutime"
	"github.com/idelchi/dirusage/internal/units"
	"github.com/idelchi/dirusage/internal/walk"
)

// Unlimited disables the display depth limit.
const Unlimited = -1

// DefaultProgressInterval is the default interval for progress updates.
const DefaultProgressInterval = 500 * time.Millisecond

// Configuration errors.
var (
	ErrInodesUnsupported = errors.New("inode counting is not supported on this platform")
	ErrZeroBlockSize     = errors.New("block size must be greater than zero")
	ErrInvalidThreshold  = errors.New("invalid threshold")
	ErrInvalidTimeWord   = errors.New("invalid time selection")
	ErrInvalidDepth      = errors.New("invalid maximum depth")
)

// TimeKind selects which timestamp of an entry is reported.
type TimeKind int

const (
	// Modification is the mtime.
	Modification TimeKind = iota
	// Access is the atime.
	Access
	// Change is the ctime.
	Change
)

// ParseTimeKind reads the argument of --time.
func ParseTimeKind(word string) (TimeKind, error) {
	switch word {
	case "", "mtime", "modification":
		return Modification, nil
	case "atime", "access", "use":
		return Access, nil
	case "ctime", "status":
		return Change, nil
	default:
		return Modification, fmt.Errorf("%w: %q", ErrInvalidTimeWord, word)
	}
}

// ParseThreshold reads a signed size. A leading '-' selects "exclude entries
// larger than", anything else "exclude entries smaller than".
func ParseThreshold(text string) (int64, error) {
	magnitude, negative := strings.CutPrefix(text, "-")

	if strings.Trim(magnitude, "0") == "" && magnitude != "" {
		return 0, nil
	}

	size, err := units.Parse(magnitude)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %w", ErrInvalidThreshold, text, err)
	}

	v := size.Value()
	if v > 1<<63-1 {
		return 0, fmt.Errorf("%w %q: out of range", ErrInvalidThreshold, text)
	}

	if negative {
		return -int64(v), nil
	}

	return int64(v), nil
}

// Options is the resolved configuration of one invocation.
type Options struct {
	// All shows files as well as directories.
	All bool
	// ApparentSize uses the logical length instead of allocated blocks.
	ApparentSize bool
	// BlockSize is the divisor for plain output.
	BlockSize units.Blocksize
	// HumanReadable renders values with binary suffixes.
	HumanReadable bool
	// SI renders values with power-of-1000 suffixes. Takes precedence over HumanReadable.
	SI bool
	// Dereference is the symbolic link policy.
	Dereference walk.Dereference
	// OneFileSystem skips entries on other devices.
	OneFileSystem bool
	// SeparateDirs excludes descendants from directory totals.
	SeparateDirs bool
	// Total emits a grand total line after all roots.
	Total bool
	// MaxDepth is the deepest displayed depth, or Unlimited.
	MaxDepth int
	// Threshold is a signed byte bound, 0 for none.
	Threshold int64
	// Excludes are display exclusion globs.
	Excludes []string
	// Time adds a time column.
	Time bool
	// TimeKind selects the reported timestamp.
	TimeKind TimeKind
	// TimeStyle renders the time column.
	TimeStyle dutime.Style
	// Inodes counts entries instead of bytes.
	Inodes bool
	// NullTerminated ends lines with NUL instead of newline.
	NullTerminated bool
	// ProgressInterval controls progress callback cadence.
	ProgressInterval time.Duration
	// Debug enables debug output.
	Debug bool
}

// DefaultOptions returns the options of a bare invocation.
func DefaultOptions() Options {
	return Options{
		BlockSize: units.Blocksize{Count: 1, Suffix: units.K},
		MaxDepth:  Unlimited,
		TimeStyle: dutime.LongISO,
	}
}

// Validate checks everything that must hold before traversal begins.
func (o *Options) Validate() error {
	if o.Inodes && !inodesSupported {
		return ErrInodesUnsupported
	}

	if o.BlockSize.Value() == 0 {
		return ErrZeroBlockSize
	}

	if o.MaxDepth < Unlimited {
		return fmt.Errorf("%w: %d", ErrInvalidDepth, o.MaxDepth)
	}

	for _, pattern := range o.Excludes {
		if _, err := filepath.Match(pattern, ""); err != nil {
			return fmt.Errorf("compiling exclusion pattern %q: %w", pattern, err)
		}
	}

	return nil
}

func (o *Options) walkConfig() walk.Config {
	return walk.Config{
		Dereference:   o.Dereference,
		OneFileSystem: o.OneFileSystem,
	}
}
