package du

import (
	"strconv"
	"strings"

	"github.com/idelchi/dirusage/internal/dutime"
	"github.com/idelchi/dirusage/internal/units"
)

// TotalLabel is the path printed on the grand total line.
const TotalLabel = "total"

// Formatter renders entries as output lines.
type Formatter struct {
	opts *Options
}

// NewFormatter returns a formatter for opts.
func NewFormatter(opts *Options) *Formatter {
	return &Formatter{opts: opts}
}

// Render returns one terminated line: value, optional time, path, tab separated.
func (f *Formatter) Render(v DisplayValue, path string, t dutime.DuTime) string {
	var b strings.Builder

	b.WriteString(f.Value(v))
	b.WriteByte('\t')

	if f.opts.Time {
		b.WriteString(t.Render(f.opts.TimeStyle))
		b.WriteByte('\t')
	}

	b.WriteString(path)

	if f.opts.NullTerminated {
		b.WriteByte(0)
	} else {
		b.WriteByte('\n')
	}

	return b.String()
}

// Value renders the numeric column.
func (f *Formatter) Value(v DisplayValue) string {
	raw := v.Size()

	if f.opts.HumanReadable || f.opts.SI {
		return units.HumanReadable(raw, f.opts.SI)
	}

	if v.Kind() == KindInodes {
		return strconv.FormatUint(raw, 10)
	}

	return strconv.FormatUint(scale(raw, f.opts.BlockSize.Value()), 10)
}

// scale divides raw by blockSize, reporting at least 1 for a nonzero raw value.
func scale(raw, blockSize uint64) uint64 {
	if blockSize == 0 {
		return raw
	}

	q := raw / blockSize
	if q == 0 && raw != 0 {
		return 1
	}

	return q
}
