// Package dutime provides the timestamp type used for du time columns.
package dutime

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ncruces/go-strftime"
)

// ErrInvalidStyle is returned for unknown time styles.
var ErrInvalidStyle = errors.New("invalid time style")

// DuTime is a point in time as whole seconds plus nanoseconds.
// Values are ordered by seconds, then nanoseconds.
type DuTime struct {
	Sec  int64
	Nsec int64
}

// FromSeconds returns a DuTime with no sub-second part.
func FromSeconds(sec int64) DuTime {
	return DuTime{Sec: sec}
}

// FromTime converts a time.Time.
func FromTime(t time.Time) DuTime {
	return DuTime{Sec: t.Unix(), Nsec: int64(t.Nanosecond())}
}

// WithNanoseconds returns t with its sub-second part replaced.
func (t DuTime) WithNanoseconds(nsec int64) DuTime {
	t.Nsec = nsec

	return t
}

// Compare returns -1, 0 or +1 depending on whether t is before, equal to or after u.
func (t DuTime) Compare(u DuTime) int {
	switch {
	case t.Sec < u.Sec:
		return -1
	case t.Sec > u.Sec:
		return 1
	case t.Nsec < u.Nsec:
		return -1
	case t.Nsec > u.Nsec:
		return 1
	default:
		return 0
	}
}

// After reports whether t is strictly later than u.
func (t DuTime) After(u DuTime) bool {
	return t.Compare(u) > 0
}

// IsZero reports whether t is the zero value.
func (t DuTime) IsZero() bool {
	return t == DuTime{}
}

// Max returns the later of a and b.
func Max(a, b DuTime) DuTime {
	if b.After(a) {
		return b
	}

	return a
}

// Time converts t to a local time.Time.
func (t DuTime) Time() time.Time {
	return time.Unix(t.Sec, t.Nsec)
}

// Render formats t in the given style using the local time zone.
func (t DuTime) Render(style Style) string {
	tm := t.Time()

	switch style.kind {
	case styleFullISO:
		return tm.Format("2006-01-02 15:04:05.000000000 -0700")
	case styleISO:
		return tm.Format("2006-01-02")
	case styleCustom:
		return strftime.Format(style.pattern, tm)
	default:
		return tm.Format("2006-01-02 15:04")
	}
}

type styleKind int

const (
	styleLongISO styleKind = iota
	styleFullISO
	styleISO
	styleCustom
)

// Style selects how a DuTime is rendered. The zero value is long-iso.
type Style struct {
	kind    styleKind
	pattern string
}

// Predefined styles.
//
//nolint:gochecknoglobals // Style constants
var (
	FullISO = Style{kind: styleFullISO}
	LongISO = Style{kind: styleLongISO}
	ISO     = Style{kind: styleISO}
)

// Custom returns a style rendering with a strftime pattern.
// The pattern is not validated.
func Custom(pattern string) Style {
	return Style{kind: styleCustom, pattern: pattern}
}

// ParseStyle reads "full-iso", "long-iso", "iso" or "+FORMAT".
// A "posix-" prefix is accepted and ignored.
func ParseStyle(s string) (Style, error) {
	if pattern, ok := strings.CutPrefix(s, "+"); ok {
		return Custom(pattern), nil
	}

	switch strings.TrimPrefix(s, "posix-") {
	case "full-iso":
		return FullISO, nil
	case "long-iso":
		return LongISO, nil
	case "iso":
		return ISO, nil
	default:
		return Style{}, fmt.Errorf("%w: %q", ErrInvalidStyle, s)
	}
}

// String returns the textual form accepted by ParseStyle.
func (s Style) String() string {
	switch s.kind {
	case styleFullISO:
		return "full-iso"
	case styleISO:
		return "iso"
	case styleCustom:
		return "+" + s.pattern
	default:
		return "long-iso"
	}
}
