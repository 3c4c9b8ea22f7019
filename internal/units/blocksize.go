package units

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidBlocksize is returned for quantities without a usable count.
var ErrInvalidBlocksize = errors.New("invalid block size")

// InvalidSuffixError reports an unrecognized suffix token.
type InvalidSuffixError struct {
	Token string
}

func (e *InvalidSuffixError) Error() string {
	return fmt.Sprintf("invalid suffix %q", e.Token)
}

// Blocksize is a count of bytes expressed as Count times an optional Suffix.
type Blocksize struct {
	// Count is the number of suffix units.
	Count uint64
	// Suffix is the unit, None for plain bytes.
	Suffix Suffix
}

// Bytes returns a suffix-less Blocksize of n bytes.
func Bytes(n uint64) Blocksize {
	return Blocksize{Count: n}
}

// Value returns the quantity in bytes.
func (b Blocksize) Value() uint64 {
	return b.Count * b.Suffix.MultiplierOr(1)
}

// String renders the quantity the way it is parsed.
func (b Blocksize) String() string {
	return strconv.FormatUint(b.Count, 10) + b.Suffix.String()
}

// HumanReadable renders the byte value with the largest fitting suffix.
func (b Blocksize) HumanReadable(si bool) string {
	return HumanReadable(b.Value(), si)
}

// Parse reads a quantity such as "512", "2M", "KiB" or "10GB".
//
// The leading digits are the count and default to 1 when only a suffix is
// given. The trailing text must be a recognized suffix token exactly.
func Parse(text string) (Blocksize, error) {
	split := strings.IndexFunc(text, func(r rune) bool { return r < '0' || r > '9' })
	if split < 0 {
		split = len(text)
	}

	digits, token := text[:split], text[split:]

	if digits == "" && token == "" {
		return Blocksize{}, fmt.Errorf("%w: empty value", ErrInvalidBlocksize)
	}

	suffix, ok := lookupSuffix(token)
	if !ok {
		return Blocksize{}, &InvalidSuffixError{Token: token}
	}

	count := uint64(1)

	if digits != "" {
		var err error

		count, err = strconv.ParseUint(digits, 10, 64)
		if err != nil {
			return Blocksize{}, fmt.Errorf("%w: %q: %w", ErrInvalidBlocksize, text, err)
		}
	}

	if count == 0 && suffix == None {
		return Blocksize{}, fmt.Errorf("%w: %q", ErrInvalidBlocksize, text)
	}

	if m := suffix.Multiplier(); m != 0 && count > math.MaxUint64/m {
		return Blocksize{}, fmt.Errorf("%w: %q overflows", ErrInvalidBlocksize, text)
	}

	return Blocksize{Count: count, Suffix: suffix}, nil
}

// HumanReadable renders bytes using the largest suffix whose whole quotient
// is greater than one. SI mode only considers the power-of-1000 suffixes,
// binary mode only the bare-letter power-of-1024 ones. The quotient is
// truncated. Values too small for any suffix are rendered as plain numbers.
func HumanReadable(bytes uint64, si bool) string {
	for s := EB; s > None; s-- {
		if s.IsSI() != si || (!si && s.binaryLong()) {
			continue
		}

		if q := bytes / s.Multiplier(); q > 1 {
			return strconv.FormatUint(q, 10) + s.String()
		}
	}

	return strconv.FormatUint(bytes, 10)
}

func (s Suffix) binaryLong() bool {
	return s != None && (s-1)%3 == 1
}
