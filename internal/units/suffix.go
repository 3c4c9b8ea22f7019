package units

// Suffix is a named unit multiplier. The zero value means no suffix.
type Suffix int

// Recognized suffixes, ordered by magnitude. Within a magnitude the order is
// bare letter, binary "iB" form, SI "B" form.
const (
	None Suffix = iota
	K
	KiB
	KB
	M
	MiB
	MB
	G
	GiB
	GB
	T
	TiB
	TB
	P
	PiB
	PB
	E
	EiB
	EB
)

type suffixInfo struct {
	token      string
	multiplier uint64
}

//nolint:gochecknoglobals // Lookup table
var suffixes = [...]suffixInfo{
	None: {"", 0},
	K:    {"K", 1 << 10},
	KiB:  {"KiB", 1 << 10},
	KB:   {"KB", 1e3},
	M:    {"M", 1 << 20},
	MiB:  {"MiB", 1 << 20},
	MB:   {"MB", 1e6},
	G:    {"G", 1 << 30},
	GiB:  {"GiB", 1 << 30},
	GB:   {"GB", 1e9},
	T:    {"T", 1 << 40},
	TiB:  {"TiB", 1 << 40},
	TB:   {"TB", 1e12},
	P:    {"P", 1 << 50},
	PiB:  {"PiB", 1 << 50},
	PB:   {"PB", 1e15},
	E:    {"E", 1 << 60},
	EiB:  {"EiB", 1 << 60},
	EB:   {"EB", 1e18},
}

// Suffixes returns every recognized suffix in table order.
func Suffixes() []Suffix {
	out := make([]Suffix, 0, len(suffixes)-1)
	for s := K; s <= EB; s++ {
		out = append(out, s)
	}

	return out
}

// String returns the suffix token, "" for None.
func (s Suffix) String() string {
	if !s.valid() {
		return ""
	}

	return suffixes[s].token
}

// Multiplier returns the byte multiplier of the suffix, 0 for None.
func (s Suffix) Multiplier() uint64 {
	if !s.valid() {
		return 0
	}

	return suffixes[s].multiplier
}

// MultiplierOr returns the multiplier, or fallback when s carries none.
func (s Suffix) MultiplierOr(fallback uint64) uint64 {
	if m := s.Multiplier(); m != 0 {
		return m
	}

	return fallback
}

// IsSI reports whether s is a power-of-1000 suffix.
func (s Suffix) IsSI() bool {
	return s.valid() && s != None && (s-1)%3 == 2
}

func (s Suffix) valid() bool {
	return s >= None && int(s) < len(suffixes)
}

// lookupSuffix maps an exact token to its suffix. The empty token is None.
func lookupSuffix(token string) (Suffix, bool) {
	for s := range suffixes {
		if suffixes[s].token == token {
			return Suffix(s), true
		}
	}

	return None, false
}
