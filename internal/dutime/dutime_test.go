package dutime

import (
	"errors"
	"testing"
	"time"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b DuTime
		want int
	}{
		{name: "equal", a: FromSeconds(10), b: FromSeconds(10), want: 0},
		{name: "seconds first", a: FromSeconds(9).WithNanoseconds(999), b: FromSeconds(10), want: -1},
		{name: "nanosecond tie break", a: FromSeconds(10).WithNanoseconds(5), b: FromSeconds(10).WithNanoseconds(4), want: 1},
		{name: "negative seconds", a: FromSeconds(-1), b: FromSeconds(0), want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Compare(tt.b); got != tt.want {
				t.Errorf("%v.Compare(%v) = %d, want %d", tt.a, tt.b, got, tt.want)
			}

			if got := tt.b.Compare(tt.a); got != -tt.want {
				t.Errorf("%v.Compare(%v) = %d, want %d", tt.b, tt.a, got, -tt.want)
			}
		})
	}
}

func TestMax(t *testing.T) {
	early := FromSeconds(100).WithNanoseconds(1)
	late := FromSeconds(100).WithNanoseconds(2)

	if got := Max(early, late); got != late {
		t.Errorf("Max(early, late) = %v, want %v", got, late)
	}

	if got := Max(late, early); got != late {
		t.Errorf("Max(late, early) = %v, want %v", got, late)
	}

	if got := Max(DuTime{}, early); got != early {
		t.Errorf("Max(zero, early) = %v, want %v", got, early)
	}
}

func TestFromTime(t *testing.T) {
	tm := time.Unix(1700000000, 123456789)

	got := FromTime(tm)
	if got.Sec != 1700000000 || got.Nsec != 123456789 {
		t.Fatalf("FromTime = %+v", got)
	}

	if !got.Time().Equal(tm) {
		t.Errorf("Time() = %v, want %v", got.Time(), tm)
	}
}

func TestRender(t *testing.T) {
	ts := FromSeconds(1700000000).WithNanoseconds(42)
	local := time.Unix(1700000000, 42)

	tests := []struct {
		name  string
		style string
		want  string
	}{
		{name: "full iso", style: "full-iso", want: local.Format("2006-01-02 15:04:05.000000000 -0700")},
		{name: "long iso", style: "long-iso", want: local.Format("2006-01-02 15:04")},
		{name: "iso", style: "iso", want: local.Format("2006-01-02")},
		{name: "posix prefix", style: "posix-iso", want: local.Format("2006-01-02")},
		{name: "custom year", style: "+%Y", want: local.Format("2006")},
		{name: "custom literal", style: "+at %H:%M", want: local.Format("at 15:04")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			style, err := ParseStyle(tt.style)
			if err != nil {
				t.Fatalf("ParseStyle(%q) error: %v", tt.style, err)
			}

			if got := ts.Render(style); got != tt.want {
				t.Errorf("Render(%q) = %q, want %q", tt.style, got, tt.want)
			}
		})
	}
}

func TestParseStyleInvalid(t *testing.T) {
	if _, err := ParseStyle("locale"); !errors.Is(err, ErrInvalidStyle) {
		t.Errorf("ParseStyle(locale) error = %v, want ErrInvalidStyle", err)
	}
}

func TestZeroStyleIsLongISO(t *testing.T) {
	var style Style
	if style.String() != "long-iso" {
		t.Errorf("zero Style = %q, want long-iso", style.String())
	}
}
