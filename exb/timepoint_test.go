package exb

import (
	"errors"
	"math"
	"testing"
)

func TestParseTimePoint(t *testing.T) {
	cases := []struct {
		in   string
		want TimePoint
	}{
		{"0", 0},
		{"0.0", 0},
		{"1.2", 1200},
		{"2.503", 2503},
		{"2.5034", 2503},
		{"2.5035", 2504},
		{" 7.25 ", 7250},
	}
	for _, c := range cases {
		got, err := ParseTimePoint(c.in)
		if err != nil {
			t.Fatalf("ParseTimePoint(%q): %v", c.in, err)
		}
		if got != c.want {
			t.Errorf("ParseTimePoint(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestParseTimePointRejectsInvalid(t *testing.T) {
	for _, in := range []string{"", "abc", "-1.0", "NaN", "Inf", "-Inf"} {
		if _, err := ParseTimePoint(in); !errors.Is(err, ErrInvalidTimepoint) {
			t.Errorf("ParseTimePoint(%q) = %v, want ErrInvalidTimepoint", in, err)
		}
	}
}

func TestTimePointFromSecondsRejectsNonFinite(t *testing.T) {
	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1), -0.001} {
		if _, err := TimePointFromSeconds(f); !errors.Is(err, ErrInvalidTimepoint) {
			t.Errorf("TimePointFromSeconds(%v) = %v, want ErrInvalidTimepoint", f, err)
		}
	}
}

// The same instant seen by two streams must compare equal after rounding.
func TestRoundingMergesEqualInstants(t *testing.T) {
	a, err := TimePointFromSeconds(2.4999999)
	if err != nil {
		t.Fatal(err)
	}
	b, err := ParseTimePoint("2.500")
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Fatalf("2.4999999 rounds to %d, 2.500 to %d", a, b)
	}
}

func TestTimePointString(t *testing.T) {
	cases := []struct {
		in   TimePoint
		want string
	}{
		{0, "0.0"},
		{1200, "1.2"},
		{2503, "2.503"},
		{50, "0.05"},
		{61000, "61.0"},
	}
	for _, c := range cases {
		if got := c.in.String(); got != c.want {
			t.Errorf("TimePoint(%d).String() = %q, want %q", c.in, got, c.want)
		}
	}
}
