package exb

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var ErrInvalidTimepoint = errors.New("invalid timepoint")

// TimePoint is one instant on the shared time axis, stored as whole
// milliseconds. Inputs are rounded to millisecond precision on ingestion, so
// the same real-world instant coming from two streams compares equal and maps
// to one timeline entry.
type TimePoint int64

// TimePointFromSeconds rounds sec to millisecond precision. Negative,
// NaN and infinite values are rejected.
func TimePointFromSeconds(sec float64) (TimePoint, error) {
	if math.IsNaN(sec) || math.IsInf(sec, 0) || sec < 0 {
		return 0, fmt.Errorf("%w: %v", ErrInvalidTimepoint, sec)
	}
	return TimePoint(math.Round(sec * 1000)), nil
}

// ParseTimePoint parses a decimal seconds string.
func ParseTimePoint(s string) (TimePoint, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimepoint, s)
	}
	return TimePointFromSeconds(f)
}

func (t TimePoint) Seconds() float64 { return float64(t) / 1000 }

// String renders the point as a minimal decimal seconds value with at least
// one fractional digit: "0.0", "1.2", "2.503".
func (t TimePoint) String() string {
	s := strconv.FormatFloat(t.Seconds(), 'f', 3, 64)
	s = strings.TrimRight(s, "0")
	if strings.HasSuffix(s, ".") {
		s += "0"
	}
	return s
}
