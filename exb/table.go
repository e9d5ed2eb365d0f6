package exb

import (
	"fmt"
	"sort"
)

// PayloadKind says what an interval's text field holds. Diarization-style
// rows carry a channel label (a speaker name), ASR-style rows carry
// transcribed words. The reader that produced the row decides, so tier
// building never has to guess between columns.
type PayloadKind int

const (
	PayloadLabel PayloadKind = iota
	PayloadTranscript
)

// Interval is one row of an annotation stream: a time span on one channel
// with a text payload.
type Interval struct {
	Start    TimePoint
	End      TimePoint
	Duration TimePoint
	Channel  string
	Text     string
	Kind     PayloadKind
}

// NewInterval validates the span and derives the duration.
func NewInterval(start, end TimePoint, channel, text string, kind PayloadKind) (Interval, error) {
	if end < start {
		return Interval{}, fmt.Errorf("%w: interval end %s before start %s", ErrInvalidTimepoint, end, start)
	}
	return Interval{
		Start:    start,
		End:      end,
		Duration: end - start,
		Channel:  channel,
		Text:     text,
		Kind:     kind,
	}, nil
}

// IntervalTable is one normalized annotation stream in row order. Source
// names the file it came from, for error reports and logs.
type IntervalTable struct {
	Source string
	Rows   []Interval
}

// Points collects every distinct start and end of the table.
func (t IntervalTable) Points() []TimePoint {
	seen := make(map[TimePoint]struct{}, 2*len(t.Rows))
	var out []TimePoint
	for _, r := range t.Rows {
		for _, p := range []TimePoint{r.Start, r.End} {
			if _, ok := seen[p]; !ok {
				seen[p] = struct{}{}
				out = append(out, p)
			}
		}
	}
	return out
}

// Channels returns the distinct channel values in lexicographic order.
func (t IntervalTable) Channels() []string {
	seen := map[string]struct{}{}
	var out []string
	for _, r := range t.Rows {
		if _, ok := seen[r.Channel]; !ok {
			seen[r.Channel] = struct{}{}
			out = append(out, r.Channel)
		}
	}
	sort.Strings(out)
	return out
}
