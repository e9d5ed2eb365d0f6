package exb

import (
	"fmt"
	"sort"
)

// TimelineID is the stable token bound to one timepoint, e.g. "T17".
type TimelineID string

type TimelineEntry struct {
	ID   TimelineID
	Time TimePoint
}

// Timeline is the shared axis of every distinct timepoint merged so far.
// Entries stay sorted by time; ids, once issued, never change even though
// later merges reorder positions. The id counter belongs to this timeline,
// seeded from however many entries the template already had.
type Timeline struct {
	entries []TimelineEntry
	ids     map[TimePoint]TimelineID
	next    int
}

func NewTimeline() *Timeline {
	return &Timeline{ids: map[TimePoint]TimelineID{}}
}

// Seed installs pre-existing entries (from a document template) and
// continues numbering after them.
func (tl *Timeline) Seed(entries []TimelineEntry) error {
	for _, e := range entries {
		if _, ok := tl.ids[e.Time]; ok {
			return fmt.Errorf("template timeline repeats time %s", e.Time)
		}
		tl.ids[e.Time] = e.ID
		tl.entries = append(tl.entries, e)
	}
	tl.next = len(tl.entries)
	tl.sort()
	return nil
}

// MergePoints inserts every point not already present, allocating ids in
// ascending time order, and returns the id for every submitted point.
// Re-submitting a known point resolves to the id issued first.
func (tl *Timeline) MergePoints(points []TimePoint) map[TimePoint]TimelineID {
	sorted := append([]TimePoint(nil), points...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	out := make(map[TimePoint]TimelineID, len(sorted))
	for _, p := range sorted {
		id, ok := tl.ids[p]
		if !ok {
			id = TimelineID(fmt.Sprintf("T%d", tl.next))
			tl.next++
			tl.ids[p] = id
			tl.entries = append(tl.entries, TimelineEntry{ID: id, Time: p})
		}
		out[p] = id
	}
	tl.sort()
	return out
}

// IDFor resolves an already-merged timepoint.
func (tl *Timeline) IDFor(p TimePoint) (TimelineID, bool) {
	id, ok := tl.ids[p]
	return id, ok
}

// Entries returns the axis in ascending time order.
func (tl *Timeline) Entries() []TimelineEntry {
	return append([]TimelineEntry(nil), tl.entries...)
}

func (tl *Timeline) Len() int { return len(tl.entries) }

func (tl *Timeline) sort() {
	sort.Slice(tl.entries, func(i, j int) bool { return tl.entries[i].Time < tl.entries[j].Time })
}
