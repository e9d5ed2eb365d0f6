package exb

import "sort"

// Speaker is one declared annotation channel: a diarized speaker or a
// synthetic per-source name like "vad" or "spk1_whisper".
type Speaker struct {
	ID    string
	Label string
}

// SpeakerRegistry is the document's speaker table. Registration is
// idempotent; on a label conflict the first-registered label wins.
type SpeakerRegistry struct {
	labels map[string]string
}

func NewSpeakerRegistry() *SpeakerRegistry {
	return &SpeakerRegistry{labels: map[string]string{}}
}

// Ensure inserts the channel if absent. It reports whether an existing
// registration carried a different label (which is kept).
func (r *SpeakerRegistry) Ensure(id, label string) (conflict bool) {
	if have, ok := r.labels[id]; ok {
		return have != label
	}
	r.labels[id] = label
	return false
}

func (r *SpeakerRegistry) Len() int { return len(r.labels) }

// Sorted returns the speakers in lexicographic id order, the stable order
// used for output.
func (r *SpeakerRegistry) Sorted() []Speaker {
	ids := make([]string, 0, len(r.labels))
	for id := range r.labels {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	out := make([]Speaker, 0, len(ids))
	for _, id := range ids {
		out = append(out, Speaker{ID: id, Label: r.labels[id]})
	}
	return out
}
