package exb

import "path/filepath"

// Meta carries the head fields of an EXB document that the template
// provides and the compiler passes through untouched.
type Meta struct {
	ProjectName             string
	TranscriptionName       string
	Comment                 string
	TranscriptionConvention string
}

// Event is one annotation unit spanning two timeline points.
type Event struct {
	Start TimelineID
	End   TimelineID
	Text  string
}

// Tier is a named sequence of events belonging to one speaker/channel.
// Events keep the row order of the stream they came from.
type Tier struct {
	ID        string
	SpeakerID string
	Events    []Event
}

// Document is one compiled multi-tier annotation document. Each document
// owns its timeline, speaker table and tiers exclusively; nothing is shared
// across documents.
type Document struct {
	Meta     Meta
	Timeline *Timeline
	Speakers *SpeakerRegistry
	Tiers    []Tier
	MediaURL string
}

func NewDocument() *Document {
	return &Document{
		Timeline: NewTimeline(),
		Speakers: NewSpeakerRegistry(),
	}
}

// SetMedia binds the referenced media file, stored as its base name only.
// Called once, after all tables are compiled.
func (d *Document) SetMedia(path string) {
	d.MediaURL = filepath.Base(path)
}
