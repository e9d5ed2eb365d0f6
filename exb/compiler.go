package exb

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

var ErrMissingTierName = errors.New("missing tier name")

// Mode selects how an interval table turns into tiers.
type Mode int

const (
	// SingleTier puts every row into one tier under a caller-supplied name.
	SingleTier Mode = iota
	// PerChannel makes one tier per distinct channel value, named after it.
	PerChannel
)

// Compiler merges interval tables into a document: it registers the
// speakers a table needs, merges the table's timepoints into the shared
// timeline, then builds tiers against the updated timeline. Repeated calls
// reuse timepoints merged by earlier calls, so call order shifts id
// numbering but not document content.
type Compiler struct {
	MinDuration TimePoint
	Placeholder string

	log *logrus.Logger
}

// DefaultMinDuration is the span below which event text is replaced by the
// placeholder, keeping near-zero artifacts visible without their noisy
// transcriptions.
const DefaultMinDuration = TimePoint(100)

const DefaultPlaceholder = "-"

func NewCompiler(log *logrus.Logger) *Compiler {
	return &Compiler{
		MinDuration: DefaultMinDuration,
		Placeholder: DefaultPlaceholder,
		log:         log,
	}
}

// Compile merges one table into doc. tierName is required in SingleTier
// mode and ignored in PerChannel mode.
func (c *Compiler) Compile(doc *Document, table IntervalTable, mode Mode, tierName string) error {
	if mode == SingleTier && tierName == "" {
		return fmt.Errorf("%w: table %s compiled in single-tier mode", ErrMissingTierName, table.Source)
	}

	// Speakers first, then timepoints, then tiers: events can only
	// reference timepoints that are already on the axis.
	switch mode {
	case SingleTier:
		c.ensureSpeaker(doc, tierName)
	case PerChannel:
		for _, ch := range table.Channels() {
			c.ensureSpeaker(doc, ch)
		}
	}

	doc.Timeline.MergePoints(table.Points())

	switch mode {
	case SingleTier:
		doc.Tiers = append(doc.Tiers, c.buildTier(doc, tierName, table.Rows, mode))
	case PerChannel:
		for _, ch := range table.Channels() {
			var rows []Interval
			for _, r := range table.Rows {
				if r.Channel == ch {
					rows = append(rows, r)
				}
			}
			doc.Tiers = append(doc.Tiers, c.buildTier(doc, ch, rows, mode))
		}
	}
	return nil
}

func (c *Compiler) ensureSpeaker(doc *Document, id string) {
	if doc.Speakers.Ensure(id, id) {
		c.log.WithField("speaker", id).Warn("speaker already registered with a different label, keeping the first")
	}
}

func (c *Compiler) buildTier(doc *Document, id string, rows []Interval, mode Mode) Tier {
	tier := Tier{ID: id, SpeakerID: id}
	for _, r := range rows {
		text, keep := c.eventText(r, mode)
		if !keep {
			continue
		}
		tier.Events = append(tier.Events, Event{
			Start: c.resolve(doc, r.Start),
			End:   c.resolve(doc, r.End),
			Text:  text,
		})
	}
	return tier
}

// eventText applies the payload policy. Below the minimum duration the
// placeholder always wins. Per-channel label rows (turn boundaries with no
// words) get the placeholder too; per-channel transcript rows with empty
// text are dropped from their tier.
func (c *Compiler) eventText(r Interval, mode Mode) (string, bool) {
	if r.Duration < c.MinDuration {
		return c.Placeholder, true
	}
	if mode == PerChannel {
		if r.Kind == PayloadLabel {
			return c.Placeholder, true
		}
		if r.Text == "" {
			return "", false
		}
	}
	return r.Text, true
}

func (c *Compiler) resolve(doc *Document, p TimePoint) TimelineID {
	id, ok := doc.Timeline.IDFor(p)
	if !ok {
		// Timepoints are merged before tiers are built, so a miss here is
		// a bug in the compiler, not bad input.
		panic(fmt.Sprintf("exb: event references unmerged timepoint %s", p))
	}
	return id
}
