package exb

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"github.com/antchfx/xmlquery"
)

//go:embed exb_template.xml
var defaultTemplate []byte

// Template is the skeleton a fresh document starts from. It usually has an
// empty timeline and speaker table, but nothing here assumes that: whatever
// entries it carries are kept and id numbering continues after them.
type Template struct {
	Meta     Meta
	MediaURL string
	Entries  []TimelineEntry
	Speakers []Speaker
}

// DefaultTemplate parses the embedded EXB skeleton.
func DefaultTemplate() *Template {
	t, err := ParseTemplate(defaultTemplate)
	if err != nil {
		panic(fmt.Sprintf("exb: embedded template: %v", err))
	}
	return t
}

// LoadTemplate reads a template file from disk.
func LoadTemplate(path string) (*Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	t, err := ParseTemplate(data)
	if err != nil {
		return nil, fmt.Errorf("template %s: %w", path, err)
	}
	return t, nil
}

// ParseTemplate parses an EXB document into a Template.
func ParseTemplate(data []byte) (*Template, error) {
	root, err := xmlquery.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing template: %w", err)
	}
	if xmlquery.FindOne(root, "//basic-transcription") == nil {
		return nil, fmt.Errorf("template has no basic-transcription element")
	}

	t := &Template{
		Meta: Meta{
			ProjectName:             textOf(root, "//meta-information/project-name"),
			TranscriptionName:       textOf(root, "//meta-information/transcription-name"),
			Comment:                 textOf(root, "//meta-information/comment"),
			TranscriptionConvention: textOf(root, "//meta-information/transcription-convention"),
		},
	}
	if n := xmlquery.FindOne(root, "//meta-information/referenced-file"); n != nil {
		t.MediaURL = n.SelectAttr("url")
	}

	for _, tli := range xmlquery.Find(root, "//common-timeline/tli") {
		p, err := ParseTimePoint(tli.SelectAttr("time"))
		if err != nil {
			return nil, fmt.Errorf("template tli %q: %w", tli.SelectAttr("id"), err)
		}
		t.Entries = append(t.Entries, TimelineEntry{
			ID:   TimelineID(tli.SelectAttr("id")),
			Time: p,
		})
	}

	for _, sp := range xmlquery.Find(root, "//speakertable/speaker") {
		label := sp.SelectAttr("id")
		if ab := xmlquery.FindOne(sp, "abbreviation"); ab != nil {
			label = ab.InnerText()
		}
		t.Speakers = append(t.Speakers, Speaker{ID: sp.SelectAttr("id"), Label: label})
	}
	return t, nil
}

// NewDocumentFromTemplate seeds a fresh document from a template.
func NewDocumentFromTemplate(t *Template) (*Document, error) {
	doc := NewDocument()
	doc.Meta = t.Meta
	doc.MediaURL = t.MediaURL
	if err := doc.Timeline.Seed(t.Entries); err != nil {
		return nil, err
	}
	for _, sp := range t.Speakers {
		doc.Speakers.Ensure(sp.ID, sp.Label)
	}
	return doc, nil
}

func textOf(root *xmlquery.Node, path string) string {
	if n := xmlquery.FindOne(root, path); n != nil {
		return n.InnerText()
	}
	return ""
}
