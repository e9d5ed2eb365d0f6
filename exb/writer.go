package exb

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// xmlHeader is an exact textual contract: downstream tooling matches these
// bytes, so the writer emits them verbatim rather than whatever an XML
// library would produce.
const xmlHeader = `<?xml version="1.0" encoding="UTF-8"?>`

// WriteDocument serializes doc with deterministic formatting: fixed element
// and attribute order, tab indentation, one element per line.
func WriteDocument(w io.Writer, doc *Document) error {
	var b strings.Builder
	b.WriteString(xmlHeader + "\n")
	b.WriteString("<basic-transcription>\n")

	b.WriteString("\t<head>\n")
	b.WriteString("\t\t<meta-information>\n")
	writeTextElem(&b, 3, "project-name", doc.Meta.ProjectName)
	writeTextElem(&b, 3, "transcription-name", doc.Meta.TranscriptionName)
	fmt.Fprintf(&b, "\t\t\t<referenced-file url=\"%s\"/>\n", escapeAttr(doc.MediaURL))
	b.WriteString("\t\t\t<ud-meta-information/>\n")
	writeTextElem(&b, 3, "comment", doc.Meta.Comment)
	writeTextElem(&b, 3, "transcription-convention", doc.Meta.TranscriptionConvention)
	b.WriteString("\t\t</meta-information>\n")

	speakers := doc.Speakers.Sorted()
	if len(speakers) == 0 {
		b.WriteString("\t\t<speakertable/>\n")
	} else {
		b.WriteString("\t\t<speakertable>\n")
		for _, sp := range speakers {
			fmt.Fprintf(&b, "\t\t\t<speaker id=\"%s\">\n", escapeAttr(sp.ID))
			writeTextElem(&b, 4, "abbreviation", sp.Label)
			b.WriteString("\t\t\t</speaker>\n")
		}
		b.WriteString("\t\t</speakertable>\n")
	}
	b.WriteString("\t</head>\n")

	b.WriteString("\t<basic-body>\n")
	entries := doc.Timeline.Entries()
	if len(entries) == 0 {
		b.WriteString("\t\t<common-timeline/>\n")
	} else {
		b.WriteString("\t\t<common-timeline>\n")
		for _, e := range entries {
			fmt.Fprintf(&b, "\t\t\t<tli id=\"%s\" time=\"%s\"/>\n", escapeAttr(string(e.ID)), e.Time)
		}
		b.WriteString("\t\t</common-timeline>\n")
	}
	for _, tier := range doc.Tiers {
		fmt.Fprintf(&b, "\t\t<tier id=\"%s\" category=\"v\" type=\"t\" display_name=\"%s\" speaker=\"%s\">\n",
			escapeAttr(tier.ID), escapeAttr(tier.ID), escapeAttr(tier.SpeakerID))
		for _, ev := range tier.Events {
			fmt.Fprintf(&b, "\t\t\t<event start=\"%s\" end=\"%s\">%s</event>\n",
				string(ev.Start), string(ev.End), escapeText(ev.Text))
		}
		b.WriteString("\t\t</tier>\n")
	}
	b.WriteString("\t</basic-body>\n")
	b.WriteString("</basic-transcription>\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteFile serializes doc to path.
func WriteFile(path string, doc *Document) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteDocument(f, doc); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeTextElem(b *strings.Builder, depth int, name, text string) {
	indent := strings.Repeat("\t", depth)
	if text == "" {
		fmt.Fprintf(b, "%s<%s/>\n", indent, name)
		return
	}
	fmt.Fprintf(b, "%s<%s>%s</%s>\n", indent, name, escapeText(text), name)
}

var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
var attrEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")

func escapeText(s string) string { return textEscaper.Replace(s) }
func escapeAttr(s string) string { return attrEscaper.Replace(s) }
