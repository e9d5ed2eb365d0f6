package exb

import (
	"strings"
	"testing"
)

func TestWriteDocumentExactOutput(t *testing.T) {
	c := newTestCompiler()
	doc := NewDocument()
	doc.Meta.ProjectName = "field recordings"

	table := IntervalTable{Source: "d.rttm", Rows: []Interval{
		mustInterval(t, 0, 1200, "spk1", "spk1", PayloadLabel),
	}}
	if err := c.Compile(doc, table, PerChannel, ""); err != nil {
		t.Fatal(err)
	}
	doc.SetMedia("data/audio_16khz_mono_wav/0.wav")

	var b strings.Builder
	if err := WriteDocument(&b, doc); err != nil {
		t.Fatal(err)
	}

	want := `<?xml version="1.0" encoding="UTF-8"?>
<basic-transcription>
	<head>
		<meta-information>
			<project-name>field recordings</project-name>
			<transcription-name/>
			<referenced-file url="0.wav"/>
			<ud-meta-information/>
			<comment/>
			<transcription-convention/>
		</meta-information>
		<speakertable>
			<speaker id="spk1">
				<abbreviation>spk1</abbreviation>
			</speaker>
		</speakertable>
	</head>
	<basic-body>
		<common-timeline>
			<tli id="T0" time="0.0"/>
			<tli id="T1" time="1.2"/>
		</common-timeline>
		<tier id="spk1" category="v" type="t" display_name="spk1" speaker="spk1">
			<event start="T0" end="T1">-</event>
		</tier>
	</basic-body>
</basic-transcription>
`
	if got := b.String(); got != want {
		t.Errorf("document mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestWriteDocumentHeaderBytes(t *testing.T) {
	var b strings.Builder
	if err := WriteDocument(&b, NewDocument()); err != nil {
		t.Fatal(err)
	}
	const header = "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n"
	if !strings.HasPrefix(b.String(), header) {
		t.Fatalf("output starts with %q, want %q", b.String()[:len(header)], header)
	}
}

func TestWriteDocumentEscaping(t *testing.T) {
	c := newTestCompiler()
	doc := NewDocument()
	table := IntervalTable{Source: "asr.json", Rows: []Interval{
		mustInterval(t, 0, 1000, "", `he said "a < b & b > c"`, PayloadTranscript),
	}}
	if err := c.Compile(doc, table, SingleTier, "asr"); err != nil {
		t.Fatal(err)
	}
	doc.SetMedia(`clip "one".wav`)

	var b strings.Builder
	if err := WriteDocument(&b, doc); err != nil {
		t.Fatal(err)
	}
	out := b.String()

	if !strings.Contains(out, `he said "a &lt; b &amp; b &gt; c"`) {
		t.Errorf("event text not escaped:\n%s", out)
	}
	if !strings.Contains(out, `url="clip &quot;one&quot;.wav"`) {
		t.Errorf("attribute not escaped:\n%s", out)
	}
}

func TestWriteEmptyDocument(t *testing.T) {
	var b strings.Builder
	if err := WriteDocument(&b, NewDocument()); err != nil {
		t.Fatal(err)
	}
	out := b.String()
	for _, want := range []string{"<speakertable/>", "<common-timeline/>", `<referenced-file url=""/>`} {
		if !strings.Contains(out, want) {
			t.Errorf("empty document output missing %s:\n%s", want, out)
		}
	}
}
