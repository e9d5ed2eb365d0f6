package sources

import (
	"errors"
	"testing"

	"github.com/maastricht-university/exb-pipeline/exb"
)

func TestReadASRJSON(t *testing.T) {
	path := writeFile(t, "0.json", `{
		"text": "hello world and more",
		"chunks": [
			{"timestamp": [0.0, 1.2], "text": "hello world"},
			{"timestamp": [1.2004, 2.5], "text": "and more"}
		]
	}`)

	table, err := ReadASRJSON(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(table.Rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(table.Rows))
	}
	r0 := table.Rows[0]
	if r0.Start != 0 || r0.End != 1200 || r0.Text != "hello world" {
		t.Errorf("row 0 = %+v", r0)
	}
	if r0.Kind != exb.PayloadTranscript {
		t.Errorf("row 0 kind = %v, want transcript", r0.Kind)
	}
	if table.Rows[1].Start != 1200 {
		t.Errorf("row 1 start = %s, want 1.2", table.Rows[1].Start)
	}
}

func TestReadASRJSONNoChunks(t *testing.T) {
	path := writeFile(t, "0.json", `{"text": "hello"}`)
	if _, err := ReadASRJSON(path); !errors.Is(err, ErrMalformedSource) {
		t.Fatalf("err = %v, want ErrMalformedSource", err)
	}
}

func TestReadASRJSONNullTimestamp(t *testing.T) {
	path := writeFile(t, "0.json", `{"chunks": [{"timestamp": [0.0, null], "text": "x"}]}`)
	if _, err := ReadASRJSON(path); !errors.Is(err, ErrMalformedSource) {
		t.Fatalf("err = %v, want ErrMalformedSource", err)
	}
}

func TestReadASRJSONNegativeTimestamp(t *testing.T) {
	path := writeFile(t, "0.json", `{"chunks": [{"timestamp": [-1.0, 2.0], "text": "x"}]}`)
	if _, err := ReadASRJSON(path); !errors.Is(err, exb.ErrInvalidTimepoint) {
		t.Fatalf("err = %v, want ErrInvalidTimepoint", err)
	}
}
