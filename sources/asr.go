package sources

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/maastricht-university/exb-pipeline/exb"
)

type asrDump struct {
	Chunks []asrChunk `json:"chunks"`
}

type asrChunk struct {
	Timestamp []*float64 `json:"timestamp"`
	Text      string     `json:"text"`
}

// ReadASRJSON reads a whole-audio ASR dump: a list of chunks, each with a
// two-element [start, end] timestamp pair and the transcribed text. Rows
// carry the text as a transcript payload.
func ReadASRJSON(path string) (exb.IntervalTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return exb.IntervalTable{}, err
	}
	var dump asrDump
	if err := json.Unmarshal(data, &dump); err != nil {
		return exb.IntervalTable{}, fmt.Errorf("%w: %s: %v", ErrMalformedSource, path, err)
	}
	if dump.Chunks == nil {
		return exb.IntervalTable{}, fmt.Errorf("%w: %s has no chunks", ErrMalformedSource, path)
	}

	table := exb.IntervalTable{Source: path}
	for i, ch := range dump.Chunks {
		if len(ch.Timestamp) != 2 || ch.Timestamp[0] == nil || ch.Timestamp[1] == nil {
			return exb.IntervalTable{}, fmt.Errorf("%w: %s chunk %d has no [start, end] timestamp",
				ErrMalformedSource, path, i)
		}
		start, err := exb.TimePointFromSeconds(*ch.Timestamp[0])
		if err != nil {
			return exb.IntervalTable{}, fmt.Errorf("%s chunk %d: %w", path, i, err)
		}
		end, err := exb.TimePointFromSeconds(*ch.Timestamp[1])
		if err != nil {
			return exb.IntervalTable{}, fmt.Errorf("%s chunk %d: %w", path, i, err)
		}
		iv, err := exb.NewInterval(start, end, "", ch.Text, exb.PayloadTranscript)
		if err != nil {
			return exb.IntervalTable{}, fmt.Errorf("%s chunk %d: %w", path, i, err)
		}
		table.Rows = append(table.Rows, iv)
	}
	return table, nil
}
