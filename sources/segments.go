package sources

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/maastricht-university/exb-pipeline/exb"
)

// ReadSegmentsCSV reads a per-segment transcription table: columns start,
// end, speaker_name, duration, plus one text column per ASR model. Each
// model contributes rows on a "<speaker>_<model>" channel, so downstream
// per-channel compilation yields one tier per (speaker, model) pair.
//
// A model column that is absent from the header is skipped with a warning;
// the table degrades to the models that are present. No model column at all
// is a malformed source.
func ReadSegmentsCSV(log *logrus.Logger, path string, models []string) (exb.IntervalTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return exb.IntervalTable{}, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return exb.IntervalTable{}, fmt.Errorf("%w: %s: %v", ErrMalformedSource, path, err)
	}
	if len(records) == 0 {
		return exb.IntervalTable{}, fmt.Errorf("%w: %s is empty", ErrMalformedSource, path)
	}

	col := map[string]int{}
	for i, name := range records[0] {
		col[name] = i
	}
	for _, name := range []string{"start", "end", "speaker_name", "duration"} {
		if _, ok := col[name]; !ok {
			return exb.IntervalTable{}, fmt.Errorf("%w: %s missing column %q", ErrMalformedSource, path, name)
		}
	}

	var present []string
	for _, m := range models {
		if _, ok := col[m]; ok {
			present = append(present, m)
		} else {
			log.WithFields(logrus.Fields{"source": path, "model": m}).
				Warn("model column missing, compiling without it")
		}
	}
	if len(present) == 0 {
		return exb.IntervalTable{}, fmt.Errorf("%w: %s has none of the model columns %v", ErrMalformedSource, path, models)
	}

	table := exb.IntervalTable{Source: path}
	for li, rec := range records[1:] {
		line := li + 2
		start, err := exb.ParseTimePoint(rec[col["start"]])
		if err != nil {
			return exb.IntervalTable{}, fmt.Errorf("%s line %d: %w", path, line, err)
		}
		end, err := exb.ParseTimePoint(rec[col["end"]])
		if err != nil {
			return exb.IntervalTable{}, fmt.Errorf("%s line %d: %w", path, line, err)
		}
		dur, err := exb.ParseTimePoint(rec[col["duration"]])
		if err != nil {
			return exb.IntervalTable{}, fmt.Errorf("%s line %d: %w", path, line, err)
		}
		speaker := rec[col["speaker_name"]]
		for _, m := range present {
			iv, err := exb.NewInterval(start, end, speaker+"_"+m, rec[col[m]], exb.PayloadTranscript)
			if err != nil {
				return exb.IntervalTable{}, fmt.Errorf("%s line %d: %w", path, line, err)
			}
			iv.Duration = dur
			table.Rows = append(table.Rows, iv)
		}
	}

	// Stable sort by start keeps events in temporal order inside each
	// (speaker, model) tier while preserving model order on ties.
	sort.SliceStable(table.Rows, func(i, j int) bool { return table.Rows[i].Start < table.Rows[j].Start })
	return table, nil
}
