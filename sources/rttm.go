package sources

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/maastricht-university/exb-pipeline/exb"
)

// rttmFields is the fixed column count of an RTTM row: type, file id,
// channel id, start, duration, orthography, speaker type, speaker name,
// confidence, lookahead. Only start, duration and speaker name are used.
const rttmFields = 10

const (
	rttmStart   = 3
	rttmDur     = 4
	rttmSpeaker = 7
)

// ReadRTTM reads a VAD/diarization/resegmentation export. Start and
// duration are rounded to millisecond precision; end is start + duration.
// Rows carry the speaker name as a label payload.
func ReadRTTM(path string) (exb.IntervalTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return exb.IntervalTable{}, err
	}
	defer f.Close()

	table := exb.IntervalTable{Source: path}
	sc := bufio.NewScanner(f)
	line := 0
	for sc.Scan() {
		line++
		raw := strings.TrimSpace(sc.Text())
		if raw == "" {
			continue
		}
		fields := strings.Fields(raw)
		if len(fields) != rttmFields {
			return exb.IntervalTable{}, fmt.Errorf("%w: %s line %d has %d fields, want %d",
				ErrMalformedSource, path, line, len(fields), rttmFields)
		}
		start, err := exb.ParseTimePoint(fields[rttmStart])
		if err != nil {
			return exb.IntervalTable{}, fmt.Errorf("%s line %d: %w", path, line, err)
		}
		dur, err := exb.ParseTimePoint(fields[rttmDur])
		if err != nil {
			return exb.IntervalTable{}, fmt.Errorf("%s line %d: %w", path, line, err)
		}
		iv, err := exb.NewInterval(start, start+dur, fields[rttmSpeaker], fields[rttmSpeaker], exb.PayloadLabel)
		if err != nil {
			return exb.IntervalTable{}, fmt.Errorf("%s line %d: %w", path, line, err)
		}
		table.Rows = append(table.Rows, iv)
	}
	if err := sc.Err(); err != nil {
		return exb.IntervalTable{}, fmt.Errorf("reading %s: %w", path, err)
	}
	return table, nil
}
