package orchestrator

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

type RecordingResult struct {
	Recording string `json:"recording"`
	Output    string `json:"output"`
	Error     string `json:"error,omitempty"`
}

type RunReport struct {
	RunID       string            `json:"run_id"`
	GeneratedAt time.Time         `json:"generated_at"`
	Recordings  []RecordingResult `json:"recordings"`
}

// writeReport persists the batch outcome next to the compiled documents.
func (p *Pipeline) writeReport(results []RecordingResult) (string, error) {
	if err := os.MkdirAll(p.cfg.Paths.Outputs, 0o755); err != nil {
		return "", err
	}
	report := RunReport{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Recordings:  results,
	}
	path := filepath.Join(p.cfg.Paths.Outputs, "run_"+report.RunID+".json")
	if err := writeJSON(path, report); err != nil {
		return "", err
	}
	return path, nil
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
