package orchestrator

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Source kinds a manifest may list.
const (
	KindVAD         = "vad"         // RTTM, one tier under Source.Tier
	KindDiarization = "diarization" // RTTM, one tier per speaker
	KindASR         = "asr"         // ASR chunk JSON, one tier under Source.Tier
	KindSegments    = "segments"    // multi-model CSV, one tier per (speaker, model)
)

type Source struct {
	Kind string `yaml:"kind"`
	Path string `yaml:"path"`
	Tier string `yaml:"tier,omitempty"`
}

// Manifest describes one recording's compilation: which audio it reviews,
// which annotation streams go in, and where the document comes out.
type Manifest struct {
	Recording string   `yaml:"recording"`
	Audio     string   `yaml:"audio"`
	Output    string   `yaml:"output"`
	Template  string   `yaml:"template,omitempty"`
	Sources   []Source `yaml:"sources"`
}

// LoadManifest reads and validates a manifest file.
func LoadManifest(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, err
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("manifest %s: %w", path, err)
	}
	if err := m.Validate(); err != nil {
		return Manifest{}, fmt.Errorf("manifest %s: %w", path, err)
	}
	return m, nil
}

func (m Manifest) Validate() error {
	if m.Audio == "" {
		return fmt.Errorf("no audio file")
	}
	if m.Output == "" {
		return fmt.Errorf("no output path")
	}
	if len(m.Sources) == 0 {
		return fmt.Errorf("no sources")
	}
	for _, s := range m.Sources {
		switch s.Kind {
		case KindVAD, KindASR:
			if s.Tier == "" {
				return fmt.Errorf("%s source %s needs a tier name", s.Kind, s.Path)
			}
		case KindDiarization, KindSegments:
		default:
			return fmt.Errorf("unknown source kind %q", s.Kind)
		}
		if s.Path == "" {
			return fmt.Errorf("%s source has no path", s.Kind)
		}
	}
	return nil
}
