package orchestrator

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// Batch kinds mirror the two compilation flows: "review" merges VAD,
// diarization and whole-audio ASR for one recording; "segments" merges a
// per-segment multi-model transcription table.
const (
	BatchReview   = "review"
	BatchSegments = "segments"
)

// RunBatch compiles every recording found in the audio directory. Each
// recording gets its own document and its own worker; a failure is logged
// and reported but never stops the other recordings.
func (p *Pipeline) RunBatch(ctx context.Context, kind string) error {
	ids, err := p.recordingIDs()
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		return fmt.Errorf("no recordings under %s", p.cfg.Paths.Audio)
	}

	manifests := make([]Manifest, 0, len(ids))
	for _, id := range ids {
		m, err := p.manifestFor(id, kind)
		if err != nil {
			return err
		}
		manifests = append(manifests, m)
	}

	workers := p.cfg.Batch.Workers
	if workers < 1 {
		workers = 1
	}

	results := make([]RecordingResult, len(manifests))
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	for i, m := range manifests {
		if err := ctx.Err(); err != nil {
			break
		}
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, m Manifest) {
			defer wg.Done()
			defer func() { <-sem }()
			res := RecordingResult{Recording: m.Recording, Output: m.Output}
			if err := p.CompileOne(m); err != nil {
				p.log.WithField("recording", m.Recording).WithError(err).Error("recording skipped")
				res.Error = err.Error()
			}
			results[i] = res
		}(i, m)
	}
	wg.Wait()
	if err := ctx.Err(); err != nil {
		return err
	}

	reportPath, err := p.writeReport(results)
	if err != nil {
		return err
	}
	p.log.WithField("report", reportPath).Info("batch finished")
	return nil
}

// recordingIDs lists the wav base names under the audio directory, sorted
// for a stable compile order.
func (p *Pipeline) recordingIDs() ([]string, error) {
	wavs, err := filepath.Glob(filepath.Join(p.cfg.Paths.Audio, "*.wav"))
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(wavs))
	for _, w := range wavs {
		ids = append(ids, strings.TrimSuffix(filepath.Base(w), ".wav"))
	}
	sort.Strings(ids)
	return ids, nil
}

func (p *Pipeline) manifestFor(id, kind string) (Manifest, error) {
	m := Manifest{
		Recording: id,
		Audio:     filepath.Join(p.cfg.Paths.Audio, id+".wav"),
		Output:    filepath.Join(p.cfg.Paths.Outputs, id+".exb"),
	}
	switch kind {
	case BatchReview:
		m.Sources = []Source{
			{Kind: KindVAD, Path: filepath.Join(p.cfg.Paths.VAD, id+".rttm"), Tier: "vad"},
			{Kind: KindDiarization, Path: filepath.Join(p.cfg.Paths.Diarization, id+".rttm")},
			{Kind: KindASR, Path: filepath.Join(p.cfg.Paths.ASR, id+".json"), Tier: "asr"},
		}
	case BatchSegments:
		m.Sources = []Source{
			{Kind: KindSegments, Path: filepath.Join(p.cfg.Paths.ASR, id+"_diarization_whisper.csv")},
		}
	default:
		return Manifest{}, fmt.Errorf("unknown batch kind %q", kind)
	}
	return m, nil
}
