package orchestrator

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	cfg "github.com/maastricht-university/exb-pipeline/config"
	"github.com/maastricht-university/exb-pipeline/exb"
	"github.com/maastricht-university/exb-pipeline/sources"
)

type Pipeline struct {
	cfg *cfg.Root
	log *logrus.Logger
}

func NewPipeline(c *cfg.Root, log *logrus.Logger) *Pipeline {
	return &Pipeline{cfg: c, log: log}
}

func (p *Pipeline) newCompiler() (*exb.Compiler, error) {
	comp := exb.NewCompiler(p.log)
	if p.cfg.Compile.Placeholder != "" {
		comp.Placeholder = p.cfg.Compile.Placeholder
	}
	min, err := exb.TimePointFromSeconds(p.cfg.Compile.MinDurationSeconds)
	if err != nil {
		return nil, fmt.Errorf("min_duration_seconds: %w", err)
	}
	comp.MinDuration = min
	return comp, nil
}

func (p *Pipeline) template(m Manifest) (*exb.Template, error) {
	path := m.Template
	if path == "" {
		path = p.cfg.Paths.Template
	}
	if path == "" {
		return exb.DefaultTemplate(), nil
	}
	return exb.LoadTemplate(path)
}

// CompileOne builds one recording's document: template, then every source
// in manifest order, then the media binding, then the file on disk.
func (p *Pipeline) CompileOne(m Manifest) error {
	log := p.log.WithField("recording", m.Recording)

	tpl, err := p.template(m)
	if err != nil {
		return err
	}
	doc, err := exb.NewDocumentFromTemplate(tpl)
	if err != nil {
		return err
	}
	comp, err := p.newCompiler()
	if err != nil {
		return err
	}

	for _, src := range m.Sources {
		table, mode, tier, err := p.readSource(src)
		if err != nil {
			return err
		}
		if err := comp.Compile(doc, table, mode, tier); err != nil {
			return err
		}
		log.WithFields(logrus.Fields{"source": src.Path, "kind": src.Kind, "rows": len(table.Rows)}).
			Debug("source compiled")
	}

	doc.SetMedia(m.Audio)
	if err := os.MkdirAll(filepath.Dir(m.Output), 0o755); err != nil {
		return err
	}
	if err := exb.WriteFile(m.Output, doc); err != nil {
		return err
	}
	log.WithField("output", m.Output).Info("document written")
	return nil
}

func (p *Pipeline) readSource(src Source) (exb.IntervalTable, exb.Mode, string, error) {
	switch src.Kind {
	case KindVAD:
		t, err := sources.ReadRTTM(src.Path)
		return t, exb.SingleTier, src.Tier, err
	case KindDiarization:
		t, err := sources.ReadRTTM(src.Path)
		return t, exb.PerChannel, "", err
	case KindASR:
		t, err := sources.ReadASRJSON(src.Path)
		return t, exb.SingleTier, src.Tier, err
	case KindSegments:
		t, err := sources.ReadSegmentsCSV(p.log, src.Path, p.cfg.Compile.Models)
		return t, exb.PerChannel, "", err
	default:
		return exb.IntervalTable{}, 0, "", fmt.Errorf("unknown source kind %q", src.Kind)
	}
}
