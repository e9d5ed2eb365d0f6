package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	cfg "github.com/maastricht-university/exb-pipeline/config"
	"github.com/maastricht-university/exb-pipeline/orchestrator"
)

var (
	flagConfig   string
	flagLogLevel string
)

func main() {
	log := logrus.New()

	root := &cobra.Command{
		Use:           "exb-pipeline",
		Short:         "Compile VAD, diarization and ASR streams into EXB documents for manual review",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config.yaml")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "debug, info, warn or error")

	root.AddCommand(compileCmd(log), batchCmd(log))

	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}

func setup(log *logrus.Logger) (*orchestrator.Pipeline, error) {
	conf, err := cfg.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	level := conf.Pipeline.LogLvl
	if flagLogLevel != "" {
		level = flagLogLevel
	}
	if lvl, err := logrus.ParseLevel(level); err == nil {
		log.SetLevel(lvl)
	}
	return orchestrator.NewPipeline(conf, log), nil
}

func compileCmd(log *logrus.Logger) *cobra.Command {
	var manifestPath string
	cmd := &cobra.Command{
		Use:   "compile",
		Short: "Compile one recording from a manifest file",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := setup(log)
			if err != nil {
				return err
			}
			m, err := orchestrator.LoadManifest(manifestPath)
			if err != nil {
				return err
			}
			return p.CompileOne(m)
		},
	}
	cmd.Flags().StringVar(&manifestPath, "manifest", "", "recording manifest (yaml)")
	if err := cmd.MarkFlagRequired("manifest"); err != nil {
		log.Fatal(err)
	}
	return cmd
}

func batchCmd(log *logrus.Logger) *cobra.Command {
	var kind string
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Compile every recording under the configured audio directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := setup(log)
			if err != nil {
				return err
			}
			return p.RunBatch(context.Background(), kind)
		},
	}
	cmd.Flags().StringVar(&kind, "kind", orchestrator.BatchSegments, "review or segments")
	return cmd
}
