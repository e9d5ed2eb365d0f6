package config

import (
	"strings"

	"github.com/spf13/viper"
)

type Paths struct {
	Audio       string `mapstructure:"audio"`
	VAD         string `mapstructure:"vad"`
	Diarization string `mapstructure:"diarization"`
	ASR         string `mapstructure:"asr"`
	Outputs     string `mapstructure:"outputs"`
	Template    string `mapstructure:"template"`
}

type Compile struct {
	MinDurationSeconds float64  `mapstructure:"min_duration_seconds"`
	Placeholder        string   `mapstructure:"placeholder"`
	Models             []string `mapstructure:"models"`
}

type Batch struct {
	Workers int `mapstructure:"workers"`
}

type Root struct {
	Pipeline struct {
		Name   string `mapstructure:"name"`
		LogLvl string `mapstructure:"log_level"`
	} `mapstructure:"pipeline"`
	Paths   Paths   `mapstructure:"paths"`
	Compile Compile `mapstructure:"compile"`
	Batch   Batch   `mapstructure:"batch"`
}

// Load reads the YAML config file (explicit path, or config.yaml in the
// working directory and ./config) with EXB_-prefixed env overrides and
// defaults for every key, so an empty config is a working config.
func Load(path string) (*Root, error) {
	v := viper.New()
	v.SetDefault("pipeline.name", "exb-pipeline")
	v.SetDefault("pipeline.log_level", "info")
	v.SetDefault("paths.audio", "data/audio_16khz_mono_wav")
	v.SetDefault("paths.vad", "data/vad")
	v.SetDefault("paths.diarization", "data/diarization")
	v.SetDefault("paths.asr", "data/asr")
	v.SetDefault("paths.outputs", "data/exbs")
	v.SetDefault("paths.template", "")
	v.SetDefault("compile.min_duration_seconds", 0.1)
	v.SetDefault("compile.placeholder", "-")
	v.SetDefault("compile.models", []string{"whisper", "nemo"})
	v.SetDefault("batch.workers", 4)

	v.SetEnvPrefix("EXB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("config")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, err
			}
		}
	}

	var cfg Root
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
