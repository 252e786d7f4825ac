package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/solfege-app/solfege/pkg/audio"
	"github.com/solfege-app/solfege/pkg/score"
)

// Load reads the YAML configuration file at path and returns a validated
// [Config] with defaults applied. It is a convenience wrapper around
// [LoadFromReader].
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %q: %w", path, err)
	}
	defer f.Close()

	cfg, err := LoadFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("config: parse %q: %w", path, err)
	}
	return cfg, nil
}

// LoadFromReader decodes a YAML config from r, applies defaults, and
// validates the result. Useful in tests where configs are constructed from
// string literals.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := &Config{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: decode yaml: %w", err)
	}
	applyDefaults(cfg)
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns a config with every field at its default value.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Server.ListenAddr == "" {
		cfg.Server.ListenAddr = ":8080"
	}
	if cfg.Server.LogLevel == "" {
		cfg.Server.LogLevel = LogInfo
	}
	if cfg.Audio.TargetSampleRate == 0 {
		cfg.Audio.TargetSampleRate = audio.TargetSampleRate
	}
	if cfg.Audio.SilenceThreshold == 0 {
		cfg.Audio.SilenceThreshold = audio.DefaultSilenceThreshold
	}
	if cfg.Audio.MinClipSeconds == 0 {
		cfg.Audio.MinClipSeconds = audio.MinClipSeconds
	}
	if cfg.Audio.MaxClipSeconds == 0 {
		cfg.Audio.MaxClipSeconds = audio.MaxClipSeconds
	}
	if cfg.Scoring.SuccessThreshold == 0 {
		cfg.Scoring.SuccessThreshold = score.DefaultSuccessThreshold
	}
	if cfg.Scoring.CloseThreshold == 0 {
		cfg.Scoring.CloseThreshold = score.DefaultCloseThreshold
	}
}

// Validate checks that cfg contains a coherent set of values. It returns a
// joined error listing all validation failures found.
func Validate(cfg *Config) error {
	var errs []error

	if !cfg.Server.LogLevel.IsValid() {
		errs = append(errs, fmt.Errorf("server.log_level %q is invalid; valid values: debug, info, warn, error", cfg.Server.LogLevel))
	}
	if cfg.Audio.TargetSampleRate <= 0 {
		errs = append(errs, fmt.Errorf("audio.target_sample_rate must be positive, got %d", cfg.Audio.TargetSampleRate))
	}
	if cfg.Audio.SilenceThreshold < 0 {
		errs = append(errs, fmt.Errorf("audio.silence_threshold must not be negative, got %d", cfg.Audio.SilenceThreshold))
	}
	if cfg.Audio.MinClipSeconds < 0 {
		errs = append(errs, fmt.Errorf("audio.min_clip_seconds must not be negative, got %g", cfg.Audio.MinClipSeconds))
	}
	if cfg.Audio.MaxClipSeconds <= cfg.Audio.MinClipSeconds {
		errs = append(errs, fmt.Errorf("audio.max_clip_seconds (%g) must exceed audio.min_clip_seconds (%g)",
			cfg.Audio.MaxClipSeconds, cfg.Audio.MinClipSeconds))
	}
	if cfg.Scoring.SuccessThreshold <= 0 || cfg.Scoring.SuccessThreshold > 1 {
		errs = append(errs, fmt.Errorf("scoring.success_threshold must be in (0,1], got %g", cfg.Scoring.SuccessThreshold))
	}
	if cfg.Scoring.CloseThreshold <= 0 || cfg.Scoring.CloseThreshold > 1 {
		errs = append(errs, fmt.Errorf("scoring.close_threshold must be in (0,1], got %g", cfg.Scoring.CloseThreshold))
	}
	if cfg.Scoring.CloseThreshold > cfg.Scoring.SuccessThreshold {
		errs = append(errs, fmt.Errorf("scoring.close_threshold (%g) must not exceed scoring.success_threshold (%g)",
			cfg.Scoring.CloseThreshold, cfg.Scoring.SuccessThreshold))
	}

	return errors.Join(errs...)
}
