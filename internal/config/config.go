// Package config provides the configuration schema and loader for the
// Solfege pronunciation service.
package config

// LogLevel controls log verbosity for the service.
type LogLevel string

const (
	LogDebug LogLevel = "debug"
	LogInfo  LogLevel = "info"
	LogWarn  LogLevel = "warn"
	LogError LogLevel = "error"
)

// IsValid reports whether l is a recognised log level.
func (l LogLevel) IsValid() bool {
	switch l {
	case LogDebug, LogInfo, LogWarn, LogError:
		return true
	}
	return false
}

// Config is the root configuration structure. It is typically loaded from a
// YAML file using [Load] or [LoadFromReader].
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Audio   AudioConfig   `yaml:"audio"`
	Scoring ScoringConfig `yaml:"scoring"`
}

// ServerConfig holds network and logging settings.
type ServerConfig struct {
	// ListenAddr is the TCP address the HTTP server listens on
	// (e.g., ":8080"). Default: ":8080".
	ListenAddr string `yaml:"listen_addr"`

	// LogLevel controls verbosity. Default: "info".
	LogLevel LogLevel `yaml:"log_level"`
}

// AudioConfig holds the normalization pipeline targets. The defaults mirror
// the assessment API's hard requirements; override them only against a
// provider that documents different limits.
type AudioConfig struct {
	// TargetSampleRate is the output rate in Hz. Default: 16000.
	TargetSampleRate int `yaml:"target_sample_rate"`

	// SilenceThreshold is the absolute 16-bit amplitude below which a
	// sample counts as silence when trimming. Default: 500.
	SilenceThreshold int `yaml:"silence_threshold"`

	// MinClipSeconds and MaxClipSeconds bound accepted clip durations.
	// Defaults: 0.1 and 30.
	MinClipSeconds float64 `yaml:"min_clip_seconds"`
	MaxClipSeconds float64 `yaml:"max_clip_seconds"`
}

// ScoringConfig holds the accuracy tier boundaries.
type ScoringConfig struct {
	// SuccessThreshold is the minimum accuracy for the success tier.
	// Default: 0.8.
	SuccessThreshold float64 `yaml:"success_threshold"`

	// CloseThreshold is the minimum accuracy for the close tier.
	// Default: 0.6.
	CloseThreshold float64 `yaml:"close_threshold"`
}
