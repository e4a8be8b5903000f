// Package config loads tool configuration from YAML files, environment
// variables and built-in defaults.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"essaylens/internal/detect"
	"essaylens/internal/metrics"
	"essaylens/internal/workspace"
)

// Config is the root configuration for every command.
type Config struct {
	LogLevel  string          `mapstructure:"log_level"`
	Corpus    string          `mapstructure:"corpus"`
	Server    ServerConfig    `mapstructure:"server"`
	Detection DetectionConfig `mapstructure:"detection"`
}

type ServerConfig struct {
	Listen    string  `mapstructure:"listen"`
	RateLimit float64 `mapstructure:"rate_limit"`
	Burst     int     `mapstructure:"burst"`
}

type DetectionConfig struct {
	Salience   float64            `mapstructure:"salience"`
	Weights    map[string]float64 `mapstructure:"weights"`
	Confidence ConfidenceConfig   `mapstructure:"confidence"`
}

type ConfidenceConfig struct {
	HighBelow float64 `mapstructure:"high_below"`
	LowAbove  float64 `mapstructure:"low_above"`
}

// Load reads configuration from path. An empty path searches the
// workspace and the current directory, and a missing file there just
// means defaults apply. ESSAYLENS_* environment variables override
// file values, so ESSAYLENS_SERVER_LISTEN overrides server.listen.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if base, err := workspace.Dir(); err == nil {
			v.AddConfigPath(filepath.Join(base, "configs"))
		}
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("ESSAYLENS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	opts := detect.DefaultOptions()

	v.SetDefault("log_level", "info")
	v.SetDefault("corpus", "")
	v.SetDefault("server.listen", ":8080")
	v.SetDefault("server.rate_limit", 5.0)
	v.SetDefault("server.burst", 10)
	v.SetDefault("detection.salience", opts.Salience)
	v.SetDefault("detection.confidence.high_below", opts.Confidence.HighBelow)
	v.SetDefault("detection.confidence.low_above", opts.Confidence.LowAbove)
	for kind, weight := range opts.Weights {
		v.SetDefault("detection.weights."+string(kind), weight)
	}
}

// Validate checks the plumbing values. Scoring weights and thresholds
// are validated by detect.NewEngine when the engine is built.
func (c *Config) Validate() error {
	if c.Server.Listen == "" {
		return fmt.Errorf("server.listen is required")
	}
	if c.Server.RateLimit <= 0 {
		return fmt.Errorf("server.rate_limit must be positive")
	}
	if c.Server.Burst <= 0 {
		return fmt.Errorf("server.burst must be positive")
	}
	return nil
}

// EngineOptions maps the detection section onto scoring options.
func (c *Config) EngineOptions() detect.Options {
	opts := detect.Options{
		Weights:  map[metrics.Kind]float64{},
		Salience: c.Detection.Salience,
		Confidence: detect.ConfidenceThresholds{
			HighBelow: c.Detection.Confidence.HighBelow,
			LowAbove:  c.Detection.Confidence.LowAbove,
		},
	}
	for name, weight := range c.Detection.Weights {
		opts.Weights[metrics.Kind(name)] = weight
	}
	return opts
}
