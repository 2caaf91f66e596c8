package config

import (
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	configPathEnv     = "NEWSY_CONFIG"
	anthropicKeyEnv   = "ANTHROPIC_API_KEY"
	anthropicModelEnv = "NEWSY_SUMMARY_MODEL"
)

// Config holds high-level settings required across the application.
type Config struct {
	Input      string           `yaml:"input"`
	OutputDir  string           `yaml:"outputDir"`
	Logging    LoggingConfig    `yaml:"logging"`
	Enrichment EnrichmentConfig `yaml:"enrichment"`
	Summary    SummaryConfig    `yaml:"summary"`
	Taxonomy   TaxonomyConfig   `yaml:"taxonomy"`
}

// LoggingConfig controls slog verbosity.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// EnrichmentConfig tunes the social-post content fetcher.
type EnrichmentConfig struct {
	HostMarker     string `yaml:"hostMarker"`
	TimeoutSeconds int    `yaml:"timeoutSeconds"`
	MaxConcurrent  int    `yaml:"maxConcurrent"`
	SnippetLimit   int    `yaml:"snippetLimit"`
}

// FetchTimeout resolves the per-request timeout.
func (e EnrichmentConfig) FetchTimeout() time.Duration {
	return time.Duration(e.TimeoutSeconds) * time.Second
}

// SummaryConfig selects and configures the theme summarizer.
// Mode is "local" or "anthropic".
type SummaryConfig struct {
	Mode       string `yaml:"mode"`
	Endpoint   string `yaml:"endpoint"`
	Model      string `yaml:"model"`
	APIKey     string `yaml:"apiKey"`
	MaxTokens  int    `yaml:"maxTokens"`
	TopEntries int    `yaml:"topEntries"`
}

// TaxonomyConfig points at an optional YAML override for the built-in
// pattern tables.
type TaxonomyConfig struct {
	Path string `yaml:"path"`
}

// Load reads YAML configuration (if present) and applies environment overrides.
func Load() Config {
	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()
	return cfg
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(anthropicKeyEnv); v != "" {
		c.Summary.APIKey = v
	}
	if v := os.Getenv(anthropicModelEnv); v != "" {
		c.Summary.Model = v
	}
}

func mergeConfig(base, override Config) Config {
	if override.Input != "" {
		base.Input = override.Input
	}
	if override.OutputDir != "" {
		base.OutputDir = override.OutputDir
	}

	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}

	if override.Enrichment.HostMarker != "" {
		base.Enrichment.HostMarker = override.Enrichment.HostMarker
	}
	if override.Enrichment.TimeoutSeconds > 0 {
		base.Enrichment.TimeoutSeconds = override.Enrichment.TimeoutSeconds
	}
	if override.Enrichment.MaxConcurrent > 0 {
		base.Enrichment.MaxConcurrent = override.Enrichment.MaxConcurrent
	}
	if override.Enrichment.SnippetLimit > 0 {
		base.Enrichment.SnippetLimit = override.Enrichment.SnippetLimit
	}

	if override.Summary.Mode != "" {
		base.Summary.Mode = override.Summary.Mode
	}
	if override.Summary.Endpoint != "" {
		base.Summary.Endpoint = override.Summary.Endpoint
	}
	if override.Summary.Model != "" {
		base.Summary.Model = override.Summary.Model
	}
	if override.Summary.APIKey != "" {
		base.Summary.APIKey = override.Summary.APIKey
	}
	if override.Summary.MaxTokens > 0 {
		base.Summary.MaxTokens = override.Summary.MaxTokens
	}
	if override.Summary.TopEntries > 0 {
		base.Summary.TopEntries = override.Summary.TopEntries
	}

	if override.Taxonomy.Path != "" {
		base.Taxonomy.Path = override.Taxonomy.Path
	}

	return base
}

func defaultConfig() Config {
	return Config{
		Input:     "diary.txt",
		OutputDir: "output",
		Logging:   LoggingConfig{Level: "info"},
		Enrichment: EnrichmentConfig{
			HostMarker:     "bsky.app",
			TimeoutSeconds: 10,
			MaxConcurrent:  8,
			SnippetLimit:   500,
		},
		Summary: SummaryConfig{
			Mode:       "local",
			Endpoint:   "https://api.anthropic.com/v1/messages",
			Model:      "claude-3-haiku-20240307",
			MaxTokens:  500,
			TopEntries: 20,
		},
	}
}
