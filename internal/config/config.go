// Package config provides configuration loading for the helpsearch server and jobs.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/retailops/helpsearch/internal/ranking"
)

// Config holds all configuration for the application. Provider credentials are
// deliberately not part of the file; they come from the environment.
type Config struct {
	Debug     bool            `yaml:"debug"`
	Server    ServerConfig    `yaml:"server"`
	Corpus    CorpusConfig    `yaml:"corpus"`
	Store     StoreConfig     `yaml:"store"`
	Embedding EmbeddingConfig `yaml:"embedding"`
	Pipeline  PipelineConfig  `yaml:"pipeline"`
	Ranking   ranking.Config  `yaml:"ranking"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// CorpusConfig holds the corpus source location.
type CorpusConfig struct {
	Path string `yaml:"path"`
}

// StoreConfig holds the embedding record store location.
type StoreConfig struct {
	DatabasePath string `yaml:"database_path"`
}

// EmbeddingConfig holds embedding provider settings.
type EmbeddingConfig struct {
	// Provider is "openai" or "mock" (deterministic, for local development).
	Provider       string `yaml:"provider"`
	Model          string `yaml:"model"`
	Dimensions     int    `yaml:"dimensions"`
	CacheSize      int    `yaml:"cache_size"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	// APIKeyEnv names the environment variable holding the provider key.
	APIKeyEnv string `yaml:"api_key_env"`
}

// PipelineConfig holds offline embedding job settings.
type PipelineConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	SkipUnchanged     bool    `yaml:"skip_unchanged"`
}

// Load reads and parses the config file at path, expands paths relative to
// the config directory, and applies defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	ApplyDefaults(&cfg)

	configDir := filepath.Dir(path)
	cfg.Corpus.Path = expandPath(cfg.Corpus.Path, configDir)
	cfg.Store.DatabasePath = expandPath(cfg.Store.DatabasePath, configDir)

	return &cfg, nil
}

// expandPath converts a path to absolute, resolving relative paths against configDir.
func expandPath(path string, configDir string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return filepath.Join(configDir, path)
}
