package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "debug: true\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !cfg.Debug {
		t.Error("expected debug true")
	}
	if cfg.Server.Host != "localhost" || cfg.Server.Port != 8080 {
		t.Errorf("server defaults = %s:%d, want localhost:8080", cfg.Server.Host, cfg.Server.Port)
	}
	if cfg.Embedding.Provider != "openai" {
		t.Errorf("Provider = %q, want openai", cfg.Embedding.Provider)
	}
	if cfg.Embedding.Model != "text-embedding-3-small" {
		t.Errorf("Model = %q, want text-embedding-3-small", cfg.Embedding.Model)
	}
	if cfg.Embedding.Dimensions != 1536 {
		t.Errorf("Dimensions = %d, want 1536", cfg.Embedding.Dimensions)
	}
	if cfg.Embedding.APIKeyEnv != "OPENAI_API_KEY" {
		t.Errorf("APIKeyEnv = %q, want OPENAI_API_KEY", cfg.Embedding.APIKeyEnv)
	}
	if cfg.Pipeline.RequestsPerSecond != 5 {
		t.Errorf("RequestsPerSecond = %v, want 5", cfg.Pipeline.RequestsPerSecond)
	}
	if cfg.Ranking.ExactMatchScore != 100 {
		t.Errorf("ExactMatchScore = %v, want 100", cfg.Ranking.ExactMatchScore)
	}
}

func TestLoad_RelativePathsResolveAgainstConfigDir(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
corpus:
  path: docs/corpus.yaml
store:
  database_path: data/embeddings.db
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if want := filepath.Join(dir, "docs", "corpus.yaml"); cfg.Corpus.Path != want {
		t.Errorf("Corpus.Path = %q, want %q", cfg.Corpus.Path, want)
	}
	if want := filepath.Join(dir, "data", "embeddings.db"); cfg.Store.DatabasePath != want {
		t.Errorf("Store.DatabasePath = %q, want %q", cfg.Store.DatabasePath, want)
	}
}

func TestLoad_AbsolutePathUntouched(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
corpus:
  path: /etc/helpsearch/corpus.yaml
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Corpus.Path != "/etc/helpsearch/corpus.yaml" {
		t.Errorf("Corpus.Path = %q, want absolute path unchanged", cfg.Corpus.Path)
	}
}

func TestLoad_Overrides(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
server:
  host: 0.0.0.0
  port: 9000
embedding:
  provider: mock
  dimensions: 384
ranking:
  exact_match_score: 200
  default_limit: 10
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("Port = %d, want 9000", cfg.Server.Port)
	}
	if cfg.Embedding.Provider != "mock" || cfg.Embedding.Dimensions != 384 {
		t.Errorf("embedding = %+v, want mock/384", cfg.Embedding)
	}
	if cfg.Ranking.ExactMatchScore != 200 {
		t.Errorf("ExactMatchScore = %v, want 200", cfg.Ranking.ExactMatchScore)
	}
	if cfg.Ranking.DefaultLimit != 10 {
		t.Errorf("DefaultLimit = %d, want 10", cfg.Ranking.DefaultLimit)
	}
	// untouched ranking fields still get defaults
	if cfg.Ranking.KeywordInQueryScore != 50 {
		t.Errorf("KeywordInQueryScore = %v, want 50", cfg.Ranking.KeywordInQueryScore)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "server: [not a map")
	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid yaml")
	}
}
