package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "TAXONOMY_SOURCE", "TAXONOMY_KEY", "OBJECT_STORE", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "LLM_PROVIDER"} {
		t.Setenv(key, "")
	}
	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("unexpected port %q", cfg.Port)
	}
	if cfg.TaxonomySource != TaxonomyBuiltin {
		t.Fatalf("unexpected taxonomy source %q", cfg.TaxonomySource)
	}
	if cfg.TaxonomyKey != "taxonomy.yaml" {
		t.Fatalf("unexpected taxonomy key %q", cfg.TaxonomyKey)
	}
	if cfg.RateLimitRPS != 5 || cfg.RateLimitBurst != 20 {
		t.Fatalf("unexpected rate limit %v/%d", cfg.RateLimitRPS, cfg.RateLimitBurst)
	}
	if cfg.LLMProvider != "placeholder" {
		t.Fatalf("unexpected llm provider %q", cfg.LLMProvider)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("TAXONOMY_SOURCE", " Postgres ")
	t.Setenv("DATABASE_URL", "postgres://localhost/db")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("RATE_LIMIT_BURST", "not-a-number")
	t.Setenv("CORS_ALLOW_ORIGINS", "http://a.test, ,http://b.test")

	cfg := Load()
	if cfg.TaxonomySource != TaxonomyPostgres {
		t.Fatalf("unexpected taxonomy source %q", cfg.TaxonomySource)
	}
	if cfg.RateLimitRPS != 2.5 {
		t.Fatalf("unexpected rps %v", cfg.RateLimitRPS)
	}
	if cfg.RateLimitBurst != 20 {
		t.Fatalf("invalid burst should fall back to default, got %d", cfg.RateLimitBurst)
	}
	if len(cfg.CORSAllowOrigin) != 2 {
		t.Fatalf("unexpected origins %v", cfg.CORSAllowOrigin)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		ok   bool
	}{
		{name: "builtin", cfg: Config{TaxonomySource: TaxonomyBuiltin}, ok: true},
		{name: "store local", cfg: Config{TaxonomySource: TaxonomyStore, ObjectStoreType: "local"}, ok: true},
		{name: "store s3 without bucket", cfg: Config{TaxonomySource: TaxonomyStore, ObjectStoreType: "s3"}},
		{name: "postgres without url", cfg: Config{TaxonomySource: TaxonomyPostgres}},
		{name: "unknown source", cfg: Config{TaxonomySource: "ftp"}},
		{name: "negative burst", cfg: Config{TaxonomySource: TaxonomyBuiltin, RateLimitBurst: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.ok && err != nil {
				t.Fatalf("expected ok, got %v", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalid) {
				t.Fatalf("expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestLoadEnvFilesDoesNotOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("MATCHER_TEST_A=from-file\nMATCHER_TEST_B=\"quoted\"\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv("MATCHER_TEST_A", "from-env")
	t.Setenv("MATCHER_TEST_B", "")
	os.Unsetenv("MATCHER_TEST_B")

	loadEnvFiles(filepath.Join(dir, "missing.env"), path)

	if got := os.Getenv("MATCHER_TEST_A"); got != "from-env" {
		t.Fatalf("existing variable overridden: %q", got)
	}
	if got := os.Getenv("MATCHER_TEST_B"); got != "quoted" {
		t.Fatalf("expected quoted value loaded, got %q", got)
	}
}
