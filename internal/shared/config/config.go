package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Taxonomy sources.
const (
	TaxonomyBuiltin  = "builtin"
	TaxonomyStore    = "store"
	TaxonomyPostgres = "postgres"
)

// ErrInvalid is returned by Validate for unusable settings.
var ErrInvalid = errors.New("invalid config")

// Config holds application configuration.
type Config struct {
	Port            string
	Env             string
	CORSAllowOrigin []string
	TaxonomySource  string
	TaxonomyKey     string
	ObjectStoreType string
	LocalStoreDir   string
	AWSRegion       string
	S3Bucket        string
	S3Prefix        string
	SSEKMSKeyID     string
	DatabaseURL     string
	RateLimitRPS    float64
	RateLimitBurst  int
	LLMProvider     string
	QueueURL        string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	return Config{
		Port:            getEnv("PORT", "8080"),
		Env:             normalizeEnv(getEnv("ENV", "dev")),
		CORSAllowOrigin: splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000")),
		TaxonomySource:  normalizeTaxonomySource(getEnv("TAXONOMY_SOURCE", TaxonomyBuiltin)),
		TaxonomyKey:     getEnv("TAXONOMY_KEY", "taxonomy.yaml"),
		ObjectStoreType: normalizeStoreType(getEnv("OBJECT_STORE", "local")),
		LocalStoreDir:   getEnv("LOCAL_STORE_DIR", "./data"),
		AWSRegion:       getEnv("AWS_REGION", ""),
		S3Bucket:        getEnv("S3_BUCKET", ""),
		S3Prefix:        getEnv("S3_PREFIX", ""),
		SSEKMSKeyID:     getEnv("SSE_KMS_KEY_ID", ""),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		RateLimitRPS:    getEnvFloat("RATE_LIMIT_RPS", 5),
		RateLimitBurst:  getEnvInt("RATE_LIMIT_BURST", 20),
		LLMProvider:     strings.ToLower(getEnv("LLM_PROVIDER", "placeholder")),
		QueueURL:        strings.TrimSpace(os.Getenv("ANALYSIS_QUEUE_URL")),
	}
}

// Validate reports settings that would make startup fail later.
func (c Config) Validate() error {
	switch c.TaxonomySource {
	case TaxonomyBuiltin:
	case TaxonomyStore:
		if c.ObjectStoreType == "s3" && strings.TrimSpace(c.S3Bucket) == "" {
			return fmt.Errorf("%w: TAXONOMY_SOURCE=store with OBJECT_STORE=s3 requires S3_BUCKET", ErrInvalid)
		}
	case TaxonomyPostgres:
		if strings.TrimSpace(c.DatabaseURL) == "" {
			return fmt.Errorf("%w: TAXONOMY_SOURCE=postgres requires DATABASE_URL", ErrInvalid)
		}
	default:
		return fmt.Errorf("%w: unknown TAXONOMY_SOURCE %q", ErrInvalid, c.TaxonomySource)
	}
	if c.RateLimitRPS < 0 || c.RateLimitBurst < 0 {
		return fmt.Errorf("%w: rate limit settings must not be negative", ErrInvalid)
	}
	return nil
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return def
	}
	return v
}

func getEnvInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}

func normalizeStoreType(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "s3":
		return "s3"
	default:
		return "local"
	}
}

// normalizeTaxonomySource lowercases raw; unknown values are left for
// Validate to reject.
func normalizeTaxonomySource(raw string) string {
	v := strings.ToLower(strings.TrimSpace(raw))
	if v == "" {
		return TaxonomyBuiltin
	}
	return v
}
