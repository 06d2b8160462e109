package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultAddr       = ":8080"
	defaultDSN        = "tripdesk.db"
	defaultJWTTTL     = "24h"
	defaultSchemaPath = "configs/schema.json"
	defaultUploadDir  = "uploads"
	defaultDocsDir    = "uploads/docs"
	defaultPublicBase = "http://localhost:8080"
)

// Config is the process-wide runtime configuration, read once at startup.
type Config struct {
	Addr        string
	DatabaseDSN string
	JWTSecret   string
	JWTTTL      time.Duration
	SchemaPath  string
	UploadDir   string
	DocsDir     string
	// PublicBaseURL prefixes upload and document URLs handed back to clients.
	PublicBaseURL string
}

// Load reads .env if present, then the environment. JWT_SECRET has no
// default; the process refuses to boot without one.
func Load() (*Config, error) {
	_ = godotenv.Load()

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is empty")
	}

	ttl, err := time.ParseDuration(getenv("JWT_TTL", defaultJWTTTL))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_TTL: %w", err)
	}

	return &Config{
		Addr:          getenv("ADDR", defaultAddr),
		DatabaseDSN:   getenv("DATABASE_URL", defaultDSN),
		JWTSecret:     secret,
		JWTTTL:        ttl,
		SchemaPath:    getenv("SCHEMA_PATH", defaultSchemaPath),
		UploadDir:     getenv("UPLOAD_DIR", defaultUploadDir),
		DocsDir:       getenv("DOCS_DIR", defaultDocsDir),
		PublicBaseURL: getenv("PUBLIC_BASE_URL", defaultPublicBase),
	}, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
