package config

import (
	"os"
	"time"
)

// Environment variable names. A .env file in the working directory is loaded
// by main via godotenv before LoadConfig runs.
const (
	envEndpointAddr   = "DAYBOOK_ADDR"
	envDatabaseDSN    = "DAYBOOK_DATABASE_DSN"
	envSecretKey      = "DAYBOOK_SECRET_KEY"
	envTokenTTL       = "DAYBOOK_TOKEN_TTL"
	envS3RootUser     = "DAYBOOK_S3_USER"
	envS3RootPassword = "DAYBOOK_S3_PASSWORD"
	envS3Bucket       = "DAYBOOK_S3_BUCKET"
	envS3Region       = "DAYBOOK_S3_REGION"
	envS3BaseEndpoint = "DAYBOOK_S3_ENDPOINT"
	envCORSOrigins    = "DAYBOOK_CORS_ORIGINS"
)

// parseEnv overlays Config fields from environment variables. Unset
// variables leave the current values untouched; a malformed token TTL is
// ignored rather than failing startup.
func parseEnv(config *Config) {
	if v, ok := os.LookupEnv(envEndpointAddr); ok {
		config.EndpointAddr = v
	}
	if v, ok := os.LookupEnv(envDatabaseDSN); ok {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv(envSecretKey); ok {
		config.SecretKey = v
	}
	if v, ok := os.LookupEnv(envTokenTTL); ok {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			config.AccessTokenValidityDuration = d
		}
	}
	if v, ok := os.LookupEnv(envS3RootUser); ok {
		config.S3RootUser = v
	}
	if v, ok := os.LookupEnv(envS3RootPassword); ok {
		config.S3RootPassword = v
	}
	if v, ok := os.LookupEnv(envS3Bucket); ok {
		config.S3Bucket = v
	}
	if v, ok := os.LookupEnv(envS3Region); ok {
		config.S3Region = v
	}
	if v, ok := os.LookupEnv(envS3BaseEndpoint); ok {
		config.S3BaseEndpoint = v
	}
	if v, ok := os.LookupEnv(envCORSOrigins); ok {
		config.CORSAllowedOrigins = splitOrigins(v)
	}
}
