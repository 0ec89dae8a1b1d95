package config

import (
	"fmt"
	"os"
	"time"
	_ "time/tzdata"
)

type Config struct {
	DatabaseURL string // KUNDLI_DATABASE_URL (optional, empty = in-memory store)
	GRPCAddr    string // KUNDLI_GRPC_ADDR (default ":9090")
	HTTPAddr    string // KUNDLI_HTTP_ADDR (default ":8080")
	NATSURL     string // KUNDLI_NATS_URL (optional, empty = no events)
	AuthToken   string // KUNDLI_AUTH_TOKEN (optional, empty = auth disabled)

	// Ephemeris collaborator
	EphemerisURL     string        // KUNDLI_EPHEMERIS_URL (required; http://, grpc:// or a snapshot file)
	EphemerisTimeout time.Duration // KUNDLI_EPHEMERIS_TIMEOUT (default 10s)
	DefaultTimezone  string        // KUNDLI_DEFAULT_TIMEZONE (default "Asia/Kolkata")

	// Sync settings
	SyncInterval   time.Duration // KUNDLI_SYNC_INTERVAL (default 10m; 0 = disabled)
	SyncS3Bucket   string        // KUNDLI_SYNC_S3_BUCKET (enables S3 when set)
	SyncS3Endpoint string        // KUNDLI_SYNC_S3_ENDPOINT (custom endpoint for MinIO)
	SyncS3Region   string        // KUNDLI_SYNC_S3_REGION (default "us-east-1")
	SyncS3Key      string        // KUNDLI_SYNC_S3_KEY (default "kundli/charts.jsonl")
	SyncFile       string        // KUNDLI_SYNC_FILE (local JSONL export path, optional)
}

func Load() (*Config, error) {
	c := &Config{
		DatabaseURL:     os.Getenv("KUNDLI_DATABASE_URL"),
		GRPCAddr:        envOrDefault("KUNDLI_GRPC_ADDR", ":9090"),
		HTTPAddr:        envOrDefault("KUNDLI_HTTP_ADDR", ":8080"),
		NATSURL:         os.Getenv("KUNDLI_NATS_URL"),
		AuthToken:       os.Getenv("KUNDLI_AUTH_TOKEN"),
		EphemerisURL:    os.Getenv("KUNDLI_EPHEMERIS_URL"),
		DefaultTimezone: envOrDefault("KUNDLI_DEFAULT_TIMEZONE", "Asia/Kolkata"),
		SyncS3Bucket:    os.Getenv("KUNDLI_SYNC_S3_BUCKET"),
		SyncS3Endpoint:  os.Getenv("KUNDLI_SYNC_S3_ENDPOINT"),
		SyncS3Region:    envOrDefault("KUNDLI_SYNC_S3_REGION", "us-east-1"),
		SyncS3Key:       envOrDefault("KUNDLI_SYNC_S3_KEY", "kundli/charts.jsonl"),
		SyncFile:        os.Getenv("KUNDLI_SYNC_FILE"),
	}
	if c.EphemerisURL == "" {
		return nil, fmt.Errorf("KUNDLI_EPHEMERIS_URL is required")
	}
	if _, err := time.LoadLocation(c.DefaultTimezone); err != nil {
		return nil, fmt.Errorf("KUNDLI_DEFAULT_TIMEZONE: %w", err)
	}

	var err error
	if c.EphemerisTimeout, err = durationEnv("KUNDLI_EPHEMERIS_TIMEOUT", "10s"); err != nil {
		return nil, err
	}
	if c.SyncInterval, err = durationEnv("KUNDLI_SYNC_INTERVAL", "10m"); err != nil {
		return nil, err
	}

	return c, nil
}

func durationEnv(key, fallback string) (time.Duration, error) {
	d, err := time.ParseDuration(envOrDefault(key, fallback))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
