package config

import (
	"testing"
	"time"
)

// allEnvVars lists every variable Load reads; they are cleared between tests.
var allEnvVars = []string{
	"KUNDLI_DATABASE_URL", "KUNDLI_GRPC_ADDR", "KUNDLI_HTTP_ADDR", "KUNDLI_NATS_URL",
	"KUNDLI_AUTH_TOKEN", "KUNDLI_EPHEMERIS_URL", "KUNDLI_EPHEMERIS_TIMEOUT",
	"KUNDLI_DEFAULT_TIMEZONE", "KUNDLI_SYNC_INTERVAL", "KUNDLI_SYNC_S3_BUCKET",
	"KUNDLI_SYNC_S3_ENDPOINT", "KUNDLI_SYNC_S3_REGION", "KUNDLI_SYNC_S3_KEY",
	"KUNDLI_SYNC_FILE",
}

func clearAllEnv(t *testing.T) {
	t.Helper()
	for _, key := range allEnvVars {
		t.Setenv(key, "")
	}
}

func TestLoad(t *testing.T) {
	for _, tc := range []struct {
		name         string
		env          map[string]string
		wantErr      bool
		wantGRPCAddr string
		wantHTTPAddr string
		wantNATSURL  string
		wantDB       string
	}{
		{
			name:    "MissingEphemerisURL",
			env:     map[string]string{},
			wantErr: true,
		},
		{
			name:         "DefaultAddresses",
			env:          map[string]string{"KUNDLI_EPHEMERIS_URL": "http://localhost:7000"},
			wantGRPCAddr: ":9090",
			wantHTTPAddr: ":8080",
		},
		{
			name: "CustomAddresses",
			env: map[string]string{
				"KUNDLI_EPHEMERIS_URL": "grpc://ephemeris:7001",
				"KUNDLI_DATABASE_URL":  "postgres://db:5432/kundli",
				"KUNDLI_GRPC_ADDR":     ":5050",
				"KUNDLI_HTTP_ADDR":     ":3000",
				"KUNDLI_NATS_URL":      "nats://localhost:4222",
			},
			wantGRPCAddr: ":5050",
			wantHTTPAddr: ":3000",
			wantNATSURL:  "nats://localhost:4222",
			wantDB:       "postgres://db:5432/kundli",
		},
		{
			name: "InvalidTimezone",
			env: map[string]string{
				"KUNDLI_EPHEMERIS_URL":    "http://localhost:7000",
				"KUNDLI_DEFAULT_TIMEZONE": "Mars/Olympus_Mons",
			},
			wantErr: true,
		},
		{
			name: "InvalidTimeout",
			env: map[string]string{
				"KUNDLI_EPHEMERIS_URL":     "http://localhost:7000",
				"KUNDLI_EPHEMERIS_TIMEOUT": "soon",
			},
			wantErr: true,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			clearAllEnv(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			cfg, err := Load()
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cfg.DatabaseURL != tc.wantDB {
				t.Errorf("DatabaseURL = %q, want %q", cfg.DatabaseURL, tc.wantDB)
			}
			if cfg.GRPCAddr != tc.wantGRPCAddr {
				t.Errorf("GRPCAddr = %q, want %q", cfg.GRPCAddr, tc.wantGRPCAddr)
			}
			if cfg.HTTPAddr != tc.wantHTTPAddr {
				t.Errorf("HTTPAddr = %q, want %q", cfg.HTTPAddr, tc.wantHTTPAddr)
			}
			if cfg.NATSURL != tc.wantNATSURL {
				t.Errorf("NATSURL = %q, want %q", cfg.NATSURL, tc.wantNATSURL)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	clearAllEnv(t)
	t.Setenv("KUNDLI_EPHEMERIS_URL", "http://localhost:7000")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.EphemerisTimeout != 10*time.Second {
		t.Errorf("EphemerisTimeout = %v, want 10s", cfg.EphemerisTimeout)
	}
	if cfg.DefaultTimezone != "Asia/Kolkata" {
		t.Errorf("DefaultTimezone = %q, want %q", cfg.DefaultTimezone, "Asia/Kolkata")
	}
	if cfg.SyncInterval != 10*time.Minute {
		t.Errorf("SyncInterval = %v, want 10m", cfg.SyncInterval)
	}
	if cfg.SyncS3Region != "us-east-1" {
		t.Errorf("SyncS3Region = %q, want %q", cfg.SyncS3Region, "us-east-1")
	}
	if cfg.SyncS3Key != "kundli/charts.jsonl" {
		t.Errorf("SyncS3Key = %q, want %q", cfg.SyncS3Key, "kundli/charts.jsonl")
	}
}

func TestLoadCustom(t *testing.T) {
	clearAllEnv(t)
	t.Setenv("KUNDLI_EPHEMERIS_URL", "/etc/kundli/snapshot.toml")
	t.Setenv("KUNDLI_EPHEMERIS_TIMEOUT", "3s")
	t.Setenv("KUNDLI_DEFAULT_TIMEZONE", "UTC")
	t.Setenv("KUNDLI_AUTH_TOKEN", "s3cret")
	t.Setenv("KUNDLI_SYNC_INTERVAL", "1h")
	t.Setenv("KUNDLI_SYNC_S3_BUCKET", "my-bucket")
	t.Setenv("KUNDLI_SYNC_S3_ENDPOINT", "http://minio:9000")
	t.Setenv("KUNDLI_SYNC_S3_REGION", "ap-south-1")
	t.Setenv("KUNDLI_SYNC_S3_KEY", "custom/key.jsonl")
	t.Setenv("KUNDLI_SYNC_FILE", "/var/lib/kundli/charts.jsonl")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.EphemerisURL != "/etc/kundli/snapshot.toml" {
		t.Errorf("EphemerisURL = %q", cfg.EphemerisURL)
	}
	if cfg.EphemerisTimeout != 3*time.Second {
		t.Errorf("EphemerisTimeout = %v, want 3s", cfg.EphemerisTimeout)
	}
	if cfg.DefaultTimezone != "UTC" {
		t.Errorf("DefaultTimezone = %q", cfg.DefaultTimezone)
	}
	if cfg.AuthToken != "s3cret" {
		t.Errorf("AuthToken = %q", cfg.AuthToken)
	}
	if cfg.SyncInterval != time.Hour {
		t.Errorf("SyncInterval = %v, want 1h", cfg.SyncInterval)
	}
	if cfg.SyncS3Bucket != "my-bucket" {
		t.Errorf("SyncS3Bucket = %q", cfg.SyncS3Bucket)
	}
	if cfg.SyncS3Endpoint != "http://minio:9000" {
		t.Errorf("SyncS3Endpoint = %q", cfg.SyncS3Endpoint)
	}
	if cfg.SyncS3Region != "ap-south-1" {
		t.Errorf("SyncS3Region = %q", cfg.SyncS3Region)
	}
	if cfg.SyncS3Key != "custom/key.jsonl" {
		t.Errorf("SyncS3Key = %q", cfg.SyncS3Key)
	}
	if cfg.SyncFile != "/var/lib/kundli/charts.jsonl" {
		t.Errorf("SyncFile = %q", cfg.SyncFile)
	}
}

func TestLoadSyncInvalidInterval(t *testing.T) {
	clearAllEnv(t)
	t.Setenv("KUNDLI_EPHEMERIS_URL", "http://localhost:7000")
	t.Setenv("KUNDLI_SYNC_INTERVAL", "not-a-duration")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for invalid KUNDLI_SYNC_INTERVAL")
	}
}

func TestLoadSyncDisabled(t *testing.T) {
	clearAllEnv(t)
	t.Setenv("KUNDLI_EPHEMERIS_URL", "http://localhost:7000")
	t.Setenv("KUNDLI_SYNC_INTERVAL", "0s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.SyncInterval != 0 {
		t.Errorf("SyncInterval = %v, want 0 (disabled)", cfg.SyncInterval)
	}
}

func TestEnvOrDefault(t *testing.T) {
	for _, tc := range []struct {
		name     string
		key      string
		envVal   string
		fallback string
		want     string
	}{
		{"EmptyUsesDefault", "TEST_ENVDEFAULT_EMPTY", "", "default-val", "default-val"},
		{"SetUsesEnv", "TEST_ENVDEFAULT_SET", "custom", "default-val", "custom"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.envVal)
			got := envOrDefault(tc.key, tc.fallback)
			if got != tc.want {
				t.Errorf("envOrDefault(%q, %q) = %q, want %q", tc.key, tc.fallback, got, tc.want)
			}
		})
	}
}
