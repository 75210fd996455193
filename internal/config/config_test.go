package config

import (
	"testing"
	"time"
)

// backupEnvVars lists all backup-related env vars that must be cleared between tests.
var backupEnvVars = []string{
	"TIMELINE_BACKUP_INTERVAL", "TIMELINE_BACKUP_S3_BUCKET", "TIMELINE_BACKUP_S3_ENDPOINT",
	"TIMELINE_BACKUP_S3_REGION", "TIMELINE_BACKUP_S3_KEY", "TIMELINE_BACKUP_GIT_REPO",
	"TIMELINE_BACKUP_GIT_FILE", "TIMELINE_BACKUP_GIT_BRANCH",
}

func clearAllEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"TIMELINE_DB_PATH", "TIMELINE_HTTP_ADDR", "TIMELINE_NATS_URL"} {
		t.Setenv(key, "")
	}
	for _, key := range backupEnvVars {
		t.Setenv(key, "")
	}
}

func TestLoad(t *testing.T) {
	for _, tc := range []struct {
		name         string
		env          map[string]string
		wantDBPath   string
		wantHTTPAddr string
		wantNATSURL  string
	}{
		{
			name:         "Defaults",
			env:          map[string]string{},
			wantDBPath:   "timeline.db",
			wantHTTPAddr: ":3000",
		},
		{
			name: "Custom",
			env: map[string]string{
				"TIMELINE_DB_PATH":   "/var/lib/timeline/data.db",
				"TIMELINE_HTTP_ADDR": ":8080",
				"TIMELINE_NATS_URL":  "nats://localhost:4222",
			},
			wantDBPath:   "/var/lib/timeline/data.db",
			wantHTTPAddr: ":8080",
			wantNATSURL:  "nats://localhost:4222",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			clearAllEnv(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			cfg, err := Load()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cfg.DBPath != tc.wantDBPath {
				t.Errorf("DBPath = %q, want %q", cfg.DBPath, tc.wantDBPath)
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

func TestLoadBackupDefaults(t *testing.T) {
	clearAllEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.BackupInterval != 15*time.Minute {
		t.Errorf("BackupInterval = %v, want 15m", cfg.BackupInterval)
	}
	if cfg.BackupS3Region != "us-east-1" {
		t.Errorf("BackupS3Region = %q, want %q", cfg.BackupS3Region, "us-east-1")
	}
	if cfg.BackupS3Key != "timeline/backup.json" {
		t.Errorf("BackupS3Key = %q, want %q", cfg.BackupS3Key, "timeline/backup.json")
	}
	if cfg.BackupGitFile != "timeline.json" {
		t.Errorf("BackupGitFile = %q, want %q", cfg.BackupGitFile, "timeline.json")
	}
	if cfg.BackupGitBranch != "main" {
		t.Errorf("BackupGitBranch = %q, want %q", cfg.BackupGitBranch, "main")
	}
}

func TestLoadBackupCustom(t *testing.T) {
	clearAllEnv(t)
	t.Setenv("TIMELINE_BACKUP_INTERVAL", "10m")
	t.Setenv("TIMELINE_BACKUP_S3_BUCKET", "my-bucket")
	t.Setenv("TIMELINE_BACKUP_S3_ENDPOINT", "http://minio:9000")
	t.Setenv("TIMELINE_BACKUP_S3_REGION", "eu-west-1")
	t.Setenv("TIMELINE_BACKUP_S3_KEY", "custom/key.json")
	t.Setenv("TIMELINE_BACKUP_GIT_REPO", "/tmp/repo")
	t.Setenv("TIMELINE_BACKUP_GIT_FILE", "custom.json")
	t.Setenv("TIMELINE_BACKUP_GIT_BRANCH", "backup")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.BackupInterval != 10*time.Minute {
		t.Errorf("BackupInterval = %v, want 10m", cfg.BackupInterval)
	}
	if cfg.BackupS3Bucket != "my-bucket" {
		t.Errorf("BackupS3Bucket = %q", cfg.BackupS3Bucket)
	}
	if cfg.BackupS3Endpoint != "http://minio:9000" {
		t.Errorf("BackupS3Endpoint = %q", cfg.BackupS3Endpoint)
	}
	if cfg.BackupS3Region != "eu-west-1" {
		t.Errorf("BackupS3Region = %q", cfg.BackupS3Region)
	}
	if cfg.BackupS3Key != "custom/key.json" {
		t.Errorf("BackupS3Key = %q", cfg.BackupS3Key)
	}
	if cfg.BackupGitRepo != "/tmp/repo" {
		t.Errorf("BackupGitRepo = %q", cfg.BackupGitRepo)
	}
	if cfg.BackupGitFile != "custom.json" {
		t.Errorf("BackupGitFile = %q", cfg.BackupGitFile)
	}
	if cfg.BackupGitBranch != "backup" {
		t.Errorf("BackupGitBranch = %q", cfg.BackupGitBranch)
	}
}

func TestLoadBackupInvalidInterval(t *testing.T) {
	clearAllEnv(t)
	t.Setenv("TIMELINE_BACKUP_INTERVAL", "not-a-duration")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid TIMELINE_BACKUP_INTERVAL")
	}
}

func TestLoadBackupDisabled(t *testing.T) {
	clearAllEnv(t)
	t.Setenv("TIMELINE_BACKUP_INTERVAL", "0s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.BackupInterval != 0 {
		t.Errorf("BackupInterval = %v, want 0 (disabled)", cfg.BackupInterval)
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
