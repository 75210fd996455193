package config

import (
	"fmt"
	"os"
	"time"
)

type Config struct {
	DBPath   string // TIMELINE_DB_PATH (default "timeline.db")
	HTTPAddr string // TIMELINE_HTTP_ADDR (default ":3000")
	NATSURL  string // TIMELINE_NATS_URL (optional, empty = in-process stream only)

	// Backup settings
	BackupInterval   time.Duration // TIMELINE_BACKUP_INTERVAL (default 15m; 0 = disabled)
	BackupS3Bucket   string        // TIMELINE_BACKUP_S3_BUCKET (enables S3 when set)
	BackupS3Endpoint string        // TIMELINE_BACKUP_S3_ENDPOINT (custom endpoint for MinIO)
	BackupS3Region   string        // TIMELINE_BACKUP_S3_REGION (default "us-east-1")
	BackupS3Key      string        // TIMELINE_BACKUP_S3_KEY (default "timeline/backup.json")
	BackupGitRepo    string        // TIMELINE_BACKUP_GIT_REPO (enables git when set; path to clone)
	BackupGitFile    string        // TIMELINE_BACKUP_GIT_FILE (default "timeline.json")
	BackupGitBranch  string        // TIMELINE_BACKUP_GIT_BRANCH (default "main")
}

func Load() (*Config, error) {
	c := &Config{
		DBPath:           envOrDefault("TIMELINE_DB_PATH", "timeline.db"),
		HTTPAddr:         envOrDefault("TIMELINE_HTTP_ADDR", ":3000"),
		NATSURL:          os.Getenv("TIMELINE_NATS_URL"),
		BackupS3Bucket:   os.Getenv("TIMELINE_BACKUP_S3_BUCKET"),
		BackupS3Endpoint: os.Getenv("TIMELINE_BACKUP_S3_ENDPOINT"),
		BackupS3Region:   envOrDefault("TIMELINE_BACKUP_S3_REGION", "us-east-1"),
		BackupS3Key:      envOrDefault("TIMELINE_BACKUP_S3_KEY", "timeline/backup.json"),
		BackupGitRepo:    os.Getenv("TIMELINE_BACKUP_GIT_REPO"),
		BackupGitFile:    envOrDefault("TIMELINE_BACKUP_GIT_FILE", "timeline.json"),
		BackupGitBranch:  envOrDefault("TIMELINE_BACKUP_GIT_BRANCH", "main"),
	}

	intervalStr := envOrDefault("TIMELINE_BACKUP_INTERVAL", "15m")
	if intervalStr != "" {
		d, err := time.ParseDuration(intervalStr)
		if err != nil {
			return nil, fmt.Errorf("TIMELINE_BACKUP_INTERVAL: %w", err)
		}
		c.BackupInterval = d
	}

	return c, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
