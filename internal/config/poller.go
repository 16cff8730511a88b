package config

import (
	"errors"
	"time"
)

const (
	defaultSnapshotTTL          = 5 * time.Minute
	defaultSnapshotFetchTimeout = 2 * time.Minute
)

type PollerConfig struct {
	SnapshotPollingInterval time.Duration `mapstructure:"snapshot-polling-interval"`
	// SnapshotTTL is how long a cached network snapshot is served before an
	// api read triggers a refresh
	SnapshotTTL          time.Duration `mapstructure:"snapshot-ttl"`
	SnapshotFetchTimeout time.Duration `mapstructure:"snapshot-fetch-timeout"`
}

func (cfg *PollerConfig) Validate() error {
	if cfg.SnapshotPollingInterval <= 0 {
		return errors.New("snapshot-polling-interval must be positive")
	}

	if cfg.SnapshotTTL <= 0 {
		cfg.SnapshotTTL = defaultSnapshotTTL
	}

	if cfg.SnapshotFetchTimeout <= 0 {
		cfg.SnapshotFetchTimeout = defaultSnapshotFetchTimeout
	}

	return nil
}
