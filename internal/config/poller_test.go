package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPollerConfig_Validate(t *testing.T) {
	t.Run("all required fields set", func(t *testing.T) {
		cfg := &PollerConfig{
			SnapshotPollingInterval: 1 * time.Minute,
			SnapshotTTL:             3 * time.Minute,
			SnapshotFetchTimeout:    30 * time.Second,
		}
		err := cfg.Validate()
		require.NoError(t, err)
		assert.Equal(t, 3*time.Minute, cfg.SnapshotTTL)
		assert.Equal(t, 30*time.Second, cfg.SnapshotFetchTimeout)
	})

	t.Run("snapshot ttl not set - should use default", func(t *testing.T) {
		cfg := &PollerConfig{
			SnapshotPollingInterval: 1 * time.Minute,
			SnapshotTTL:             0, // not set
		}
		err := cfg.Validate()
		require.NoError(t, err)
		assert.Equal(t, defaultSnapshotTTL, cfg.SnapshotTTL)
		assert.Equal(t, 5*time.Minute, cfg.SnapshotTTL)
		assert.Equal(t, defaultSnapshotFetchTimeout, cfg.SnapshotFetchTimeout)
	})

	t.Run("snapshot ttl negative - should use default", func(t *testing.T) {
		cfg := &PollerConfig{
			SnapshotPollingInterval: 1 * time.Minute,
			SnapshotTTL:             -1 * time.Minute, // negative
		}
		err := cfg.Validate()
		require.NoError(t, err)
		assert.Equal(t, defaultSnapshotTTL, cfg.SnapshotTTL)
	})

	t.Run("snapshot polling interval not set - should error", func(t *testing.T) {
		cfg := &PollerConfig{
			SnapshotTTL: 1 * time.Minute,
		}
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "snapshot-polling-interval must be positive")
	})
}
