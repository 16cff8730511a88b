package config

import (
	"fmt"
	"time"
)

const (
	defaultNodeStatusTimeout        = 10 * time.Second
	defaultNodeStatusMaxRetryTimes  = 1
	defaultNodeStatusRetryInterval  = 500 * time.Millisecond
	defaultNodeStatusMaxConcurrency = 8
)

type NodeStatusConfig struct {
	URL           string        `mapstructure:"url"`
	Timeout       time.Duration `mapstructure:"timeout"`
	MaxRetryTimes uint          `mapstructure:"max-retry-times"`
	RetryInterval time.Duration `mapstructure:"retry-interval"`
	// MaxConcurrency bounds the gateway status requests in flight per refresh
	MaxConcurrency int `mapstructure:"max-concurrency"`
}

func (cfg *NodeStatusConfig) Validate() error {
	if err := validateURL(cfg.URL); err != nil {
		return err
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultNodeStatusTimeout
	}
	if cfg.MaxRetryTimes == 0 {
		cfg.MaxRetryTimes = defaultNodeStatusMaxRetryTimes
	}
	if cfg.RetryInterval <= 0 {
		cfg.RetryInterval = defaultNodeStatusRetryInterval
	}
	if cfg.MaxConcurrency < 0 {
		return fmt.Errorf("max-concurrency cannot be negative")
	}
	if cfg.MaxConcurrency == 0 {
		cfg.MaxConcurrency = defaultNodeStatusMaxConcurrency
	}

	return nil
}
