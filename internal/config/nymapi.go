package config

import (
	"fmt"
	"net/url"
	"time"
)

const (
	defaultNymAPITimeout       = 20 * time.Second
	defaultNymAPIMaxRetryTimes = 1
	defaultNymAPIRetryInterval = 500 * time.Millisecond
	defaultNodesPageLimit      = 1000
)

type NymAPIConfig struct {
	// URL of the nym api including the version prefix, e.g. https://validator.nymtech.net/api/v1
	URL           string        `mapstructure:"url"`
	Timeout       time.Duration `mapstructure:"timeout"`
	MaxRetryTimes uint          `mapstructure:"max-retry-times"`
	RetryInterval time.Duration `mapstructure:"retry-interval"`
	// NodesPageLimit is sent as the limit query parameter of the node list
	NodesPageLimit int `mapstructure:"nodes-page-limit"`
}

func DefaultNymAPIConfig() *NymAPIConfig {
	return &NymAPIConfig{
		Timeout:        defaultNymAPITimeout,
		MaxRetryTimes:  defaultNymAPIMaxRetryTimes,
		RetryInterval:  defaultNymAPIRetryInterval,
		NodesPageLimit: defaultNodesPageLimit,
	}
}

func (cfg *NymAPIConfig) Validate() error {
	if err := validateURL(cfg.URL); err != nil {
		return err
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultNymAPITimeout
	}
	if cfg.MaxRetryTimes == 0 {
		cfg.MaxRetryTimes = defaultNymAPIMaxRetryTimes
	}
	if cfg.RetryInterval <= 0 {
		cfg.RetryInterval = defaultNymAPIRetryInterval
	}
	if cfg.NodesPageLimit < 0 {
		return fmt.Errorf("nodes-page-limit cannot be negative")
	}
	if cfg.NodesPageLimit == 0 {
		cfg.NodesPageLimit = defaultNodesPageLimit
	}

	return nil
}

func validateURL(raw string) error {
	if raw == "" {
		return fmt.Errorf("url is required")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid url %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("url %q must use http or https", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("url %q has no host", raw)
	}
	return nil
}
