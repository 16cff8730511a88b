package config

import (
	"time"
)

const defaultPriceTimeout = 5 * time.Second

type PriceConfig struct {
	URL     string        `mapstructure:"url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

func (cfg *PriceConfig) Validate() error {
	if err := validateURL(cfg.URL); err != nil {
		return err
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultPriceTimeout
	}

	return nil
}
