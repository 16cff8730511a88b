package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	NymAPI     NymAPIConfig     `mapstructure:"nym-api"`
	NodeStatus NodeStatusConfig `mapstructure:"node-status"`
	Price      *PriceConfig     `mapstructure:"price"`
	Db         DbConfig         `mapstructure:"db"`
	Queue      *QueueConfig     `mapstructure:"queue"`
	Poller     PollerConfig     `mapstructure:"poller"`
	Server     ServerConfig     `mapstructure:"server"`
	Metrics    MetricsConfig    `mapstructure:"metrics"`
}

func (cfg *Config) Validate() error {
	if err := cfg.NymAPI.Validate(); err != nil {
		return fmt.Errorf("nym-api: %w", err)
	}

	if err := cfg.NodeStatus.Validate(); err != nil {
		return fmt.Errorf("node-status: %w", err)
	}

	// price quotes are optional, usd values are reported as zero without them
	if cfg.Price != nil {
		if err := cfg.Price.Validate(); err != nil {
			return fmt.Errorf("price: %w", err)
		}
	}

	if err := cfg.Db.Validate(); err != nil {
		return fmt.Errorf("db: %w", err)
	}

	if cfg.Queue != nil {
		if err := cfg.Queue.Validate(); err != nil {
			return fmt.Errorf("queue: %w", err)
		}
	}

	if err := cfg.Poller.Validate(); err != nil {
		return fmt.Errorf("poller: %w", err)
	}

	if err := cfg.Server.Validate(); err != nil {
		return fmt.Errorf("server: %w", err)
	}

	if err := cfg.Metrics.Validate(); err != nil {
		return fmt.Errorf("metrics: %w", err)
	}

	return nil
}

// New returns a fully parsed Config object from a given file path.
// Values can be overridden with env variables, e.g. NYM_API__URL for nym-api.url
func New(cfgFile string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(cfgFile)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "__", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
