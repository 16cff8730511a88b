package config

import (
	"fmt"
	"time"
)

const defaultQueuePublishTimeout = 5 * time.Second

type QueueConfig struct {
	URL            string        `mapstructure:"url"`
	User           string        `mapstructure:"user"`
	Password       string        `mapstructure:"password"`
	QueueName      string        `mapstructure:"queue-name"`
	PublishTimeout time.Duration `mapstructure:"publish-timeout"`
}

func (cfg *QueueConfig) Validate() error {
	if cfg.URL == "" {
		return fmt.Errorf("missing queue url")
	}
	if cfg.QueueName == "" {
		return fmt.Errorf("missing queue name")
	}
	if cfg.PublishTimeout <= 0 {
		cfg.PublishTimeout = defaultQueuePublishTimeout
	}

	return nil
}

// DialURL returns the amqp url with credentials.
func (cfg *QueueConfig) DialURL() string {
	if cfg.User == "" {
		return fmt.Sprintf("amqp://%s", cfg.URL)
	}
	return fmt.Sprintf("amqp://%s:%s@%s", cfg.User, cfg.Password, cfg.URL)
}
