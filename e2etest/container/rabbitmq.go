package container

import (
	"fmt"
	"testing"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/require"

	"github.com/nymtech/nym-explorer-indexer/internal/config"
	"github.com/nymtech/nym-explorer-indexer/testutil"
)

const (
	rabbitMQUser     = "user"
	rabbitMQPassword = "password"
)

// RunRabbitMQ starts a rabbitmq container that is purged when the test ends
// and returns a queue config pointing at it.
func RunRabbitMQ(t *testing.T, images ImageConfig, queueName string) *config.QueueConfig {
	t.Helper()

	pool, err := dockertest.NewPool("")
	require.NoError(t, err)

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Name:       "rabbitmq-e2e-" + testutil.RandomAlphaNum(3),
		Repository: images.RabbitMQRepository,
		Tag:        images.RabbitMQVersion,
		Env: []string{
			"RABBITMQ_DEFAULT_USER=" + rabbitMQUser,
			"RABBITMQ_DEFAULT_PASS=" + rabbitMQPassword,
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{
			Name: "no",
		}
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, pool.Purge(resource))
	})

	cfg := &config.QueueConfig{
		URL:       fmt.Sprintf("localhost:%s", resource.GetPort("5672/tcp")),
		User:      rabbitMQUser,
		Password:  rabbitMQPassword,
		QueueName: queueName,
	}
	require.NoError(t, cfg.Validate())

	// the broker needs a moment before it accepts connections
	err = pool.Retry(func() error {
		conn, err := amqp.Dial(cfg.DialURL())
		if err != nil {
			return err
		}
		return conn.Close()
	})
	require.NoError(t, err)

	return cfg
}
