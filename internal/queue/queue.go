package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"

	"github.com/nymtech/nym-explorer-indexer/internal/config"
	"github.com/nymtech/nym-explorer-indexer/internal/observability/metrics"
)

//go:generate mockery --name=PublisherInterface --output=../../tests/mocks --outpkg=mocks --filename=mock_publisher.go
type PublisherInterface interface {
	PublishNodeSummaries(ctx context.Context, msgs []NodeSummaryMessage) error
}

// QueueManager publishes node summary messages to a durable rabbitmq queue.
type QueueManager struct {
	cfg  *config.QueueConfig
	conn *amqp.Connection

	mu      sync.Mutex
	channel *amqp.Channel
}

func NewQueueManager(cfg *config.QueueConfig) (*QueueManager, error) {
	conn, err := amqp.Dial(cfg.DialURL())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	_, err = channel.QueueDeclare(
		cfg.QueueName,
		true,  // durable
		false, // auto delete
		false, // exclusive
		false, // no wait
		nil,
	)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue %s: %w", cfg.QueueName, err)
	}

	return &QueueManager{
		cfg:     cfg,
		conn:    conn,
		channel: channel,
	}, nil
}

// PublishNodeSummaries sends one message per node. It stops at the first
// failure; messages sent before it are not rolled back.
func (qm *QueueManager) PublishNodeSummaries(ctx context.Context, msgs []NodeSummaryMessage) error {
	qm.mu.Lock()
	defer qm.mu.Unlock()

	for _, msg := range msgs {
		if err := qm.publish(ctx, msg); err != nil {
			metrics.RecordQueueSendError()
			return fmt.Errorf("failed to publish summary of node %d: %w", msg.NodeID, err)
		}
	}

	log.Ctx(ctx).Debug().Int("messages", len(msgs)).Msg("published node summaries")
	return nil
}

func (qm *QueueManager) publish(ctx context.Context, msg NodeSummaryMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, qm.cfg.PublishTimeout)
	defer cancel()

	return qm.channel.PublishWithContext(ctx,
		"",               // default exchange
		qm.cfg.QueueName, // routing key
		false,            // mandatory
		false,            // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
}

// Shutdown gracefully stops the interaction with the queue, ensuring all resources are properly released.
func (qm *QueueManager) Shutdown() {
	log.Info().Msg("Shutting down queue manager")

	qm.mu.Lock()
	defer qm.mu.Unlock()

	if err := qm.channel.Close(); err != nil {
		log.Error().Err(err).Msg("failed to close queue channel")
	}
	if err := qm.conn.Close(); err != nil {
		log.Error().Err(err).Msg("failed to close queue connection")
	}
}
