package e2etest

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/require"

	"github.com/nymtech/nym-explorer-indexer/e2etest/container"
	"github.com/nymtech/nym-explorer-indexer/internal/api"
	"github.com/nymtech/nym-explorer-indexer/internal/cache"
	"github.com/nymtech/nym-explorer-indexer/internal/clients/nodestatus"
	"github.com/nymtech/nym-explorer-indexer/internal/clients/nymapi"
	"github.com/nymtech/nym-explorer-indexer/internal/clients/priceclient"
	"github.com/nymtech/nym-explorer-indexer/internal/config"
	"github.com/nymtech/nym-explorer-indexer/internal/db"
	"github.com/nymtech/nym-explorer-indexer/internal/db/model"
	"github.com/nymtech/nym-explorer-indexer/internal/queue"
	"github.com/nymtech/nym-explorer-indexer/internal/services"
	"github.com/nymtech/nym-explorer-indexer/testutil"
)

const (
	e2eQueueName = "node_summary_queue"

	eventuallyWaitTimeOut = 40 * time.Second
	eventuallyPollTime    = 500 * time.Millisecond
)

type TestManager struct {
	Config     *config.Config
	Upstream   *Upstream
	DbClient   *db.Database
	Service    *services.Service
	API        *httptest.Server
	Deliveries <-chan amqp.Delivery
}

// StartManager starts mongo and rabbitmq containers, a fake upstream and the
// indexer with its api. The upstream is seeded by setup before the first
// refresh runs.
func StartManager(t *testing.T, setup func(u *Upstream)) *TestManager {
	upstream := NewUpstream(t)
	if setup != nil {
		setup(upstream)
	}

	dbCfg, cleanupMongo, err := testutil.SetupMongoContainer()
	require.NoError(t, err)
	t.Cleanup(cleanupMongo)

	queueCfg := container.RunRabbitMQ(t, container.NewImageConfig(), e2eQueueName)

	cfg := &config.Config{
		NymAPI:     config.NymAPIConfig{URL: upstream.URL()},
		NodeStatus: config.NodeStatusConfig{URL: upstream.URL()},
		Price:      &config.PriceConfig{URL: upstream.URL()},
		Db:         *dbCfg,
		Queue:      queueCfg,
		Poller: config.PollerConfig{
			SnapshotPollingInterval: time.Second,
		},
		Server:  config.ServerConfig{Host: "127.0.0.1"},
		Metrics: config.MetricsConfig{Host: "127.0.0.1"},
	}
	require.NoError(t, cfg.Validate())

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	require.NoError(t, model.Setup(ctx, &cfg.Db))

	dbClient, err := db.New(ctx, cfg.Db)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = dbClient.Close(context.Background())
	})

	qm, err := queue.NewQueueManager(cfg.Queue)
	require.NoError(t, err)
	t.Cleanup(qm.Shutdown)

	deliveries := consume(t, cfg.Queue)

	service := services.NewService(
		cfg,
		db.NewDbWithMetrics(dbClient),
		nymapi.NewNymAPIClientWithMetrics(nymapi.NewClient(&cfg.NymAPI)),
		nodestatus.NewNodeStatusClientWithMetrics(nodestatus.NewClient(&cfg.NodeStatus)),
		priceclient.NewPriceClientWithMetrics(priceclient.NewClient(cfg.Price)),
		qm,
		&cache.Cell[*services.NetworkSnapshot]{},
	)
	service.StartIndexerSync(ctx)

	apiServer := httptest.NewServer(api.NewRouter(service))
	t.Cleanup(apiServer.Close)

	return &TestManager{
		Config:     cfg,
		Upstream:   upstream,
		DbClient:   dbClient,
		Service:    service,
		API:        apiServer,
		Deliveries: deliveries,
	}
}

// consume reads the node summary queue on a connection of its own.
func consume(t *testing.T, cfg *config.QueueConfig) <-chan amqp.Delivery {
	conn, err := amqp.Dial(cfg.DialURL())
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = conn.Close()
	})

	ch, err := conn.Channel()
	require.NoError(t, err)

	_, err = ch.QueueDeclare(cfg.QueueName, true, false, false, false, nil)
	require.NoError(t, err)

	deliveries, err := ch.Consume(cfg.QueueName, "", true, false, false, false, nil)
	require.NoError(t, err)
	return deliveries
}
