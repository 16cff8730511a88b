package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/nymtech/nym-explorer-indexer/internal/api"
	"github.com/nymtech/nym-explorer-indexer/internal/config"
	"github.com/nymtech/nym-explorer-indexer/internal/db"
	dbmodel "github.com/nymtech/nym-explorer-indexer/internal/db/model"
	"github.com/nymtech/nym-explorer-indexer/internal/observability/metrics"
	"github.com/nymtech/nym-explorer-indexer/internal/observability/tracing"
	"github.com/nymtech/nym-explorer-indexer/internal/queue"
)

const shutdownTimeout = 10 * time.Second

func StartServerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start-server",
		Short: "Starts the snapshot poller and the explorer api",
		Args:  cobra.ExactArgs(0),
		RunE:  startServer,
	}

	return cmd
}

func startServer(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	ctx = tracing.InjectTraceID(ctx)
	log := log.Ctx(ctx)

	// load config
	cfgPath := GetConfigPath()
	cfg, err := config.New(cfgPath)
	if err != nil {
		return fmt.Errorf("error while loading config file %s: %w", cfgPath, err)
	}

	err = dbmodel.Setup(ctx, &cfg.Db)
	if err != nil {
		return fmt.Errorf("error while setting up db model: %w", err)
	}

	// create new db client
	database, err := db.New(ctx, cfg.Db)
	if err != nil {
		return fmt.Errorf("error while creating db client: %w", err)
	}
	defer func() {
		if err := database.Close(context.WithoutCancel(ctx)); err != nil {
			log.Error().Err(err).Msg("error while closing db client")
		}
	}()
	var dbClient db.DbInterface = db.NewDbWithMetrics(database)

	// the publisher stays a nil interface when no queue is configured
	var publisher queue.PublisherInterface
	if cfg.Queue != nil {
		qm, err := queue.NewQueueManager(cfg.Queue)
		if err != nil {
			return fmt.Errorf("error while creating queue manager: %w", err)
		}
		defer qm.Shutdown()
		publisher = qm
	}

	service := newService(cfg, dbClient, publisher)

	// initialize metrics with the metrics port from config
	metricsPort := cfg.Metrics.GetMetricsPort()
	metrics.Init(metricsPort)

	service.StartIndexerSync(ctx)

	server := api.NewServer(&cfg.Server, service)
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
