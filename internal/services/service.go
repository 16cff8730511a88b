package services

import (
	"context"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/nymtech/nym-explorer-indexer/internal/cache"
	"github.com/nymtech/nym-explorer-indexer/internal/clients/nodestatus"
	"github.com/nymtech/nym-explorer-indexer/internal/clients/nymapi"
	"github.com/nymtech/nym-explorer-indexer/internal/clients/priceclient"
	"github.com/nymtech/nym-explorer-indexer/internal/config"
	"github.com/nymtech/nym-explorer-indexer/internal/db"
	"github.com/nymtech/nym-explorer-indexer/internal/queue"
)

type Service struct {
	cfg        *config.Config
	db         db.DbInterface
	nymAPI     nymapi.NymAPIInterface
	nodeStatus nodestatus.NodeStatusInterface
	// price and publisher are nil when not configured
	price     priceclient.PriceInterface
	publisher queue.PublisherInterface
	snapshots *cache.Cell[*NetworkSnapshot]
	// rebuilds lets concurrent api reads share one snapshot build
	rebuilds singleflight.Group
	now      func() time.Time
}

func NewService(
	cfg *config.Config,
	db db.DbInterface,
	nymAPI nymapi.NymAPIInterface,
	nodeStatus nodestatus.NodeStatusInterface,
	price priceclient.PriceInterface,
	publisher queue.PublisherInterface,
	snapshots *cache.Cell[*NetworkSnapshot],
) *Service {
	if snapshots == nil {
		snapshots = &cache.Cell[*NetworkSnapshot]{}
	}

	return &Service{
		cfg:        cfg,
		db:         db,
		nymAPI:     nymAPI,
		nodeStatus: nodeStatus,
		price:      price,
		publisher:  publisher,
		snapshots:  snapshots,
		now:        time.Now,
	}
}

// StartIndexerSync starts the background refresh of the network snapshot.
func (s *Service) StartIndexerSync(ctx context.Context) {
	s.StartSnapshotPoller(ctx)
}

func (s *Service) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}
