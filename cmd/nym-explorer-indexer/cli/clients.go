package cli

import (
	"github.com/nymtech/nym-explorer-indexer/internal/cache"
	"github.com/nymtech/nym-explorer-indexer/internal/clients/nodestatus"
	"github.com/nymtech/nym-explorer-indexer/internal/clients/nymapi"
	"github.com/nymtech/nym-explorer-indexer/internal/clients/priceclient"
	"github.com/nymtech/nym-explorer-indexer/internal/config"
	"github.com/nymtech/nym-explorer-indexer/internal/db"
	"github.com/nymtech/nym-explorer-indexer/internal/queue"
	"github.com/nymtech/nym-explorer-indexer/internal/services"
)

// newService wires the upstream clients into a service. dbClient and
// publisher may be nil for commands that only read upstream sources.
func newService(cfg *config.Config, dbClient db.DbInterface, publisher queue.PublisherInterface) *services.Service {
	var nymAPIClient nymapi.NymAPIInterface = nymapi.NewClient(&cfg.NymAPI)
	nymAPIClient = nymapi.NewNymAPIClientWithMetrics(nymAPIClient)

	var nodeStatusClient nodestatus.NodeStatusInterface = nodestatus.NewClient(&cfg.NodeStatus)
	nodeStatusClient = nodestatus.NewNodeStatusClientWithMetrics(nodeStatusClient)

	// a nil *Client must not end up inside the interface
	var priceClient priceclient.PriceInterface
	if cfg.Price != nil {
		priceClient = priceclient.NewPriceClientWithMetrics(priceclient.NewClient(cfg.Price))
	}

	return services.NewService(
		cfg,
		dbClient,
		nymAPIClient,
		nodeStatusClient,
		priceClient,
		publisher,
		&cache.Cell[*services.NetworkSnapshot]{},
	)
}
