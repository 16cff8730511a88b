package nodestatus

import (
	"context"
	"time"

	"github.com/nymtech/nym-explorer-indexer/internal/observability/metrics"
	"github.com/nymtech/nym-explorer-indexer/internal/types"
)

type nodeStatusClientWithMetrics struct {
	status NodeStatusInterface
}

func NewNodeStatusClientWithMetrics(status NodeStatusInterface) *nodeStatusClientWithMetrics {
	return &nodeStatusClientWithMetrics{status: status}
}

func (n *nodeStatusClientWithMetrics) GetGatewayStatus(ctx context.Context, identityKey string) (*types.GatewayStatus, error) {
	startTime := time.Now()
	status, err := n.status.GetGatewayStatus(ctx, identityKey)
	metrics.RecordUpstreamClientLatency(time.Since(startTime), "node_status", "GetGatewayStatus", err != nil)

	return status, err
}
