package nymapi

import (
	"context"
	"time"

	"github.com/nymtech/nym-explorer-indexer/internal/observability/metrics"
	"github.com/nymtech/nym-explorer-indexer/internal/types"
)

const metricsClientName = "nym_api"

type nymAPIClientWithMetrics struct {
	api NymAPIInterface
}

func NewNymAPIClientWithMetrics(api NymAPIInterface) *nymAPIClientWithMetrics {
	return &nymAPIClientWithMetrics{api: api}
}

func (n *nymAPIClientWithMetrics) GetNodes(ctx context.Context, limit int) (*types.NodeList, error) {
	return runNymAPIMethodWithMetrics("GetNodes", func() (*types.NodeList, error) {
		return n.api.GetNodes(ctx, limit)
	})
}

func (n *nymAPIClientWithMetrics) GetNodeDelegations(ctx context.Context, nodeID uint32) ([]types.Delegation, error) {
	return runNymAPIMethodWithMetrics("GetNodeDelegations", func() ([]types.Delegation, error) {
		return n.api.GetNodeDelegations(ctx, nodeID)
	})
}

func (n *nymAPIClientWithMetrics) GetAccountDelegations(ctx context.Context, address string) ([]types.Delegation, error) {
	return runNymAPIMethodWithMetrics("GetAccountDelegations", func() ([]types.Delegation, error) {
		return n.api.GetAccountDelegations(ctx, address)
	})
}

func (n *nymAPIClientWithMetrics) GetPendingEvents(ctx context.Context, address string) ([]types.PendingEvent, error) {
	return runNymAPIMethodWithMetrics("GetPendingEvents", func() ([]types.PendingEvent, error) {
		return n.api.GetPendingEvents(ctx, address)
	})
}

func (n *nymAPIClientWithMetrics) GetBalance(ctx context.Context, address string) (*types.AccountBalanceSummary, error) {
	return runNymAPIMethodWithMetrics("GetBalance", func() (*types.AccountBalanceSummary, error) {
		return n.api.GetBalance(ctx, address)
	})
}

func (n *nymAPIClientWithMetrics) GetEpochParams(ctx context.Context) (*types.EpochParams, error) {
	return runNymAPIMethodWithMetrics("GetEpochParams", func() (*types.EpochParams, error) {
		return n.api.GetEpochParams(ctx)
	})
}

func runNymAPIMethodWithMetrics[T any](method string, f func() (T, error)) (T, error) {
	startTime := time.Now()
	v, err := f()
	duration := time.Since(startTime)

	metrics.RecordUpstreamClientLatency(duration, metricsClientName, method, err != nil)
	return v, err
}
