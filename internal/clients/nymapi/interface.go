package nymapi

import (
	"context"

	"github.com/nymtech/nym-explorer-indexer/internal/types"
)

//go:generate mockery --name=NymAPIInterface --output=../../../tests/mocks --outpkg=mocks --filename=mock_nymapi_client.go
type NymAPIInterface interface {
	GetNodes(ctx context.Context, limit int) (*types.NodeList, error)
	GetNodeDelegations(ctx context.Context, nodeID uint32) ([]types.Delegation, error)
	GetAccountDelegations(ctx context.Context, address string) ([]types.Delegation, error)
	GetPendingEvents(ctx context.Context, address string) ([]types.PendingEvent, error)
	GetBalance(ctx context.Context, address string) (*types.AccountBalanceSummary, error)
	GetEpochParams(ctx context.Context) (*types.EpochParams, error)
}
