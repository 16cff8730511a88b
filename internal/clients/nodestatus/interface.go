package nodestatus

import (
	"context"

	"github.com/nymtech/nym-explorer-indexer/internal/types"
)

//go:generate mockery --name=NodeStatusInterface --output=../../../tests/mocks --outpkg=mocks --filename=mock_nodestatus_client.go
type NodeStatusInterface interface {
	// GetGatewayStatus returns nil and no error when the gateway has never
	// been probed.
	GetGatewayStatus(ctx context.Context, identityKey string) (*types.GatewayStatus, error)
}
