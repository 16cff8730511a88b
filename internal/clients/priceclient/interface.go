package priceclient

import (
	"context"

	sdkmath "cosmossdk.io/math"
)

//go:generate mockery --name=PriceInterface --output=../../../tests/mocks --outpkg=mocks --filename=mock_price_client.go
type PriceInterface interface {
	// GetUSDPrice returns the price of one NYM in USD.
	GetUSDPrice(ctx context.Context) (sdkmath.LegacyDec, error)
}
