package priceclient

import (
	"context"
	"time"

	sdkmath "cosmossdk.io/math"

	"github.com/nymtech/nym-explorer-indexer/internal/observability/metrics"
)

type priceClientWithMetrics struct {
	price PriceInterface
}

func NewPriceClientWithMetrics(price PriceInterface) *priceClientWithMetrics {
	return &priceClientWithMetrics{price: price}
}

func (p *priceClientWithMetrics) GetUSDPrice(ctx context.Context) (sdkmath.LegacyDec, error) {
	startTime := time.Now()
	price, err := p.price.GetUSDPrice(ctx)
	metrics.RecordUpstreamClientLatency(time.Since(startTime), "price", "GetUSDPrice", err != nil)

	return price, err
}
