package priceclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	sdkmath "cosmossdk.io/math"

	"github.com/nymtech/nym-explorer-indexer/internal/clients/client"
	"github.com/nymtech/nym-explorer-indexer/internal/config"
	"github.com/nymtech/nym-explorer-indexer/internal/normalize"
	"github.com/nymtech/nym-explorer-indexer/internal/types"
)

const pricePath = "/simple/price?ids=nym&vs_currencies=usd"

// priceResponse is a quote keyed by coin id then currency, e.g.
// {"nym": {"usd": 0.0521}}.
type priceResponse map[string]map[string]json.Number

// Client fetches the NYM quote. A nil *Client is valid and reports no price.
type Client struct {
	httpClient *http.Client
	cfg        *config.PriceConfig
}

func NewClient(cfg *config.PriceConfig) *Client {
	if cfg == nil {
		return nil
	}

	return &Client{
		httpClient: &http.Client{},
		cfg:        cfg,
	}
}

func (c *Client) GetBaseURL() string {
	return c.cfg.URL
}

func (c *Client) GetDefaultRequestTimeout() time.Duration {
	return c.cfg.Timeout
}

func (c *Client) GetHttpClient() *http.Client {
	return c.httpClient
}

func (c *Client) GetUSDPrice(ctx context.Context) (sdkmath.LegacyDec, error) {
	if c == nil {
		return sdkmath.LegacyDec{}, types.NewFetchFailure("nym price", fmt.Errorf("price source is not configured"))
	}

	opts := &client.HttpClientOptions{
		Path:         pricePath,
		TemplatePath: "/simple/price",
	}

	resp, err := client.SendRequest[struct{}, priceResponse](ctx, c, http.MethodGet, opts, nil)
	if err != nil {
		return sdkmath.LegacyDec{}, types.NewFetchFailure("nym price", err)
	}

	quote, ok := (*resp)["nym"]["usd"]
	if !ok {
		return sdkmath.LegacyDec{}, types.NewFetchFailure("nym price", fmt.Errorf("usd quote is missing"))
	}
	price, perr := normalize.ParseDec("usd", quote.String())
	if perr != nil {
		return sdkmath.LegacyDec{}, types.NewFetchFailure("nym price", perr)
	}
	if price.IsNegative() {
		return sdkmath.LegacyDec{}, types.NewFetchFailure("nym price", fmt.Errorf("negative quote %s", price))
	}

	return price, nil
}
