package nodestatus

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/nymtech/nym-explorer-indexer/internal/clients/client"
	"github.com/nymtech/nym-explorer-indexer/internal/config"
	"github.com/nymtech/nym-explorer-indexer/internal/types"
)

const gatewayPath = "/v2/gateways/%s"

type gatewayResponse struct {
	IdentityKey     string  `json:"gateway_identity_key"`
	Performance     float64 `json:"performance"`
	LastProbeResult *struct {
		Outcome *types.ProbeResult `json:"outcome"`
	} `json:"last_probe_result"`
}

type Client struct {
	httpClient *http.Client
	cfg        *config.NodeStatusConfig
}

func NewClient(cfg *config.NodeStatusConfig) *Client {
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

func (c *Client) GetGatewayStatus(ctx context.Context, identityKey string) (*types.GatewayStatus, error) {
	if identityKey == "" {
		return nil, fmt.Errorf("empty identity key provided")
	}

	opts := &client.HttpClientOptions{
		Path:         fmt.Sprintf(gatewayPath, url.PathEscape(identityKey)),
		TemplatePath: "/v2/gateways/{identity_key}",
	}

	call := func() (*gatewayResponse, error) {
		resp, err := client.SendRequest[struct{}, gatewayResponse](ctx, c, http.MethodGet, opts, nil)
		if err != nil {
			return nil, err
		}
		return resp, nil
	}

	resp, err := client.CallWithRetry(ctx, call, c.cfg.MaxRetryTimes, c.cfg.RetryInterval)
	if err != nil {
		if client.IsNotFound(err) {
			return nil, nil
		}
		return nil, types.NewFetchFailure(fmt.Sprintf("status of gateway %s", identityKey), err)
	}

	status := &types.GatewayStatus{
		IdentityKey: resp.IdentityKey,
		Performance: resp.Performance,
	}
	if status.IdentityKey == "" {
		status.IdentityKey = identityKey
	}
	if resp.LastProbeResult != nil {
		status.LastProbeResult = resp.LastProbeResult.Outcome
	}

	return status, nil
}
