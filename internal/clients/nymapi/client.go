package nymapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/nymtech/nym-explorer-indexer/internal/clients/client"
	"github.com/nymtech/nym-explorer-indexer/internal/config"
	"github.com/nymtech/nym-explorer-indexer/internal/types"
)

const (
	nodesPath              = "/nym-nodes/detailed"
	nodeDelegationsPath    = "/nym-nodes/%d/delegations"
	accountDelegationsPath = "/delegations/%s"
	pendingEventsPath      = "/pending-events/%s"
	balancePath            = "/balances/%s"
	epochPath              = "/epoch/current"
)

type empty struct{}

type Client struct {
	httpClient *http.Client
	cfg        *config.NymAPIConfig
}

func NewClient(cfg *config.NymAPIConfig) *Client {
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

// GetNodes returns the described nodes with their rewarding details. limit is
// sent as the page size; values <= 0 use the configured page limit. The list
// is marked truncated when the directory holds more nodes than one page.
func (c *Client) GetNodes(ctx context.Context, limit int) (*types.NodeList, error) {
	if limit <= 0 {
		limit = c.cfg.NodesPageLimit
	}
	opts := &client.HttpClientOptions{
		Path:         fmt.Sprintf("%s?limit=%d", nodesPath, limit),
		TemplatePath: nodesPath,
	}

	resp, err := get[nodesResponse](ctx, c, opts)
	if err != nil {
		return nil, types.NewFetchFailure("nodes", err)
	}
	list := &types.NodeList{Nodes: resp.Data, Total: resp.Pagination.Total}
	if list.Truncated() {
		log.Ctx(ctx).Warn().
			Int("total", list.Total).
			Int("received", len(list.Nodes)).
			Msg("node list is truncated by the page limit")
	}

	return list, nil
}

func (c *Client) GetNodeDelegations(ctx context.Context, nodeID uint32) ([]types.Delegation, error) {
	opts := &client.HttpClientOptions{
		Path:         fmt.Sprintf(nodeDelegationsPath, nodeID),
		TemplatePath: "/nym-nodes/{id}/delegations",
	}

	resp, err := get[delegationsResponse](ctx, c, opts)
	if err != nil {
		if client.IsNotFound(err) {
			return nil, types.NewErrorWithMsg(http.StatusNotFound, types.NotFound, fmt.Sprintf("node %d not found", nodeID))
		}
		return nil, types.NewFetchFailure(fmt.Sprintf("delegations of node %d", nodeID), err)
	}

	return resp.Delegations, nil
}

func (c *Client) GetAccountDelegations(ctx context.Context, address string) ([]types.Delegation, error) {
	opts := &client.HttpClientOptions{
		Path:         fmt.Sprintf(accountDelegationsPath, url.PathEscape(address)),
		TemplatePath: "/delegations/{address}",
	}

	resp, err := get[delegationsResponse](ctx, c, opts)
	if err != nil {
		return nil, types.NewFetchFailure("account delegations", err)
	}

	return resp.Delegations, nil
}

// GetPendingEvents returns the delegate and undelegate events of an account
// that the current epoch has not applied yet. Events of any other kind are
// skipped.
func (c *Client) GetPendingEvents(ctx context.Context, address string) ([]types.PendingEvent, error) {
	opts := &client.HttpClientOptions{
		Path:         fmt.Sprintf(pendingEventsPath, url.PathEscape(address)),
		TemplatePath: "/pending-events/{address}",
	}

	resp, err := get[pendingEventsResponse](ctx, c, opts)
	if err != nil {
		return nil, types.NewFetchFailure("pending events", err)
	}

	events := make([]types.PendingEvent, 0, len(resp.Events))
	for _, e := range resp.Events {
		kind, err := types.ParsePendingEventKind(e.Kind)
		if err != nil {
			log.Ctx(ctx).Debug().Err(err).Uint32("node_id", e.NodeID).Msg("skipping pending event")
			continue
		}
		events = append(events, types.PendingEvent{
			Kind:   kind,
			Owner:  e.Owner,
			NodeID: e.NodeID,
			Amount: e.Amount,
		})
	}

	return events, nil
}

func (c *Client) GetBalance(ctx context.Context, address string) (*types.AccountBalanceSummary, error) {
	opts := &client.HttpClientOptions{
		Path:         fmt.Sprintf(balancePath, url.PathEscape(address)),
		TemplatePath: "/balances/{address}",
	}

	resp, err := get[balanceResponse](ctx, c, opts)
	if err != nil {
		return nil, types.NewFetchFailure("balance", err)
	}

	return resp.toSummary(address), nil
}

func (c *Client) GetEpochParams(ctx context.Context) (*types.EpochParams, error) {
	opts := &client.HttpClientOptions{
		Path:         epochPath,
		TemplatePath: epochPath,
	}

	params, err := get[types.EpochParams](ctx, c, opts)
	if err != nil {
		return nil, types.NewFetchFailure("epoch params", err)
	}
	if params.StakeSaturationPoint == "" {
		return nil, types.NewFetchFailure("epoch params", fmt.Errorf("stake_saturation_point is missing"))
	}

	return params, nil
}

func get[R any](ctx context.Context, c *Client, opts *client.HttpClientOptions) (*R, error) {
	call := func() (*R, error) {
		resp, err := client.SendRequest[empty, R](ctx, c, http.MethodGet, opts, nil)
		if err != nil {
			return nil, err
		}
		return resp, nil
	}

	return client.CallWithRetry(ctx, call, c.cfg.MaxRetryTimes, c.cfg.RetryInterval)
}
