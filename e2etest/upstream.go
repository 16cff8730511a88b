package e2etest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/nymtech/nym-explorer-indexer/internal/types"
)

// Upstream fakes the nym api, the node status api and the price api on one
// server. Its state can be changed while the indexer runs.
type Upstream struct {
	server *httptest.Server

	mu          sync.Mutex
	nodes       []types.NodeDescriptor
	statuses    map[string]types.GatewayStatus
	epoch       types.EpochParams
	usdPrice    string
	balances    map[string]types.AccountBalanceSummary
	delegations map[string][]types.Delegation
	pending     map[string][]types.PendingEvent
}

func NewUpstream(t *testing.T) *Upstream {
	u := &Upstream{
		statuses:    map[string]types.GatewayStatus{},
		balances:    map[string]types.AccountBalanceSummary{},
		delegations: map[string][]types.Delegation{},
		pending:     map[string][]types.PendingEvent{},
	}

	r := chi.NewRouter()
	r.Get("/nym-nodes/detailed", u.handleNodes)
	r.Get("/epoch/current", u.handleEpoch)
	r.Get("/balances/{address}", u.handleBalance)
	r.Get("/delegations/{address}", u.handleDelegations)
	r.Get("/pending-events/{address}", u.handlePending)
	r.Get("/v2/gateways/{key}", u.handleGateway)
	r.Get("/simple/price", u.handlePrice)

	u.server = httptest.NewServer(r)
	t.Cleanup(u.server.Close)
	return u
}

func (u *Upstream) URL() string {
	return u.server.URL
}

func (u *Upstream) SetNodes(nodes []types.NodeDescriptor) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.nodes = nodes
}

func (u *Upstream) SetGatewayStatus(status types.GatewayStatus) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.statuses[status.IdentityKey] = status
}

func (u *Upstream) SetEpoch(epoch types.EpochParams) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.epoch = epoch
}

func (u *Upstream) SetUSDPrice(price string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.usdPrice = price
}

func (u *Upstream) SetAccount(
	balance types.AccountBalanceSummary,
	delegations []types.Delegation,
	pending []types.PendingEvent,
) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.balances[balance.Address] = balance
	u.delegations[balance.Address] = delegations
	u.pending[balance.Address] = pending
}

func (u *Upstream) handleNodes(w http.ResponseWriter, _ *http.Request) {
	u.mu.Lock()
	defer u.mu.Unlock()
	writeJSON(w, map[string]any{
		"pagination": map[string]int{"total": len(u.nodes), "page": 0, "size": len(u.nodes)},
		"data":       u.nodes,
	})
}

func (u *Upstream) handleEpoch(w http.ResponseWriter, _ *http.Request) {
	u.mu.Lock()
	defer u.mu.Unlock()
	writeJSON(w, u.epoch)
}

func (u *Upstream) handleBalance(w http.ResponseWriter, r *http.Request) {
	u.mu.Lock()
	defer u.mu.Unlock()
	b, ok := u.balances[chi.URLParam(r, "address")]
	if !ok {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, map[string]any{
		"balances":            b.Balances,
		"total_value":         b.TotalValue,
		"total_delegations":   b.TotalDelegations,
		"claimable_rewards":   b.ClaimableRewards,
		"accumulated_rewards": b.AccumulatedRewards,
		"rewards":             map[string]any{"staking_rewards": b.StakingRewards},
	})
}

func (u *Upstream) handleDelegations(w http.ResponseWriter, r *http.Request) {
	u.mu.Lock()
	defer u.mu.Unlock()
	delegations := u.delegations[chi.URLParam(r, "address")]
	if delegations == nil {
		delegations = []types.Delegation{}
	}
	writeJSON(w, map[string]any{"delegations": delegations})
}

func (u *Upstream) handlePending(w http.ResponseWriter, r *http.Request) {
	u.mu.Lock()
	defer u.mu.Unlock()
	pending := u.pending[chi.URLParam(r, "address")]
	if pending == nil {
		pending = []types.PendingEvent{}
	}
	writeJSON(w, map[string]any{"events": pending})
}

func (u *Upstream) handleGateway(w http.ResponseWriter, r *http.Request) {
	u.mu.Lock()
	defer u.mu.Unlock()
	status, ok := u.statuses[chi.URLParam(r, "key")]
	if !ok {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, map[string]any{
		"gateway_identity_key": status.IdentityKey,
		"performance":          status.Performance,
		"last_probe_result":    map[string]any{"outcome": status.LastProbeResult},
	})
}

func (u *Upstream) handlePrice(w http.ResponseWriter, r *http.Request) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.usdPrice == "" {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"nym":{"usd":` + u.usdPrice + `}}`))
}

func writeJSON(w http.ResponseWriter, body any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(body)
}
