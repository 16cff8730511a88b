package services

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"time"

	sdkmath "cosmossdk.io/math"
	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"
	"golang.org/x/sync/errgroup"

	"github.com/nymtech/nym-explorer-indexer/internal/db/model"
	"github.com/nymtech/nym-explorer-indexer/internal/normalize"
	"github.com/nymtech/nym-explorer-indexer/internal/observability/metrics"
	"github.com/nymtech/nym-explorer-indexer/internal/reconcile"
	"github.com/nymtech/nym-explorer-indexer/internal/scoring"
	"github.com/nymtech/nym-explorer-indexer/internal/staking"
	"github.com/nymtech/nym-explorer-indexer/internal/types"
)

const (
	sourcePrice           = "price"
	sourceNodeStatus      = "node_status"
	sourceNodes           = "nodes"
	sourceSaturationPoint = "stake_saturation_point"
)

// NetworkSnapshot is the result of one refresh cycle. It is never modified
// after BuildNetworkSnapshot returns it.
type NetworkSnapshot struct {
	Epoch types.EpochParams
	// UsdPrice is the nil decimal when the price source failed.
	UsdPrice sdkmath.LegacyDec
	// Nodes are ordered by node id.
	Nodes []*model.NodeSummaryDocument
	// FailedSources names the optional sources that failed during the cycle.
	FailedSources []string
	FetchedAt     time.Time
	// Complete is set when the node list is non-empty and covers the whole
	// directory. Only a complete snapshot may remove stored summaries.
	Complete bool

	byID map[uint32]*model.NodeSummaryDocument
}

func newNetworkSnapshot(
	epoch types.EpochParams,
	nodes []*model.NodeSummaryDocument,
	usdPrice sdkmath.LegacyDec,
	failed []string,
	fetchedAt time.Time,
) *NetworkSnapshot {
	sort.Slice(nodes, func(i, j int) bool {
		return nodes[i].NodeID < nodes[j].NodeID
	})

	byID := make(map[uint32]*model.NodeSummaryDocument, len(nodes))
	for _, n := range nodes {
		byID[n.NodeID] = n
	}

	return &NetworkSnapshot{
		Epoch:         epoch,
		UsdPrice:      usdPrice,
		Nodes:         nodes,
		FailedSources: failed,
		FetchedAt:     fetchedAt,
		byID:          byID,
	}
}

func (s *NetworkSnapshot) Node(nodeID uint32) (*model.NodeSummaryDocument, bool) {
	n, ok := s.byID[nodeID]
	return n, ok
}

func (s *NetworkSnapshot) GatewayCount() int {
	count := 0
	for _, n := range s.Nodes {
		if n.Scores.GatewayScored {
			count++
		}
	}
	return count
}

// LookupNode makes a snapshot usable as the node lookup of delegation
// reconciliation.
func (s *NetworkSnapshot) LookupNode(nodeID uint32) (*reconcile.Node, bool) {
	doc, ok := s.Node(nodeID)
	if !ok {
		return nil, false
	}

	node := &reconcile.Node{
		NodeID:       doc.NodeID,
		IdentityKey:  doc.IdentityKey,
		Name:         doc.Moniker,
		TotalStake:   "0",
		ProfitMargin: "0",
		Roles:        doc.Scores.Roles,
	}
	if doc.Stake != nil {
		node.TotalStake = doc.Stake.TotalStake
		node.SaturationPercent = doc.Stake.SaturationPercent
		node.ProfitMargin = doc.Stake.ProfitMarginPercent
	}
	return node, true
}

// Document returns the persisted description of the cycle.
func (s *NetworkSnapshot) Document() *model.NetworkSnapshotDocument {
	doc := &model.NetworkSnapshotDocument{
		Epoch:         s.Epoch,
		NodeCount:     len(s.Nodes),
		GatewayCount:  s.GatewayCount(),
		FailedSources: s.FailedSources,
		UpdatedAt:     s.FetchedAt.Unix(),
	}
	if !s.UsdPrice.IsNil() {
		doc.UsdPrice = normalize.Format(s.UsdPrice)
	}
	return doc
}

// BuildNetworkSnapshot fetches the node list, the epoch parameters and the
// price together, then the status of every node with a gateway role, and
// derives a summary per node. The node list and the epoch parameters are
// required. A failing price or gateway status source only leaves the
// dependent fields empty, and so does an unusable saturation point for the
// stake fields. Nothing is returned when ctx is cancelled mid-cycle.
func (s *Service) BuildNetworkSnapshot(ctx context.Context) (*NetworkSnapshot, error) {
	var (
		list     *types.NodeList
		epoch    *types.EpochParams
		usdPrice sdkmath.LegacyDec
		failed   []string
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		list, err = s.nymAPI.GetNodes(gctx, s.cfg.NymAPI.NodesPageLimit)
		if err != nil {
			return fmt.Errorf("failed to get nodes: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		epoch, err = s.nymAPI.GetEpochParams(gctx)
		if err != nil {
			return fmt.Errorf("failed to get epoch params: %w", err)
		}
		return nil
	})
	if s.price != nil {
		g.Go(func() error {
			price, err := s.price.GetUSDPrice(gctx)
			if err != nil {
				log.Ctx(ctx).Warn().Err(err).Msg("price unavailable, usd values are left empty")
				return nil
			}
			usdPrice = price
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, types.NewError(http.StatusBadGateway, types.FetchFailure, err)
	}
	if s.price != nil && usdPrice.IsNil() {
		metrics.IncSourceFailure(sourcePrice)
		failed = append(failed, sourcePrice)
	}

	nodes := list.Nodes
	if list.Truncated() {
		metrics.IncSourceFailure(sourceNodes)
		failed = append(failed, sourceNodes)
	}

	saturationPoint := epoch.StakeSaturationPoint
	if _, err := staking.ParseSaturationPoint(saturationPoint); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("stake saturation point unusable, stake fields are left empty")
		metrics.IncSourceFailure(sourceSaturationPoint)
		failed = append(failed, sourceSaturationPoint)
		saturationPoint = ""
	}

	statuses, statusFailures := s.fetchGatewayStatuses(ctx, nodes)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if statusFailures > 0 {
		failed = append(failed, sourceNodeStatus)
	}

	summaries := make([]*model.NodeSummaryDocument, 0, len(nodes))
	for i := range nodes {
		node := &nodes[i]
		summaries = append(summaries, summarizeNode(ctx, node, statuses[node.NodeID], saturationPoint))
	}

	snapshot := newNetworkSnapshot(*epoch, summaries, usdPrice, failed, s.now())
	snapshot.Complete = len(nodes) > 0 && !list.Truncated()
	metrics.RecordNodesScored(len(snapshot.Nodes), snapshot.GatewayCount())

	log.Ctx(ctx).Info().
		Int("nodes", len(snapshot.Nodes)).
		Int("gateways", snapshot.GatewayCount()).
		Strs("failed_sources", failed).
		Msg("built network snapshot")

	return snapshot, nil
}

type gatewayStatusResult struct {
	nodeID uint32
	status *types.GatewayStatus
	err    error
}

// fetchGatewayStatuses requests the status of every node with a gateway role,
// bounded by the configured concurrency. Nodes without a gateway role are
// never requested. A failed or empty status is absent from the result.
func (s *Service) fetchGatewayStatuses(
	ctx context.Context, nodes []types.NodeDescriptor,
) (map[uint32]*types.GatewayStatus, int) {
	p := pool.NewWithResults[gatewayStatusResult]().
		WithMaxGoroutines(max(s.cfg.NodeStatus.MaxConcurrency, 1))
	for i := range nodes {
		node := &nodes[i]
		if !scoring.HasGatewayRole(node.DeclaredRoles) {
			continue
		}
		p.Go(func() gatewayStatusResult {
			status, err := s.nodeStatus.GetGatewayStatus(ctx, node.IdentityKey)
			return gatewayStatusResult{nodeID: node.NodeID, status: status, err: err}
		})
	}

	statuses := make(map[uint32]*types.GatewayStatus)
	failures := 0
	for _, r := range p.Wait() {
		if r.err != nil {
			failures++
			if ctx.Err() == nil {
				metrics.IncSourceFailure(sourceNodeStatus)
				log.Ctx(ctx).Warn().
					Err(r.err).
					Uint32("node_id", r.nodeID).
					Msg("gateway status unavailable")
			}
			continue
		}
		if r.status != nil {
			statuses[r.nodeID] = r.status
		}
	}

	return statuses, failures
}
