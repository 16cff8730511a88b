package services

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/nymtech/nym-explorer-indexer/internal/db/model"
	"github.com/nymtech/nym-explorer-indexer/internal/normalize"
	"github.com/nymtech/nym-explorer-indexer/internal/scoring"
	"github.com/nymtech/nym-explorer-indexer/internal/staking"
	"github.com/nymtech/nym-explorer-indexer/internal/types"
)

// summarizeNode derives the stored summary of one node. Only the inputs are
// used, so the same node, status and saturation point always give the same
// document. Rewarding details that cannot be interpreted leave Stake nil, and
// so does an empty saturationPoint.
func summarizeNode(
	ctx context.Context,
	node *types.NodeDescriptor,
	status *types.GatewayStatus,
	saturationPoint string,
) *model.NodeSummaryDocument {
	doc := &model.NodeSummaryDocument{
		NodeID:       node.NodeID,
		IdentityKey:  node.IdentityKey,
		Host:         node.Host,
		BuildVersion: node.BuildInformation.BuildVersion,
		Scores:       scoring.ScoreNode(node, status),
	}
	if node.Description != nil {
		doc.Moniker = node.Description.Moniker
	}
	if node.Location != nil {
		doc.CountryCode = node.Location.CountryCode
		doc.CountryName = node.Location.CountryName
	}

	if node.Rewarding == nil || saturationPoint == "" {
		return doc
	}
	stake, err := staking.SummarizeNodeStake(node.Rewarding, saturationPoint)
	if err != nil {
		log.Ctx(ctx).Warn().
			Err(err).
			Uint32("node_id", node.NodeID).
			Msg("skipping stake summary of node")
		return doc
	}
	doc.Stake = &model.NodeStakeDocument{
		TotalStake:            normalize.Format(stake.TotalStake),
		SaturationPercent:     stake.SaturationPercent,
		ProfitMarginPercent:   normalize.Format(stake.ProfitMarginPercent),
		OperatorReward:        normalize.Format(stake.OperatorReward),
		IntervalOperatingCost: normalize.Format(stake.IntervalOperatingCost),
		UniqueDelegations:     stake.UniqueDelegations,
	}

	return doc
}
