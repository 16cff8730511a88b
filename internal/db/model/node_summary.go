package model

import (
	"github.com/nymtech/nym-explorer-indexer/internal/scoring"
)

const NodeSummaryCollection = "node_summary"

// NodeSummaryDocument is the derived view of one node for a refresh cycle.
// Decimal figures are stored as strings in display units.
type NodeSummaryDocument struct {
	NodeID       uint32             `bson:"_id"`
	IdentityKey  string             `bson:"identity_key"`
	Moniker      string             `bson:"moniker,omitempty"`
	Host         string             `bson:"host"`
	CountryCode  string             `bson:"country_code,omitempty"`
	CountryName  string             `bson:"country_name,omitempty"`
	BuildVersion string             `bson:"build_version,omitempty"`
	Scores       scoring.NodeScores `bson:"scores"`
	// Stake is nil when the node has no rewarding details or they could not
	// be interpreted.
	Stake *NodeStakeDocument `bson:"stake,omitempty"`
}

type NodeStakeDocument struct {
	TotalStake            string `bson:"total_stake"`
	SaturationPercent     int64  `bson:"saturation_percent"`
	ProfitMarginPercent   string `bson:"profit_margin_percent"`
	OperatorReward        string `bson:"operator_reward"`
	IntervalOperatingCost string `bson:"interval_operating_cost"`
	UniqueDelegations     uint64 `bson:"unique_delegations"`
}
