package model

import (
	"github.com/nymtech/nym-explorer-indexer/internal/types"
)

const NetworkSnapshotCollection = "network_snapshot"

// NetworkSnapshotDocument describes the refresh cycle that produced the
// current node summaries. There is a single document in the collection.
type NetworkSnapshotDocument struct {
	Epoch        types.EpochParams `bson:"epoch"`
	NodeCount    int               `bson:"node_count"`
	GatewayCount int               `bson:"gateway_count"`
	// UsdPrice is empty when the price source failed for the cycle.
	UsdPrice string `bson:"usd_price,omitempty"`
	// FailedSources lists the optional sources that failed for the cycle.
	FailedSources []string `bson:"failed_sources,omitempty"`
	UpdatedAt     int64    `bson:"updated_at"`
}
