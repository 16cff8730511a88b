package queue

import (
	"github.com/nymtech/nym-explorer-indexer/internal/db/model"
)

const NodeSummaryEventType = "node_summary_refreshed"

// NodeSummaryMessage is the payload published for every node after a refresh.
type NodeSummaryMessage struct {
	EventType            string   `json:"event_type"`
	NodeID               uint32   `json:"node_id"`
	IdentityKey          string   `json:"identity_key"`
	Roles                []string `json:"roles"`
	QualityOfService     int      `json:"quality_of_service"`
	ConfigScore          int      `json:"config_score"`
	WireguardPerformance int      `json:"wireguard_performance"`
	// SaturationPercent is nil when the node has no stake summary.
	SaturationPercent *int64 `json:"saturation_percent,omitempty"`
	TotalStake        string `json:"total_stake,omitempty"`
	SnapshotTime      int64  `json:"snapshot_time"`
}

func NewNodeSummaryMessage(doc *model.NodeSummaryDocument, snapshotTime int64) NodeSummaryMessage {
	msg := NodeSummaryMessage{
		EventType:            NodeSummaryEventType,
		NodeID:               doc.NodeID,
		IdentityKey:          doc.IdentityKey,
		Roles:                doc.Scores.Roles,
		QualityOfService:     int(doc.Scores.QualityOfService),
		ConfigScore:          int(doc.Scores.ConfigScore),
		WireguardPerformance: int(doc.Scores.WireguardPerformance),
		SnapshotTime:         snapshotTime,
	}
	if doc.Stake != nil {
		saturation := doc.Stake.SaturationPercent
		msg.SaturationPercent = &saturation
		msg.TotalStake = doc.Stake.TotalStake
	}

	return msg
}
