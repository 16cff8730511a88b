package scoring

import (
	"github.com/nymtech/nym-explorer-indexer/internal/types"
)

// NodeScores are the star ratings shown for a node. ConfigScore and
// WireguardPerformance are only meaningful when GatewayScored is set.
type NodeScores struct {
	QualityOfService     Stars    `json:"quality_of_service" bson:"quality_of_service"`
	ConfigScore          Stars    `json:"config_score" bson:"config_score"`
	WireguardPerformance Stars    `json:"wireguard_performance" bson:"wireguard_performance"`
	GatewayScored        bool     `json:"gateway_scored" bson:"gateway_scored"`
	Roles                []string `json:"roles" bson:"roles"`
}

// ScoreNode derives the ratings for one node. status is the gateway health
// record and may be nil: for nodes without a gateway role it is ignored, and
// for gateways a nil status means the status api had nothing for the node.
func ScoreNode(node *types.NodeDescriptor, status *types.GatewayStatus) NodeScores {
	scores := NodeScores{
		QualityOfService: QualityStars(node.Uptime),
		Roles:            RoleLabels(node.DeclaredRoles),
	}
	if !HasGatewayRole(node.DeclaredRoles) {
		return scores
	}

	scores.GatewayScored = true
	if status == nil {
		scores.ConfigScore = NoData
		scores.WireguardPerformance = NoData
		return scores
	}

	scores.QualityOfService = QualityStars(status.Performance)
	scores.ConfigScore = ConfigScore(status.LastProbeResult)
	scores.WireguardPerformance = WireguardPerformance(status.LastProbeResult)
	return scores
}
