package queue

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nymtech/nym-explorer-indexer/internal/db/model"
	"github.com/nymtech/nym-explorer-indexer/internal/scoring"
)

func TestNewNodeSummaryMessage(t *testing.T) {
	doc := &model.NodeSummaryDocument{
		NodeID:      7,
		IdentityKey: "key7",
		Scores: scoring.NodeScores{
			QualityOfService:     4,
			ConfigScore:          3,
			WireguardPerformance: 2,
			GatewayScored:        true,
			Roles:                []string{"Entry Node"},
		},
		Stake: &model.NodeStakeDocument{TotalStake: "375000", SaturationPercent: 50},
	}

	msg := NewNodeSummaryMessage(doc, 1714557600)
	assert.Equal(t, NodeSummaryEventType, msg.EventType)
	assert.Equal(t, uint32(7), msg.NodeID)
	assert.Equal(t, 4, msg.QualityOfService)
	require.NotNil(t, msg.SaturationPercent)
	assert.Equal(t, int64(50), *msg.SaturationPercent)

	body, err := json.Marshal(msg)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"event_type": "node_summary_refreshed",
		"node_id": 7,
		"identity_key": "key7",
		"roles": ["Entry Node"],
		"quality_of_service": 4,
		"config_score": 3,
		"wireguard_performance": 2,
		"saturation_percent": 50,
		"total_stake": "375000",
		"snapshot_time": 1714557600
	}`, string(body))

	t.Run("without stake", func(t *testing.T) {
		doc.Stake = nil
		body, err := json.Marshal(NewNodeSummaryMessage(doc, 1))
		require.NoError(t, err)
		assert.NotContains(t, string(body), "saturation_percent")
	})
}
