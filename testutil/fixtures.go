package testutil

import (
	"fmt"
	"strconv"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/nymtech/nym-explorer-indexer/internal/db/model"
	"github.com/nymtech/nym-explorer-indexer/internal/scoring"
	"github.com/nymtech/nym-explorer-indexer/internal/types"
)

// NodeDescriptor returns a random node with rewarding details. roles decides
// which roles it declares.
func NodeDescriptor(nodeID uint32, roles types.DeclaredRoles) types.NodeDescriptor {
	stake := int64(gofakeit.IntRange(1, 1_000_000)) * types.MicroPerUnit

	return types.NodeDescriptor{
		NodeID:        nodeID,
		IdentityKey:   IdentityKey(),
		DeclaredRoles: roles,
		BuildInformation: types.BuildInformation{
			BuildVersion: gofakeit.AppVersion(),
		},
		Host:        gofakeit.IPv4Address(),
		IPAddresses: []string{gofakeit.IPv4Address()},
		Description: &types.NodeDescription{
			Moniker: gofakeit.Username(),
			Website: gofakeit.URL(),
		},
		Location: &types.Location{
			CountryCode: gofakeit.CountryAbr(),
			CountryName: gofakeit.Country(),
		},
		Uptime: gofakeit.Float64Range(0, 1),
		Rewarding: &types.RewardingDetails{
			OperatorReward:        strconv.Itoa(gofakeit.IntRange(0, 10_000_000)),
			ProfitMarginPercent:   fmt.Sprintf("0.%02d", gofakeit.IntRange(0, 99)),
			IntervalOperatingCost: types.NewBaseCoin(strconv.FormatInt(int64(gofakeit.IntRange(0, 100))*types.MicroPerUnit, 10)),
			UniqueDelegations:     uint64(gofakeit.IntRange(0, 500)),
			TotalStake:            strconv.FormatInt(stake, 10),
		},
	}
}

// IdentityKey returns a random base58-looking identity key.
func IdentityKey() string {
	return gofakeit.Regex("[1-9A-HJ-NP-Za-km-z]{44}")
}

// NodeSummaryDocument returns a random stored node summary.
func NodeSummaryDocument(nodeID uint32) *model.NodeSummaryDocument {
	return &model.NodeSummaryDocument{
		NodeID:       nodeID,
		IdentityKey:  IdentityKey(),
		Moniker:      gofakeit.Username(),
		Host:         gofakeit.DomainName(),
		CountryCode:  gofakeit.CountryAbr(),
		CountryName:  gofakeit.Country(),
		BuildVersion: gofakeit.AppVersion(),
		Scores: scoring.NodeScores{
			QualityOfService: scoring.Stars(gofakeit.IntRange(1, 4)),
			Roles:            []string{types.RoleMixnode.Label()},
		},
		Stake: &model.NodeStakeDocument{
			TotalStake:            strconv.Itoa(gofakeit.IntRange(1, 1_000_000)),
			SaturationPercent:     int64(gofakeit.IntRange(0, 150)),
			ProfitMarginPercent:   strconv.Itoa(gofakeit.IntRange(0, 100)),
			OperatorReward:        "0",
			IntervalOperatingCost: "40",
			UniqueDelegations:     uint64(gofakeit.IntRange(0, 100)),
		},
	}
}
