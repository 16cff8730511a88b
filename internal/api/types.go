package api

import (
	sdkmath "cosmossdk.io/math"

	"github.com/nymtech/nym-explorer-indexer/internal/db/model"
	"github.com/nymtech/nym-explorer-indexer/internal/normalize"
	"github.com/nymtech/nym-explorer-indexer/internal/reconcile"
	"github.com/nymtech/nym-explorer-indexer/internal/services"
	"github.com/nymtech/nym-explorer-indexer/internal/staking"
	"github.com/nymtech/nym-explorer-indexer/internal/types"
)

type LocationResponse struct {
	CountryCode string `json:"country_code"`
	CountryName string `json:"country_name"`
}

type NodeStakeResponse struct {
	TotalStake            string `json:"total_stake"`
	SaturationPercent     int64  `json:"saturation_percent"`
	ProfitMarginPercent   string `json:"profit_margin_percent"`
	OperatorReward        string `json:"operator_reward"`
	IntervalOperatingCost string `json:"interval_operating_cost"`
	UniqueDelegations     uint64 `json:"unique_delegations"`
}

type NodeResponse struct {
	NodeID           uint32            `json:"node_id"`
	IdentityKey      string            `json:"identity_key"`
	Moniker          string            `json:"moniker"`
	Host             string            `json:"host"`
	BuildVersion     string            `json:"build_version"`
	Location         *LocationResponse `json:"location,omitempty"`
	Roles            []string          `json:"roles"`
	QualityOfService int               `json:"quality_of_service"`
	// ConfigScore and WireguardPerformance are only set for gateways
	ConfigScore          *int               `json:"config_score,omitempty"`
	WireguardPerformance *int               `json:"wireguard_performance,omitempty"`
	Stake                *NodeStakeResponse `json:"stake,omitempty"`
}

func NewNodeResponse(doc *model.NodeSummaryDocument) NodeResponse {
	resp := NodeResponse{
		NodeID:           doc.NodeID,
		IdentityKey:      doc.IdentityKey,
		Moniker:          doc.Moniker,
		Host:             doc.Host,
		BuildVersion:     doc.BuildVersion,
		Roles:            doc.Scores.Roles,
		QualityOfService: int(doc.Scores.QualityOfService),
	}
	if resp.Roles == nil {
		resp.Roles = []string{}
	}
	if doc.CountryCode != "" {
		resp.Location = &LocationResponse{
			CountryCode: doc.CountryCode,
			CountryName: doc.CountryName,
		}
	}
	if doc.Scores.GatewayScored {
		config := int(doc.Scores.ConfigScore)
		wg := int(doc.Scores.WireguardPerformance)
		resp.ConfigScore = &config
		resp.WireguardPerformance = &wg
	}
	if doc.Stake != nil {
		resp.Stake = &NodeStakeResponse{
			TotalStake:            doc.Stake.TotalStake,
			SaturationPercent:     doc.Stake.SaturationPercent,
			ProfitMarginPercent:   doc.Stake.ProfitMarginPercent,
			OperatorReward:        doc.Stake.OperatorReward,
			IntervalOperatingCost: doc.Stake.IntervalOperatingCost,
			UniqueDelegations:     doc.Stake.UniqueDelegations,
		}
	}
	return resp
}

type NetworkResponse struct {
	CurrentEpochStart    string   `json:"current_epoch_start"`
	EpochLengthSeconds   uint64   `json:"epoch_length_seconds"`
	StakeSaturationPoint string   `json:"stake_saturation_point"`
	NodeCount            int      `json:"node_count"`
	GatewayCount         int      `json:"gateway_count"`
	UsdPrice             string   `json:"usd_price,omitempty"`
	FailedSources        []string `json:"failed_sources,omitempty"`
	UpdatedAt            int64    `json:"updated_at"`
}

func newNetworkResponse(doc *model.NetworkSnapshotDocument) NetworkResponse {
	return NetworkResponse{
		CurrentEpochStart:    doc.Epoch.CurrentEpochStart,
		EpochLengthSeconds:   doc.Epoch.EpochLengthSeconds,
		StakeSaturationPoint: doc.Epoch.StakeSaturationPoint,
		NodeCount:            doc.NodeCount,
		GatewayCount:         doc.GatewayCount,
		UsdPrice:             doc.UsdPrice,
		FailedSources:        doc.FailedSources,
		UpdatedAt:            doc.UpdatedAt,
	}
}

type AllocationResponse struct {
	AllocationPercent string `json:"allocation_percent"`
	Amount            string `json:"amount"`
	UsdValue          string `json:"usd_value"`
}

func newAllocationResponse(a staking.Allocation) AllocationResponse {
	return AllocationResponse{
		AllocationPercent: normalize.Format(a.AllocationPercent),
		Amount:            normalize.Format(a.Amount),
		UsdValue:          normalize.Format(a.UsdValue),
	}
}

type BreakdownResponse struct {
	TotalValue string             `json:"total_value"`
	Spendable  AllocationResponse `json:"spendable"`
	Delegated  AllocationResponse `json:"delegated"`
	Claimable  AllocationResponse `json:"claimable"`
	SelfBonded AllocationResponse `json:"self_bonded"`
}

type AccountResponse struct {
	Address                 string             `json:"address"`
	Breakdown               *BreakdownResponse `json:"breakdown,omitempty"`
	StakingRewardsTotal     string             `json:"staking_rewards_total,omitempty"`
	AccumulatedRewardsTotal string             `json:"accumulated_rewards_total,omitempty"`
	UsdPrice                string             `json:"usd_price,omitempty"`
	DelegationCount         *int               `json:"delegation_count,omitempty"`
	// Errors maps an unavailable section to the reason
	Errors map[string]string `json:"errors,omitempty"`
}

func NewAccountResponse(o *services.AccountOverview) AccountResponse {
	resp := AccountResponse{Address: o.Address}

	if o.Breakdown != nil {
		resp.Breakdown = &BreakdownResponse{
			TotalValue: normalize.Format(o.Breakdown.TotalValue),
			Spendable:  newAllocationResponse(o.Breakdown.Spendable),
			Delegated:  newAllocationResponse(o.Breakdown.Delegated),
			Claimable:  newAllocationResponse(o.Breakdown.Claimable),
			SelfBonded: newAllocationResponse(o.Breakdown.SelfBonded),
		}
		resp.StakingRewardsTotal = normalize.Format(o.StakingRewardsTotal)
		resp.AccumulatedRewardsTotal = normalize.Format(o.AccumulatedRewardsTotal)
	}
	resp.UsdPrice = usdOrEmpty(o.UsdPrice)
	if o.Delegations != nil {
		count := len(o.Delegations)
		resp.DelegationCount = &count
	}
	if len(o.SectionErrors) > 0 {
		resp.Errors = make(map[string]string, len(o.SectionErrors))
		for section, err := range o.SectionErrors {
			resp.Errors[section] = err.Error()
		}
	}
	return resp
}

type PendingEventResponse struct {
	Kind   string `json:"kind"`
	Amount string `json:"amount,omitempty"`
}

type DelegationResponse struct {
	NodeID            uint32                `json:"node_id"`
	NodeName          string                `json:"node_name"`
	IdentityKey       string                `json:"identity_key"`
	Amount            types.Coin            `json:"amount"`
	AmountDisplay     string                `json:"amount_display"`
	TotalStake        string                `json:"total_stake"`
	SaturationPercent int64                 `json:"saturation_percent"`
	ProfitMargin      string                `json:"profit_margin_percent"`
	Pending           bool                  `json:"pending"`
	PendingEvent      *PendingEventResponse `json:"pending_event,omitempty"`
}

func NewDelegationResponse(r reconcile.Record) DelegationResponse {
	resp := DelegationResponse{
		NodeID:       r.NodeID,
		NodeName:     r.DisplayName(),
		IdentityKey:  r.DisplayIdentityKey(),
		Amount:       r.Delegation.Amount,
		TotalStake:   types.MissingValue,
		ProfitMargin: types.MissingValue,
		Pending:      r.Pending,
	}
	if display, err := normalize.CoinDisplay(r.Delegation.Amount); err == nil {
		resp.AmountDisplay = normalize.Format(display)
	} else {
		resp.AmountDisplay = types.MissingValue
	}
	if r.Node != nil {
		resp.TotalStake = r.Node.TotalStake
		resp.SaturationPercent = r.Node.SaturationPercent
		resp.ProfitMargin = r.Node.ProfitMargin
	}
	if r.PendingEvent != nil {
		resp.PendingEvent = &PendingEventResponse{Kind: r.PendingEvent.Kind.String()}
		if r.PendingEvent.Amount != nil {
			resp.PendingEvent.Amount = r.PendingEvent.Amount.Amount
		}
	}
	return resp
}

// usdOrEmpty keeps the nil decimal out of responses.
func usdOrEmpty(d sdkmath.LegacyDec) string {
	if d.IsNil() {
		return ""
	}
	return normalize.Format(d)
}
