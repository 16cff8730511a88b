package nymapi

import (
	"github.com/nymtech/nym-explorer-indexer/internal/types"
)

type pagination struct {
	Total int `json:"total"`
	Page  int `json:"page"`
	Size  int `json:"size"`
}

type nodesResponse struct {
	Pagination pagination             `json:"pagination"`
	Data       []types.NodeDescriptor `json:"data"`
}

type delegationsResponse struct {
	Delegations []types.Delegation `json:"delegations"`
}

type pendingEventResponse struct {
	Kind   string      `json:"kind"`
	Owner  string      `json:"owner"`
	NodeID uint32      `json:"node_id"`
	Amount *types.Coin `json:"amount,omitempty"`
}

type pendingEventsResponse struct {
	Events []pendingEventResponse `json:"events"`
}

type balanceResponse struct {
	Balances           []types.Coin   `json:"balances"`
	TotalValue         types.Coin     `json:"total_value"`
	TotalDelegations   types.Coin     `json:"total_delegations"`
	ClaimableRewards   types.Coin     `json:"claimable_rewards"`
	AccumulatedRewards []types.Reward `json:"accumulated_rewards"`
	Rewards            struct {
		StakingRewards []types.RewardRecord `json:"staking_rewards"`
	} `json:"rewards"`
}

func (r *balanceResponse) toSummary(address string) *types.AccountBalanceSummary {
	return &types.AccountBalanceSummary{
		Address:            address,
		Balances:           r.Balances,
		TotalValue:         r.TotalValue,
		TotalDelegations:   r.TotalDelegations,
		ClaimableRewards:   r.ClaimableRewards,
		AccumulatedRewards: r.AccumulatedRewards,
		StakingRewards:     r.Rewards.StakingRewards,
	}
}
