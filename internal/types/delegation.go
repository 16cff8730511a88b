package types

import "fmt"

// Delegation is a committed on-chain delegation. There is at most one per
// (Owner, NodeID) pair in a given chain state.
type Delegation struct {
	Owner                 string `json:"owner"`
	NodeID                uint32 `json:"node_id"`
	Amount                Coin   `json:"amount"`
	CumulativeRewardRatio string `json:"cumulative_reward_ratio"`
	Height                uint64 `json:"height"`
}

type PendingEventKind string

const (
	PendingDelegate   PendingEventKind = "delegate"
	PendingUndelegate PendingEventKind = "undelegate"
)

func (k PendingEventKind) String() string {
	return string(k)
}

func ParsePendingEventKind(s string) (PendingEventKind, error) {
	switch s {
	case "delegate":
		return PendingDelegate, nil
	case "undelegate":
		return PendingUndelegate, nil
	default:
		return "", fmt.Errorf("invalid pending event kind: %s", s)
	}
}

// PendingEvent is a submitted delegate/undelegate that the current epoch has
// not applied yet.
type PendingEvent struct {
	Kind   PendingEventKind `json:"kind"`
	Owner  string           `json:"owner"`
	NodeID uint32           `json:"node_id"`
	Amount *Coin            `json:"amount,omitempty"`
}

// Reward is one entry of an account's accumulated rewards.
type Reward struct {
	NodeID uint32 `json:"node_id"`
	Amount Coin   `json:"amount"`
}

// RewardRecord is a staking reward detail record; Amount is a decimal string
// in the base denom.
type RewardRecord struct {
	NodeID  uint32 `json:"node_id"`
	Rewards struct {
		Amount string `json:"amount"`
	} `json:"rewards"`
}

// AccountBalanceSummary is the balance view of an account. TotalValue is
// expected to be about Balances[0] + TotalDelegations + ClaimableRewards but
// nothing enforces it.
type AccountBalanceSummary struct {
	Address            string         `json:"address"`
	Balances           []Coin         `json:"balances"`
	TotalValue         Coin           `json:"total_value"`
	TotalDelegations   Coin           `json:"total_delegations"`
	ClaimableRewards   Coin           `json:"claimable_rewards"`
	AccumulatedRewards []Reward       `json:"accumulated_rewards"`
	StakingRewards     []RewardRecord `json:"staking_rewards"`
}

// Spendable returns the first balance entry, or zero when there is none.
func (a *AccountBalanceSummary) Spendable() Coin {
	if len(a.Balances) == 0 {
		return NewBaseCoin("0")
	}
	return a.Balances[0]
}
