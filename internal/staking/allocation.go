package staking

import (
	sdkmath "cosmossdk.io/math"

	"github.com/nymtech/nym-explorer-indexer/internal/normalize"
	"github.com/nymtech/nym-explorer-indexer/internal/types"
)

// Allocation is one partition of an account's holdings.
type Allocation struct {
	AllocationPercent sdkmath.LegacyDec
	Amount            sdkmath.LegacyDec
	UsdValue          sdkmath.LegacyDec
}

// AllocationBreakdown partitions an account's total value.
type AllocationBreakdown struct {
	TotalValue sdkmath.LegacyDec
	Spendable  Allocation
	Delegated  Allocation
	Claimable  Allocation
	// SelfBonded is always zero: the bond owned by the account is not looked up.
	SelfBonded Allocation
}

// Breakdown computes the allocation of an account against its total value.
// usdPrice may be the zero value when no price quote is available, in which
// case every UsdValue is zero.
func Breakdown(summary *types.AccountBalanceSummary, usdPrice sdkmath.LegacyDec) (*AllocationBreakdown, error) {
	if usdPrice.IsNil() {
		usdPrice = sdkmath.LegacyZeroDec()
	}

	total, err := microOf("total_value", summary.TotalValue)
	if err != nil {
		return nil, err
	}
	spendable, err := microOf("balances", summary.Spendable())
	if err != nil {
		return nil, err
	}
	delegated, err := microOf("total_delegations", summary.TotalDelegations)
	if err != nil {
		return nil, err
	}
	claimable, err := microOf("claimable_rewards", summary.ClaimableRewards)
	if err != nil {
		return nil, err
	}

	allocate := func(part sdkmath.Int) Allocation {
		return Allocation{
			AllocationPercent: normalize.ToAllocationPercent(part, total),
			Amount:            normalize.ToDisplayUnits(part),
			UsdValue:          normalize.ToUsdValue(part, usdPrice),
		}
	}

	return &AllocationBreakdown{
		TotalValue: normalize.ToDisplayUnits(total),
		Spendable:  allocate(spendable),
		Delegated:  allocate(delegated),
		Claimable:  allocate(claimable),
		SelfBonded: allocate(sdkmath.ZeroInt()),
	}, nil
}

// StakingRewardsTotal sums the reward amounts of the records and converts the
// total to display units once. Fractional base denom amounts are summed
// exactly. An empty list sums to zero.
func StakingRewardsTotal(records []types.RewardRecord) (sdkmath.LegacyDec, error) {
	amounts := make([]string, 0, len(records))
	for _, r := range records {
		amounts = append(amounts, r.Rewards.Amount)
	}
	return sumDisplay("rewards.amount", amounts)
}

// AccumulatedRewardsTotal sums the accumulated rewards of an account in
// display units.
func AccumulatedRewardsTotal(rewards []types.Reward) (sdkmath.LegacyDec, error) {
	amounts := make([]string, 0, len(rewards))
	for _, r := range rewards {
		amounts = append(amounts, r.Amount.Amount)
	}
	return sumDisplay("accumulated_rewards", amounts)
}

// sumDisplay adds base denom decimal strings and converts the sum. Empty
// amounts count as zero.
func sumDisplay(param string, amounts []string) (sdkmath.LegacyDec, error) {
	sum := sdkmath.LegacyZeroDec()
	for _, a := range amounts {
		if a == "" {
			continue
		}
		amount, err := normalize.ParseDec(param, a)
		if err != nil {
			return sdkmath.LegacyDec{}, err
		}
		sum = sum.Add(amount)
	}
	return normalize.ToDisplayUnitsDec(sum), nil
}

func microOf(param string, c types.Coin) (sdkmath.Int, error) {
	if c.Amount == "" {
		return sdkmath.ZeroInt(), nil
	}
	return normalize.ParseMicro(param, c.Amount)
}
