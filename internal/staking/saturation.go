package staking

import (
	sdkmath "cosmossdk.io/math"

	"github.com/nymtech/nym-explorer-indexer/internal/normalize"
	"github.com/nymtech/nym-explorer-indexer/internal/types"
)

// ParseSaturationPoint parses the network stake saturation point, which must
// be a positive decimal.
func ParseSaturationPoint(saturationPoint string) (sdkmath.LegacyDec, error) {
	point, err := normalize.ParseDec("stake_saturation_point", saturationPoint)
	if err != nil {
		return sdkmath.LegacyDec{}, err
	}
	if !point.IsPositive() {
		return sdkmath.LegacyDec{}, types.NewInvalidParameterError("stake_saturation_point", saturationPoint, "must be positive")
	}
	return point, nil
}

// NodeSaturation returns totalStake/saturationPoint as a whole percent,
// rounded half-up.
func NodeSaturation(totalStake, saturationPoint string) (int64, error) {
	point, err := ParseSaturationPoint(saturationPoint)
	if err != nil {
		return 0, err
	}
	stake, err := normalize.ParseDec("total_stake", totalStake)
	if err != nil {
		return 0, err
	}

	pct := normalize.ToPercent(stake.Quo(point))
	return normalize.RoundHalfUp(pct, 0).TruncateInt64(), nil
}

// NodeStakeSummary bundles the stake figures displayed for a node.
type NodeStakeSummary struct {
	TotalStake            sdkmath.LegacyDec
	SaturationPercent     int64
	ProfitMarginPercent   sdkmath.LegacyDec
	OperatorReward        sdkmath.LegacyDec
	IntervalOperatingCost sdkmath.LegacyDec
	UniqueDelegations     uint64
}

// SummarizeNodeStake derives the stake figures of a node from its rewarding
// details. Amounts are returned in display units.
func SummarizeNodeStake(r *types.RewardingDetails, saturationPoint string) (*NodeStakeSummary, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	saturation, err := NodeSaturation(r.TotalStake, saturationPoint)
	if err != nil {
		return nil, err
	}
	totalStake, err := normalize.ParseMicro("total_stake", r.TotalStake)
	if err != nil {
		return nil, err
	}
	profitMargin, err := profitMarginPercent(r)
	if err != nil {
		return nil, err
	}
	operatorReward := sdkmath.LegacyZeroDec()
	if r.OperatorReward != "" {
		micro, err := normalize.ParseMicro("operator_reward", r.OperatorReward)
		if err != nil {
			return nil, err
		}
		operatorReward = normalize.ToDisplayUnits(micro)
	}
	cost, err := normalize.CoinDisplay(r.IntervalOperatingCost)
	if err != nil {
		return nil, err
	}

	return &NodeStakeSummary{
		TotalStake:            normalize.ToDisplayUnits(totalStake),
		SaturationPercent:     saturation,
		ProfitMarginPercent:   profitMargin,
		OperatorReward:        operatorReward,
		IntervalOperatingCost: cost,
		UniqueDelegations:     r.UniqueDelegations,
	}, nil
}

// ProfitMarginDisplay returns the profit margin of a node as a percent. The
// stored value is a fraction in [0,1].
func ProfitMarginDisplay(r *types.RewardingDetails) (sdkmath.LegacyDec, error) {
	if err := r.Validate(); err != nil {
		return sdkmath.LegacyDec{}, err
	}
	return profitMarginPercent(r)
}

// profitMarginPercent expects r to be validated already.
func profitMarginPercent(r *types.RewardingDetails) (sdkmath.LegacyDec, error) {
	pm, err := normalize.ParseDec("profit_margin_percent", r.ProfitMarginPercent)
	if err != nil {
		return sdkmath.LegacyDec{}, err
	}
	return normalize.ToPercent(pm), nil
}
