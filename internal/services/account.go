package services

import (
	"context"
	"fmt"

	sdkmath "cosmossdk.io/math"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/nymtech/nym-explorer-indexer/internal/reconcile"
	"github.com/nymtech/nym-explorer-indexer/internal/staking"
	"github.com/nymtech/nym-explorer-indexer/internal/types"
)

const (
	SectionBalance     = "balance"
	SectionDelegations = "delegations"
	SectionPrice       = "price"
)

// AccountOverview is everything shown for one account. Each section is
// filled independently; a section whose sources failed is nil and its error
// is listed in SectionErrors.
type AccountOverview struct {
	Address                 string
	Balance                 *types.AccountBalanceSummary
	Breakdown               *staking.AllocationBreakdown
	StakingRewardsTotal     sdkmath.LegacyDec
	AccumulatedRewardsTotal sdkmath.LegacyDec
	Delegations             []reconcile.Record
	// UsdPrice is the nil decimal when no quote was available.
	UsdPrice      sdkmath.LegacyDec
	SectionErrors map[string]error
}

// AccountOverview fetches the balance, the delegations, the pending events
// and the price of an account concurrently. Delegations are reconciled once
// both delegation sources are in.
func (s *Service) AccountOverview(ctx context.Context, address string) (*AccountOverview, error) {
	var (
		g           errgroup.Group
		balance     *types.AccountBalanceSummary
		delegations []types.Delegation
		pending     []types.PendingEvent
		usdPrice    sdkmath.LegacyDec

		balanceErr, delegationsErr, pendingErr, priceErr error
	)

	// sections fail independently, so the goroutines never return an error
	g.Go(func() error {
		balance, balanceErr = s.nymAPI.GetBalance(ctx, address)
		return nil
	})
	g.Go(func() error {
		delegations, delegationsErr = s.nymAPI.GetAccountDelegations(ctx, address)
		return nil
	})
	g.Go(func() error {
		pending, pendingErr = s.nymAPI.GetPendingEvents(ctx, address)
		return nil
	})
	if s.price != nil {
		g.Go(func() error {
			usdPrice, priceErr = s.price.GetUSDPrice(ctx)
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, types.NewContextError(err)
	}

	overview := &AccountOverview{
		Address:       address,
		SectionErrors: map[string]error{},
	}

	if priceErr != nil {
		overview.SectionErrors[SectionPrice] = priceErr
	} else {
		overview.UsdPrice = usdPrice
	}

	if balanceErr != nil {
		overview.SectionErrors[SectionBalance] = balanceErr
	} else if err := overview.fillBalance(balance); err != nil {
		overview.SectionErrors[SectionBalance] = err
	}

	switch {
	case delegationsErr != nil:
		overview.SectionErrors[SectionDelegations] = delegationsErr
	case pendingErr != nil:
		overview.SectionErrors[SectionDelegations] = pendingErr
	default:
		overview.Delegations = reconcile.Reconcile(delegations, pending, s.nodeLookup(ctx))
	}

	for section, err := range overview.SectionErrors {
		log.Ctx(ctx).Warn().Err(err).Str("section", section).Str("address", address).Msg("account section unavailable")
	}

	return overview, nil
}

func (o *AccountOverview) fillBalance(balance *types.AccountBalanceSummary) error {
	breakdown, err := staking.Breakdown(balance, o.UsdPrice)
	if err != nil {
		return fmt.Errorf("failed to compute allocation: %w", err)
	}
	stakingRewards, err := staking.StakingRewardsTotal(balance.StakingRewards)
	if err != nil {
		return fmt.Errorf("failed to sum staking rewards: %w", err)
	}
	accumulated, err := staking.AccumulatedRewardsTotal(balance.AccumulatedRewards)
	if err != nil {
		return fmt.Errorf("failed to sum accumulated rewards: %w", err)
	}

	o.Balance = balance
	o.Breakdown = breakdown
	o.StakingRewardsTotal = stakingRewards
	o.AccumulatedRewardsTotal = accumulated
	return nil
}

// AccountDelegations returns the reconciled delegation list of an account.
// Unlike AccountOverview both delegation sources must succeed.
func (s *Service) AccountDelegations(ctx context.Context, address string) ([]reconcile.Record, *types.Error) {
	var (
		delegations []types.Delegation
		pending     []types.PendingEvent
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		delegations, err = s.nymAPI.GetAccountDelegations(gctx, address)
		return err
	})
	g.Go(func() error {
		var err error
		pending, err = s.nymAPI.GetPendingEvents(gctx, address)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, asServiceError(err)
	}

	return reconcile.Reconcile(delegations, pending, s.nodeLookup(ctx)), nil
}

// nodeLookup returns the cached snapshot as node lookup, or nil when there is
// no snapshot to look nodes up in.
func (s *Service) nodeLookup(ctx context.Context) reconcile.NodeLookup {
	snapshot, err := s.Snapshot(ctx)
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Msg("node lookup unavailable for delegations")
		return nil
	}
	return snapshot
}
