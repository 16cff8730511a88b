package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nymtech/nym-explorer-indexer/internal/api"
	"github.com/nymtech/nym-explorer-indexer/internal/config"
	"github.com/nymtech/nym-explorer-indexer/internal/observability/tracing"
	"github.com/nymtech/nym-explorer-indexer/pkg"
)

// AccountSummaryCmd prints the allocation, rewards and reconciled delegations
// of one account.
// Usage: ./nym-explorer-indexer account-summary --config config.yml n1...
func AccountSummaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account-summary <address>",
		Short: "Prints the staking summary of an account",
		Args:  cobra.ExactArgs(1),
		RunE:  accountSummary,
	}

	cmd.Flags().Bool("delegations", false, "Print the reconciled delegation list instead of the overview")

	return cmd
}

func accountSummary(cmd *cobra.Command, args []string) error {
	ctx := tracing.InjectTraceID(cmd.Context())

	address := args[0]
	if err := pkg.ValidateNymAddress(address); err != nil {
		return fmt.Errorf("invalid address %q: %w", address, err)
	}

	cfg, err := config.New(GetConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	withDelegations, err := cmd.Flags().GetBool("delegations")
	if err != nil {
		return fmt.Errorf("failed to parse delegations flag: %w", err)
	}

	service := newService(cfg, nil, nil)

	if withDelegations {
		records, serviceErr := service.AccountDelegations(ctx, address)
		if serviceErr != nil {
			return serviceErr
		}
		resp := make([]api.DelegationResponse, 0, len(records))
		for _, r := range records {
			resp = append(resp, api.NewDelegationResponse(r))
		}
		return printJSON(resp)
	}

	overview, err := service.AccountOverview(ctx, address)
	if err != nil {
		return err
	}
	return printJSON(api.NewAccountResponse(overview))
}
