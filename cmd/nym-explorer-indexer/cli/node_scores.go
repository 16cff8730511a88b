package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nymtech/nym-explorer-indexer/internal/api"
	"github.com/nymtech/nym-explorer-indexer/internal/config"
	"github.com/nymtech/nym-explorer-indexer/internal/observability/tracing"
)

// NodeScoresCmd builds one network snapshot from the upstream sources and
// prints the node summaries without touching the database.
// Usage: ./nym-explorer-indexer node-scores --config config.yml [--node-id 5]
func NodeScoresCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "node-scores",
		Short: "Prints the current scores of every node",
		Args:  cobra.ExactArgs(0),
		RunE:  nodeScores,
	}

	cmd.Flags().Uint32("node-id", 0, "Only print the node with this id")

	return cmd
}

func nodeScores(cmd *cobra.Command, _ []string) error {
	ctx := tracing.InjectTraceID(cmd.Context())

	cfg, err := config.New(GetConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	nodeID, err := cmd.Flags().GetUint32("node-id")
	if err != nil {
		return fmt.Errorf("failed to parse node-id flag: %w", err)
	}

	service := newService(cfg, nil, nil)
	snapshot, err := service.BuildNetworkSnapshot(ctx)
	if err != nil {
		return err
	}

	var out any
	if cmd.Flags().Changed("node-id") {
		doc, ok := snapshot.Node(nodeID)
		if !ok {
			return fmt.Errorf("node %d not found", nodeID)
		}
		out = api.NewNodeResponse(doc)
	} else {
		nodes := make([]api.NodeResponse, 0, len(snapshot.Nodes))
		for _, doc := range snapshot.Nodes {
			nodes = append(nodes, api.NewNodeResponse(doc))
		}
		out = nodes
	}

	return printJSON(out)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
