package db

import (
	"context"

	"github.com/nymtech/nym-explorer-indexer/internal/db/model"
)

//go:generate mockery --name=DbInterface --output=../../tests/mocks --outpkg=mocks --filename=mock_db_client.go
type DbInterface interface {
	Ping(ctx context.Context) error
	// UpsertNodeSummaries replaces the stored summary of every given node.
	UpsertNodeSummaries(ctx context.Context, docs []*model.NodeSummaryDocument) error
	// DeleteNodeSummariesExcept removes the summaries of nodes that are not
	// in keep and returns how many were removed.
	DeleteNodeSummariesExcept(ctx context.Context, keep []uint32) (int64, error)
	GetNodeSummary(ctx context.Context, nodeID uint32) (*model.NodeSummaryDocument, error)
	ListNodeSummaries(ctx context.Context) ([]*model.NodeSummaryDocument, error)
	UpsertNetworkSnapshot(ctx context.Context, doc *model.NetworkSnapshotDocument) error
	GetNetworkSnapshot(ctx context.Context) (*model.NetworkSnapshotDocument, error)
}
