package db

import (
	"context"
	"time"

	"github.com/nymtech/nym-explorer-indexer/internal/db/model"
	"github.com/nymtech/nym-explorer-indexer/internal/observability/metrics"
)

type DbWithMetrics struct {
	db DbInterface
}

func NewDbWithMetrics(db DbInterface) *DbWithMetrics {
	return &DbWithMetrics{db: db}
}

func (d *DbWithMetrics) Ping(ctx context.Context) error {
	return d.db.Ping(ctx)
}

func (d *DbWithMetrics) UpsertNodeSummaries(ctx context.Context, docs []*model.NodeSummaryDocument) error {
	return d.run("UpsertNodeSummaries", func() error {
		return d.db.UpsertNodeSummaries(ctx, docs)
	})
}

func (d *DbWithMetrics) DeleteNodeSummariesExcept(ctx context.Context, keep []uint32) (deleted int64, err error) {
	//nolint:errcheck
	d.run("DeleteNodeSummariesExcept", func() error {
		deleted, err = d.db.DeleteNodeSummariesExcept(ctx, keep)
		return err
	})

	return
}

func (d *DbWithMetrics) GetNodeSummary(ctx context.Context, nodeID uint32) (result *model.NodeSummaryDocument, err error) {
	//nolint:errcheck
	d.run("GetNodeSummary", func() error {
		result, err = d.db.GetNodeSummary(ctx, nodeID)
		return err
	})

	return
}

func (d *DbWithMetrics) ListNodeSummaries(ctx context.Context) (result []*model.NodeSummaryDocument, err error) {
	//nolint:errcheck
	d.run("ListNodeSummaries", func() error {
		result, err = d.db.ListNodeSummaries(ctx)
		return err
	})

	return
}

func (d *DbWithMetrics) UpsertNetworkSnapshot(ctx context.Context, doc *model.NetworkSnapshotDocument) error {
	return d.run("UpsertNetworkSnapshot", func() error {
		return d.db.UpsertNetworkSnapshot(ctx, doc)
	})
}

func (d *DbWithMetrics) GetNetworkSnapshot(ctx context.Context) (result *model.NetworkSnapshotDocument, err error) {
	//nolint:errcheck
	d.run("GetNetworkSnapshot", func() error {
		result, err = d.db.GetNetworkSnapshot(ctx)
		return err
	})

	return
}

func (d *DbWithMetrics) run(method string, f func() error) error {
	startTime := time.Now()
	err := f()
	duration := time.Since(startTime)

	metrics.RecordDbLatency(duration, method, err != nil)
	return err
}
