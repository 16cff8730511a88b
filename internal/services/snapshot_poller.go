package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/nymtech/nym-explorer-indexer/internal/observability/metrics"
	"github.com/nymtech/nym-explorer-indexer/internal/observability/tracing"
	"github.com/nymtech/nym-explorer-indexer/internal/queue"
	"github.com/nymtech/nym-explorer-indexer/internal/utils/poller"
)

func (s *Service) StartSnapshotPoller(ctx context.Context) {
	snapshotPoller := poller.NewPoller(
		"snapshot",
		s.cfg.Poller.SnapshotPollingInterval,
		metrics.RecordPollerDuration("snapshot", s.refreshSnapshot),
	).RunOnStart()
	go snapshotPoller.Start(ctx)
}

// refreshSnapshot builds a new snapshot, makes it the cached one, persists it
// and publishes a message per node. A failed cycle keeps the previous
// snapshot in place.
func (s *Service) refreshSnapshot(ctx context.Context) error {
	ctx = tracing.InjectTraceID(ctx)
	ctx, cancel := context.WithTimeout(ctx, s.cfg.Poller.SnapshotFetchTimeout)
	defer cancel()

	snapshot, err := s.BuildNetworkSnapshot(ctx)
	if err != nil {
		return fmt.Errorf("failed to build network snapshot: %w", err)
	}
	s.snapshots.Set(snapshot, snapshot.FetchedAt)

	return s.persistSnapshot(ctx, snapshot)
}

func (s *Service) persistSnapshot(ctx context.Context, snapshot *NetworkSnapshot) error {
	if err := s.db.UpsertNodeSummaries(ctx, snapshot.Nodes); err != nil {
		return fmt.Errorf("failed to save node summaries: %w", err)
	}

	if snapshot.Complete {
		if err := s.deleteDepartedNodes(ctx, snapshot); err != nil {
			return err
		}
	} else {
		log.Ctx(ctx).Warn().
			Int("nodes", len(snapshot.Nodes)).
			Msg("node list is empty or truncated, keeping stored summaries")
	}

	if err := s.db.UpsertNetworkSnapshot(ctx, snapshot.Document()); err != nil {
		return fmt.Errorf("failed to save network snapshot: %w", err)
	}

	if s.publisher == nil {
		return nil
	}
	msgs := make([]queue.NodeSummaryMessage, 0, len(snapshot.Nodes))
	for _, n := range snapshot.Nodes {
		msgs = append(msgs, queue.NewNodeSummaryMessage(n, snapshot.FetchedAt.Unix()))
	}
	if err := s.publisher.PublishNodeSummaries(ctx, msgs); err != nil {
		// the snapshot is already stored, consumers catch up on the next cycle
		log.Ctx(ctx).Error().Err(err).Msg("failed to publish node summaries")
	}

	return nil
}

func (s *Service) deleteDepartedNodes(ctx context.Context, snapshot *NetworkSnapshot) error {
	keep := make([]uint32, 0, len(snapshot.Nodes))
	for _, n := range snapshot.Nodes {
		keep = append(keep, n.NodeID)
	}
	deleted, err := s.db.DeleteNodeSummariesExcept(ctx, keep)
	if err != nil {
		return fmt.Errorf("failed to delete summaries of departed nodes: %w", err)
	}
	if deleted > 0 {
		log.Ctx(ctx).Info().Int64("deleted", deleted).Msg("removed summaries of nodes no longer listed")
	}
	return nil
}
