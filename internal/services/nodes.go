package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/nymtech/nym-explorer-indexer/internal/db"
	"github.com/nymtech/nym-explorer-indexer/internal/db/model"
	"github.com/nymtech/nym-explorer-indexer/internal/types"
)

const snapshotRebuildKey = "network_snapshot"

// Snapshot returns the cached network snapshot, building a new one when the
// cached one is older than the configured ttl. Concurrent callers wait for
// the same build. When the upstream sources are unavailable the last
// snapshot, even a stale one, is returned instead.
func (s *Service) Snapshot(ctx context.Context) (*NetworkSnapshot, error) {
	snapshot, err := s.sharedRefresh(ctx)
	if err == nil {
		return snapshot, nil
	}

	if cached, _, ok := s.snapshots.Get(); ok {
		log.Ctx(ctx).Warn().Err(err).Msg("serving stale network snapshot")
		return cached, nil
	}

	return nil, err
}

// sharedRefresh runs at most one snapshot build at a time. The build is
// detached from the cancellation of the caller that started it and bounded
// by the fetch timeout instead, so the other waiters still get its result.
func (s *Service) sharedRefresh(ctx context.Context) (*NetworkSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ttl := s.cfg.Poller.SnapshotTTL
	if cached, fetchedAt, ok := s.snapshots.Get(); ok && s.now().Sub(fetchedAt) < ttl {
		return cached, nil
	}

	ch := s.rebuilds.DoChan(snapshotRebuildKey, func() (any, error) {
		buildCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.Poller.SnapshotFetchTimeout)
		defer cancel()
		return s.snapshots.RefreshIfStale(buildCtx, s.now(), ttl, s.BuildNetworkSnapshot)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*NetworkSnapshot), nil
	}
}

// ListNodes returns the summaries of every node, from the cached snapshot or
// from the last persisted one.
func (s *Service) ListNodes(ctx context.Context) ([]*model.NodeSummaryDocument, *types.Error) {
	snapshot, err := s.Snapshot(ctx)
	if err == nil {
		return snapshot.Nodes, nil
	}
	if types.IsContextError(err) {
		return nil, types.NewContextError(err)
	}
	log.Ctx(ctx).Warn().Err(err).Msg("network snapshot unavailable, reading stored summaries")

	docs, dbErr := s.db.ListNodeSummaries(ctx)
	if dbErr != nil {
		return nil, types.NewInternalServiceError(fmt.Errorf("failed to list node summaries: %w", dbErr))
	}
	if len(docs) == 0 {
		return nil, types.NewError(http.StatusServiceUnavailable, types.ServiceUnavailable, err)
	}
	return docs, nil
}

// GetNode returns the summary of one node.
func (s *Service) GetNode(ctx context.Context, nodeID uint32) (*model.NodeSummaryDocument, *types.Error) {
	snapshot, err := s.Snapshot(ctx)
	if err == nil {
		doc, ok := snapshot.Node(nodeID)
		if !ok {
			return nil, types.NewErrorWithMsg(http.StatusNotFound, types.NotFound, fmt.Sprintf("node %d not found", nodeID))
		}
		return doc, nil
	}
	if types.IsContextError(err) {
		return nil, types.NewContextError(err)
	}
	log.Ctx(ctx).Warn().Err(err).Msg("network snapshot unavailable, reading stored summary")

	doc, dbErr := s.db.GetNodeSummary(ctx, nodeID)
	if dbErr != nil {
		if db.IsNotFoundError(dbErr) {
			return nil, types.NewErrorWithMsg(http.StatusNotFound, types.NotFound, fmt.Sprintf("node %d not found", nodeID))
		}
		return nil, types.NewInternalServiceError(fmt.Errorf("failed to get node summary: %w", dbErr))
	}
	return doc, nil
}

// NetworkInfo returns the description of the latest refresh cycle.
func (s *Service) NetworkInfo(ctx context.Context) (*model.NetworkSnapshotDocument, *types.Error) {
	snapshot, err := s.Snapshot(ctx)
	if err == nil {
		return snapshot.Document(), nil
	}
	if types.IsContextError(err) {
		return nil, types.NewContextError(err)
	}

	doc, dbErr := s.db.GetNetworkSnapshot(ctx)
	if dbErr != nil {
		if db.IsNotFoundError(dbErr) {
			return nil, types.NewError(http.StatusServiceUnavailable, types.ServiceUnavailable, err)
		}
		return nil, types.NewInternalServiceError(fmt.Errorf("failed to get network snapshot: %w", dbErr))
	}
	return doc, nil
}

// NodeDelegations returns the committed delegations of a node.
func (s *Service) NodeDelegations(ctx context.Context, nodeID uint32) ([]types.Delegation, *types.Error) {
	delegations, err := s.nymAPI.GetNodeDelegations(ctx, nodeID)
	if err != nil {
		return nil, asServiceError(err)
	}
	return delegations, nil
}

func asServiceError(err error) *types.Error {
	if types.IsContextError(err) {
		return types.NewContextError(err)
	}
	var e *types.Error
	if errors.As(err, &e) {
		return e
	}
	return types.NewError(http.StatusBadGateway, types.FetchFailure, err)
}
