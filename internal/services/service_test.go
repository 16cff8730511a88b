package services

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/nymtech/nym-explorer-indexer/internal/cache"
	"github.com/nymtech/nym-explorer-indexer/internal/config"
	"github.com/nymtech/nym-explorer-indexer/internal/db"
	"github.com/nymtech/nym-explorer-indexer/internal/db/model"
	"github.com/nymtech/nym-explorer-indexer/internal/queue"
	"github.com/nymtech/nym-explorer-indexer/internal/scoring"
	"github.com/nymtech/nym-explorer-indexer/internal/types"
	"github.com/nymtech/nym-explorer-indexer/tests/mocks"
)

const saturationPoint = "750000000000"

var fixedNow = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

type testDeps struct {
	db         *mocks.DbInterface
	nymAPI     *mocks.NymAPIInterface
	nodeStatus *mocks.NodeStatusInterface
	price      *mocks.PriceInterface
	publisher  *mocks.PublisherInterface
}

func newTestService(t *testing.T) (*Service, *testDeps) {
	cfg := &config.Config{
		NymAPI:     config.NymAPIConfig{NodesPageLimit: 100},
		NodeStatus: config.NodeStatusConfig{MaxConcurrency: 2},
		Poller: config.PollerConfig{
			SnapshotPollingInterval: time.Minute,
			SnapshotTTL:             5 * time.Minute,
			SnapshotFetchTimeout:    time.Minute,
		},
	}
	deps := &testDeps{
		db:         mocks.NewDbInterface(t),
		nymAPI:     mocks.NewNymAPIInterface(t),
		nodeStatus: mocks.NewNodeStatusInterface(t),
		price:      mocks.NewPriceInterface(t),
		publisher:  mocks.NewPublisherInterface(t),
	}

	s := NewService(cfg, deps.db, deps.nymAPI, deps.nodeStatus, deps.price, deps.publisher, &cache.Cell[*NetworkSnapshot]{})
	s.now = func() time.Time { return fixedNow }
	return s, deps
}

func mixnode(id uint32) types.NodeDescriptor {
	return types.NodeDescriptor{
		NodeID:        id,
		IdentityKey:   "mix-key",
		DeclaredRoles: types.DeclaredRoles{Mixnode: true},
		Description:   &types.NodeDescription{Moniker: "mixer"},
		Uptime:        0.5,
		Rewarding: &types.RewardingDetails{
			OperatorReward:        "0",
			ProfitMarginPercent:   "0.1",
			IntervalOperatingCost: types.NewBaseCoin("40000000"),
			UniqueDelegations:     2,
			TotalStake:            "375000000000",
		},
	}
}

func gateway(id uint32) types.NodeDescriptor {
	return types.NodeDescriptor{
		NodeID:        id,
		IdentityKey:   "gw-key",
		DeclaredRoles: types.DeclaredRoles{Entry: true, ExitNR: true},
		Location:      &types.Location{CountryCode: "CH", CountryName: "Switzerland"},
		Uptime:        0.1,
	}
}

func healthyStatus() *types.GatewayStatus {
	return &types.GatewayStatus{
		IdentityKey: "gw-key",
		Performance: 0.95,
		LastProbeResult: &types.ProbeResult{
			AsEntry: &types.EntryProbe{CanConnect: true, CanRoute: true},
			AsExit: &types.ExitProbe{
				CanConnect:           true,
				CanRouteIPV4:         true,
				CanRouteIPV6:         true,
				CanRouteIPExternalV4: true,
				CanRouteIPExternalV6: true,
			},
		},
	}
}

func nodeList(nodes ...types.NodeDescriptor) *types.NodeList {
	return &types.NodeList{Nodes: nodes, Total: len(nodes)}
}

func expectUpstream(deps *testDeps) {
	deps.nymAPI.On("GetNodes", mock.Anything, 100).
		Return(nodeList(gateway(7), mixnode(3)), nil)
	deps.nymAPI.On("GetEpochParams", mock.Anything).
		Return(&types.EpochParams{StakeSaturationPoint: saturationPoint, EpochLengthSeconds: 3600}, nil)
}

func TestBuildNetworkSnapshot(t *testing.T) {
	s, deps := newTestService(t)
	expectUpstream(deps)
	deps.price.On("GetUSDPrice", mock.Anything).Return(sdkmath.LegacyNewDecWithPrec(5, 2), nil)
	// only the gateway is asked for its status
	deps.nodeStatus.On("GetGatewayStatus", mock.Anything, "gw-key").Return(healthyStatus(), nil).Once()

	snapshot, err := s.BuildNetworkSnapshot(t.Context())
	require.NoError(t, err)

	require.Len(t, snapshot.Nodes, 2)
	assert.Equal(t, uint32(3), snapshot.Nodes[0].NodeID)
	assert.Equal(t, uint32(7), snapshot.Nodes[1].NodeID)
	assert.Empty(t, snapshot.FailedSources)
	assert.Equal(t, fixedNow, snapshot.FetchedAt)
	assert.Equal(t, 1, snapshot.GatewayCount())
	assert.True(t, sdkmath.LegacyNewDecWithPrec(5, 2).Equal(snapshot.UsdPrice))

	mix, ok := snapshot.Node(3)
	require.True(t, ok)
	assert.False(t, mix.Scores.GatewayScored)
	assert.Equal(t, scoring.Stars(3), mix.Scores.QualityOfService)
	assert.Equal(t, "mixer", mix.Moniker)
	require.NotNil(t, mix.Stake)
	assert.Equal(t, int64(50), mix.Stake.SaturationPercent)
	assert.Equal(t, "375000", mix.Stake.TotalStake)
	assert.Equal(t, "10", mix.Stake.ProfitMarginPercent)
	assert.Equal(t, "40", mix.Stake.IntervalOperatingCost)

	gw, ok := snapshot.Node(7)
	require.True(t, ok)
	assert.True(t, gw.Scores.GatewayScored)
	// gateway quality comes from the probe performance, not the descriptor
	assert.Equal(t, scoring.Stars(4), gw.Scores.QualityOfService)
	assert.Equal(t, scoring.Stars(4), gw.Scores.ConfigScore)
	assert.Equal(t, []string{"Entry Node", "Exit NR Node"}, gw.Scores.Roles)
	assert.Equal(t, "CH", gw.CountryCode)
	assert.Nil(t, gw.Stake)

	doc := snapshot.Document()
	assert.Equal(t, 2, doc.NodeCount)
	assert.Equal(t, 1, doc.GatewayCount)
	assert.Equal(t, "0.05", doc.UsdPrice)
	assert.Equal(t, fixedNow.Unix(), doc.UpdatedAt)
}

func TestBuildNetworkSnapshot_PartialSources(t *testing.T) {
	s, deps := newTestService(t)
	expectUpstream(deps)
	deps.price.On("GetUSDPrice", mock.Anything).Return(sdkmath.LegacyDec{}, errors.New("price down"))
	deps.nodeStatus.On("GetGatewayStatus", mock.Anything, "gw-key").Return(nil, errors.New("status down"))

	snapshot, err := s.BuildNetworkSnapshot(t.Context())
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{sourcePrice, sourceNodeStatus}, snapshot.FailedSources)
	assert.True(t, snapshot.UsdPrice.IsNil())
	assert.Empty(t, snapshot.Document().UsdPrice)

	gw, ok := snapshot.Node(7)
	require.True(t, ok)
	assert.True(t, gw.Scores.GatewayScored)
	assert.Equal(t, scoring.NoData, gw.Scores.ConfigScore)
	assert.Equal(t, scoring.NoData, gw.Scores.WireguardPerformance)
}

func TestBuildNetworkSnapshot_NeverProbedGateway(t *testing.T) {
	s, deps := newTestService(t)
	expectUpstream(deps)
	deps.price.On("GetUSDPrice", mock.Anything).Return(sdkmath.LegacyOneDec(), nil)
	deps.nodeStatus.On("GetGatewayStatus", mock.Anything, "gw-key").Return(nil, nil)

	snapshot, err := s.BuildNetworkSnapshot(t.Context())
	require.NoError(t, err)
	assert.Empty(t, snapshot.FailedSources)

	gw, _ := snapshot.Node(7)
	assert.Equal(t, scoring.NoData, gw.Scores.ConfigScore)
	// descriptor uptime is used without a status
	assert.Equal(t, scoring.Stars(1), gw.Scores.QualityOfService)
}

func TestBuildNetworkSnapshot_RequiredSourceFails(t *testing.T) {
	t.Run("nodes", func(t *testing.T) {
		s, deps := newTestService(t)
		deps.nymAPI.On("GetNodes", mock.Anything, 100).Return(nil, types.NewFetchFailure("nodes", errors.New("boom")))
		deps.nymAPI.On("GetEpochParams", mock.Anything).Return(&types.EpochParams{StakeSaturationPoint: saturationPoint}, nil).Maybe()
		deps.price.On("GetUSDPrice", mock.Anything).Return(sdkmath.LegacyOneDec(), nil).Maybe()

		snapshot, err := s.BuildNetworkSnapshot(t.Context())
		require.Error(t, err)
		assert.Nil(t, snapshot)
		assert.True(t, types.IsFetchFailure(err))
	})

	t.Run("epoch", func(t *testing.T) {
		s, deps := newTestService(t)
		deps.nymAPI.On("GetNodes", mock.Anything, 100).Return(nodeList(mixnode(1)), nil).Maybe()
		deps.nymAPI.On("GetEpochParams", mock.Anything).Return(nil, errors.New("boom"))
		deps.price.On("GetUSDPrice", mock.Anything).Return(sdkmath.LegacyOneDec(), nil).Maybe()

		snapshot, err := s.BuildNetworkSnapshot(t.Context())
		require.Error(t, err)
		assert.Nil(t, snapshot)
	})
}

func TestBuildNetworkSnapshot_CancelledCycleIsDiscarded(t *testing.T) {
	s, deps := newTestService(t)
	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()

	deps.nymAPI.On("GetNodes", mock.Anything, 100).
		Run(func(mock.Arguments) { cancel() }).
		Return(nodeList(gateway(7), mixnode(3)), nil)
	deps.nymAPI.On("GetEpochParams", mock.Anything).
		Return(&types.EpochParams{StakeSaturationPoint: saturationPoint}, nil).Maybe()
	deps.price.On("GetUSDPrice", mock.Anything).Return(sdkmath.LegacyOneDec(), nil).Maybe()
	deps.nodeStatus.On("GetGatewayStatus", mock.Anything, "gw-key").Return(healthyStatus(), nil).Maybe()

	snapshot, err := s.BuildNetworkSnapshot(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, snapshot)

	_, _, ok := s.snapshots.Get()
	assert.False(t, ok)
}

func TestBuildNetworkSnapshot_Idempotent(t *testing.T) {
	s, deps := newTestService(t)
	expectUpstream(deps)
	deps.price.On("GetUSDPrice", mock.Anything).Return(sdkmath.LegacyOneDec(), nil)
	deps.nodeStatus.On("GetGatewayStatus", mock.Anything, "gw-key").Return(healthyStatus(), nil)

	first, err := s.BuildNetworkSnapshot(t.Context())
	require.NoError(t, err)
	second, err := s.BuildNetworkSnapshot(t.Context())
	require.NoError(t, err)

	assert.Equal(t, first.Nodes, second.Nodes)
	assert.Equal(t, first.Document(), second.Document())
}

func TestRefreshSnapshot(t *testing.T) {
	s, deps := newTestService(t)
	expectUpstream(deps)
	deps.price.On("GetUSDPrice", mock.Anything).Return(sdkmath.LegacyOneDec(), nil)
	deps.nodeStatus.On("GetGatewayStatus", mock.Anything, "gw-key").Return(healthyStatus(), nil)

	deps.db.On("UpsertNodeSummaries", mock.Anything, mock.MatchedBy(func(docs []*model.NodeSummaryDocument) bool {
		return len(docs) == 2
	})).Return(nil)
	deps.db.On("DeleteNodeSummariesExcept", mock.Anything, []uint32{3, 7}).Return(int64(1), nil)
	deps.db.On("UpsertNetworkSnapshot", mock.Anything, mock.MatchedBy(func(doc *model.NetworkSnapshotDocument) bool {
		return doc.NodeCount == 2 && doc.GatewayCount == 1 && doc.UsdPrice == "1"
	})).Return(nil)
	deps.publisher.On("PublishNodeSummaries", mock.Anything, mock.MatchedBy(func(msgs []queue.NodeSummaryMessage) bool {
		return len(msgs) == 2 && msgs[0].NodeID == 3 && msgs[0].SnapshotTime == fixedNow.Unix()
	})).Return(errors.New("queue down"))

	// publishing failures do not fail the cycle
	require.NoError(t, s.refreshSnapshot(t.Context()))

	cached, at, ok := s.snapshots.Get()
	require.True(t, ok)
	assert.Equal(t, fixedNow, at)
	assert.Len(t, cached.Nodes, 2)
}

func TestRefreshSnapshot_IncompleteNodeListKeepsStoredSummaries(t *testing.T) {
	tests := []struct {
		name   string
		list   *types.NodeList
		failed []string
	}{
		{
			name: "empty list",
			list: nodeList(),
		},
		{
			name:   "truncated list",
			list:   &types.NodeList{Nodes: []types.NodeDescriptor{mixnode(3)}, Total: 5},
			failed: []string{sourceNodes},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, deps := newTestService(t)
			deps.nymAPI.On("GetNodes", mock.Anything, 100).Return(tt.list, nil)
			deps.nymAPI.On("GetEpochParams", mock.Anything).
				Return(&types.EpochParams{StakeSaturationPoint: saturationPoint}, nil)
			deps.price.On("GetUSDPrice", mock.Anything).Return(sdkmath.LegacyOneDec(), nil)

			deps.db.On("UpsertNodeSummaries", mock.Anything, mock.Anything).Return(nil)
			deps.db.On("UpsertNetworkSnapshot", mock.Anything, mock.Anything).Return(nil)
			deps.publisher.On("PublishNodeSummaries", mock.Anything, mock.Anything).Return(nil)

			require.NoError(t, s.refreshSnapshot(t.Context()))
			deps.db.AssertNotCalled(t, "DeleteNodeSummariesExcept", mock.Anything, mock.Anything)

			cached, _, ok := s.snapshots.Get()
			require.True(t, ok)
			assert.False(t, cached.Complete)
			assert.Equal(t, tt.failed, cached.FailedSources)
		})
	}
}

func TestBuildNetworkSnapshot_InvalidSaturationPoint(t *testing.T) {
	s, deps := newTestService(t)
	deps.nymAPI.On("GetNodes", mock.Anything, 100).Return(nodeList(mixnode(3)), nil)
	deps.nymAPI.On("GetEpochParams", mock.Anything).
		Return(&types.EpochParams{StakeSaturationPoint: "0"}, nil)
	deps.price.On("GetUSDPrice", mock.Anything).Return(sdkmath.LegacyOneDec(), nil)

	snapshot, err := s.BuildNetworkSnapshot(t.Context())
	require.NoError(t, err)
	assert.Equal(t, []string{sourceSaturationPoint}, snapshot.FailedSources)
	assert.Equal(t, []string{sourceSaturationPoint}, snapshot.Document().FailedSources)
	assert.True(t, snapshot.Complete)

	mix, ok := snapshot.Node(3)
	require.True(t, ok)
	assert.Nil(t, mix.Stake)
	// scores do not depend on the saturation point
	assert.Equal(t, scoring.Stars(3), mix.Scores.QualityOfService)
}

func TestRefreshSnapshot_KeepsPreviousOnFailure(t *testing.T) {
	s, deps := newTestService(t)
	previous := newNetworkSnapshot(types.EpochParams{}, nil, sdkmath.LegacyDec{}, nil, fixedNow.Add(-time.Hour))
	s.snapshots.Set(previous, previous.FetchedAt)

	deps.nymAPI.On("GetNodes", mock.Anything, 100).Return(nil, errors.New("boom"))
	deps.nymAPI.On("GetEpochParams", mock.Anything).Return(nil, errors.New("boom")).Maybe()
	deps.price.On("GetUSDPrice", mock.Anything).Return(sdkmath.LegacyOneDec(), nil).Maybe()

	require.Error(t, s.refreshSnapshot(t.Context()))

	cached, _, _ := s.snapshots.Get()
	assert.Same(t, previous, cached)
}

func TestSnapshotCache(t *testing.T) {
	t.Run("fresh snapshot is served without fetching", func(t *testing.T) {
		s, _ := newTestService(t)
		fresh := newNetworkSnapshot(types.EpochParams{}, nil, sdkmath.LegacyDec{}, nil, fixedNow)
		s.snapshots.Set(fresh, fixedNow.Add(-time.Minute))

		got, err := s.Snapshot(t.Context())
		require.NoError(t, err)
		assert.Same(t, fresh, got)
	})

	t.Run("stale snapshot is served when upstream fails", func(t *testing.T) {
		s, deps := newTestService(t)
		stale := newNetworkSnapshot(types.EpochParams{}, nil, sdkmath.LegacyDec{}, nil, fixedNow)
		s.snapshots.Set(stale, fixedNow.Add(-time.Hour))

		deps.nymAPI.On("GetNodes", mock.Anything, 100).Return(nil, errors.New("boom")).Once()
		deps.nymAPI.On("GetEpochParams", mock.Anything).Return(nil, errors.New("boom")).Maybe()
		deps.price.On("GetUSDPrice", mock.Anything).Return(sdkmath.LegacyOneDec(), nil).Maybe()

		got, err := s.Snapshot(t.Context())
		require.NoError(t, err)
		assert.Same(t, stale, got)
	})
}

func TestSnapshot_ConcurrentReadersShareOneBuild(t *testing.T) {
	s, deps := newTestService(t)

	var fetches atomic.Int32
	release := make(chan struct{})
	deps.nymAPI.On("GetNodes", mock.Anything, 100).
		Run(func(mock.Arguments) {
			fetches.Add(1)
			<-release
		}).
		Return(nodeList(gateway(7), mixnode(3)), nil)
	deps.nymAPI.On("GetEpochParams", mock.Anything).
		Return(&types.EpochParams{StakeSaturationPoint: saturationPoint}, nil)
	deps.price.On("GetUSDPrice", mock.Anything).Return(sdkmath.LegacyOneDec(), nil)
	deps.nodeStatus.On("GetGatewayStatus", mock.Anything, "gw-key").Return(healthyStatus(), nil)

	const readers = 20
	var wg sync.WaitGroup
	results := make([][]*model.NodeSummaryDocument, readers)
	for i := range readers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			nodes, err := s.ListNodes(t.Context())
			if err == nil {
				results[i] = nodes
			}
		}()
	}

	require.Eventually(t, func() bool { return fetches.Load() == 1 }, time.Second, time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), fetches.Load())
	deps.nymAPI.AssertNumberOfCalls(t, "GetNodes", 1)
	for _, nodes := range results {
		assert.Len(t, nodes, 2)
	}
}

func TestSnapshot_CancelledReader(t *testing.T) {
	s, deps := newTestService(t)
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	// no upstream or db expectations: nothing may be fetched
	_, err := s.ListNodes(ctx)
	require.NotNil(t, err)
	assert.Equal(t, types.RequestCancelled, err.ErrorCode)
	deps.nymAPI.AssertNotCalled(t, "GetNodes", mock.Anything, mock.Anything)
	deps.db.AssertNotCalled(t, "ListNodeSummaries", mock.Anything)
}

func failingUpstream(deps *testDeps) {
	deps.nymAPI.On("GetNodes", mock.Anything, 100).Return(nil, errors.New("boom"))
	deps.nymAPI.On("GetEpochParams", mock.Anything).Return(nil, errors.New("boom")).Maybe()
	deps.price.On("GetUSDPrice", mock.Anything).Return(sdkmath.LegacyOneDec(), nil).Maybe()
}

func TestListNodes_FallsBackToStoredSummaries(t *testing.T) {
	s, deps := newTestService(t)
	failingUpstream(deps)
	stored := []*model.NodeSummaryDocument{{NodeID: 1}, {NodeID: 2}}
	deps.db.On("ListNodeSummaries", mock.Anything).Return(stored, nil)

	nodes, err := s.ListNodes(t.Context())
	require.Nil(t, err)
	assert.Equal(t, stored, nodes)
}

func TestListNodes_NothingAvailable(t *testing.T) {
	s, deps := newTestService(t)
	failingUpstream(deps)
	deps.db.On("ListNodeSummaries", mock.Anything).Return(nil, nil)

	_, err := s.ListNodes(t.Context())
	require.NotNil(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, err.StatusCode)
}

func TestGetNode(t *testing.T) {
	t.Run("from snapshot", func(t *testing.T) {
		s, _ := newTestService(t)
		doc := &model.NodeSummaryDocument{NodeID: 5}
		s.snapshots.Set(newNetworkSnapshot(types.EpochParams{}, []*model.NodeSummaryDocument{doc}, sdkmath.LegacyDec{}, nil, fixedNow), fixedNow)

		got, err := s.GetNode(t.Context(), 5)
		require.Nil(t, err)
		assert.Same(t, doc, got)

		_, err = s.GetNode(t.Context(), 6)
		require.NotNil(t, err)
		assert.Equal(t, types.NotFound, err.ErrorCode)
	})

	t.Run("from db", func(t *testing.T) {
		s, deps := newTestService(t)
		failingUpstream(deps)
		deps.db.On("GetNodeSummary", mock.Anything, uint32(5)).Return(&model.NodeSummaryDocument{NodeID: 5}, nil)
		deps.db.On("GetNodeSummary", mock.Anything, uint32(6)).Return(nil, &db.NotFoundError{Collection: model.NodeSummaryCollection, Key: "6"})

		got, err := s.GetNode(t.Context(), 5)
		require.Nil(t, err)
		assert.Equal(t, uint32(5), got.NodeID)

		_, err = s.GetNode(t.Context(), 6)
		require.NotNil(t, err)
		assert.Equal(t, http.StatusNotFound, err.StatusCode)
	})
}

func TestNodeDelegations_UnknownNode(t *testing.T) {
	s, deps := newTestService(t)
	deps.nymAPI.On("GetNodeDelegations", mock.Anything, uint32(42)).
		Return(nil, types.NewErrorWithMsg(http.StatusNotFound, types.NotFound, "node 42 not found"))

	_, err := s.NodeDelegations(t.Context(), 42)
	require.NotNil(t, err)
	assert.Equal(t, http.StatusNotFound, err.StatusCode)
	assert.Equal(t, types.NotFound, err.ErrorCode)
}
