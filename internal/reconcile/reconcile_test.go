package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nymtech/nym-explorer-indexer/internal/types"
)

func staticLookup(nodes ...*Node) NodeLookup {
	byID := make(map[uint32]*Node, len(nodes))
	for _, n := range nodes {
		byID[n.NodeID] = n
	}
	return NodeLookupFunc(func(id uint32) (*Node, bool) {
		n, ok := byID[id]
		return n, ok
	})
}

func TestReconcile(t *testing.T) {
	node1 := &Node{NodeID: 1, Name: "node-one", IdentityKey: "key1", TotalStake: "1000"}

	t.Run("committed and pending only", func(t *testing.T) {
		delegations := []types.Delegation{
			{Owner: "a", NodeID: 1, Amount: types.NewBaseCoin("100")},
		}
		pending := []types.PendingEvent{
			{Kind: types.PendingDelegate, NodeID: 2, Owner: "a", Amount: &types.Coin{Amount: "50"}},
		}

		records := Reconcile(delegations, pending, staticLookup(node1))
		require.Len(t, records, 2)

		assert.Equal(t, uint32(1), records[0].NodeID)
		assert.Same(t, node1, records[0].Node)
		assert.Nil(t, records[0].PendingEvent)
		assert.False(t, records[0].Pending)
		assert.Equal(t, "node-one", records[0].DisplayName())

		assert.Equal(t, uint32(2), records[1].NodeID)
		require.NotNil(t, records[1].Node)
		assert.Equal(t, types.MissingValue, records[1].Node.Name)
		assert.Equal(t, "0", records[1].Node.TotalStake)
		assert.True(t, records[1].Pending)
		assert.Equal(t, types.NewBaseCoin("50"), records[1].Delegation.Amount)
		require.NotNil(t, records[1].PendingEvent)
		assert.Equal(t, types.PendingDelegate, records[1].PendingEvent.Kind)
	})

	t.Run("pending event attached to committed delegation", func(t *testing.T) {
		delegations := []types.Delegation{
			{Owner: "a", NodeID: 1, Amount: types.NewBaseCoin("100")},
		}
		pending := []types.PendingEvent{
			{Kind: types.PendingUndelegate, NodeID: 1, Owner: "a"},
			// a different owner does not match the committed pair
			{Kind: types.PendingDelegate, NodeID: 1, Owner: "b", Amount: &types.Coin{Amount: "7"}},
		}

		records := Reconcile(delegations, pending, staticLookup(node1))
		require.Len(t, records, 2)
		require.NotNil(t, records[0].PendingEvent)
		assert.Equal(t, types.PendingUndelegate, records[0].PendingEvent.Kind)
		assert.True(t, records[1].Pending)
		assert.Equal(t, "b", records[1].Delegation.Owner)
	})

	t.Run("ordering", func(t *testing.T) {
		delegations := []types.Delegation{
			{Owner: "a", NodeID: 9},
			{Owner: "a", NodeID: 3},
			{Owner: "a", NodeID: 5},
		}
		pending := []types.PendingEvent{
			{Kind: types.PendingDelegate, Owner: "a", NodeID: 8},
			{Kind: types.PendingDelegate, Owner: "a", NodeID: 4},
		}
		records := Reconcile(delegations, pending, nil)

		var ids []uint32
		for _, r := range records {
			ids = append(ids, r.NodeID)
		}
		assert.Equal(t, []uint32{9, 3, 5, 8, 4}, ids)
	})

	t.Run("pending only records are deduplicated by node", func(t *testing.T) {
		pending := []types.PendingEvent{
			{Kind: types.PendingDelegate, Owner: "a", NodeID: 2, Amount: &types.Coin{Amount: "10"}},
			{Kind: types.PendingDelegate, Owner: "a", NodeID: 2, Amount: &types.Coin{Amount: "20"}},
		}
		records := Reconcile(nil, pending, nil)
		require.Len(t, records, 1)
		assert.Equal(t, "10", records[0].Delegation.Amount.Amount)
		assert.Equal(t, types.BaseDenom, records[0].Delegation.Amount.Denom)
	})

	t.Run("pending event without amount", func(t *testing.T) {
		records := Reconcile(nil, []types.PendingEvent{{Kind: types.PendingUndelegate, Owner: "a", NodeID: 4}}, nil)
		require.Len(t, records, 1)
		assert.Equal(t, "0", records[0].Delegation.Amount.Amount)
	})

	t.Run("lookup unavailable", func(t *testing.T) {
		delegations := []types.Delegation{{Owner: "a", NodeID: 1}, {Owner: "a", NodeID: 42}}

		records := Reconcile(delegations, nil, nil)
		require.Len(t, records, 2)
		assert.Nil(t, records[0].Node)
		assert.Equal(t, types.MissingValue, records[0].DisplayName())
		assert.Equal(t, types.MissingValue, records[0].DisplayIdentityKey())

		// unknown node with a working lookup
		records = Reconcile(delegations, nil, staticLookup(node1))
		assert.NotNil(t, records[0].Node)
		assert.Nil(t, records[1].Node)
	})

	t.Run("idempotent", func(t *testing.T) {
		delegations := []types.Delegation{{Owner: "a", NodeID: 1, Amount: types.NewBaseCoin("1")}}
		pending := []types.PendingEvent{{Kind: types.PendingDelegate, Owner: "a", NodeID: 2}}
		lookup := staticLookup(node1)
		assert.Equal(t, Reconcile(delegations, pending, lookup), Reconcile(delegations, pending, lookup))
	})

	t.Run("empty", func(t *testing.T) {
		assert.Empty(t, Reconcile(nil, nil, nil))
	})
}
