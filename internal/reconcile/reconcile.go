// Package reconcile merges an account's committed delegations with its
// pending epoch events into one list for display.
package reconcile

import (
	"github.com/nymtech/nym-explorer-indexer/internal/types"
)

// Node is the node information attached to a delegation record.
type Node struct {
	NodeID            uint32   `json:"node_id"`
	IdentityKey       string   `json:"identity_key"`
	Name              string   `json:"name"`
	TotalStake        string   `json:"total_stake"`
	SaturationPercent int64    `json:"saturation_percent"`
	ProfitMargin      string   `json:"profit_margin_percent"`
	Roles             []string `json:"roles"`
}

// NodeLookup resolves a node id to its display information. The boolean is
// false when the node is unknown.
type NodeLookup interface {
	LookupNode(nodeID uint32) (*Node, bool)
}

// NodeLookupFunc adapts a function to NodeLookup.
type NodeLookupFunc func(nodeID uint32) (*Node, bool)

func (f NodeLookupFunc) LookupNode(nodeID uint32) (*Node, bool) {
	return f(nodeID)
}

// Record is one entry of the reconciled list. Node is nil when the node could
// not be looked up. PendingEvent is nil when nothing is pending for the pair.
type Record struct {
	NodeID       uint32              `json:"node_id"`
	Node         *Node               `json:"node"`
	Delegation   types.Delegation    `json:"delegation"`
	PendingEvent *types.PendingEvent `json:"pending_event"`
	// Pending is set on records synthesized from a pending event that has no
	// committed delegation yet.
	Pending bool `json:"pending"`
}

// DisplayName returns the node name, or the missing value marker.
func (r *Record) DisplayName() string {
	if r.Node == nil || r.Node.Name == "" {
		return types.MissingValue
	}
	return r.Node.Name
}

// DisplayIdentityKey returns the node identity key, or the missing value
// marker.
func (r *Record) DisplayIdentityKey() string {
	if r.Node == nil || r.Node.IdentityKey == "" {
		return types.MissingValue
	}
	return r.Node.IdentityKey
}

// placeholderNode stands in for the node of a delegation that is not on chain
// yet.
func placeholderNode(nodeID uint32) *Node {
	return &Node{
		NodeID:       nodeID,
		Name:         types.MissingValue,
		IdentityKey:  types.MissingValue,
		TotalStake:   "0",
		ProfitMargin: "0",
		Roles:        []string{},
	}
}

type pairKey struct {
	owner  string
	nodeID uint32
}

// Reconcile returns the committed delegations, each with its node and pending
// event, followed by one placeholder record per node that only has pending
// events. Committed records keep delegation order and placeholder records
// keep event order; nothing else is sorted. lookup may be nil.
func Reconcile(
	delegations []types.Delegation,
	pending []types.PendingEvent,
	lookup NodeLookup,
) []Record {
	// first pending event per (owner, node) pair
	pendingByPair := make(map[pairKey]*types.PendingEvent, len(pending))
	for i := range pending {
		key := pairKey{owner: pending[i].Owner, nodeID: pending[i].NodeID}
		if _, ok := pendingByPair[key]; !ok {
			pendingByPair[key] = &pending[i]
		}
	}

	records := make([]Record, 0, len(delegations)+len(pending))
	committed := make(map[pairKey]struct{}, len(delegations))

	for _, d := range delegations {
		key := pairKey{owner: d.Owner, nodeID: d.NodeID}
		committed[key] = struct{}{}

		var node *Node
		if lookup != nil {
			if n, ok := lookup.LookupNode(d.NodeID); ok {
				node = n
			}
		}

		var event *types.PendingEvent
		if e, ok := pendingByPair[key]; ok {
			ev := *e
			event = &ev
		}

		records = append(records, Record{
			NodeID:       d.NodeID,
			Node:         node,
			Delegation:   d,
			PendingEvent: event,
		})
	}

	synthesized := make(map[uint32]struct{})
	for _, e := range pending {
		if _, ok := committed[pairKey{owner: e.Owner, nodeID: e.NodeID}]; ok {
			continue
		}
		if _, ok := synthesized[e.NodeID]; ok {
			continue
		}
		synthesized[e.NodeID] = struct{}{}

		amount := "0"
		if e.Amount != nil && e.Amount.Amount != "" {
			amount = e.Amount.Amount
		}
		ev := e
		records = append(records, Record{
			NodeID: e.NodeID,
			Node:   placeholderNode(e.NodeID),
			Delegation: types.Delegation{
				Owner:  e.Owner,
				NodeID: e.NodeID,
				Amount: types.NewBaseCoin(amount),
			},
			PendingEvent: &ev,
			Pending:      true,
		})
	}

	return records
}
