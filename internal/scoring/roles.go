package scoring

import (
	"github.com/nymtech/nym-explorer-indexer/internal/types"
)

// ActiveRoles returns the roles flagged in the descriptor, in declaration
// order.
func ActiveRoles(d types.DeclaredRoles) []types.Role {
	var roles []types.Role
	for _, r := range types.AllRoles() {
		if d.Has(r) {
			roles = append(roles, r)
		}
	}
	return roles
}

// RoleLabels returns the display labels of the active roles.
func RoleLabels(d types.DeclaredRoles) []string {
	roles := ActiveRoles(d)
	labels := make([]string, 0, len(roles))
	for _, r := range roles {
		labels = append(labels, r.Label())
	}
	return labels
}

// HasGatewayRole reports whether gateway scores apply to the node. Nodes
// without a gateway role must not be looked up in the status api.
func HasGatewayRole(d types.DeclaredRoles) bool {
	for _, r := range ActiveRoles(d) {
		if r.IsGateway() {
			return true
		}
	}
	return false
}
