package types

import (
	"fmt"

	sdkmath "cosmossdk.io/math"
)

// Role is a function a node can be declared for.
type Role int

const (
	RoleMixnode Role = iota
	RoleEntry
	RoleExitNR
	RoleExitIPR

	numRoles
)

// roleLabels is indexed by Role; its length is fixed by numRoles so adding a
// role without a label leaves an empty string that TestRoleLabels catches.
var roleLabels = [numRoles]string{
	RoleMixnode: "Mix Node",
	RoleEntry:   "Entry Node",
	RoleExitNR:  "Exit NR Node",
	RoleExitIPR: "Exit IPR Node",
}

// AllRoles returns every role in declaration order.
func AllRoles() []Role {
	roles := make([]Role, 0, numRoles)
	for r := Role(0); r < numRoles; r++ {
		roles = append(roles, r)
	}
	return roles
}

func (r Role) Label() string {
	if r < 0 || r >= numRoles {
		return MissingValue
	}
	return roleLabels[r]
}

func (r Role) String() string {
	return r.Label()
}

// IsGateway reports whether the role serves client traffic as a gateway.
func (r Role) IsGateway() bool {
	return r == RoleEntry || r == RoleExitNR || r == RoleExitIPR
}

// DeclaredRoles are the role flags a node announces in its descriptor.
type DeclaredRoles struct {
	Mixnode bool `json:"mixnode" bson:"mixnode"`
	Entry   bool `json:"entry" bson:"entry"`
	ExitNR  bool `json:"exit_nr" bson:"exit_nr"`
	ExitIPR bool `json:"exit_ipr" bson:"exit_ipr"`
}

func (d DeclaredRoles) Has(r Role) bool {
	switch r {
	case RoleMixnode:
		return d.Mixnode
	case RoleEntry:
		return d.Entry
	case RoleExitNR:
		return d.ExitNR
	case RoleExitIPR:
		return d.ExitIPR
	}
	return false
}

type BuildInformation struct {
	BuildTimestamp string `json:"build_timestamp"`
	BuildVersion   string `json:"build_version"`
}

// NodeDescription is the operator supplied self description of a node.
type NodeDescription struct {
	Moniker string `json:"moniker"`
	Website string `json:"website"`
	Details string `json:"details"`
}

type Location struct {
	CountryCode string `json:"two_letter_iso_country_code"`
	CountryName string `json:"country_name"`
}

// NodeDescriptor is a node as listed by the directory api. It is never
// mutated after decode; each poll replaces the whole list.
type NodeDescriptor struct {
	NodeID           uint32            `json:"node_id"`
	IdentityKey      string            `json:"identity_key"`
	DeclaredRoles    DeclaredRoles     `json:"declared_role"`
	BuildInformation BuildInformation  `json:"build_information"`
	Description      *NodeDescription  `json:"description,omitempty"`
	Host             string            `json:"host"`
	IPAddresses      []string          `json:"ip_addresses"`
	Location         *Location         `json:"location,omitempty"`
	Uptime           float64           `json:"uptime"`
	Rewarding        *RewardingDetails `json:"rewarding_details,omitempty"`
}

// NodeList is one page of the node directory.
type NodeList struct {
	Nodes []NodeDescriptor
	// Total is the directory size reported upstream, zero when unreported.
	Total int
}

// Truncated reports whether the directory holds more nodes than the page.
func (l *NodeList) Truncated() bool {
	return l.Total > len(l.Nodes)
}

// RewardingDetails holds the bonding and cost parameters of a node. Integer
// amounts are in the base denom.
type RewardingDetails struct {
	OperatorReward        string `json:"operator_reward"`
	ProfitMarginPercent   string `json:"profit_margin_percent"`
	IntervalOperatingCost Coin   `json:"interval_operating_cost"`
	UniqueDelegations     uint64 `json:"unique_delegations"`
	TotalStake            string `json:"total_stake"`
}

// Validate checks the profit margin is a decimal in [0,1].
func (r *RewardingDetails) Validate() error {
	pm, err := sdkmath.LegacyNewDecFromStr(r.ProfitMarginPercent)
	if err != nil {
		return NewInvalidParameterError("profit_margin_percent", r.ProfitMarginPercent, "not a decimal")
	}
	if pm.IsNegative() || pm.GT(sdkmath.LegacyOneDec()) {
		return NewInvalidParameterError(
			"profit_margin_percent", r.ProfitMarginPercent, fmt.Sprintf("%s is outside [0,1]", pm),
		)
	}
	return nil
}

// EpochParams are the network wide interval parameters.
type EpochParams struct {
	CurrentEpochStart    string `json:"current_epoch_start" bson:"current_epoch_start"`
	EpochLengthSeconds   uint64 `json:"epoch_length_seconds" bson:"epoch_length_seconds"`
	StakeSaturationPoint string `json:"stake_saturation_point" bson:"stake_saturation_point"`
}

// MissingValue is the canonical rendering of absent data.
const MissingValue = "-"
