package types

// EntryProbe is the outcome of probing a gateway in its entry role.
type EntryProbe struct {
	CanConnect bool `json:"can_connect" bson:"can_connect"`
	CanRoute   bool `json:"can_route" bson:"can_route"`
}

// ExitProbe is the outcome of probing a gateway in its exit role.
type ExitProbe struct {
	CanConnect           bool `json:"can_connect" bson:"can_connect"`
	CanRouteIPV4         bool `json:"can_route_ip_v4" bson:"can_route_ip_v4"`
	CanRouteIPV6         bool `json:"can_route_ip_v6" bson:"can_route_ip_v6"`
	CanRouteIPExternalV4 bool `json:"can_route_ip_external_v4" bson:"can_route_ip_external_v4"`
	CanRouteIPExternalV6 bool `json:"can_route_ip_external_v6" bson:"can_route_ip_external_v6"`
}

// WgProbe is the outcome of the wireguard checks. Ping performances are
// fractions in [0,1].
type WgProbe struct {
	CanRegister            bool    `json:"can_register" bson:"can_register"`
	CanHandshakeV4         bool    `json:"can_handshake_v4" bson:"can_handshake_v4"`
	CanHandshakeV6         bool    `json:"can_handshake_v6" bson:"can_handshake_v6"`
	CanResolveDNSV4        bool    `json:"can_resolve_dns_v4" bson:"can_resolve_dns_v4"`
	CanResolveDNSV6        bool    `json:"can_resolve_dns_v6" bson:"can_resolve_dns_v6"`
	PingHostsPerformanceV4 float64 `json:"ping_hosts_performance_v4" bson:"ping_hosts_performance_v4"`
	PingHostsPerformanceV6 float64 `json:"ping_hosts_performance_v6" bson:"ping_hosts_performance_v6"`
	PingIPsPerformanceV4   float64 `json:"ping_ips_performance_v4" bson:"ping_ips_performance_v4"`
	PingIPsPerformanceV6   float64 `json:"ping_ips_performance_v6" bson:"ping_ips_performance_v6"`
}

// ProbeResult is the last probe outcome of a gateway. A nil sub-object means
// the node does not support that role.
type ProbeResult struct {
	AsEntry *EntryProbe `json:"as_entry,omitempty" bson:"as_entry,omitempty"`
	AsExit  *ExitProbe  `json:"as_exit,omitempty" bson:"as_exit,omitempty"`
	Wg      *WgProbe    `json:"wg,omitempty" bson:"wg,omitempty"`
}

// GatewayStatus is the health record the status api keeps for a gateway.
type GatewayStatus struct {
	IdentityKey     string       `json:"identity_key"`
	Performance     float64      `json:"performance"`
	LastProbeResult *ProbeResult `json:"last_probe_result,omitempty"`
}
