package nodestatus

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nymtech/nym-explorer-indexer/internal/config"
	"github.com/nymtech/nym-explorer-indexer/internal/types"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(&config.NodeStatusConfig{
		URL:            server.URL,
		Timeout:        2 * time.Second,
		MaxRetryTimes:  1,
		RetryInterval:  10 * time.Millisecond,
		MaxConcurrency: 1,
	})
}

func TestGetGatewayStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/gateways/gw1", r.URL.Path)
		w.Write([]byte(`{
			"gateway_identity_key": "gw1",
			"performance": 0.93,
			"last_probe_result": {
				"outcome": {
					"as_entry": {"can_connect": true, "can_route": true},
					"as_exit": {
						"can_connect": true,
						"can_route_ip_v4": true,
						"can_route_ip_v6": false,
						"can_route_ip_external_v4": true,
						"can_route_ip_external_v6": false
					},
					"wg": {
						"can_register": true,
						"can_handshake_v4": true,
						"ping_hosts_performance_v4": 0.8,
						"ping_ips_performance_v4": 1
					}
				}
			}
		}`))
	})

	status, err := c.GetGatewayStatus(context.Background(), "gw1")
	require.NoError(t, err)
	require.NotNil(t, status)
	assert.Equal(t, "gw1", status.IdentityKey)
	assert.InDelta(t, 0.93, status.Performance, 1e-9)

	probe := status.LastProbeResult
	require.NotNil(t, probe)
	require.NotNil(t, probe.AsEntry)
	assert.True(t, probe.AsEntry.CanRoute)
	require.NotNil(t, probe.AsExit)
	assert.True(t, probe.AsExit.CanRouteIPExternalV4)
	assert.False(t, probe.AsExit.CanRouteIPV6)
	require.NotNil(t, probe.Wg)
	assert.InDelta(t, 0.8, probe.Wg.PingHostsPerformanceV4, 1e-9)
}

func TestGetGatewayStatus_NeverProbed(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	status, err := c.GetGatewayStatus(context.Background(), "gw1")
	require.NoError(t, err)
	assert.Nil(t, status)
}

func TestGetGatewayStatus_WithoutProbeResult(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"performance": 0.5}`))
	})

	status, err := c.GetGatewayStatus(context.Background(), "gw1")
	require.NoError(t, err)
	require.NotNil(t, status)
	assert.Equal(t, "gw1", status.IdentityKey)
	assert.Nil(t, status.LastProbeResult)
}

func TestGetGatewayStatus_Errors(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := c.GetGatewayStatus(context.Background(), "gw1")
	require.Error(t, err)
	assert.True(t, types.IsFetchFailure(err))

	_, err = c.GetGatewayStatus(context.Background(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty identity key")
}
