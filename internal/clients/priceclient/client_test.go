package priceclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nymtech/nym-explorer-indexer/internal/config"
	"github.com/nymtech/nym-explorer-indexer/internal/types"
)

func newTestClient(t *testing.T, body string, status int) *Client {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/simple/price", r.URL.Path)
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	return NewClient(&config.PriceConfig{URL: server.URL, Timeout: 2 * time.Second})
}

func TestGetUSDPrice(t *testing.T) {
	c := newTestClient(t, `{"nym": {"usd": 0.0521}}`, http.StatusOK)

	price, err := c.GetUSDPrice(context.Background())
	require.NoError(t, err)
	assert.True(t, sdkmath.LegacyNewDecWithPrec(521, 4).Equal(price), price.String())
}

func TestGetUSDPrice_Failures(t *testing.T) {
	testCases := []struct {
		name   string
		body   string
		status int
	}{
		{"missing quote", `{"nym": {}}`, http.StatusOK},
		{"negative quote", `{"nym": {"usd": -1}}`, http.StatusOK},
		{"malformed", `not json`, http.StatusOK},
		{"upstream error", `{}`, http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestClient(t, tc.body, tc.status)
			_, err := c.GetUSDPrice(context.Background())
			require.Error(t, err)
			assert.True(t, types.IsFetchFailure(err))
		})
	}
}

func TestGetUSDPrice_NotConfigured(t *testing.T) {
	c := NewClient(nil)
	require.Nil(t, c)

	_, err := c.GetUSDPrice(context.Background())
	require.Error(t, err)
}
