package metrics

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordPollerDuration(t *testing.T) {
	const typ = "test_poller"

	failing := RecordPollerDuration(typ, func(context.Context) error {
		return errors.New("upstream down")
	})
	require.Error(t, failing(context.Background()))
	assert.Zero(t, testutil.ToFloat64(pollerLastSuccessGauge.WithLabelValues(typ)))

	ok := RecordPollerDuration(typ, func(context.Context) error { return nil })
	require.NoError(t, ok(context.Background()))
	assert.Positive(t, testutil.ToFloat64(pollerLastSuccessGauge.WithLabelValues(typ)))

	assert.Equal(t, 2, testutil.CollectAndCount(pollerDurationHistogram, "poller_duration_seconds"))
}
