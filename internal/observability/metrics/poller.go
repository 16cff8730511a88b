package metrics

import (
	"context"
	"time"
)

type pollFunc = func(ctx context.Context) error

// RecordPollerDuration wraps a poll method so every run is observed in the
// poller duration histogram under typ. Successful runs also move the last
// success timestamp, which is what staleness alerts watch.
func RecordPollerDuration(typ string, f pollFunc) pollFunc {
	return func(ctx context.Context) error {
		start := time.Now()
		err := f(ctx)

		outcome := Success
		if err != nil {
			outcome = Error
		} else {
			pollerLastSuccessGauge.WithLabelValues(typ).Set(float64(time.Now().Unix()))
		}
		pollerDurationHistogram.WithLabelValues(typ, outcome.String()).Observe(time.Since(start).Seconds())

		return err
	}
}
