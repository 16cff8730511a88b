package poller

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Poller runs a poll method on a fixed interval. Runs never overlap: a run
// that outlasts the interval delays the next tick.
type Poller struct {
	name       string
	interval   time.Duration
	quit       chan struct{}
	pollMethod func(ctx context.Context) error
	runOnStart bool
}

func NewPoller(name string, interval time.Duration, pollMethod func(ctx context.Context) error) *Poller {
	return &Poller{
		name:       name,
		interval:   interval,
		quit:       make(chan struct{}),
		pollMethod: pollMethod,
	}
}

// RunOnStart makes Start poll immediately instead of after the first interval.
func (p *Poller) RunOnStart() *Poller {
	p.runOnStart = true
	return p
}

// Start blocks until ctx is cancelled or Stop is called.
func (p *Poller) Start(ctx context.Context) {
	logger := log.With().Str("poller", p.name).Logger()
	ctx = logger.WithContext(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	logger.Info().Dur("interval", p.interval).Msg("Starting poller")

	if p.runOnStart {
		p.poll(ctx, logger)
	}

	for {
		select {
		case <-ticker.C:
			p.poll(ctx, logger)
		case <-ctx.Done():
			logger.Info().Msg("Poller stopped due to context cancellation")
			return
		case <-p.quit:
			logger.Info().Msg("Poller stopped")
			return
		}
	}
}

func (p *Poller) poll(ctx context.Context, logger zerolog.Logger) {
	start := time.Now()
	if err := p.pollMethod(ctx); err != nil {
		logger.Error().Err(err).Dur("took", time.Since(start)).Msg("Error polling")
		return
	}
	logger.Debug().Dur("took", time.Since(start)).Msg("Poll method executed successfully")
}

func (p *Poller) Stop() {
	close(p.quit)
}
