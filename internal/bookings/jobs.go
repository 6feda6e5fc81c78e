package bookings

import (
	"context"
	"time"

	"tripbook/pkg/logger"
)

// JobProcessor drives the booking lifecycle sweeps that no request
// handler triggers: expiring stale pending holds and completing
// confirmed bookings whose travel date has passed.
type JobProcessor struct {
	service Service
	config  *JobConfig
	log     *logger.Logger
	done    chan struct{}
}

// JobConfig contains configuration for background sweeps
type JobConfig struct {
	SweepInterval time.Duration
}

// DefaultJobConfig returns default job configuration
func DefaultJobConfig() *JobConfig {
	return &JobConfig{
		SweepInterval: 5 * time.Minute,
	}
}

// NewJobProcessor creates a new job processor
func NewJobProcessor(service Service, config *JobConfig) *JobProcessor {
	if config == nil {
		config = DefaultJobConfig()
	}

	return &JobProcessor{
		service: service,
		config:  config,
		log:     logger.GetDefault(),
		done:    make(chan struct{}),
	}
}

// Start starts the background sweeps
func (jp *JobProcessor) Start(ctx context.Context) {
	jp.log.Info("starting booking lifecycle sweeps", "interval", jp.config.SweepInterval.String())
	go jp.run(ctx)
}

// Stop stops the background sweeps
func (jp *JobProcessor) Stop() {
	close(jp.done)
	jp.log.Info("booking lifecycle sweeps stopped")
}

func (jp *JobProcessor) run(ctx context.Context) {
	ticker := time.NewTicker(jp.config.SweepInterval)
	defer ticker.Stop()

	// Run once on startup so a restart does not delay overdue sweeps.
	jp.sweep(ctx)

	for {
		select {
		case <-ticker.C:
			jp.sweep(ctx)
		case <-jp.done:
			return
		case <-ctx.Done():
			return
		}
	}
}

func (jp *JobProcessor) sweep(ctx context.Context) {
	now := time.Now().UTC()

	if _, err := jp.service.ExpirePendingBookings(ctx, now); err != nil {
		jp.log.WithError(err).Error("pending-booking expiry sweep failed")
	}

	if _, err := jp.service.CompleteElapsedBookings(ctx, now); err != nil {
		jp.log.WithError(err).Error("completion sweep failed")
	}
}
