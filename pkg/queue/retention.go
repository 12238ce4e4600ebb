package queue

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/exegete-ai/exegete/pkg/config"
	"github.com/exegete-ai/exegete/pkg/services"
)

// RetentionSweeper periodically deletes terminal jobs older than the
// configured retention window. Cascades take the outputs and cache rows.
type RetentionSweeper struct {
	jobs     *services.JobService
	settings config.RetentionSettings

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewRetentionSweeper creates a retention sweeper.
func NewRetentionSweeper(jobs *services.JobService, settings config.RetentionSettings) *RetentionSweeper {
	return &RetentionSweeper{
		jobs:     jobs,
		settings: settings,
		stopCh:   make(chan struct{}),
	}
}

// Start begins the sweep loop in a goroutine. No-op when retention is
// disabled.
func (r *RetentionSweeper) Start(ctx context.Context) {
	if !r.settings.Enabled {
		slog.Info("Retention sweep disabled")
		return
	}
	r.wg.Add(1)
	go r.run(ctx)
}

// Stop signals the sweeper to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (r *RetentionSweeper) Stop() {
	r.stopOnce.Do(func() { close(r.stopCh) })
	r.wg.Wait()
}

func (r *RetentionSweeper) run(ctx context.Context) {
	defer r.wg.Done()

	slog.Info("Retention sweep started",
		"max_age", r.settings.MaxAge, "interval", r.settings.SweepInterval)

	ticker := time.NewTicker(r.settings.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-r.stopCh:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := r.jobs.SweepTerminal(ctx, r.settings.MaxAge); err != nil {
				slog.Error("Retention sweep failed", "error", err)
			}
		}
	}
}
