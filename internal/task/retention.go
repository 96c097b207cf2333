package task

import (
	"context"
	"log/slog"
	"time"
)

const retentionSweepInterval = 1 * time.Minute

// StartRetentionWorker runs a background goroutine that periodically sweeps
// for terminal tasks whose retention window has elapsed and whose delivery is
// settled, and evicts them. A task stays available for polling until both
// conditions hold.
func StartRetentionWorker(ctx context.Context, reg *Registry, retention time.Duration) {
	ticker := time.NewTicker(retentionSweepInterval)
	go func() {
		defer ticker.Stop()
		slog.Info("retention worker started", "interval", retentionSweepInterval, "retention", retention)

		for {
			select {
			case <-ticker.C:
				sweepExpiredTasks(ctx, reg, retention)
			case <-ctx.Done():
				slog.Info("retention worker shutting down", "reason", ctx.Err())
				return
			}
		}
	}()
}

func sweepExpiredTasks(ctx context.Context, reg *Registry, retention time.Duration) {
	cutoff := time.Now().Add(-retention)
	evicted := 0

	for _, t := range reg.Snapshot() {
		if !t.Status.Terminal() || t.TerminalAt == nil {
			continue
		}
		if !t.DeliveryStatus.Settled() {
			continue
		}
		if t.TerminalAt.After(cutoff) {
			continue
		}
		if err := reg.Evict(ctx, t.ID); err != nil {
			slog.Warn("retention worker failed to evict task", "task_id", t.ID, "error", err)
			continue
		}
		evicted++
	}

	if evicted > 0 {
		slog.Info("retention worker evicted tasks", "count", evicted)
	}
}
