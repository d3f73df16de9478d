package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/koreview/revu/ent/reviewjob"
	"github.com/koreview/revu/pkg/models"
)

// orphanState tracks orphan scan metrics (thread-safe).
type orphanState struct {
	mu       sync.Mutex
	lastScan time.Time
	requeued int
}

// runOrphanScan periodically re-queues jobs abandoned by a crashed process.
// All pods run this independently; the operation is idempotent.
func (p *WorkerPool) runOrphanScan(ctx context.Context) {
	ticker := time.NewTicker(p.config.OrphanScanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.requeueOrphans(ctx); err != nil {
				slog.Error("Orphan scan failed", "error", err)
			}
		}
	}
}

// requeueOrphans finds claimed jobs whose row has not been touched within
// the orphan threshold and resets them to pending. A live job always
// persists stage results well inside the threshold, so a stale updated_at
// means the owning process died mid-review. Re-queued jobs restart from
// the first stage; stage results in metadata are simply overwritten.
func (p *WorkerPool) requeueOrphans(ctx context.Context) error {
	threshold := time.Now().Add(-p.config.OrphanThreshold)

	orphans, err := p.client.ReviewJob.Query().
		Where(
			reviewjob.StatusNotIn(
				models.StatusPending,
				models.StatusCompleted,
				models.StatusError,
			),
			reviewjob.UpdatedAtLT(threshold),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query orphaned jobs: %w", err)
	}

	if len(orphans) == 0 {
		p.orphans.mu.Lock()
		p.orphans.lastScan = time.Now()
		p.orphans.mu.Unlock()
		return nil
	}

	slog.Warn("Detected orphaned jobs", "count", len(orphans))

	requeued := 0
	for _, job := range orphans {
		// Skip jobs still registered on this pod: they are alive, just quiet.
		if p.isActiveHere(job.ID) {
			continue
		}
		err := job.Update().
			SetStatus(models.StatusPending).
			Exec(ctx)
		if err != nil {
			slog.Error("Failed to re-queue orphaned job",
				"job_id", job.ID,
				"error", err)
			continue
		}
		slog.Warn("Orphaned job re-queued",
			"job_id", job.ID,
			"stale_since", job.UpdatedAt.Format(time.RFC3339))
		requeued++
	}

	p.orphans.mu.Lock()
	p.orphans.lastScan = time.Now()
	p.orphans.requeued += requeued
	p.orphans.mu.Unlock()

	return nil
}

func (p *WorkerPool) isActiveHere(jobID int) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	_, ok := p.activeJobs[jobID]
	return ok
}
