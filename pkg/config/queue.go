package config

import "time"

// QueueConfig contains queue and worker pool configuration.
// These values control how review jobs are polled, claimed, and processed.
type QueueConfig struct {
	// WorkerCount is the number of worker goroutines.
	// Each worker independently polls and processes jobs.
	WorkerCount int

	// MaxConcurrentJobs is the limit of jobs being processed at once.
	// Enforced by database COUNT(*) check before claiming.
	MaxConcurrentJobs int

	// PollInterval is the base interval for checking pending jobs.
	PollInterval time.Duration

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration

	// JobTimeout is the maximum time a job can be processed. The feedback
	// wait is part of processing, so this must exceed FeedbackTimeout by a
	// comfortable margin.
	JobTimeout time.Duration

	// GracefulShutdownTimeout is the max time to wait for active jobs
	// to complete during shutdown.
	GracefulShutdownTimeout time.Duration

	// OrphanScanInterval is how often the pool scans for jobs abandoned
	// by a crashed process.
	OrphanScanInterval time.Duration

	// OrphanThreshold is how stale a claimed job's updated_at must be
	// before it is considered abandoned and re-queued. Must exceed
	// JobTimeout: a live job always touches the row more often than this.
	OrphanThreshold time.Duration
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		WorkerCount:             3,
		MaxConcurrentJobs:       3,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		JobTimeout:              2 * time.Hour,
		GracefulShutdownTimeout: 30 * time.Second,
		OrphanScanInterval:      5 * time.Minute,
		OrphanThreshold:         3 * time.Hour,
	}
}
