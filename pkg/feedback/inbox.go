// Package feedback routes user responses to suspended review pipelines.
//
// When a stage reaches a feedback checkpoint the pipeline goroutine parks on
// Await. The HTTP feedback endpoint calls Publish from a different goroutine.
// The Inbox is the in-process rendezvous between the two.
package feedback

import (
	"context"
	"sync"
	"time"
)

// Feedback is a single user response to a checkpoint.
type Feedback struct {
	// Text is the user's revision instruction. Empty text with Skip false
	// still counts as an acceptance of the stage result.
	Text string

	// Skip accepts the current stage result and moves the pipeline on.
	Skip bool
}

// Inbox holds at most one pending feedback per job. A second Publish before
// the pipeline consumes the first replaces it (last writer wins).
type Inbox struct {
	mu    sync.Mutex
	slots map[int]chan Feedback
}

// NewInbox creates an empty Inbox.
func NewInbox() *Inbox {
	return &Inbox{slots: make(map[int]chan Feedback)}
}

// slot returns the job's channel, creating it on first use.
// Capacity 1 lets Publish complete before the pipeline reaches Await.
func (in *Inbox) slot(jobID int) chan Feedback {
	in.mu.Lock()
	defer in.mu.Unlock()
	ch, ok := in.slots[jobID]
	if !ok {
		ch = make(chan Feedback, 1)
		in.slots[jobID] = ch
	}
	return ch
}

// Reset discards any feedback left over from a previous checkpoint.
// The pipeline calls this before emitting an interrupt so stale responses
// never satisfy a new checkpoint.
func (in *Inbox) Reset(jobID int) {
	ch := in.slot(jobID)
	select {
	case <-ch:
	default:
	}
}

// Publish delivers feedback for a job's pending checkpoint. If an undelivered
// feedback is already queued it is replaced.
func (in *Inbox) Publish(jobID int, fb Feedback) {
	ch := in.slot(jobID)
	for {
		select {
		case ch <- fb:
			return
		default:
		}
		// Slot full: drop the stale value and retry.
		select {
		case <-ch:
		default:
		}
	}
}

// Await blocks until feedback arrives, the timeout elapses, or ctx is
// cancelled. Timeout is reported as a skip so the pipeline proceeds with the
// current stage result.
func (in *Inbox) Await(ctx context.Context, jobID int, timeout time.Duration) (Feedback, error) {
	ch := in.slot(jobID)
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case fb := <-ch:
		return fb, nil
	case <-timer.C:
		return Feedback{Skip: true}, nil
	case <-ctx.Done():
		return Feedback{}, ctx.Err()
	}
}

// Drop removes a job's slot entirely. Called when a job reaches a terminal
// state so the map doesn't grow without bound.
func (in *Inbox) Drop(jobID int) {
	in.mu.Lock()
	defer in.mu.Unlock()
	delete(in.slots, jobID)
}
