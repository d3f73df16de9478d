package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"
)

// Broadcaster delivers a marshaled event to every subscriber of a channel.
// Implemented by ConnectionManager.
type Broadcaster interface {
	Broadcast(channel string, event []byte)
}

// EventPublisher publishes progress events for WebSocket delivery.
// Each event is stored in the events table, then broadcast in-process to
// subscribed connections. Storage makes catchup possible; broadcast failures
// never fail the pipeline.
//
// Each public method accepts a specific typed payload struct; see payloads.go.
type EventPublisher struct {
	db          *sql.DB
	broadcaster Broadcaster
}

// NewEventPublisher creates a new EventPublisher.
// The db parameter should be the *sql.DB from database.Client.DB().
func NewEventPublisher(db *sql.DB, broadcaster Broadcaster) *EventPublisher {
	return &EventPublisher{db: db, broadcaster: broadcaster}
}

// --- Typed public methods ---

// PublishPageProgress persists and broadcasts a page_progress event.
func (p *EventPublisher) PublishPageProgress(ctx context.Context, jobID int, payload PageProgressPayload) error {
	payload.Type = EventTypePageProgress
	payload.JobID = jobID
	return p.publish(ctx, JobChannel(jobID), payload)
}

// PublishStageStatus persists and broadcasts a stage_status event.
func (p *EventPublisher) PublishStageStatus(ctx context.Context, jobID int, payload StageStatusPayload) error {
	payload.Type = EventTypeStageStatus
	payload.JobID = jobID
	return p.publish(ctx, JobChannel(jobID), payload)
}

// PublishBPCases persists and broadcasts a bp_cases event.
func (p *EventPublisher) PublishBPCases(ctx context.Context, jobID int, payload BPCasesPayload) error {
	payload.Type = EventTypeBPCases
	payload.JobID = jobID
	return p.publish(ctx, JobChannel(jobID), payload)
}

// PublishInterrupt persists and broadcasts an interrupt event.
func (p *EventPublisher) PublishInterrupt(ctx context.Context, jobID int, payload InterruptPayload) error {
	payload.Type = EventTypeInterrupt
	payload.JobID = jobID
	return p.publish(ctx, JobChannel(jobID), payload)
}

// PublishPageCompleted persists and broadcasts a page_completed event.
func (p *EventPublisher) PublishPageCompleted(ctx context.Context, jobID int, payload PageCompletedPayload) error {
	payload.Type = EventTypePageCompleted
	payload.JobID = jobID
	return p.publish(ctx, JobChannel(jobID), payload)
}

// PublishCompleted persists a completed event to the job channel and
// broadcasts a transient copy to the global jobs channel for the dashboard.
func (p *EventPublisher) PublishCompleted(ctx context.Context, jobID int, payload CompletedPayload) error {
	payload.Type = EventTypeCompleted
	payload.JobID = jobID
	err := p.publish(ctx, JobChannel(jobID), payload)
	p.broadcastOnly(GlobalJobsChannel, payload)
	return err
}

// PublishError persists an error event to the job channel and broadcasts a
// transient copy to the global jobs channel.
func (p *EventPublisher) PublishError(ctx context.Context, jobID int, payload ErrorPayload) error {
	payload.Type = EventTypeError
	payload.JobID = jobID
	err := p.publish(ctx, JobChannel(jobID), payload)
	p.broadcastOnly(GlobalJobsChannel, payload)
	return err
}

// --- Internal core methods ---

// publish persists a typed payload to the events table, then broadcasts the
// stored payload (enriched with db_event_id for catchup tracking) in-process.
func (p *EventPublisher) publish(ctx context.Context, channel string, payload any) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s payload: %w", channel, err)
	}

	var eventID int64
	err = p.db.QueryRowContext(ctx,
		`INSERT INTO events (channel, payload, created_at) VALUES ($1, $2, $3) RETURNING id`,
		channel, payloadJSON, time.Now(),
	).Scan(&eventID)
	if err != nil {
		return fmt.Errorf("failed to persist event: %w", err)
	}

	enriched, err := injectDBEventID(payloadJSON, eventID)
	if err != nil {
		// Fall back to the raw payload; the client just loses catchup position.
		slog.Warn("Failed to enrich event payload", "channel", channel, "error", err)
		enriched = payloadJSON
	}

	if p.broadcaster != nil {
		p.broadcaster.Broadcast(channel, enriched)
	}
	return nil
}

// broadcastOnly delivers a payload without persisting it.
func (p *EventPublisher) broadcastOnly(channel string, payload any) {
	if p.broadcaster == nil {
		return
	}
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		slog.Warn("Failed to marshal transient event", "channel", channel, "error", err)
		return
	}
	p.broadcaster.Broadcast(channel, payloadJSON)
}

// injectDBEventID adds db_event_id to the JSON payload so clients can track
// their catchup position.
func injectDBEventID(payloadJSON []byte, dbEventID int64) ([]byte, error) {
	var m map[string]any
	if err := json.Unmarshal(payloadJSON, &m); err != nil {
		return nil, fmt.Errorf("failed to unmarshal payload for db_event_id injection: %w", err)
	}
	m["db_event_id"] = dbEventID
	return json.Marshal(m)
}
