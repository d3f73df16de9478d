package services

import (
	"context"
	"fmt"
	"time"

	"github.com/koreview/revu/ent"
	"github.com/koreview/revu/ent/event"
)

// EventService manages the persisted progress event log backing WebSocket
// catchup. Event creation happens in pkg/events at publish time; this
// service covers reads and retention.
type EventService struct {
	client *ent.Client
}

// NewEventService creates a new EventService.
func NewEventService(client *ent.Client) *EventService {
	return &EventService{client: client}
}

// GetEventsSince retrieves events on a channel with id greater than sinceID,
// oldest first. limit <= 0 means no limit.
func (s *EventService) GetEventsSince(ctx context.Context, channel string, sinceID, limit int) ([]*ent.Event, error) {
	query := s.client.Event.Query().
		Where(
			event.ChannelEQ(channel),
			event.IDGT(sinceID),
		).
		Order(ent.Asc(event.FieldID))
	if limit > 0 {
		query = query.Limit(limit)
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}
	return events, nil
}

// CleanupChannelEvents removes all events for a channel. Called after a
// grace period once a job reaches a terminal status.
func (s *EventService) CleanupChannelEvents(ctx context.Context, channel string) (int, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := s.client.Event.Delete().
		Where(event.ChannelEQ(channel)).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup channel events: %w", err)
	}
	return count, nil
}

// CleanupOldEvents removes events older than the TTL, regardless of channel.
func (s *EventService) CleanupOldEvents(ctx context.Context, ttl time.Duration) (int, error) {
	cutoff := time.Now().Add(-ttl)

	writeCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.client.Event.Delete().
		Where(event.CreatedAtLT(cutoff)).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup old events: %w", err)
	}
	return count, nil
}
