package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koreview/revu/ent"
	testdb "github.com/koreview/revu/test/database"
)

func insertEvent(t *testing.T, client *ent.Client, channel, eventType string) *ent.Event {
	t.Helper()
	ev, err := client.Event.Create().
		SetChannel(channel).
		SetPayload(map[string]interface{}{"type": eventType}).
		Save(context.Background())
	require.NoError(t, err)
	return ev
}

func TestEventService_GetEventsSince(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewEventService(client.Client)
	ctx := context.Background()

	first := insertEvent(t, client.Client, "job:1", "stage_status")
	second := insertEvent(t, client.Client, "job:1", "bp_cases")
	insertEvent(t, client.Client, "job:2", "stage_status")

	t.Run("returns events after the given id in insertion order", func(t *testing.T) {
		events, err := svc.GetEventsSince(ctx, "job:1", 0, 0)
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, first.ID, events[0].ID)
		assert.Equal(t, second.ID, events[1].ID)

		events, err = svc.GetEventsSince(ctx, "job:1", first.ID, 0)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, second.ID, events[0].ID)
		assert.Equal(t, "bp_cases", events[0].Payload["type"])
	})

	t.Run("respects the limit", func(t *testing.T) {
		events, err := svc.GetEventsSince(ctx, "job:1", 0, 1)
		require.NoError(t, err)
		assert.Len(t, events, 1)
	})

	t.Run("other channels are invisible", func(t *testing.T) {
		events, err := svc.GetEventsSince(ctx, "job:3", 0, 0)
		require.NoError(t, err)
		assert.Empty(t, events)
	})
}

func TestEventService_CleanupChannelEvents(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewEventService(client.Client)
	ctx := context.Background()

	insertEvent(t, client.Client, "job:1", "stage_status")
	insertEvent(t, client.Client, "job:1", "completed")
	insertEvent(t, client.Client, "job:2", "stage_status")

	deleted, err := svc.CleanupChannelEvents(ctx, "job:1")
	require.NoError(t, err)
	assert.Equal(t, 2, deleted)

	remaining, err := svc.GetEventsSince(ctx, "job:2", 0, 0)
	require.NoError(t, err)
	assert.Len(t, remaining, 1)
}

func TestEventService_CleanupOldEvents(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewEventService(client.Client)
	ctx := context.Background()

	old, err := client.Event.Create().
		SetChannel("job:1").
		SetPayload(map[string]interface{}{"type": "stage_status"}).
		SetCreatedAt(time.Now().Add(-48 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)
	fresh := insertEvent(t, client.Client, "job:1", "completed")

	deleted, err := svc.CleanupOldEvents(ctx, 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)

	remaining, err := svc.GetEventsSince(ctx, "job:1", 0, 0)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, fresh.ID, remaining[0].ID)
	assert.NotEqual(t, old.ID, remaining[0].ID)
}
