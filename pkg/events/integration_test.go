package events

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koreview/revu/pkg/services"
	testdb "github.com/koreview/revu/test/database"
)

// recordingBroadcaster captures broadcast calls per channel.
type recordingBroadcaster struct {
	mu     sync.Mutex
	events map[string][][]byte
}

func newRecordingBroadcaster() *recordingBroadcaster {
	return &recordingBroadcaster{events: map[string][][]byte{}}
}

func (b *recordingBroadcaster) Broadcast(channel string, event []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events[channel] = append(b.events[channel], event)
}

func (b *recordingBroadcaster) on(channel string) [][]byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.events[channel]
}

func TestEventPublisher_PersistsAndBroadcasts(t *testing.T) {
	client := testdb.NewTestClient(t)
	broadcaster := newRecordingBroadcaster()
	publisher := NewEventPublisher(client.DB(), broadcaster)
	eventService := services.NewEventService(client.Client)
	ctx := context.Background()

	err := publisher.PublishStageStatus(ctx, 42, StageStatusPayload{
		Agent:   "BP_Scouter",
		Status:  StageStatusProcessing,
		Message: "BP 사례 검색을 시작합니다",
	})
	require.NoError(t, err)

	// Stored for catchup.
	stored, err := eventService.GetEventsSince(ctx, JobChannel(42), 0, 0)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, EventTypeStageStatus, stored[0].Payload["type"])

	// Broadcast carries the db_event_id of the stored row.
	broadcasts := broadcaster.on(JobChannel(42))
	require.Len(t, broadcasts, 1)
	var got map[string]any
	require.NoError(t, json.Unmarshal(broadcasts[0], &got))
	assert.Equal(t, EventTypeStageStatus, got["type"])
	assert.Equal(t, float64(42), got["job_id"])
	assert.Equal(t, float64(stored[0].ID), got["db_event_id"])
}

func TestEventPublisher_TerminalEventsReachGlobalChannel(t *testing.T) {
	client := testdb.NewTestClient(t)
	broadcaster := newRecordingBroadcaster()
	publisher := NewEventPublisher(client.DB(), broadcaster)
	eventService := services.NewEventService(client.Client)
	ctx := context.Background()

	err := publisher.PublishCompleted(ctx, 7, CompletedPayload{
		Decision: "approved",
		Report:   "<h1>보고서</h1>",
	})
	require.NoError(t, err)

	assert.Len(t, broadcaster.on(JobChannel(7)), 1)
	assert.Len(t, broadcaster.on(GlobalJobsChannel), 1)

	// The global copy is transient: only the job channel row is stored.
	jobRows, err := eventService.GetEventsSince(ctx, JobChannel(7), 0, 0)
	require.NoError(t, err)
	assert.Len(t, jobRows, 1)
	globalRows, err := eventService.GetEventsSince(ctx, GlobalJobsChannel, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, globalRows)
}

func TestEventServiceAdapter_Catchup(t *testing.T) {
	client := testdb.NewTestClient(t)
	publisher := NewEventPublisher(client.DB(), nil)
	adapter := NewEventServiceAdapter(services.NewEventService(client.Client))
	ctx := context.Background()

	require.NoError(t, publisher.PublishPageProgress(ctx, 9, PageProgressPayload{
		Current: 1, Total: 1, Status: "processing",
	}))
	require.NoError(t, publisher.PublishStageStatus(ctx, 9, StageStatusPayload{
		Agent: "BP_Scouter", Status: StageStatusCompleted,
	}))

	all, err := adapter.GetCatchupEvents(ctx, JobChannel(9), 0, 100)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Less(t, all[0].ID, all[1].ID)
	assert.Equal(t, EventTypePageProgress, all[0].Payload["type"])

	// Resuming from the first event replays only what followed it.
	rest, err := adapter.GetCatchupEvents(ctx, JobChannel(9), all[0].ID, 100)
	require.NoError(t, err)
	require.Len(t, rest, 1)
	assert.Equal(t, EventTypeStageStatus, rest[0].Payload["type"])
}
