package feedback

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInbox_PublishThenAwait(t *testing.T) {
	in := NewInbox()
	in.Publish(1, Feedback{Text: "add a cost estimate"})

	fb, err := in.Await(context.Background(), 1, time.Second)
	require.NoError(t, err)
	assert.Equal(t, "add a cost estimate", fb.Text)
	assert.False(t, fb.Skip)
}

func TestInbox_AwaitTimeoutIsSkip(t *testing.T) {
	in := NewInbox()

	fb, err := in.Await(context.Background(), 1, 10*time.Millisecond)
	require.NoError(t, err)
	assert.True(t, fb.Skip)
}

func TestInbox_LastWriterWins(t *testing.T) {
	in := NewInbox()
	in.Publish(1, Feedback{Text: "first"})
	in.Publish(1, Feedback{Text: "second"})

	fb, err := in.Await(context.Background(), 1, time.Second)
	require.NoError(t, err)
	assert.Equal(t, "second", fb.Text)
}

func TestInbox_ResetDiscardsPending(t *testing.T) {
	in := NewInbox()
	in.Publish(1, Feedback{Text: "stale"})
	in.Reset(1)

	fb, err := in.Await(context.Background(), 1, 10*time.Millisecond)
	require.NoError(t, err)
	assert.True(t, fb.Skip, "stale feedback must not satisfy a new checkpoint")
}

func TestInbox_JobsAreIsolated(t *testing.T) {
	in := NewInbox()
	in.Publish(1, Feedback{Text: "for job one"})

	fb, err := in.Await(context.Background(), 2, 10*time.Millisecond)
	require.NoError(t, err)
	assert.True(t, fb.Skip)

	fb, err = in.Await(context.Background(), 1, time.Second)
	require.NoError(t, err)
	assert.Equal(t, "for job one", fb.Text)
}

func TestInbox_AwaitUnblocksOnPublish(t *testing.T) {
	in := NewInbox()

	done := make(chan Feedback, 1)
	go func() {
		fb, _ := in.Await(context.Background(), 7, 5*time.Second)
		done <- fb
	}()

	// Give the waiter a moment to park before publishing.
	time.Sleep(20 * time.Millisecond)
	in.Publish(7, Feedback{Skip: true})

	select {
	case fb := <-done:
		assert.True(t, fb.Skip)
	case <-time.After(2 * time.Second):
		t.Fatal("Await did not unblock on Publish")
	}
}

func TestInbox_AwaitCancelled(t *testing.T) {
	in := NewInbox()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := in.Await(ctx, 1, time.Second)
	assert.ErrorIs(t, err, context.Canceled)
}
