package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/avc-dev/shlink-dashboard/internal/mailer"
	"github.com/avc-dev/shlink-dashboard/internal/model"
	"github.com/avc-dev/shlink-dashboard/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newTestQueue(t *testing.T) (*Queue, *store.Store) {
	t.Helper()

	st := store.NewStore()
	q := NewQueue(st, 2, 4, zaptest.NewLogger(t))
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = q.Shutdown(ctx)
	})
	return q, st
}

func waitStatus(t *testing.T, st *store.Store, id string, status model.JobStatus) model.Job {
	t.Helper()

	var job model.Job
	require.Eventually(t, func() bool {
		var err error
		job, err = st.GetJob(context.Background(), id)
		return err == nil && job.Status == status
	}, 2*time.Second, 10*time.Millisecond)
	return job
}

func TestQueue_EnqueueRunsHandler(t *testing.T) {
	q, st := newTestQueue(t)
	ctx := context.Background()

	received := make(chan string, 1)
	q.Register("echo", func(_ context.Context, payload json.RawMessage) error {
		var s string
		if err := json.Unmarshal(payload, &s); err != nil {
			return err
		}
		received <- s
		return nil
	})
	require.NoError(t, q.Start(ctx))

	job, err := q.Enqueue(ctx, "echo", "hello")
	require.NoError(t, err)
	assert.Equal(t, model.JobPending, job.Status)

	select {
	case got := <-received:
		assert.Equal(t, "hello", got)
	case <-time.After(2 * time.Second):
		t.Fatal("handler was not called")
	}

	done := waitStatus(t, st, job.ID, model.JobDone)
	assert.Equal(t, 1, done.Attempts)
	assert.Empty(t, done.LastError)
}

func TestQueue_FailureIsNotRetriedAutomatically(t *testing.T) {
	q, st := newTestQueue(t)
	ctx := context.Background()

	var mu sync.Mutex
	calls := 0
	fail := true
	q.Register("flaky", func(context.Context, json.RawMessage) error {
		mu.Lock()
		defer mu.Unlock()
		calls++
		if fail {
			return errors.New("smtp unavailable")
		}
		return nil
	})
	require.NoError(t, q.Start(ctx))

	job, err := q.Enqueue(ctx, "flaky", map[string]string{"to": "a@example.com"})
	require.NoError(t, err)

	failed := waitStatus(t, st, job.ID, model.JobFailed)
	assert.Equal(t, "smtp unavailable", failed.LastError)

	time.Sleep(50 * time.Millisecond)
	mu.Lock()
	assert.Equal(t, 1, calls)
	fail = false
	mu.Unlock()

	retried, err := q.Retry(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, model.JobPending, retried.Status)

	done := waitStatus(t, st, job.ID, model.JobDone)
	assert.Equal(t, 2, done.Attempts)

	_, err = q.Retry(ctx, job.ID)
	assert.ErrorIs(t, err, ErrJobNotFailed)
	_, err = q.Retry(ctx, "missing")
	assert.ErrorIs(t, err, ErrJobNotFound)
}

func TestQueue_UnknownKindFails(t *testing.T) {
	q, st := newTestQueue(t)
	ctx := context.Background()
	require.NoError(t, q.Start(ctx))

	job, err := q.Enqueue(ctx, "nobody", nil)
	require.NoError(t, err)

	failed := waitStatus(t, st, job.ID, model.JobFailed)
	assert.Contains(t, failed.LastError, "no handler")
}

func TestQueue_HandlerPanicMarksFailed(t *testing.T) {
	q, st := newTestQueue(t)
	ctx := context.Background()
	q.Register("boom", func(context.Context, json.RawMessage) error { panic("boom") })
	require.NoError(t, q.Start(ctx))

	job, err := q.Enqueue(ctx, "boom", nil)
	require.NoError(t, err)

	failed := waitStatus(t, st, job.ID, model.JobFailed)
	assert.Contains(t, failed.LastError, "panic")
}

func TestQueue_RetryAllAndDiscard(t *testing.T) {
	q, st := newTestQueue(t)
	ctx := context.Background()

	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	for i, id := range []string{"a", "b", "c"} {
		require.NoError(t, st.CreateJob(ctx, model.Job{
			ID:        id,
			Kind:      "ok",
			Status:    model.JobFailed,
			LastError: "old",
			CreatedAt: now.Add(time.Duration(i) * time.Minute),
		}))
	}
	require.NoError(t, st.CreateJob(ctx, model.Job{ID: "d", Kind: "ok", Status: model.JobDone, CreatedAt: now}))

	require.NoError(t, q.Discard(ctx, "c"))
	assert.ErrorIs(t, q.Discard(ctx, "c"), ErrJobNotFound)

	q.Register("ok", func(context.Context, json.RawMessage) error { return nil })
	require.NoError(t, q.Start(ctx))

	retried, err := q.RetryAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, retried)

	waitStatus(t, st, "a", model.JobDone)
	waitStatus(t, st, "b", model.JobDone)

	failed, err := q.List(ctx, model.JobFailed, 0)
	require.NoError(t, err)
	assert.Empty(t, failed)

	all, err := q.List(ctx, "", 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestQueue_DiscardRunningRejected(t *testing.T) {
	q, st := newTestQueue(t)
	ctx := context.Background()

	require.NoError(t, st.CreateJob(ctx, model.Job{ID: "r", Kind: "ok", Status: model.JobRunning}))
	assert.ErrorIs(t, q.Discard(ctx, "r"), ErrJobRunning)
}

func TestQueue_StartRecoversInterruptedJobs(t *testing.T) {
	q, st := newTestQueue(t)
	ctx := context.Background()

	require.NoError(t, st.CreateJob(ctx, model.Job{ID: "interrupted", Kind: "ok", Status: model.JobRunning, Attempts: 1}))
	require.NoError(t, st.CreateJob(ctx, model.Job{ID: "waiting", Kind: "ok", Status: model.JobPending}))

	q.Register("ok", func(context.Context, json.RawMessage) error { return nil })
	require.NoError(t, q.Start(ctx))

	assert.Equal(t, 2, waitStatus(t, st, "interrupted", model.JobDone).Attempts)
	assert.Equal(t, 1, waitStatus(t, st, "waiting", model.JobDone).Attempts)
}

func TestQueue_Shutdown(t *testing.T) {
	q, _ := newTestQueue(t)
	ctx := context.Background()
	require.NoError(t, q.Start(ctx))

	require.NoError(t, q.Shutdown(ctx))
	require.NoError(t, q.Shutdown(ctx))

	_, err := q.Enqueue(ctx, "ok", nil)
	assert.ErrorIs(t, err, ErrQueueClosed)
}

type recordingSender struct {
	messages []mailer.Message
	err      error
}

func (s *recordingSender) Send(_ context.Context, msg mailer.Message) error {
	s.messages = append(s.messages, msg)
	return s.err
}

func TestMailHandler(t *testing.T) {
	sender := &recordingSender{}
	h := MailHandler(sender)

	payload, err := json.Marshal(mailer.Message{To: []string{"a@example.com"}, Subject: "Hi", Body: "Hello"})
	require.NoError(t, err)

	require.NoError(t, h(context.Background(), payload))
	require.Len(t, sender.messages, 1)
	assert.Equal(t, "Hi", sender.messages[0].Subject)

	assert.Error(t, h(context.Background(), json.RawMessage(`{"to":`)))

	sender.err = errors.New("rejected")
	assert.EqualError(t, h(context.Background(), payload), "rejected")
}
