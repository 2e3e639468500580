package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/avc-dev/shlink-dashboard/internal/model"
	"github.com/avc-dev/shlink-dashboard/internal/repository"
	"github.com/avc-dev/shlink-dashboard/internal/store"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrJobNotFound  = errors.New("job not found")
	ErrJobNotFailed = errors.New("only failed jobs can be retried")
	ErrJobRunning   = errors.New("job is running")
	ErrQueueClosed  = errors.New("job queue is shut down")
)

const handlerTimeout = time.Minute

// Handler выполняет задачу одного вида
type Handler func(ctx context.Context, payload json.RawMessage) error

// Queue очередь задач: состояние хранится в JobStore, выполнение в пуле воркеров.
// Упавшая задача остается failed до ручного Retry.
type Queue struct {
	store   repository.JobStore
	workers int
	tasks   chan string
	stop    chan struct{}
	wg      sync.WaitGroup
	closed  atomic.Bool
	started atomic.Bool

	mu       sync.RWMutex
	handlers map[string]Handler

	logger *zap.Logger
	now    func() time.Time
}

// NewQueue создает очередь; воркеры запускаются в Start
func NewQueue(jobStore repository.JobStore, workers, buffer int, logger *zap.Logger) *Queue {
	if workers < 1 {
		workers = 1
	}
	if buffer < 1 {
		buffer = 1
	}
	return &Queue{
		store:    jobStore,
		workers:  workers,
		tasks:    make(chan string, buffer),
		stop:     make(chan struct{}),
		handlers: make(map[string]Handler),
		logger:   logger,
		now:      time.Now,
	}
}

// Register задает обработчик для вида задач
func (q *Queue) Register(kind string, h Handler) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.handlers[kind] = h
}

func (q *Queue) handler(kind string) (Handler, bool) {
	q.mu.RLock()
	defer q.mu.RUnlock()
	h, ok := q.handlers[kind]
	return h, ok
}

// Start запускает воркеры и возвращает в работу задачи, прерванные прошлым остановом
func (q *Queue) Start(ctx context.Context) error {
	if !q.started.CompareAndSwap(false, true) {
		return nil
	}

	for i := 0; i < q.workers; i++ {
		q.wg.Add(1)
		go q.worker(i)
	}

	recovered := 0
	for _, status := range []model.JobStatus{model.JobRunning, model.JobPending} {
		list, err := q.store.ListJobs(ctx, status, 0)
		if err != nil {
			return fmt.Errorf("failed to list %s jobs: %w", status, err)
		}
		for _, job := range list {
			if job.Status == model.JobRunning {
				job.Status = model.JobPending
				job.UpdatedAt = q.now()
				if err := q.store.UpdateJob(ctx, job); err != nil {
					q.logger.Error("failed to reset interrupted job", zap.String("job_id", job.ID), zap.Error(err))
					continue
				}
			}
			q.dispatch(job.ID)
			recovered++
		}
	}

	q.logger.Info("job queue started", zap.Int("workers", q.workers), zap.Int("recovered", recovered))
	return nil
}

// Enqueue сохраняет задачу в статусе pending и передает ее воркерам
func (q *Queue) Enqueue(ctx context.Context, kind string, payload any) (model.Job, error) {
	if q.closed.Load() {
		return model.Job{}, ErrQueueClosed
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return model.Job{}, fmt.Errorf("failed to encode job payload: %w", err)
	}

	now := q.now()
	job := model.Job{
		ID:        uuid.New().String(),
		Kind:      kind,
		Payload:   raw,
		Status:    model.JobPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := q.store.CreateJob(ctx, job); err != nil {
		return model.Job{}, fmt.Errorf("failed to store job: %w", err)
	}

	q.dispatch(job.ID)
	return job, nil
}

// dispatch не блокирует вызывающего: при заполненном буфере отправка уходит в горутину
func (q *Queue) dispatch(id string) {
	select {
	case q.tasks <- id:
		return
	default:
	}

	go func() {
		select {
		case q.tasks <- id:
		case <-q.stop:
		}
	}()
}

func (q *Queue) worker(workerID int) {
	defer q.wg.Done()
	for {
		select {
		case <-q.stop:
			return
		case id := <-q.tasks:
			q.run(id, workerID)
		}
	}
}

func (q *Queue) run(id string, workerID int) {
	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()

	job, err := q.store.GetJob(ctx, id)
	if err != nil {
		q.logger.Error("failed to load job", zap.String("job_id", id), zap.Error(err))
		return
	}
	if job.Status != model.JobPending {
		return
	}

	job.Status = model.JobRunning
	job.Attempts++
	job.UpdatedAt = q.now()
	if err := q.store.UpdateJob(ctx, job); err != nil {
		q.logger.Error("failed to mark job running", zap.String("job_id", id), zap.Error(err))
		return
	}

	runErr := q.execute(ctx, job)

	job.UpdatedAt = q.now()
	if runErr != nil {
		job.Status = model.JobFailed
		job.LastError = runErr.Error()
		q.logger.Warn("job failed",
			zap.String("job_id", job.ID),
			zap.String("kind", job.Kind),
			zap.Int("attempts", job.Attempts),
			zap.Int("worker", workerID),
			zap.Error(runErr),
		)
	} else {
		job.Status = model.JobDone
		job.LastError = ""
		q.logger.Debug("job done", zap.String("job_id", job.ID), zap.String("kind", job.Kind), zap.Int("worker", workerID))
	}

	if err := q.store.UpdateJob(ctx, job); err != nil {
		q.logger.Error("failed to save job result", zap.String("job_id", id), zap.Error(err))
	}
}

func (q *Queue) execute(ctx context.Context, job model.Job) (err error) {
	h, ok := q.handler(job.Kind)
	if !ok {
		return fmt.Errorf("no handler registered for kind %q", job.Kind)
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler panic: %v", r)
		}
	}()
	return h(ctx, job.Payload)
}

func (q *Queue) get(ctx context.Context, id string) (model.Job, error) {
	job, err := q.store.GetJob(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return model.Job{}, ErrJobNotFound
		}
		return model.Job{}, fmt.Errorf("failed to load job: %w", err)
	}
	return job, nil
}

// Retry возвращает упавшую задачу в очередь
func (q *Queue) Retry(ctx context.Context, id string) (model.Job, error) {
	if q.closed.Load() {
		return model.Job{}, ErrQueueClosed
	}

	job, err := q.get(ctx, id)
	if err != nil {
		return model.Job{}, err
	}
	if job.Status != model.JobFailed {
		return model.Job{}, ErrJobNotFailed
	}

	job.Status = model.JobPending
	job.LastError = ""
	job.UpdatedAt = q.now()
	if err := q.store.UpdateJob(ctx, job); err != nil {
		return model.Job{}, fmt.Errorf("failed to requeue job: %w", err)
	}

	q.dispatch(job.ID)
	q.logger.Info("job requeued", zap.String("job_id", job.ID), zap.String("kind", job.Kind))
	return job, nil
}

// RetryAll возвращает в очередь все упавшие задачи и сообщает их число
func (q *Queue) RetryAll(ctx context.Context) (int, error) {
	failed, err := q.store.ListJobs(ctx, model.JobFailed, 0)
	if err != nil {
		return 0, fmt.Errorf("failed to list failed jobs: %w", err)
	}

	retried := 0
	for _, job := range failed {
		if _, err := q.Retry(ctx, job.ID); err != nil {
			if errors.Is(err, ErrQueueClosed) {
				return retried, err
			}
			q.logger.Warn("failed to retry job", zap.String("job_id", job.ID), zap.Error(err))
			continue
		}
		retried++
	}
	return retried, nil
}

// Discard удаляет задачу; выполняющуюся удалить нельзя
func (q *Queue) Discard(ctx context.Context, id string) error {
	job, err := q.get(ctx, id)
	if err != nil {
		return err
	}
	if job.Status == model.JobRunning {
		return ErrJobRunning
	}

	if err := q.store.DeleteJob(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrJobNotFound
		}
		return fmt.Errorf("failed to delete job: %w", err)
	}
	return nil
}

// List возвращает задачи, новые первыми; пустой статус означает все
func (q *Queue) List(ctx context.Context, status model.JobStatus, limit int) ([]model.Job, error) {
	list, err := q.store.ListJobs(ctx, status, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	return list, nil
}

// Shutdown перестает принимать задачи и ждет завершения текущих.
// Задачи, не взятые воркерами, остаются pending и подхватываются следующим Start.
func (q *Queue) Shutdown(ctx context.Context) error {
	if !q.closed.CompareAndSwap(false, true) {
		return nil
	}
	close(q.stop)

	done := make(chan struct{})
	go func() {
		q.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		q.logger.Info("job queue stopped")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("job queue shutdown: %w", ctx.Err())
	}
}
