package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/avc-dev/shlink-dashboard/internal/model"
)

func (s *Store) CreateJob(_ context.Context, j model.Job) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, exists := s.jobs[j.ID]; exists {
		return fmt.Errorf("job %s: %w", j.ID, ErrAlreadyExists)
	}
	s.jobs[j.ID] = j
	return nil
}

func (s *Store) GetJob(_ context.Context, id string) (model.Job, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	j, ok := s.jobs[id]
	if !ok {
		return model.Job{}, fmt.Errorf("job %s: %w", id, ErrNotFound)
	}
	return j, nil
}

// ListJobs возвращает задачи со статусом status (все при пустом), новые первыми
func (s *Store) ListJobs(_ context.Context, status model.JobStatus, limit int) ([]model.Job, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	var result []model.Job
	for _, j := range s.jobs {
		if status == "" || j.Status == status {
			result = append(result, j)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (s *Store) UpdateJob(_ context.Context, j model.Job) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, ok := s.jobs[j.ID]; !ok {
		return fmt.Errorf("job %s: %w", j.ID, ErrNotFound)
	}
	s.jobs[j.ID] = j
	return nil
}

func (s *Store) DeleteJob(_ context.Context, id string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, ok := s.jobs[id]; !ok {
		return fmt.Errorf("job %s: %w", id, ErrNotFound)
	}
	delete(s.jobs, id)
	return nil
}
