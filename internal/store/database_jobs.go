package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc-dev/shlink-dashboard/internal/model"
	"github.com/jackc/pgx/v5"
)

const jobColumns = `id, kind, payload, status, attempts, last_error, created_at, updated_at`

func scanJob(row pgx.Row) (model.Job, error) {
	var (
		j       model.Job
		payload []byte
		status  string
	)
	err := row.Scan(&j.ID, &j.Kind, &payload, &status, &j.Attempts, &j.LastError, &j.CreatedAt, &j.UpdatedAt)
	j.Payload = payload
	j.Status = model.JobStatus(status)
	return j, err
}

func jobPayload(j model.Job) string {
	if len(j.Payload) == 0 {
		return "{}"
	}
	return string(j.Payload)
}

func (ds *DatabaseStore) CreateJob(ctx context.Context, j model.Job) error {
	ctx, cancel := ds.adapter.WithTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO jobs (` + jobColumns + `)
		VALUES ($1, $2, $3::jsonb, $4, $5, $6, $7, $8)
	`

	_, err := ds.pool.Exec(ctx, query, j.ID, j.Kind, jobPayload(j), string(j.Status), j.Attempts, j.LastError,
		j.CreatedAt, j.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("job %s: %w", j.ID, ErrAlreadyExists)
		}
		return fmt.Errorf("failed to insert job: %w", err)
	}
	return nil
}

func (ds *DatabaseStore) GetJob(ctx context.Context, id string) (model.Job, error) {
	ctx, cancel := ds.adapter.WithTimeout(ctx)
	defer cancel()

	j, err := scanJob(ds.pool.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Job{}, fmt.Errorf("job %s: %w", id, ErrNotFound)
		}
		return model.Job{}, fmt.Errorf("failed to read job: %w", err)
	}
	return j, nil
}

// ListJobs возвращает задачи со статусом status (все при пустом), новые первыми
func (ds *DatabaseStore) ListJobs(ctx context.Context, status model.JobStatus, limit int) ([]model.Job, error) {
	ctx, cancel := ds.adapter.WithTimeout(ctx)
	defer cancel()

	query := `
		SELECT ` + jobColumns + `
		FROM jobs
		WHERE ($1 = '' OR status = $1)
		ORDER BY created_at DESC
		LIMIT NULLIF($2, 0)
	`

	rows, err := ds.pool.Query(ctx, query, string(status), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query jobs: %w", err)
	}
	defer rows.Close()

	var jobs []model.Job
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		jobs = append(jobs, j)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating jobs: %w", err)
	}
	return jobs, nil
}

func (ds *DatabaseStore) UpdateJob(ctx context.Context, j model.Job) error {
	ctx, cancel := ds.adapter.WithTimeout(ctx)
	defer cancel()

	query := `
		UPDATE jobs
		SET payload = $2::jsonb, status = $3, attempts = $4, last_error = $5, updated_at = $6
		WHERE id = $1
	`

	tag, err := ds.pool.Exec(ctx, query, j.ID, jobPayload(j), string(j.Status), j.Attempts, j.LastError, j.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update job: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("job %s: %w", j.ID, ErrNotFound)
	}
	return nil
}

func (ds *DatabaseStore) DeleteJob(ctx context.Context, id string) error {
	ctx, cancel := ds.adapter.WithTimeout(ctx)
	defer cancel()

	tag, err := ds.pool.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("job %s: %w", id, ErrNotFound)
	}
	return nil
}
