package model

import (
	"encoding/json"
	"time"
)

// JobStatus состояние фоновой задачи
type JobStatus string

const (
	JobPending JobStatus = "pending"
	JobRunning JobStatus = "running"
	JobFailed  JobStatus = "failed"
	JobDone    JobStatus = "done"
)

// Job фоновая задача очереди
type Job struct {
	ID        string          `json:"id"`
	Kind      string          `json:"kind"`
	Payload   json.RawMessage `json:"payload"`
	Status    JobStatus       `json:"status"`
	Attempts  int             `json:"attempts"`
	LastError string          `json:"last_error,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
