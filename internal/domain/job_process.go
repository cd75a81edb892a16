package domain

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/asaskevich/govalidator"
)

//go:generate mockgen -destination mocks/mock_job_process_service.go -package mocks github.com/appointedtime/pressroom/internal/domain JobProcessService
//go:generate mockgen -destination mocks/mock_job_process_repository.go -package mocks github.com/appointedtime/pressroom/internal/domain JobProcessRepository

// JobProcess is one ordered production step belonging to a job,
// e.g. printing, folding, cutting.
type JobProcess struct {
	ID            string    `json:"id"`
	JobID         string    `json:"job_id"`
	ProcessName   string    `json:"process_name"`
	SequenceOrder int       `json:"sequence_order"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	DurationHours float64   `json:"duration_hours"`
	CreatedAt     time.Time `json:"created_at"`
}

// Validate performs validation on the process fields.
// duration_hours is stored as given and is not checked against the
// start/end window; callers own that relationship.
func (p *JobProcess) Validate() error {
	if p.ID != "" && !govalidator.IsUUID(p.ID) {
		return fmt.Errorf("invalid job process: id must be a UUID")
	}
	if p.JobID == "" {
		return fmt.Errorf("invalid job process: job_id is required")
	}
	if !govalidator.IsUUID(p.JobID) {
		return fmt.Errorf("invalid job process: job_id must be a UUID")
	}
	if p.ProcessName == "" {
		return fmt.Errorf("invalid job process: process_name is required")
	}
	if len(p.ProcessName) > 255 {
		return fmt.Errorf("invalid job process: process_name length must be between 1 and 255")
	}
	if p.SequenceOrder < 1 {
		return fmt.Errorf("invalid job process: sequence_order must be at least 1")
	}
	if p.StartTime.IsZero() {
		return fmt.Errorf("invalid job process: start_time is required")
	}
	if p.EndTime.IsZero() {
		return fmt.Errorf("invalid job process: end_time is required")
	}
	if p.DurationHours < 0 {
		return fmt.Errorf("invalid job process: duration_hours must not be negative")
	}

	return nil
}

// JobProcessService provides operations for managing production steps
type JobProcessService interface {
	// CreateProcess creates a new production step for a job
	CreateProcess(ctx context.Context, process *JobProcess) error

	// GetProcessesByJobID retrieves a job's steps ordered by sequence
	GetProcessesByJobID(ctx context.Context, jobID string) ([]*JobProcess, error)
}

type JobProcessRepository interface {
	// CreateProcess creates a new production step in the database
	CreateProcess(ctx context.Context, process *JobProcess) error

	// CreateProcessTx creates a new production step within a transaction
	CreateProcessTx(ctx context.Context, tx *sql.Tx, process *JobProcess) error

	// GetProcessesByJobID retrieves a job's steps ordered by sequence
	GetProcessesByJobID(ctx context.Context, jobID string) ([]*JobProcess, error)
}

// ErrJobProcessNotFound is returned when a job process is not found
type ErrJobProcessNotFound struct {
	Message string
}

func (e *ErrJobProcessNotFound) Error() string {
	return e.Message
}
