package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/appointedtime/pressroom/internal/domain"
)

// JobProcessRepository implements the domain.JobProcessRepository
// interface using PostgreSQL
type JobProcessRepository struct {
	db *sql.DB
}

// NewJobProcessRepository creates a new JobProcessRepository instance
func NewJobProcessRepository(db *sql.DB) domain.JobProcessRepository {
	return &JobProcessRepository{
		db: db,
	}
}

// CreateProcess adds a new production step. The database enforces that
// the referenced job exists.
func (r *JobProcessRepository) CreateProcess(ctx context.Context, process *domain.JobProcess) error {
	return r.createProcess(ctx, r.db, process)
}

// CreateProcessTx adds a new production step within a transaction
func (r *JobProcessRepository) CreateProcessTx(ctx context.Context, tx *sql.Tx, process *domain.JobProcess) error {
	return r.createProcess(ctx, tx, process)
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

func (r *JobProcessRepository) createProcess(ctx context.Context, db execer, process *domain.JobProcess) error {
	if process.ID == "" {
		process.ID = uuid.New().String()
	}

	process.CreatedAt = time.Now().UTC()
	process.StartTime = process.StartTime.UTC()
	process.EndTime = process.EndTime.UTC()

	query := `
		INSERT INTO job_processes (
			id, job_id, process_name, sequence_order, start_time, end_time,
			duration_hours, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := db.ExecContext(ctx, query,
		process.ID,
		process.JobID,
		process.ProcessName,
		process.SequenceOrder,
		process.StartTime,
		process.EndTime,
		process.DurationHours,
		process.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create job process: %w", err)
	}

	return nil
}

// GetProcessesByJobID retrieves a job's steps ordered by sequence
func (r *JobProcessRepository) GetProcessesByJobID(ctx context.Context, jobID string) ([]*domain.JobProcess, error) {
	query := `
		SELECT id, job_id, process_name, sequence_order, start_time, end_time,
			duration_hours, created_at
		FROM job_processes
		WHERE job_id = $1
		ORDER BY sequence_order ASC, start_time ASC
	`

	rows, err := r.db.QueryContext(ctx, query, jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to list job processes: %w", err)
	}
	defer rows.Close()

	var processes []*domain.JobProcess
	for rows.Next() {
		var process domain.JobProcess
		err := rows.Scan(
			&process.ID,
			&process.JobID,
			&process.ProcessName,
			&process.SequenceOrder,
			&process.StartTime,
			&process.EndTime,
			&process.DurationHours,
			&process.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job process: %w", err)
		}
		processes = append(processes, &process)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating job processes: %w", err)
	}

	return processes, nil
}
