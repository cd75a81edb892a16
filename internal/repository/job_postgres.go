package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/appointedtime/pressroom/internal/domain"
)

// jobColumns is the scan order shared by every jobs SELECT
const jobColumns = `id, name, sales_rep, impressions, finished_qty, ups_per_sheet,
		sheets_per_packet, overs_pct, contract_value, target_deadline, created_at, updated_at`

// JobRepository implements the domain.JobRepository interface using PostgreSQL
type JobRepository struct {
	db *sql.DB
}

// NewJobRepository creates a new JobRepository instance
func NewJobRepository(db *sql.DB) domain.JobRepository {
	return &JobRepository{
		db: db,
	}
}

// WithTransaction executes a function within a transaction
func (r *JobRepository) WithTransaction(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	// No-op if the transaction commits
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// CreateJob adds a new job
func (r *JobRepository) CreateJob(ctx context.Context, job *domain.Job) error {
	return r.WithTransaction(ctx, func(tx *sql.Tx) error {
		return r.CreateJobTx(ctx, tx, job)
	})
}

// CreateJobTx adds a new job within a transaction
func (r *JobRepository) CreateJobTx(ctx context.Context, tx *sql.Tx, job *domain.Job) error {
	if job.ID == "" {
		job.ID = uuid.New().String()
	}

	now := time.Now().UTC()
	job.CreatedAt = now
	job.UpdatedAt = now

	if job.TargetDeadline != nil {
		deadline := job.TargetDeadline.UTC()
		job.TargetDeadline = &deadline
	}

	query := `
		INSERT INTO jobs (
			id, name, sales_rep, impressions, finished_qty, ups_per_sheet,
			sheets_per_packet, overs_pct, contract_value, target_deadline,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := tx.ExecContext(ctx, query,
		job.ID,
		job.Name,
		job.SalesRep,
		job.Impressions,
		job.FinishedQty,
		job.UpsPerSheet,
		job.SheetsPerPacket,
		job.OversPct,
		job.ContractValue,
		job.TargetDeadline,
		job.CreatedAt,
		job.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create job: %w", err)
	}

	return nil
}

// GetJobByID retrieves a job by its ID
func (r *JobRepository) GetJobByID(ctx context.Context, id string) (*domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`

	job, err := scanJob(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, &domain.ErrJobNotFound{Message: "job not found"}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get job: %w", err)
	}

	return job, nil
}

// GetJobs retrieves jobs matching the filter, newest first
func (r *JobRepository) GetJobs(ctx context.Context, filter domain.JobFilter) ([]*domain.Job, error) {
	qb := sq.Select(
		"id", "name", "sales_rep", "impressions", "finished_qty", "ups_per_sheet",
		"sheets_per_packet", "overs_pct", "contract_value", "target_deadline",
		"created_at", "updated_at",
	).
		From("jobs").
		OrderBy("created_at DESC").
		PlaceholderFormat(sq.Dollar)

	if filter.SalesRep != "" {
		qb = qb.Where(sq.Eq{"sales_rep": filter.SalesRep})
	}
	if filter.CreatedAfter != nil {
		qb = qb.Where(sq.GtOrEq{"created_at": filter.CreatedAfter.UTC()})
	}
	if filter.CreatedBefore != nil {
		qb = qb.Where(sq.Lt{"created_at": filter.CreatedBefore.UTC()})
	}
	if filter.Limit > 0 {
		qb = qb.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		qb = qb.Offset(uint64(filter.Offset))
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build jobs query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	var jobs []*domain.Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		jobs = append(jobs, job)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating jobs: %w", err)
	}

	return jobs, nil
}

// UpdateJob updates an existing job
func (r *JobRepository) UpdateJob(ctx context.Context, job *domain.Job) error {
	job.UpdatedAt = time.Now().UTC()

	if job.TargetDeadline != nil {
		deadline := job.TargetDeadline.UTC()
		job.TargetDeadline = &deadline
	}

	query := `
		UPDATE jobs
		SET name = $1, sales_rep = $2, impressions = $3, finished_qty = $4,
			ups_per_sheet = $5, sheets_per_packet = $6, overs_pct = $7,
			contract_value = $8, target_deadline = $9, updated_at = $10
		WHERE id = $11
	`

	result, err := r.db.ExecContext(ctx, query,
		job.Name,
		job.SalesRep,
		job.Impressions,
		job.FinishedQty,
		job.UpsPerSheet,
		job.SheetsPerPacket,
		job.OversPct,
		job.ContractValue,
		job.TargetDeadline,
		job.UpdatedAt,
		job.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update job: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return &domain.ErrJobNotFound{Message: "job not found"}
	}

	return nil
}

// DeleteJob deletes a job. The job's processes and machine loads are
// removed by the ON DELETE CASCADE foreign keys.
func (r *JobRepository) DeleteJob(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM jobs WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return &domain.ErrJobNotFound{Message: "job not found"}
	}

	return nil
}

// RevenueBySalesRep aggregates contract value per sales rep
func (r *JobRepository) RevenueBySalesRep(ctx context.Context, filter domain.JobFilter) ([]*domain.SalesRepRevenue, error) {
	qb := sq.Select(
		"sales_rep",
		"COUNT(*) AS job_count",
		"COALESCE(SUM(contract_value), 0) AS total_revenue",
		"COALESCE(AVG(contract_value), 0) AS avg_job_revenue",
	).
		From("jobs").
		GroupBy("sales_rep").
		OrderBy("total_revenue DESC").
		PlaceholderFormat(sq.Dollar)

	if filter.SalesRep != "" {
		qb = qb.Where(sq.Eq{"sales_rep": filter.SalesRep})
	}
	if filter.CreatedAfter != nil {
		qb = qb.Where(sq.GtOrEq{"created_at": filter.CreatedAfter.UTC()})
	}
	if filter.CreatedBefore != nil {
		qb = qb.Where(sq.Lt{"created_at": filter.CreatedBefore.UTC()})
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build revenue query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate revenue: %w", err)
	}
	defer rows.Close()

	var reps []*domain.SalesRepRevenue
	for rows.Next() {
		var rep domain.SalesRepRevenue
		if err := rows.Scan(&rep.SalesRep, &rep.JobCount, &rep.TotalRevenue, &rep.AvgJobRevenue); err != nil {
			return nil, fmt.Errorf("failed to scan revenue row: %w", err)
		}
		reps = append(reps, &rep)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating revenue rows: %w", err)
	}

	return reps, nil
}

// scanJob scans one jobs row in jobColumns order
func scanJob(scanner interface {
	Scan(dest ...interface{}) error
}) (*domain.Job, error) {
	var job domain.Job
	var oversPct sql.NullFloat64
	var targetDeadline sql.NullTime

	err := scanner.Scan(
		&job.ID,
		&job.Name,
		&job.SalesRep,
		&job.Impressions,
		&job.FinishedQty,
		&job.UpsPerSheet,
		&job.SheetsPerPacket,
		&oversPct,
		&job.ContractValue,
		&targetDeadline,
		&job.CreatedAt,
		&job.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	// overs_pct is nullable with a schema default; surface the default
	// for rows inserted outside the application
	job.OversPct = domain.DefaultOversPct
	if oversPct.Valid {
		job.OversPct = oversPct.Float64
	}
	if targetDeadline.Valid {
		deadline := targetDeadline.Time
		job.TargetDeadline = &deadline
	}

	return &job, nil
}
