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

// MachineLoadRepository implements the domain.MachineLoadRepository
// interface using PostgreSQL
type MachineLoadRepository struct {
	db *sql.DB
}

// NewMachineLoadRepository creates a new MachineLoadRepository instance
func NewMachineLoadRepository(db *sql.DB) domain.MachineLoadRepository {
	return &MachineLoadRepository{
		db: db,
	}
}

// CreateLoad reserves a machine time window for a job. The database
// enforces that the referenced job exists.
func (r *MachineLoadRepository) CreateLoad(ctx context.Context, load *domain.MachineLoad) error {
	return r.createLoad(ctx, r.db, load)
}

// CreateLoadTx reserves a machine time window within a transaction
func (r *MachineLoadRepository) CreateLoadTx(ctx context.Context, tx *sql.Tx, load *domain.MachineLoad) error {
	return r.createLoad(ctx, tx, load)
}

func (r *MachineLoadRepository) createLoad(ctx context.Context, db execer, load *domain.MachineLoad) error {
	if load.ID == "" {
		load.ID = uuid.New().String()
	}

	load.CreatedAt = time.Now().UTC()
	load.StartTime = load.StartTime.UTC()
	load.EndTime = load.EndTime.UTC()

	query := `
		INSERT INTO machine_loads (
			id, machine_name, job_id, start_time, end_time, duration_hours, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := db.ExecContext(ctx, query,
		load.ID,
		load.MachineName,
		load.JobID,
		load.StartTime,
		load.EndTime,
		load.DurationHours,
		load.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create machine load: %w", err)
	}

	return nil
}

// GetLoads retrieves loads matching the filter, earliest start first.
// From/To select loads whose window overlaps [From, To).
func (r *MachineLoadRepository) GetLoads(ctx context.Context, filter domain.MachineLoadFilter) ([]*domain.MachineLoad, error) {
	qb := sq.Select(
		"id", "machine_name", "job_id", "start_time", "end_time",
		"duration_hours", "created_at",
	).
		From("machine_loads").
		OrderBy("start_time ASC").
		PlaceholderFormat(sq.Dollar)

	if filter.MachineName != "" {
		qb = qb.Where(sq.Eq{"machine_name": filter.MachineName})
	}
	if filter.JobID != "" {
		qb = qb.Where(sq.Eq{"job_id": filter.JobID})
	}
	if filter.To != nil {
		qb = qb.Where(sq.Lt{"start_time": filter.To.UTC()})
	}
	if filter.From != nil {
		qb = qb.Where(sq.Gt{"end_time": filter.From.UTC()})
	}
	if filter.Limit > 0 {
		qb = qb.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		qb = qb.Offset(uint64(filter.Offset))
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build machine loads query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list machine loads: %w", err)
	}
	defer rows.Close()

	var loads []*domain.MachineLoad
	for rows.Next() {
		var load domain.MachineLoad
		err := rows.Scan(
			&load.ID,
			&load.MachineName,
			&load.JobID,
			&load.StartTime,
			&load.EndTime,
			&load.DurationHours,
			&load.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan machine load: %w", err)
		}
		loads = append(loads, &load)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating machine loads: %w", err)
	}

	return loads, nil
}

// LastFinishTime returns the latest end_time booked on a machine, or
// nil when the machine has no loads. The planner queues new work
// behind this point.
func (r *MachineLoadRepository) LastFinishTime(ctx context.Context, machineName string) (*time.Time, error) {
	var lastFinish sql.NullTime
	err := r.db.QueryRowContext(ctx,
		"SELECT MAX(end_time) FROM machine_loads WHERE machine_name = $1",
		machineName,
	).Scan(&lastFinish)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("failed to get last finish time: %w", err)
	}

	if !lastFinish.Valid {
		return nil, nil
	}

	finish := lastFinish.Time
	return &finish, nil
}
