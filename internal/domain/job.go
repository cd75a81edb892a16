package domain

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/asaskevich/govalidator"
)

//go:generate mockgen -destination mocks/mock_job_service.go -package mocks github.com/appointedtime/pressroom/internal/domain JobService
//go:generate mockgen -destination mocks/mock_job_repository.go -package mocks github.com/appointedtime/pressroom/internal/domain JobRepository

// DefaultOversPct is the overage buffer applied when a job doesn't
// specify one. Matches the column default in the jobs table.
const DefaultOversPct = 5.0

// Job represents one production order.
type Job struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	SalesRep        string     `json:"sales_rep"`
	Impressions     int        `json:"impressions"`
	FinishedQty     int        `json:"finished_qty"`
	UpsPerSheet     int        `json:"ups_per_sheet"`
	SheetsPerPacket int        `json:"sheets_per_packet"`
	OversPct        float64    `json:"overs_pct"`
	ContractValue   float64    `json:"contract_value"`
	TargetDeadline  *time.Time `json:"target_deadline,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// CreateJobRequest is the intake form for recording a job directly,
// without running it through the planner. OversPct is a pointer so an
// omitted field gets the catalog default instead of 0.
type CreateJobRequest struct {
	Name            string     `json:"name"`
	SalesRep        string     `json:"sales_rep"`
	Impressions     int        `json:"impressions"`
	FinishedQty     int        `json:"finished_qty"`
	UpsPerSheet     int        `json:"ups_per_sheet"`
	SheetsPerPacket int        `json:"sheets_per_packet"`
	OversPct        *float64   `json:"overs_pct,omitempty"`
	ContractValue   float64    `json:"contract_value"`
	TargetDeadline  *time.Time `json:"target_deadline,omitempty"`
}

// Validate checks the request and builds the job to persist
func (r *CreateJobRequest) Validate() (*Job, error) {
	oversPct := DefaultOversPct
	if r.OversPct != nil {
		oversPct = *r.OversPct
	}

	job := &Job{
		Name:            r.Name,
		SalesRep:        r.SalesRep,
		Impressions:     r.Impressions,
		FinishedQty:     r.FinishedQty,
		UpsPerSheet:     r.UpsPerSheet,
		SheetsPerPacket: r.SheetsPerPacket,
		OversPct:        oversPct,
		ContractValue:   r.ContractValue,
		TargetDeadline:  r.TargetDeadline,
	}

	if err := job.Validate(); err != nil {
		return nil, err
	}

	return job, nil
}

// Validate performs validation on the job fields
func (j *Job) Validate() error {
	if j.ID != "" && !govalidator.IsUUID(j.ID) {
		return fmt.Errorf("invalid job: id must be a UUID")
	}
	if j.Name == "" {
		return fmt.Errorf("invalid job: name is required")
	}
	if len(j.Name) > 255 {
		return fmt.Errorf("invalid job: name length must be between 1 and 255")
	}
	if j.SalesRep == "" {
		return fmt.Errorf("invalid job: sales_rep is required")
	}
	if len(j.SalesRep) > 255 {
		return fmt.Errorf("invalid job: sales_rep length must be between 1 and 255")
	}
	if j.Impressions < 0 {
		return fmt.Errorf("invalid job: impressions must not be negative")
	}
	if j.FinishedQty < 0 {
		return fmt.Errorf("invalid job: finished_qty must not be negative")
	}
	if j.UpsPerSheet < 1 {
		return fmt.Errorf("invalid job: ups_per_sheet must be at least 1")
	}
	if j.SheetsPerPacket < 1 {
		return fmt.Errorf("invalid job: sheets_per_packet must be at least 1")
	}
	if j.ContractValue < 0 {
		return fmt.Errorf("invalid job: contract_value must not be negative")
	}

	return nil
}

// JobFilter narrows job listings. Zero values mean "no constraint".
type JobFilter struct {
	SalesRep      string     `json:"sales_rep,omitempty"`
	CreatedAfter  *time.Time `json:"created_after,omitempty"`
	CreatedBefore *time.Time `json:"created_before,omitempty"`
	Limit         int        `json:"limit,omitempty"`
	Offset        int        `json:"offset,omitempty"`
}

// SalesRepRevenue aggregates contract value per sales representative.
type SalesRepRevenue struct {
	SalesRep      string  `json:"sales_rep"`
	JobCount      int     `json:"job_count"`
	TotalRevenue  float64 `json:"total_revenue"`
	AvgJobRevenue float64 `json:"avg_job_revenue"`
}

// RevenueSummary is the dashboard view: per-rep totals against the
// configured annual target.
type RevenueSummary struct {
	Reps         []*SalesRepRevenue `json:"reps"`
	TotalRevenue float64            `json:"total_revenue"`
	AnnualTarget float64            `json:"annual_target"`
	TargetPct    float64            `json:"target_pct"`
	RevenueGap   float64            `json:"revenue_gap"`
}

// JobService provides operations for managing production jobs
type JobService interface {
	// CreateJob creates a new job
	CreateJob(ctx context.Context, job *Job) error

	// GetJobByID retrieves a job by ID
	GetJobByID(ctx context.Context, id string) (*Job, error)

	// GetJobs retrieves jobs matching the filter, newest first
	GetJobs(ctx context.Context, filter JobFilter) ([]*Job, error)

	// UpdateJob updates an existing job
	UpdateJob(ctx context.Context, job *Job) error

	// DeleteJob deletes a job by ID; the database cascades the delete
	// to the job's processes and machine loads
	DeleteJob(ctx context.Context, id string) error

	// RevenueSummary aggregates contract value by sales rep
	RevenueSummary(ctx context.Context, filter JobFilter) (*RevenueSummary, error)
}

type JobRepository interface {
	// WithTransaction executes fn within a database transaction
	WithTransaction(ctx context.Context, fn func(*sql.Tx) error) error

	// CreateJob creates a new job in the database
	CreateJob(ctx context.Context, job *Job) error

	// CreateJobTx creates a new job within a transaction
	CreateJobTx(ctx context.Context, tx *sql.Tx, job *Job) error

	// GetJobByID retrieves a job by its ID
	GetJobByID(ctx context.Context, id string) (*Job, error)

	// GetJobs retrieves jobs matching the filter, newest first
	GetJobs(ctx context.Context, filter JobFilter) ([]*Job, error)

	// UpdateJob updates an existing job
	UpdateJob(ctx context.Context, job *Job) error

	// DeleteJob deletes a job
	DeleteJob(ctx context.Context, id string) error

	// RevenueBySalesRep aggregates contract value per sales rep
	RevenueBySalesRep(ctx context.Context, filter JobFilter) ([]*SalesRepRevenue, error)
}

// ErrJobNotFound is returned when a job is not found
type ErrJobNotFound struct {
	Message string
}

func (e *ErrJobNotFound) Error() string {
	return e.Message
}
