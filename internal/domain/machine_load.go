package domain

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/asaskevich/govalidator"
)

//go:generate mockgen -destination mocks/mock_machine_load_service.go -package mocks github.com/appointedtime/pressroom/internal/domain MachineLoadService
//go:generate mockgen -destination mocks/mock_machine_load_repository.go -package mocks github.com/appointedtime/pressroom/internal/domain MachineLoadRepository

// MachineLoad is a reserved time window during which a named machine
// is allocated to a job. Loads reference the job as a whole, not a
// specific process step.
type MachineLoad struct {
	ID            string    `json:"id"`
	MachineName   string    `json:"machine_name"`
	JobID         string    `json:"job_id"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	DurationHours float64   `json:"duration_hours"`
	CreatedAt     time.Time `json:"created_at"`
}

// Validate performs validation on the machine load fields.
// Overlapping reservations for the same machine are not rejected here;
// the planner queues work to avoid them but direct inserts may overlap.
func (m *MachineLoad) Validate() error {
	if m.ID != "" && !govalidator.IsUUID(m.ID) {
		return fmt.Errorf("invalid machine load: id must be a UUID")
	}
	if m.MachineName == "" {
		return fmt.Errorf("invalid machine load: machine_name is required")
	}
	if len(m.MachineName) > 255 {
		return fmt.Errorf("invalid machine load: machine_name length must be between 1 and 255")
	}
	if m.JobID == "" {
		return fmt.Errorf("invalid machine load: job_id is required")
	}
	if !govalidator.IsUUID(m.JobID) {
		return fmt.Errorf("invalid machine load: job_id must be a UUID")
	}
	if m.StartTime.IsZero() {
		return fmt.Errorf("invalid machine load: start_time is required")
	}
	if m.EndTime.IsZero() {
		return fmt.Errorf("invalid machine load: end_time is required")
	}
	if m.DurationHours < 0 {
		return fmt.Errorf("invalid machine load: duration_hours must not be negative")
	}

	return nil
}

// MachineLoadFilter narrows load listings. From/To select loads whose
// window overlaps [From, To).
type MachineLoadFilter struct {
	MachineName string     `json:"machine_name,omitempty"`
	JobID       string     `json:"job_id,omitempty"`
	From        *time.Time `json:"from,omitempty"`
	To          *time.Time `json:"to,omitempty"`
	Limit       int        `json:"limit,omitempty"`
	Offset      int        `json:"offset,omitempty"`
}

// MachineLoadService provides operations for machine reservations
type MachineLoadService interface {
	// CreateLoad reserves a machine time window for a job
	CreateLoad(ctx context.Context, load *MachineLoad) error

	// GetLoads retrieves loads matching the filter, earliest start first
	GetLoads(ctx context.Context, filter MachineLoadFilter) ([]*MachineLoad, error)

	// GetMachines returns the shop's machine catalog
	GetMachines(ctx context.Context) []*Machine
}

type MachineLoadRepository interface {
	// CreateLoad creates a new machine load in the database
	CreateLoad(ctx context.Context, load *MachineLoad) error

	// CreateLoadTx creates a new machine load within a transaction
	CreateLoadTx(ctx context.Context, tx *sql.Tx, load *MachineLoad) error

	// GetLoads retrieves loads matching the filter, earliest start first
	GetLoads(ctx context.Context, filter MachineLoadFilter) ([]*MachineLoad, error)

	// LastFinishTime returns the latest end_time booked on a machine,
	// or nil when the machine has no loads
	LastFinishTime(ctx context.Context, machineName string) (*time.Time, error)
}

// ErrMachineLoadNotFound is returned when a machine load is not found
type ErrMachineLoadNotFound struct {
	Message string
}

func (e *ErrMachineLoadNotFound) Error() string {
	return e.Message
}
