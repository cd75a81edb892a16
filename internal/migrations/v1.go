package migrations

import (
	"context"
	"fmt"

	"github.com/appointedtime/pressroom/config"
	"github.com/appointedtime/pressroom/internal/database/schema"
)

// V1Migration creates the initial production-tracking layout: the
// jobs, job_processes and machine_loads tables with their indexes.
type V1Migration struct{}

// GetMajorVersion returns the major version this migration handles
func (m *V1Migration) GetMajorVersion() float64 {
	return 1.0
}

// Update executes the migration changes
func (m *V1Migration) Update(ctx context.Context, config *config.Config, db DBExecutor) error {
	for _, query := range schema.TableDefinitions {
		if _, err := db.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	for _, query := range schema.IndexDefinitions {
		if _, err := db.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	return nil
}

// init registers this migration with the default registry
func init() {
	Register(&V1Migration{})
}
