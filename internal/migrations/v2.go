package migrations

import (
	"context"
	"fmt"

	"github.com/appointedtime/pressroom/config"
	"github.com/appointedtime/pressroom/internal/database/schema"
)

// V2Migration enables row-level security on the production tables with
// allow-all placeholder policies. The intended authorization model
// (per-rep scoping, tenancy) is undecided; until then every caller may
// read and write every row.
type V2Migration struct{}

// GetMajorVersion returns the major version this migration handles
func (m *V2Migration) GetMajorVersion() float64 {
	return 2.0
}

// Update executes the migration changes
func (m *V2Migration) Update(ctx context.Context, config *config.Config, db DBExecutor) error {
	// Verify the v1 layout is present before layering policies on it
	var count int
	err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM jobs").Scan(&count)
	if err != nil {
		return fmt.Errorf("failed to verify jobs table: %w", err)
	}

	for _, query := range schema.PolicyDefinitions {
		if _, err := db.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to apply row security policy: %w", err)
		}
	}

	return nil
}

// init registers this migration with the default registry
func init() {
	Register(&V2Migration{})
}
