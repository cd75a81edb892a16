package database

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appointedtime/pressroom/internal/database/schema"
)

func TestInitializeDatabase(t *testing.T) {
	t.Run("creates tables, indexes and policies", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		for range schema.TableDefinitions {
			mock.ExpectExec("CREATE TABLE IF NOT EXISTS").
				WillReturnResult(sqlmock.NewResult(0, 0))
		}
		for range schema.IndexDefinitions {
			mock.ExpectExec("CREATE INDEX IF NOT EXISTS").
				WillReturnResult(sqlmock.NewResult(0, 0))
		}
		for i := range schema.PolicyDefinitions {
			switch i % 3 {
			case 0:
				mock.ExpectExec("ALTER TABLE").WillReturnResult(sqlmock.NewResult(0, 0))
			case 1:
				mock.ExpectExec("DROP POLICY IF EXISTS").WillReturnResult(sqlmock.NewResult(0, 0))
			default:
				mock.ExpectExec("CREATE POLICY").WillReturnResult(sqlmock.NewResult(0, 0))
			}
		}

		err = InitializeDatabase(db)
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("table creation failure", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec("CREATE TABLE IF NOT EXISTS").
			WillReturnError(errors.New("permission denied"))

		err = InitializeDatabase(db)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create table")
	})
}

func TestCleanDatabase(t *testing.T) {
	t.Run("drops all tables in reverse order", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		for i := len(schema.TableNames) - 1; i >= 0; i-- {
			mock.ExpectExec("DROP TABLE IF EXISTS " + schema.TableNames[i]).
				WillReturnResult(sqlmock.NewResult(0, 0))
		}

		err = CleanDatabase(db)
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("drop failure", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec("DROP TABLE IF EXISTS").
			WillReturnError(errors.New("table is locked"))

		err = CleanDatabase(db)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to drop table")
	})
}

func TestSchemaDefinitions(t *testing.T) {
	// The three domain tables plus the settings table used by migrations
	assert.Len(t, schema.TableDefinitions, 4)
	assert.Len(t, schema.IndexDefinitions, 5)
	assert.Equal(t, []string{"settings", "jobs", "job_processes", "machine_loads"}, schema.TableNames)

	// Children cascade on job deletion
	assert.Contains(t, schema.TableDefinitions[2], "ON DELETE CASCADE")
	assert.Contains(t, schema.TableDefinitions[3], "ON DELETE CASCADE")

	// Overage default lives in the schema
	assert.Contains(t, schema.TableDefinitions[1], "DEFAULT 5.0")
}
