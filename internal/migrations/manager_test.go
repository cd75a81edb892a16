package migrations

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appointedtime/pressroom/config"
	"github.com/appointedtime/pressroom/pkg/logger"
)

func TestGetCurrentDBVersion(t *testing.T) {
	manager := NewManager(logger.NewTestLogger(t))
	ctx := context.Background()

	t.Run("version exists", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("SELECT value FROM settings").
			WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("2"))

		version, err, exists := manager.GetCurrentDBVersion(ctx, db)
		require.NoError(t, err)
		assert.True(t, exists)
		assert.Equal(t, 2.0, version)
	})

	t.Run("no version row", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("SELECT value FROM settings").
			WillReturnRows(sqlmock.NewRows([]string{"value"}))

		version, err, exists := manager.GetCurrentDBVersion(ctx, db)
		require.NoError(t, err)
		assert.False(t, exists)
		assert.Equal(t, 0.0, version)
	})

	t.Run("malformed version", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("SELECT value FROM settings").
			WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("two"))

		_, err, _ = manager.GetCurrentDBVersion(ctx, db)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid database version format")
	})

	t.Run("query error", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("SELECT value FROM settings").
			WillReturnError(errors.New("connection reset"))

		_, err, _ = manager.GetCurrentDBVersion(ctx, db)
		require.Error(t, err)
	})
}

func TestSetCurrentDBVersion(t *testing.T) {
	manager := NewManager(logger.NewTestLogger(t))
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("INSERT INTO settings").
		WithArgs("2").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, manager.SetCurrentDBVersion(ctx, db, 2.0))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunMigrations(t *testing.T) {
	manager := NewManager(logger.NewTestLogger(t))
	ctx := context.Background()
	cfg := &config.Config{Version: config.VERSION}

	t.Run("first run records the code version", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("SELECT value FROM settings").
			WillReturnRows(sqlmock.NewRows([]string{"value"}))
		mock.ExpectExec("INSERT INTO settings").
			WithArgs("2").
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, manager.RunMigrations(ctx, cfg, db))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("up to date database runs nothing", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("SELECT value FROM settings").
			WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("2"))

		require.NoError(t, manager.RunMigrations(ctx, cfg, db))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("outdated database runs pending migrations", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		// db_version=1 and code version 2 means only V2 runs
		mock.ExpectQuery("SELECT value FROM settings").
			WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("1"))

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM jobs").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		for i := 0; i < 9; i++ {
			mock.ExpectExec("(ALTER TABLE|DROP POLICY|CREATE POLICY)").
				WillReturnResult(sqlmock.NewResult(0, 0))
		}
		mock.ExpectCommit()

		mock.ExpectExec("INSERT INTO settings").
			WithArgs("2").
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, manager.RunMigrations(ctx, cfg, db))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("failed migration rolls back", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("SELECT value FROM settings").
			WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("1"))

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM jobs").
			WillReturnError(errors.New("relation does not exist"))
		mock.ExpectRollback()

		err = manager.RunMigrations(ctx, cfg, db)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "migration failed for version 2")
	})
}
