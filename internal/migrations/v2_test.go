package migrations

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appointedtime/pressroom/config"
	"github.com/appointedtime/pressroom/internal/database/schema"
)

func TestV2Migration(t *testing.T) {
	migration := &V2Migration{}
	ctx := context.Background()
	cfg := &config.Config{}

	assert.Equal(t, 2.0, migration.GetMajorVersion())

	t.Run("applies row security policies", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM jobs").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

		for range schema.PolicyDefinitions {
			mock.ExpectExec("(ALTER TABLE|DROP POLICY|CREATE POLICY)").
				WillReturnResult(sqlmock.NewResult(0, 0))
		}

		require.NoError(t, migration.Update(ctx, cfg, db))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("fails when jobs table is missing", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM jobs").
			WillReturnError(errors.New("relation \"jobs\" does not exist"))

		err = migration.Update(ctx, cfg, db)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to verify jobs table")
	})

	t.Run("policy failure", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM jobs").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectExec("ALTER TABLE").
			WillReturnError(errors.New("must be owner of table"))

		err = migration.Update(ctx, cfg, db)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "row security policy")
	})
}
