package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appointedtime/pressroom/internal/domain"
)

func testProcess() *domain.JobProcess {
	start := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	return &domain.JobProcess{
		JobID:         "a2f1c6de-58f0-4c4d-9a3b-7a1f0b2c3d4e",
		ProcessName:   "SM102-CX FOUR COLOUR",
		SequenceOrder: 1,
		StartTime:     start,
		EndTime:       start.Add(3 * time.Hour),
		DurationHours: 3.0,
	}
}

func TestJobProcessRepository_CreateProcess(t *testing.T) {
	t.Run("successful creation", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewJobProcessRepository(db)

		process := testProcess()

		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO job_processes`)).
			WithArgs(
				sqlmock.AnyArg(), // id
				process.JobID,
				process.ProcessName,
				process.SequenceOrder,
				process.StartTime,
				process.EndTime,
				process.DurationHours,
				sqlmock.AnyArg(), // created_at
			).WillReturnResult(sqlmock.NewResult(1, 1))

		err = repo.CreateProcess(context.Background(), process)
		require.NoError(t, err)
		assert.NotEmpty(t, process.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown job_id fails the foreign key", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewJobProcessRepository(db)

		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO job_processes`)).
			WillReturnError(errors.New(`pq: insert or update on table "job_processes" violates foreign key constraint "job_processes_job_id_fkey"`))

		err = repo.CreateProcess(context.Background(), testProcess())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "foreign key constraint")
	})
}

func TestJobProcessRepository_CreateProcessTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewJobProcessRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO job_processes`)).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	tx, err := db.Begin()
	require.NoError(t, err)

	require.NoError(t, repo.CreateProcessTx(context.Background(), tx, testProcess()))
	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJobProcessRepository_GetProcessesByJobID(t *testing.T) {
	t.Run("returns steps in sequence order", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewJobProcessRepository(db)

		start := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
		rows := sqlmock.NewRows([]string{
			"id", "job_id", "process_name", "sequence_order", "start_time",
			"end_time", "duration_hours", "created_at",
		}).
			AddRow("p1", "job1", "SM102-CX FOUR COLOUR", 1, start, start.Add(3*time.Hour), 3.0, start).
			AddRow("p2", "job1", "POLAR SHEETS", 2, start.Add(3*time.Hour), start.Add(5*time.Hour), 2.0, start)

		mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY sequence_order ASC, start_time ASC`)).
			WithArgs("job1").
			WillReturnRows(rows)

		processes, err := repo.GetProcessesByJobID(context.Background(), "job1")
		require.NoError(t, err)
		require.Len(t, processes, 2)
		assert.Equal(t, 1, processes[0].SequenceOrder)
		assert.Equal(t, "SM102-CX FOUR COLOUR", processes[0].ProcessName)
		assert.Equal(t, 2, processes[1].SequenceOrder)
	})

	t.Run("no steps", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewJobProcessRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta(`FROM job_processes`)).
			WithArgs("empty").
			WillReturnRows(sqlmock.NewRows([]string{
				"id", "job_id", "process_name", "sequence_order", "start_time",
				"end_time", "duration_hours", "created_at",
			}))

		processes, err := repo.GetProcessesByJobID(context.Background(), "empty")
		require.NoError(t, err)
		assert.Empty(t, processes)
	})
}
