package service

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appointedtime/pressroom/internal/domain"
	"github.com/appointedtime/pressroom/internal/domain/mocks"
	"github.com/appointedtime/pressroom/pkg/logger"
)

func validJob() *domain.Job {
	return &domain.Job{
		Name:            "Brochure A",
		SalesRep:        "J.Doe",
		Impressions:     8750,
		FinishedQty:     100000,
		UpsPerSheet:     12,
		SheetsPerPacket: 250,
		OversPct:        5.0,
		ContractValue:   4500.00,
	}
}

func TestJobService_CreateJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockJobRepository(ctrl)
	svc := NewJobService(logger.NewTestLogger(t), mockRepo, 150000.0)
	ctx := context.Background()

	t.Run("valid job is persisted", func(t *testing.T) {
		job := validJob()
		mockRepo.EXPECT().CreateJob(ctx, job).Return(nil)

		require.NoError(t, svc.CreateJob(ctx, job))
	})

	t.Run("invalid job never reaches the repository", func(t *testing.T) {
		job := validJob()
		job.Name = ""

		err := svc.CreateJob(ctx, job)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "name")
	})

	t.Run("repository error is returned", func(t *testing.T) {
		job := validJob()
		mockRepo.EXPECT().CreateJob(ctx, job).Return(errors.New("connection refused"))

		err := svc.CreateJob(ctx, job)
		require.Error(t, err)
	})
}

func TestJobService_UpdateJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockJobRepository(ctrl)
	svc := NewJobService(logger.NewTestLogger(t), mockRepo, 150000.0)
	ctx := context.Background()

	t.Run("requires an id", func(t *testing.T) {
		err := svc.UpdateJob(ctx, validJob())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "id is required")
	})

	t.Run("valid update", func(t *testing.T) {
		job := validJob()
		job.ID = "a2f1c6de-58f0-4c4d-9a3b-7a1f0b2c3d4e"
		mockRepo.EXPECT().UpdateJob(ctx, job).Return(nil)

		require.NoError(t, svc.UpdateJob(ctx, job))
	})

	t.Run("not found surfaces", func(t *testing.T) {
		job := validJob()
		job.ID = "a2f1c6de-58f0-4c4d-9a3b-7a1f0b2c3d4e"
		mockRepo.EXPECT().UpdateJob(ctx, job).
			Return(&domain.ErrJobNotFound{Message: "job not found"})

		err := svc.UpdateJob(ctx, job)
		var notFound *domain.ErrJobNotFound
		assert.ErrorAs(t, err, &notFound)
	})
}

func TestJobService_DeleteJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockJobRepository(ctrl)
	svc := NewJobService(logger.NewTestLogger(t), mockRepo, 150000.0)
	ctx := context.Background()

	mockRepo.EXPECT().DeleteJob(ctx, "job1").Return(nil)
	require.NoError(t, svc.DeleteJob(ctx, "job1"))
}

func TestJobService_RevenueSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockJobRepository(ctrl)
	svc := NewJobService(logger.NewTestLogger(t), mockRepo, 150000.0)
	ctx := context.Background()

	t.Run("totals and target progress", func(t *testing.T) {
		mockRepo.EXPECT().RevenueBySalesRep(ctx, domain.JobFilter{}).Return([]*domain.SalesRepRevenue{
			{SalesRep: "Mabel Ampofo", JobCount: 3, TotalRevenue: 15000.00, AvgJobRevenue: 5000.00},
			{SalesRep: "J.Doe", JobCount: 1, TotalRevenue: 1200.00, AvgJobRevenue: 1200.00},
		}, nil)

		summary, err := svc.RevenueSummary(ctx, domain.JobFilter{})
		require.NoError(t, err)
		assert.Len(t, summary.Reps, 2)
		assert.Equal(t, 16200.00, summary.TotalRevenue)
		assert.Equal(t, 150000.0, summary.AnnualTarget)
		assert.InDelta(t, 10.8, summary.TargetPct, 0.0001)
		assert.Equal(t, 133800.00, summary.RevenueGap)
	})

	t.Run("no jobs yet", func(t *testing.T) {
		mockRepo.EXPECT().RevenueBySalesRep(ctx, domain.JobFilter{}).Return(nil, nil)

		summary, err := svc.RevenueSummary(ctx, domain.JobFilter{})
		require.NoError(t, err)
		assert.Empty(t, summary.Reps)
		assert.Equal(t, 0.0, summary.TotalRevenue)
		assert.Equal(t, 0.0, summary.TargetPct)
		assert.Equal(t, 150000.0, summary.RevenueGap)
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo.EXPECT().RevenueBySalesRep(ctx, domain.JobFilter{}).
			Return(nil, errors.New("connection refused"))

		_, err := svc.RevenueSummary(ctx, domain.JobFilter{})
		require.Error(t, err)
	})
}
