package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appointedtime/pressroom/internal/domain"
	"github.com/appointedtime/pressroom/internal/domain/mocks"
	"github.com/appointedtime/pressroom/pkg/logger"
)

func validLoad() *domain.MachineLoad {
	start := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	return &domain.MachineLoad{
		MachineName:   "DIE CUTTER",
		JobID:         "a2f1c6de-58f0-4c4d-9a3b-7a1f0b2c3d4e",
		StartTime:     start,
		EndTime:       start.Add(4 * time.Hour),
		DurationHours: 4.0,
	}
}

func TestMachineLoadService_CreateLoad(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMachineLoadRepository(ctrl)
	svc := NewMachineLoadService(logger.NewTestLogger(t), mockRepo)
	ctx := context.Background()

	t.Run("valid load is persisted", func(t *testing.T) {
		load := validLoad()
		mockRepo.EXPECT().CreateLoad(ctx, load).Return(nil)

		require.NoError(t, svc.CreateLoad(ctx, load))
	})

	t.Run("machine must be in the catalog", func(t *testing.T) {
		load := validLoad()
		load.MachineName = "STEAM PRESS"

		err := svc.CreateLoad(ctx, load)
		require.Error(t, err)
		var unknown *domain.ErrUnknownMachine
		assert.ErrorAs(t, err, &unknown)
	})

	t.Run("invalid load never reaches the repository", func(t *testing.T) {
		load := validLoad()
		load.JobID = "not-a-uuid"

		err := svc.CreateLoad(ctx, load)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "job_id")
	})
}

func TestMachineLoadService_GetLoads(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMachineLoadRepository(ctrl)
	svc := NewMachineLoadService(logger.NewTestLogger(t), mockRepo)
	ctx := context.Background()

	filter := domain.MachineLoadFilter{MachineName: "DIE CUTTER"}
	expected := []*domain.MachineLoad{validLoad()}
	mockRepo.EXPECT().GetLoads(ctx, filter).Return(expected, nil)

	loads, err := svc.GetLoads(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, expected, loads)
}

func TestMachineLoadService_GetMachines(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMachineLoadRepository(ctrl)
	svc := NewMachineLoadService(logger.NewTestLogger(t), mockRepo)

	machines := svc.GetMachines(context.Background())
	assert.Len(t, machines, 15)

	names := make(map[string]bool, len(machines))
	for _, m := range machines {
		names[m.Name] = true
	}
	assert.True(t, names["DIE CUTTER"])
	assert.True(t, names["PERFECT BINDING"])
}
