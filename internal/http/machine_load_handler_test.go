package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appointedtime/pressroom/internal/domain"
	"github.com/appointedtime/pressroom/internal/domain/mocks"
	"github.com/appointedtime/pressroom/pkg/logger"
)

func setupMachineLoadHandler(t *testing.T) (*mocks.MockMachineLoadService, *http.ServeMux) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockService := mocks.NewMockMachineLoadService(ctrl)
	handler := NewMachineLoadHandler(mockService, logger.NewTestLogger(t))
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)

	return mockService, mux
}

func TestMachineLoadHandler_List(t *testing.T) {
	t.Run("filters by machine and window", func(t *testing.T) {
		mockService, mux := setupMachineLoadHandler(t)

		from := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
		mockService.EXPECT().GetLoads(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ interface{}, filter domain.MachineLoadFilter) ([]*domain.MachineLoad, error) {
				assert.Equal(t, "DIE CUTTER", filter.MachineName)
				require.NotNil(t, filter.From)
				assert.True(t, filter.From.Equal(from))
				return []*domain.MachineLoad{}, nil
			})

		req := httptest.NewRequest(http.MethodGet,
			"/api/machineLoads.list?machine_name=DIE+CUTTER&from=2026-03-02T00:00:00Z", nil)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("bad window", func(t *testing.T) {
		_, mux := setupMachineLoadHandler(t)

		req := httptest.NewRequest(http.MethodGet, "/api/machineLoads.list?from=monday", nil)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestMachineLoadHandler_Create(t *testing.T) {
	t.Run("valid load", func(t *testing.T) {
		mockService, mux := setupMachineLoadHandler(t)

		mockService.EXPECT().CreateLoad(gomock.Any(), gomock.Any()).Return(nil)

		start := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
		body, _ := json.Marshal(domain.MachineLoad{
			MachineName:   "DIE CUTTER",
			JobID:         "a2f1c6de-58f0-4c4d-9a3b-7a1f0b2c3d4e",
			StartTime:     start,
			EndTime:       start.Add(4 * time.Hour),
			DurationHours: 4.0,
		})
		req := httptest.NewRequest(http.MethodPost, "/api/machineLoads.create", bytes.NewReader(body))
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("unknown machine maps to 400", func(t *testing.T) {
		mockService, mux := setupMachineLoadHandler(t)

		mockService.EXPECT().CreateLoad(gomock.Any(), gomock.Any()).
			Return(&domain.ErrUnknownMachine{Message: "unknown machine: STEAM PRESS"})

		start := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
		body, _ := json.Marshal(domain.MachineLoad{
			MachineName: "STEAM PRESS",
			JobID:       "a2f1c6de-58f0-4c4d-9a3b-7a1f0b2c3d4e",
			StartTime:   start,
			EndTime:     start.Add(time.Hour),
		})
		req := httptest.NewRequest(http.MethodPost, "/api/machineLoads.create", bytes.NewReader(body))
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestMachineLoadHandler_Machines(t *testing.T) {
	mockService, mux := setupMachineLoadHandler(t)

	mockService.EXPECT().GetMachines(gomock.Any()).
		Return([]*domain.Machine{
			{Name: "DIE CUTTER", RunRate: 3000, LeadHours: 8},
			{Name: "SM 52", RunRate: 7000},
		})

	req := httptest.NewRequest(http.MethodGet, "/api/machines.list", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Machines []*domain.Machine `json:"machines"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Machines, 2)
	assert.Equal(t, 8.0, resp.Machines[0].LeadHours)
}
