package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appointedtime/pressroom/config"
	"github.com/appointedtime/pressroom/internal/domain"
	"github.com/appointedtime/pressroom/pkg/logger"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Port: 8080, Host: "localhost"},
		Planner: config.PlannerConfig{
			ShiftStartHour:      8,
			ShiftEndHour:        17,
			SetupHours:          2.0,
			AnnualRevenueTarget: 150000.0,
		},
		Environment: "test",
		LogLevel:    "debug",
		Version:     "2.1",
	}
}

func newTestApp(t *testing.T) (*App, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	a := NewApp(testConfig(),
		WithMockDB(db),
		WithLogger(logger.NewTestLogger(t)),
	)
	require.NoError(t, a.Initialize())
	return a, mock
}

func TestApp_Initialize(t *testing.T) {
	a, _ := newTestApp(t)

	assert.NotNil(t, a.GetDB())
	assert.NotNil(t, a.GetMux())
	assert.Equal(t, "2.1", a.GetConfig().Version)
}

func TestApp_HealthEndpoint(t *testing.T) {
	a, _ := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	a.GetMux().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "ok", resp["status"])
	assert.Equal(t, "2.1", resp["version"])
}

func TestApp_MachinesEndpoint(t *testing.T) {
	a, _ := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/machines.list", nil)
	rec := httptest.NewRecorder()
	a.GetMux().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Machines []*domain.Machine `json:"machines"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Len(t, resp.Machines, 15)
}

func TestApp_JobsListEndpoint(t *testing.T) {
	a, mock := newTestApp(t)

	mock.ExpectQuery("SELECT (.+) FROM jobs").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "sales_rep", "impressions", "finished_qty", "ups_per_sheet",
			"sheets_per_packet", "overs_pct", "contract_value", "target_deadline",
			"created_at", "updated_at",
		}))

	req := httptest.NewRequest(http.MethodGet, "/api/jobs.list", nil)
	rec := httptest.NewRecorder()
	a.GetMux().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApp_Shutdown(t *testing.T) {
	a, _ := newTestApp(t)

	require.NoError(t, a.Shutdown(context.Background()))
}
