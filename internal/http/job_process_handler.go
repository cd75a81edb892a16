package http

import (
	"encoding/json"
	"net/http"

	"github.com/appointedtime/pressroom/internal/domain"
	"github.com/appointedtime/pressroom/internal/http/middleware"
	"github.com/appointedtime/pressroom/pkg/logger"
)

type JobProcessHandler struct {
	service domain.JobProcessService
	logger  logger.Logger
}

func NewJobProcessHandler(service domain.JobProcessService, logger logger.Logger) *JobProcessHandler {
	return &JobProcessHandler{
		service: service,
		logger:  logger,
	}
}

func (h *JobProcessHandler) RegisterRoutes(mux *http.ServeMux) {
	authMiddleware := middleware.NewAuthMiddleware()
	requireAuth := authMiddleware.RequireAuth()

	mux.Handle("/api/processes.list", requireAuth(http.HandlerFunc(h.handleList)))
	mux.Handle("/api/processes.create", requireAuth(http.HandlerFunc(h.handleCreate)))
}

func (h *JobProcessHandler) handleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	jobID := r.URL.Query().Get("job_id")
	if jobID == "" {
		WriteJSONError(w, "job_id is required", http.StatusBadRequest)
		return
	}

	processes, err := h.service.GetProcessesByJobID(r.Context(), jobID)
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to list job processes")
		WriteJSONError(w, "Failed to list job processes", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"processes": processes,
	})
}

func (h *JobProcessHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var process domain.JobProcess
	if err := json.NewDecoder(r.Body).Decode(&process); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.service.CreateProcess(r.Context(), &process); err != nil {
		if err := process.Validate(); err != nil {
			WriteJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to create job process")
		WriteJSONError(w, "Failed to create job process", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"process": process,
	})
}
