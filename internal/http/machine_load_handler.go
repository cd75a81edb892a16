package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/appointedtime/pressroom/internal/domain"
	"github.com/appointedtime/pressroom/internal/http/middleware"
	"github.com/appointedtime/pressroom/pkg/logger"
)

type MachineLoadHandler struct {
	service domain.MachineLoadService
	logger  logger.Logger
}

func NewMachineLoadHandler(service domain.MachineLoadService, logger logger.Logger) *MachineLoadHandler {
	return &MachineLoadHandler{
		service: service,
		logger:  logger,
	}
}

func (h *MachineLoadHandler) RegisterRoutes(mux *http.ServeMux) {
	authMiddleware := middleware.NewAuthMiddleware()
	requireAuth := authMiddleware.RequireAuth()

	mux.Handle("/api/machineLoads.list", requireAuth(http.HandlerFunc(h.handleList)))
	mux.Handle("/api/machineLoads.create", requireAuth(http.HandlerFunc(h.handleCreate)))
	mux.Handle("/api/machines.list", requireAuth(http.HandlerFunc(h.handleMachines)))
}

func loadFilterFromQuery(r *http.Request) (domain.MachineLoadFilter, error) {
	var filter domain.MachineLoadFilter
	q := r.URL.Query()

	filter.MachineName = q.Get("machine_name")
	filter.JobID = q.Get("job_id")

	if v := q.Get("from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return filter, errors.New("from must be RFC3339")
		}
		filter.From = &t
	}
	if v := q.Get("to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return filter, errors.New("to must be RFC3339")
		}
		filter.To = &t
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return filter, errors.New("limit must be a non-negative integer")
		}
		filter.Limit = n
	}
	if v := q.Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return filter, errors.New("offset must be a non-negative integer")
		}
		filter.Offset = n
	}

	return filter, nil
}

func (h *MachineLoadHandler) handleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	filter, err := loadFilterFromQuery(r)
	if err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	loads, err := h.service.GetLoads(r.Context(), filter)
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to list machine loads")
		WriteJSONError(w, "Failed to list machine loads", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"loads": loads,
	})
}

func (h *MachineLoadHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var load domain.MachineLoad
	if err := json.NewDecoder(r.Body).Decode(&load); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.service.CreateLoad(r.Context(), &load); err != nil {
		var unknown *domain.ErrUnknownMachine
		if errors.As(err, &unknown) {
			WriteJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := load.Validate(); err != nil {
			WriteJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to create machine load")
		WriteJSONError(w, "Failed to create machine load", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"load": load,
	})
}

func (h *MachineLoadHandler) handleMachines(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	machines := h.service.GetMachines(r.Context())

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"machines": machines,
	})
}
