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

type JobHandler struct {
	service        domain.JobService
	plannerService domain.PlannerService
	logger         logger.Logger
}

func NewJobHandler(service domain.JobService, plannerService domain.PlannerService, logger logger.Logger) *JobHandler {
	return &JobHandler{
		service:        service,
		plannerService: plannerService,
		logger:         logger,
	}
}

func (h *JobHandler) RegisterRoutes(mux *http.ServeMux) {
	authMiddleware := middleware.NewAuthMiddleware()
	requireAuth := authMiddleware.RequireAuth()

	// Register RPC-style endpoints with dot notation
	mux.Handle("/api/jobs.list", requireAuth(http.HandlerFunc(h.handleList)))
	mux.Handle("/api/jobs.get", requireAuth(http.HandlerFunc(h.handleGet)))
	mux.Handle("/api/jobs.create", requireAuth(http.HandlerFunc(h.handleCreate)))
	mux.Handle("/api/jobs.update", requireAuth(http.HandlerFunc(h.handleUpdate)))
	mux.Handle("/api/jobs.delete", requireAuth(http.HandlerFunc(h.handleDelete)))
	mux.Handle("/api/jobs.plan", requireAuth(http.HandlerFunc(h.handlePlan)))
	mux.Handle("/api/jobs.revenueSummary", requireAuth(http.HandlerFunc(h.handleRevenueSummary)))
}

// jobFilterFromQuery reads the shared list/summary filter parameters
func jobFilterFromQuery(r *http.Request) (domain.JobFilter, error) {
	var filter domain.JobFilter
	q := r.URL.Query()

	filter.SalesRep = q.Get("sales_rep")

	if v := q.Get("created_after"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return filter, errors.New("created_after must be RFC3339")
		}
		filter.CreatedAfter = &t
	}
	if v := q.Get("created_before"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return filter, errors.New("created_before must be RFC3339")
		}
		filter.CreatedBefore = &t
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

func (h *JobHandler) handleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	filter, err := jobFilterFromQuery(r)
	if err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	jobs, err := h.service.GetJobs(r.Context(), filter)
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to list jobs")
		WriteJSONError(w, "Failed to list jobs", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"jobs": jobs,
	})
}

func (h *JobHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := r.URL.Query().Get("id")
	if id == "" {
		WriteJSONError(w, "id is required", http.StatusBadRequest)
		return
	}

	job, err := h.service.GetJobByID(r.Context(), id)
	if err != nil {
		var notFound *domain.ErrJobNotFound
		if errors.As(err, &notFound) {
			WriteJSONError(w, "Job not found", http.StatusNotFound)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to get job")
		WriteJSONError(w, "Failed to get job", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"job": job,
	})
}

func (h *JobHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req domain.CreateJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	job, err := req.Validate()
	if err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.service.CreateJob(r.Context(), job); err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to create job")
		WriteJSONError(w, "Failed to create job", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"job": job,
	})
}

func (h *JobHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var job domain.Job
	if err := json.NewDecoder(r.Body).Decode(&job); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if job.ID == "" {
		WriteJSONError(w, "id is required", http.StatusBadRequest)
		return
	}

	if err := h.service.UpdateJob(r.Context(), &job); err != nil {
		var notFound *domain.ErrJobNotFound
		if errors.As(err, &notFound) {
			WriteJSONError(w, "Job not found", http.StatusNotFound)
			return
		}
		if err := job.Validate(); err != nil {
			WriteJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to update job")
		WriteJSONError(w, "Failed to update job", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"job": job,
	})
}

func (h *JobHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.ID == "" {
		WriteJSONError(w, "id is required", http.StatusBadRequest)
		return
	}

	if err := h.service.DeleteJob(r.Context(), req.ID); err != nil {
		var notFound *domain.ErrJobNotFound
		if errors.As(err, &notFound) {
			WriteJSONError(w, "Job not found", http.StatusNotFound)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to delete job")
		WriteJSONError(w, "Failed to delete job", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
	})
}

func (h *JobHandler) handlePlan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req domain.PlanJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	plan, err := h.plannerService.PlanJob(r.Context(), &req)
	if err != nil {
		var unknown *domain.ErrUnknownMachine
		if errors.As(err, &unknown) {
			WriteJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}
		if _, verr := req.Validate(); verr != nil {
			WriteJSONError(w, verr.Error(), http.StatusBadRequest)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to plan job")
		WriteJSONError(w, "Failed to plan job", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"plan": plan,
	})
}

func (h *JobHandler) handleRevenueSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	filter, err := jobFilterFromQuery(r)
	if err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	summary, err := h.service.RevenueSummary(r.Context(), filter)
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to build revenue summary")
		WriteJSONError(w, "Failed to build revenue summary", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"summary": summary,
	})
}
