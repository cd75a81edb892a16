package domain

import (
	"context"
	"fmt"
	"time"
)

//go:generate mockgen -destination mocks/mock_planner_service.go -package mocks github.com/appointedtime/pressroom/internal/domain PlannerService

// PlanJobRequest is the intake form for a new production order: the
// contracted deliverables plus the ordered list of machines the job
// runs through. The planner derives impressions, step windows and
// machine reservations from it.
type PlanJobRequest struct {
	Name            string     `json:"name"`
	SalesRep        string     `json:"sales_rep"`
	FinishedQty     int        `json:"finished_qty"`
	UpsPerSheet     int        `json:"ups_per_sheet"`
	SheetsPerPacket int        `json:"sheets_per_packet"`
	OversPct        *float64   `json:"overs_pct,omitempty"`
	ContractValue   float64    `json:"contract_value"`
	TargetDeadline  *time.Time `json:"target_deadline,omitempty"`
	Steps           []string   `json:"steps"`
	NightShift      bool       `json:"night_shift"`
}

// Validate checks the request and builds the job skeleton the planner
// schedules. Impressions are derived here so every step sees the same
// figure.
func (r *PlanJobRequest) Validate() (*Job, error) {
	if len(r.Steps) == 0 {
		return nil, fmt.Errorf("invalid plan request: at least one production step is required")
	}
	for _, step := range r.Steps {
		if _, err := LookupMachine(step); err != nil {
			return nil, fmt.Errorf("invalid plan request: %w", err)
		}
	}

	oversPct := DefaultOversPct
	if r.OversPct != nil {
		oversPct = *r.OversPct
	}

	impressions, err := CalculateImpressions(r.FinishedQty, r.UpsPerSheet, oversPct)
	if err != nil {
		return nil, fmt.Errorf("invalid plan request: %w", err)
	}

	sheetsPerPacket := r.SheetsPerPacket
	if sheetsPerPacket == 0 {
		sheetsPerPacket = 1
	}

	job := &Job{
		Name:            r.Name,
		SalesRep:        r.SalesRep,
		Impressions:     impressions,
		FinishedQty:     r.FinishedQty,
		UpsPerSheet:     r.UpsPerSheet,
		SheetsPerPacket: sheetsPerPacket,
		OversPct:        oversPct,
		ContractValue:   r.ContractValue,
		TargetDeadline:  r.TargetDeadline,
	}

	if err := job.Validate(); err != nil {
		return nil, fmt.Errorf("invalid plan request: %w", err)
	}

	return job, nil
}

// JobPlan is the planner's output: the persisted job with its step
// windows and machine reservations.
type JobPlan struct {
	Job       *Job           `json:"job"`
	Processes []*JobProcess  `json:"processes"`
	Loads     []*MachineLoad `json:"loads"`
}

// PlannerService schedules new jobs onto the shop floor
type PlannerService interface {
	// PlanJob schedules the requested steps machine by machine and
	// persists the job, its processes and its machine loads atomically
	PlanJob(ctx context.Context, req *PlanJobRequest) (*JobPlan, error)
}
