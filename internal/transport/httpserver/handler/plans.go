package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	plansdomain "journeys-app-go/internal/domain/plans"
	"github.com/go-chi/chi/v5"
)

type createPlanRequest struct {
	UserID      string `json:"user_id"`
	Destination string `json:"destination"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Reason      string `json:"reason"`
	Notes       string `json:"notes"`
}

type updatePlanRequest struct {
	Destination *string `json:"destination"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
	Reason      *string `json:"reason"`
	Notes       *string `json:"notes"`
}

type planResponse struct {
	ID          string `json:"id"`
	UserID      string `json:"user_id"`
	Destination string `json:"destination"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Reason      string `json:"reason"`
	Notes       string `json:"notes"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

func toPlanResponse(plan plansdomain.FuturePlan) planResponse {
	return planResponse{
		ID:          plan.ID,
		UserID:      plan.UserID,
		Destination: plan.Destination,
		StartDate:   formatDate(plan.StartDate),
		EndDate:     formatDate(plan.EndDate),
		Reason:      plan.Reason,
		Notes:       plan.Notes,
		CreatedAt:   plan.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   plan.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func (h *Handlers) ListPlans(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "user_id")

	plans, err := h.Plans.ListPlans(r.Context(), userID)
	if err != nil {
		h.log.InternalError("plans.list: query failed", err, "user_id", userID)
		writeInternalError(w, err)
		return
	}

	response := make([]planResponse, 0, len(plans))
	for _, plan := range plans {
		response = append(response, toPlanResponse(plan))
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handlers) CreatePlan(w http.ResponseWriter, r *http.Request) {
	var req createPlanRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if strings.TrimSpace(req.UserID) == "" || strings.TrimSpace(req.Destination) == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "missing user_id or destination")
		return
	}

	startDate, err := parseDateParam(req.StartDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid start_date")
		return
	}
	endDate, err := parseDateParam(req.EndDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid end_date")
		return
	}

	plan, err := h.Plans.CreatePlan(r.Context(), plansdomain.CreatePlanInput{
		UserID:      req.UserID,
		Destination: req.Destination,
		StartDate:   startDate,
		EndDate:     endDate,
		Reason:      req.Reason,
		Notes:       req.Notes,
	})
	if err != nil {
		h.log.InternalError("plans.create: insert failed", err, "user_id", req.UserID)
		writeInternalError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toPlanResponse(*plan))
}

func (h *Handlers) UpdatePlan(w http.ResponseWriter, r *http.Request) {
	planID := chi.URLParam(r, "plan_id")

	var req updatePlanRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	input := plansdomain.UpdatePlanInput{
		Destination: req.Destination,
		Reason:      req.Reason,
		Notes:       req.Notes,
	}
	if req.StartDate != nil {
		parsed, err := parseDateParam(*req.StartDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request", "invalid start_date")
			return
		}
		input.StartDate = parsed
	}
	if req.EndDate != nil {
		parsed, err := parseDateParam(*req.EndDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request", "invalid end_date")
			return
		}
		input.EndDate = parsed
	}

	plan, err := h.Plans.UpdatePlan(r.Context(), planID, input)
	if err != nil {
		if errors.Is(err, plansdomain.ErrPlanNotFound) {
			writeError(w, http.StatusNotFound, "not_found", "plan not found")
			return
		}
		h.log.InternalError("plans.update: update failed", err, "plan_id", planID)
		writeInternalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toPlanResponse(*plan))
}

func (h *Handlers) DeletePlan(w http.ResponseWriter, r *http.Request) {
	planID := chi.URLParam(r, "plan_id")

	if err := h.Plans.DeletePlan(r.Context(), planID); err != nil {
		h.log.InternalError("plans.delete: delete failed", err, "plan_id", planID)
		writeInternalError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
