package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/clearshift/workforce-backend-go/internal/domain/shift"
	"github.com/clearshift/workforce-backend-go/internal/handler/http/response"
	"github.com/clearshift/workforce-backend-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

type ShiftHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	CreateRecurring(w http.ResponseWriter, r *http.Request)
	Move(w http.ResponseWriter, r *http.Request)
	UpdateTimes(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	ListBySite(w http.ResponseWriter, r *http.Request)
}

type ShiftHandlerImpl struct {
	shiftService shift.ShiftService
}

func NewShiftHandler(shiftService shift.ShiftService) ShiftHandler {
	return &ShiftHandlerImpl{shiftService: shiftService}
}

// Create implements ShiftHandler.
func (h *ShiftHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req shift.CreateShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := validator.Validate(req); err != nil {
		response.HandleError(w, err)
		return
	}

	resp, err := h.shiftService.CreateShiftWithWorkers(r.Context(), req)
	if err != nil {
		slog.Error("Failed to create shift", "error", err)
		response.HandleError(w, err)
		return
	}

	if len(resp.Warnings) > 0 {
		response.MultiStatus(w, "Shift created, some workers were not assigned", resp)
		return
	}
	response.Created(w, "Shift created successfully", resp)
}

// CreateRecurring implements ShiftHandler.
func (h *ShiftHandlerImpl) CreateRecurring(w http.ResponseWriter, r *http.Request) {
	var req shift.CreateRecurringRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := validator.Validate(req); err != nil {
		response.HandleError(w, err)
		return
	}

	resp, err := h.shiftService.CreateRecurringShifts(r.Context(), req)
	if err != nil {
		slog.Error("Failed to create recurring shifts", "error", err)
		response.HandleError(w, err)
		return
	}

	if len(resp.Warnings) > 0 {
		response.MultiStatus(w, "Recurring shifts created with warnings", resp)
		return
	}
	response.Created(w, "Recurring shifts created successfully", resp)
}

// Move implements ShiftHandler.
func (h *ShiftHandlerImpl) Move(w http.ResponseWriter, r *http.Request) {
	var req shift.MoveShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ShiftID = chi.URLParam(r, "shiftID")
	if err := validator.Validate(req); err != nil {
		response.HandleError(w, err)
		return
	}

	resp, err := h.shiftService.MoveShiftToDate(r.Context(), req)
	if err != nil {
		slog.Error("Failed to move shift", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift moved successfully", resp)
}

// UpdateTimes implements ShiftHandler.
func (h *ShiftHandlerImpl) UpdateTimes(w http.ResponseWriter, r *http.Request) {
	var req shift.UpdateShiftTimesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ShiftID = chi.URLParam(r, "shiftID")
	if err := validator.Validate(req); err != nil {
		response.HandleError(w, err)
		return
	}

	resp, err := h.shiftService.UpdateShiftTimes(r.Context(), req)
	if err != nil {
		slog.Error("Failed to update shift times", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift times updated", resp)
}

// Delete implements ShiftHandler.
func (h *ShiftHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.shiftService.DeleteShift(r.Context(), chi.URLParam(r, "shiftID")); err != nil {
		slog.Error("Failed to delete shift", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift deleted", nil)
}

// GetByID implements ShiftHandler.
func (h *ShiftHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	sh, assignments, err := h.shiftService.GetShift(r.Context(), chi.URLParam(r, "shiftID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]interface{}{
		"shift":       sh,
		"assignments": assignments,
	})
}

// ListBySite implements ShiftHandler.
func (h *ShiftHandlerImpl) ListBySite(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	if from == "" || to == "" {
		response.BadRequest(w, "Query parameters 'from' and 'to' are required", nil)
		return
	}

	shifts, err := h.shiftService.ListBySite(r.Context(), chi.URLParam(r, "siteID"), from, to)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, shifts)
}
