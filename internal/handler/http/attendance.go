package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/clearshift/workforce-backend-go/internal/domain/attendance"
	"github.com/clearshift/workforce-backend-go/internal/handler/http/response"
	"github.com/clearshift/workforce-backend-go/internal/pkg/validator"
)

type AttendanceHandler interface {
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	Correct(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// ClockIn implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	var req attendance.ClockInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := validator.Validate(req); err != nil {
		response.HandleError(w, err)
		return
	}

	resp, err := h.attendanceService.ClockIn(r.Context(), req)
	if err != nil {
		slog.Error("Failed to clock in", "error", err, "worker_id", req.WorkerID, "shift_id", req.ShiftID)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Clock-in recorded", resp)
}

// ClockOut implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	var req attendance.ClockOutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := validator.Validate(req); err != nil {
		response.HandleError(w, err)
		return
	}

	resp, err := h.attendanceService.ClockOut(r.Context(), req)
	if err != nil {
		slog.Error("Failed to clock out", "error", err, "worker_id", req.WorkerID, "shift_id", req.ShiftID)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Clock-out recorded", resp)
}

// Correct implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Correct(w http.ResponseWriter, r *http.Request) {
	var req attendance.CorrectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := validator.Validate(req); err != nil {
		response.HandleError(w, err)
		return
	}

	resp, err := h.attendanceService.CorrectAttendance(r.Context(), req)
	if err != nil {
		slog.Error("Failed to correct attendance", "error", err, "worker_id", req.WorkerID, "shift_id", req.ShiftID)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance corrected", resp)
}

// List implements AttendanceHandler.
func (h *AttendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter, err := filterFromQuery(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	records, err := h.attendanceService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

func filterFromQuery(r *http.Request) (attendance.Filter, error) {
	var filter attendance.Filter
	q := r.URL.Query()

	if v := q.Get("worker_id"); v != "" {
		filter.WorkerID = &v
	}
	if v := q.Get("shift_id"); v != "" {
		filter.ShiftID = &v
	}
	if v := q.Get("status"); v != "" {
		status := attendance.Status(v)
		if !status.Valid() {
			return attendance.Filter{}, attendance.ErrUnknownStatus
		}
		filter.Status = &status
	}
	if v := q.Get("from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return attendance.Filter{}, err
		}
		filter.From = &t
	}
	if v := q.Get("to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return attendance.Filter{}, err
		}
		filter.To = &t
	}

	return filter, nil
}
