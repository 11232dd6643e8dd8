package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/clearshift/workforce-backend-go/internal/domain/attendance"
	"github.com/clearshift/workforce-backend-go/internal/handler/http/response"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAttendanceService struct {
	clockInFn  func(ctx context.Context, req attendance.ClockInRequest) (attendance.ClockInResponse, error)
	clockOutFn func(ctx context.Context, req attendance.ClockOutRequest) (attendance.ClockOutResponse, error)
	correctFn  func(ctx context.Context, req attendance.CorrectionRequest) (attendance.CorrectionResponse, error)
	listFn     func(ctx context.Context, filter attendance.Filter) ([]attendance.AttendanceResponse, error)
}

func (f *fakeAttendanceService) ClockIn(ctx context.Context, req attendance.ClockInRequest) (attendance.ClockInResponse, error) {
	return f.clockInFn(ctx, req)
}
func (f *fakeAttendanceService) ClockOut(ctx context.Context, req attendance.ClockOutRequest) (attendance.ClockOutResponse, error) {
	return f.clockOutFn(ctx, req)
}
func (f *fakeAttendanceService) CorrectAttendance(ctx context.Context, req attendance.CorrectionRequest) (attendance.CorrectionResponse, error) {
	return f.correctFn(ctx, req)
}
func (f *fakeAttendanceService) List(ctx context.Context, filter attendance.Filter) ([]attendance.AttendanceResponse, error) {
	return f.listFn(ctx, filter)
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var body response.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestAttendanceHandler_ClockIn_Created(t *testing.T) {
	svc := &fakeAttendanceService{
		clockInFn: func(_ context.Context, req attendance.ClockInRequest) (attendance.ClockInResponse, error) {
			return attendance.ClockInResponse{AttendanceID: uuid.New().String(), Status: attendance.StatusPresent}, nil
		},
	}
	handler := NewAttendanceHandler(svc)

	payload := `{"worker_id":"` + uuid.New().String() + `","shift_id":"` + uuid.New().String() + `","method":"geofence"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/attendance/clock-in", strings.NewReader(payload))
	rec := httptest.NewRecorder()

	handler.ClockIn(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.True(t, body.Success)
}

func TestAttendanceHandler_ClockIn_ValidationFailure(t *testing.T) {
	handler := NewAttendanceHandler(&fakeAttendanceService{})

	// qrcode method without a code must not reach the service.
	payload := `{"worker_id":"` + uuid.New().String() + `","shift_id":"` + uuid.New().String() + `","method":"qrcode"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/attendance/clock-in", strings.NewReader(payload))
	rec := httptest.NewRecorder()

	handler.ClockIn(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := decodeBody(t, rec)
	require.NotNil(t, body.Error)
	assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
	assert.Contains(t, body.Error.Details, "code")
}

func TestAttendanceHandler_ClockIn_DomainErrorMapped(t *testing.T) {
	svc := &fakeAttendanceService{
		clockInFn: func(_ context.Context, _ attendance.ClockInRequest) (attendance.ClockInResponse, error) {
			return attendance.ClockInResponse{}, attendance.ErrAlreadyClockedIn
		},
	}
	handler := NewAttendanceHandler(svc)

	payload := `{"worker_id":"` + uuid.New().String() + `","shift_id":"` + uuid.New().String() + `","method":"manual"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/attendance/clock-in", strings.NewReader(payload))
	rec := httptest.NewRecorder()

	handler.ClockIn(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	body := decodeBody(t, rec)
	require.NotNil(t, body.Error)
	assert.Equal(t, "CONFLICT", body.Error.Code)
}

func TestAttendanceHandler_List_BadStatusFilter(t *testing.T) {
	handler := NewAttendanceHandler(&fakeAttendanceService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/attendance?status=tardy", nil)
	rec := httptest.NewRecorder()

	handler.List(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
