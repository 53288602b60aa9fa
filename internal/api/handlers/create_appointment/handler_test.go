package create_appointment

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	createAppointment "github.com/m04kA/SMC-SiteOpsService/internal/usecase/create_appointment"
)

type stubUseCase struct {
	response *createAppointment.Response
	err      error

	gotRequest *createAppointment.Request
}

func (s *stubUseCase) Execute(_ context.Context, req *createAppointment.Request) (*createAppointment.Response, error) {
	s.gotRequest = req
	if s.err != nil {
		return nil, s.err
	}
	return s.response, nil
}

type stubLogger struct{}

func (stubLogger) Info(string, ...interface{})  {}
func (stubLogger) Warn(string, ...interface{})  {}
func (stubLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, handler *Handler, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", bytes.NewReader(raw))
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)
	return rec
}

func validBody() map[string]interface{} {
	return map[string]interface{}{
		"customerName":  "Иван Петров",
		"customerEmail": "ivan@example.com",
		"customerPhone": "+15550123",
		"date":          "2026-09-14",
		"startTime":     "10:30",
		"projectType":   "deck",
		"address":       "ул. Садовая, 5",
	}
}

func TestHandler_Created(t *testing.T) {
	uc := &stubUseCase{response: &createAppointment.Response{
		ID:          "apt-1",
		Status:      "scheduled",
		ProjectType: "deck",
	}}
	handler := NewHandler(uc, stubLogger{})

	rec := doRequest(t, handler, validBody())

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp AppointmentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "apt-1", resp.ID)
	assert.Equal(t, "scheduled", resp.Status)

	require.NotNil(t, uc.gotRequest)
	assert.Equal(t, "ivan@example.com", uc.gotRequest.CustomerEmail)
	assert.Equal(t, "10:30", uc.gotRequest.StartTime.String())
}

func TestHandler_InvalidBody(t *testing.T) {
	handler := NewHandler(&stubUseCase{}, stubLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", bytes.NewReader([]byte("not json")))
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_InvalidDateFormat(t *testing.T) {
	uc := &stubUseCase{}
	handler := NewHandler(uc, stubLogger{})

	body := validBody()
	body["date"] = "14.09.2026"

	rec := doRequest(t, handler, body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.gotRequest)
}

func TestHandler_SlotNotAvailable(t *testing.T) {
	uc := &stubUseCase{err: createAppointment.ErrSlotNotAvailable}
	handler := NewHandler(uc, stubLogger{})

	rec := doRequest(t, handler, validBody())

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandler_UseCaseErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"business closed", createAppointment.ErrBusinessClosed, http.StatusBadRequest},
		{"past date", createAppointment.ErrInvalidDate, http.StatusBadRequest},
		{"too far in future", createAppointment.ErrDateTooFarInFuture, http.StatusBadRequest},
		{"off grid slot", createAppointment.ErrInvalidTimeSlot, http.StatusBadRequest},
		{"unknown project type", createAppointment.ErrUnknownProjectType, http.StatusBadRequest},
		{"invalid input", createAppointment.ErrInvalidInput, http.StatusBadRequest},
		{"internal", createAppointment.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewHandler(&stubUseCase{err: tt.err}, stubLogger{})

			rec := doRequest(t, handler, validBody())

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
