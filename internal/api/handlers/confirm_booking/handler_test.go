package confirm_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salaoflow/booking-service/internal/domain"
	confirmBooking "github.com/salaoflow/booking-service/internal/usecase/confirm_booking"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type fakeUseCase struct {
	response *confirmBooking.Response
	err      error

	lastRequest *confirmBooking.Request
}

func (f *fakeUseCase) Execute(ctx context.Context, req *confirmBooking.Request) (*confirmBooking.Response, error) {
	f.lastRequest = req
	if f.err != nil {
		return nil, f.err
	}
	return f.response, nil
}

func doRequest(t *testing.T, uc *fakeUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()
	handler := NewHandler(uc, noopLogger{})

	router := mux.NewRouter()
	router.HandleFunc("/api/v1/sessions/{id}/confirm", handler.Handle).Methods(http.MethodPost)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions/sess-1/confirm", strings.NewReader(body))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestHandler_Handle_Success(t *testing.T) {
	uc := &fakeUseCase{
		response: &confirmBooking.Response{
			Session: &domain.BookingSession{
				ID:   "sess-1",
				Step: domain.StepSuccess,
				Confirmation: &domain.AppointmentConfirmation{
					AppointmentID: "A123",
					ServiceName:   "Corte de Cabelo",
					Date:          "10/03/2025",
					Time:          "14:00",
				},
			},
		},
	}

	recorder := doRequest(t, uc, `{"customerName":"João Silva","customerPhone":"11987654321"}`)
	require.Equal(t, http.StatusOK, recorder.Code)

	require.NotNil(t, uc.lastRequest)
	assert.Equal(t, "sess-1", uc.lastRequest.SessionID)
	assert.Equal(t, "João Silva", uc.lastRequest.CustomerName)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "success", body["step"])
	confirmation := body["confirmation"].(map[string]interface{})
	assert.Equal(t, "A123", confirmation["appointmentId"])
	assert.Equal(t, "10/03/2025", confirmation["date"])
}

func TestHandler_Handle_ErrorMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"session not found", confirmBooking.ErrSessionNotFound, http.StatusNotFound},
		{"wrong step", confirmBooking.ErrWrongStep, http.StatusConflict},
		{"already submitting", confirmBooking.ErrAlreadySubmitting, http.StatusConflict},
		{"incomplete draft", confirmBooking.ErrIncompleteDraft, http.StatusBadRequest},
		{"missing contact info", confirmBooking.ErrMissingContactInfo, http.StatusBadRequest},
		{"superseded", confirmBooking.ErrSuperseded, http.StatusConflict},
		{"internal", confirmBooking.ErrInternal, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			recorder := doRequest(t, &fakeUseCase{err: tc.err}, `{}`)
			assert.Equal(t, tc.wantStatus, recorder.Code)

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestHandler_Handle_InvalidBody(t *testing.T) {
	recorder := doRequest(t, &fakeUseCase{}, `{not json`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
