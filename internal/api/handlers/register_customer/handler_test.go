package register_customer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	registerCustomer "github.com/salaoflow/booking-service/internal/usecase/register_customer"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type fakeUseCase struct {
	response *registerCustomer.Response
	err      error
}

func (f *fakeUseCase) Execute(ctx context.Context, req *registerCustomer.Request) (*registerCustomer.Response, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.response, nil
}

func TestHandler_Handle_Success(t *testing.T) {
	handler := NewHandler(&fakeUseCase{
		response: &registerCustomer.Response{CustomerID: "cust-1", Message: "Cliente registrado com sucesso"},
	}, noopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/register-customer",
		strings.NewReader(`{"name":"João Silva","phone":"11987654321"}`))
	recorder := httptest.NewRecorder()
	handler.Handle(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)

	var body RegisterCustomerResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "cust-1", body.CustomerID)
	assert.Equal(t, "Cliente registrado com sucesso", body.Message)
}

func TestHandler_Handle_InvalidInput(t *testing.T) {
	handler := NewHandler(&fakeUseCase{err: registerCustomer.ErrInvalidInput}, noopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/register-customer",
		strings.NewReader(`{"name":"","phone":""}`))
	recorder := httptest.NewRecorder()
	handler.Handle(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
