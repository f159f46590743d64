package customerservice

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func TestClient_RegisterCustomer_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/register-customer", r.URL.Path)

		var req RegisterCustomerRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Ana", req.Name)
		assert.Equal(t, "+5511999999999", req.Phone)

		json.NewEncoder(w).Encode(RegisterCustomerResult{
			Success:    true,
			CustomerID: "cust-1",
			Message:    "Cliente registrado com sucesso",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second, noopLogger{})

	result, err := client.RegisterCustomer(context.Background(), "Ana", "+5511999999999")
	require.NoError(t, err)
	assert.Equal(t, "cust-1", result.CustomerID)
}

func TestClient_RegisterCustomer_Rejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(RegisterCustomerResult{
			Success: false,
			Error:   "Nome e telefone são obrigatórios",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second, noopLogger{})

	_, err := client.RegisterCustomer(context.Background(), "", "")
	assert.ErrorIs(t, err, ErrRegistrationRejected)
}

func TestClient_RegisterCustomer_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // сервер уже остановлен

	client := NewClient(server.URL, time.Second, noopLogger{})

	_, err := client.RegisterCustomer(context.Background(), "Ana", "+5511999999999")
	assert.ErrorIs(t, err, ErrInternal)
}
