package customerservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент реестра клиентов
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента реестра клиентов
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// RegisterCustomer регистрирует клиента по имени и телефону
// Реестр идемпотентен по телефону: повторная регистрация возвращает
// идентификатор существующего клиента
func (c *Client) RegisterCustomer(ctx context.Context, name, phone string) (*RegisterCustomerResult, error) {
	payload, err := json.Marshal(RegisterCustomerRequest{Name: name, Phone: phone})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	url := c.baseURL + "/api/register-customer"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	var result RegisterCustomerResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response (status %d): %v", ErrInvalidResponse, resp.StatusCode, err)
	}

	if !result.Success || result.CustomerID == "" {
		c.log.Warn("RegisterCustomer: registry rejected phone=%s: %s", phone, result.Error)
		return nil, fmt.Errorf("%w: %s", ErrRegistrationRejected, result.Error)
	}

	return &result, nil
}
