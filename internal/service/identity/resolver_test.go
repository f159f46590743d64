package identity

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salaoflow/booking-service/internal/domain"
	"github.com/salaoflow/booking-service/internal/integrations/customerservice"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type fakeRegistry struct {
	result *customerservice.RegisterCustomerResult
	err    error
	calls  int
}

func (f *fakeRegistry) RegisterCustomer(ctx context.Context, name, phone string) (*customerservice.RegisterCustomerResult, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func TestResolver_Resolve_Registered(t *testing.T) {
	registry := &fakeRegistry{
		result: &customerservice.RegisterCustomerResult{Success: true, CustomerID: "cust-42"},
	}
	resolver := NewResolver(registry, noopLogger{})

	identity, err := resolver.Resolve(context.Background(), "João Silva", "11987654321", nil)
	require.NoError(t, err)
	assert.Equal(t, "cust-42", identity.ID)
	assert.Equal(t, "João Silva", identity.Name)
	assert.Equal(t, "11987654321", identity.Phone)
	assert.False(t, identity.IsTemporary)
}

func TestResolver_Resolve_RegistryErrorFallsBackToTemporary(t *testing.T) {
	registry := &fakeRegistry{err: errors.New("connection refused")}
	resolver := NewResolver(registry, noopLogger{})

	identity, err := resolver.Resolve(context.Background(), "João Silva", "11987654321", nil)
	require.NoError(t, err)
	assert.Equal(t, "temp_11987654321", identity.ID)
	assert.True(t, identity.IsTemporary)
}

func TestResolver_Resolve_RegistryRejectionFallsBackToTemporary(t *testing.T) {
	registry := &fakeRegistry{err: customerservice.ErrRegistrationRejected}
	resolver := NewResolver(registry, noopLogger{})

	identity, err := resolver.Resolve(context.Background(), "João Silva", "11987654321", nil)
	require.NoError(t, err)
	assert.Equal(t, "temp_11987654321", identity.ID)
	assert.True(t, identity.IsTemporary)
}

func TestResolver_Resolve_PhoneOnly(t *testing.T) {
	registry := &fakeRegistry{}
	resolver := NewResolver(registry, noopLogger{})

	identity, err := resolver.Resolve(context.Background(), "", "11987654321", nil)
	require.NoError(t, err)
	assert.Equal(t, "temp_11987654321", identity.ID)
	assert.True(t, identity.IsTemporary)
	assert.Zero(t, registry.calls)
}

func TestResolver_Resolve_MissingContactInfo(t *testing.T) {
	registry := &fakeRegistry{}
	resolver := NewResolver(registry, noopLogger{})

	_, err := resolver.Resolve(context.Background(), "João Silva", "", nil)
	assert.ErrorIs(t, err, ErrMissingContactInfo)
	assert.Zero(t, registry.calls)
}

func TestResolver_Resolve_ReusesPriorIdentity(t *testing.T) {
	registry := &fakeRegistry{}
	resolver := NewResolver(registry, noopLogger{})

	prior := &domain.CustomerIdentity{ID: "cust-42", Name: "João Silva", Phone: "11987654321"}
	identity, err := resolver.Resolve(context.Background(), "", "", prior)
	require.NoError(t, err)
	assert.Equal(t, prior, identity)
	assert.Zero(t, registry.calls)
}
