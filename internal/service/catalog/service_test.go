package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salaoflow/booking-service/internal/integrations/catalogservice"
	"github.com/salaoflow/booking-service/pkg/ptr"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type fakeCatalogClient struct {
	services      []catalogservice.Service
	professionals []catalogservice.Professional
	err           error

	serviceCalls      int
	professionalCalls int
}

func (f *fakeCatalogClient) ListServices(ctx context.Context) ([]catalogservice.Service, error) {
	f.serviceCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.services, nil
}

func (f *fakeCatalogClient) ListProfessionals(ctx context.Context) ([]catalogservice.Professional, error) {
	f.professionalCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.professionals, nil
}

func TestService_Services_FromClient(t *testing.T) {
	client := &fakeCatalogClient{
		services: []catalogservice.Service{
			{ID: "s1", Name: "Corte Feminino", Category: ptr.Ptr("Cabelo"), Duration: ptr.Ptr("01:30:00"), Price: 80},
			{ID: "s2", Name: "Manicure", Category: ptr.Ptr("Unhas"), Price: 40},
		},
		professionals: []catalogservice.Professional{
			{ID: "p1", Name: "Ana", Position: ptr.Ptr("Cabeleireira")},
		},
	}
	svc := NewService(client, noopLogger{})

	services := svc.Services(context.Background())
	require.Len(t, services, 2)
	assert.Equal(t, "s1", services[0].ID)
	assert.Equal(t, "Cabelo", services[0].Category)
	assert.Equal(t, "01:30:00", services[0].Duration)
	assert.Equal(t, 80.0, services[0].Price)

	professionals := svc.Professionals(context.Background())
	require.Len(t, professionals, 1)
	assert.Equal(t, "Ana", professionals[0].Name)
}

func TestService_Services_FallbackOnError(t *testing.T) {
	client := &fakeCatalogClient{err: errors.New("connection refused")}
	svc := NewService(client, noopLogger{})

	services := svc.Services(context.Background())
	require.Len(t, services, 2)
	assert.Equal(t, "550e8400-e29b-41d4-a716-446655440001", services[0].ID)
	assert.Equal(t, "Corte de Cabelo", services[0].Name)
	assert.Equal(t, "550e8400-e29b-41d4-a716-446655440002", services[1].ID)
	assert.Equal(t, "Barba", services[1].Name)

	professionals := svc.Professionals(context.Background())
	require.Len(t, professionals, 2)
	assert.Equal(t, "650e8400-e29b-41d4-a716-446655440001", professionals[0].ID)
	assert.Equal(t, "Vitor", professionals[0].Name)
	assert.Equal(t, "650e8400-e29b-41d4-a716-446655440002", professionals[1].ID)
	assert.Equal(t, "Vinícius", professionals[1].Name)
}

func TestService_Services_FallbackOnEmpty(t *testing.T) {
	client := &fakeCatalogClient{}
	svc := NewService(client, noopLogger{})

	services := svc.Services(context.Background())
	require.Len(t, services, 2)
	assert.Equal(t, "Corte de Cabelo", services[0].Name)
}

func TestService_SnapshotLoadedOnce(t *testing.T) {
	client := &fakeCatalogClient{
		services:      []catalogservice.Service{{ID: "s1", Name: "Corte"}},
		professionals: []catalogservice.Professional{{ID: "p1", Name: "Ana"}},
	}
	svc := NewService(client, noopLogger{})

	_ = svc.Services(context.Background())
	_ = svc.Services(context.Background())
	_ = svc.Professionals(context.Background())

	assert.Equal(t, 1, client.serviceCalls)
	assert.Equal(t, 1, client.professionalCalls)
}

func TestService_Categories(t *testing.T) {
	client := &fakeCatalogClient{
		services: []catalogservice.Service{
			{ID: "s1", Name: "Corte", Category: ptr.Ptr("Cabelo")},
			{ID: "s2", Name: "Escova", Category: ptr.Ptr("Cabelo")},
			{ID: "s3", Name: "Barba", Category: ptr.Ptr("Barba")},
			{ID: "s4", Name: "Sem categoria"},
		},
		professionals: []catalogservice.Professional{{ID: "p1", Name: "Ana"}},
	}
	svc := NewService(client, noopLogger{})

	categories := svc.Categories(context.Background())
	assert.Equal(t, []string{"Barba", "Cabelo"}, categories)
}

func TestService_ServicesByCategory(t *testing.T) {
	client := &fakeCatalogClient{
		services: []catalogservice.Service{
			{ID: "s1", Name: "Corte", Category: ptr.Ptr("Cabelo")},
			{ID: "s2", Name: "Barba", Category: ptr.Ptr("Barba")},
		},
		professionals: []catalogservice.Professional{{ID: "p1", Name: "Ana"}},
	}
	svc := NewService(client, noopLogger{})

	services := svc.ServicesByCategory(context.Background(), "Cabelo")
	require.Len(t, services, 1)
	assert.Equal(t, "s1", services[0].ID)

	assert.Empty(t, svc.ServicesByCategory(context.Background(), "Unhas"))
}

func TestService_FindService(t *testing.T) {
	client := &fakeCatalogClient{
		services:      []catalogservice.Service{{ID: "s1", Name: "Corte"}},
		professionals: []catalogservice.Professional{{ID: "p1", Name: "Ana"}},
	}
	svc := NewService(client, noopLogger{})

	found, err := svc.FindService(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, "Corte", found.Name)

	_, err = svc.FindService(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestService_FindProfessional(t *testing.T) {
	client := &fakeCatalogClient{
		services:      []catalogservice.Service{{ID: "s1", Name: "Corte"}},
		professionals: []catalogservice.Professional{{ID: "p1", Name: "Ana"}},
	}
	svc := NewService(client, noopLogger{})

	found, err := svc.FindProfessional(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "Ana", found.Name)

	_, err = svc.FindProfessional(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrProfessionalNotFound)
}
