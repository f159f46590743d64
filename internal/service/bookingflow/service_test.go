package bookingflow

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salaoflow/booking-service/internal/domain"
	"github.com/salaoflow/booking-service/internal/infra/sessionstore"
	"github.com/salaoflow/booking-service/internal/infra/sessionstore/memory"
	"github.com/salaoflow/booking-service/internal/service/catalog"
	"github.com/salaoflow/booking-service/pkg/types"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type fixedTimeProvider struct {
	now time.Time
}

func (f fixedTimeProvider) Now() time.Time {
	return f.now
}

type fakeCatalog struct{}

func (fakeCatalog) Categories(ctx context.Context) []string {
	return []string{"Barba", "Cabelo"}
}

func (fakeCatalog) ServicesByCategory(ctx context.Context, category string) []domain.Service {
	if category == "Cabelo" {
		return []domain.Service{{ID: "svc-1", Name: "Corte de Cabelo", Category: "Cabelo"}}
	}
	return nil
}

func (fakeCatalog) FindService(ctx context.Context, id string) (*domain.Service, error) {
	if id == "svc-1" {
		return &domain.Service{ID: "svc-1", Name: "Corte de Cabelo", Category: "Cabelo"}, nil
	}
	return nil, catalog.ErrServiceNotFound
}

func (fakeCatalog) FindProfessional(ctx context.Context, id string) (*domain.Professional, error) {
	if id == "pro-1" {
		return &domain.Professional{ID: "pro-1", Name: "Vitor"}, nil
	}
	return nil, catalog.ErrProfessionalNotFound
}

type fakeSchedule struct{}

func (fakeSchedule) IsBookableSlot(slot types.TimeString) bool {
	return slot >= "08:00" && slot <= "18:30"
}

func newTestService(t *testing.T) (*Service, SessionStore) {
	t.Helper()
	store := memory.NewStore(time.Hour)
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	svc := NewService(store, fakeCatalog{}, fakeSchedule{}, fixedTimeProvider{now: now}, noopLogger{})
	return svc, store
}

func advanceToCheckout(t *testing.T, svc *Service) *domain.BookingSession {
	t.Helper()
	ctx := context.Background()

	session, err := svc.StartSession(ctx)
	require.NoError(t, err)

	_, err = svc.Begin(ctx, session.ID)
	require.NoError(t, err)
	_, err = svc.SelectCategory(ctx, session.ID, "Cabelo")
	require.NoError(t, err)
	_, err = svc.SelectService(ctx, session.ID, "svc-1")
	require.NoError(t, err)
	_, err = svc.SelectProfessional(ctx, session.ID, "pro-1")
	require.NoError(t, err)
	_, err = svc.SelectDate(ctx, session.ID, "2025-03-10")
	require.NoError(t, err)
	session, err = svc.SelectTime(ctx, session.ID, "14:00")
	require.NoError(t, err)

	return session
}

func TestService_StartSession(t *testing.T) {
	svc, _ := newTestService(t)

	session, err := svc.StartSession(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, session.ID)
	assert.Equal(t, domain.StepMenu, session.Step)
	assert.False(t, session.Draft.IsComplete())

	loaded, err := svc.GetSession(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Equal(t, session.ID, loaded.ID)
}

func TestService_FullFlowToCheckout(t *testing.T) {
	svc, _ := newTestService(t)

	session := advanceToCheckout(t, svc)
	assert.Equal(t, domain.StepCheckout, session.Step)
	assert.Equal(t, "Cabelo", session.Category)
	assert.Equal(t, "svc-1", session.Draft.ServiceID)
	assert.Equal(t, "pro-1", session.Draft.ProfessionalID)
	assert.Equal(t, "2025-03-10", session.Draft.Date)
	assert.Equal(t, types.TimeString("14:00"), session.Draft.Time)
	assert.True(t, session.Draft.IsComplete())
}

func TestService_TransitionRejectedAtWrongStep(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	session, err := svc.StartSession(ctx)
	require.NoError(t, err)

	// Сессия еще в меню, выбор категории недоступен
	_, err = svc.SelectCategory(ctx, session.ID, "Cabelo")
	assert.ErrorIs(t, err, ErrWrongStep)

	_, err = svc.SelectTime(ctx, session.ID, "14:00")
	assert.ErrorIs(t, err, ErrWrongStep)
}

func TestService_SelectService_UnknownService(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	session, err := svc.StartSession(ctx)
	require.NoError(t, err)
	_, err = svc.Begin(ctx, session.ID)
	require.NoError(t, err)
	_, err = svc.SelectCategory(ctx, session.ID, "Cabelo")
	require.NoError(t, err)

	_, err = svc.SelectService(ctx, session.ID, "missing")
	assert.ErrorIs(t, err, catalog.ErrServiceNotFound)

	// Сессия осталась на шаге выбора услуги
	loaded, err := svc.GetSession(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StepServices, loaded.Step)
}

func TestService_SelectService_CategoryMismatch(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	session, err := svc.StartSession(ctx)
	require.NoError(t, err)
	_, err = svc.Begin(ctx, session.ID)
	require.NoError(t, err)
	_, err = svc.SelectCategory(ctx, session.ID, "Barba")
	require.NoError(t, err)

	// svc-1 существует в каталоге, но относится к категории "Cabelo"
	_, err = svc.SelectService(ctx, session.ID, "svc-1")
	assert.ErrorIs(t, err, ErrServiceCategoryMismatch)

	loaded, err := svc.GetSession(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StepServices, loaded.Step)
	assert.Equal(t, "Barba", loaded.Category)
	assert.Empty(t, loaded.Draft.ServiceID)
}

func TestService_SelectDate_Validation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	newSessionAtDateStep := func() string {
		session, err := svc.StartSession(ctx)
		require.NoError(t, err)
		_, err = svc.Begin(ctx, session.ID)
		require.NoError(t, err)
		_, err = svc.SelectCategory(ctx, session.ID, "Cabelo")
		require.NoError(t, err)
		_, err = svc.SelectService(ctx, session.ID, "svc-1")
		require.NoError(t, err)
		_, err = svc.SelectProfessional(ctx, session.ID, "pro-1")
		require.NoError(t, err)
		return session.ID
	}

	id := newSessionAtDateStep()
	_, err := svc.SelectDate(ctx, id, "10/03/2025")
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = svc.SelectDate(ctx, id, "2025-02-28")
	assert.ErrorIs(t, err, ErrDateInPast)

	// Сегодняшняя дата допустима
	session, err := svc.SelectDate(ctx, id, "2025-03-01")
	require.NoError(t, err)
	assert.Equal(t, domain.StepTime, session.Step)
}

func TestService_SelectTime_RejectsUnbookableSlot(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	session, err := svc.StartSession(ctx)
	require.NoError(t, err)
	_, err = svc.Begin(ctx, session.ID)
	require.NoError(t, err)
	_, err = svc.SelectCategory(ctx, session.ID, "Cabelo")
	require.NoError(t, err)
	_, err = svc.SelectService(ctx, session.ID, "svc-1")
	require.NoError(t, err)
	_, err = svc.SelectProfessional(ctx, session.ID, "pro-1")
	require.NoError(t, err)
	_, err = svc.SelectDate(ctx, session.ID, "2025-03-10")
	require.NoError(t, err)

	_, err = svc.SelectTime(ctx, session.ID, "23:00")
	assert.ErrorIs(t, err, ErrSlotNotBookable)

	_, err = svc.SelectTime(ctx, session.ID, "not-a-time")
	assert.ErrorIs(t, err, ErrSlotNotBookable)
}

func TestService_GoBack_ClearsOnlyReturnedStep(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	session := advanceToCheckout(t, svc)

	// checkout -> time: черновик не трогаем
	session, err := svc.GoBack(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StepTime, session.Step)
	assert.Equal(t, types.TimeString("14:00"), session.Draft.Time)
	assert.Equal(t, int64(1), session.Generation)

	// time -> date: очищается только время
	session, err = svc.GoBack(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StepDate, session.Step)
	assert.True(t, session.Draft.Time.IsZero())
	assert.Equal(t, "2025-03-10", session.Draft.Date)

	// date -> professionals: очищается мастер
	session, err = svc.GoBack(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StepProfessionals, session.Step)
	assert.Empty(t, session.Draft.ProfessionalID)
	assert.Equal(t, "svc-1", session.Draft.ServiceID)

	// professionals -> services: очищается услуга
	session, err = svc.GoBack(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StepServices, session.Step)
	assert.Empty(t, session.Draft.ServiceID)
	assert.Equal(t, "Cabelo", session.Category)

	// services -> categories: очищается категория
	session, err = svc.GoBack(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StepCategories, session.Step)
	assert.Empty(t, session.Category)

	// categories -> menu
	session, err = svc.GoBack(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StepMenu, session.Step)
	assert.Equal(t, int64(6), session.Generation)
}

func TestService_GoBack_FromMenuDeletesSession(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	session, err := svc.StartSession(ctx)
	require.NoError(t, err)

	result, err := svc.GoBack(ctx, session.ID)
	require.NoError(t, err)
	assert.Nil(t, result)

	_, err = store.Get(ctx, session.ID)
	assert.ErrorIs(t, err, sessionstore.ErrSessionNotFound)
}

func TestService_GoBack_FromFailureKeepsDraft(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	session := advanceToCheckout(t, svc)
	session.Step = domain.StepFailure
	session.FailureReason = "Horário ocupado"
	session.Submitting = true
	require.NoError(t, store.Save(ctx, session))

	session, err := svc.GoBack(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StepCheckout, session.Step)
	assert.True(t, session.Draft.IsComplete())
	assert.Empty(t, session.FailureReason)
	assert.False(t, session.Submitting)
	assert.Equal(t, int64(1), session.Generation)
}
