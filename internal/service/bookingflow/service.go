package bookingflow

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/salaoflow/booking-service/internal/domain"
	"github.com/salaoflow/booking-service/pkg/types"
)

// Service управляет переходами сессии записи между шагами.
// Каждый переход: загрузка сессии, проверка текущего шага, мутация,
// сохранение. Никакой шаг не меняет поля, заполненные другими шагами
type Service struct {
	store        SessionStore
	catalog      Catalog
	schedule     Schedule
	timeProvider TimeProvider
	log          Logger
}

// NewService создает новый экземпляр state machine записи
func NewService(store SessionStore, catalog Catalog, schedule Schedule, timeProvider TimeProvider, log Logger) *Service {
	return &Service{
		store:        store,
		catalog:      catalog,
		schedule:     schedule,
		timeProvider: timeProvider,
		log:          log,
	}
}

// StartSession создает новую сессию на шаге меню
func (s *Service) StartSession(ctx context.Context) (*domain.BookingSession, error) {
	now := s.timeProvider.Now()
	session := &domain.BookingSession{
		ID:        uuid.NewString(),
		Step:      domain.StepMenu,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.store.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	s.log.Info("bookingflow: session %s started", session.ID)
	return session, nil
}

// GetSession возвращает сессию по идентификатору
func (s *Service) GetSession(ctx context.Context, id string) (*domain.BookingSession, error) {
	return s.store.Get(ctx, id)
}

// Begin переводит сессию из меню к выбору категории
func (s *Service) Begin(ctx context.Context, id string) (*domain.BookingSession, error) {
	return s.transition(ctx, id, domain.StepMenu, func(session *domain.BookingSession) error {
		session.Step = domain.StepCategories
		return nil
	})
}

// SelectCategory фиксирует категорию и переводит к выбору услуги
func (s *Service) SelectCategory(ctx context.Context, id string, category string) (*domain.BookingSession, error) {
	if category == "" {
		return nil, ErrEmptyCategory
	}

	return s.transition(ctx, id, domain.StepCategories, func(session *domain.BookingSession) error {
		session.Category = category
		session.Step = domain.StepServices
		return nil
	})
}

// SelectService фиксирует услугу и переводит к выбору мастера.
// Услуга должна существовать в каталоге и принадлежать выбранной категории
func (s *Service) SelectService(ctx context.Context, id string, serviceID string) (*domain.BookingSession, error) {
	service, err := s.catalog.FindService(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	return s.transition(ctx, id, domain.StepServices, func(session *domain.BookingSession) error {
		if service.Category != session.Category {
			return ErrServiceCategoryMismatch
		}

		session.Draft.ServiceID = serviceID
		session.Step = domain.StepProfessionals
		return nil
	})
}

// SelectProfessional фиксирует мастера и переводит к выбору даты
func (s *Service) SelectProfessional(ctx context.Context, id string, professionalID string) (*domain.BookingSession, error) {
	if _, err := s.catalog.FindProfessional(ctx, professionalID); err != nil {
		return nil, err
	}

	return s.transition(ctx, id, domain.StepProfessionals, func(session *domain.BookingSession) error {
		session.Draft.ProfessionalID = professionalID
		session.Step = domain.StepDate
		return nil
	})
}

// SelectDate фиксирует дату и переводит к выбору времени.
// Прошедшие даты отклоняются; сегодняшняя дата допустима
func (s *Service) SelectDate(ctx context.Context, id string, date string) (*domain.BookingSession, error) {
	parsed, err := time.Parse(domain.DateFormat, date)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}

	today := s.timeProvider.Now().Format(domain.DateFormat)
	if parsed.Format(domain.DateFormat) < today {
		return nil, ErrDateInPast
	}

	return s.transition(ctx, id, domain.StepDate, func(session *domain.BookingSession) error {
		session.Draft.Date = date
		session.Step = domain.StepTime
		return nil
	})
}

// SelectTime фиксирует время и переводит к чекауту
func (s *Service) SelectTime(ctx context.Context, id string, slot types.TimeString) (*domain.BookingSession, error) {
	if err := slot.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSlotNotBookable, err)
	}
	if !s.schedule.IsBookableSlot(slot) {
		return nil, fmt.Errorf("%w: %s", ErrSlotNotBookable, slot)
	}

	return s.transition(ctx, id, domain.StepTime, func(session *domain.BookingSession) error {
		session.Draft.Time = slot
		session.Step = domain.StepCheckout
		return nil
	})
}

// GoBack возвращает сессию на предыдущий шаг.
// Выбор шага, на который возвращаемся, очищается, чтобы его можно
// было сделать заново; выборы более ранних шагов сохраняются.
// Возврат с шага неудачи ничего не очищает: черновик остается
// готовым к повторному подтверждению
func (s *Service) GoBack(ctx context.Context, id string) (*domain.BookingSession, error) {
	session, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	// Возврат из меню и с шага успеха завершает сессию
	if session.Step == domain.StepMenu || session.Step == domain.StepSuccess {
		if err := s.store.Delete(ctx, id); err != nil {
			return nil, fmt.Errorf("failed to delete session: %w", err)
		}
		s.log.Info("bookingflow: session %s closed from step %s", id, session.Step)
		return nil, nil
	}

	switch session.Step {
	case domain.StepCategories:
		session.Step = domain.StepMenu
	case domain.StepServices:
		session.Step = domain.StepCategories
		session.Category = ""
	case domain.StepProfessionals:
		session.Step = domain.StepServices
		session.Draft.ServiceID = ""
	case domain.StepDate:
		session.Step = domain.StepProfessionals
		session.Draft.ProfessionalID = ""
	case domain.StepTime:
		session.Step = domain.StepDate
		session.Draft.Time = ""
	case domain.StepCheckout:
		session.Step = domain.StepTime
	case domain.StepFailure:
		session.Step = domain.StepCheckout
		session.FailureReason = ""
	default:
		return nil, fmt.Errorf("%w: cannot go back from step %s", ErrWrongStep, session.Step)
	}

	// Любая навигация назад делает результат подвисшего commit устаревшим
	session.Generation++
	session.Submitting = false
	session.UpdatedAt = s.timeProvider.Now()

	if err := s.store.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	return session, nil
}

func (s *Service) transition(ctx context.Context, id string, fromStep domain.Step, mutate func(*domain.BookingSession) error) (*domain.BookingSession, error) {
	// 1. Загружаем сессию
	session, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	// 2. Проверяем текущий шаг
	if session.Step != fromStep {
		return nil, fmt.Errorf("%w: expected %s, got %s", ErrWrongStep, fromStep, session.Step)
	}

	// 3. Применяем переход
	if err := mutate(session); err != nil {
		return nil, err
	}

	// 4. Сохраняем
	session.UpdatedAt = s.timeProvider.Now()
	if err := s.store.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	return session, nil
}
