package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/salaoflow/booking-service/internal/domain"
	customerRepo "github.com/salaoflow/booking-service/internal/infra/storage/customer"
)

// UseCase use case создания записи
type UseCase struct {
	customerRepo    CustomerRepository
	appointmentRepo AppointmentRepository
	publisher       EventPublisher
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	customerRepo CustomerRepository,
	appointmentRepo AppointmentRepository,
	publisher EventPublisher,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		customerRepo:    customerRepo,
		appointmentRepo: appointmentRepo,
		publisher:       publisher,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case создания записи.
// Клиент без готового ID регистрируется на лету по телефону в той же
// сериализуемой транзакции, что и вставка записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: customer=%s, service=%s, professional=%s, date=%s, time=%s",
		req.CustomerID, req.ServiceID, req.ProfessionalID, req.Date, req.Time)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем, что клиента можно определить
	if err := validateCustomerInfo(req); err != nil {
		uc.logger.Warn("CreateAppointment: customer info invalid: %v", err)
		return nil, err
	}

	date, _ := time.Parse(domain.DateFormat, req.Date)

	status := domain.AppointmentStatus(req.Status)
	if req.Status == "" {
		status = domain.AppointmentStatusPending
	}

	var created *domain.Appointment

	// 3. Определяем клиента и создаем запись в одной транзакции
	err := uc.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		customerID, err := uc.resolveCustomer(ctx, req)
		if err != nil {
			return err
		}

		// Занятость слота не блокирует создание: пересечения разруливает
		// администратор, здесь только след в логах
		if req.ProfessionalID != "" {
			taken, err := uc.appointmentRepo.ExistsAtSlot(ctx, req.ProfessionalID, date, req.Time.String())
			if err != nil {
				return fmt.Errorf("failed to check slot: %w", err)
			}
			if taken {
				uc.logger.Warn("CreateAppointment: professional=%s already has appointment at %s %s",
					req.ProfessionalID, req.Date, req.Time)
			}
		}

		created, err = uc.appointmentRepo.Create(ctx, &domain.Appointment{
			ID:             uuid.NewString(),
			CustomerID:     customerID,
			ServiceID:      req.ServiceID,
			ProfessionalID: req.ProfessionalID,
			Date:           date,
			Time:           req.Time,
			Status:         status,
		})
		if err != nil {
			return fmt.Errorf("failed to create appointment: %w", err)
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrCustomerCreateFailed) {
			return nil, err
		}
		uc.logger.Error("CreateAppointment: service=%s date=%s failed: %v", req.ServiceID, req.Date, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 4. Публикуем событие; сбой публикации не отменяет созданную запись
	if err := uc.publisher.PublishAppointmentCreated(ctx, created); err != nil {
		uc.logger.Warn("CreateAppointment: appointment=%s event publish failed: %v", created.ID, err)
	}

	uc.logger.Info("CreateAppointment: appointment=%s created for customer=%s", created.ID, created.CustomerID)

	return &Response{
		ID:             created.ID,
		CustomerID:     created.CustomerID,
		ServiceID:      created.ServiceID,
		ProfessionalID: created.ProfessionalID,
		Date:           created.Date,
		Time:           created.Time,
		Status:         created.Status,
		CreatedAt:      created.CreatedAt,
		UpdatedAt:      created.UpdatedAt,
	}, nil
}

// resolveCustomer возвращает ID клиента: готовый из запроса либо
// найденный/созданный по телефону
func (uc *UseCase) resolveCustomer(ctx context.Context, req *Request) (string, error) {
	if req.CustomerID != "" {
		return req.CustomerID, nil
	}

	existing, err := uc.customerRepo.GetByPhone(ctx, *req.CustomerPhone)
	if err == nil {
		return existing.ID, nil
	}
	if !errors.Is(err, customerRepo.ErrCustomerNotFound) {
		return "", fmt.Errorf("failed to find customer by phone: %w", err)
	}

	created, err := uc.customerRepo.Create(ctx, &domain.Customer{
		ID:    uuid.NewString(),
		Name:  *req.CustomerName,
		Phone: *req.CustomerPhone,
	})
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to create customer profile: %v", err)
		return "", ErrCustomerCreateFailed
	}

	return created.ID, nil
}
