package register_customer

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/salaoflow/booking-service/internal/domain"
	customerRepo "github.com/salaoflow/booking-service/internal/infra/storage/customer"
)

// Сообщения об исходе регистрации для клиента
const (
	msgCustomerFound      = "Cliente encontrado"
	msgCustomerRegistered = "Cliente registrado com sucesso"
)

// UseCase use case регистрации клиента
type UseCase struct {
	customerRepo CustomerRepository
	txManager    TransactionManager
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(customerRepo CustomerRepository, txManager TransactionManager, logger Logger) *UseCase {
	return &UseCase{
		customerRepo: customerRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute выполняет use case регистрации клиента.
// Телефон - естественный ключ: повторная регистрация с тем же номером
// возвращает существующего клиента. Сериализуемая транзакция
// предотвращает создание дублей при одновременных запросах
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RegisterCustomer: name=%s, phone=%s", req.Name, req.Phone)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RegisterCustomer: validation failed: %v", err)
		return nil, err
	}

	var response *Response

	// 2. Найти или создать клиента в одной транзакции
	err := uc.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		existing, err := uc.customerRepo.GetByPhone(ctx, req.Phone)
		if err == nil {
			response = &Response{
				CustomerID:     existing.ID,
				Message:        msgCustomerFound,
				AlreadyExisted: true,
			}
			return nil
		}
		if !errors.Is(err, customerRepo.ErrCustomerNotFound) {
			return fmt.Errorf("failed to find customer by phone: %w", err)
		}

		created, err := uc.customerRepo.Create(ctx, &domain.Customer{
			ID:    uuid.NewString(),
			Name:  req.Name,
			Phone: req.Phone,
		})
		if err != nil {
			return fmt.Errorf("failed to create customer: %w", err)
		}

		response = &Response{
			CustomerID: created.ID,
			Message:    msgCustomerRegistered,
		}
		return nil
	})

	if err != nil {
		uc.logger.Error("RegisterCustomer: phone=%s failed: %v", req.Phone, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	if response.AlreadyExisted {
		uc.logger.Info("RegisterCustomer: phone=%s already registered as %s", req.Phone, response.CustomerID)
	} else {
		uc.logger.Info("RegisterCustomer: phone=%s registered as %s", req.Phone, response.CustomerID)
	}

	return response, nil
}
