package identity

import (
	"context"

	"github.com/salaoflow/booking-service/internal/domain"
	"github.com/salaoflow/booking-service/internal/integrations/customerservice"
)

// CustomerRegistry регистрирует клиента во внешнем реестре
type CustomerRegistry interface {
	RegisterCustomer(ctx context.Context, name, phone string) (*customerservice.RegisterCustomerResult, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Resolver определяет личность клиента перед сохранением записи.
// Ошибка реестра при известном телефоне не прерывает запись:
// вместо нее подставляется временная личность с префиксом temp_
type Resolver struct {
	registry CustomerRegistry
	log      Logger
}

// NewResolver создает новый экземпляр резолвера клиентов
func NewResolver(registry CustomerRegistry, log Logger) *Resolver {
	return &Resolver{
		registry: registry,
		log:      log,
	}
}

// Resolve определяет личность клиента по имени и телефону.
// Ранее определенная личность переиспользуется без повторного
// обращения к реестру
func (r *Resolver) Resolve(ctx context.Context, name, phone string, prior *domain.CustomerIdentity) (*domain.CustomerIdentity, error) {
	// 1. Переиспользуем уже определенную личность
	if prior != nil && prior.ID != "" {
		return prior, nil
	}

	// 2. Есть имя и телефон - регистрируем в реестре
	if name != "" && phone != "" {
		result, err := r.registry.RegisterCustomer(ctx, name, phone)
		if err != nil {
			r.log.Warn("identity: registry unavailable, falling back to temporary identity: %v", err)
			return domain.NewTemporaryIdentity(name, phone), nil
		}

		return &domain.CustomerIdentity{
			ID:    result.CustomerID,
			Name:  name,
			Phone: phone,
		}, nil
	}

	// 3. Только телефон - временная личность
	if phone != "" {
		return domain.NewTemporaryIdentity(name, phone), nil
	}

	// 4. Привязать запись не к кому
	return nil, ErrMissingContactInfo
}
