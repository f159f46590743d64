package catalog

import (
	"context"

	"github.com/salaoflow/booking-service/internal/integrations/catalogservice"
)

// CatalogClient загружает каталог услуг и мастеров из внешнего сервиса
type CatalogClient interface {
	ListServices(ctx context.Context) ([]catalogservice.Service, error)
	ListProfessionals(ctx context.Context) ([]catalogservice.Professional, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
