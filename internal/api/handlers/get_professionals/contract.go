package get_professionals

import (
	"context"

	"github.com/salaoflow/booking-service/internal/domain"
)

// CatalogService интерфейс снимка каталога
type CatalogService interface {
	Professionals(ctx context.Context) []domain.Professional
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
