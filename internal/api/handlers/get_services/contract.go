package get_services

import (
	"context"

	"github.com/salaoflow/booking-service/internal/domain"
)

// CatalogService интерфейс снимка каталога
type CatalogService interface {
	Services(ctx context.Context) []domain.Service
	ServicesByCategory(ctx context.Context, category string) []domain.Service
	Categories(ctx context.Context) []string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
