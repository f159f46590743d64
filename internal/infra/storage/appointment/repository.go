package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/salaoflow/booking-service/internal/domain"
	"github.com/salaoflow/booking-service/pkg/dbmetrics"
	"github.com/salaoflow/booking-service/pkg/psqlbuilder"
)

// Repository репозиторий для работы с записями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую запись
// Если в контексте передана активная транзакция, использует её
func (r *Repository) Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"id",
			"customer_id",
			"service_id",
			"professional_id",
			"appointment_date",
			"appointment_time",
			"status",
		).
		Values(
			appointment.ID,
			appointment.CustomerID,
			appointment.ServiceID,
			appointment.ProfessionalID,
			appointment.Date,
			appointment.Time,
			appointment.Status,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	appointment.CreatedAt = createdAt.Time
	appointment.UpdatedAt = updatedAt.Time

	return appointment, nil
}

// ExistsAtSlot проверяет, занят ли слот у мастера
func (r *Repository) ExistsAtSlot(ctx context.Context, professionalID string, date time.Time, slot string) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("appointments").
		Where(squirrel.Eq{
			"professional_id":  professionalID,
			"appointment_date": date,
			"appointment_time": slot,
		}).
		Where(squirrel.NotEq{"status": domain.AppointmentStatusCancelled}).
		Limit(1).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: ExistsAtSlot - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("%w: ExistsAtSlot - execute select: %v", ErrExecQuery, err)
	}

	return true, nil
}
