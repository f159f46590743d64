package appointment

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salaoflow/booking-service/internal/domain"
)

func TestRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(
		"INSERT INTO appointments (id,customer_id,service_id,professional_id,appointment_date,appointment_time,status) "+
			"VALUES ($1,$2,$3,$4,$5,$6,$7) RETURNING created_at, updated_at")).
		WithArgs("apt-1", "cust-1", "svc-1", "pro-1", date, "14:00", "pending").
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	appointment, err := repo.Create(context.Background(), &domain.Appointment{
		ID:             "apt-1",
		CustomerID:     "cust-1",
		ServiceID:      "svc-1",
		ProfessionalID: "pro-1",
		Date:           date,
		Time:           "14:00",
		Status:         domain.AppointmentStatusPending,
	})
	require.NoError(t, err)
	assert.Equal(t, now, appointment.CreatedAt)
	assert.Equal(t, now, appointment.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ExistsAtSlot(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT 1 FROM appointments WHERE").
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))

	exists, err := repo.ExistsAtSlot(context.Background(), "pro-1", date, "14:00")
	require.NoError(t, err)
	assert.True(t, exists)

	mock.ExpectQuery("SELECT 1 FROM appointments WHERE").
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}))

	exists, err = repo.ExistsAtSlot(context.Background(), "pro-1", date, "15:00")
	require.NoError(t, err)
	assert.False(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}
