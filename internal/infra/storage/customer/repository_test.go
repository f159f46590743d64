package customer

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
	createdAt := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO customers (id,name,phone) VALUES ($1,$2,$3) RETURNING created_at")).
		WithArgs("cust-1", "João Silva", "11987654321").
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(createdAt))

	customer, err := repo.Create(context.Background(), &domain.Customer{
		ID:    "cust-1",
		Name:  "João Silva",
		Phone: "11987654321",
	})
	require.NoError(t, err)
	assert.Equal(t, createdAt, customer.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByPhone(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	createdAt := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, phone, created_at FROM customers WHERE phone = $1")).
		WithArgs("11987654321").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "phone", "created_at"}).
			AddRow("cust-1", "João Silva", "11987654321", createdAt))

	customer, err := repo.GetByPhone(context.Background(), "11987654321")
	require.NoError(t, err)
	assert.Equal(t, "cust-1", customer.ID)
	assert.Equal(t, "João Silva", customer.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByPhone_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, phone, created_at FROM customers WHERE phone = $1")).
		WithArgs("000").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "phone", "created_at"}))

	_, err = repo.GetByPhone(context.Background(), "000")
	assert.ErrorIs(t, err, ErrCustomerNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
