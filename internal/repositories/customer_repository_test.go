package repository_test

import (
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aaravmahajanofficial/ecommerce-analytics/internal/models"
	repository "github.com/aaravmahajanofficial/ecommerce-analytics/internal/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCustomerRepoTest(t *testing.T) (repository.CustomerRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err, "Failed to create sqlmock")

	t.Cleanup(func() {
		db.Close()
	})

	return repository.NewCustomerRepo(db), mock
}

var customerColumns = []string{"id", "name", "email", "country", "registration_date"}

func TestListCustomers(t *testing.T) {
	ctx := t.Context()
	repo, mock := setupCustomerRepoTest(t)
	registered := time.Date(2021, time.March, 3, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, email, country, registration_date FROM customers ORDER BY id`)).
		WillReturnRows(sqlmock.NewRows(customerColumns).
			AddRow(int64(1), "Alice", "alice@example.com", "USA", registered).
			AddRow(int64(2), "Bob", "bob@example.com", "UK", registered))

	customers, err := repo.ListCustomers(ctx)

	require.NoError(t, err)
	require.Len(t, customers, 2)
	assert.Equal(t, "UK", customers[1].Country)
	assert.Equal(t, models.DateOf(registered), customers[0].RegistrationDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateCustomer(t *testing.T) {
	ctx := t.Context()
	repo, mock := setupCustomerRepoTest(t)
	customer := &models.Customer{Name: "Alice", Email: "alice@example.com", Country: "USA", RegistrationDate: models.NewDate(2024, time.January, 15)}

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO customers (name, email, country, registration_date)`)).
		WithArgs("Alice", "alice@example.com", "USA", customer.RegistrationDate.Time).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(21)))

	err := repo.CreateCustomer(ctx, customer)

	require.NoError(t, err)
	assert.Equal(t, int64(21), customer.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCustomerByID(t *testing.T) {
	ctx := t.Context()
	query := regexp.QuoteMeta(`FROM customers WHERE id = $1`)

	t.Run("Success", func(t *testing.T) {
		repo, mock := setupCustomerRepoTest(t)
		mock.ExpectQuery(query).WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows(customerColumns).
				AddRow(int64(1), "Alice", "alice@example.com", "USA", time.Now()))

		customer, err := repo.GetCustomerByID(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, "Alice", customer.Name)
	})

	t.Run("Failure - Not found keeps sql.ErrNoRows", func(t *testing.T) {
		repo, mock := setupCustomerRepoTest(t)
		mock.ExpectQuery(query).WithArgs(int64(99)).WillReturnError(sql.ErrNoRows)

		customer, err := repo.GetCustomerByID(ctx, 99)

		assert.Nil(t, customer)
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})
}

func TestLifetimeValue(t *testing.T) {
	ctx := t.Context()
	repo, mock := setupCustomerRepoTest(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COALESCE(SUM(total_amount), 0) FROM orders WHERE customer_id = $1`)).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow("125.50"))

	total, err := repo.LifetimeValue(ctx, 1)

	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("125.5").Equal(total))
	assert.NoError(t, mock.ExpectationsWereMet())
}
