package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aaravmahajanofficial/ecommerce-analytics/internal/models"
	"github.com/shopspring/decimal"
)

type CustomerRepository interface {
	ListCustomers(ctx context.Context) ([]models.Customer, error)
	CreateCustomer(ctx context.Context, customer *models.Customer) error
	GetCustomerByID(ctx context.Context, id int64) (*models.Customer, error)
	LifetimeValue(ctx context.Context, id int64) (decimal.Decimal, error)
}

type customerRepository struct {
	DB *sql.DB
}

func NewCustomerRepo(db *sql.DB) CustomerRepository {
	return &customerRepository{DB: db}
}

func (r *customerRepository) ListCustomers(ctx context.Context) ([]models.Customer, error) {

	dbCtx, cancel := withTimeout(ctx, queryTimeout)
	defer cancel()

	query := `
		SELECT id, name, email, country, registration_date
		FROM customers
		ORDER BY id
	`

	rows, err := r.DB.QueryContext(dbCtx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	defer rows.Close()

	return scanCustomers(rows)
}

func (r *customerRepository) CreateCustomer(ctx context.Context, customer *models.Customer) error {

	dbCtx, cancel := withTimeout(ctx, queryTimeout)
	defer cancel()

	query := `
		INSERT INTO customers (name, email, country, registration_date)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.DB.QueryRowContext(dbCtx, query, customer.Name, customer.Email, customer.Country, customer.RegistrationDate).Scan(&customer.ID)
	if err != nil {
		return fmt.Errorf("failed to insert customer: %w", err)
	}

	return nil
}

func (r *customerRepository) GetCustomerByID(ctx context.Context, id int64) (*models.Customer, error) {

	dbCtx, cancel := withTimeout(ctx, queryTimeout)
	defer cancel()

	query := `
		SELECT id, name, email, country, registration_date
		FROM customers
		WHERE id = $1
	`

	var c models.Customer

	err := r.DB.QueryRowContext(dbCtx, query, id).Scan(&c.ID, &c.Name, &c.Email, &c.Country, &c.RegistrationDate)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer %d: %w", id, err)
	}

	return &c, nil
}

// LifetimeValue sums total_amount over every order of the customer.
func (r *customerRepository) LifetimeValue(ctx context.Context, id int64) (decimal.Decimal, error) {

	dbCtx, cancel := withTimeout(ctx, queryTimeout)
	defer cancel()

	query := `SELECT COALESCE(SUM(total_amount), 0) FROM orders WHERE customer_id = $1`

	var total decimal.Decimal

	if err := r.DB.QueryRowContext(dbCtx, query, id).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to compute lifetime value: %w", err)
	}

	return total, nil
}

func scanCustomers(rows *sql.Rows) ([]models.Customer, error) {

	customers := []models.Customer{}

	for rows.Next() {

		var c models.Customer

		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Country, &c.RegistrationDate); err != nil {
			return nil, fmt.Errorf("failed to scan customer: %w", err)
		}

		customers = append(customers, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating customers: %w", err)
	}

	return customers, nil
}
