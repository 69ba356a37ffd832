package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/aaravmahajanofficial/ecommerce-analytics/internal/models"
)

// SalesRepository pushes every aggregation down to Postgres. Revenue is
// always price_at_time_of_order * quantity.
type SalesRepository interface {
	RevenueByCategory(ctx context.Context, start, end time.Time) ([]models.CategoryRevenue, error)
	TopSellingProductsByCountry(ctx context.Context, start, end time.Time) ([]models.CountryProductSales, error)
	ChurnStats(ctx context.Context, cutoff time.Time) (models.ChurnStats, error)
	SalesData(ctx context.Context) ([]models.ProductSales, error)
	MonthlySales(ctx context.Context, start, end time.Time) ([]models.MonthlySalesLine, error)
}

type salesRepository struct {
	DB *sql.DB
}

func NewSalesRepo(db *sql.DB) SalesRepository {
	return &salesRepository{DB: db}
}

func (r *salesRepository) RevenueByCategory(ctx context.Context, start, end time.Time) ([]models.CategoryRevenue, error) {

	dbCtx, cancel := withTimeout(ctx, analyticsQueryTimeout)
	defer cancel()

	query := `
		SELECT c.name, SUM(oi.price_at_time_of_order * oi.quantity) AS total_revenue
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		JOIN products p ON p.id = oi.product_id
		JOIN categories c ON c.id = p.category_id
		WHERE o.order_date BETWEEN $1 AND $2
		GROUP BY c.name
		ORDER BY c.name
	`

	rows, err := r.DB.QueryContext(dbCtx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate revenue by category: %w", err)
	}

	defer rows.Close()

	result := []models.CategoryRevenue{}

	for rows.Next() {

		var row models.CategoryRevenue

		if err := rows.Scan(&row.CategoryName, &row.TotalRevenue); err != nil {
			return nil, fmt.Errorf("failed to scan category revenue: %w", err)
		}

		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category revenue: %w", err)
	}

	return result, nil
}

func (r *salesRepository) TopSellingProductsByCountry(ctx context.Context, start, end time.Time) ([]models.CountryProductSales, error) {

	dbCtx, cancel := withTimeout(ctx, analyticsQueryTimeout)
	defer cancel()

	query := `
		SELECT cu.country, p.name, SUM(oi.quantity) AS total_sales
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		JOIN customers cu ON cu.id = o.customer_id
		JOIN products p ON p.id = oi.product_id
		WHERE o.order_date BETWEEN $1 AND $2
		GROUP BY cu.country, p.name
		ORDER BY total_sales DESC, cu.country, p.name
	`

	rows, err := r.DB.QueryContext(dbCtx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate sales by country: %w", err)
	}

	defer rows.Close()

	result := []models.CountryProductSales{}

	for rows.Next() {

		var row models.CountryProductSales

		if err := rows.Scan(&row.Country, &row.ProductName, &row.TotalSales); err != nil {
			return nil, fmt.Errorf("failed to scan country sales: %w", err)
		}

		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating country sales: %w", err)
	}

	return result, nil
}

// ChurnStats counts all customers, and the customers whose latest order is
// strictly before cutoff. Customers without orders are never churned.
func (r *salesRepository) ChurnStats(ctx context.Context, cutoff time.Time) (models.ChurnStats, error) {

	dbCtx, cancel := withTimeout(ctx, analyticsQueryTimeout)
	defer cancel()

	query := `
		SELECT
			(SELECT COUNT(*) FROM customers),
			(SELECT COUNT(*) FROM (
				SELECT customer_id
				FROM orders
				GROUP BY customer_id
				HAVING MAX(order_date) < $1
			) churned)
	`

	var stats models.ChurnStats

	if err := r.DB.QueryRowContext(dbCtx, query, cutoff).Scan(&stats.TotalCustomers, &stats.ChurnedCustomers); err != nil {
		return models.ChurnStats{}, fmt.Errorf("failed to count churned customers: %w", err)
	}

	return stats, nil
}

func (r *salesRepository) SalesData(ctx context.Context) ([]models.ProductSales, error) {

	dbCtx, cancel := withTimeout(ctx, analyticsQueryTimeout)
	defer cancel()

	query := `
		SELECT p.name, SUM(oi.quantity) AS total_quantity, SUM(oi.price_at_time_of_order * oi.quantity) AS total_revenue
		FROM order_items oi
		JOIN products p ON p.id = oi.product_id
		GROUP BY p.name
		ORDER BY p.name
	`

	rows, err := r.DB.QueryContext(dbCtx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate sales data: %w", err)
	}

	defer rows.Close()

	result := []models.ProductSales{}

	for rows.Next() {

		var row models.ProductSales

		if err := rows.Scan(&row.ProductName, &row.TotalQuantity, &row.TotalRevenue); err != nil {
			return nil, fmt.Errorf("failed to scan product sales: %w", err)
		}

		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating product sales: %w", err)
	}

	return result, nil
}

// MonthlySales lists the items of orders placed in [start, end).
func (r *salesRepository) MonthlySales(ctx context.Context, start, end time.Time) ([]models.MonthlySalesLine, error) {

	dbCtx, cancel := withTimeout(ctx, analyticsQueryTimeout)
	defer cancel()

	query := `
		SELECT p.name, oi.quantity, oi.price_at_time_of_order
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		JOIN products p ON p.id = oi.product_id
		WHERE o.order_date >= $1 AND o.order_date < $2
		ORDER BY o.order_date, oi.id
	`

	rows, err := r.DB.QueryContext(dbCtx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly sales: %w", err)
	}

	defer rows.Close()

	var lines []models.MonthlySalesLine

	for rows.Next() {

		var line models.MonthlySalesLine

		if err := rows.Scan(&line.ProductName, &line.Quantity, &line.PriceAtTimeOfOrder); err != nil {
			return nil, fmt.Errorf("failed to scan monthly sales line: %w", err)
		}

		lines = append(lines, line)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating monthly sales: %w", err)
	}

	return lines, nil
}
