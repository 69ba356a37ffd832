package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aaravmahajanofficial/ecommerce-analytics/internal/models"
)

type RecommendationRepository interface {
	OrderedProducts(ctx context.Context, customerID int64) ([]models.Product, error)
	SimilarCustomers(ctx context.Context, customerID int64) ([]models.Customer, error)
	InStockProducts(ctx context.Context) ([]models.Product, error)
}

type recommendationRepository struct {
	DB *sql.DB
}

func NewRecommendationRepo(db *sql.DB) RecommendationRepository {
	return &recommendationRepository{DB: db}
}

// distinct products the customer ever ordered
func (r *recommendationRepository) OrderedProducts(ctx context.Context, customerID int64) ([]models.Product, error) {

	dbCtx, cancel := withTimeout(ctx, analyticsQueryTimeout)
	defer cancel()

	query := `
		SELECT DISTINCT p.id, p.name, p.description, p.sku, p.price, p.category_id
		FROM products p
		JOIN order_items oi ON oi.product_id = p.id
		JOIN orders o ON o.id = oi.order_id
		WHERE o.customer_id = $1
		ORDER BY p.id
	`

	rows, err := r.DB.QueryContext(dbCtx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query ordered products: %w", err)
	}

	defer rows.Close()

	return scanProducts(rows)
}

// other customers sharing at least one ordered product with customerID
func (r *recommendationRepository) SimilarCustomers(ctx context.Context, customerID int64) ([]models.Customer, error) {

	dbCtx, cancel := withTimeout(ctx, analyticsQueryTimeout)
	defer cancel()

	query := `
		SELECT DISTINCT c.id, c.name, c.email, c.country, c.registration_date
		FROM customers c
		JOIN orders o ON o.customer_id = c.id
		JOIN order_items oi ON oi.order_id = o.id
		WHERE c.id <> $1
		  AND oi.product_id IN (
			SELECT oi2.product_id
			FROM order_items oi2
			JOIN orders o2 ON o2.id = oi2.order_id
			WHERE o2.customer_id = $1
		  )
		ORDER BY c.id
	`

	rows, err := r.DB.QueryContext(dbCtx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query similar customers: %w", err)
	}

	defer rows.Close()

	return scanCustomers(rows)
}

func (r *recommendationRepository) InStockProducts(ctx context.Context) ([]models.Product, error) {

	dbCtx, cancel := withTimeout(ctx, analyticsQueryTimeout)
	defer cancel()

	query := `
		SELECT p.id, p.name, p.description, p.sku, p.price, p.category_id
		FROM products p
		JOIN inventory i ON i.product_id = p.id
		WHERE i.quantity > 0
		ORDER BY p.id
	`

	rows, err := r.DB.QueryContext(dbCtx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query in-stock products: %w", err)
	}

	defer rows.Close()

	return scanProducts(rows)
}

func scanProducts(rows *sql.Rows) ([]models.Product, error) {

	products := []models.Product{}

	for rows.Next() {

		var p models.Product

		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.SKU, &p.Price, &p.CategoryID); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}

		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}
