package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aaravmahajanofficial/ecommerce-analytics/internal/models"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type CatalogRepository interface {
	CreateCategory(ctx context.Context, category *models.Category) error
	CreateProduct(ctx context.Context, product *models.Product, initialQuantity int) error
	ListProducts(ctx context.Context, minPrice *decimal.Decimal) ([]models.Product, error)
}

type catalogRepository struct {
	DB *sql.DB
}

func NewCatalogRepo(db *sql.DB) CatalogRepository {
	return &catalogRepository{DB: db}
}

func (r *catalogRepository) CreateCategory(ctx context.Context, category *models.Category) error {

	dbCtx, cancel := withTimeout(ctx, queryTimeout)
	defer cancel()

	query := `INSERT INTO categories (name) VALUES ($1) RETURNING id`

	if err := r.DB.QueryRowContext(dbCtx, query, category.Name).Scan(&category.ID); err != nil {
		return fmt.Errorf("failed to insert category: %w", err)
	}

	return nil
}

// CreateProduct inserts the product, attaches its tags and opens its
// inventory record in a single transaction.
func (r *catalogRepository) CreateProduct(ctx context.Context, product *models.Product, initialQuantity int) (err error) {

	dbCtx, cancel := withTimeout(ctx, queryTimeout)
	defer cancel()

	tx, err := r.DB.BeginTx(dbCtx, nil)
	if err != nil {
		return fmt.Errorf("could not start transaction: %w", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
			return
		}

		if cErr := tx.Commit(); cErr != nil {
			err = fmt.Errorf("failed to commit transaction: %w", cErr)
		}
	}()

	query := `
		INSERT INTO products (name, description, sku, price, category_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err = tx.QueryRowContext(dbCtx, query, product.Name, product.Description, product.SKU, product.Price, product.CategoryID).Scan(&product.ID)
	if err != nil {
		return fmt.Errorf("failed to insert product: %w", err)
	}

	for _, tag := range product.Tags {

		var tagID int64

		query = `
			INSERT INTO tags (name) VALUES ($1)
			ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
			RETURNING id
		`

		if err = tx.QueryRowContext(dbCtx, query, tag).Scan(&tagID); err != nil {
			return fmt.Errorf("failed to upsert tag %q: %w", tag, err)
		}

		query = `INSERT INTO product_tags (product_id, tag_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`

		if _, err = tx.ExecContext(dbCtx, query, product.ID, tagID); err != nil {
			return fmt.Errorf("failed to attach tag %q: %w", tag, err)
		}
	}

	query = `
		INSERT INTO inventory (product_id, quantity, last_restocked_date)
		VALUES ($1, $2, CURRENT_DATE)
	`

	if _, err = tx.ExecContext(dbCtx, query, product.ID, initialQuantity); err != nil {
		return fmt.Errorf("failed to create inventory record: %w", err)
	}

	return nil
}

// ListProducts returns every product, or only those priced strictly above
// minPrice when it is set.
func (r *catalogRepository) ListProducts(ctx context.Context, minPrice *decimal.Decimal) ([]models.Product, error) {

	dbCtx, cancel := withTimeout(ctx, queryTimeout)
	defer cancel()

	query := `
		SELECT p.id, p.name, p.description, p.sku, p.price, p.category_id,
		       COALESCE(array_agg(t.name ORDER BY t.name) FILTER (WHERE t.name IS NOT NULL), '{}')
		FROM products p
		LEFT JOIN product_tags pt ON pt.product_id = p.id
		LEFT JOIN tags t ON t.id = pt.tag_id
		WHERE $1::numeric IS NULL OR p.price > $1::numeric
		GROUP BY p.id
		ORDER BY p.id
	`

	rows, err := r.DB.QueryContext(dbCtx, query, minPrice)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	defer rows.Close()

	products := []models.Product{}

	for rows.Next() {

		var p models.Product
		var tags pq.StringArray

		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.SKU, &p.Price, &p.CategoryID, &tags); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}

		p.Tags = []string(tags)
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}
