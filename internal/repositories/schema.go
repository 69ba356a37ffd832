package repository

import (
	"context"
	"database/sql"
	"fmt"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS categories (
		id   BIGSERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS tags (
		id   BIGSERIAL PRIMARY KEY,
		name VARCHAR(50) NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id          BIGSERIAL PRIMARY KEY,
		name        VARCHAR(255) NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		sku         VARCHAR(100) NOT NULL UNIQUE,
		price       NUMERIC(10, 2) NOT NULL,
		category_id BIGINT NOT NULL REFERENCES categories (id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS product_tags (
		product_id BIGINT NOT NULL REFERENCES products (id) ON DELETE CASCADE,
		tag_id     BIGINT NOT NULL REFERENCES tags (id) ON DELETE CASCADE,
		PRIMARY KEY (product_id, tag_id)
	)`,
	`CREATE TABLE IF NOT EXISTS customers (
		id                BIGSERIAL PRIMARY KEY,
		name              VARCHAR(255) NOT NULL,
		email             VARCHAR(254) NOT NULL UNIQUE,
		country           VARCHAR(100) NOT NULL,
		registration_date DATE NOT NULL DEFAULT CURRENT_DATE
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id           BIGSERIAL PRIMARY KEY,
		customer_id  BIGINT NOT NULL REFERENCES customers (id) ON DELETE CASCADE,
		status       VARCHAR(20) NOT NULL DEFAULT 'pending'
		             CHECK (status IN ('pending', 'shipped', 'delivered', 'cancelled')),
		order_date   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		total_amount NUMERIC(10, 2) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS order_items (
		id                     BIGSERIAL PRIMARY KEY,
		order_id               BIGINT NOT NULL REFERENCES orders (id) ON DELETE CASCADE,
		product_id             BIGINT NOT NULL REFERENCES products (id) ON DELETE CASCADE,
		quantity               INTEGER NOT NULL CHECK (quantity > 0),
		price_at_time_of_order NUMERIC(10, 2) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS inventory (
		id                  BIGSERIAL PRIMARY KEY,
		product_id          BIGINT NOT NULL UNIQUE REFERENCES products (id) ON DELETE CASCADE,
		quantity            INTEGER NOT NULL DEFAULT 0 CHECK (quantity >= 0),
		last_restocked_date DATE
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id            BIGSERIAL PRIMARY KEY,
		username      VARCHAR(150) NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_order_date ON orders (order_date)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_customer_id ON orders (customer_id)`,
	`CREATE INDEX IF NOT EXISTS idx_order_items_order_id ON order_items (order_id)`,
	`CREATE INDEX IF NOT EXISTS idx_order_items_product_id ON order_items (product_id)`,
}

// Migrate creates the schema. Every statement is idempotent, so it is safe
// to run on each deploy.
func Migrate(ctx context.Context, db *sql.DB) (err error) {

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not start migration transaction: %w", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
			return
		}

		if cErr := tx.Commit(); cErr != nil {
			err = fmt.Errorf("failed to commit migration: %w", cErr)
		}
	}()

	for _, stmt := range schemaStatements {
		if _, err = tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema statement: %w", err)
		}
	}

	return nil
}
