package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aaravmahajanofficial/ecommerce-analytics/internal/models"
)

type InventoryRepository interface {
	GetInventoryByID(ctx context.Context, id int64) (*models.Inventory, error)
	UpdateInventory(ctx context.Context, inventory *models.Inventory) error
}

type inventoryRepository struct {
	DB *sql.DB
}

func NewInventoryRepo(db *sql.DB) InventoryRepository {
	return &inventoryRepository{DB: db}
}

func (r *inventoryRepository) GetInventoryByID(ctx context.Context, id int64) (*models.Inventory, error) {

	dbCtx, cancel := withTimeout(ctx, queryTimeout)
	defer cancel()

	query := `
		SELECT i.id, i.product_id, i.quantity, i.last_restocked_date, p.name, p.sku
		FROM inventory i
		JOIN products p ON p.id = i.product_id
		WHERE i.id = $1
	`

	var inv models.Inventory

	err := r.DB.QueryRowContext(dbCtx, query, id).Scan(&inv.ID, &inv.ProductID, &inv.Quantity, &inv.LastRestockedDate, &inv.ProductName, &inv.SKU)
	if err != nil {
		return nil, fmt.Errorf("failed to get inventory %d: %w", id, err)
	}

	return &inv, nil
}

// UpdateInventory overwrites the stored record; sql.ErrNoRows means no
// inventory row has that id.
func (r *inventoryRepository) UpdateInventory(ctx context.Context, inventory *models.Inventory) error {

	dbCtx, cancel := withTimeout(ctx, queryTimeout)
	defer cancel()

	query := `
		UPDATE inventory
		SET product_id = $1, quantity = $2, last_restocked_date = $3
		WHERE id = $4
	`

	result, err := r.DB.ExecContext(dbCtx, query, inventory.ProductID, inventory.Quantity, inventory.LastRestockedDate, inventory.ID)
	if err != nil {
		return fmt.Errorf("failed to update inventory: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}

	if affected == 0 {
		return fmt.Errorf("inventory %d: %w", inventory.ID, sql.ErrNoRows)
	}

	return nil
}
