package service

import (
	"context"
	"database/sql"
	stdErrors "errors"

	"github.com/aaravmahajanofficial/ecommerce-analytics/internal/errors"
	"github.com/aaravmahajanofficial/ecommerce-analytics/internal/models"
	"github.com/aaravmahajanofficial/ecommerce-analytics/internal/notify"
	repository "github.com/aaravmahajanofficial/ecommerce-analytics/internal/repositories"
)

type InventoryService interface {
	GetInventory(ctx context.Context, id int64) (*models.Inventory, error)
	UpdateInventory(ctx context.Context, id int64, req *models.UpdateInventoryRequest) (*models.Inventory, error)
}

type inventoryService struct {
	repo  repository.InventoryRepository
	alert lowStockAlerter
}

func NewInventoryService(repo repository.InventoryRepository, notifier notify.Notifier, threshold int) InventoryService {
	return &inventoryService{repo: repo, alert: lowStockAlerter{notifier: notifier, threshold: threshold}}
}

func (s *inventoryService) GetInventory(ctx context.Context, id int64) (*models.Inventory, error) {

	inv, err := s.repo.GetInventoryByID(ctx, id)
	if err != nil {
		if stdErrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundError("Inventory not found").WithError(err)
		}
		return nil, errors.DatabaseError("Failed to load inventory").WithError(err)
	}

	return inv, nil
}

// UpdateInventory sets the quantity and, when given, the product binding and
// restock date. Omitted fields keep their stored values.
func (s *inventoryService) UpdateInventory(ctx context.Context, id int64, req *models.UpdateInventoryRequest) (*models.Inventory, error) {

	if req.Quantity == nil || *req.Quantity < 0 {
		return nil, errors.ValidationError("Quantity must be zero or greater")
	}

	inv, err := s.GetInventory(ctx, id)
	if err != nil {
		return nil, err
	}

	inv.Quantity = *req.Quantity

	if req.Product != nil {
		inv.ProductID = *req.Product
	}

	if req.LastRestockedDate != nil {
		inv.LastRestockedDate = req.LastRestockedDate
	}

	if err := s.repo.UpdateInventory(ctx, inv); err != nil {
		switch {
		case repository.IsUniqueViolation(err):
			return nil, errors.DuplicateEntryError("Product already has an inventory record").WithError(err)
		case repository.IsForeignKeyViolation(err):
			return nil, errors.NotFoundError("Product not found").WithError(err)
		case stdErrors.Is(err, sql.ErrNoRows):
			return nil, errors.NotFoundError("Inventory not found").WithError(err)
		default:
			return nil, errors.DatabaseError("Failed to update inventory").WithError(err)
		}
	}

	updated, err := s.GetInventory(ctx, id)
	if err != nil {
		return nil, err
	}

	s.alert.check(ctx, models.StockLevel{
		ProductID:   updated.ProductID,
		ProductName: updated.ProductName,
		SKU:         updated.SKU,
		Quantity:    updated.Quantity,
	})

	return updated, nil
}
