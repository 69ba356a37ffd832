package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/aaravmahajanofficial/ecommerce-analytics/internal/logging"
	"github.com/aaravmahajanofficial/ecommerce-analytics/internal/models"
	"github.com/aaravmahajanofficial/ecommerce-analytics/internal/notify"
)

// lowStockAlerter emits an event for every stock level under the threshold.
// Delivery errors are logged and never returned.
type lowStockAlerter struct {
	notifier  notify.Notifier
	threshold int
}

func (a lowStockAlerter) check(ctx context.Context, levels ...models.StockLevel) {

	if a.notifier == nil {
		return
	}

	for _, level := range levels {

		if level.Quantity >= a.threshold {
			continue
		}

		event := models.LowStockEvent{
			ProductID:   level.ProductID,
			ProductName: level.ProductName,
			SKU:         level.SKU,
			Quantity:    level.Quantity,
			Threshold:   a.threshold,
			OccurredAt:  time.Now().UTC(),
		}

		if err := a.notifier.NotifyLowStock(ctx, event); err != nil {
			logging.FromContext(ctx).Error("Low-stock notification failed",
				slog.String("sku", level.SKU),
				slog.String("error", err.Error()),
			)
		}
	}
}
