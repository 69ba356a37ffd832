// Package notify delivers low-stock events to operators. Delivery is best
// effort: callers log a failed notification and carry on.
package notify

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aaravmahajanofficial/ecommerce-analytics/internal/logging"
	"github.com/aaravmahajanofficial/ecommerce-analytics/internal/metrics"
	"github.com/aaravmahajanofficial/ecommerce-analytics/internal/models"
)

type Notifier interface {
	NotifyLowStock(ctx context.Context, event models.LowStockEvent) error
}

type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) NotifyLowStock(ctx context.Context, event models.LowStockEvent) error {

	logging.FromContext(ctx).Warn("Low stock",
		slog.Int64("product_id", event.ProductID),
		slog.String("product_name", event.ProductName),
		slog.String("sku", event.SKU),
		slog.Int("quantity", event.Quantity),
		slog.Int("threshold", event.Threshold),
	)

	metrics.LowStockEvents.WithLabelValues("log", "delivered").Inc()

	return nil
}

type named struct {
	name     string
	notifier Notifier
}

// Multi fans an event out to every registered notifier. All of them are
// attempted even when an earlier one fails.
type Multi struct {
	notifiers []named
}

func NewMulti() *Multi {
	return &Multi{}
}

// Add registers n under name, which labels its metrics.
func (m *Multi) Add(name string, n Notifier) *Multi {
	m.notifiers = append(m.notifiers, named{name: name, notifier: n})
	return m
}

func (m *Multi) Len() int {
	return len(m.notifiers)
}

func (m *Multi) NotifyLowStock(ctx context.Context, event models.LowStockEvent) error {

	var errs []error

	for _, n := range m.notifiers {
		if err := n.notifier.NotifyLowStock(ctx, event); err != nil {
			metrics.LowStockEvents.WithLabelValues(n.name, "failed").Inc()
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
