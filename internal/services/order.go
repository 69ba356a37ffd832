package service

import (
	"context"
	"database/sql"
	stdErrors "errors"
	"log/slog"
	"strings"

	"github.com/aaravmahajanofficial/ecommerce-analytics/internal/errors"
	"github.com/aaravmahajanofficial/ecommerce-analytics/internal/logging"
	"github.com/aaravmahajanofficial/ecommerce-analytics/internal/metrics"
	"github.com/aaravmahajanofficial/ecommerce-analytics/internal/models"
	"github.com/aaravmahajanofficial/ecommerce-analytics/internal/notify"
	repository "github.com/aaravmahajanofficial/ecommerce-analytics/internal/repositories"
	"github.com/shopspring/decimal"
)

// Sales tax by customer country. Countries not listed are untaxed.
var taxRates = map[string]decimal.Decimal{
	"USA":   decimal.RequireFromString("0.10"),
	"UK":    decimal.RequireFromString("0.20"),
	"INDIA": decimal.RequireFromString("0.18"),
}

// CalculateTax returns the rate applied to country and the tax on amount,
// rounded to cents.
func CalculateTax(country string, amount decimal.Decimal) (decimal.Decimal, decimal.Decimal) {

	rate, ok := taxRates[strings.ToUpper(strings.TrimSpace(country))]
	if !ok {
		return decimal.Zero, decimal.Zero
	}

	return rate, amount.Mul(rate).Round(2)
}

type OrderService interface {
	PlaceOrder(ctx context.Context, req *models.PlaceOrderRequest, idempotencyKey string) (*models.OrderReceipt, error)
	GetOrder(ctx context.Context, id int64) (*models.Order, error)
	UpdateOrderStatus(ctx context.Context, id int64, status models.OrderStatus) (*models.Order, error)
}

type orderService struct {
	orders      repository.OrderRepository
	customers   repository.CustomerRepository
	idempotency repository.IdempotencyRepository
	alert       lowStockAlerter
}

func NewOrderService(orders repository.OrderRepository, customers repository.CustomerRepository, idempotency repository.IdempotencyRepository, notifier notify.Notifier, threshold int) OrderService {
	return &orderService{
		orders:      orders,
		customers:   customers,
		idempotency: idempotency,
		alert:       lowStockAlerter{notifier: notifier, threshold: threshold},
	}
}

// mergeLines folds repeated products into one line, keeping first-seen order.
func mergeLines(lines []models.OrderLine) []models.OrderItem {

	index := make(map[int64]int, len(lines))
	items := make([]models.OrderItem, 0, len(lines))

	for _, line := range lines {
		if i, ok := index[line.ProductID]; ok {
			items[i].Quantity += line.Quantity
			continue
		}

		index[line.ProductID] = len(items)
		items = append(items, models.OrderItem{ProductID: line.ProductID, Quantity: line.Quantity})
	}

	return items
}

func (s *orderService) PlaceOrder(ctx context.Context, req *models.PlaceOrderRequest, idempotencyKey string) (receipt *models.OrderReceipt, err error) {

	logger := logging.FromContext(ctx)

	if len(req.Items) == 0 {
		return nil, errors.ValidationError("Order must contain at least one item")
	}

	for _, line := range req.Items {
		if line.Quantity <= 0 {
			return nil, errors.AddValidationError("quantity", "must be greater than 0")
		}
	}

	if idempotencyKey != "" && s.idempotency != nil {

		reserved, rErr := s.idempotency.Reserve(ctx, idempotencyKey)
		if rErr != nil {
			return nil, errors.ThirdPartyError("Idempotency check failed").WithError(rErr)
		}

		if !reserved {
			return nil, errors.DuplicateEntryError("Duplicate Idempotency-Key")
		}

		// a failed attempt must not burn the key
		defer func() {
			if err == nil {
				return
			}
			if relErr := s.idempotency.Release(ctx, idempotencyKey); relErr != nil {
				logger.Warn("Failed to release idempotency key", slog.String("error", relErr.Error()))
			}
		}()
	}

	customer, err := s.customers.GetCustomerByID(ctx, req.CustomerID)
	if err != nil {
		if stdErrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundError("Customer not found").WithError(err)
		}
		return nil, errors.DatabaseError("Failed to load customer").WithError(err)
	}

	order := &models.Order{
		CustomerID: customer.ID,
		Status:     models.OrderStatusPending,
		Items:      mergeLines(req.Items),
	}

	levels, err := s.orders.PlaceOrder(ctx, order)
	if err != nil {
		metrics.OrdersPlaced.WithLabelValues("failed").Inc()

		switch {
		case stdErrors.Is(err, repository.ErrInsufficientStock):
			return nil, errors.ValidationError("Insufficient stock").WithDetail(err.Error()).WithError(err)
		case stdErrors.Is(err, repository.ErrProductNotFound), repository.IsForeignKeyViolation(err):
			return nil, errors.NotFoundError("Product not found").WithDetail(err.Error()).WithError(err)
		default:
			return nil, errors.DatabaseError("Failed to place order").WithError(err)
		}
	}

	metrics.OrdersPlaced.WithLabelValues("placed").Inc()
	logger.Info("Order placed", slog.Int64("order_id", order.ID), slog.String("total", order.TotalAmount.String()))

	s.alert.check(ctx, levels...)

	rate, tax := CalculateTax(customer.Country, order.TotalAmount)

	return &models.OrderReceipt{
		Order:   order,
		Country: customer.Country,
		TaxRate: rate,
		Tax:     tax,
	}, nil
}

func (s *orderService) GetOrder(ctx context.Context, id int64) (*models.Order, error) {

	order, err := s.orders.GetOrderByID(ctx, id)
	if err != nil {
		if stdErrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundError("Order not found").WithError(err)
		}
		return nil, errors.DatabaseError("Failed to load order").WithError(err)
	}

	return order, nil
}

func (s *orderService) UpdateOrderStatus(ctx context.Context, id int64, status models.OrderStatus) (*models.Order, error) {

	if !status.IsValid() {
		return nil, errors.AddValidationError("status", "must be one of pending, shipped, delivered, cancelled")
	}

	order, err := s.orders.UpdateOrderStatus(ctx, id, status)
	if err != nil {
		if stdErrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundError("Order not found").WithError(err)
		}
		return nil, errors.DatabaseError("Failed to update order status").WithError(err)
	}

	return order, nil
}
