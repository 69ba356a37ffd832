package service_test

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	appErrors "github.com/aaravmahajanofficial/ecommerce-analytics/internal/errors"
	"github.com/aaravmahajanofficial/ecommerce-analytics/internal/models"
	notifyMocks "github.com/aaravmahajanofficial/ecommerce-analytics/internal/notify/mocks"
	repository "github.com/aaravmahajanofficial/ecommerce-analytics/internal/repositories"
	"github.com/aaravmahajanofficial/ecommerce-analytics/internal/repositories/mocks"
	service "github.com/aaravmahajanofficial/ecommerce-analytics/internal/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCalculateTax(t *testing.T) {
	tests := []struct {
		country  string
		amount   string
		wantRate string
		wantTax  string
	}{
		{"USA", "100", "0.10", "10"},
		{"uk", "19.99", "0.20", "4"},
		{" India ", "50", "0.18", "9"},
		{"France", "100", "0", "0"},
	}

	for _, tc := range tests {
		t.Run(tc.country, func(t *testing.T) {
			rate, tax := service.CalculateTax(tc.country, decimal.RequireFromString(tc.amount))

			assert.True(t, decimal.RequireFromString(tc.wantRate).Equal(rate), "rate %s", rate)
			assert.True(t, decimal.RequireFromString(tc.wantTax).Equal(tax), "tax %s", tax)
		})
	}
}

type orderFixture struct {
	orders      *mocks.OrderRepository
	customers   *mocks.CustomerRepository
	idempotency *mocks.IdempotencyRepository
	notifier    *notifyMocks.Notifier
	service     service.OrderService
}

func newOrderFixture(t *testing.T) *orderFixture {
	f := &orderFixture{
		orders:      mocks.NewOrderRepository(t),
		customers:   mocks.NewCustomerRepository(t),
		idempotency: mocks.NewIdempotencyRepository(t),
		notifier:    notifyMocks.NewNotifier(t),
	}
	f.service = service.NewOrderService(f.orders, f.customers, f.idempotency, f.notifier, 10)

	return f
}

func TestPlaceOrder(t *testing.T) {
	ctx := t.Context()
	customer := &models.Customer{ID: 1, Name: "Alice", Country: "UK"}

	req := &models.PlaceOrderRequest{
		CustomerID: 1,
		Items: []models.OrderLine{
			{ProductID: 10, Quantity: 1},
			{ProductID: 11, Quantity: 2},
			{ProductID: 10, Quantity: 2},
		},
	}

	t.Run("Success - Lines merged, tax applied, low stock reported", func(t *testing.T) {
		f := newOrderFixture(t)

		f.idempotency.On("Reserve", mock.Anything, "key-1").Return(true, nil).Once()
		f.customers.On("GetCustomerByID", mock.Anything, int64(1)).Return(customer, nil).Once()
		f.orders.On("PlaceOrder", mock.Anything, mock.MatchedBy(func(o *models.Order) bool {
			return len(o.Items) == 2 && o.Items[0].ProductID == 10 && o.Items[0].Quantity == 3 && o.Status == models.OrderStatusPending
		})).Run(func(args mock.Arguments) {
			o := args.Get(1).(*models.Order)
			o.ID = 99
			o.TotalAmount = decimal.RequireFromString("50.00")
		}).Return([]models.StockLevel{
			{ProductID: 10, SKU: "PH-1", Quantity: 4},
			{ProductID: 11, SKU: "BK-1", Quantity: 40},
		}, nil).Once()
		f.notifier.On("NotifyLowStock", mock.Anything, mock.MatchedBy(func(e models.LowStockEvent) bool {
			return e.SKU == "PH-1" && e.Quantity == 4 && e.Threshold == 10
		})).Return(nil).Once()

		receipt, err := f.service.PlaceOrder(ctx, req, "key-1")

		require.NoError(t, err)
		assert.Equal(t, int64(99), receipt.Order.ID)
		assert.Equal(t, "UK", receipt.Country)
		assert.True(t, decimal.RequireFromString("10").Equal(receipt.Tax))
		f.idempotency.AssertNotCalled(t, "Release", mock.Anything, mock.Anything)
	})

	t.Run("Success - Notification failure does not fail the order", func(t *testing.T) {
		f := newOrderFixture(t)

		f.customers.On("GetCustomerByID", mock.Anything, int64(1)).Return(customer, nil).Once()
		f.orders.On("PlaceOrder", mock.Anything, mock.Anything).Return([]models.StockLevel{{ProductID: 10, SKU: "PH-1", Quantity: 0}}, nil).Once()
		f.notifier.On("NotifyLowStock", mock.Anything, mock.Anything).Return(errors.New("smtp down")).Once()

		receipt, err := f.service.PlaceOrder(ctx, req, "")

		require.NoError(t, err)
		assert.NotNil(t, receipt)
	})

	t.Run("Failure - Empty order", func(t *testing.T) {
		f := newOrderFixture(t)

		_, err := f.service.PlaceOrder(ctx, &models.PlaceOrderRequest{CustomerID: 1}, "")

		assertCode(t, err, appErrors.ErrCodeValidation)
	})

	t.Run("Failure - Duplicate idempotency key", func(t *testing.T) {
		f := newOrderFixture(t)
		f.idempotency.On("Reserve", mock.Anything, "key-1").Return(false, nil).Once()

		_, err := f.service.PlaceOrder(ctx, req, "key-1")

		assertCode(t, err, appErrors.ErrCodeDuplicateEntry)
		f.customers.AssertNotCalled(t, "GetCustomerByID", mock.Anything, mock.Anything)
	})

	t.Run("Failure - Unknown customer releases the key", func(t *testing.T) {
		f := newOrderFixture(t)
		f.idempotency.On("Reserve", mock.Anything, "key-1").Return(true, nil).Once()
		f.idempotency.On("Release", mock.Anything, "key-1").Return(nil).Once()
		f.customers.On("GetCustomerByID", mock.Anything, int64(1)).Return(nil, fmt.Errorf("failed to get customer: %w", sql.ErrNoRows)).Once()

		_, err := f.service.PlaceOrder(ctx, req, "key-1")

		assertCode(t, err, appErrors.ErrCodeNotFound)
	})

	tests := []struct {
		name     string
		repoErr  error
		wantCode string
	}{
		{"Failure - Insufficient stock", fmt.Errorf("product 11: %w", repository.ErrInsufficientStock), appErrors.ErrCodeValidation},
		{"Failure - Unknown product", fmt.Errorf("product 12: %w", repository.ErrProductNotFound), appErrors.ErrCodeNotFound},
		{"Failure - Database error", errors.New("deadlock detected"), appErrors.ErrCodeDatabaseError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newOrderFixture(t)
			f.idempotency.On("Reserve", mock.Anything, "key-2").Return(true, nil).Once()
			f.idempotency.On("Release", mock.Anything, "key-2").Return(nil).Once()
			f.customers.On("GetCustomerByID", mock.Anything, int64(1)).Return(customer, nil).Once()
			f.orders.On("PlaceOrder", mock.Anything, mock.Anything).Return(nil, tc.repoErr).Once()

			receipt, err := f.service.PlaceOrder(ctx, req, "key-2")

			assert.Nil(t, receipt)
			assertCode(t, err, tc.wantCode)
			f.notifier.AssertNotCalled(t, "NotifyLowStock", mock.Anything, mock.Anything)
		})
	}
}

func TestGetOrder(t *testing.T) {
	ctx := t.Context()

	t.Run("Success", func(t *testing.T) {
		f := newOrderFixture(t)
		f.orders.On("GetOrderByID", mock.Anything, int64(5)).Return(&models.Order{ID: 5}, nil).Once()

		order, err := f.service.GetOrder(ctx, 5)

		require.NoError(t, err)
		assert.Equal(t, int64(5), order.ID)
	})

	t.Run("Failure - Not found", func(t *testing.T) {
		f := newOrderFixture(t)
		f.orders.On("GetOrderByID", mock.Anything, int64(5)).Return(nil, fmt.Errorf("failed to get the order: %w", sql.ErrNoRows)).Once()

		_, err := f.service.GetOrder(ctx, 5)

		assertCode(t, err, appErrors.ErrCodeNotFound)
	})
}

func TestUpdateOrderStatus(t *testing.T) {
	ctx := t.Context()

	t.Run("Success", func(t *testing.T) {
		f := newOrderFixture(t)
		f.orders.On("UpdateOrderStatus", mock.Anything, int64(5), models.OrderStatusShipped).
			Return(&models.Order{ID: 5, Status: models.OrderStatusShipped}, nil).Once()

		order, err := f.service.UpdateOrderStatus(ctx, 5, models.OrderStatusShipped)

		require.NoError(t, err)
		assert.Equal(t, models.OrderStatusShipped, order.Status)
	})

	t.Run("Failure - Invalid status", func(t *testing.T) {
		f := newOrderFixture(t)

		_, err := f.service.UpdateOrderStatus(ctx, 5, models.OrderStatus("returned"))

		assertCode(t, err, appErrors.ErrCodeValidation)
	})

	t.Run("Failure - Missing order", func(t *testing.T) {
		f := newOrderFixture(t)
		f.orders.On("UpdateOrderStatus", mock.Anything, int64(5), models.OrderStatusCancelled).
			Return(nil, fmt.Errorf("failed to update order status: %w", sql.ErrNoRows)).Once()

		_, err := f.service.UpdateOrderStatus(ctx, 5, models.OrderStatusCancelled)

		assertCode(t, err, appErrors.ErrCodeNotFound)
	})
}
