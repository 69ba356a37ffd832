package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/aaravmahajanofficial/ecommerce-analytics/internal/models"
	"github.com/shopspring/decimal"
)

type OrderRepository interface {
	PlaceOrder(ctx context.Context, order *models.Order) ([]models.StockLevel, error)
	GetOrderByID(ctx context.Context, id int64) (*models.Order, error)
	UpdateOrderStatus(ctx context.Context, id int64, status models.OrderStatus) (*models.Order, error)
}

type orderRepository struct {
	DB *sql.DB
}

func NewOrderRepo(db *sql.DB) OrderRepository {
	return &orderRepository{DB: db}
}

/*
PlaceOrder runs in one transaction:
 1. snapshot the current price of every product
 2. insert the order with its total
 3. insert each item with the price snapshot
 4. decrement inventory, refusing to go below zero

Any failure rolls everything back. The returned stock levels are the
post-decrement quantities.
*/
func (r *orderRepository) PlaceOrder(ctx context.Context, order *models.Order) (levels []models.StockLevel, err error) {

	dbCtx, cancel := withTimeout(ctx, queryTimeout)
	defer cancel()

	tx, err := r.DB.BeginTx(dbCtx, nil)
	if err != nil {
		return nil, fmt.Errorf("could not start transaction: %w", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
			return
		}

		if cErr := tx.Commit(); cErr != nil {
			levels = nil
			err = fmt.Errorf("failed to commit transaction: %w", cErr)
		}
	}()

	names := make([]string, len(order.Items))
	skus := make([]string, len(order.Items))
	total := decimal.Zero

	for i := range order.Items {

		item := &order.Items[i]

		query := `SELECT name, sku, price FROM products WHERE id = $1 FOR SHARE`

		err = tx.QueryRowContext(dbCtx, query, item.ProductID).Scan(&names[i], &skus[i], &item.PriceAtTimeOfOrder)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("product %d: %w", item.ProductID, ErrProductNotFound)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read product %d: %w", item.ProductID, err)
		}

		total = total.Add(item.PriceAtTimeOfOrder.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	order.TotalAmount = total

	query := `
		INSERT INTO orders (customer_id, status, total_amount)
		VALUES ($1, $2, $3)
		RETURNING id, order_date
	`

	err = tx.QueryRowContext(dbCtx, query, order.CustomerID, order.Status, order.TotalAmount).Scan(&order.ID, &order.OrderDate)
	if err != nil {
		return nil, fmt.Errorf("failed to insert order: %w", err)
	}

	levels = make([]models.StockLevel, 0, len(order.Items))

	for i := range order.Items {

		item := &order.Items[i]
		item.OrderID = order.ID

		query = `
			INSERT INTO order_items (order_id, product_id, quantity, price_at_time_of_order)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`

		err = tx.QueryRowContext(dbCtx, query, order.ID, item.ProductID, item.Quantity, item.PriceAtTimeOfOrder).Scan(&item.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to insert order item for product %d: %w", item.ProductID, err)
		}

		query = `
			UPDATE inventory
			SET quantity = quantity - $1
			WHERE product_id = $2 AND quantity >= $1
			RETURNING quantity
		`

		var remaining int

		err = tx.QueryRowContext(dbCtx, query, item.Quantity, item.ProductID).Scan(&remaining)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("product %d: %w", item.ProductID, ErrInsufficientStock)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to decrement inventory for product %d: %w", item.ProductID, err)
		}

		levels = append(levels, models.StockLevel{
			ProductID:   item.ProductID,
			ProductName: names[i],
			SKU:         skus[i],
			Quantity:    remaining,
		})
	}

	return levels, nil
}

func (r *orderRepository) GetOrderByID(ctx context.Context, id int64) (*models.Order, error) {

	dbCtx, cancel := withTimeout(ctx, queryTimeout)
	defer cancel()

	order := &models.Order{}

	query := `
		SELECT id, customer_id, status, order_date, total_amount
		FROM orders
		WHERE id = $1
	`

	err := r.DB.QueryRowContext(dbCtx, query, id).Scan(&order.ID, &order.CustomerID, &order.Status, &order.OrderDate, &order.TotalAmount)
	if err != nil {
		return nil, fmt.Errorf("failed to get the order: %w", err)
	}

	query = `
		SELECT id, product_id, quantity, price_at_time_of_order
		FROM order_items
		WHERE order_id = $1
		ORDER BY id
	`

	rows, err := r.DB.QueryContext(dbCtx, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get the order items: %w", err)
	}

	defer rows.Close()

	for rows.Next() {

		item := models.OrderItem{OrderID: order.ID}

		if err := rows.Scan(&item.ID, &item.ProductID, &item.Quantity, &item.PriceAtTimeOfOrder); err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}

		order.Items = append(order.Items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating order items: %w", err)
	}

	return order, nil
}

func (r *orderRepository) UpdateOrderStatus(ctx context.Context, id int64, status models.OrderStatus) (*models.Order, error) {

	dbCtx, cancel := withTimeout(ctx, queryTimeout)
	defer cancel()

	query := `
		UPDATE orders
		SET status = $1
		WHERE id = $2
		RETURNING id, customer_id, status, order_date, total_amount
	`

	order := &models.Order{}

	err := r.DB.QueryRowContext(dbCtx, query, status, id).Scan(&order.ID, &order.CustomerID, &order.Status, &order.OrderDate, &order.TotalAmount)
	if err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	return order, nil
}
