package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID          int64           `json:"id"`
	CustomerID  int64           `json:"customer_id"`
	Status      OrderStatus     `json:"status"`
	OrderDate   time.Time       `json:"order_date"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Items       []OrderItem     `json:"items,omitempty"`
}

// PriceAtTimeOfOrder is the unit price captured when the order was placed.
// Revenue is always computed from it, never from the current product price.
type OrderItem struct {
	ID                 int64           `json:"id"`
	OrderID            int64           `json:"order_id"`
	ProductID          int64           `json:"product_id"`
	Quantity           int             `json:"quantity"`
	PriceAtTimeOfOrder decimal.Decimal `json:"price_at_time_of_order"`
}

type OrderLine struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
	Quantity  int   `json:"quantity" validate:"required,gt=0"`
}

type PlaceOrderRequest struct {
	CustomerID int64       `json:"customer_id" validate:"required,gt=0"`
	Items      []OrderLine `json:"items" validate:"required,min=1,dive"`
}

type UpdateOrderStatusRequest struct {
	Status OrderStatus `json:"status" validate:"required,oneof=pending shipped delivered cancelled"`
}

// StockLevel is the inventory left for a product after an order decremented it.
type StockLevel struct {
	ProductID   int64  `json:"product_id"`
	ProductName string `json:"product_name"`
	SKU         string `json:"sku"`
	Quantity    int    `json:"quantity"`
}

type OrderReceipt struct {
	Order   *Order          `json:"order"`
	Country string          `json:"country"`
	TaxRate decimal.Decimal `json:"tax_rate"`
	Tax     decimal.Decimal `json:"tax"`
}
