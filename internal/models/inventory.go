package models

import "time"

type Inventory struct {
	ID                int64  `json:"id"`
	ProductID         int64  `json:"product"`
	Quantity          int    `json:"quantity"`
	LastRestockedDate *Date  `json:"last_restocked_date"`
	ProductName       string `json:"product_name,omitempty"`
	SKU               string `json:"sku,omitempty"`
}

// Product and LastRestockedDate keep their stored value when omitted.
type UpdateInventoryRequest struct {
	Product           *int64 `json:"product,omitempty" validate:"omitempty,gt=0"`
	Quantity          *int   `json:"quantity" validate:"required,gte=0"`
	LastRestockedDate *Date  `json:"last_restocked_date,omitempty"`
}

type LowStockEvent struct {
	ProductID   int64     `json:"product_id"`
	ProductName string    `json:"product_name"`
	SKU         string    `json:"sku"`
	Quantity    int       `json:"quantity"`
	Threshold   int       `json:"threshold"`
	OccurredAt  time.Time `json:"occurred_at"`
}
