package models

import "github.com/shopspring/decimal"

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Tag struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	SKU         string          `json:"sku"`
	Price       decimal.Decimal `json:"price"`
	CategoryID  int64           `json:"category_id"`
	Tags        []string        `json:"tags,omitempty"`
}

type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

// Price has no validator tag; the catalog service checks it is positive.
type CreateProductRequest struct {
	Name            string          `json:"name" validate:"required,max=255"`
	Description     string          `json:"description"`
	SKU             string          `json:"sku" validate:"required,max=100"`
	Price           decimal.Decimal `json:"price"`
	CategoryID      int64           `json:"category_id" validate:"required,gt=0"`
	Tags            []string        `json:"tags" validate:"omitempty,dive,required,max=50"`
	InitialQuantity int             `json:"initial_quantity" validate:"gte=0"`
}
