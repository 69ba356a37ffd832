package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type CategoryRevenue struct {
	CategoryName string          `json:"category_name"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}

type CountryProductSales struct {
	Country     string `json:"country"`
	ProductName string `json:"product_name"`
	TotalSales  int64  `json:"total_sales"`
}

type ProductSales struct {
	ProductName   string          `json:"product_name"`
	TotalQuantity int64           `json:"total_quantity"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
}

// ChurnStats are the raw counts behind a churn percentage.
type ChurnStats struct {
	TotalCustomers   int64
	ChurnedCustomers int64
}

type Recommendations struct {
	OrderHistory     []Product  `json:"order_history"`
	SimilarCustomers []Customer `json:"similar_customers"`
	InStock          []Product  `json:"in_stock"`
}

type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type AnalyticsOverview struct {
	Window               DateRange             `json:"window"`
	RevenueByCategory    []CategoryRevenue     `json:"revenue_by_category"`
	TopProductsByCountry []CountryProductSales `json:"top_products_by_country"`
	ChurnRate            float64               `json:"churn_rate"`
	Recommendations      Recommendations       `json:"recommendations"`
}

// MonthlySalesLine is one order item sold inside the report month.
type MonthlySalesLine struct {
	ProductName        string          `json:"product_name"`
	Quantity           int             `json:"quantity"`
	PriceAtTimeOfOrder decimal.Decimal `json:"price_at_time_of_order"`
}

func (l MonthlySalesLine) Revenue() decimal.Decimal {
	return l.PriceAtTimeOfOrder.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

type MonthlyReport struct {
	Filename    string
	ContentType string
	Body        []byte
}
