package domain

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// Amounts is a money series encoded as bare JSON numbers so charts can
// plot it directly.
type Amounts []decimal.Decimal

func (a Amounts) MarshalJSON() ([]byte, error) {
	buf := make([]byte, 0, 2+len(a)*8)
	buf = append(buf, '[')
	for i, d := range a {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, d.String()...)
	}
	return append(buf, ']'), nil
}

// Rows returned by the report queries.

type OrderCount struct {
	OrderDate string `db:"order_date"`
	NumOrders int64  `db:"num_orders"`
}

type StockLevel struct {
	ProductName string `db:"product_name"`
	Quantity    int64  `db:"quantity"`
}

type PopularProduct struct {
	ProductID     int64  `db:"product_id" json:"product_id"`
	ProductName   string `db:"product_name" json:"product_name"`
	TotalQuantity int64  `db:"total_quantity" json:"total_quantity"`
}

type DailyRevenue struct {
	OrderDate    string          `db:"order_date"`
	TotalRevenue decimal.Decimal `db:"total_revenue"`
}

type CategorySales struct {
	CategoryName string          `db:"category_name"`
	TotalSales   decimal.Decimal `db:"total_sales"`
}

type MethodCount struct {
	MethodName       string `db:"method_name"`
	TransactionCount int64  `db:"transaction_count"`
}

// OrderDateRange is the span of order dates; both bounds are NULL when
// there are no orders.
type OrderDateRange struct {
	StartDate sql.NullString `db:"start_date"`
	EndDate   sql.NullString `db:"end_date"`
}

// Responses. Slices are always non-nil so empty reports encode as [].

type OrdersOverTimeResponse struct {
	Dates  []string `json:"dates"`
	Counts []int64  `json:"counts"`
}

type LowStockLevelsResponse struct {
	Products   []string `json:"products"`
	Quantities []int64  `json:"quantities"`
}

type RevenueGenerationResponse struct {
	Dates    []string `json:"dates"`
	Revenues Amounts  `json:"revenues"`
}

type CategoryPopularityResponse struct {
	Categories []string `json:"categories"`
	Sales      Amounts  `json:"sales"`
}

type PaymentMethodPopularityResponse struct {
	Methods []string `json:"methods"`
	Counts  []int64  `json:"counts"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
