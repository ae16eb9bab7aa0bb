package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/tommeech/ecommerce-dashboard/internal/domain"
	"go.uber.org/zap"
)

// ErrQuery marks any failure talking to the store. The underlying driver
// error is wrapped for logging and never shown to clients.
var ErrQuery = errors.New("database error occurred")

type ReportRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewReportRepository(db *sqlx.DB, logger *zap.Logger) *ReportRepository {
	return &ReportRepository{
		db:     db,
		logger: logger,
	}
}

// selectRows runs query on a connection held only for this call and scans
// every row into T, in result order.
func selectRows[T any](ctx context.Context, r *ReportRepository, op, query string, args ...any) ([]T, error) {
	conn, err := r.db.Connx(ctx)
	if err != nil {
		return nil, r.fail(op, err)
	}
	defer conn.Close()

	var rows []T
	if err := conn.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, r.fail(op, err)
	}
	return rows, nil
}

func getRow[T any](ctx context.Context, r *ReportRepository, op, query string, args ...any) (T, error) {
	var row T

	conn, err := r.db.Connx(ctx)
	if err != nil {
		return row, r.fail(op, err)
	}
	defer conn.Close()

	if err := conn.GetContext(ctx, &row, query, args...); err != nil {
		return row, r.fail(op, err)
	}
	return row, nil
}

func (r *ReportRepository) fail(op string, err error) error {
	r.logger.Error("Database error", zap.String("op", op), zap.Error(err))
	return fmt.Errorf("%s: %w: %v", op, ErrQuery, err)
}

// order_date is cast so DATE-declared columns come back as their stored
// text rather than a driver-parsed time.
var ordersOverTimeQuery = `
	SELECT CAST(order_date AS TEXT) AS order_date, COUNT(order_id) AS num_orders
	FROM orders
	GROUP BY order_date
	ORDER BY order_date`

func (r *ReportRepository) OrdersOverTime(ctx context.Context) ([]domain.OrderCount, error) {
	return selectRows[domain.OrderCount](ctx, r, "orders_over_time", ordersOverTimeQuery)
}

var lowStockLevelsQuery = `
	SELECT p.product_name, s.quantity
	FROM stock_level s
	JOIN products p ON s.product_id = p.product_id
	ORDER BY s.quantity ASC`

func (r *ReportRepository) LowStockLevels(ctx context.Context) ([]domain.StockLevel, error) {
	return selectRows[domain.StockLevel](ctx, r, "low_stock_levels", lowStockLevelsQuery)
}

// PopularProductsLimit caps most_popular_products.
const PopularProductsLimit = 10

var mostPopularProductsQuery = `
	SELECT p.product_id, p.product_name, SUM(od.quantity_ordered) AS total_quantity
	FROM order_details od
	JOIN products p ON od.product_id = p.product_id
	GROUP BY p.product_id, p.product_name
	ORDER BY total_quantity DESC
	LIMIT ?`

func (r *ReportRepository) MostPopularProducts(ctx context.Context) ([]domain.PopularProduct, error) {
	return selectRows[domain.PopularProduct](ctx, r, "most_popular_products", mostPopularProductsQuery, PopularProductsLimit)
}

var revenueGenerationQuery = `
	SELECT CAST(o.order_date AS TEXT) AS order_date, SUM(od.price_at_time * od.quantity_ordered) AS total_revenue
	FROM order_details od
	JOIN orders o ON od.order_id = o.order_id
	GROUP BY o.order_date
	ORDER BY o.order_date`

func (r *ReportRepository) RevenueGeneration(ctx context.Context) ([]domain.DailyRevenue, error) {
	return selectRows[domain.DailyRevenue](ctx, r, "revenue_generation", revenueGenerationQuery)
}

var productCategoryPopularityQuery = `
	SELECT pc.category_name, SUM(od.price_at_time * od.quantity_ordered) AS total_sales
	FROM products p
	JOIN product_categories pc ON p.category_id = pc.category_id
	JOIN order_details od ON p.product_id = od.product_id
	GROUP BY pc.category_name
	ORDER BY total_sales DESC`

func (r *ReportRepository) ProductCategoryPopularity(ctx context.Context) ([]domain.CategorySales, error) {
	return selectRows[domain.CategorySales](ctx, r, "product_category_popularity", productCategoryPopularityQuery)
}

var paymentMethodPopularityQuery = `
	SELECT pm.method_name, COUNT(p.payment_id) AS transaction_count
	FROM payments p
	JOIN payment_methods pm ON p.method_id = pm.method_id
	GROUP BY pm.method_name
	ORDER BY transaction_count DESC`

func (r *ReportRepository) PaymentMethodPopularity(ctx context.Context) ([]domain.MethodCount, error) {
	return selectRows[domain.MethodCount](ctx, r, "payment_method_popularity", paymentMethodPopularityQuery)
}

var orderDateRangeQuery = `
	SELECT CAST(MIN(order_date) AS TEXT) AS start_date, CAST(MAX(order_date) AS TEXT) AS end_date
	FROM orders`

func (r *ReportRepository) OrderDateRange(ctx context.Context) (domain.OrderDateRange, error) {
	return getRow[domain.OrderDateRange](ctx, r, "order_date_range", orderDateRangeQuery)
}

// Ping checks the store is reachable.
func (r *ReportRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
