package service

import (
	"context"

	"github.com/tommeech/ecommerce-dashboard/internal/domain"
	"go.uber.org/zap"
)

type ReportStore interface {
	OrdersOverTime(ctx context.Context) ([]domain.OrderCount, error)
	LowStockLevels(ctx context.Context) ([]domain.StockLevel, error)
	MostPopularProducts(ctx context.Context) ([]domain.PopularProduct, error)
	RevenueGeneration(ctx context.Context) ([]domain.DailyRevenue, error)
	ProductCategoryPopularity(ctx context.Context) ([]domain.CategorySales, error)
	PaymentMethodPopularity(ctx context.Context) ([]domain.MethodCount, error)
}

// ReportService turns report rows into chart-ready series. Each series
// keeps the row order of its query.
type ReportService struct {
	store  ReportStore
	logger *zap.Logger
}

func NewReportService(store ReportStore, logger *zap.Logger) *ReportService {
	return &ReportService{
		store:  store,
		logger: logger,
	}
}

func (s *ReportService) OrdersOverTime(ctx context.Context) (*domain.OrdersOverTimeResponse, error) {
	rows, err := s.store.OrdersOverTime(ctx)
	if err != nil {
		return nil, err
	}

	resp := &domain.OrdersOverTimeResponse{
		Dates:  make([]string, 0, len(rows)),
		Counts: make([]int64, 0, len(rows)),
	}
	for _, row := range rows {
		resp.Dates = append(resp.Dates, row.OrderDate)
		resp.Counts = append(resp.Counts, row.NumOrders)
	}
	return resp, nil
}

func (s *ReportService) LowStockLevels(ctx context.Context) (*domain.LowStockLevelsResponse, error) {
	rows, err := s.store.LowStockLevels(ctx)
	if err != nil {
		return nil, err
	}

	resp := &domain.LowStockLevelsResponse{
		Products:   make([]string, 0, len(rows)),
		Quantities: make([]int64, 0, len(rows)),
	}
	for _, row := range rows {
		resp.Products = append(resp.Products, row.ProductName)
		resp.Quantities = append(resp.Quantities, row.Quantity)
	}
	return resp, nil
}

func (s *ReportService) MostPopularProducts(ctx context.Context) ([]domain.PopularProduct, error) {
	rows, err := s.store.MostPopularProducts(ctx)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []domain.PopularProduct{}
	}
	return rows, nil
}

func (s *ReportService) RevenueGeneration(ctx context.Context) (*domain.RevenueGenerationResponse, error) {
	rows, err := s.store.RevenueGeneration(ctx)
	if err != nil {
		return nil, err
	}

	resp := &domain.RevenueGenerationResponse{
		Dates:    make([]string, 0, len(rows)),
		Revenues: make(domain.Amounts, 0, len(rows)),
	}
	for _, row := range rows {
		resp.Dates = append(resp.Dates, row.OrderDate)
		resp.Revenues = append(resp.Revenues, row.TotalRevenue)
	}
	return resp, nil
}

func (s *ReportService) ProductCategoryPopularity(ctx context.Context) (*domain.CategoryPopularityResponse, error) {
	rows, err := s.store.ProductCategoryPopularity(ctx)
	if err != nil {
		return nil, err
	}

	resp := &domain.CategoryPopularityResponse{
		Categories: make([]string, 0, len(rows)),
		Sales:      make(domain.Amounts, 0, len(rows)),
	}
	for _, row := range rows {
		resp.Categories = append(resp.Categories, row.CategoryName)
		resp.Sales = append(resp.Sales, row.TotalSales)
	}
	return resp, nil
}

func (s *ReportService) PaymentMethodPopularity(ctx context.Context) (*domain.PaymentMethodPopularityResponse, error) {
	rows, err := s.store.PaymentMethodPopularity(ctx)
	if err != nil {
		return nil, err
	}

	resp := &domain.PaymentMethodPopularityResponse{
		Methods: make([]string, 0, len(rows)),
		Counts:  make([]int64, 0, len(rows)),
	}
	for _, row := range rows {
		resp.Methods = append(resp.Methods, row.MethodName)
		resp.Counts = append(resp.Counts, row.TransactionCount)
	}

	s.logger.Debug("Payment method popularity computed", zap.Int("methods", len(resp.Methods)))
	return resp, nil
}
