package service

import (
	"context"
	"time"

	"github.com/aaravmahajanofficial/ecommerce-analytics/internal/errors"
	"github.com/aaravmahajanofficial/ecommerce-analytics/internal/models"
	repository "github.com/aaravmahajanofficial/ecommerce-analytics/internal/repositories"
)

type AnalyticsService interface {
	RevenueByCategory(ctx context.Context, start, end time.Time) ([]models.CategoryRevenue, error)
	TopSellingProductsByCountry(ctx context.Context, start, end time.Time) ([]models.CountryProductSales, error)
	ComputeChurnRate(ctx context.Context, end time.Time) (float64, error)
	SalesData(ctx context.Context) ([]models.ProductSales, error)
	Overview(ctx context.Context, customerID int64, window models.DateRange) (*models.AnalyticsOverview, error)
}

type analyticsService struct {
	sales           repository.SalesRepository
	recommendations RecommendationService
	churnWindow     time.Duration
}

// NewAnalyticsService builds the sales analytics. A customer is churned when
// their latest order is older than churnWindow at the evaluation date.
func NewAnalyticsService(sales repository.SalesRepository, recommendations RecommendationService, churnWindow time.Duration) AnalyticsService {
	return &analyticsService{sales: sales, recommendations: recommendations, churnWindow: churnWindow}
}

func validateWindow(start, end time.Time) error {
	if start.After(end) {
		return errors.ValidationError("Start date must not be after end date")
	}

	return nil
}

func (s *analyticsService) RevenueByCategory(ctx context.Context, start, end time.Time) ([]models.CategoryRevenue, error) {

	if err := validateWindow(start, end); err != nil {
		return nil, err
	}

	revenue, err := s.sales.RevenueByCategory(ctx, start, end)
	if err != nil {
		return nil, errors.DatabaseError("Failed to compute revenue by category").WithError(err)
	}

	return revenue, nil
}

func (s *analyticsService) TopSellingProductsByCountry(ctx context.Context, start, end time.Time) ([]models.CountryProductSales, error) {

	if err := validateWindow(start, end); err != nil {
		return nil, err
	}

	sales, err := s.sales.TopSellingProductsByCountry(ctx, start, end)
	if err != nil {
		return nil, errors.DatabaseError("Failed to compute top selling products").WithError(err)
	}

	return sales, nil
}

// ComputeChurnRate returns the churned share of all customers as a
// percentage. With no customers the rate is 0. Only the calendar date of end
// is used: the cutoff is midnight UTC of that day minus the churn window.
func (s *analyticsService) ComputeChurnRate(ctx context.Context, end time.Time) (float64, error) {

	y, m, d := end.UTC().Date()
	cutoff := time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Add(-s.churnWindow)

	stats, err := s.sales.ChurnStats(ctx, cutoff)
	if err != nil {
		return 0, errors.DatabaseError("Failed to compute churn rate").WithError(err)
	}

	if stats.TotalCustomers == 0 {
		return 0, nil
	}

	return float64(stats.ChurnedCustomers) / float64(stats.TotalCustomers) * 100, nil
}

func (s *analyticsService) SalesData(ctx context.Context) ([]models.ProductSales, error) {

	data, err := s.sales.SalesData(ctx)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch sales data").WithError(err)
	}

	return data, nil
}

// Overview resolves the customer first so an unknown id fails before any
// aggregate runs.
func (s *analyticsService) Overview(ctx context.Context, customerID int64, window models.DateRange) (*models.AnalyticsOverview, error) {

	if err := validateWindow(window.Start, window.End); err != nil {
		return nil, err
	}

	recommendations, err := s.recommendations.Recommend(ctx, customerID)
	if err != nil {
		return nil, err
	}

	revenue, err := s.RevenueByCategory(ctx, window.Start, window.End)
	if err != nil {
		return nil, err
	}

	topProducts, err := s.TopSellingProductsByCountry(ctx, window.Start, window.End)
	if err != nil {
		return nil, err
	}

	churn, err := s.ComputeChurnRate(ctx, window.End)
	if err != nil {
		return nil, err
	}

	return &models.AnalyticsOverview{
		Window:               window,
		RevenueByCategory:    revenue,
		TopProductsByCountry: topProducts,
		ChurnRate:            churn,
		Recommendations:      *recommendations,
	}, nil
}
