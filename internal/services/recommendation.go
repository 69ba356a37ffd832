package service

import (
	"context"
	"database/sql"
	stdErrors "errors"

	"github.com/aaravmahajanofficial/ecommerce-analytics/internal/errors"
	"github.com/aaravmahajanofficial/ecommerce-analytics/internal/models"
	repository "github.com/aaravmahajanofficial/ecommerce-analytics/internal/repositories"
)

// Recommender answers recommendation queries for one customer.
type Recommender interface {
	ByOrderHistory(ctx context.Context) ([]models.Product, error)
	BySimilarCustomers(ctx context.Context) ([]models.Customer, error)
	ByInventory(ctx context.Context) ([]models.Product, error)
}

type RecommendationService interface {
	ForCustomer(ctx context.Context, customerID int64) (Recommender, error)
	Recommend(ctx context.Context, customerID int64) (*models.Recommendations, error)
}

type recommendationService struct {
	repo      repository.RecommendationRepository
	customers repository.CustomerRepository
}

func NewRecommendationService(repo repository.RecommendationRepository, customers repository.CustomerRepository) RecommendationService {
	return &recommendationService{repo: repo, customers: customers}
}

func (s *recommendationService) ForCustomer(ctx context.Context, customerID int64) (Recommender, error) {

	customer, err := s.customers.GetCustomerByID(ctx, customerID)
	if err != nil {
		if stdErrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundError("Customer not found").WithError(err)
		}
		return nil, errors.DatabaseError("Failed to load customer").WithError(err)
	}

	return &customerRecommender{repo: s.repo, customerID: customer.ID}, nil
}

func (s *recommendationService) Recommend(ctx context.Context, customerID int64) (*models.Recommendations, error) {

	rec, err := s.ForCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	history, err := rec.ByOrderHistory(ctx)
	if err != nil {
		return nil, err
	}

	similar, err := rec.BySimilarCustomers(ctx)
	if err != nil {
		return nil, err
	}

	inStock, err := rec.ByInventory(ctx)
	if err != nil {
		return nil, err
	}

	return &models.Recommendations{
		OrderHistory:     history,
		SimilarCustomers: similar,
		InStock:          inStock,
	}, nil
}

type customerRecommender struct {
	repo       repository.RecommendationRepository
	customerID int64
}

func (r *customerRecommender) ByOrderHistory(ctx context.Context) ([]models.Product, error) {

	products, err := r.repo.OrderedProducts(ctx, r.customerID)
	if err != nil {
		return nil, errors.DatabaseError("Failed to load order history").WithError(err)
	}

	return products, nil
}

func (r *customerRecommender) BySimilarCustomers(ctx context.Context) ([]models.Customer, error) {

	customers, err := r.repo.SimilarCustomers(ctx, r.customerID)
	if err != nil {
		return nil, errors.DatabaseError("Failed to find similar customers").WithError(err)
	}

	return customers, nil
}

func (r *customerRecommender) ByInventory(ctx context.Context) ([]models.Product, error) {

	products, err := r.repo.InStockProducts(ctx)
	if err != nil {
		return nil, errors.DatabaseError("Failed to load in-stock products").WithError(err)
	}

	return products, nil
}
