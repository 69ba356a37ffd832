package service

import (
	"context"
	"database/sql"
	stdErrors "errors"
	"time"

	"github.com/aaravmahajanofficial/ecommerce-analytics/internal/errors"
	"github.com/aaravmahajanofficial/ecommerce-analytics/internal/models"
	repository "github.com/aaravmahajanofficial/ecommerce-analytics/internal/repositories"
)

type CustomerService interface {
	ListCustomers(ctx context.Context) ([]models.Customer, error)
	CreateCustomer(ctx context.Context, req *models.CreateCustomerRequest) (*models.Customer, error)
	GetCustomer(ctx context.Context, id int64) (*models.CustomerDetail, error)
}

type customerService struct {
	repo repository.CustomerRepository
}

func NewCustomerService(repo repository.CustomerRepository) CustomerService {
	return &customerService{repo: repo}
}

func (s *customerService) ListCustomers(ctx context.Context) ([]models.Customer, error) {

	customers, err := s.repo.ListCustomers(ctx)
	if err != nil {
		return nil, errors.DatabaseError("Failed to list customers").WithError(err)
	}

	return customers, nil
}

func (s *customerService) CreateCustomer(ctx context.Context, req *models.CreateCustomerRequest) (*models.Customer, error) {

	customer := &models.Customer{
		Name:             req.Name,
		Email:            req.Email,
		Country:          req.Country,
		RegistrationDate: models.DateOf(time.Now().UTC()),
	}

	if req.RegistrationDate != nil {
		customer.RegistrationDate = *req.RegistrationDate
	}

	if err := s.repo.CreateCustomer(ctx, customer); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, errors.DuplicateEntryError("Email already registered").WithError(err)
		}
		return nil, errors.DatabaseError("Failed to create customer").WithError(err)
	}

	return customer, nil
}

func (s *customerService) GetCustomer(ctx context.Context, id int64) (*models.CustomerDetail, error) {

	customer, err := s.repo.GetCustomerByID(ctx, id)
	if err != nil {
		if stdErrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundError("Customer not found").WithError(err)
		}
		return nil, errors.DatabaseError("Failed to load customer").WithError(err)
	}

	ltv, err := s.repo.LifetimeValue(ctx, id)
	if err != nil {
		return nil, errors.DatabaseError("Failed to compute lifetime value").WithError(err)
	}

	return &models.CustomerDetail{Customer: *customer, LifetimeValue: ltv}, nil
}
