package service

import (
	"context"
	"html"
	"strings"

	"github.com/aaravmahajanofficial/ecommerce-analytics/internal/errors"
	"github.com/aaravmahajanofficial/ecommerce-analytics/internal/models"
	repository "github.com/aaravmahajanofficial/ecommerce-analytics/internal/repositories"
	"github.com/microcosm-cc/bluemonday"
	"github.com/shopspring/decimal"
)

type CatalogService interface {
	CreateCategory(ctx context.Context, req *models.CreateCategoryRequest) (*models.Category, error)
	CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error)
	ListProducts(ctx context.Context, minPrice *decimal.Decimal) ([]models.Product, error)
}

type catalogService struct {
	repo     repository.CatalogRepository
	sanitize *bluemonday.Policy
}

func NewCatalogService(repo repository.CatalogRepository) CatalogService {
	return &catalogService{repo: repo, sanitize: bluemonday.StrictPolicy()}
}

func (s *catalogService) CreateCategory(ctx context.Context, req *models.CreateCategoryRequest) (*models.Category, error) {

	name := s.cleanText(req.Name)
	if name == "" {
		return nil, errors.AddValidationError("name", "must contain text")
	}

	category := &models.Category{Name: name}

	if err := s.repo.CreateCategory(ctx, category); err != nil {
		return nil, errors.DatabaseError("Failed to create category").WithError(err)
	}

	return category, nil
}

func (s *catalogService) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {

	if !req.Price.IsPositive() {
		return nil, errors.AddValidationError("price", "must be greater than 0")
	}

	name := s.cleanText(req.Name)
	if name == "" {
		return nil, errors.AddValidationError("name", "must contain text")
	}

	product := &models.Product{
		Name:        name,
		Description: s.cleanText(req.Description),
		SKU:         req.SKU,
		Price:       req.Price,
		CategoryID:  req.CategoryID,
		Tags:        dedupeTags(req.Tags),
	}

	if err := s.repo.CreateProduct(ctx, product, req.InitialQuantity); err != nil {
		switch {
		case repository.IsUniqueViolation(err):
			return nil, errors.DuplicateEntryError("SKU already exists").WithError(err)
		case repository.IsForeignKeyViolation(err):
			return nil, errors.NotFoundError("Category not found").WithError(err)
		default:
			return nil, errors.DatabaseError("Failed to create product").WithError(err)
		}
	}

	return product, nil
}

// ListProducts returns every product, or only those priced strictly above
// minPrice when it is non-nil.
func (s *catalogService) ListProducts(ctx context.Context, minPrice *decimal.Decimal) ([]models.Product, error) {

	if minPrice != nil && minPrice.IsNegative() {
		return nil, errors.AddValidationError("min_price", "must not be negative")
	}

	products, err := s.repo.ListProducts(ctx, minPrice)
	if err != nil {
		return nil, errors.DatabaseError("Failed to list products").WithError(err)
	}

	return products, nil
}

func dedupeTags(tags []string) []string {

	if len(tags) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))

	for _, tag := range tags {
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}

	return out
}

// cleanText strips markup from stored catalog text. Entities are decoded
// again so a literal "&" is kept as typed.
func (s *catalogService) cleanText(v string) string {
	return strings.TrimSpace(html.UnescapeString(s.sanitize.Sanitize(v)))
}
