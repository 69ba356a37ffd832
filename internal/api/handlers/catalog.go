package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/ecommerce-analytics/internal/errors"
	"github.com/aaravmahajanofficial/ecommerce-analytics/internal/models"
	service "github.com/aaravmahajanofficial/ecommerce-analytics/internal/services"
	"github.com/aaravmahajanofficial/ecommerce-analytics/internal/utils"
	"github.com/aaravmahajanofficial/ecommerce-analytics/internal/utils/response"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

type CatalogHandler struct {
	catalogService service.CatalogService
	validator      *validator.Validate
}

func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService, validator: validator.New()}
}

// CreateCategory godoc
//	@Summary		Create a category
//	@Tags			Catalog
//	@Accept			json
//	@Produce		json
//	@Param			category	body		models.CreateCategoryRequest	true	"Category"
//	@Success		201			{object}	models.Category					"Created category"
//	@Failure		400			{object}	response.ErrorResponse			"Invalid input"
//	@Failure		401			{object}	response.ErrorResponse			"Authentication required"
//	@Security		BearerAuth
//	@Router			/categories/ [post]
func (h *CatalogHandler) CreateCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger, ok := authenticated(w, r, "create category")
		if !ok {
			return
		}

		var req models.CreateCategoryRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		category, err := h.catalogService.CreateCategory(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to create category", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Category created", slog.Int64("categoryID", category.ID))
		response.Success(w, http.StatusCreated, category)
	}
}

// CreateProduct godoc
//	@Summary		Create a product
//	@Description	Creates the product, attaches its tags and opens an inventory record with the initial quantity.
//	@Tags			Catalog
//	@Accept			json
//	@Produce		json
//	@Param			product	body		models.CreateProductRequest	true	"Product"
//	@Success		201		{object}	models.Product				"Created product"
//	@Failure		400		{object}	response.ErrorResponse		"Invalid input"
//	@Failure		401		{object}	response.ErrorResponse		"Authentication required"
//	@Failure		404		{object}	response.ErrorResponse		"Category not found"
//	@Failure		409		{object}	response.ErrorResponse		"SKU already exists"
//	@Security		BearerAuth
//	@Router			/products/ [post]
func (h *CatalogHandler) CreateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger, ok := authenticated(w, r, "create product")
		if !ok {
			return
		}

		var req models.CreateProductRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid product input")
			return
		}

		product, err := h.catalogService.CreateProduct(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to create product", slog.String("sku", req.SKU), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Product created", slog.Int64("productID", product.ID), slog.String("sku", product.SKU))
		response.Success(w, http.StatusCreated, product)
	}
}

// ListProducts godoc
//	@Summary		List products
//	@Description	Lists every product, or only those priced strictly above min_price.
//	@Tags			Catalog
//	@Produce		json
//	@Param			min_price	query		string					false	"Exclusive lower price bound"
//	@Success		200			{array}		models.Product			"Products"
//	@Failure		400			{object}	response.ErrorResponse	"Invalid min_price"
//	@Failure		401			{object}	response.ErrorResponse	"Authentication required"
//	@Security		BearerAuth
//	@Router			/products/ [get]
func (h *CatalogHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger, ok := authenticated(w, r, "list products")
		if !ok {
			return
		}

		var minPrice *decimal.Decimal

		if raw := r.URL.Query().Get("min_price"); raw != "" {
			v, err := decimal.NewFromString(raw)
			if err != nil {
				response.Error(w, errors.AddValidationError("min_price", "must be a number"))
				return
			}
			minPrice = &v
		}

		products, err := h.catalogService.ListProducts(r.Context(), minPrice)
		if err != nil {
			logger.Error("Failed to list products", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, products)
	}
}
