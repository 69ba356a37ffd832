package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/ecommerce-analytics/internal/models"
	service "github.com/aaravmahajanofficial/ecommerce-analytics/internal/services"
	"github.com/aaravmahajanofficial/ecommerce-analytics/internal/utils"
	"github.com/aaravmahajanofficial/ecommerce-analytics/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type CustomerHandler struct {
	customerService service.CustomerService
	validator       *validator.Validate
}

func NewCustomerHandler(customerService service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService, validator: validator.New()}
}

// ListCustomers godoc
//	@Summary		List customers
//	@Tags			Customers
//	@Produce		json
//	@Success		200	{array}		models.Customer			"Customers"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure		500	{object}	response.ErrorResponse	"Internal server error"
//	@Security		BearerAuth
//	@Router			/customers/ [get]
func (h *CustomerHandler) ListCustomers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger, ok := authenticated(w, r, "list customers")
		if !ok {
			return
		}

		customers, err := h.customerService.ListCustomers(r.Context())
		if err != nil {
			logger.Error("Failed to list customers", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, customers)
	}
}

// CreateCustomer godoc
//	@Summary		Create a customer
//	@Tags			Customers
//	@Accept			json
//	@Produce		json
//	@Param			customer	body		models.CreateCustomerRequest	true	"Customer details"
//	@Success		201			{object}	models.Customer					"Created customer"
//	@Failure		400			{object}	response.ErrorResponse			"Invalid input"
//	@Failure		401			{object}	response.ErrorResponse			"Authentication required"
//	@Failure		409			{object}	response.ErrorResponse			"Email already registered"
//	@Security		BearerAuth
//	@Router			/customers/ [post]
func (h *CustomerHandler) CreateCustomer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger, ok := authenticated(w, r, "create customer")
		if !ok {
			return
		}

		var req models.CreateCustomerRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid customer input")
			return
		}

		customer, err := h.customerService.CreateCustomer(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to create customer", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Customer created", slog.Int64("customerID", customer.ID))
		response.Success(w, http.StatusCreated, customer)
	}
}

// GetCustomer godoc
//	@Summary		Get a customer with lifetime value
//	@Tags			Customers
//	@Produce		json
//	@Param			id	path		int						true	"Customer ID"
//	@Success		200	{object}	models.CustomerDetail	"Customer"
//	@Failure		400	{object}	response.ErrorResponse	"Invalid id"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure		404	{object}	response.ErrorResponse	"Customer not found"
//	@Security		BearerAuth
//	@Router			/customers/{id}/ [get]
func (h *CustomerHandler) GetCustomer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger, ok := authenticated(w, r, "get customer")
		if !ok {
			return
		}

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		customer, err := h.customerService.GetCustomer(r.Context(), id)
		if err != nil {
			logger.Warn("Failed to get customer", slog.Int64("customerID", id), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, customer)
	}
}
