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

const IdempotencyKeyHeader = "Idempotency-Key"

type OrderHandler struct {
	orderService service.OrderService
	validator    *validator.Validate
}

func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService, validator: validator.New()}
}

// PlaceOrder godoc
//	@Summary		Place an order
//	@Description	Places an order in a single transaction: prices are snapshotted and stock is decremented. Sending the same Idempotency-Key twice within its lifetime is rejected.
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			Idempotency-Key	header		string						false	"Client supplied deduplication key"
//	@Param			order			body		models.PlaceOrderRequest	true	"Customer and order lines"
//	@Success		201				{object}	models.OrderReceipt			"Placed order with tax"
//	@Failure		400				{object}	response.ErrorResponse		"Invalid input or insufficient stock"
//	@Failure		401				{object}	response.ErrorResponse		"Authentication required"
//	@Failure		404				{object}	response.ErrorResponse		"Customer or product not found"
//	@Failure		409				{object}	response.ErrorResponse		"Duplicate Idempotency-Key"
//	@Failure		500				{object}	response.ErrorResponse		"Internal server error"
//	@Security		BearerAuth
//	@Router			/orders/ [post]
func (h *OrderHandler) PlaceOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger, ok := authenticated(w, r, "place order")
		if !ok {
			return
		}

		var req models.PlaceOrderRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid order input")
			return
		}

		key := r.Header.Get(IdempotencyKeyHeader)

		receipt, err := h.orderService.PlaceOrder(r.Context(), &req, key)
		if err != nil {
			logger.Error("Failed to place order", slog.Int64("customerID", req.CustomerID), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Order placed", slog.Int64("orderID", receipt.Order.ID))
		response.Success(w, http.StatusCreated, receipt)
	}
}

// GetOrder godoc
//	@Summary		Get an order
//	@Tags			Orders
//	@Produce		json
//	@Param			id	path		int						true	"Order ID"
//	@Success		200	{object}	models.Order			"Order with items"
//	@Failure		400	{object}	response.ErrorResponse	"Invalid id"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure		404	{object}	response.ErrorResponse	"Order not found"
//	@Security		BearerAuth
//	@Router			/orders/{id}/ [get]
func (h *OrderHandler) GetOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger, ok := authenticated(w, r, "get order")
		if !ok {
			return
		}

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		order, err := h.orderService.GetOrder(r.Context(), id)
		if err != nil {
			logger.Warn("Failed to get order", slog.Int64("orderID", id), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, order)
	}
}

// UpdateOrderStatus godoc
//	@Summary		Change an order's status
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int								true	"Order ID"
//	@Param			status	body		models.UpdateOrderStatusRequest	true	"New status"
//	@Success		200		{object}	models.Order					"Updated order"
//	@Failure		400		{object}	response.ErrorResponse			"Invalid status"
//	@Failure		401		{object}	response.ErrorResponse			"Authentication required"
//	@Failure		404		{object}	response.ErrorResponse			"Order not found"
//	@Security		BearerAuth
//	@Router			/orders/{id}/status/ [patch]
func (h *OrderHandler) UpdateOrderStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger, ok := authenticated(w, r, "update order status")
		if !ok {
			return
		}

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		var req models.UpdateOrderStatusRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid order status input", slog.Int64("orderID", id))
			return
		}

		order, err := h.orderService.UpdateOrderStatus(r.Context(), id, req.Status)
		if err != nil {
			logger.Error("Failed to update order status", slog.Int64("orderID", id), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Order status updated", slog.Int64("orderID", id), slog.String("status", string(order.Status)))
		response.Success(w, http.StatusOK, order)
	}
}
