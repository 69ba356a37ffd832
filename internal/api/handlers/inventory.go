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

type InventoryHandler struct {
	inventoryService service.InventoryService
	validator        *validator.Validate
}

func NewInventoryHandler(inventoryService service.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService, validator: validator.New()}
}

// GetInventory godoc
//	@Summary		Get an inventory record
//	@Tags			Inventory
//	@Produce		json
//	@Param			id	path		int						true	"Inventory ID"
//	@Success		200	{object}	models.Inventory		"Inventory record"
//	@Failure		400	{object}	response.ErrorResponse	"Invalid id"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure		404	{object}	response.ErrorResponse	"Inventory not found"
//	@Security		BearerAuth
//	@Router			/inventory/{id}/ [get]
func (h *InventoryHandler) GetInventory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger, ok := authenticated(w, r, "get inventory")
		if !ok {
			return
		}

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		inv, err := h.inventoryService.GetInventory(r.Context(), id)
		if err != nil {
			logger.Warn("Failed to get inventory", slog.Int64("inventoryID", id), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, inv)
	}
}

// UpdateInventory godoc
//	@Summary		Update an inventory record
//	@Description	Sets the quantity and optionally the product and last restocked date. Omitted optional fields keep their values. A quantity under the low-stock threshold triggers a notification.
//	@Tags			Inventory
//	@Accept			json
//	@Produce		json
//	@Param			id			path		int								true	"Inventory ID"
//	@Param			inventory	body		models.UpdateInventoryRequest	true	"New values"
//	@Success		200			{object}	models.Inventory				"Updated inventory"
//	@Failure		400			{object}	response.ErrorResponse			"Invalid input"
//	@Failure		401			{object}	response.ErrorResponse			"Authentication required"
//	@Failure		404			{object}	response.ErrorResponse			"Inventory or product not found"
//	@Failure		409			{object}	response.ErrorResponse			"Product already has an inventory record"
//	@Security		BearerAuth
//	@Router			/inventory-update/{id}/ [put]
func (h *InventoryHandler) UpdateInventory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger, ok := authenticated(w, r, "update inventory")
		if !ok {
			return
		}

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		var req models.UpdateInventoryRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid inventory update input")
			return
		}

		inv, err := h.inventoryService.UpdateInventory(r.Context(), id, &req)
		if err != nil {
			logger.Error("Failed to update inventory", slog.Int64("inventoryID", id), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Inventory updated", slog.Int64("inventoryID", id), slog.Int("quantity", inv.Quantity))
		response.Success(w, http.StatusOK, inv)
	}
}
