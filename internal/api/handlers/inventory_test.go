package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/ecommerce-analytics/internal/api/handlers"
	appErrors "github.com/aaravmahajanofficial/ecommerce-analytics/internal/errors"
	"github.com/aaravmahajanofficial/ecommerce-analytics/internal/models"
	"github.com/aaravmahajanofficial/ecommerce-analytics/internal/services/mocks"
	"github.com/aaravmahajanofficial/ecommerce-analytics/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetInventory(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		inventoryService := mocks.NewInventoryService(t)
		inventoryService.On("GetInventory", mock.Anything, int64(1)).Return(&models.Inventory{ID: 1, ProductID: 10, Quantity: 4}, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/inventory/1/", nil, testUserID, map[string]string{"id": "1"})
		rr := httptest.NewRecorder()

		handlers.NewInventoryHandler(inventoryService).GetInventory().ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var got models.Inventory
		decodeEnvelope(t, rr, &got)
		assert.Equal(t, 4, got.Quantity)
	})

	t.Run("Failure - Not found", func(t *testing.T) {
		inventoryService := mocks.NewInventoryService(t)
		inventoryService.On("GetInventory", mock.Anything, int64(1)).Return(nil, appErrors.NotFoundError("Inventory not found")).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/inventory/1/", nil, testUserID, map[string]string{"id": "1"})
		rr := httptest.NewRecorder()

		handlers.NewInventoryHandler(inventoryService).GetInventory().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestUpdateInventory(t *testing.T) {
	t.Run("Success - Date parsed from body", func(t *testing.T) {
		inventoryService := mocks.NewInventoryService(t)
		date := models.NewDate(2024, time.June, 3)

		inventoryService.On("UpdateInventory", mock.Anything, int64(1), mock.MatchedBy(func(r *models.UpdateInventoryRequest) bool {
			return *r.Quantity == 25 && r.LastRestockedDate != nil && r.LastRestockedDate.Equal(date.Time) && r.Product == nil
		})).Return(&models.Inventory{ID: 1, ProductID: 10, Quantity: 25, LastRestockedDate: &date}, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodPut, "/inventory-update/1/",
			strings.NewReader(`{"quantity": 25, "last_restocked_date": "2024-06-03"}`), testUserID, map[string]string{"id": "1"})
		rr := httptest.NewRecorder()

		handlers.NewInventoryHandler(inventoryService).UpdateInventory().ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"last_restocked_date":"2024-06-03"`)
	})

	t.Run("Failure - Quantity missing", func(t *testing.T) {
		inventoryService := mocks.NewInventoryService(t)
		req := testutils.CreateTestRequestWithContext(http.MethodPut, "/inventory-update/1/",
			strings.NewReader(`{"product": 10}`), testUserID, map[string]string{"id": "1"})
		rr := httptest.NewRecorder()

		handlers.NewInventoryHandler(inventoryService).UpdateInventory().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Failure - Negative quantity", func(t *testing.T) {
		inventoryService := mocks.NewInventoryService(t)
		req := testutils.CreateTestRequestWithContext(http.MethodPut, "/inventory-update/1/",
			strings.NewReader(`{"quantity": -4}`), testUserID, map[string]string{"id": "1"})
		rr := httptest.NewRecorder()

		handlers.NewInventoryHandler(inventoryService).UpdateInventory().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Failure - Product already bound", func(t *testing.T) {
		inventoryService := mocks.NewInventoryService(t)
		inventoryService.On("UpdateInventory", mock.Anything, int64(1), mock.Anything).
			Return(nil, appErrors.DuplicateEntryError("Product already has an inventory record")).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodPut, "/inventory-update/1/",
			strings.NewReader(`{"quantity": 5, "product": 11}`), testUserID, map[string]string{"id": "1"})
		rr := httptest.NewRecorder()

		handlers.NewInventoryHandler(inventoryService).UpdateInventory().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("Failure - Unauthorized", func(t *testing.T) {
		inventoryService := mocks.NewInventoryService(t)
		req := testutils.CreateTestRequestWithoutContext(http.MethodPut, "/inventory-update/1/",
			strings.NewReader(`{"quantity": 5}`), map[string]string{"id": "1"})
		rr := httptest.NewRecorder()

		handlers.NewInventoryHandler(inventoryService).UpdateInventory().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
