package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aaravmahajanofficial/ecommerce-analytics/internal/api/handlers"
	appErrors "github.com/aaravmahajanofficial/ecommerce-analytics/internal/errors"
	"github.com/aaravmahajanofficial/ecommerce-analytics/internal/models"
	"github.com/aaravmahajanofficial/ecommerce-analytics/internal/services/mocks"
	"github.com/aaravmahajanofficial/ecommerce-analytics/internal/testutils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListCustomers(t *testing.T) {
	customerService := mocks.NewCustomerService(t)
	customerService.On("ListCustomers", mock.Anything).Return([]models.Customer{{ID: 1, Name: "Alice"}, {ID: 2, Name: "Bob"}}, nil).Once()

	req := testutils.CreateTestRequestWithContext(http.MethodGet, "/customers/", nil, testUserID, nil)
	rr := httptest.NewRecorder()

	handlers.NewCustomerHandler(customerService).ListCustomers().ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var got []models.Customer
	decodeEnvelope(t, rr, &got)
	assert.Len(t, got, 2)
}

func TestCreateCustomer(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		customerService := mocks.NewCustomerService(t)
		customerService.On("CreateCustomer", mock.Anything, mock.MatchedBy(func(r *models.CreateCustomerRequest) bool {
			return r.Email == "alice@example.com" && r.RegistrationDate == nil
		})).Return(&models.Customer{ID: 1, Name: "Alice", Email: "alice@example.com", Country: "USA"}, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/customers/",
			strings.NewReader(`{"name":"Alice","email":"alice@example.com","country":"USA"}`), testUserID, nil)
		rr := httptest.NewRecorder()

		handlers.NewCustomerHandler(customerService).CreateCustomer().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("Failure - Invalid email", func(t *testing.T) {
		customerService := mocks.NewCustomerService(t)
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/customers/",
			strings.NewReader(`{"name":"Alice","email":"not-an-email","country":"USA"}`), testUserID, nil)
		rr := httptest.NewRecorder()

		handlers.NewCustomerHandler(customerService).CreateCustomer().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		resp := decodeEnvelope(t, rr, nil)
		assert.Contains(t, resp.Error.Details[0], "valid email")
	})

	t.Run("Failure - Duplicate email", func(t *testing.T) {
		customerService := mocks.NewCustomerService(t)
		customerService.On("CreateCustomer", mock.Anything, mock.Anything).Return(nil, appErrors.DuplicateEntryError("Email already registered")).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/customers/",
			strings.NewReader(`{"name":"Alice","email":"alice@example.com","country":"USA"}`), testUserID, nil)
		rr := httptest.NewRecorder()

		handlers.NewCustomerHandler(customerService).CreateCustomer().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
	})
}

func TestGetCustomer(t *testing.T) {
	t.Run("Success - Lifetime value in body", func(t *testing.T) {
		customerService := mocks.NewCustomerService(t)
		customerService.On("GetCustomer", mock.Anything, int64(1)).Return(&models.CustomerDetail{
			Customer:      models.Customer{ID: 1, Name: "Alice"},
			LifetimeValue: decimal.RequireFromString("415.5"),
		}, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/customers/1/", nil, testUserID, map[string]string{"id": "1"})
		rr := httptest.NewRecorder()

		handlers.NewCustomerHandler(customerService).GetCustomer().ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var got models.CustomerDetail
		decodeEnvelope(t, rr, &got)
		assert.Equal(t, "Alice", got.Name)
		assert.True(t, decimal.RequireFromString("415.5").Equal(got.LifetimeValue))
	})

	t.Run("Failure - Not found", func(t *testing.T) {
		customerService := mocks.NewCustomerService(t)
		customerService.On("GetCustomer", mock.Anything, int64(9)).Return(nil, appErrors.NotFoundError("Customer not found")).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/customers/9/", nil, testUserID, map[string]string{"id": "9"})
		rr := httptest.NewRecorder()

		handlers.NewCustomerHandler(customerService).GetCustomer().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
