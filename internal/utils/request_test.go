package utils_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	appErrors "github.com/aaravmahajanofficial/ecommerce-analytics/internal/errors"
	"github.com/aaravmahajanofficial/ecommerce-analytics/internal/utils"
	"github.com/aaravmahajanofficial/ecommerce-analytics/internal/utils/response"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Name     string `json:"name" validate:"required"`
	Quantity int    `json:"quantity" validate:"gte=0"`
}

func TestParseAndValidate(t *testing.T) {
	validate := validator.New()

	t.Run("Success - Valid body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Widget","quantity":4}`))
		rr := httptest.NewRecorder()

		var dest sampleRequest
		ok := utils.ParseAndValidate(req, rr, &dest, validate)

		assert.True(t, ok)
		assert.Equal(t, "Widget", dest.Name)
		assert.Equal(t, 4, dest.Quantity)
	})

	t.Run("Failure - Malformed JSON", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`))
		rr := httptest.NewRecorder()

		var dest sampleRequest
		ok := utils.ParseAndValidate(req, rr, &dest, validate)

		assert.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), appErrors.ErrCodeBadRequest)
	})

	t.Run("Failure - Empty body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
		rr := httptest.NewRecorder()

		var dest sampleRequest
		ok := utils.ParseAndValidate(req, rr, &dest, validate)

		assert.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "request body cannot be empty")
	})

	t.Run("Failure - Trailing document", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"a"}{"name":"b"}`))
		rr := httptest.NewRecorder()

		var dest sampleRequest
		ok := utils.ParseAndValidate(req, rr, &dest, validate)

		assert.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Failure - Validation errors listed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"quantity":-1}`))
		rr := httptest.NewRecorder()

		var dest sampleRequest
		ok := utils.ParseAndValidate(req, rr, &dest, validate)

		assert.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, rr.Code)

		var body response.APIResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		require.NotNil(t, body.Error)
		assert.Equal(t, appErrors.ErrCodeValidation, body.Error.Code)
		assert.Len(t, body.Error.Details, 2)
	})
}

func TestParseID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/customers/42/", nil)
	req.SetPathValue("id", "42")

	id, err := utils.ParseID(req, "id")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, raw := range []string{"abc", "0", "-3", ""} {
		req.SetPathValue("id", raw)
		_, err := utils.ParseID(req, "id")
		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeValidation), "raw=%q", raw)
	}
}

func TestParseDateAndEndOfDay(t *testing.T) {
	d, err := utils.ParseDate("start_date", "2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), d)

	end := utils.EndOfDay(d)
	assert.Equal(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond), end)

	_, err = utils.ParseDate("start_date", "29/02/2024")
	assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeValidation))
}
