package utils

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	appErrors "github.com/aaravmahajanofficial/ecommerce-analytics/internal/errors"
	"github.com/aaravmahajanofficial/ecommerce-analytics/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

const DateLayout = "2006-01-02"

// ParseAndValidate decodes the JSON body into dest and runs struct
// validation. On failure the error response is already written.
func ParseAndValidate(r *http.Request, w http.ResponseWriter, dest any, validate *validator.Validate) bool {

	if err := decodeJSON(r, dest); err != nil {
		slog.Warn("Failed to decode request body", slog.String("endpoint", r.URL.Path), slog.String("error", err.Error()))
		response.Error(w, appErrors.BadRequestError("Invalid request body").WithDetail(err.Error()))
		return false
	}

	if err := validateStruct(validate, dest); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			response.ValidationError(w, validationErrs)
			return false
		}

		response.Error(w, appErrors.ValidationError("Invalid input data").WithError(err))
		return false
	}

	return true
}

// ParseID reads a positive integer path parameter.
func ParseID(r *http.Request, name string) (int64, error) {

	raw := r.PathValue(name)

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, appErrors.AddValidationError(name, "must be a positive integer")
	}

	return id, nil
}

// ParseDate parses a YYYY-MM-DD value in UTC.
func ParseDate(field, raw string) (time.Time, error) {

	t, err := time.ParseInLocation(DateLayout, raw, time.UTC)
	if err != nil {
		return time.Time{}, appErrors.AddValidationError(field, "must be a date in YYYY-MM-DD format")
	}

	return t, nil
}

// EndOfDay returns the last representable instant of t's calendar day.
func EndOfDay(t time.Time) time.Time {
	y, m, d := t.Date()

	return time.Date(y, m, d, 0, 0, 0, 0, t.Location()).AddDate(0, 0, 1).Add(-time.Nanosecond)
}
