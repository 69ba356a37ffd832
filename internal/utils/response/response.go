package response

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/aaravmahajanofficial/ecommerce-analytics/internal/errors"
	"github.com/go-playground/validator/v10"
)

type APIResponse struct {
	Success bool           `json:"success"`
	Data    any            `json:"data,omitempty"`
	Error   *ErrorResponse `json:"error,omitempty"`
}

type ErrorResponse struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

// validation tag -> message; %[1]s is the field, %[2]s the tag parameter.
var validationMessages = map[string]string{
	"required": "Field %[1]s is required",
	"email":    "Field %[1]s must be a valid email address",
	"min":      "Field %[1]s must have at least %[2]s items or characters",
	"max":      "Field %[1]s must have at most %[2]s items or characters",
	"gt":       "Field %[1]s must be greater than %[2]s",
	"gte":      "Field %[1]s must be greater than or equal to %[2]s",
	"oneof":    "Field %[1]s must be one of [%[2]s]",
}

func WriteJson(w http.ResponseWriter, statusCode int, data any) error {

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(data)
}

func Success(w http.ResponseWriter, statusCode int, data any) {
	if err := WriteJson(w, statusCode, APIResponse{Success: true, Data: data}); err != nil {
		slog.Error("Failed to encode response", slog.String("error", err.Error()))
	}
}

func fail(w http.ResponseWriter, statusCode int, body *ErrorResponse) {
	if err := WriteJson(w, statusCode, APIResponse{Error: body}); err != nil {
		slog.Error("Failed to encode error response", slog.String("code", body.Code), slog.String("error", err.Error()))
	}
}

// Error maps err onto the envelope. Anything that is not an AppError is
// reported as a 500 with the error text in details.
func Error(w http.ResponseWriter, err error) {

	appErr, ok := errors.IsAppError(err)
	if !ok {
		body := &ErrorResponse{Code: errors.ErrCodeInternal, Message: "An unexpected error occurred"}
		if err != nil {
			body.Details = []string{err.Error()}
		}

		fail(w, http.StatusInternalServerError, body)
		return
	}

	if appErr.StatusCode >= http.StatusInternalServerError && appErr.Err != nil {
		slog.Error("Request failed", slog.String("code", appErr.Code), slog.String("message", appErr.Message), slog.String("cause", appErr.Err.Error()))
	}

	fail(w, appErr.StatusCode, &ErrorResponse{
		Code:    appErr.Code,
		Message: appErr.Message,
		Details: appErr.Details,
	})
}

// Attachment streams a binary download with the given filename.
func Attachment(w http.ResponseWriter, filename, contentType string, body []byte) {

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(body); err != nil {
		slog.Error("Failed to write attachment", slog.String("filename", filename), slog.String("error", err.Error()))
	}
}

// ValidationError lists one message per failed field.
func ValidationError(w http.ResponseWriter, errs validator.ValidationErrors) {

	details := make([]string, 0, len(errs))

	for _, fe := range errs {
		format, ok := validationMessages[fe.Tag()]
		if !ok {
			details = append(details, fmt.Sprintf("Field %s is invalid: %s=%s", fe.Field(), fe.Tag(), fe.Param()))
			continue
		}

		details = append(details, fmt.Sprintf(format, fe.Field(), fe.Param()))
	}

	fail(w, http.StatusBadRequest, &ErrorResponse{
		Code:    errors.ErrCodeValidation,
		Message: "Validation failed",
		Details: details,
	})
}
