package testutils

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"

	"github.com/aaravmahajanofficial/ecommerce-analytics/internal/api/middleware"
	"github.com/aaravmahajanofficial/ecommerce-analytics/internal/logging"
	"github.com/aaravmahajanofficial/ecommerce-analytics/internal/models"
)

type RequestOption func(*http.Request) *http.Request

// WithPathValues sets the values the ServeMux would extract from a pattern.
func WithPathValues(values map[string]string) RequestOption {
	return func(r *http.Request) *http.Request {
		for key, value := range values {
			r.SetPathValue(key, value)
		}
		return r
	}
}

// WithAccessClaims authenticates the request the way the auth middleware
// would after verifying an access token.
func WithAccessClaims(userID int64) RequestOption {
	return func(r *http.Request) *http.Request {
		claims := &models.Claims{UserID: userID, Username: "analyst", TokenType: models.TokenTypeAccess}
		return r.WithContext(context.WithValue(r.Context(), middleware.UserContextKey, claims))
	}
}

// NewRequest builds a handler test request with a silent request logger.
func NewRequest(method, target string, body io.Reader, opts ...RequestOption) *http.Request {
	req := httptest.NewRequest(method, target, body)

	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))
	req = req.WithContext(logging.NewContext(req.Context(), quiet))

	for _, opt := range opts {
		req = opt(req)
	}

	return req
}

func CreateTestRequestWithContext(method, target string, body io.Reader, userID int64, pathParams map[string]string) *http.Request {
	return NewRequest(method, target, body, WithPathValues(pathParams), WithAccessClaims(userID))
}

func CreateTestRequestWithoutContext(method, target string, body io.Reader, pathParams map[string]string) *http.Request {
	return NewRequest(method, target, body, WithPathValues(pathParams))
}
