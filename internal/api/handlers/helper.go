package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/ecommerce-analytics/internal/api/middleware"
	"github.com/aaravmahajanofficial/ecommerce-analytics/internal/logging"
	"github.com/aaravmahajanofficial/ecommerce-analytics/internal/errors"
	"github.com/aaravmahajanofficial/ecommerce-analytics/internal/utils/response"
)

// authenticated returns the request logger tagged with the caller, or writes
// a 401 when the auth middleware did not run.
func authenticated(w http.ResponseWriter, r *http.Request, action string) (*slog.Logger, bool) {

	logger := logging.FromContext(r.Context())

	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		logger.Warn("Unauthorized attempt", slog.String("action", action))
		response.Error(w, errors.UnauthorizedError("Authentication required"))
		return nil, false
	}

	return logger.With(slog.Int64("userID", claims.UserID)), true
}
