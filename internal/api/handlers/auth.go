package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/ecommerce-analytics/internal/logging"
	"github.com/aaravmahajanofficial/ecommerce-analytics/internal/models"
	service "github.com/aaravmahajanofficial/ecommerce-analytics/internal/services"
	"github.com/aaravmahajanofficial/ecommerce-analytics/internal/utils"
	"github.com/aaravmahajanofficial/ecommerce-analytics/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type AuthHandler struct {
	authService service.AuthService
	validator   *validator.Validate
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService, validator: validator.New()}
}

// IssueToken godoc
//	@Summary		Obtain a token pair
//	@Description	Exchanges username and password for an access token and a refresh token. Attempts are rate limited per username.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			credentials	body		models.TokenRequest		true	"API user credentials"
//	@Success		200			{object}	models.TokenPair		"Access and refresh tokens"
//	@Failure		400			{object}	response.ErrorResponse	"Invalid input"
//	@Failure		401			{object}	response.ErrorResponse	"Invalid username or password"
//	@Failure		429			{object}	response.ErrorResponse	"Too many attempts"
//	@Failure		500			{object}	response.ErrorResponse	"Internal server error"
//	@Router			/token/ [post]
func (h *AuthHandler) IssueToken() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := logging.FromContext(r.Context())

		var req models.TokenRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid token request input")
			return
		}

		logger = logger.With(slog.String("username", req.Username))

		pair, err := h.authService.IssueToken(r.Context(), &req)
		if err != nil {
			logger.Warn("Token issuance failed", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Token issued")
		response.Success(w, http.StatusOK, pair)
	}
}

// RefreshToken godoc
//	@Summary		Refresh an access token
//	@Description	Exchanges a valid refresh token for a new access token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			refresh	body		models.RefreshRequest	true	"Refresh token"
//	@Success		200		{object}	models.AccessToken		"New access token"
//	@Failure		400		{object}	response.ErrorResponse	"Invalid input"
//	@Failure		401		{object}	response.ErrorResponse	"Invalid or expired refresh token"
//	@Router			/token/refresh/ [post]
func (h *AuthHandler) RefreshToken() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := logging.FromContext(r.Context())

		var req models.RefreshRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid refresh request input")
			return
		}

		token, err := h.authService.RefreshToken(r.Context(), req.Refresh)
		if err != nil {
			logger.Warn("Token refresh failed", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, token)
	}
}
