package service

import (
	"context"
	"database/sql"
	stdErrors "errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/aaravmahajanofficial/ecommerce-analytics/internal/config"
	"github.com/aaravmahajanofficial/ecommerce-analytics/internal/errors"
	"github.com/aaravmahajanofficial/ecommerce-analytics/internal/models"
	repository "github.com/aaravmahajanofficial/ecommerce-analytics/internal/repositories"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	IssueToken(ctx context.Context, req *models.TokenRequest) (*models.TokenPair, error)
	RefreshToken(ctx context.Context, refresh string) (*models.AccessToken, error)
	CreateUser(ctx context.Context, username, password string) (*models.User, error)
}

type authService struct {
	users   repository.UserRepository
	limiter repository.RateLimitRepository
	cfg     config.Security
	now     func() time.Time
}

func NewAuthService(users repository.UserRepository, limiter repository.RateLimitRepository, cfg config.Security) AuthService {
	return &authService{
		users:   users,
		limiter: limiter,
		cfg:     cfg,
		now:     time.Now,
	}
}

func (s *authService) IssueToken(ctx context.Context, req *models.TokenRequest) (*models.TokenPair, error) {

	if s.limiter != nil {
		decision, err := s.limiter.Allow(ctx, req.Username)
		if err != nil {
			return nil, errors.ThirdPartyError("Rate limit check failed").WithError(err)
		}

		if !decision.Allowed {
			return nil, errors.TooManyRequestsError("Too many token requests. Please try again later.").
				WithDetail(fmt.Sprintf("retry after %d seconds", int(math.Ceil(decision.RetryAfter.Seconds()))))
		}
	}

	user, err := s.users.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if stdErrors.Is(err, sql.ErrNoRows) {
			return nil, errors.UnauthorizedError("Invalid username or password")
		}
		return nil, errors.DatabaseError("Failed to load user").WithError(err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return nil, errors.UnauthorizedError("Invalid username or password")
	}

	access, err := s.sign(user, models.TokenTypeAccess, s.cfg.AccessTokenTTL)
	if err != nil {
		return nil, errors.InternalError("Failed to generate access token").WithError(err)
	}

	refresh, err := s.sign(user, models.TokenTypeRefresh, s.cfg.RefreshTokenTTL)
	if err != nil {
		return nil, errors.InternalError("Failed to generate refresh token").WithError(err)
	}

	return &models.TokenPair{Access: access, Refresh: refresh}, nil
}

func (s *authService) RefreshToken(ctx context.Context, refresh string) (*models.AccessToken, error) {

	claims, err := ParseToken(refresh, []byte(s.cfg.JWTKey))
	if err != nil {
		return nil, errors.UnauthorizedError("Invalid or expired refresh token").WithError(err)
	}

	if claims.TokenType != models.TokenTypeRefresh {
		return nil, errors.UnauthorizedError("Refresh token required")
	}

	// the user may have been removed since the refresh token was issued
	user, err := s.users.GetUserByID(ctx, claims.UserID)
	if err != nil {
		if stdErrors.Is(err, sql.ErrNoRows) {
			return nil, errors.UnauthorizedError("User no longer exists").WithError(err)
		}
		return nil, errors.DatabaseError("Failed to load user").WithError(err)
	}

	access, err := s.sign(user, models.TokenTypeAccess, s.cfg.AccessTokenTTL)
	if err != nil {
		return nil, errors.InternalError("Failed to generate access token").WithError(err)
	}

	return &models.AccessToken{Access: access}, nil
}

func (s *authService) CreateUser(ctx context.Context, username, password string) (*models.User, error) {

	username = strings.TrimSpace(username)

	if username == "" {
		return nil, errors.AddValidationError("username", "is required")
	}

	if len(password) < 8 {
		return nil, errors.AddValidationError("password", "must be at least 8 characters")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.InternalError("Failed to secure password").WithError(err)
	}

	user := &models.User{
		Username: username,
		Password: string(hashedPassword),
	}

	if err := s.users.CreateUser(ctx, user); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, errors.DuplicateEntryError("Username already taken").WithError(err)
		}
		return nil, errors.DatabaseError("Failed to create user").WithError(err)
	}

	return user, nil
}

func (s *authService) sign(user *models.User, tokenType models.TokenType, ttl time.Duration) (string, error) {

	now := s.now()

	claims := &models.Claims{
		UserID:    user.ID,
		Username:  user.Username,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   fmt.Sprintf("%d", user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTKey))
}

// ParseToken verifies an HS256 token and returns its claims. Expiry is
// checked by the parser.
func ParseToken(tokenString string, key []byte) (*models.Claims, error) {

	claims := &models.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}

	return claims, nil
}
