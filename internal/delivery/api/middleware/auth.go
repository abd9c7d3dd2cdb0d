package middleware

import (
	"strings"

	"riskmonitor/internal/delivery/api/response"
	deliverycontext "riskmonitor/internal/delivery/context"
	"riskmonitor/internal/domain/service"
	"riskmonitor/internal/infra/auth"

	"github.com/labstack/echo/v4"
)

// tokenQueryParam carries the token where headers cannot be set (websockets)
const tokenQueryParam = "token"

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the access token and stores its subject on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, ok := extractToken(c)
		if !ok {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		token, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil || !token.Valid {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		email, err := auth.SubjectFromToken(token)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Subject missing from token")
		}

		deliverycontext.SetUserEmail(c, email)

		return next(c)
	}
}

func extractToken(c echo.Context) (string, bool) {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader != "" {
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return "", false
		}

		return tokenString, true
	}

	tokenString := c.QueryParam(tokenQueryParam)

	return tokenString, tokenString != ""
}
