package middleware

import (
	"strings"

	"pizzeria/internal/delivery/http/response"
	"pizzeria/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// KeyUsername is the echo.Context key carrying the authenticated caller's
// username, set by Authenticate for downstream handlers.
const KeyUsername = "username"

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer access token and stores the caller
// identity on the request context. Refresh tokens are rejected here;
// they are only good for the refresh endpoint.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "TOKEN_MISSING", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "TOKEN_MALFORMED", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "TOKEN_INVALID", "Invalid or expired token")
		}

		if claims.Type != service.TokenTypeAccess {
			return response.Unauthorized(c, "TOKEN_WRONG_TYPE", "Access token required")
		}

		if claims.Username == "" {
			return response.Unauthorized(c, "TOKEN_INVALID", "Subject missing from token")
		}

		c.Set(KeyUsername, claims.Username)

		return next(c)
	}
}
