// Package middleware holds the authentication and error handling middleware of the HTTP API.
package middleware

import (
	"strings"

	deliverycontext "assethub/internal/delivery/context"
	"assethub/internal/delivery/http/response"
	"assethub/internal/domain/entity"
	"assethub/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and stores its claims on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Authorization header is missing")
		}

		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenString == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid or expired token")
		}

		deliverycontext.SetClaims(c, claims)

		return next(c)
	}
}

// RequireRole rejects tokens that do not carry the given role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(required entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := deliverycontext.GetClaims(c)
			if !ok {
				return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
			}
			if claims.Role != required {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: require '"+required.String()+"' role")
			}

			return next(c)
		}
	}
}

// MatchEmail rejects requests whose :email path parameter names someone other than the token holder.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) MatchEmail(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := deliverycontext.GetClaims(c)
		if !ok {
			return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
		}
		if !strings.EqualFold(strings.TrimSpace(c.Param("email")), claims.Email) {
			return response.Forbidden(c, "FORBIDDEN", "Permission denied: email does not match token")
		}

		return next(c)
	}
}

// Email returns the authenticated email.
func Email(c echo.Context) string {
	claims, ok := deliverycontext.GetClaims(c)
	if !ok {
		return ""
	}

	return claims.Email
}
