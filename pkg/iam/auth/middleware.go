package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/staffhive/staffhive/pkg/kernel"
)

const authContextKey = "auth_context"

// AuthContext carries the authenticated identity through a request
type AuthContext struct {
	UserID kernel.UserID
	Role   Role
}

// Middleware validates bearer tokens and stores the AuthContext in locals
func Middleware(tokenService *TokenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Missing authorization header")
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid authorization format")
		}

		claims, err := tokenService.ValidateAccessToken(parts[1])
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid or expired token")
		}

		c.Locals(authContextKey, AuthContext{
			UserID: claims.UserID,
			Role:   claims.Role,
		})

		return c.Next()
	}
}

// RequireRole rejects requests whose token carries a different role
func RequireRole(role Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authContext, ok := GetAuthContext(c)
		if !ok || authContext.Role != role {
			return fiber.NewError(fiber.StatusForbidden, "Insufficient role")
		}
		return c.Next()
	}
}

// GetAuthContext extracts the authenticated identity from the request
func GetAuthContext(c *fiber.Ctx) (AuthContext, bool) {
	authContext, ok := c.Locals(authContextKey).(AuthContext)
	return authContext, ok
}
