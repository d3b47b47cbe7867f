package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// Auth builds permission middlewares around one signing secret.
type Auth struct {
	secret []byte
}

func NewAuth(secret string) *Auth {
	return &Auth{secret: []byte(secret)}
}

// RequirePermissions allows access if the token carries any of permissions
func (a *Auth) RequirePermissions(permissions ...string) fiber.Handler {
	return IsAuthenticated(a.secret, permissions)
}

func extractUserPermissionsFromClaims(claims jwt.MapClaims) map[string]bool {
	permissionSet := make(map[string]bool)

	userPermissions, ok := claims["permissions"].([]interface{})
	if !ok {
		return permissionSet
	}

	for _, p := range userPermissions {
		if perm, ok := p.(string); ok {
			permissionSet[perm] = true
		}
	}

	return permissionSet
}
