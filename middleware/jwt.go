package middleware

import (
	"fmt"
	"strings"

	"museum-booking/logger"
	"museum-booking/types"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// VerifyJWT verifies an HS256 staff token signed with secret.
func VerifyJWT(tokenString string, secret []byte) (jwt.MapClaims, error) {
	if len(secret) == 0 {
		return nil, fmt.Errorf("admin token secret is not configured")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("failed to parse JWT: %w", err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid JWT token")
}

func hasPermission(claims jwt.MapClaims, requiredPermissions []string) bool {
	permissionSet := extractUserPermissionsFromClaims(claims)
	for _, requiredPerm := range requiredPermissions {
		if permissionSet[requiredPerm] {
			return true
		}
	}
	return false
}

func bearerToken(c *fiber.Ctx) (string, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		if token := c.Cookies("access"); token != "" {
			return token, nil
		}
		return "", fmt.Errorf("Authorization token missing")
	}

	tokenParts := strings.Split(authHeader, " ")
	if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
		return "", fmt.Errorf("Invalid authorization header format")
	}
	return tokenParts[1], nil
}

// IsAuthenticated is a middleware that checks for a valid staff JWT
func IsAuthenticated(secret []byte, requiredPermissions []string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, err := bearerToken(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(types.Fail(err.Error()))
		}

		claims, err := VerifyJWT(token, secret)
		if err != nil {
			logger.Warning("JWT verification failed: " + err.Error())
			return c.Status(fiber.StatusUnauthorized).JSON(types.Fail("Session expired. Login again."))
		}

		if !hasPermission(claims, requiredPermissions) {
			return c.Status(fiber.StatusForbidden).JSON(types.Fail("Insufficient permissions"))
		}

		c.Locals("user", claims)
		c.Locals("permissions", extractUserPermissionsFromClaims(claims))
		return c.Next()
	}
}
