package middleware

import (
	"errors"
	"os"
	"strings"

	"resto_manager/constants"
	"resto_manager/helper"
	"resto_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

func Protected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies("access_token")

		if token == "" {
			auth := c.Get("Authorization")
			if strings.HasPrefix(auth, "Bearer ") {
				token = strings.TrimPrefix(auth, "Bearer ")
			}
		}

		if token == "" {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.SESSION_EXPIRED, errors.New("no token"))
		}

		jwtToken, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(os.Getenv("JWT_SECRET")), nil
		})
		if err != nil || !jwtToken.Valid {
			// Expired/invalid tokens map to a distinct "sign in again" message
			// so the client does not render it as a generic failure.
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.SESSION_EXPIRED, err)
		}

		c.Locals("user", jwtToken)
		return c.Next()
	}
}

// RequireManager gates write surfaces to manager-or-above, after the view-as
// override has been applied.
func RequireManager() fiber.Handler {
	return func(c *fiber.Ctx) error {
		_, _, isManager := helper.GetInfoAccountFromToken(c)
		if !isManager {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_MANAGER, errors.New("not manager"))
		}
		return c.Next()
	}
}
