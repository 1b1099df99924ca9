package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/Rendyseptch/Login-app/internal/errors"
)

const userIDContextKey = "userID"

// RequireAuth gates protected routes. It extracts the session cookie,
// verifies it, and stores the user ID in the request locals. Invalid or
// expired cookies are cleared before rejecting.
func (h *AuthHandler) RequireAuth(c *fiber.Ctx) error {
	token := c.Cookies(sessionCookieName)
	if token == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Access denied. No token provided.",
		})
	}

	userID, err := h.tokens.Verify(token)
	if err != nil {
		h.clearSessionCookie(c)

		if errors.Is(err, apperrors.ErrTokenExpired) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "Session expired. Please login again.",
			})
		}

		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Invalid token.",
		})
	}

	c.Locals(userIDContextKey, userID)

	return c.Next()
}
