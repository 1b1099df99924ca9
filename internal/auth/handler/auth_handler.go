package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/Rendyseptch/Login-app/config"
	"github.com/Rendyseptch/Login-app/internal/auth/dto"
	"github.com/Rendyseptch/Login-app/internal/auth/service"
	apperrors "github.com/Rendyseptch/Login-app/internal/errors"
)

const sessionCookieName = "token"

type AuthHandler struct {
	userService *service.UserService
	tokens      service.TokenManager
	cfg         *config.Config
}

func NewAuthHandler(userService *service.UserService, tokens service.TokenManager, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		tokens:      tokens,
		cfg:         cfg,
	}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input dto.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "invalid input",
		})
	}

	user, err := h.userService.Register(c.Context(), input)
	if err != nil {
		var verr *apperrors.ValidationError
		switch {
		case errors.As(err, &verr):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": verr.First(),
				"errors":  verr.Messages,
			})
		case apperrors.IsDuplicate(err):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "User already exists with this email or username",
			})
		default:
			log.Error().Err(err).Msg("registration failed")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": "Server error during registration",
			})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "User registered successfully",
		"user":    dto.NewUserOutput(user),
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "invalid input",
		})
	}

	user, token, err := h.userService.Login(c.Context(), input)
	if err != nil {
		var verr *apperrors.ValidationError
		switch {
		case errors.As(err, &verr):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": verr.First(),
				"errors":  verr.Messages,
			})
		case errors.Is(err, apperrors.ErrInvalidCredentials):
			// One message for unknown identifier and wrong password alike.
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Invalid email/username or password",
			})
		default:
			log.Error().Err(err).Msg("login failed")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": "Server error during login",
			})
		}
	}

	h.setSessionCookie(c, token)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Login successful",
		"user":    dto.NewUserOutput(user),
	})
}

// Logout clears the session cookie. Idempotent: logging out without a
// session is still a success.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.clearSessionCookie(c)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Logout successful",
	})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userID := c.Locals(userIDContextKey).(int64)

	user, err := h.userService.CurrentUser(c.Context(), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"message": "User not found",
			})
		}
		log.Error().Err(err).Int64("user_id", userID).Msg("get user failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Server error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"user":    dto.NewUserOutputWithCreatedAt(user),
	})
}

func (h *AuthHandler) CheckSession(c *fiber.Ctx) error {
	userID := c.Locals(userIDContextKey).(int64)

	user, err := h.userService.CurrentUser(c.Context(), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			// The account vanished after the token was minted; to the client
			// this is an expired session, not a server fault.
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"message": "Session expired",
			})
		}
		log.Error().Err(err).Int64("user_id", userID).Msg("session check failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Server error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Session is valid",
		"user":    dto.NewUserOutputWithCreatedAt(user),
	})
}

func (h *AuthHandler) Dashboard(c *fiber.Ctx) error {
	userID := c.Locals(userIDContextKey).(int64)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Welcome to Dashboard!",
		"user":    fiber.Map{"id": userID},
	})
}

func (h *AuthHandler) setSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.tokens.Expiry().Seconds()),
		HTTPOnly: true,
		Secure:   !h.cfg.IsDevelopment(),
		SameSite: fiber.CookieSameSiteStrictMode,
	})
}

func (h *AuthHandler) clearSessionCookie(c *fiber.Ctx) {
	// fasthttp only serializes Max-Age when positive, so expiry in the past
	// is what actually deletes the cookie.
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   !h.cfg.IsDevelopment(),
		SameSite: fiber.CookieSameSiteStrictMode,
	})
}
