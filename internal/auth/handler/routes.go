package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Rendyseptch/Login-app/config"
	"github.com/Rendyseptch/Login-app/internal/ratelimit"
)

// RegisterRoutes mounts the API. The health endpoint is registered before
// the rate-limited group so probes never consume the general quota.
func RegisterRoutes(app *fiber.App, h *AuthHandler, store ratelimit.Store, cfg *config.Config) {
	app.Get("/api/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"success":     true,
			"message":     "Server is healthy",
			"timestamp":   time.Now().UTC().Format(time.RFC3339),
			"environment": cfg.Env,
		})
	})

	loginCfg := ratelimit.LoginConfig
	if cfg.IsDevelopment() {
		// Explicit development bypass for the login class only.
		loginCfg.Skip = func(*fiber.Ctx) bool { return true }
	}

	api := app.Group("/api", ratelimit.New(store, ratelimit.APIConfig))

	auth := api.Group("/auth")
	auth.Post("/register", ratelimit.New(store, ratelimit.RegisterConfig), h.Register)
	auth.Post("/login", ratelimit.New(store, loginCfg), h.Login)
	auth.Post("/logout", h.Logout)
	auth.Get("/me", h.RequireAuth, h.Me)
	auth.Get("/check-session", h.RequireAuth, h.CheckSession)

	api.Get("/dashboard", h.RequireAuth, h.Dashboard)
}
