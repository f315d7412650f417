package app

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	"jobscout/internal/delivery/http/handler"
	"jobscout/internal/delivery/http/middleware"
	"jobscout/internal/delivery/http/routes"
)

// NewHTTPApp assembles the fiber application around the container's
// dependencies.
func NewHTTPApp(c *Container) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: c.Config.App.AppName,
	})

	app.Use(middleware.ErrorHandler(c.Log))

	routes.Register(app, routes.Registry{
		Postings: handler.NewPostingHandler(c.Search),
		Health:   handler.NewHealthHandler(c.DB),
	})

	return app
}

// ListenAddr normalizes the configured port into a bindable address.
func (c *Container) ListenAddr() string {
	port := strings.TrimSpace(c.Config.App.HTTPPort)
	if port == "" {
		port = "8080"
	}
	if strings.HasPrefix(port, ":") {
		return port
	}
	return ":" + port
}
