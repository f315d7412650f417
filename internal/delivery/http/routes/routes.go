package routes

import (
	"github.com/gofiber/fiber/v3"

	"jobscout/internal/delivery/http/handler"
)

// Registry groups the handlers that get mounted on the app.
type Registry struct {
	Postings *handler.PostingHandler
	Health   *handler.HealthHandler
}

func Register(app *fiber.App, r Registry) {
	app.Get("/health", r.Health.HandleHealth)

	api := app.Group("/api/v1")
	postings := api.Group("/postings")
	postings.Get("/search", r.Postings.HandleSearch)
	postings.Get("/:id", r.Postings.HandleGet)
	postings.Delete("/:id", r.Postings.HandleDelete)
}
