package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"

	"jobscout/internal/database"
	"jobscout/internal/pkg/response"
)

type HealthHandler struct {
	db database.DB
}

func NewHealthHandler(db database.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) HandleHealth(c fiber.Ctx) error {
	storeStatus := "ok"
	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
		defer cancel()
		if err := h.db.Ping(ctx); err != nil {
			storeStatus = "unavailable"
		}
	}

	status := fiber.StatusOK
	if storeStatus != "ok" {
		status = fiber.StatusServiceUnavailable
	}
	return response.Success(c, status, "health", fiber.Map{
		"store": storeStatus,
		"time":  time.Now().UTC().Format(time.RFC3339),
	})
}
