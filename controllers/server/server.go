package server

import (
	"context"
	"time"

	"logistics-requests/logger"
	"logistics-requests/types"

	"github.com/gofiber/fiber/v2"
)

// Pinger checks a dependency, normally the database.
type Pinger func(ctx context.Context) error

type ServerController struct {
	ping    Pinger
	started time.Time
}

func NewServerController(ping Pinger) *ServerController {
	return &ServerController{ping: ping, started: time.Now()}
}

func (h *ServerController) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	data := fiber.Map{"uptime": time.Since(h.started).Round(time.Second).String()}
	if err := h.ping(ctx); err != nil {
		logger.Error("health check failed", err)
		data["database"] = "down"
		return c.Status(fiber.StatusServiceUnavailable).JSON(types.ApiResponse{
			Message: "Service unavailable",
			Status:  fiber.StatusServiceUnavailable,
			Data:    data,
		})
	}
	data["database"] = "up"
	return c.JSON(types.ApiResponse{
		Message: "OK",
		Status:  fiber.StatusOK,
		Data:    data,
	})
}
