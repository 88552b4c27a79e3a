package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// StatusSource exposes the runtime counters the health endpoint reports.
// The bot implements it.
type StatusSource interface {
	Uptime() time.Duration
	ActiveSessions() int
	Guilds() int
	CommandCounts() map[string]int
}

type Handler struct {
	status StatusSource
	logger *zap.Logger
}

func NewHandler(status StatusSource, logger *zap.Logger) *Handler {
	return &Handler{
		status: status,
		logger: logger,
	}
}

// GetHealth handles GET /api/v1/health
func (h *Handler) GetHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "healthy",
		"timestamp": time.Now(),
		"uptime":    h.status.Uptime().String(),
		"guilds":    h.status.Guilds(),
		"sessions":  h.status.ActiveSessions(),
	})
}

// GetMetrics handles GET /api/v1/metrics
func (h *Handler) GetMetrics(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"metrics": fiber.Map{
			"active_weather_sessions": h.status.ActiveSessions(),
			"uptime_seconds":          int64(h.status.Uptime().Seconds()),
			"commands":                h.status.CommandCounts(),
		},
		"timestamp": time.Now(),
	})
}
