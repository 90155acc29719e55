package api

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"
)

// Pinger is implemented by backing stores that can report liveness.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports service health.
type HealthHandler struct {
	pinger Pinger
}

// NewHealthHandler creates a new health handler. pinger may be nil when the
// service has no external dependencies.
func NewHealthHandler(pinger Pinger) *HealthHandler {
	return &HealthHandler{pinger: pinger}
}

// Check responds 200 when the service and its store are reachable.
func (h *HealthHandler) Check(c fiber.Ctx) error {
	if h.pinger != nil {
		ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
		defer cancel()
		if err := h.pinger.Ping(ctx); err != nil {
			return jsonError(c, fiber.StatusServiceUnavailable, "database unavailable")
		}
	}
	return jsonOK(c, fiber.Map{"status": "ok"})
}
