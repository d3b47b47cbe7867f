package health

import (
	"context"
	"time"

	"museum-booking/logger"

	"github.com/gofiber/fiber/v2"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthResponse is the body of GET /api/health.
type HealthResponse struct {
	Success  bool   `json:"success"`
	Status   string `json:"status"`
	Database string `json:"database"`
	Driver   string `json:"driver"`
}

type HealthController struct {
	store  Pinger
	driver string
}

func NewHealthController(store Pinger, driver string) *HealthController {
	return &HealthController{store: store, driver: driver}
}

// Check pings the store with a short deadline
func (hc *HealthController) Check(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	if err := hc.store.Ping(ctx); err != nil {
		logger.Error("Health check failed", err)
		return c.Status(fiber.StatusServiceUnavailable).JSON(HealthResponse{
			Success:  false,
			Status:   "ERROR",
			Database: "disconnected",
			Driver:   hc.driver,
		})
	}

	return c.Status(fiber.StatusOK).JSON(HealthResponse{
		Success:  true,
		Status:   "OK",
		Database: "connected",
		Driver:   hc.driver,
	})
}
