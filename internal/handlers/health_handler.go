package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/ats-resume-expert/internal/models"
	"alfredoptarigan/ats-resume-expert/internal/services"
)

type ToolchainProber interface {
	Probe() services.ToolchainStatus
}

type HealthHandler struct {
	prober ToolchainProber
}

func NewHealthHandler(prober ToolchainProber) *HealthHandler {
	return &HealthHandler{prober: prober}
}

// HandleHealth handles GET /api/v1/health. The service is degraded, not
// down, when the rendering toolchain is missing.
func (h *HealthHandler) HandleHealth(c *fiber.Ctx) error {
	status := h.prober.Probe()

	toolchain := models.ToolchainResponse{
		Available: status.Available,
		Pdftoppm:  status.Pdftoppm,
		Pdfinfo:   status.Pdfinfo,
		Version:   status.Version,
	}
	if status.Err != nil {
		toolchain.Error = status.Err.Error()
	}

	res := models.HealthResponse{
		Status:    "healthy",
		Time:      time.Now().UTC().Format(time.RFC3339),
		Toolchain: toolchain,
	}
	if !status.Available {
		res.Status = "degraded"
	}

	return c.JSON(res)
}
