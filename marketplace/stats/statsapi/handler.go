package statsapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/staffhive/staffhive/marketplace/application"
	"github.com/staffhive/staffhive/marketplace/stats/statssrv"
	"github.com/staffhive/staffhive/pkg/iam/auth"
	"github.com/staffhive/staffhive/pkg/kernel"
)

// Handlers provides HTTP handlers for the dashboard aggregates.
type Handlers struct {
	service *statssrv.StatsService
}

func NewHandlers(service *statssrv.StatsService) *Handlers {
	return &Handlers{service: service}
}

// RecruiterStats returns the authenticated recruiter's counters
// GET /api/stats/recruiter
func (h *Handlers) RecruiterStats(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return fiber.ErrUnauthorized
	}

	view, err := h.service.RecruiterStats(c.Context(), kernel.RecruiterID(authContext.UserID))
	if err != nil {
		return err
	}

	return c.JSON(view)
}

// PlacementRate returns the authenticated institute's placement rate
// GET /api/stats/placement-rate
func (h *Handlers) PlacementRate(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return fiber.ErrUnauthorized
	}

	view, err := h.service.PlacementRate(c.Context(), kernel.InstituteID(authContext.UserID))
	if err != nil {
		return err
	}

	return c.JSON(view)
}

// AveragePackage returns an institute's average hired salary in LPA
// GET /api/stats/average-package/:instituteId
func (h *Handlers) AveragePackage(c *fiber.Ctx) error {
	instituteID := kernel.InstituteID(c.Params("instituteId"))
	if instituteID.IsEmpty() {
		return application.ErrInvalidRequest().WithDetail("institute_id", "missing or empty")
	}

	view, err := h.service.AveragePackage(c.Context(), instituteID)
	if err != nil {
		return err
	}

	return c.JSON(view)
}

// RegisterRoutes mounts the stats routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware fiber.Handler) {
	api := app.Group("/api/stats", authMiddleware)

	api.Get("/recruiter", auth.RequireRole(auth.RoleRecruiter), handlers.RecruiterStats)
	api.Get("/placement-rate", auth.RequireRole(auth.RoleInstitute), handlers.PlacementRate)
	api.Get("/average-package/:instituteId", handlers.AveragePackage)
}
