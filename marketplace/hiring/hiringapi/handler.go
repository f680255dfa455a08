package hiringapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/staffhive/staffhive/marketplace/application"
	"github.com/staffhive/staffhive/marketplace/hiring"
	"github.com/staffhive/staffhive/marketplace/hiring/hiringsrv"
	"github.com/staffhive/staffhive/pkg/iam/auth"
	"github.com/staffhive/staffhive/pkg/kernel"
)

// Handlers provides HTTP handlers for hiring decisions and history.
type Handlers struct {
	service *hiringsrv.LifecycleService
}

func NewHandlers(service *hiringsrv.LifecycleService) *Handlers {
	return &Handlers{service: service}
}

// Decide marks an application Hired or Rejected
// PUT /api/candidates/status
func (h *Handlers) Decide(c *fiber.Ctx) error {
	var req hiring.DecideRequest
	if err := c.BodyParser(&req); err != nil {
		return application.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return fiber.ErrUnauthorized
	}
	req.RecruiterID = kernel.RecruiterID(authContext.UserID)

	resp, err := h.service.Decide(c.Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// AttachRating adds a rating and feedback to an archived decision
// PATCH /api/hiring-records/:id/rating
func (h *Handlers) AttachRating(c *fiber.Ctx) error {
	var req hiring.AttachRatingRequest
	if err := c.BodyParser(&req); err != nil {
		return application.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}
	req.RecordID = kernel.HiringRecordID(c.Params("id"))
	if req.RecordID.IsEmpty() {
		return application.ErrInvalidRequest().WithDetail("id", "missing or empty")
	}

	if err := h.service.AttachRating(c.Context(), req); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// RecruiterHistory lists the authenticated recruiter's decisions
// GET /api/hiring-records
func (h *Handlers) RecruiterHistory(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return fiber.ErrUnauthorized
	}

	records, err := h.service.HistoryForRecruiter(c.Context(), kernel.RecruiterID(authContext.UserID))
	if err != nil {
		return err
	}

	return c.JSON(records)
}

// StaffHistory lists the decisions made on the authenticated staff member
// GET /api/hiring-records/me
func (h *Handlers) StaffHistory(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return fiber.ErrUnauthorized
	}

	records, err := h.service.HistoryForStaff(c.Context(), authContext.UserID)
	if err != nil {
		return err
	}

	return c.JSON(records)
}

// InstituteHistory lists decisions on one institute's students by the recruiter
// GET /api/hiring-records/by-institute/:instituteId
func (h *Handlers) InstituteHistory(c *fiber.Ctx) error {
	instituteID := kernel.InstituteID(c.Params("instituteId"))
	if instituteID.IsEmpty() {
		return application.ErrInvalidRequest().WithDetail("institute_id", "missing or empty")
	}

	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return fiber.ErrUnauthorized
	}

	records, err := h.service.HistoryForInstitute(c.Context(), instituteID, kernel.RecruiterID(authContext.UserID))
	if err != nil {
		return err
	}

	return c.JSON(records)
}

// RegisterRoutes mounts the hiring routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware fiber.Handler) {
	api := app.Group("/api", authMiddleware)

	api.Put("/candidates/status", auth.RequireRole(auth.RoleRecruiter), handlers.Decide)
	api.Patch("/hiring-records/:id/rating", auth.RequireRole(auth.RoleRecruiter), handlers.AttachRating)
	api.Get("/hiring-records", auth.RequireRole(auth.RoleRecruiter), handlers.RecruiterHistory)
	api.Get("/hiring-records/me", auth.RequireRole(auth.RoleStaff), handlers.StaffHistory)
	api.Get("/hiring-records/by-institute/:instituteId", auth.RequireRole(auth.RoleRecruiter), handlers.InstituteHistory)
}
