package applicationapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/staffhive/staffhive/marketplace/application"
	"github.com/staffhive/staffhive/marketplace/application/applicationsrv"
	"github.com/staffhive/staffhive/pkg/iam/auth"
	"github.com/staffhive/staffhive/pkg/kernel"
)

// Handlers provides HTTP handlers for application operations. They are
// dumb adapters; every invariant lives in the service layer.
type Handlers struct {
	service *applicationsrv.ApplicationService
}

func NewHandlers(service *applicationsrv.ApplicationService) *Handlers {
	return &Handlers{service: service}
}

// Apply records a single application
// POST /api/applications
func (h *Handlers) Apply(c *fiber.Ctx) error {
	var req application.ApplyRequest
	if err := c.BodyParser(&req); err != nil {
		return application.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	// Staff tokens always apply as themselves
	if authContext, ok := auth.GetAuthContext(c); ok && authContext.Role == auth.RoleStaff {
		req.Applicant = application.StaffRef(authContext.UserID)
	}

	resp, err := h.service.Apply(c.Context(), req)
	if err != nil {
		return err
	}

	status := fiber.StatusCreated
	if resp.AlreadyApplied {
		status = fiber.StatusOK
	}
	return c.Status(status).JSON(resp)
}

// ApplyBulk fans one institute action out to a cohort of students
// POST /api/applications/bulk
func (h *Handlers) ApplyBulk(c *fiber.Ctx) error {
	var req application.BulkApplyRequest
	if err := c.BodyParser(&req); err != nil {
		return application.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	resp, err := h.service.ApplyBulk(c.Context(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// MyApplications lists the authenticated staff member's applications
// GET /api/applications/me
func (h *Handlers) MyApplications(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return fiber.ErrUnauthorized
	}

	apps, err := h.service.ListForApplicant(c.Context(), application.StaffRef(authContext.UserID))
	if err != nil {
		return err
	}

	return c.JSON(apps)
}

// JobApplicants lists the institute students applied to one posting
// GET /api/applications/by-job/:jobId/students
func (h *Handlers) JobApplicants(c *fiber.Ctx) error {
	jobID := kernel.JobID(c.Params("jobId"))
	if jobID.IsEmpty() {
		return application.ErrInvalidRequest().WithDetail("job_id", "missing or empty")
	}

	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return fiber.ErrUnauthorized
	}

	apps, err := h.service.ListJobApplicants(c.Context(), jobID, kernel.RecruiterID(authContext.UserID))
	if err != nil {
		return err
	}

	return c.JSON(apps)
}

// AppliedInstitutes lists the institutes that applied to the recruiter
// GET /api/applications/institutes
func (h *Handlers) AppliedInstitutes(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return fiber.ErrUnauthorized
	}

	views, err := h.service.ListAppliedInstitutes(c.Context(), kernel.RecruiterID(authContext.UserID))
	if err != nil {
		return err
	}

	return c.JSON(views)
}

// InstituteApplications lists one institute's applications to the recruiter
// GET /api/applications/by-institute/:instituteId
func (h *Handlers) InstituteApplications(c *fiber.Ctx) error {
	instituteID := kernel.InstituteID(c.Params("instituteId"))
	if instituteID.IsEmpty() {
		return application.ErrInvalidRequest().WithDetail("institute_id", "missing or empty")
	}

	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return fiber.ErrUnauthorized
	}

	apps, err := h.service.ListForInstituteAndRecruiter(c.Context(), instituteID, kernel.RecruiterID(authContext.UserID))
	if err != nil {
		return err
	}

	return c.JSON(apps)
}

// SearchCandidates lists the recruiter's candidates with optional filters
// GET /api/candidates?query=&status=&job_id=
func (h *Handlers) SearchCandidates(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return fiber.ErrUnauthorized
	}

	req := application.SearchCandidatesRequest{
		RecruiterID: kernel.RecruiterID(authContext.UserID),
		Query:       c.Query("query"),
		Status:      application.ApplicationStatus(c.Query("status")),
		JobID:       kernel.JobID(c.Query("job_id")),
	}

	views, err := h.service.SearchCandidates(c.Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(views)
}

// Forget is the reject-and-remove action from the candidate search view
// DELETE /api/candidates/:id
func (h *Handlers) Forget(c *fiber.Ctx) error {
	id := kernel.ApplicationID(c.Params("id"))
	if id.IsEmpty() {
		return application.ErrInvalidRequest().WithDetail("id", "missing or empty")
	}

	var ref application.ApplicantRef
	if err := c.BodyParser(&ref); err != nil {
		return application.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	if err := h.service.Forget(c.Context(), ref, id); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// RegisterRoutes mounts the application routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware fiber.Handler) {
	api := app.Group("/api", authMiddleware)

	api.Post("/applications", handlers.Apply)
	api.Post("/applications/bulk", auth.RequireRole(auth.RoleInstitute), handlers.ApplyBulk)
	api.Get("/applications/me", auth.RequireRole(auth.RoleStaff), handlers.MyApplications)
	api.Get("/applications/by-job/:jobId/students", auth.RequireRole(auth.RoleRecruiter), handlers.JobApplicants)
	api.Get("/applications/institutes", auth.RequireRole(auth.RoleRecruiter), handlers.AppliedInstitutes)
	api.Get("/applications/by-institute/:instituteId", auth.RequireRole(auth.RoleRecruiter), handlers.InstituteApplications)
	api.Get("/candidates", auth.RequireRole(auth.RoleRecruiter), handlers.SearchCandidates)
	api.Delete("/candidates/:id", auth.RequireRole(auth.RoleRecruiter), handlers.Forget)
}
