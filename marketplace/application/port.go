package application

import (
	"context"

	"github.com/staffhive/staffhive/pkg/kernel"
)

// Repository abstracts one physical representation of applications. Two
// implementations exist: one embedding applications in the staff profile
// record, one keeping standalone records keyed jobId_studentId. The
// applicant-type tag on the reference selects which one a call goes to.
type Repository interface {
	// FindExisting returns the application for the (applicant, recruiter,
	// job) triple, or nil when none exists. This is the dedup guard's read.
	FindExisting(ctx context.Context, ref ApplicantRef, recruiterID kernel.RecruiterID, jobID kernel.JobID) (*Application, error)

	// Add persists a new application in the owning representation
	Add(ctx context.Context, app *Application) error

	// Get retrieves one application by id within the applicant's records
	Get(ctx context.Context, ref ApplicantRef, id kernel.ApplicationID) (*Application, error)

	// SetStatus rewrites the application's status in its representation
	SetStatus(ctx context.Context, ref ApplicantRef, id kernel.ApplicationID, status ApplicationStatus) error

	// Remove physically deletes the application. Only the explicit
	// forget/reject-and-remove action uses this.
	Remove(ctx context.Context, ref ApplicantRef, id kernel.ApplicationID) error

	// ListByApplicant returns all applications of one applicant
	ListByApplicant(ctx context.Context, ref ApplicantRef) ([]Application, error)
}

// InstituteRepository adds the scan-backed views that only exist for the
// standalone institute-flow table. The store has no secondary indexes, so
// these are full scans with in-memory filters.
type InstituteRepository interface {
	Repository

	// ListByJobAndRecruiter returns institute applications for one posting
	ListByJobAndRecruiter(ctx context.Context, jobID kernel.JobID, recruiterID kernel.RecruiterID) ([]Application, error)

	// ListByInstitute returns all applications sourced from one institute
	ListByInstitute(ctx context.Context, instituteID kernel.InstituteID) ([]Application, error)

	// ListByInstituteAndRecruiter narrows ListByInstitute to one recruiter
	ListByInstituteAndRecruiter(ctx context.Context, instituteID kernel.InstituteID, recruiterID kernel.RecruiterID) ([]Application, error)

	// ListByRecruiter returns all institute applications a recruiter received
	ListByRecruiter(ctx context.Context, recruiterID kernel.RecruiterID) ([]Application, error)
}
