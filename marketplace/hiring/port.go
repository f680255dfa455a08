package hiring

import (
	"context"

	"github.com/staffhive/staffhive/pkg/kernel"
)

// Archive is the hiring-record ledger. Appends only; the single update
// path attaches a rating and never touches the decision itself.
type Archive interface {
	// Append inserts a record under a freshly generated identity
	Append(ctx context.Context, record *Record) error

	// GetByID retrieves a record by ID
	GetByID(ctx context.Context, id kernel.HiringRecordID) (*Record, error)

	// ListByRecruiter returns a recruiter's decisions, newest first
	ListByRecruiter(ctx context.Context, recruiterID kernel.RecruiterID) ([]Record, error)

	// ListByStaff returns the decisions made on one staff member, newest first
	ListByStaff(ctx context.Context, staffID kernel.UserID) ([]Record, error)

	// ListByInstituteAndRecruiter returns decisions on one institute's
	// students by one recruiter, newest first
	ListByInstituteAndRecruiter(ctx context.Context, instituteID kernel.InstituteID, recruiterID kernel.RecruiterID) ([]Record, error)

	// AttachRating patches the rating/feedback fields
	AttachRating(ctx context.Context, id kernel.HiringRecordID, rating int, feedback string) error
}
