package applicant

import (
	"context"

	"github.com/staffhive/staffhive/pkg/kernel"
)

type StaffRepository interface {
	// GetByID retrieves a staff profile by user id
	GetByID(ctx context.Context, id kernel.UserID) (*StaffProfile, error)

	// Put writes the full profile, embedded applications included
	Put(ctx context.Context, profile *StaffProfile) error

	// ListAll scans every staff profile. The embedded application lists
	// have no index of their own, so recruiter-wide views read everything.
	ListAll(ctx context.Context) ([]StaffProfile, error)
}

type InstituteRepository interface {
	// GetByID retrieves an institute profile by id
	GetByID(ctx context.Context, id kernel.InstituteID) (*InstituteProfile, error)

	// Put writes the full profile, roster included
	Put(ctx context.Context, profile *InstituteProfile) error

	// SyncStudentPlacement rewrites one roster entry's placement fields.
	// Read-modify-write of the whole profile record.
	SyncStudentPlacement(ctx context.Context, instituteID kernel.InstituteID, studentID kernel.StudentID, placedBy kernel.RecruiterID, jobID kernel.JobID) error
}
