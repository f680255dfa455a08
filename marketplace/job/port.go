package job

import (
	"context"

	"github.com/staffhive/staffhive/pkg/kernel"
)

type Repository interface {
	// GetByID retrieves a posting by ID
	GetByID(ctx context.Context, id kernel.JobID) (*JobPosting, error)

	// Put writes the full posting
	Put(ctx context.Context, posting *JobPosting) error

	// Exists checks if a posting exists by ID
	Exists(ctx context.Context, id kernel.JobID) (bool, error)

	// ListByRecruiter retrieves all postings owned by a recruiter
	ListByRecruiter(ctx context.Context, recruiterID kernel.RecruiterID) ([]JobPosting, error)

	// IncrementApplications bumps the posting's application counter.
	// Read-modify-write; lost updates are repaired by the stats recompute.
	IncrementApplications(ctx context.Context, id kernel.JobID) error
}
