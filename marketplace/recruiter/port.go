package recruiter

import (
	"context"

	"github.com/staffhive/staffhive/pkg/kernel"
)

type Repository interface {
	// GetByID retrieves a recruiter profile by ID
	GetByID(ctx context.Context, id kernel.RecruiterID) (*Profile, error)

	// Put writes the full profile
	Put(ctx context.Context, profile *Profile) error

	// IncrementHires bumps the hire counter. Read-modify-write; drift is
	// repaired by the reconciler's full recompute.
	IncrementHires(ctx context.Context, id kernel.RecruiterID) error

	// SetStats overwrites the materialized counters (reconciler path)
	SetStats(ctx context.Context, id kernel.RecruiterID, stats Stats) error
}
