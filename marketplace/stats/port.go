package stats

import (
	"context"
	"time"

	"github.com/staffhive/staffhive/pkg/kernel"
)

// ReconcileQueue feeds the counter reconciler. Lifecycle side effects
// enqueue the recruiters they touched; the worker drains the queue and
// rewrites the materialized counters from a full recompute. The request
// path never waits on this.
type ReconcileQueue interface {
	// EnqueueRecruiter marks a recruiter's counters for recompute
	EnqueueRecruiter(ctx context.Context, recruiterID kernel.RecruiterID) error

	// DequeueRecruiter blocks up to timeout for the next recruiter.
	// Returns an empty id when the timeout passes with nothing queued.
	DequeueRecruiter(ctx context.Context, timeout time.Duration) (kernel.RecruiterID, error)
}
