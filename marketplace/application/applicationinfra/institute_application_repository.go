package applicationinfra

import (
	"context"
	"errors"
	"time"

	"github.com/staffhive/staffhive/marketplace/application"
	"github.com/staffhive/staffhive/pkg/kernel"
	"github.com/staffhive/staffhive/pkg/storex"
)

// TableInstituteApplications is the record store table holding
// institute-sourced applications as standalone records keyed
// jobId_studentId.
const TableInstituteApplications = "institute_applications"

// InstituteApplicationRepository implements application.InstituteRepository.
// The composite key makes the duplicate check a point read; one posting can
// receive many institute applications, so a scan there would not do.
type InstituteApplicationRepository struct {
	store storex.RecordStore
}

func NewInstituteApplicationRepository(store storex.RecordStore) *InstituteApplicationRepository {
	return &InstituteApplicationRepository{store: store}
}

func (r *InstituteApplicationRepository) FindExisting(ctx context.Context, ref application.ApplicantRef, recruiterID kernel.RecruiterID, jobID kernel.JobID) (*application.Application, error) {
	var app application.Application
	key := application.CompositeKey(jobID, ref.StudentID)

	err := r.store.GetItem(ctx, TableInstituteApplications, key, &app)
	if errors.Is(err, storex.ErrItemNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *InstituteApplicationRepository) Add(ctx context.Context, app *application.Application) error {
	return r.store.PutItem(ctx, TableInstituteApplications, app)
}

func (r *InstituteApplicationRepository) Get(ctx context.Context, ref application.ApplicantRef, id kernel.ApplicationID) (*application.Application, error) {
	var app application.Application
	if err := r.store.GetItem(ctx, TableInstituteApplications, id.String(), &app); err != nil {
		if errors.Is(err, storex.ErrItemNotFound) {
			return nil, application.ErrApplicationNotFound().WithDetail("application_id", id.String())
		}
		return nil, err
	}
	return &app, nil
}

func (r *InstituteApplicationRepository) SetStatus(ctx context.Context, ref application.ApplicantRef, id kernel.ApplicationID, status application.ApplicationStatus) error {
	err := r.store.UpdateItem(ctx, TableInstituteApplications, id.String(), map[string]any{
		"status":     string(status),
		"updated_at": time.Now(),
	})
	if errors.Is(err, storex.ErrItemNotFound) {
		return application.ErrApplicationNotFound().WithDetail("application_id", id.String())
	}
	return err
}

func (r *InstituteApplicationRepository) Remove(ctx context.Context, ref application.ApplicantRef, id kernel.ApplicationID) error {
	return r.store.DeleteItem(ctx, TableInstituteApplications, id.String())
}

func (r *InstituteApplicationRepository) ListByApplicant(ctx context.Context, ref application.ApplicantRef) ([]application.Application, error) {
	return r.list(ctx, func(app *application.Application) bool {
		return app.Applicant.InstituteID == ref.InstituteID && app.Applicant.StudentID == ref.StudentID
	})
}

func (r *InstituteApplicationRepository) ListByJobAndRecruiter(ctx context.Context, jobID kernel.JobID, recruiterID kernel.RecruiterID) ([]application.Application, error) {
	return r.list(ctx, func(app *application.Application) bool {
		return app.JobID == jobID && app.RecruiterID == recruiterID
	})
}

func (r *InstituteApplicationRepository) ListByInstitute(ctx context.Context, instituteID kernel.InstituteID) ([]application.Application, error) {
	return r.list(ctx, func(app *application.Application) bool {
		return app.Applicant.InstituteID == instituteID
	})
}

func (r *InstituteApplicationRepository) ListByInstituteAndRecruiter(ctx context.Context, instituteID kernel.InstituteID, recruiterID kernel.RecruiterID) ([]application.Application, error) {
	return r.list(ctx, func(app *application.Application) bool {
		return app.Applicant.InstituteID == instituteID && app.RecruiterID == recruiterID
	})
}

func (r *InstituteApplicationRepository) ListByRecruiter(ctx context.Context, recruiterID kernel.RecruiterID) ([]application.Application, error) {
	return r.list(ctx, func(app *application.Application) bool {
		return app.RecruiterID == recruiterID
	})
}

// list is the scan+filter every institute-flow view goes through. The store
// has no secondary indexes; a future backend with real indexes can replace
// this without touching call sites.
func (r *InstituteApplicationRepository) list(ctx context.Context, keep func(*application.Application) bool) ([]application.Application, error) {
	var all []application.Application
	if err := r.store.ScanItems(ctx, TableInstituteApplications, &all); err != nil {
		return nil, err
	}

	matched := make([]application.Application, 0)
	for i := range all {
		if keep(&all[i]) {
			matched = append(matched, all[i])
		}
	}
	return matched, nil
}
