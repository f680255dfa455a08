package applicationinfra

import (
	"context"
	"time"

	"github.com/staffhive/staffhive/marketplace/applicant"
	"github.com/staffhive/staffhive/marketplace/application"
	"github.com/staffhive/staffhive/pkg/kernel"
)

// StaffApplicationRepository implements application.Repository for the
// staff flow, where applications live as an embedded list on the staff
// profile record. Every write is a read-modify-write of the whole profile.
type StaffApplicationRepository struct {
	staffRepo applicant.StaffRepository
}

func NewStaffApplicationRepository(staffRepo applicant.StaffRepository) *StaffApplicationRepository {
	return &StaffApplicationRepository{staffRepo: staffRepo}
}

// FindExisting scans the profile's embedded list for the (recruiter, job)
// pair. The list is bounded by one person's applications, so a linear scan
// is acceptable; it is deliberately unbounded to stay faithful to records
// migrated from the existing system.
func (r *StaffApplicationRepository) FindExisting(ctx context.Context, ref application.ApplicantRef, recruiterID kernel.RecruiterID, jobID kernel.JobID) (*application.Application, error) {
	profile, err := r.staffRepo.GetByID(ctx, ref.StaffID)
	if err != nil {
		return nil, err
	}

	for i := range profile.Applications {
		app := &profile.Applications[i]
		if app.RecruiterID == recruiterID && app.JobID == jobID {
			found := *app
			return &found, nil
		}
	}
	return nil, nil
}

func (r *StaffApplicationRepository) Add(ctx context.Context, app *application.Application) error {
	profile, err := r.staffRepo.GetByID(ctx, app.Applicant.StaffID)
	if err != nil {
		return err
	}

	profile.Applications = append(profile.Applications, *app)
	return r.staffRepo.Put(ctx, profile)
}

func (r *StaffApplicationRepository) Get(ctx context.Context, ref application.ApplicantRef, id kernel.ApplicationID) (*application.Application, error) {
	profile, err := r.staffRepo.GetByID(ctx, ref.StaffID)
	if err != nil {
		return nil, err
	}

	for i := range profile.Applications {
		if profile.Applications[i].ID == id {
			found := profile.Applications[i]
			return &found, nil
		}
	}

	return nil, application.ErrApplicationNotFound().
		WithDetail("staff_id", ref.StaffID.String()).
		WithDetail("application_id", id.String())
}

func (r *StaffApplicationRepository) SetStatus(ctx context.Context, ref application.ApplicantRef, id kernel.ApplicationID, status application.ApplicationStatus) error {
	profile, err := r.staffRepo.GetByID(ctx, ref.StaffID)
	if err != nil {
		return err
	}

	for i := range profile.Applications {
		if profile.Applications[i].ID == id {
			profile.Applications[i].Status = status
			profile.Applications[i].UpdatedAt = time.Now()
			return r.staffRepo.Put(ctx, profile)
		}
	}

	return application.ErrApplicationNotFound().
		WithDetail("staff_id", ref.StaffID.String()).
		WithDetail("application_id", id.String())
}

func (r *StaffApplicationRepository) Remove(ctx context.Context, ref application.ApplicantRef, id kernel.ApplicationID) error {
	profile, err := r.staffRepo.GetByID(ctx, ref.StaffID)
	if err != nil {
		return err
	}

	kept := profile.Applications[:0]
	removed := false
	for _, app := range profile.Applications {
		if app.ID == id {
			removed = true
			continue
		}
		kept = append(kept, app)
	}

	if !removed {
		return application.ErrApplicationNotFound().
			WithDetail("staff_id", ref.StaffID.String()).
			WithDetail("application_id", id.String())
	}

	profile.Applications = kept
	return r.staffRepo.Put(ctx, profile)
}

func (r *StaffApplicationRepository) ListByApplicant(ctx context.Context, ref application.ApplicantRef) ([]application.Application, error) {
	profile, err := r.staffRepo.GetByID(ctx, ref.StaffID)
	if err != nil {
		return nil, err
	}
	return profile.Applications, nil
}
