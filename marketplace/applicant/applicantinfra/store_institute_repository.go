package applicantinfra

import (
	"context"
	"errors"

	"github.com/staffhive/staffhive/marketplace/applicant"
	"github.com/staffhive/staffhive/pkg/kernel"
	"github.com/staffhive/staffhive/pkg/storex"
)

// TableInstituteProfiles is the record store table holding institute
// profiles, roster included.
const TableInstituteProfiles = "institute_profiles"

// StoreInstituteRepository implements applicant.InstituteRepository against the record store
type StoreInstituteRepository struct {
	store storex.RecordStore
}

func NewStoreInstituteRepository(store storex.RecordStore) *StoreInstituteRepository {
	return &StoreInstituteRepository{store: store}
}

func (r *StoreInstituteRepository) GetByID(ctx context.Context, id kernel.InstituteID) (*applicant.InstituteProfile, error) {
	var profile applicant.InstituteProfile
	if err := r.store.GetItem(ctx, TableInstituteProfiles, id.String(), &profile); err != nil {
		if errors.Is(err, storex.ErrItemNotFound) {
			return nil, applicant.ErrInstituteNotFound().WithDetail("institute_id", id.String())
		}
		return nil, err
	}
	return &profile, nil
}

func (r *StoreInstituteRepository) Put(ctx context.Context, profile *applicant.InstituteProfile) error {
	return r.store.PutItem(ctx, TableInstituteProfiles, profile)
}

// SyncStudentPlacement rewrites one roster entry's placement fields. The
// whole profile record is written back; the store has no nested updates.
func (r *StoreInstituteRepository) SyncStudentPlacement(ctx context.Context, instituteID kernel.InstituteID, studentID kernel.StudentID, placedBy kernel.RecruiterID, jobID kernel.JobID) error {
	profile, err := r.GetByID(ctx, instituteID)
	if err != nil {
		return err
	}

	student := profile.FindStudent(studentID)
	if student == nil {
		return applicant.ErrStudentNotFound().
			WithDetail("institute_id", instituteID.String()).
			WithDetail("student_id", studentID.String())
	}

	student.PlacementStatus = applicant.PlacementStatusPlaced
	student.PlacedBy = placedBy
	student.PlacedJobID = jobID

	return r.Put(ctx, profile)
}
