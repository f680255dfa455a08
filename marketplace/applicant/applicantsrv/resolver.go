package applicantsrv

import (
	"context"

	"github.com/staffhive/staffhive/marketplace/applicant"
	"github.com/staffhive/staffhive/marketplace/application"
	"github.com/staffhive/staffhive/pkg/kernel"
)

// Resolver locates the record that owns (or will own) an application: a
// staff profile, or an institute profile plus the roster entry. Pure read,
// no side effects.
type Resolver struct {
	staffRepo     applicant.StaffRepository
	instituteRepo applicant.InstituteRepository
}

func NewResolver(staffRepo applicant.StaffRepository, instituteRepo applicant.InstituteRepository) *Resolver {
	return &Resolver{
		staffRepo:     staffRepo,
		instituteRepo: instituteRepo,
	}
}

// Resolve fails fast: a missing record, a missing roster entry, a record
// under an institute id whose role is not "institute", or an unknown
// applicant type all propagate to the caller.
func (r *Resolver) Resolve(ctx context.Context, ref application.ApplicantRef) (*applicant.Record, error) {
	switch ref.Type {
	case kernel.ApplicantTypeStaff:
		profile, err := r.staffRepo.GetByID(ctx, ref.StaffID)
		if err != nil {
			return nil, err
		}
		return &applicant.Record{
			Type:  kernel.ApplicantTypeStaff,
			Staff: profile,
		}, nil

	case kernel.ApplicantTypeInstitute:
		profile, err := r.instituteRepo.GetByID(ctx, ref.InstituteID)
		if err != nil {
			return nil, err
		}

		if profile.Role != applicant.RoleInstitute {
			return nil, applicant.ErrInstituteNotFound().
				WithDetail("institute_id", ref.InstituteID.String()).
				WithDetail("role", profile.Role)
		}

		student := profile.FindStudent(ref.StudentID)
		if student == nil {
			return nil, applicant.ErrStudentNotFound().
				WithDetail("institute_id", ref.InstituteID.String()).
				WithDetail("student_id", ref.StudentID.String())
		}

		return &applicant.Record{
			Type:      kernel.ApplicantTypeInstitute,
			Institute: profile,
			Student:   student,
		}, nil

	default:
		return nil, applicant.ErrInvalidApplicantType().WithDetail("type", ref.Type.String())
	}
}
