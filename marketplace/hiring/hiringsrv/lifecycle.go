package hiringsrv

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/staffhive/staffhive/marketplace/applicant"
	"github.com/staffhive/staffhive/marketplace/application"
	"github.com/staffhive/staffhive/marketplace/hiring"
	"github.com/staffhive/staffhive/marketplace/recruiter"
	"github.com/staffhive/staffhive/marketplace/stats"
	"github.com/staffhive/staffhive/pkg/errx"
	"github.com/staffhive/staffhive/pkg/kernel"
	"github.com/staffhive/staffhive/pkg/logx"
)

// LifecycleService is the state machine around an application's status and
// the side effects of each transition. The status rewrite is the primary
// write; everything after it is best-effort and safe to retry, because the
// store offers no multi-item transactions to lean on.
type LifecycleService struct {
	staffApps     application.Repository
	instituteApps application.InstituteRepository
	archive       hiring.Archive
	recruiterRepo recruiter.Repository
	instituteRepo applicant.InstituteRepository
	reconcile     stats.ReconcileQueue
}

func NewLifecycleService(
	staffApps application.Repository,
	instituteApps application.InstituteRepository,
	archive hiring.Archive,
	recruiterRepo recruiter.Repository,
	instituteRepo applicant.InstituteRepository,
	reconcile stats.ReconcileQueue,
) *LifecycleService {
	return &LifecycleService{
		staffApps:     staffApps,
		instituteApps: instituteApps,
		archive:       archive,
		recruiterRepo: recruiterRepo,
		instituteRepo: instituteRepo,
		reconcile:     reconcile,
	}
}

func (s *LifecycleService) repoFor(t kernel.ApplicantType) application.Repository {
	if t == kernel.ApplicantTypeInstitute {
		return s.instituteApps
	}
	return s.staffApps
}

// Decide moves an application to a terminal status. If the application
// cannot be located the whole operation fails with no side effects; once
// the status rewrite lands, archive append, counter bump and placement
// sync are each logged and swallowed on failure rather than failing the
// request.
func (s *LifecycleService) Decide(ctx context.Context, req hiring.DecideRequest) (*hiring.DecideResponse, error) {
	if !req.Decision.IsTerminal() {
		return nil, hiring.ErrInvalidDecision().WithDetail("decision", req.Decision)
	}
	if !req.Applicant.Type.IsValid() {
		return nil, applicant.ErrInvalidApplicantType().WithDetail("type", req.Applicant.Type.String())
	}

	repo := s.repoFor(req.Applicant.Type)

	app, err := repo.Get(ctx, req.Applicant, req.ApplicationID)
	if err != nil {
		return nil, err
	}

	if err := app.Transition(req.Decision); err != nil {
		return nil, err
	}

	// Primary write. Nothing before this point has mutated anything.
	if err := repo.SetStatus(ctx, req.Applicant, req.ApplicationID, req.Decision); err != nil {
		return nil, errx.Wrap(err, "failed to update application status", errx.TypeInternal)
	}

	resp := &hiring.DecideResponse{Application: app}

	record := &hiring.Record{
		ID:          kernel.NewHiringRecordID(uuid.NewString()),
		Applicant:   app.Applicant,
		RecruiterID: app.RecruiterID,
		JobID:       app.JobID,
		JobTitle:    app.JobTitle,
		Status:      req.Decision,
		DecidedAt:   time.Now(),
		Snapshot:    app.Snapshot,
	}
	if err := s.archive.Append(ctx, record); err != nil {
		logx.Warnf("failed to append hiring record for application %s: %v", app.ID, err)
	} else {
		resp.Record = record
	}

	if req.Decision == application.ApplicationStatusHired {
		if err := s.recruiterRepo.IncrementHires(ctx, app.RecruiterID); err != nil {
			logx.Warnf("failed to increment hire counter for recruiter %s: %v", app.RecruiterID, err)
		}

		if app.Applicant.Type == kernel.ApplicantTypeInstitute {
			err := s.instituteRepo.SyncStudentPlacement(
				ctx,
				app.Applicant.InstituteID,
				app.Applicant.StudentID,
				app.RecruiterID,
				app.JobID,
			)
			if err != nil {
				logx.Warnf("failed to sync placement for student %s: %v", app.Applicant.StudentID, err)
			}
		}
	}

	if s.reconcile != nil {
		if err := s.reconcile.EnqueueRecruiter(ctx, app.RecruiterID); err != nil {
			logx.Warnf("failed to enqueue stats reconcile for recruiter %s: %v", app.RecruiterID, err)
		}
	}

	return resp, nil
}

// AttachRating adds a rating/feedback to an archived decision. It never
// touches the decision status.
func (s *LifecycleService) AttachRating(ctx context.Context, req hiring.AttachRatingRequest) error {
	return s.archive.AttachRating(ctx, req.RecordID, req.Rating, req.Feedback)
}

// HistoryForRecruiter lists a recruiter's decisions, newest first
func (s *LifecycleService) HistoryForRecruiter(ctx context.Context, recruiterID kernel.RecruiterID) ([]hiring.Record, error) {
	return s.archive.ListByRecruiter(ctx, recruiterID)
}

// HistoryForStaff lists the decisions made on one staff member
func (s *LifecycleService) HistoryForStaff(ctx context.Context, staffID kernel.UserID) ([]hiring.Record, error) {
	return s.archive.ListByStaff(ctx, staffID)
}

// HistoryForInstitute lists decisions on one institute's students by one recruiter
func (s *LifecycleService) HistoryForInstitute(ctx context.Context, instituteID kernel.InstituteID, recruiterID kernel.RecruiterID) ([]hiring.Record, error) {
	return s.archive.ListByInstituteAndRecruiter(ctx, instituteID, recruiterID)
}
