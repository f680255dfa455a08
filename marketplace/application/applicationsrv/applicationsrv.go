package applicationsrv

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/staffhive/staffhive/marketplace/applicant"
	"github.com/staffhive/staffhive/marketplace/applicant/applicantsrv"
	"github.com/staffhive/staffhive/marketplace/application"
	"github.com/staffhive/staffhive/marketplace/job"
	"github.com/staffhive/staffhive/pkg/errx"
	"github.com/staffhive/staffhive/pkg/kernel"
	"github.com/staffhive/staffhive/pkg/logx"
)

// ApplicationService provides the apply operations: single apply with the
// dedup guard, institute cohort fan-out, and the recruiter/applicant views.
type ApplicationService struct {
	resolver      *applicantsrv.Resolver
	staffApps     application.Repository
	instituteApps application.InstituteRepository
	staffRepo     applicant.StaffRepository
	jobRepo       job.Repository
}

func NewApplicationService(
	resolver *applicantsrv.Resolver,
	staffApps application.Repository,
	instituteApps application.InstituteRepository,
	staffRepo applicant.StaffRepository,
	jobRepo job.Repository,
) *ApplicationService {
	return &ApplicationService{
		resolver:      resolver,
		staffApps:     staffApps,
		instituteApps: instituteApps,
		staffRepo:     staffRepo,
		jobRepo:       jobRepo,
	}
}

// repoFor selects the physical representation by applicant-type tag
func (s *ApplicationService) repoFor(t kernel.ApplicantType) application.Repository {
	if t == kernel.ApplicantTypeInstitute {
		return s.instituteApps
	}
	return s.staffApps
}

// Apply records a single application. Repeating a submission for the same
// (applicant, recruiter, job) triple returns the existing application with
// AlreadyApplied set instead of erroring, so client retries are harmless.
func (s *ApplicationService) Apply(ctx context.Context, req application.ApplyRequest) (*application.ApplyResponse, error) {
	record, err := s.resolver.Resolve(ctx, req.Applicant)
	if err != nil {
		return nil, err
	}

	posting, err := s.jobRepo.GetByID(ctx, req.JobID)
	if err != nil {
		return nil, err
	}
	if !posting.IsActive() {
		return nil, job.ErrJobClosed().WithDetail("job_id", req.JobID.String())
	}

	repo := s.repoFor(req.Applicant.Type)

	existing, err := repo.FindExisting(ctx, req.Applicant, req.RecruiterID, req.JobID)
	if err != nil {
		return nil, errx.Wrap(err, "failed to check duplicate application", errx.TypeInternal)
	}
	if existing != nil {
		return &application.ApplyResponse{
			Application:    existing,
			AlreadyApplied: true,
		}, nil
	}

	now := time.Now()
	newApp := &application.Application{
		ID:          s.newApplicationID(req),
		Applicant:   req.Applicant,
		RecruiterID: req.RecruiterID,
		JobID:       req.JobID,
		JobTitle:    req.JobTitle,
		CompanyName: req.CompanyName,
		Status:      application.InitialStatusFor(req.Applicant.Type),
		AppliedAt:   now,
		UpdatedAt:   now,
	}
	if newApp.JobTitle == "" {
		newApp.JobTitle = posting.Title
	}
	if newApp.CompanyName == "" {
		newApp.CompanyName = posting.CompanyName
	}
	if record.Student != nil {
		newApp.Snapshot = applicant.SnapshotOf(record.Student)
	}

	if err := repo.Add(ctx, newApp); err != nil {
		return nil, errx.Wrap(err, "failed to create application", errx.TypeInternal)
	}

	// The counter bump is not rolled into the create; a lost increment
	// leaves the counter stale until the recompute path repairs it.
	if err := s.jobRepo.IncrementApplications(ctx, req.JobID); err != nil {
		logx.Warnf("failed to increment application counter for job %s: %v", req.JobID, err)
	}

	return &application.ApplyResponse{Application: newApp}, nil
}

// ApplyBulk fans one institute action out to many students. Each item is a
// full independent Apply; duplicates and failures are collected, never
// aborting the batch. The caller must treat the result as 0..N succeeded.
func (s *ApplicationService) ApplyBulk(ctx context.Context, req application.BulkApplyRequest) (*application.BulkApplyResponse, error) {
	result := &application.BulkApplyResponse{
		Created:        []application.Application{},
		AlreadyApplied: []application.Application{},
		Failed:         make(map[string]string),
		Total:          len(req.Items),
	}

	for _, item := range req.Items {
		resp, err := s.Apply(ctx, item)
		if err != nil {
			result.Failed[itemKey(item)] = err.Error()
			continue
		}
		if resp.AlreadyApplied {
			result.AlreadyApplied = append(result.AlreadyApplied, *resp.Application)
			continue
		}
		result.Created = append(result.Created, *resp.Application)
	}

	if len(result.Failed) == 0 {
		result.Failed = nil
	}
	return result, nil
}

// ListForApplicant returns all applications of one applicant. The store
// guarantees no order; sorting is the view's concern.
func (s *ApplicationService) ListForApplicant(ctx context.Context, ref application.ApplicantRef) ([]application.Application, error) {
	if !ref.Type.IsValid() {
		return nil, applicant.ErrInvalidApplicantType().WithDetail("type", ref.Type.String())
	}

	apps, err := s.repoFor(ref.Type).ListByApplicant(ctx, ref)
	if err != nil {
		return nil, err
	}

	// Migrated records can reference postings that no longer exist and carry
	// no denormalized title. They degrade to a placeholder; nothing cascades.
	for i := range apps {
		if apps[i].JobTitle == "" {
			apps[i].JobTitle = job.UnknownJobTitle
		}
	}
	return apps, nil
}

// ListJobApplicants returns the institute students applied to one posting
func (s *ApplicationService) ListJobApplicants(ctx context.Context, jobID kernel.JobID, recruiterID kernel.RecruiterID) ([]application.Application, error) {
	return s.instituteApps.ListByJobAndRecruiter(ctx, jobID, recruiterID)
}

// ListAppliedInstitutes groups a recruiter's institute-sourced applications
// by the institute that sent them.
func (s *ApplicationService) ListAppliedInstitutes(ctx context.Context, recruiterID kernel.RecruiterID) ([]application.AppliedInstituteView, error) {
	apps, err := s.instituteApps.ListByRecruiter(ctx, recruiterID)
	if err != nil {
		return nil, err
	}

	byInstitute := make(map[kernel.InstituteID][]application.Application)
	order := make([]kernel.InstituteID, 0)
	for _, app := range apps {
		id := app.Applicant.InstituteID
		if _, seen := byInstitute[id]; !seen {
			order = append(order, id)
		}
		byInstitute[id] = append(byInstitute[id], app)
	}

	views := make([]application.AppliedInstituteView, 0, len(order))
	for _, id := range order {
		views = append(views, application.AppliedInstituteView{
			InstituteID:  id,
			Applications: byInstitute[id],
		})
	}
	return views, nil
}

// ListForInstituteAndRecruiter returns one institute's applications to one recruiter
func (s *ApplicationService) ListForInstituteAndRecruiter(ctx context.Context, instituteID kernel.InstituteID, recruiterID kernel.RecruiterID) ([]application.Application, error) {
	return s.instituteApps.ListByInstituteAndRecruiter(ctx, instituteID, recruiterID)
}

// SearchCandidates lists a recruiter's candidates across both flows, with
// optional free-text, status and job filters. Staff names come from the
// profile scan, student names from the application snapshot.
func (s *ApplicationService) SearchCandidates(ctx context.Context, req application.SearchCandidatesRequest) ([]application.CandidateView, error) {
	views := make([]application.CandidateView, 0)

	profiles, err := s.staffRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range profiles {
		for _, app := range profiles[i].Applications {
			if app.RecruiterID != req.RecruiterID {
				continue
			}
			view := application.CandidateView{Application: app, ApplicantName: profiles[i].Name}
			if matches(&view, req) {
				views = append(views, view)
			}
		}
	}

	instituteApps, err := s.instituteApps.ListByRecruiter(ctx, req.RecruiterID)
	if err != nil {
		return nil, err
	}
	for _, app := range instituteApps {
		view := application.CandidateView{Application: app}
		if app.Snapshot != nil {
			view.ApplicantName = app.Snapshot.Name
		}
		if matches(&view, req) {
			views = append(views, view)
		}
	}

	return views, nil
}

// Forget is the recruiter's reject-and-remove action from the candidate
// search view: the one path that physically deletes an application.
func (s *ApplicationService) Forget(ctx context.Context, ref application.ApplicantRef, id kernel.ApplicationID) error {
	if !ref.Type.IsValid() {
		return applicant.ErrInvalidApplicantType().WithDetail("type", ref.Type.String())
	}
	return s.repoFor(ref.Type).Remove(ctx, ref, id)
}

func (s *ApplicationService) newApplicationID(req application.ApplyRequest) kernel.ApplicationID {
	if req.Applicant.Type == kernel.ApplicantTypeInstitute {
		return kernel.ApplicationID(application.CompositeKey(req.JobID, req.Applicant.StudentID))
	}
	return kernel.NewApplicationID(uuid.NewString())
}

func itemKey(item application.ApplyRequest) string {
	if item.Applicant.Type == kernel.ApplicantTypeInstitute {
		return item.Applicant.StudentID.String()
	}
	return item.Applicant.StaffID.String()
}

func matches(view *application.CandidateView, req application.SearchCandidatesRequest) bool {
	if req.JobID != "" && view.JobID != req.JobID {
		return false
	}
	if req.Status != "" && view.Status != req.Status {
		return false
	}
	if req.Query != "" {
		q := strings.ToLower(req.Query)
		if !strings.Contains(strings.ToLower(view.ApplicantName), q) &&
			!strings.Contains(strings.ToLower(string(view.JobTitle)), q) {
			return false
		}
	}
	return true
}
