package statssrv

import (
	"context"
	"math"

	"github.com/staffhive/staffhive/marketplace/applicant"
	"github.com/staffhive/staffhive/marketplace/application"
	"github.com/staffhive/staffhive/marketplace/job"
	"github.com/staffhive/staffhive/marketplace/recruiter"
	"github.com/staffhive/staffhive/marketplace/stats"
	"github.com/staffhive/staffhive/pkg/kernel"
)

// StatsService derives dashboard aggregates by scanning and reducing the
// application populations. Every read recomputes from scratch; nothing here
// mutates state except the explicit reconcile path, which rewrites the
// materialized recruiter counters from such a recompute.
type StatsService struct {
	staffRepo     applicant.StaffRepository
	instituteRepo applicant.InstituteRepository
	instituteApps application.InstituteRepository
	jobRepo       job.Repository
	recruiterRepo recruiter.Repository
}

func NewStatsService(
	staffRepo applicant.StaffRepository,
	instituteRepo applicant.InstituteRepository,
	instituteApps application.InstituteRepository,
	jobRepo job.Repository,
	recruiterRepo recruiter.Repository,
) *StatsService {
	return &StatsService{
		staffRepo:     staffRepo,
		instituteRepo: instituteRepo,
		instituteApps: instituteApps,
		jobRepo:       jobRepo,
		recruiterRepo: recruiterRepo,
	}
}

// RecruiterStats counts a recruiter's applications across both flows: the
// staff profiles' embedded lists (full profile scan, no other way in) plus
// the institute application table.
func (s *StatsService) RecruiterStats(ctx context.Context, recruiterID kernel.RecruiterID) (*stats.RecruiterStatsView, error) {
	view := &stats.RecruiterStatsView{RecruiterID: recruiterID}

	profiles, err := s.staffRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range profiles {
		for _, app := range profiles[i].Applications {
			if app.RecruiterID == recruiterID {
				count(view, &app)
			}
		}
	}

	instituteApps, err := s.instituteApps.ListByRecruiter(ctx, recruiterID)
	if err != nil {
		return nil, err
	}
	for i := range instituteApps {
		count(view, &instituteApps[i])
	}

	return view, nil
}

// PlacementRate computes placedStudents / totalStudents for an institute,
// where placed means at least one Hired institute-flow application. A
// student hired twice counts once.
func (s *StatsService) PlacementRate(ctx context.Context, instituteID kernel.InstituteID) (*stats.PlacementRateView, error) {
	profile, err := s.instituteRepo.GetByID(ctx, instituteID)
	if err != nil {
		return nil, err
	}

	apps, err := s.instituteApps.ListByInstitute(ctx, instituteID)
	if err != nil {
		return nil, err
	}

	placed := make(map[kernel.StudentID]struct{})
	for _, app := range apps {
		if app.Status == application.ApplicationStatusHired {
			placed[app.Applicant.StudentID] = struct{}{}
		}
	}

	view := &stats.PlacementRateView{
		InstituteID:    instituteID,
		TotalStudents:  len(profile.Students),
		PlacedStudents: len(placed),
	}
	if view.TotalStudents > 0 {
		view.Rate = float64(view.PlacedStudents) / float64(view.TotalStudents)
	}
	return view, nil
}

// AveragePackage averages the parseable salary figures over an institute's
// hires. Deleted jobs and unparseable salary text are skipped, not counted
// as zero; an empty result is 0, never an error.
func (s *StatsService) AveragePackage(ctx context.Context, instituteID kernel.InstituteID) (*stats.AveragePackageView, error) {
	apps, err := s.instituteApps.ListByInstitute(ctx, instituteID)
	if err != nil {
		return nil, err
	}

	view := &stats.AveragePackageView{InstituteID: instituteID}
	postings := make(map[kernel.JobID]*job.JobPosting)
	sum := 0.0

	for _, app := range apps {
		if app.Status != application.ApplicationStatusHired {
			continue
		}
		view.Hires++

		posting, seen := postings[app.JobID]
		if !seen {
			posting, err = s.jobRepo.GetByID(ctx, app.JobID)
			if err != nil {
				posting = nil
			}
			postings[app.JobID] = posting
		}
		if posting == nil {
			continue
		}

		if value, ok := stats.ParseSalaryLPA(posting.Salary); ok {
			sum += value
			view.Parsed++
		}
	}

	if view.Parsed > 0 {
		view.AverageLPA = math.Round(sum/float64(view.Parsed)*10) / 10
	}
	return view, nil
}

// ReconcileRecruiter rewrites the recruiter's materialized counters from a
// full recompute. This path is the authority when incremental bumps drift.
func (s *StatsService) ReconcileRecruiter(ctx context.Context, recruiterID kernel.RecruiterID) error {
	view, err := s.RecruiterStats(ctx, recruiterID)
	if err != nil {
		return err
	}

	return s.recruiterRepo.SetStats(ctx, recruiterID, recruiter.Stats{
		TotalApplications: view.TotalApplications,
		TotalHires:        view.Hired,
	})
}

func count(view *stats.RecruiterStatsView, app *application.Application) {
	view.TotalApplications++
	switch {
	case app.Status == application.ApplicationStatusHired:
		view.Hired++
	case app.Status == application.ApplicationStatusRejected:
		view.Rejected++
	case app.Status.IsInitial():
		view.Pending++
	}
}
