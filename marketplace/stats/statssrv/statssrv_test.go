package statssrv

import (
	"context"
	"testing"
	"time"

	"github.com/staffhive/staffhive/marketplace/applicant"
	"github.com/staffhive/staffhive/marketplace/applicant/applicantinfra"
	"github.com/staffhive/staffhive/marketplace/application"
	"github.com/staffhive/staffhive/marketplace/application/applicationinfra"
	"github.com/staffhive/staffhive/marketplace/job"
	"github.com/staffhive/staffhive/marketplace/job/jobinfra"
	"github.com/staffhive/staffhive/marketplace/recruiter"
	"github.com/staffhive/staffhive/marketplace/recruiter/recruiterinfra"
	"github.com/staffhive/staffhive/pkg/kernel"
	"github.com/staffhive/staffhive/pkg/storex/storexmem"
)

type fixture struct {
	service       *StatsService
	recruiterRepo recruiter.Repository
}

func instituteApp(jobID, studentID string, status application.ApplicationStatus) *application.Application {
	now := time.Now()
	return &application.Application{
		ID:          kernel.ApplicationID(application.CompositeKey(kernel.JobID(jobID), kernel.StudentID(studentID))),
		Applicant:   application.StudentRef("inst-1", kernel.StudentID(studentID)),
		RecruiterID: "rec-1",
		JobID:       kernel.JobID(jobID),
		Status:      status,
		AppliedAt:   now,
		UpdatedAt:   now,
	}
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	store := storexmem.NewMemoryStore()

	staffRepo := applicantinfra.NewStoreStaffRepository(store)
	instituteRepo := applicantinfra.NewStoreInstituteRepository(store)
	jobRepo := jobinfra.NewStoreJobRepository(store)
	recruiterRepo := recruiterinfra.NewStoreRecruiterRepository(store)
	instituteApps := applicationinfra.NewInstituteApplicationRepository(store)

	if err := recruiterRepo.Put(ctx, &recruiter.Profile{ID: "rec-1", Name: "Nadia Osei"}); err != nil {
		t.Fatalf("seed recruiter: %v", err)
	}

	// One staff member with applications to two recruiters. Only the rec-1
	// pair may count toward rec-1's stats.
	if err := staffRepo.Put(ctx, &applicant.StaffProfile{
		ID:   "staff-1",
		Name: "Asha Verma",
		Applications: []application.Application{
			{ID: "sa-1", Applicant: application.StaffRef("staff-1"), RecruiterID: "rec-1", JobID: "job-1", Status: application.ApplicationStatusApplied},
			{ID: "sa-2", Applicant: application.StaffRef("staff-1"), RecruiterID: "rec-1", JobID: "job-2", Status: application.ApplicationStatusHired},
			{ID: "sa-3", Applicant: application.StaffRef("staff-1"), RecruiterID: "rec-2", JobID: "job-1", Status: application.ApplicationStatusRejected},
		},
	}); err != nil {
		t.Fatalf("seed staff: %v", err)
	}

	if err := instituteRepo.Put(ctx, &applicant.InstituteProfile{
		ID:   "inst-1",
		Role: applicant.RoleInstitute,
		Name: "Sunrise Polytechnic",
		Students: []applicant.Student{
			{ID: "stu-1", Name: "Ravi Kumar"},
			{ID: "stu-2", Name: "Meena Iyer"},
			{ID: "stu-3", Name: "Vikram Singh"},
			{ID: "stu-4", Name: "Priya Nair"},
		},
	}); err != nil {
		t.Fatalf("seed institute: %v", err)
	}

	postings := []*job.JobPosting{
		{ID: "job-1", RecruiterID: "rec-1", Title: "Backend Engineer", Salary: "3-4 LPA", Status: job.JobStatusActive},
		{ID: "job-2", RecruiterID: "rec-1", Title: "Data Analyst", Salary: "6 LPA", Status: job.JobStatusActive},
		{ID: "job-3", RecruiterID: "rec-1", Title: "Field Agent", Salary: "Not disclosed", Status: job.JobStatusActive},
	}
	for _, p := range postings {
		if err := jobRepo.Put(ctx, p); err != nil {
			t.Fatalf("seed posting %s: %v", p.ID, err)
		}
	}

	// stu-1 is hired twice; one hire points at job-404, which has no posting
	apps := []*application.Application{
		instituteApp("job-1", "stu-1", application.ApplicationStatusHired),
		instituteApp("job-2", "stu-1", application.ApplicationStatusHired),
		instituteApp("job-3", "stu-2", application.ApplicationStatusHired),
		instituteApp("job-404", "stu-2", application.ApplicationStatusHired),
		instituteApp("job-1", "stu-3", application.ApplicationStatusPending),
	}
	for _, app := range apps {
		if err := instituteApps.Add(ctx, app); err != nil {
			t.Fatalf("seed application %s: %v", app.ID, err)
		}
	}

	return &fixture{
		service:       NewStatsService(staffRepo, instituteRepo, instituteApps, jobRepo, recruiterRepo),
		recruiterRepo: recruiterRepo,
	}
}

func TestRecruiterStatsCountsBothFlows(t *testing.T) {
	f := newFixture(t)

	view, err := f.service.RecruiterStats(context.Background(), "rec-1")
	if err != nil {
		t.Fatalf("RecruiterStats: %v", err)
	}

	if view.TotalApplications != 7 {
		t.Errorf("TotalApplications = %d, want 7", view.TotalApplications)
	}
	if view.Hired != 5 {
		t.Errorf("Hired = %d, want 5", view.Hired)
	}
	if view.Rejected != 0 {
		t.Errorf("Rejected = %d, want 0", view.Rejected)
	}
	if view.Pending != 2 {
		t.Errorf("Pending = %d, want 2", view.Pending)
	}
}

func TestRecruiterStatsScopedToRecruiter(t *testing.T) {
	f := newFixture(t)

	view, err := f.service.RecruiterStats(context.Background(), "rec-2")
	if err != nil {
		t.Fatalf("RecruiterStats: %v", err)
	}

	if view.TotalApplications != 1 || view.Rejected != 1 {
		t.Errorf("rec-2 stats = %+v, want 1 total / 1 rejected", view)
	}
}

func TestPlacementRateDedupsStudents(t *testing.T) {
	f := newFixture(t)

	view, err := f.service.PlacementRate(context.Background(), "inst-1")
	if err != nil {
		t.Fatalf("PlacementRate: %v", err)
	}

	if view.TotalStudents != 4 {
		t.Errorf("TotalStudents = %d, want 4", view.TotalStudents)
	}
	// stu-1 hired twice counts once; placed = {stu-1, stu-2}
	if view.PlacedStudents != 2 {
		t.Errorf("PlacedStudents = %d, want 2", view.PlacedStudents)
	}
	if view.Rate != 0.5 {
		t.Errorf("Rate = %v, want 0.5", view.Rate)
	}
}

func TestAveragePackageSkipsUnparseable(t *testing.T) {
	f := newFixture(t)

	view, err := f.service.AveragePackage(context.Background(), "inst-1")
	if err != nil {
		t.Fatalf("AveragePackage: %v", err)
	}

	if view.Hires != 4 {
		t.Errorf("Hires = %d, want 4", view.Hires)
	}
	// "3-4 LPA" -> 4 and "6 LPA" -> 6 parse; "Not disclosed" and the
	// deleted job-404 are skipped, not counted as zero.
	if view.Parsed != 2 {
		t.Errorf("Parsed = %d, want 2", view.Parsed)
	}
	if view.AverageLPA != 5.0 {
		t.Errorf("AverageLPA = %v, want 5.0", view.AverageLPA)
	}
}

func TestAveragePackageEmptyIsZero(t *testing.T) {
	store := storexmem.NewMemoryStore()
	staffRepo := applicantinfra.NewStoreStaffRepository(store)
	instituteRepo := applicantinfra.NewStoreInstituteRepository(store)
	jobRepo := jobinfra.NewStoreJobRepository(store)
	recruiterRepo := recruiterinfra.NewStoreRecruiterRepository(store)
	instituteApps := applicationinfra.NewInstituteApplicationRepository(store)
	service := NewStatsService(staffRepo, instituteRepo, instituteApps, jobRepo, recruiterRepo)

	view, err := service.AveragePackage(context.Background(), "inst-1")
	if err != nil {
		t.Fatalf("AveragePackage: %v", err)
	}
	if view.AverageLPA != 0 || view.Hires != 0 || view.Parsed != 0 {
		t.Errorf("empty institute view = %+v, want all zero", view)
	}
}

func TestReconcileRecruiterRewritesCounters(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// Materialized counters start stale
	if err := f.recruiterRepo.SetStats(ctx, "rec-1", recruiter.Stats{TotalApplications: 99, TotalHires: 99}); err != nil {
		t.Fatalf("SetStats: %v", err)
	}

	if err := f.service.ReconcileRecruiter(ctx, "rec-1"); err != nil {
		t.Fatalf("ReconcileRecruiter: %v", err)
	}

	profile, err := f.recruiterRepo.GetByID(ctx, "rec-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if profile.Stats.TotalApplications != 7 {
		t.Errorf("reconciled TotalApplications = %d, want 7", profile.Stats.TotalApplications)
	}
	if profile.Stats.TotalHires != 5 {
		t.Errorf("reconciled TotalHires = %d, want 5", profile.Stats.TotalHires)
	}
}
