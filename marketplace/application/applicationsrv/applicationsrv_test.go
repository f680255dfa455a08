package applicationsrv

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/staffhive/staffhive/marketplace/applicant"
	"github.com/staffhive/staffhive/marketplace/applicant/applicantinfra"
	"github.com/staffhive/staffhive/marketplace/applicant/applicantsrv"
	"github.com/staffhive/staffhive/marketplace/application"
	"github.com/staffhive/staffhive/marketplace/application/applicationinfra"
	"github.com/staffhive/staffhive/marketplace/job"
	"github.com/staffhive/staffhive/marketplace/job/jobinfra"
	"github.com/staffhive/staffhive/pkg/kernel"
	"github.com/staffhive/staffhive/pkg/storex/storexmem"
)

type fixture struct {
	service   *ApplicationService
	staffRepo applicant.StaffRepository
	jobRepo   job.Repository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	store := storexmem.NewMemoryStore()

	staffRepo := applicantinfra.NewStoreStaffRepository(store)
	instituteRepo := applicantinfra.NewStoreInstituteRepository(store)
	jobRepo := jobinfra.NewStoreJobRepository(store)
	staffApps := applicationinfra.NewStaffApplicationRepository(staffRepo)
	instituteApps := applicationinfra.NewInstituteApplicationRepository(store)
	resolver := applicantsrv.NewResolver(staffRepo, instituteRepo)

	if err := staffRepo.Put(ctx, &applicant.StaffProfile{
		ID:    "staff-1",
		Name:  "Asha Verma",
		Email: "asha@example.com",
	}); err != nil {
		t.Fatalf("seed staff profile: %v", err)
	}

	if err := instituteRepo.Put(ctx, &applicant.InstituteProfile{
		ID:   "inst-1",
		Role: applicant.RoleInstitute,
		Name: "Sunrise Polytechnic",
		Students: []applicant.Student{
			{ID: "stu-1", Name: "Ravi Kumar", Email: "ravi@example.com", Course: "CS", Year: "2026"},
			{ID: "stu-2", Name: "Meena Iyer", Email: "meena@example.com", Course: "EE", Year: "2026"},
		},
	}); err != nil {
		t.Fatalf("seed institute profile: %v", err)
	}

	postings := []*job.JobPosting{
		{
			ID:          "job-1",
			RecruiterID: "rec-1",
			Title:       "Backend Engineer",
			CompanyName: "Acme Corp",
			Salary:      "3-4 LPA",
			Status:      job.JobStatusActive,
			PostedAt:    time.Now(),
		},
		{
			ID:          "job-2",
			RecruiterID: "rec-1",
			Title:       "Night Shift Supervisor",
			CompanyName: "Acme Corp",
			Status:      job.JobStatusClosed,
			PostedAt:    time.Now(),
		},
	}
	for _, p := range postings {
		if err := jobRepo.Put(ctx, p); err != nil {
			t.Fatalf("seed posting %s: %v", p.ID, err)
		}
	}

	return &fixture{
		service:   NewApplicationService(resolver, staffApps, instituteApps, staffRepo, jobRepo),
		staffRepo: staffRepo,
		jobRepo:   jobRepo,
	}
}

func staffApply(recruiterID, jobID string) application.ApplyRequest {
	return application.ApplyRequest{
		Applicant:   application.StaffRef("staff-1"),
		RecruiterID: kernel.RecruiterID(recruiterID),
		JobID:       kernel.JobID(jobID),
	}
}

func studentApply(studentID, jobID string) application.ApplyRequest {
	return application.ApplyRequest{
		Applicant:   application.StudentRef("inst-1", kernel.StudentID(studentID)),
		RecruiterID: "rec-1",
		JobID:       kernel.JobID(jobID),
	}
}

func TestApplyStaffCreatesApplication(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	resp, err := f.service.Apply(ctx, staffApply("rec-1", "job-1"))
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if resp.AlreadyApplied {
		t.Error("fresh apply flagged AlreadyApplied")
	}
	if resp.Application.Status != application.ApplicationStatusApplied {
		t.Errorf("status = %q, want %q", resp.Application.Status, application.ApplicationStatusApplied)
	}
	if resp.Application.JobTitle != "Backend Engineer" {
		t.Errorf("job title not filled from posting: %q", resp.Application.JobTitle)
	}

	profile, err := f.staffRepo.GetByID(ctx, "staff-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if len(profile.Applications) != 1 {
		t.Fatalf("embedded applications = %d, want 1", len(profile.Applications))
	}

	posting, err := f.jobRepo.GetByID(ctx, "job-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if posting.Applications != 1 {
		t.Errorf("posting counter = %d, want 1", posting.Applications)
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.service.Apply(ctx, staffApply("rec-1", "job-1"))
	if err != nil {
		t.Fatalf("first Apply: %v", err)
	}

	second, err := f.service.Apply(ctx, staffApply("rec-1", "job-1"))
	if err != nil {
		t.Fatalf("second Apply: %v", err)
	}
	if !second.AlreadyApplied {
		t.Error("duplicate apply not flagged AlreadyApplied")
	}
	if second.Application.ID != first.Application.ID {
		t.Errorf("duplicate apply returned a different application: %s vs %s",
			second.Application.ID, first.Application.ID)
	}

	profile, err := f.staffRepo.GetByID(ctx, "staff-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if len(profile.Applications) != 1 {
		t.Fatalf("duplicate apply created a second application: %d", len(profile.Applications))
	}

	posting, _ := f.jobRepo.GetByID(ctx, "job-1")
	if posting.Applications != 1 {
		t.Errorf("duplicate apply bumped the counter: %d", posting.Applications)
	}
}

func TestApplyClosedJobFails(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.Apply(context.Background(), staffApply("rec-1", "job-2"))
	if !errors.Is(err, job.ErrJobClosed()) {
		t.Fatalf("expected JOB:CLOSED, got %v", err)
	}
}

func TestApplyUnknownJobFails(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.Apply(context.Background(), staffApply("rec-1", "job-404"))
	if !errors.Is(err, job.ErrJobNotFound()) {
		t.Fatalf("expected JOB:NOT_FOUND, got %v", err)
	}
}

func TestApplyUnknownStaffFails(t *testing.T) {
	f := newFixture(t)

	req := application.ApplyRequest{
		Applicant:   application.StaffRef("staff-404"),
		RecruiterID: "rec-1",
		JobID:       "job-1",
	}
	_, err := f.service.Apply(context.Background(), req)
	if !errors.Is(err, applicant.ErrStaffNotFound()) {
		t.Fatalf("expected APPLICANT:STAFF_NOT_FOUND, got %v", err)
	}
}

func TestApplyInstituteStudent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	resp, err := f.service.Apply(ctx, studentApply("stu-1", "job-1"))
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	wantID := kernel.ApplicationID(application.CompositeKey("job-1", "stu-1"))
	if resp.Application.ID != wantID {
		t.Errorf("application id = %q, want composite key %q", resp.Application.ID, wantID)
	}
	if resp.Application.Status != application.ApplicationStatusPending {
		t.Errorf("status = %q, want %q", resp.Application.Status, application.ApplicationStatusPending)
	}
	if resp.Application.Snapshot == nil {
		t.Fatal("institute application has no student snapshot")
	}
	if resp.Application.Snapshot.Name != "Ravi Kumar" {
		t.Errorf("snapshot name = %q", resp.Application.Snapshot.Name)
	}
}

func TestApplyBulkPartialSuccess(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.service.Apply(ctx, studentApply("stu-1", "job-1")); err != nil {
		t.Fatalf("pre-apply: %v", err)
	}

	resp, err := f.service.ApplyBulk(ctx, application.BulkApplyRequest{
		Items: []application.ApplyRequest{
			studentApply("stu-1", "job-1"), // duplicate
			studentApply("stu-2", "job-1"), // fresh
			studentApply("stu-404", "job-1"), // not on roster
		},
	})
	if err != nil {
		t.Fatalf("ApplyBulk: %v", err)
	}

	if resp.Total != 3 {
		t.Errorf("Total = %d, want 3", resp.Total)
	}
	if len(resp.Created) != 1 {
		t.Errorf("Created = %d, want 1", len(resp.Created))
	}
	if len(resp.AlreadyApplied) != 1 {
		t.Errorf("AlreadyApplied = %d, want 1", len(resp.AlreadyApplied))
	}
	if len(resp.Failed) != 1 {
		t.Errorf("Failed = %d, want 1", len(resp.Failed))
	}
	if _, ok := resp.Failed["stu-404"]; !ok {
		t.Errorf("Failed missing entry for stu-404: %v", resp.Failed)
	}
}

func TestListAppliedInstitutesGroups(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for _, studentID := range []string{"stu-1", "stu-2"} {
		if _, err := f.service.Apply(ctx, studentApply(studentID, "job-1")); err != nil {
			t.Fatalf("Apply %s: %v", studentID, err)
		}
	}

	views, err := f.service.ListAppliedInstitutes(ctx, "rec-1")
	if err != nil {
		t.Fatalf("ListAppliedInstitutes: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("institutes = %d, want 1", len(views))
	}
	if views[0].InstituteID != "inst-1" {
		t.Errorf("institute id = %q", views[0].InstituteID)
	}
	if len(views[0].Applications) != 2 {
		t.Errorf("grouped applications = %d, want 2", len(views[0].Applications))
	}
}

func TestSearchCandidatesFilters(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.service.Apply(ctx, staffApply("rec-1", "job-1")); err != nil {
		t.Fatalf("staff apply: %v", err)
	}
	if _, err := f.service.Apply(ctx, studentApply("stu-1", "job-1")); err != nil {
		t.Fatalf("student apply: %v", err)
	}

	all, err := f.service.SearchCandidates(ctx, application.SearchCandidatesRequest{RecruiterID: "rec-1"})
	if err != nil {
		t.Fatalf("SearchCandidates: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("unfiltered candidates = %d, want 2", len(all))
	}

	byName, err := f.service.SearchCandidates(ctx, application.SearchCandidatesRequest{
		RecruiterID: "rec-1",
		Query:       "ravi",
	})
	if err != nil {
		t.Fatalf("SearchCandidates: %v", err)
	}
	if len(byName) != 1 || byName[0].ApplicantName != "Ravi Kumar" {
		t.Errorf("name query matched %v", byName)
	}

	byStatus, err := f.service.SearchCandidates(ctx, application.SearchCandidatesRequest{
		RecruiterID: "rec-1",
		Status:      application.ApplicationStatusApplied,
	})
	if err != nil {
		t.Fatalf("SearchCandidates: %v", err)
	}
	if len(byStatus) != 1 || byStatus[0].ApplicantName != "Asha Verma" {
		t.Errorf("status filter matched %v", byStatus)
	}

	otherRecruiter, err := f.service.SearchCandidates(ctx, application.SearchCandidatesRequest{RecruiterID: "rec-2"})
	if err != nil {
		t.Fatalf("SearchCandidates: %v", err)
	}
	if len(otherRecruiter) != 0 {
		t.Errorf("candidates leaked across recruiters: %v", otherRecruiter)
	}
}

func TestListForApplicantFillsMissingTitle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// A migrated record whose posting is gone and whose title was never
	// denormalized
	profile, err := f.staffRepo.GetByID(ctx, "staff-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	profile.Applications = append(profile.Applications, application.Application{
		ID:          "app-legacy",
		Applicant:   application.StaffRef("staff-1"),
		RecruiterID: "rec-9",
		JobID:       "job-deleted",
		Status:      application.ApplicationStatusApplied,
	})
	if err := f.staffRepo.Put(ctx, profile); err != nil {
		t.Fatalf("Put: %v", err)
	}

	apps, err := f.service.ListForApplicant(ctx, application.StaffRef("staff-1"))
	if err != nil {
		t.Fatalf("ListForApplicant: %v", err)
	}
	if len(apps) != 1 {
		t.Fatalf("applications = %d, want 1", len(apps))
	}
	if apps[0].JobTitle != job.UnknownJobTitle {
		t.Errorf("orphan title = %q, want %q", apps[0].JobTitle, job.UnknownJobTitle)
	}
}

func TestForgetRemovesApplication(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	resp, err := f.service.Apply(ctx, staffApply("rec-1", "job-1"))
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	ref := application.StaffRef("staff-1")
	if err := f.service.Forget(ctx, ref, resp.Application.ID); err != nil {
		t.Fatalf("Forget: %v", err)
	}

	apps, err := f.service.ListForApplicant(ctx, ref)
	if err != nil {
		t.Fatalf("ListForApplicant: %v", err)
	}
	if len(apps) != 0 {
		t.Errorf("application still present after Forget: %v", apps)
	}
}
