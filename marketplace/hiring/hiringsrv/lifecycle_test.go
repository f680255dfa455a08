package hiringsrv

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/staffhive/staffhive/marketplace/applicant"
	"github.com/staffhive/staffhive/marketplace/applicant/applicantinfra"
	"github.com/staffhive/staffhive/marketplace/application"
	"github.com/staffhive/staffhive/marketplace/application/applicationinfra"
	"github.com/staffhive/staffhive/marketplace/hiring"
	"github.com/staffhive/staffhive/marketplace/hiring/hiringinfra"
	"github.com/staffhive/staffhive/marketplace/recruiter"
	"github.com/staffhive/staffhive/marketplace/recruiter/recruiterinfra"
	"github.com/staffhive/staffhive/pkg/kernel"
	"github.com/staffhive/staffhive/pkg/storex/storexmem"
)

// queueFake records enqueued recruiter ids in memory
type queueFake struct {
	enqueued []kernel.RecruiterID
}

func (q *queueFake) EnqueueRecruiter(ctx context.Context, recruiterID kernel.RecruiterID) error {
	q.enqueued = append(q.enqueued, recruiterID)
	return nil
}

func (q *queueFake) DequeueRecruiter(ctx context.Context, timeout time.Duration) (kernel.RecruiterID, error) {
	if len(q.enqueued) == 0 {
		return "", nil
	}
	id := q.enqueued[0]
	q.enqueued = q.enqueued[1:]
	return id, nil
}

type fixture struct {
	service       *LifecycleService
	staffApps     application.Repository
	instituteApps application.InstituteRepository
	archive       hiring.Archive
	recruiterRepo recruiter.Repository
	instituteRepo applicant.InstituteRepository
	queue         *queueFake
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	store := storexmem.NewMemoryStore()

	staffRepo := applicantinfra.NewStoreStaffRepository(store)
	instituteRepo := applicantinfra.NewStoreInstituteRepository(store)
	recruiterRepo := recruiterinfra.NewStoreRecruiterRepository(store)
	archive := hiringinfra.NewStoreHiringRepository(store)
	staffApps := applicationinfra.NewStaffApplicationRepository(staffRepo)
	instituteApps := applicationinfra.NewInstituteApplicationRepository(store)
	queue := &queueFake{}

	if err := recruiterRepo.Put(ctx, &recruiter.Profile{
		ID:          "rec-1",
		Name:        "Nadia Osei",
		CompanyName: "Acme Corp",
	}); err != nil {
		t.Fatalf("seed recruiter: %v", err)
	}

	if err := staffRepo.Put(ctx, &applicant.StaffProfile{
		ID:   "staff-1",
		Name: "Asha Verma",
	}); err != nil {
		t.Fatalf("seed staff: %v", err)
	}

	if err := instituteRepo.Put(ctx, &applicant.InstituteProfile{
		ID:   "inst-1",
		Role: applicant.RoleInstitute,
		Name: "Sunrise Polytechnic",
		Students: []applicant.Student{
			{ID: "stu-1", Name: "Ravi Kumar", Course: "CS", Year: "2026"},
		},
	}); err != nil {
		t.Fatalf("seed institute: %v", err)
	}

	now := time.Now()
	if err := staffApps.Add(ctx, &application.Application{
		ID:          "app-staff-1",
		Applicant:   application.StaffRef("staff-1"),
		RecruiterID: "rec-1",
		JobID:       "job-1",
		JobTitle:    "Backend Engineer",
		Status:      application.ApplicationStatusApplied,
		AppliedAt:   now,
		UpdatedAt:   now,
	}); err != nil {
		t.Fatalf("seed staff application: %v", err)
	}

	if err := instituteApps.Add(ctx, &application.Application{
		ID:          kernel.ApplicationID(application.CompositeKey("job-1", "stu-1")),
		Applicant:   application.StudentRef("inst-1", "stu-1"),
		RecruiterID: "rec-1",
		JobID:       "job-1",
		JobTitle:    "Backend Engineer",
		Status:      application.ApplicationStatusPending,
		AppliedAt:   now,
		UpdatedAt:   now,
		Snapshot: &application.StudentSnapshot{
			StudentID: "stu-1",
			Name:      "Ravi Kumar",
			Course:    "CS",
			Year:      "2026",
		},
	}); err != nil {
		t.Fatalf("seed institute application: %v", err)
	}

	return &fixture{
		service:       NewLifecycleService(staffApps, instituteApps, archive, recruiterRepo, instituteRepo, queue),
		staffApps:     staffApps,
		instituteApps: instituteApps,
		archive:       archive,
		recruiterRepo: recruiterRepo,
		instituteRepo: instituteRepo,
		queue:         queue,
	}
}

func staffDecision(decision application.ApplicationStatus) hiring.DecideRequest {
	return hiring.DecideRequest{
		Applicant:     application.StaffRef("staff-1"),
		ApplicationID: "app-staff-1",
		RecruiterID:   "rec-1",
		Decision:      decision,
	}
}

func studentDecision(decision application.ApplicationStatus) hiring.DecideRequest {
	return hiring.DecideRequest{
		Applicant:     application.StudentRef("inst-1", "stu-1"),
		ApplicationID: kernel.ApplicationID(application.CompositeKey("job-1", "stu-1")),
		RecruiterID:   "rec-1",
		Decision:      decision,
	}
}

func TestDecideHireStaff(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	resp, err := f.service.Decide(ctx, staffDecision(application.ApplicationStatusHired))
	if err != nil {
		t.Fatalf("Decide: %v", err)
	}
	if resp.Application.Status != application.ApplicationStatusHired {
		t.Errorf("response status = %q", resp.Application.Status)
	}
	if resp.Record == nil {
		t.Fatal("no hiring record in response")
	}

	stored, err := f.staffApps.Get(ctx, application.StaffRef("staff-1"), "app-staff-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if stored.Status != application.ApplicationStatusHired {
		t.Errorf("persisted status = %q, want Hired", stored.Status)
	}

	records, err := f.archive.ListByRecruiter(ctx, "rec-1")
	if err != nil {
		t.Fatalf("ListByRecruiter: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("archive records = %d, want 1", len(records))
	}
	if records[0].Status != application.ApplicationStatusHired {
		t.Errorf("archived status = %q", records[0].Status)
	}

	profile, err := f.recruiterRepo.GetByID(ctx, "rec-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if profile.Stats.TotalHires != 1 {
		t.Errorf("hire counter = %d, want 1", profile.Stats.TotalHires)
	}

	if len(f.queue.enqueued) != 1 || f.queue.enqueued[0] != "rec-1" {
		t.Errorf("reconcile queue = %v, want [rec-1]", f.queue.enqueued)
	}
}

func TestDecideRejectDoesNotCountAsHire(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.service.Decide(ctx, staffDecision(application.ApplicationStatusRejected)); err != nil {
		t.Fatalf("Decide: %v", err)
	}

	profile, err := f.recruiterRepo.GetByID(ctx, "rec-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if profile.Stats.TotalHires != 0 {
		t.Errorf("rejection bumped the hire counter: %d", profile.Stats.TotalHires)
	}

	records, _ := f.archive.ListByRecruiter(ctx, "rec-1")
	if len(records) != 1 {
		t.Errorf("rejection not archived: %d records", len(records))
	}
}

func TestDecideHireInstituteSyncsPlacement(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.service.Decide(ctx, studentDecision(application.ApplicationStatusHired)); err != nil {
		t.Fatalf("Decide: %v", err)
	}

	profile, err := f.instituteRepo.GetByID(ctx, "inst-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	student := profile.FindStudent("stu-1")
	if student == nil {
		t.Fatal("student vanished from roster")
	}
	if student.PlacementStatus != applicant.PlacementStatusPlaced {
		t.Errorf("placement status = %q, want Placed", student.PlacementStatus)
	}
	if student.PlacedBy != "rec-1" || student.PlacedJobID != "job-1" {
		t.Errorf("placement fields = (%q, %q)", student.PlacedBy, student.PlacedJobID)
	}
}

func TestDecideTwiceFailsAlreadyDecided(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.service.Decide(ctx, staffDecision(application.ApplicationStatusHired)); err != nil {
		t.Fatalf("first Decide: %v", err)
	}

	_, err := f.service.Decide(ctx, staffDecision(application.ApplicationStatusRejected))
	if !errors.Is(err, application.ErrAlreadyDecided()) {
		t.Fatalf("expected ALREADY_DECIDED, got %v", err)
	}

	records, _ := f.archive.ListByRecruiter(ctx, "rec-1")
	if len(records) != 1 {
		t.Errorf("failed decision appended a record: %d", len(records))
	}

	stored, _ := f.staffApps.Get(ctx, application.StaffRef("staff-1"), "app-staff-1")
	if stored.Status != application.ApplicationStatusHired {
		t.Errorf("failed decision rewrote status to %q", stored.Status)
	}
}

func TestDecideMissingApplicationHasNoSideEffects(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	req := staffDecision(application.ApplicationStatusHired)
	req.ApplicationID = "app-404"

	_, err := f.service.Decide(ctx, req)
	if !errors.Is(err, application.ErrApplicationNotFound()) {
		t.Fatalf("expected APPLICATION:NOT_FOUND, got %v", err)
	}

	records, _ := f.archive.ListByRecruiter(ctx, "rec-1")
	if len(records) != 0 {
		t.Errorf("failed decision left %d archive records", len(records))
	}
	if len(f.queue.enqueued) != 0 {
		t.Errorf("failed decision enqueued a reconcile: %v", f.queue.enqueued)
	}
}

func TestDecideNonTerminalDecisionFails(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.Decide(context.Background(), staffDecision(application.ApplicationStatusPending))
	if !errors.Is(err, hiring.ErrInvalidDecision()) {
		t.Fatalf("expected HIRING:INVALID_DECISION, got %v", err)
	}
}

func TestAttachRating(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	resp, err := f.service.Decide(ctx, staffDecision(application.ApplicationStatusHired))
	if err != nil {
		t.Fatalf("Decide: %v", err)
	}

	err = f.service.AttachRating(ctx, hiring.AttachRatingRequest{
		RecordID: resp.Record.ID,
		Rating:   5,
		Feedback: "Strong hire",
	})
	if err != nil {
		t.Fatalf("AttachRating: %v", err)
	}

	record, err := f.archive.GetByID(ctx, resp.Record.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if record.Rating == nil || *record.Rating != 5 {
		t.Errorf("rating = %v, want 5", record.Rating)
	}
	if record.Feedback != "Strong hire" {
		t.Errorf("feedback = %q", record.Feedback)
	}
	if record.Status != application.ApplicationStatusHired {
		t.Errorf("rating touched the decision status: %q", record.Status)
	}
}

func TestAttachRatingUnknownRecord(t *testing.T) {
	f := newFixture(t)

	err := f.service.AttachRating(context.Background(), hiring.AttachRatingRequest{
		RecordID: "rec-404",
		Rating:   3,
	})
	if !errors.Is(err, hiring.ErrRecordNotFound()) {
		t.Fatalf("expected HIRING:RECORD_NOT_FOUND, got %v", err)
	}
}
