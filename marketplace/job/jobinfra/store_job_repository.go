package jobinfra

import (
	"context"
	"errors"
	"time"

	"github.com/staffhive/staffhive/marketplace/job"
	"github.com/staffhive/staffhive/pkg/kernel"
	"github.com/staffhive/staffhive/pkg/storex"
)

// TableJobPostings is the record store table holding job postings
const TableJobPostings = "job_postings"

// StoreJobRepository implements job.Repository against the record store
type StoreJobRepository struct {
	store storex.RecordStore
}

func NewStoreJobRepository(store storex.RecordStore) *StoreJobRepository {
	return &StoreJobRepository{store: store}
}

// ============================================================================
// Store Models
// ============================================================================

type jobModel struct {
	ID           string    `json:"id" dynamodbav:"id"`
	RecruiterID  string    `json:"recruiter_id" dynamodbav:"recruiter_id"`
	Title        string    `json:"title" dynamodbav:"title"`
	CompanyName  string    `json:"company_name" dynamodbav:"company_name"`
	Location     string    `json:"location" dynamodbav:"location"`
	Salary       string    `json:"salary" dynamodbav:"salary"`
	Experience   string    `json:"experience" dynamodbav:"experience"`
	Skills       []string  `json:"skills" dynamodbav:"skills"`
	Status       string    `json:"status" dynamodbav:"status"`
	Applications int       `json:"applications" dynamodbav:"applications"`
	PostedAt     time.Time `json:"posted_at" dynamodbav:"posted_at"`
}

func (m *jobModel) toEntity() *job.JobPosting {
	skills := make([]kernel.Skill, 0, len(m.Skills))
	for _, s := range m.Skills {
		skills = append(skills, kernel.Skill(s))
	}

	return &job.JobPosting{
		ID:           kernel.JobID(m.ID),
		RecruiterID:  kernel.RecruiterID(m.RecruiterID),
		Title:        kernel.JobTitle(m.Title),
		CompanyName:  kernel.CompanyName(m.CompanyName),
		Location:     kernel.LocationText(m.Location),
		Salary:       kernel.SalaryText(m.Salary),
		Experience:   kernel.ExperienceText(m.Experience),
		Skills:       skills,
		Status:       job.JobStatus(m.Status),
		Applications: m.Applications,
		PostedAt:     m.PostedAt,
	}
}

func fromEntity(posting *job.JobPosting) *jobModel {
	skills := make([]string, 0, len(posting.Skills))
	for _, s := range posting.Skills {
		skills = append(skills, string(s))
	}

	return &jobModel{
		ID:           string(posting.ID),
		RecruiterID:  string(posting.RecruiterID),
		Title:        string(posting.Title),
		CompanyName:  string(posting.CompanyName),
		Location:     string(posting.Location),
		Salary:       string(posting.Salary),
		Experience:   string(posting.Experience),
		Skills:       skills,
		Status:       string(posting.Status),
		Applications: posting.Applications,
		PostedAt:     posting.PostedAt,
	}
}

// ============================================================================
// Repository Implementation
// ============================================================================

func (r *StoreJobRepository) GetByID(ctx context.Context, id kernel.JobID) (*job.JobPosting, error) {
	var model jobModel
	if err := r.store.GetItem(ctx, TableJobPostings, id.String(), &model); err != nil {
		if errors.Is(err, storex.ErrItemNotFound) {
			return nil, job.ErrJobNotFound().WithDetail("job_id", id.String())
		}
		return nil, err
	}
	return model.toEntity(), nil
}

func (r *StoreJobRepository) Put(ctx context.Context, posting *job.JobPosting) error {
	return r.store.PutItem(ctx, TableJobPostings, fromEntity(posting))
}

func (r *StoreJobRepository) Exists(ctx context.Context, id kernel.JobID) (bool, error) {
	var model jobModel
	err := r.store.GetItem(ctx, TableJobPostings, id.String(), &model)
	if errors.Is(err, storex.ErrItemNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *StoreJobRepository) ListByRecruiter(ctx context.Context, recruiterID kernel.RecruiterID) ([]job.JobPosting, error) {
	var models []jobModel
	if err := r.store.ScanItems(ctx, TableJobPostings, &models); err != nil {
		return nil, err
	}

	postings := make([]job.JobPosting, 0)
	for i := range models {
		if models[i].RecruiterID == recruiterID.String() {
			postings = append(postings, *models[i].toEntity())
		}
	}
	return postings, nil
}

func (r *StoreJobRepository) IncrementApplications(ctx context.Context, id kernel.JobID) error {
	var model jobModel
	if err := r.store.GetItem(ctx, TableJobPostings, id.String(), &model); err != nil {
		if errors.Is(err, storex.ErrItemNotFound) {
			return job.ErrJobNotFound().WithDetail("job_id", id.String())
		}
		return err
	}

	return r.store.UpdateItem(ctx, TableJobPostings, id.String(), map[string]any{
		"applications": model.Applications + 1,
	})
}
