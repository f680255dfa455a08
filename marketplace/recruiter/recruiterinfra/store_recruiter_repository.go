package recruiterinfra

import (
	"context"
	"errors"

	"github.com/staffhive/staffhive/marketplace/recruiter"
	"github.com/staffhive/staffhive/pkg/kernel"
	"github.com/staffhive/staffhive/pkg/storex"
)

// TableRecruiterProfiles is the record store table holding recruiter profiles
const TableRecruiterProfiles = "recruiter_profiles"

// StoreRecruiterRepository implements recruiter.Repository against the record store
type StoreRecruiterRepository struct {
	store storex.RecordStore
}

func NewStoreRecruiterRepository(store storex.RecordStore) *StoreRecruiterRepository {
	return &StoreRecruiterRepository{store: store}
}

type recruiterModel struct {
	ID          string `json:"id" dynamodbav:"id"`
	Name        string `json:"name" dynamodbav:"name"`
	CompanyName string `json:"company_name" dynamodbav:"company_name"`
	Email       string `json:"email" dynamodbav:"email"`
	Stats       struct {
		TotalApplications int `json:"total_applications" dynamodbav:"total_applications"`
		TotalHires        int `json:"total_hires" dynamodbav:"total_hires"`
	} `json:"stats" dynamodbav:"stats"`
}

func (m *recruiterModel) toEntity() *recruiter.Profile {
	return &recruiter.Profile{
		ID:          kernel.RecruiterID(m.ID),
		Name:        m.Name,
		CompanyName: kernel.CompanyName(m.CompanyName),
		Email:       m.Email,
		Stats: recruiter.Stats{
			TotalApplications: m.Stats.TotalApplications,
			TotalHires:        m.Stats.TotalHires,
		},
	}
}

func fromEntity(profile *recruiter.Profile) *recruiterModel {
	model := &recruiterModel{
		ID:          string(profile.ID),
		Name:        profile.Name,
		CompanyName: string(profile.CompanyName),
		Email:       profile.Email,
	}
	model.Stats.TotalApplications = profile.Stats.TotalApplications
	model.Stats.TotalHires = profile.Stats.TotalHires
	return model
}

func (r *StoreRecruiterRepository) GetByID(ctx context.Context, id kernel.RecruiterID) (*recruiter.Profile, error) {
	var model recruiterModel
	if err := r.store.GetItem(ctx, TableRecruiterProfiles, id.String(), &model); err != nil {
		if errors.Is(err, storex.ErrItemNotFound) {
			return nil, recruiter.ErrRecruiterNotFound().WithDetail("recruiter_id", id.String())
		}
		return nil, err
	}
	return model.toEntity(), nil
}

func (r *StoreRecruiterRepository) Put(ctx context.Context, profile *recruiter.Profile) error {
	return r.store.PutItem(ctx, TableRecruiterProfiles, fromEntity(profile))
}

func (r *StoreRecruiterRepository) IncrementHires(ctx context.Context, id kernel.RecruiterID) error {
	profile, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}

	return r.store.UpdateItem(ctx, TableRecruiterProfiles, id.String(), map[string]any{
		"stats": map[string]any{
			"total_applications": profile.Stats.TotalApplications,
			"total_hires":        profile.Stats.TotalHires + 1,
		},
	})
}

func (r *StoreRecruiterRepository) SetStats(ctx context.Context, id kernel.RecruiterID, stats recruiter.Stats) error {
	err := r.store.UpdateItem(ctx, TableRecruiterProfiles, id.String(), map[string]any{
		"stats": map[string]any{
			"total_applications": stats.TotalApplications,
			"total_hires":        stats.TotalHires,
		},
	})
	if errors.Is(err, storex.ErrItemNotFound) {
		return recruiter.ErrRecruiterNotFound().WithDetail("recruiter_id", id.String())
	}
	return err
}
