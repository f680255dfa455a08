package applicantinfra

import (
	"context"
	"errors"

	"github.com/staffhive/staffhive/marketplace/applicant"
	"github.com/staffhive/staffhive/pkg/kernel"
	"github.com/staffhive/staffhive/pkg/storex"
)

// TableStaffProfiles is the record store table holding staff profiles. The
// profile record embeds the staff member's applications.
const TableStaffProfiles = "staff_profiles"

// StoreStaffRepository implements applicant.StaffRepository against the record store
type StoreStaffRepository struct {
	store storex.RecordStore
}

func NewStoreStaffRepository(store storex.RecordStore) *StoreStaffRepository {
	return &StoreStaffRepository{store: store}
}

func (r *StoreStaffRepository) GetByID(ctx context.Context, id kernel.UserID) (*applicant.StaffProfile, error) {
	var profile applicant.StaffProfile
	if err := r.store.GetItem(ctx, TableStaffProfiles, id.String(), &profile); err != nil {
		if errors.Is(err, storex.ErrItemNotFound) {
			return nil, applicant.ErrStaffNotFound().WithDetail("staff_id", id.String())
		}
		return nil, err
	}
	return &profile, nil
}

func (r *StoreStaffRepository) Put(ctx context.Context, profile *applicant.StaffProfile) error {
	return r.store.PutItem(ctx, TableStaffProfiles, profile)
}

func (r *StoreStaffRepository) ListAll(ctx context.Context) ([]applicant.StaffProfile, error) {
	var profiles []applicant.StaffProfile
	if err := r.store.ScanItems(ctx, TableStaffProfiles, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}
