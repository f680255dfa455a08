package hiringinfra

import (
	"context"
	"errors"
	"sort"

	"github.com/staffhive/staffhive/marketplace/hiring"
	"github.com/staffhive/staffhive/pkg/kernel"
	"github.com/staffhive/staffhive/pkg/storex"
)

// TableHiringRecords is the record store table holding the decision ledger
const TableHiringRecords = "hiring_records"

// StoreHiringRepository implements hiring.Archive against the record store
type StoreHiringRepository struct {
	store storex.RecordStore
}

func NewStoreHiringRepository(store storex.RecordStore) *StoreHiringRepository {
	return &StoreHiringRepository{store: store}
}

func (r *StoreHiringRepository) Append(ctx context.Context, record *hiring.Record) error {
	return r.store.PutItem(ctx, TableHiringRecords, record)
}

func (r *StoreHiringRepository) GetByID(ctx context.Context, id kernel.HiringRecordID) (*hiring.Record, error) {
	var record hiring.Record
	if err := r.store.GetItem(ctx, TableHiringRecords, id.String(), &record); err != nil {
		if errors.Is(err, storex.ErrItemNotFound) {
			return nil, hiring.ErrRecordNotFound().WithDetail("record_id", id.String())
		}
		return nil, err
	}
	return &record, nil
}

func (r *StoreHiringRepository) ListByRecruiter(ctx context.Context, recruiterID kernel.RecruiterID) ([]hiring.Record, error) {
	return r.list(ctx, func(rec *hiring.Record) bool {
		return rec.RecruiterID == recruiterID
	})
}

func (r *StoreHiringRepository) ListByStaff(ctx context.Context, staffID kernel.UserID) ([]hiring.Record, error) {
	return r.list(ctx, func(rec *hiring.Record) bool {
		return rec.Applicant.StaffID == staffID
	})
}

func (r *StoreHiringRepository) ListByInstituteAndRecruiter(ctx context.Context, instituteID kernel.InstituteID, recruiterID kernel.RecruiterID) ([]hiring.Record, error) {
	return r.list(ctx, func(rec *hiring.Record) bool {
		return rec.Applicant.InstituteID == instituteID && rec.RecruiterID == recruiterID
	})
}

func (r *StoreHiringRepository) AttachRating(ctx context.Context, id kernel.HiringRecordID, rating int, feedback string) error {
	err := r.store.UpdateItem(ctx, TableHiringRecords, id.String(), map[string]any{
		"rating":   rating,
		"feedback": feedback,
	})
	if errors.Is(err, storex.ErrItemNotFound) {
		return hiring.ErrRecordNotFound().WithDetail("record_id", id.String())
	}
	return err
}

func (r *StoreHiringRepository) list(ctx context.Context, keep func(*hiring.Record) bool) ([]hiring.Record, error) {
	var all []hiring.Record
	if err := r.store.ScanItems(ctx, TableHiringRecords, &all); err != nil {
		return nil, err
	}

	matched := make([]hiring.Record, 0)
	for i := range all {
		if keep(&all[i]) {
			matched = append(matched, all[i])
		}
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].DecidedAt.After(matched[j].DecidedAt)
	})
	return matched, nil
}
