package storex

import (
	"context"
	"errors"
)

// ErrItemNotFound is returned by GetItem and UpdateItem when no item with
// the given id exists in the table.
var ErrItemNotFound = errors.New("storex: item not found")

// RecordStore is the boundary to the managed key-value store backing the
// marketplace. The store offers point reads and writes by id, a full-table
// scan, and a shallow attribute patch. There are no secondary indexes, no
// range queries and no multi-item transactions; every table is keyed by a
// single string "id" attribute and all filtering happens in memory at the
// repository layer.
type RecordStore interface {
	// GetItem loads the item with the given id into out (a struct pointer).
	// Returns ErrItemNotFound when absent.
	GetItem(ctx context.Context, table, id string, out any) error

	// PutItem writes the full item, overwriting any existing item with the
	// same id.
	PutItem(ctx context.Context, table string, item any) error

	// DeleteItem removes the item with the given id. Deleting an absent
	// item is not an error.
	DeleteItem(ctx context.Context, table, id string) error

	// ScanItems decodes every item in the table into out (a pointer to a
	// slice of structs).
	ScanItems(ctx context.Context, table string, out any) error

	// UpdateItem applies a shallow attribute patch to an existing item.
	// Returns ErrItemNotFound when absent.
	UpdateItem(ctx context.Context, table, id string, patch map[string]any) error
}
