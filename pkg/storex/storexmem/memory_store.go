package storexmem

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/staffhive/staffhive/pkg/storex"
)

// MemoryStore is an in-memory storex.RecordStore used by tests and local
// runs. Items are kept as JSON blobs so the adapter stays agnostic of the
// repository models, the same way the DynamoDB adapter is.
type MemoryStore struct {
	mu     sync.Mutex
	tables map[string]map[string]json.RawMessage
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		tables: make(map[string]map[string]json.RawMessage),
	}
}

func (s *MemoryStore) table(name string) map[string]json.RawMessage {
	t, ok := s.tables[name]
	if !ok {
		t = make(map[string]json.RawMessage)
		s.tables[name] = t
	}
	return t
}

func (s *MemoryStore) GetItem(ctx context.Context, table, id string, out any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok := s.table(table)[id]
	if !ok {
		return storex.ErrItemNotFound
	}

	return json.Unmarshal(raw, out)
}

func (s *MemoryStore) PutItem(ctx context.Context, table string, item any) error {
	raw, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("marshal item for %s: %w", table, err)
	}

	var attrs map[string]json.RawMessage
	if err := json.Unmarshal(raw, &attrs); err != nil {
		return fmt.Errorf("item for %s is not a struct: %w", table, err)
	}

	var id string
	if rawID, ok := attrs["id"]; !ok || json.Unmarshal(rawID, &id) != nil || id == "" {
		return fmt.Errorf("item for %s has no string id attribute", table)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.table(table)[id] = raw
	return nil
}

func (s *MemoryStore) DeleteItem(ctx context.Context, table, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.table(table), id)
	return nil
}

func (s *MemoryStore) ScanItems(ctx context.Context, table string, out any) error {
	s.mu.Lock()
	items := make([]json.RawMessage, 0, len(s.table(table)))
	for _, raw := range s.table(table) {
		items = append(items, raw)
	}
	s.mu.Unlock()

	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshal scan of %s: %w", table, err)
	}

	return json.Unmarshal(raw, out)
}

func (s *MemoryStore) UpdateItem(ctx context.Context, table, id string, patch map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.table(table)[id]
	if !ok {
		return storex.ErrItemNotFound
	}

	var attrs map[string]any
	if err := json.Unmarshal(existing, &attrs); err != nil {
		return fmt.Errorf("unmarshal item %s/%s: %w", table, id, err)
	}

	for attr, value := range patch {
		attrs[attr] = value
	}

	raw, err := json.Marshal(attrs)
	if err != nil {
		return fmt.Errorf("marshal patched item %s/%s: %w", table, id, err)
	}

	s.table(table)[id] = raw
	return nil
}
