package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// snapshotSchema is the current envelope schema version.
const snapshotSchema = 1

// errUnreadable marks stored bytes that fail to parse as any known snapshot
// layout. It never escapes the package: unreadable snapshots are recovered
// locally by substituting the empty collection.
var errUnreadable = errors.New("shopfront: stored snapshot unreadable")

// envelope is the versioned on-disk layout of a collection snapshot.
type envelope struct {
	Schema int               `json:"schema"`
	Items  []json.RawMessage `json:"items"`
}

// Store reads and writes whole-collection snapshots and scalar slots
// through a Backend.
type Store struct {
	backend Backend
}

// New creates a Store over the given backend.
func New(backend Backend) *Store {
	return &Store{backend: backend}
}

// List returns the documents of a collection snapshot. A missing, corrupt,
// or unknown-schema snapshot yields the empty collection.
func (s *Store) List(ctx context.Context, collection string) ([]json.RawMessage, error) {
	data, ok, err := s.backend.Read(ctx, collection)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", collection, err)
	}
	if !ok {
		return nil, nil
	}

	items, err := decodeSnapshot(data)
	if err != nil {
		// Unreadable storage is treated as empty, never propagated.
		return nil, nil
	}
	return items, nil
}

// SetList replaces a collection snapshot with the given documents.
func (s *Store) SetList(ctx context.Context, collection string, items []json.RawMessage) error {
	if items == nil {
		items = []json.RawMessage{}
	}
	data, err := json.Marshal(envelope{Schema: snapshotSchema, Items: items})
	if err != nil {
		return fmt.Errorf("encode %s: %w", collection, err)
	}
	if err := s.backend.Write(ctx, collection, data); err != nil {
		return fmt.Errorf("write %s: %w", collection, err)
	}
	return nil
}

// Scalar returns the value of a scalar slot and whether it is present.
func (s *Store) Scalar(ctx context.Context, key string) (string, bool, error) {
	data, ok, err := s.backend.Read(ctx, key)
	if err != nil {
		return "", false, fmt.Errorf("read %s: %w", key, err)
	}
	if !ok {
		return "", false, nil
	}
	return string(data), true, nil
}

// SetScalar sets a scalar slot.
func (s *Store) SetScalar(ctx context.Context, key, value string) error {
	if err := s.backend.Write(ctx, key, []byte(value)); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

// ClearScalar removes a scalar slot. Clearing an absent slot is a no-op.
func (s *Store) ClearScalar(ctx context.Context, key string) error {
	if err := s.backend.Delete(ctx, key); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

// decodeSnapshot parses stored snapshot bytes. It accepts the versioned
// envelope layout and, for migration, a bare JSON array.
func decodeSnapshot(data []byte) ([]json.RawMessage, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err == nil && env.Schema == snapshotSchema {
		return env.Items, nil
	}

	var bare []json.RawMessage
	if err := json.Unmarshal(data, &bare); err == nil {
		return bare, nil
	}

	return nil, errUnreadable
}

// Load decodes a collection snapshot into typed records. Individual
// documents that fail to decode are dropped at the storage boundary.
func Load[T any](ctx context.Context, s *Store, collection string) ([]T, error) {
	raw, err := s.List(ctx, collection)
	if err != nil {
		return nil, err
	}

	out := make([]T, 0, len(raw))
	for _, doc := range raw {
		var v T
		if err := json.Unmarshal(doc, &v); err != nil {
			continue
		}
		out = append(out, v)
	}
	return out, nil
}

// Save encodes typed records and replaces the collection snapshot.
func Save[T any](ctx context.Context, s *Store, collection string, items []T) error {
	raw := make([]json.RawMessage, 0, len(items))
	for i, item := range items {
		doc, err := json.Marshal(item)
		if err != nil {
			return fmt.Errorf("encode %s[%d]: %w", collection, i, err)
		}
		raw = append(raw, doc)
	}
	return s.SetList(ctx, collection, raw)
}
