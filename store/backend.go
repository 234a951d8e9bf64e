package store

import "context"

// Backend is a blob store addressed by slot key.
type Backend interface {
	// Read returns the stored bytes for key. A missing key is reported as
	// (nil, false, nil), not as an error.
	Read(ctx context.Context, key string) ([]byte, bool, error)

	// Write replaces the stored bytes for key.
	Write(ctx context.Context, key string, data []byte) error

	// Delete removes key. Deleting a missing key is a no-op.
	Delete(ctx context.Context, key string) error
}

// MemoryBackend is a map-backed Backend.
//
// It assumes the single-writer execution model shared by the whole store
// layer and is not safe for concurrent use.
type MemoryBackend struct {
	slots map[string][]byte
}

// NewMemoryBackend creates an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{slots: make(map[string][]byte)}
}

// Read returns the stored bytes for key.
func (m *MemoryBackend) Read(_ context.Context, key string) ([]byte, bool, error) {
	data, ok := m.slots[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, true, nil
}

// Write replaces the stored bytes for key.
func (m *MemoryBackend) Write(_ context.Context, key string, data []byte) error {
	stored := make([]byte, len(data))
	copy(stored, data)
	m.slots[key] = stored
	return nil
}

// Delete removes key.
func (m *MemoryBackend) Delete(_ context.Context, key string) error {
	delete(m.slots, key)
	return nil
}
