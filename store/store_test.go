package store_test

import (
	"context"
	"testing"

	"github.com/jacentio/shopfront/store"
)

// doc is a minimal document type for snapshot round-trips.
type doc struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

func newMemoryStore() (*store.Store, *store.MemoryBackend) {
	backend := store.NewMemoryBackend()
	return store.New(backend), backend
}

func TestListMissingCollection(t *testing.T) {
	s, _ := newMemoryStore()

	items, err := s.List(context.Background(), "products")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("expected empty collection, got %d items", len(items))
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s, _ := newMemoryStore()
	ctx := context.Background()

	in := []doc{
		{ID: "prod_1", Name: "Keyboard", Price: 3499},
		{ID: "prod_2", Name: "Mouse", Price: 1299.5},
	}
	if err := store.Save(ctx, s, "products", in); err != nil {
		t.Fatalf("save: %v", err)
	}

	out, err := store.Load[doc](ctx, s, "products")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 docs, got %d", len(out))
	}
	if out[0] != in[0] || out[1] != in[1] {
		t.Errorf("round trip mismatch: got %+v, want %+v", out, in)
	}
}

func TestSaveReplacesWholeSnapshot(t *testing.T) {
	s, _ := newMemoryStore()
	ctx := context.Background()

	if err := store.Save(ctx, s, "products", []doc{{ID: "prod_1"}, {ID: "prod_2"}}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Save(ctx, s, "products", []doc{{ID: "prod_3"}}); err != nil {
		t.Fatalf("save: %v", err)
	}

	out, err := store.Load[doc](ctx, s, "products")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(out) != 1 || out[0].ID != "prod_3" {
		t.Errorf("expected snapshot replaced with single prod_3, got %+v", out)
	}
}

func TestCorruptSnapshotReadsAsEmpty(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"truncated json", `{"schema":1,"items":[{"id":`},
		{"not json at all", `<<<garbage>>>`},
		{"unknown schema", `{"schema":99,"items":[{"id":"prod_1"}]}`},
		{"scalar value", `"just a string"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, backend := newMemoryStore()
			ctx := context.Background()

			if err := backend.Write(ctx, "products", []byte(tt.data)); err != nil {
				t.Fatalf("seed backend: %v", err)
			}

			items, err := s.List(ctx, "products")
			if err != nil {
				t.Fatalf("expected corrupt snapshot to read as empty, got error: %v", err)
			}
			if len(items) != 0 {
				t.Errorf("expected empty collection, got %d items", len(items))
			}
		})
	}
}

func TestBareArrayLayoutAccepted(t *testing.T) {
	s, backend := newMemoryStore()
	ctx := context.Background()

	// Legacy snapshot layout without the versioned envelope.
	legacy := `[{"id":"prod_1","name":"Smart Watch","price":4999}]`
	if err := backend.Write(ctx, "products", []byte(legacy)); err != nil {
		t.Fatalf("seed backend: %v", err)
	}

	out, err := store.Load[doc](ctx, s, "products")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(out) != 1 || out[0].Name != "Smart Watch" || out[0].Price != 4999 {
		t.Errorf("expected legacy snapshot to decode, got %+v", out)
	}
}

func TestLoadDropsMalformedDocuments(t *testing.T) {
	s, backend := newMemoryStore()
	ctx := context.Background()

	data := `{"schema":1,"items":[{"id":"prod_1","price":10},{"id":"prod_2","price":"not a number"}]}`
	if err := backend.Write(ctx, "products", []byte(data)); err != nil {
		t.Fatalf("seed backend: %v", err)
	}

	out, err := store.Load[doc](ctx, s, "products")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(out) != 1 || out[0].ID != "prod_1" {
		t.Errorf("expected malformed document dropped, got %+v", out)
	}
}

func TestScalarSlot(t *testing.T) {
	s, _ := newMemoryStore()
	ctx := context.Background()

	if _, ok, err := s.Scalar(ctx, "session"); err != nil || ok {
		t.Fatalf("expected absent scalar, got ok=%v err=%v", ok, err)
	}

	if err := s.SetScalar(ctx, "session", "Admin@gmail.com"); err != nil {
		t.Fatalf("set scalar: %v", err)
	}
	value, ok, err := s.Scalar(ctx, "session")
	if err != nil {
		t.Fatalf("scalar: %v", err)
	}
	if !ok || value != "Admin@gmail.com" {
		t.Errorf("expected stored-case value, got ok=%v value=%q", ok, value)
	}

	if err := s.ClearScalar(ctx, "session"); err != nil {
		t.Fatalf("clear scalar: %v", err)
	}
	if _, ok, _ := s.Scalar(ctx, "session"); ok {
		t.Error("expected scalar cleared")
	}

	// Clearing an absent slot is a no-op.
	if err := s.ClearScalar(ctx, "session"); err != nil {
		t.Errorf("clear of absent scalar: %v", err)
	}
}

func TestSetListNilIsEmpty(t *testing.T) {
	s, backend := newMemoryStore()
	ctx := context.Background()

	if err := s.SetList(ctx, "cart", nil); err != nil {
		t.Fatalf("set list: %v", err)
	}

	data, ok, err := backend.Read(ctx, "cart")
	if err != nil || !ok {
		t.Fatalf("expected snapshot written, got ok=%v err=%v", ok, err)
	}
	if string(data) != `{"schema":1,"items":[]}` {
		t.Errorf("unexpected snapshot bytes: %s", data)
	}
}
