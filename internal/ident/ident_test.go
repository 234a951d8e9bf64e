package ident

import (
	"strings"
	"testing"
)

func TestNewCarriesPrefix(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
		want   string
	}{
		{"user prefix", "user", "user_"},
		{"product prefix", "product", "product_"},
		{"empty prefix defaults", "", "id_"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := New(tt.prefix)
			if !strings.HasPrefix(id, tt.want) {
				t.Errorf("expected prefix %q, got %q", tt.want, id)
			}
			if len(id) <= len(tt.want) {
				t.Errorf("expected random suffix after prefix, got %q", id)
			}
		})
	}
}

func TestNewIsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := New("cart_item")
		if seen[id] {
			t.Fatalf("duplicate identifier generated: %s", id)
		}
		seen[id] = true
	}
}
