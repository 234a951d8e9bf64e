package shop_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/jacentio/shopfront/shop"
	"github.com/jacentio/shopfront/store"
)

// newTestService builds a service over a fresh in-memory store with a
// deterministic id generator and a quiet logger.
func newTestService(t *testing.T, opts ...shop.Option) *shop.Service {
	t.Helper()

	counter := 0
	base := []shop.Option{
		shop.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		shop.WithIDGenerator(func(prefix string) string {
			counter++
			return fmt.Sprintf("%s_%d", prefix, counter)
		}),
	}
	return shop.New(store.New(store.NewMemoryBackend()), append(base, opts...)...)
}

// mustCreateProduct creates a product or fails the test.
func mustCreateProduct(t *testing.T, svc *shop.Service, name, price string) shop.Product {
	t.Helper()
	p, err := svc.CreateProduct(context.Background(), name, name+" description", price, "")
	if err != nil {
		t.Fatalf("create product %s: %v", name, err)
	}
	return p
}
