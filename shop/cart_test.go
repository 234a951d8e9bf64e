package shop_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jacentio/shopfront/shop"
)

func TestAddToCartMergesLines(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	p := mustCreateProduct(t, svc, "Mouse", "1299")

	first, err := svc.AddToCart(ctx, p.ID, 1)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	second, err := svc.AddToCart(ctx, p.ID, 1)
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	if second.ID != first.ID {
		t.Errorf("expected the same cart line, got %q and %q", first.ID, second.ID)
	}
	if second.Qty != 2 {
		t.Errorf("expected quantity 2, got %d", second.Qty)
	}

	lines, err := svc.CartContents(ctx)
	if err != nil {
		t.Fatalf("contents: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("expected a single merged line, got %d", len(lines))
	}
	if lines[0].Item.Qty != 2 {
		t.Errorf("expected merged quantity 2, got %d", lines[0].Item.Qty)
	}
}

func TestAddToCartUnknownProductAllowed(t *testing.T) {
	svc := newTestService(t)

	// Referential integrity is advisory at add time.
	item, err := svc.AddToCart(context.Background(), "product_ghost", 1)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if item.ProductID != "product_ghost" {
		t.Errorf("expected line stored, got %+v", item)
	}

	// The join skips the unresolvable line instead of failing.
	lines, err := svc.CartContents(context.Background())
	if err != nil {
		t.Fatalf("contents: %v", err)
	}
	if len(lines) != 0 {
		t.Errorf("expected ghost line skipped in contents, got %+v", lines)
	}
}

func TestUpdateQuantity(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	p := mustCreateProduct(t, svc, "Mouse", "1299")
	item, err := svc.AddToCart(ctx, p.ID, 1)
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	if err := svc.UpdateQuantity(ctx, item.ID, 5); err != nil {
		t.Fatalf("update quantity: %v", err)
	}
	total, err := svc.TotalQuantity(ctx)
	if err != nil {
		t.Fatalf("total: %v", err)
	}
	if total != 5 {
		t.Errorf("expected total 5, got %d", total)
	}

	if err := svc.UpdateQuantity(ctx, "cart_item_missing", 2); !errors.Is(err, shop.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestRemoveFromCartIdempotent(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	p := mustCreateProduct(t, svc, "Mouse", "1299")
	item, err := svc.AddToCart(ctx, p.ID, 1)
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	if err := svc.RemoveFromCart(ctx, item.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := svc.RemoveFromCart(ctx, item.ID); err != nil {
		t.Errorf("second remove should be a no-op, got %v", err)
	}

	total, err := svc.TotalQuantity(ctx)
	if err != nil {
		t.Fatalf("total: %v", err)
	}
	if total != 0 {
		t.Errorf("expected empty cart, got total %d", total)
	}
}

func TestTotalQuantityInvariant(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	a := mustCreateProduct(t, svc, "A", "1")
	b := mustCreateProduct(t, svc, "B", "2")

	// Run a mixed operation sequence, tracking the expected total.
	itemA, err := svc.AddToCart(ctx, a.ID, 1)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	itemB, err := svc.AddToCart(ctx, b.ID, 4)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := svc.AddToCart(ctx, a.ID, 2); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := svc.UpdateQuantity(ctx, itemB.ID, 1); err != nil {
		t.Fatalf("update: %v", err)
	}
	want := 3 + 1

	total, err := svc.TotalQuantity(ctx)
	if err != nil {
		t.Fatalf("total: %v", err)
	}
	if total != want {
		t.Errorf("expected total %d, got %d", want, total)
	}

	if err := svc.RemoveFromCart(ctx, itemA.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	want -= 3

	total, err = svc.TotalQuantity(ctx)
	if err != nil {
		t.Fatalf("total: %v", err)
	}
	if total != want {
		t.Errorf("expected total %d after remove, got %d", want, total)
	}
}

func TestCheckout(t *testing.T) {
	notified := []string{}
	svc := newTestService(t, shop.WithNotifier(func(msg string) {
		notified = append(notified, msg)
	}))
	ctx := context.Background()

	if err := svc.CheckoutCart(ctx); !errors.Is(err, shop.ErrCartEmpty) {
		t.Errorf("expected ErrCartEmpty, got %v", err)
	}

	p := mustCreateProduct(t, svc, "Mouse", "1299")
	if _, err := svc.AddToCart(ctx, p.ID, 2); err != nil {
		t.Fatalf("add: %v", err)
	}

	if err := svc.CheckoutCart(ctx); err != nil {
		t.Fatalf("checkout: %v", err)
	}
	total, err := svc.TotalQuantity(ctx)
	if err != nil {
		t.Fatalf("total: %v", err)
	}
	if total != 0 {
		t.Errorf("expected cart cleared by checkout, got total %d", total)
	}

	wantNotified := []string{"Added to cart", "Order placed!"}
	if len(notified) != len(wantNotified) {
		t.Fatalf("expected notifications %v, got %v", wantNotified, notified)
	}
	for i := range wantNotified {
		if notified[i] != wantNotified[i] {
			t.Errorf("expected notification %q, got %q", wantNotified[i], notified[i])
		}
	}
}
