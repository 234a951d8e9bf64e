package shop

import (
	"context"
	"fmt"

	"github.com/jacentio/shopfront/store"
)

// AddToCart adds qty of a product to the cart, incrementing the existing
// line if the product is already present. The product id is not validated
// here; referential integrity is advisory at add time.
func (s *Service) AddToCart(ctx context.Context, productID string, qty int) (CartItem, error) {
	cart, err := store.Load[CartItem](ctx, s.store, collCart)
	if err != nil {
		return CartItem{}, fmt.Errorf("load cart: %w", err)
	}

	index := -1
	for i, item := range cart {
		if item.ProductID == productID {
			index = i
			break
		}
	}

	var item CartItem
	if index >= 0 {
		cart[index].Qty += qty
		item = cart[index]
	} else {
		item = CartItem{
			ID:        s.newID(TypeCartItem),
			ProductID: productID,
			Qty:       qty,
		}
		cart = append(cart, item)
	}

	if err := store.Save(ctx, s.store, collCart, cart); err != nil {
		return CartItem{}, fmt.Errorf("save cart: %w", err)
	}

	s.notify("Added to cart")
	return item, nil
}

// UpdateQuantity sets a cart line's quantity verbatim. Keeping quantities
// positive is the caller's policy, not this layer's.
func (s *Service) UpdateQuantity(ctx context.Context, cartItemID string, qty int) error {
	cart, err := store.Load[CartItem](ctx, s.store, collCart)
	if err != nil {
		return fmt.Errorf("load cart: %w", err)
	}

	for i, item := range cart {
		if item.ID == cartItemID {
			cart[i].Qty = qty
			if err := store.Save(ctx, s.store, collCart, cart); err != nil {
				return fmt.Errorf("save cart: %w", err)
			}
			return nil
		}
	}
	return ErrNotFound
}

// RemoveFromCart removes a cart line. Removing a missing line is a no-op.
func (s *Service) RemoveFromCart(ctx context.Context, cartItemID string) error {
	cart, err := store.Load[CartItem](ctx, s.store, collCart)
	if err != nil {
		return fmt.Errorf("load cart: %w", err)
	}

	kept := cart[:0]
	for _, item := range cart {
		if item.ID != cartItemID {
			kept = append(kept, item)
		}
	}

	if err := store.Save(ctx, s.store, collCart, kept); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

// ClearCart empties the cart.
func (s *Service) ClearCart(ctx context.Context) error {
	if err := store.Save(ctx, s.store, collCart, []CartItem{}); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

// TotalQuantity sums the quantities of all cart lines.
func (s *Service) TotalQuantity(ctx context.Context) (int, error) {
	cart, err := store.Load[CartItem](ctx, s.store, collCart)
	if err != nil {
		return 0, fmt.Errorf("load cart: %w", err)
	}

	total := 0
	for _, item := range cart {
		total += item.Qty
	}
	return total, nil
}

// CartContents joins cart lines to their products. Lines whose product no
// longer exists are skipped; the delete cascade makes that rare, but stale
// references must be tolerated.
func (s *Service) CartContents(ctx context.Context) ([]CartLine, error) {
	cart, err := store.Load[CartItem](ctx, s.store, collCart)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	products, err := store.Load[Product](ctx, s.store, collProducts)
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}

	byID := make(map[string]Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	lines := make([]CartLine, 0, len(cart))
	for _, item := range cart {
		product, ok := byID[item.ProductID]
		if !ok {
			continue
		}
		lines = append(lines, CartLine{Item: item, Product: product})
	}
	return lines, nil
}

// CheckoutCart places the order: it fails on an empty cart and otherwise
// clears it. There is no order record in this design; checkout is the
// cart's terminal operation.
func (s *Service) CheckoutCart(ctx context.Context) error {
	cart, err := store.Load[CartItem](ctx, s.store, collCart)
	if err != nil {
		return fmt.Errorf("load cart: %w", err)
	}
	if len(cart) == 0 {
		return ErrCartEmpty
	}

	if err := s.ClearCart(ctx); err != nil {
		return err
	}
	s.notify("Order placed!")
	return nil
}

// removeCartLinesFor is the cascade rule for product deletion: it drops
// every cart line referencing the deleted product.
func (s *Service) removeCartLinesFor(ctx context.Context, productID string) error {
	cart, err := store.Load[CartItem](ctx, s.store, collCart)
	if err != nil {
		return fmt.Errorf("load cart: %w", err)
	}

	kept := cart[:0]
	for _, item := range cart {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}

	if err := store.Save(ctx, s.store, collCart, kept); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}
