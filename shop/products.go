package shop

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/jacentio/shopfront/store"
)

// parsePrice coerces textual price input to a number. Input that is not a
// finite non-negative number is rejected rather than stored as a sentinel.
func parsePrice(raw string) (float64, error) {
	price, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPrice, raw)
	}
	if math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPrice, raw)
	}
	return price, nil
}

// placeholderImage returns a generated image URL for products created
// without one.
func placeholderImage() string {
	return fmt.Sprintf("https://picsum.photos/seed/%d/600/400", rand.IntN(10000))
}

// CreateProduct adds a catalog entry. Price arrives as text and is coerced;
// a missing image gets a generated placeholder. The product is prepended so
// listings stay newest-first.
func (s *Service) CreateProduct(ctx context.Context, name, description, price, image string) (Product, error) {
	amount, err := parsePrice(price)
	if err != nil {
		return Product{}, err
	}

	products, err := store.Load[Product](ctx, s.store, collProducts)
	if err != nil {
		return Product{}, fmt.Errorf("load products: %w", err)
	}

	if image == "" {
		image = placeholderImage()
	}
	product := Product{
		ID:          s.newID(TypeProduct),
		Name:        name,
		Description: description,
		Price:       amount,
		Image:       image,
	}
	products = append([]Product{product}, products...)

	if err := store.Save(ctx, s.store, collProducts, products); err != nil {
		return Product{}, fmt.Errorf("save products: %w", err)
	}

	s.logger.Info("product created", "id", product.ID, "name", product.Name)
	return product, nil
}

// UpdateProduct merges the supplied fields onto the product with the given
// id. Price, when supplied, is re-coerced from text.
func (s *Service) UpdateProduct(ctx context.Context, id string, upd ProductUpdate) error {
	products, err := store.Load[Product](ctx, s.store, collProducts)
	if err != nil {
		return fmt.Errorf("load products: %w", err)
	}

	index := -1
	for i, p := range products {
		if p.ID == id {
			index = i
			break
		}
	}
	if index == -1 {
		return ErrNotFound
	}

	if upd.Price != nil {
		amount, err := parsePrice(*upd.Price)
		if err != nil {
			return err
		}
		products[index].Price = amount
	}
	if upd.Name != nil {
		products[index].Name = *upd.Name
	}
	if upd.Description != nil {
		products[index].Description = *upd.Description
	}
	if upd.Image != nil {
		products[index].Image = *upd.Image
	}

	if err := store.Save(ctx, s.store, collProducts, products); err != nil {
		return fmt.Errorf("save products: %w", err)
	}

	s.logger.Info("product updated", "id", id)
	return nil
}

// DeleteProduct removes a product and cascades to every cart line
// referencing it, within the same call. Deleting a missing id is a no-op.
func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	products, err := store.Load[Product](ctx, s.store, collProducts)
	if err != nil {
		return fmt.Errorf("load products: %w", err)
	}

	kept := products[:0]
	for _, p := range products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}

	if err := store.Save(ctx, s.store, collProducts, kept); err != nil {
		return fmt.Errorf("save products: %w", err)
	}

	for _, rel := range s.registry.ChildrenOf(TypeProduct) {
		if err := rel.Cascade(ctx, id); err != nil {
			return fmt.Errorf("cascade %s to %s: %w", rel.ParentType, rel.ChildType, err)
		}
	}

	s.logger.Info("product deleted", "id", id)
	return nil
}

// SearchProducts returns products whose name or description contains the
// filter, case-insensitively. An empty filter returns the whole catalog in
// stored (newest-first) order.
func (s *Service) SearchProducts(ctx context.Context, filter string) ([]Product, error) {
	products, err := store.Load[Product](ctx, s.store, collProducts)
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}
	if filter == "" {
		return products, nil
	}

	needle := strings.ToLower(filter)
	matched := make([]Product, 0, len(products))
	for _, p := range products {
		haystack := strings.ToLower(p.Name + " " + p.Description)
		if strings.Contains(haystack, needle) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

// GetProduct returns the product with the given id.
func (s *Service) GetProduct(ctx context.Context, id string) (Product, error) {
	products, err := store.Load[Product](ctx, s.store, collProducts)
	if err != nil {
		return Product{}, fmt.Errorf("load products: %w", err)
	}
	for _, p := range products {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, ErrNotFound
}
