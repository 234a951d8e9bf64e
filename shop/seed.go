package shop

import (
	"context"
	"fmt"
	"strings"

	"github.com/jacentio/shopfront/store"
)

// Reserved administrator credentials for the demo store.
const (
	AdminEmail    = "admin@gmail.com"
	adminPassword = "admin123"
)

// starterCatalog returns the fixed demo catalog used when the product
// collection is empty.
func (s *Service) starterCatalog() []Product {
	return []Product{
		{
			ID:          s.newID(TypeProduct),
			Name:        "Wireless Headphones",
			Description: "Bluetooth over-ear headphones",
			Price:       1999,
			Image:       "https://picsum.photos/seed/headphones/600/400",
		},
		{
			ID:          s.newID(TypeProduct),
			Name:        "Mechanical Keyboard",
			Description: "RGB mechanical keyboard",
			Price:       3499,
			Image:       "https://picsum.photos/seed/keyboard/600/400",
		},
		{
			ID:          s.newID(TypeProduct),
			Name:        "Gaming Mouse",
			Description: "High DPI gaming mouse",
			Price:       1299,
			Image:       "https://picsum.photos/seed/mouse/600/400",
		},
		{
			ID:          s.newID(TypeProduct),
			Name:        "Smart Watch",
			Description: "Fitness tracking smart watch",
			Price:       4999,
			Image:       "https://picsum.photos/seed/watch/600/400",
		},
	}
}

// Seed bootstraps the store: it ensures the administrator account exists
// and, when the catalog is empty, writes the starter products. Safe to run
// on every process start.
func (s *Service) Seed(ctx context.Context) error {
	users, err := store.Load[User](ctx, s.store, collUsers)
	if err != nil {
		return fmt.Errorf("load users: %w", err)
	}

	hasAdmin := false
	for _, u := range users {
		if strings.EqualFold(u.Email, AdminEmail) {
			hasAdmin = true
			break
		}
	}
	if !hasAdmin {
		users = append(users, User{
			ID:        s.newID(TypeUser),
			FirstName: "Admin",
			LastName:  "User",
			Email:     AdminEmail,
			Password:  adminPassword,
			Admin:     true,
		})
		if err := store.Save(ctx, s.store, collUsers, users); err != nil {
			return fmt.Errorf("save users: %w", err)
		}
		s.logger.Info("seeded administrator account", "email", AdminEmail)
	}

	products, err := store.Load[Product](ctx, s.store, collProducts)
	if err != nil {
		return fmt.Errorf("load products: %w", err)
	}
	if len(products) == 0 {
		if err := store.Save(ctx, s.store, collProducts, s.starterCatalog()); err != nil {
			return fmt.Errorf("save products: %w", err)
		}
		s.logger.Info("seeded starter catalog")
	}

	return nil
}
