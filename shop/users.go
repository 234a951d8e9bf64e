package shop

import (
	"context"
	"fmt"
	"strings"

	"github.com/jacentio/shopfront/store"
)

// Register creates a new non-admin user. Email uniqueness is checked
// case-insensitively against the existing collection.
func (s *Service) Register(ctx context.Context, firstName, lastName, email, password string) (User, error) {
	users, err := store.Load[User](ctx, s.store, collUsers)
	if err != nil {
		return User{}, fmt.Errorf("load users: %w", err)
	}

	for _, u := range users {
		if strings.EqualFold(u.Email, email) {
			return User{}, ErrEmailTaken
		}
	}

	user := User{
		ID:        s.newID(TypeUser),
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Password:  password,
		Admin:     false,
	}
	users = append(users, user)

	if err := store.Save(ctx, s.store, collUsers, users); err != nil {
		return User{}, fmt.Errorf("save users: %w", err)
	}

	s.logger.Info("user registered", "id", user.ID, "email", user.Email)
	return user, nil
}

// Authenticate verifies an email/password pair and, on success, stores the
// matched user's stored-case email as the session. Email matching is
// case-insensitive; the password comparison is exact.
func (s *Service) Authenticate(ctx context.Context, email, password string) (User, error) {
	users, err := store.Load[User](ctx, s.store, collUsers)
	if err != nil {
		return User{}, fmt.Errorf("load users: %w", err)
	}

	for _, u := range users {
		if strings.EqualFold(u.Email, email) && u.Password == password {
			if err := s.store.SetScalar(ctx, keySession, u.Email); err != nil {
				return User{}, fmt.Errorf("set session: %w", err)
			}
			s.logger.Info("user logged in", "id", u.ID, "email", u.Email)
			return u, nil
		}
	}

	return User{}, ErrInvalidCredentials
}

// Logout clears the session. Logging out while logged out is a no-op.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.store.ClearScalar(ctx, keySession); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// CurrentUser resolves the session email against the live user collection.
// It returns nil when no session is set or the email no longer resolves.
func (s *Service) CurrentUser(ctx context.Context) (*User, error) {
	email, ok, err := s.store.Scalar(ctx, keySession)
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}
	if !ok {
		return nil, nil
	}

	users, err := store.Load[User](ctx, s.store, collUsers)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	for _, u := range users {
		if strings.EqualFold(u.Email, email) {
			return &u, nil
		}
	}
	return nil, nil
}
