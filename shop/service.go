package shop

import (
	"log/slog"

	"github.com/jacentio/shopfront/internal/ident"
	"github.com/jacentio/shopfront/store"
)

// Store slot keys. Renaming one invalidates existing stored state.
const (
	collUsers    = "users"
	collProducts = "products"
	collCart     = "cart"
	keySession   = "session"
)

// Notifier surfaces a transient user-facing message. The presentation layer
// supplies one; the default discards messages.
type Notifier func(message string)

// Service exposes the storefront domain operations over a store handle.
// Construct one per process; it owns no state beyond its collaborators, so
// all durable state stays in the store.
type Service struct {
	store    *store.Store
	registry *Registry
	logger   *slog.Logger
	notify   Notifier
	newID    func(prefix string) string
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the diagnostic logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithNotifier sets the user-facing message hook.
func WithNotifier(notify Notifier) Option {
	return func(s *Service) {
		if notify != nil {
			s.notify = notify
		}
	}
}

// WithIDGenerator overrides identifier generation (used by tests).
func WithIDGenerator(newID func(prefix string) string) Option {
	return func(s *Service) {
		if newID != nil {
			s.newID = newID
		}
	}
}

// New creates a Service over the given store and registers the built-in
// referential-integrity rules.
func New(st *store.Store, opts ...Option) *Service {
	s := &Service{
		store:    st,
		registry: NewRegistry(),
		logger:   slog.Default(),
		notify:   func(string) {},
		newID:    ident.New,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.registry.Register(Relationship{
		ParentType: TypeProduct,
		ChildType:  TypeCartItem,
		Cascade:    s.removeCartLinesFor,
	})

	return s
}

// Registry returns the relationship registry.
func (s *Service) Registry() *Registry {
	return s.registry
}
