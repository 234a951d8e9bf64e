package shop

import "context"

// Relationship defines a parent-child reference between two entity types
// for cascade operations.
type Relationship struct {
	// ParentType is the referenced entity type (e.g. "product").
	ParentType string

	// ChildType is the referencing entity type (e.g. "cart_item").
	ChildType string

	// Cascade removes the child records referencing the given parent id.
	// It runs inside the same delete call as the parent removal.
	Cascade func(ctx context.Context, parentID string) error
}

// Registry holds all known entity relationships for cascade operations.
type Registry struct {
	relationships []Relationship
	byParent      map[string][]Relationship
}

// NewRegistry creates a new empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		relationships: []Relationship{},
		byParent:      make(map[string][]Relationship),
	}
}

// Register adds a relationship to the registry.
func (r *Registry) Register(rel Relationship) {
	r.relationships = append(r.relationships, rel)
	r.byParent[rel.ParentType] = append(r.byParent[rel.ParentType], rel)
}

// ChildrenOf returns all child relationships for a given parent type.
func (r *Registry) ChildrenOf(parentType string) []Relationship {
	return r.byParent[parentType]
}

// AllRelationships returns all registered relationships.
func (r *Registry) AllRelationships() []Relationship {
	return r.relationships
}

// HasChildren returns true if the parent type has any registered child
// relationships.
func (r *Registry) HasChildren(parentType string) bool {
	return len(r.byParent[parentType]) > 0
}
