// Package ident generates prefixed identifiers for new records.
package ident

import "github.com/google/uuid"

// New returns a fresh identifier of the form "prefix_uuid". The prefix keeps
// stored documents debuggable; uniqueness rests on the random UUID, which is
// an accepted tradeoff at demo scale.
func New(prefix string) string {
	if prefix == "" {
		prefix = "id"
	}
	return prefix + "_" + uuid.NewString()
}
