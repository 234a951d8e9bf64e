// Package store provides a snapshot-oriented document store over pluggable
// key-value backends.
//
// Shopfront persists each entity collection as a single serialized snapshot
// under a stable slot key, plus a handful of scalar slots (the session).
// Every mutation is a whole-collection read-modify-write cycle performed by
// exactly one writer; the package deliberately carries no locking or
// conflict resolution.
//
// # Backends
//
// A [Backend] is a blob store addressed by slot key:
//
//	type Backend interface {
//	    Read(ctx context.Context, key string) ([]byte, bool, error)
//	    Write(ctx context.Context, key string, data []byte) error
//	    Delete(ctx context.Context, key string) error
//	}
//
// Three implementations ship with the package:
//
//   - [MemoryBackend] - map-backed, for tests and throwaway stores
//   - [FileBackend] - one file per slot key under a data directory
//   - [DynamoBackend] - one DynamoDB item per slot key
//
// # Snapshot layout
//
// Collection snapshots are JSON envelopes carrying a schema version:
//
//	{"schema":1,"items":[{...},{...}]}
//
// Reads also accept a bare JSON array (the legacy snapshot layout, kept
// readable for migration). Anything else - truncated,
// corrupt, or an unknown schema - decodes as the empty collection; reads
// always succeed with a usable default and never surface a parse error.
package store
