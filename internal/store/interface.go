package store

import "github.com/maloquacious/rollbook/internal/model"

// Manager defines the student record contract consumed by the shell.
//
// Records are addressed by 0-based position in the current collection.
// Positions are not stable: Delete shifts every later record down by one, so
// an index captured from a stale listing may point at a different record.
// Implementations are not safe for concurrent use; the embedding application
// must serialize all calls onto one logical thread of control.
type Manager interface {
	// Add appends s to the collection. Fails only when s is nil; field
	// validation is the caller's job before construction.
	Add(s *model.Student) bool

	// Update replaces the record at index with s. Fails when index is out
	// of bounds or s is nil, leaving the collection unchanged.
	Update(index int, s *model.Student) bool

	// Delete removes the record at index, shifting later records down.
	// Fails when index is out of bounds.
	Delete(index int) bool

	// All returns an independent copy of the collection in current order.
	// Mutating the returned slice never affects the store.
	All() []model.Student

	// Save writes the full collection to the persistence target.
	Save() bool

	// Load replaces the collection with the persisted snapshot, discarding
	// whatever is in memory. On persistence failure the collection is left
	// empty rather than raising to the caller.
	Load() bool
}
