// Package knowledge owns the persisted knowledge document: a single
// record of which concepts a given owner already understands.
//
// The document is always schema-valid when observable: Read validates
// after loading, Write validates before touching storage. No partially
// constructed document ever reaches a capability handler.
package knowledge

import (
	"errors"
	"fmt"
)

// Document is the persisted entity. Exactly two top-level fields on
// disk; anything else fails validation.
type Document struct {
	// OwnerID identifies whose knowledge this is. Opaque, non-empty.
	OwnerID string `json:"ownerId"`
	// KnownConcepts maps a concept name to its "known" flag. Concept
	// names are compared by exact string equality — no normalization.
	KnownConcepts map[string]bool `json:"knownConcepts"`
}

// Store failure taxonomy. Test with errors.Is.
var (
	// ErrStoreUnavailable means the backing medium could not be
	// accessed, e.g. missing file on first run with no seed.
	ErrStoreUnavailable = errors.New("knowledge store unavailable")

	// ErrCorruptState means the persisted record failed schema
	// validation on read.
	ErrCorruptState = errors.New("knowledge document corrupt")

	// ErrInvalidDocument means a document failed validation before a
	// write; storage is left untouched.
	ErrInvalidDocument = errors.New("knowledge document invalid")
)

// Validate checks the in-memory document against the schema.
func (d *Document) Validate() error {
	if d.OwnerID == "" {
		return fmt.Errorf("ownerId must be a non-empty string")
	}
	if d.KnownConcepts == nil {
		return fmt.Errorf("knownConcepts mapping is missing")
	}
	return nil
}

// NewDocument creates a valid, empty document for the given owner.
// Used to seed the store before the first read.
func NewDocument(ownerID string) *Document {
	return &Document{
		OwnerID:       ownerID,
		KnownConcepts: map[string]bool{},
	}
}
