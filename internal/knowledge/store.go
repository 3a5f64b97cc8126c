package knowledge

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Store defines the persistence contract for the knowledge document.
// Abstracted for testability (DIP).
type Store interface {
	// Read loads and validates the backing record.
	Read() (*Document, error)
	// Write validates doc and durably replaces the prior record as a
	// whole. Last writer wins; no merge.
	Write(doc *Document) error
	// Update is the only sanctioned single-concept mutation:
	// read, set KnownConcepts[concept] = known, write.
	Update(concept string, known bool) error
}

// FileStore implements Store on a single JSON file.
//
// Update is a plain read-modify-write with no isolation against
// writers outside this process: the server's dispatch loop runs one
// invocation at a time, so this is an at-most-single-writer design.
// Concurrent external modification of the file can lose updates.
type FileStore struct {
	path string
}

// NewFileStore creates a store backed by the JSON file at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file location.
func (fs *FileStore) Path() string {
	return fs.path
}

// Read implements Store. A missing or unreadable file is
// ErrStoreUnavailable; a file that parses but violates the schema
// (wrong types, unknown fields, empty ownerId) is ErrCorruptState.
func (fs *FileStore) Read() (*Document, error) {
	data, err := os.ReadFile(fs.path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrStoreUnavailable, fs.path, err)
	}

	var doc Document
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptState, err)
	}
	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptState, err)
	}
	return &doc, nil
}

// Write implements Store. Validation failures surface as
// ErrInvalidDocument before storage is touched. The record is replaced
// atomically as a whole: written to a temp file in the same directory,
// then renamed over the previous one.
func (fs *FileStore) Write(doc *Document) error {
	if err := doc.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling document: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(fs.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: creating %s: %v", ErrStoreUnavailable, dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".knowledge-*.json")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if err := os.Rename(tmpName, fs.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}

// Update implements Store. Inserts the concept if absent, overwrites
// if present.
func (fs *FileStore) Update(concept string, known bool) error {
	doc, err := fs.Read()
	if err != nil {
		return err
	}
	doc.KnownConcepts[concept] = known
	return fs.Write(doc)
}

// Render serializes a document the way every read path must: both the
// read-state action and the knowledge-state resource return exactly
// this output, byte for byte.
func Render(doc *Document) (string, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("rendering document: %w", err)
	}
	return string(data), nil
}
