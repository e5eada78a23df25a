// Package datastore persists the single JSON document a deployment owns.
// Writes are last-write-wins with no versioning: two concurrent PUTs race
// and the later rename wins, which is accepted for single-user deployments.
package datastore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ignishealth/ignis/internal/domain"
	"github.com/ignishealth/ignis/pkg/atomicfile"
)

// ErrNotObject means a stored document was rejected because it is not a
// JSON object. Shape beyond "is an object" is deliberately not validated.
var ErrNotObject = fmt.Errorf("document is not a JSON object: %w", domain.ErrValidation)

// Store reads and writes the deployment's data document.
type Store struct {
	log  *slog.Logger
	path string
}

// NewStore creates a document store rooted in dataDir.
func NewStore(logger *slog.Logger, dataDir string) *Store {
	return &Store{
		log:  logger.With("service", "datastore"),
		path: filepath.Join(dataDir, "store.json"),
	}
}

// Get returns the persisted document. Returns domain.ErrNotFound when no
// document has been stored yet.
func (s *Store) Get(ctx context.Context) (json.RawMessage, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("datastore.Get: %w", err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, domain.ErrNotFound
	}
	return raw, nil
}

// Put overwrites the persisted document unconditionally after checking the
// payload is a JSON object. The write goes through temp-file + atomic
// rename so a crash never leaves a torn document.
func (s *Store) Put(ctx context.Context, doc json.RawMessage) error {
	if !isJSONObject(doc) {
		return ErrNotObject
	}
	if err := atomicfile.WriteFile(s.path, doc, 0o644); err != nil {
		return fmt.Errorf("datastore.Put: %w", err)
	}
	s.log.DebugContext(ctx, "document stored", slog.Int("bytes", len(doc)))
	return nil
}

// isJSONObject reports whether raw parses as a JSON object value.
func isJSONObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return false
	}
	var probe map[string]json.RawMessage
	return json.Unmarshal(trimmed, &probe) == nil
}
