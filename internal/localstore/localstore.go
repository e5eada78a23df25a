// Package localstore is the client-side persistence adapter: one JSON
// document in a file, mirroring every state update synchronously. Callers
// use it like an in-memory state cell; persistence is a side effect they
// never see, short of a log line when a write fails.
package localstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/ignishealth/ignis/internal/domain"
	"github.com/ignishealth/ignis/pkg/atomicfile"
)

// Cell holds the locally persisted UserData document.
type Cell struct {
	log  *slog.Logger
	path string

	mu   sync.Mutex
	data domain.UserData
}

// Open loads the document at path, falling back to defaults when the file
// is absent or unparseable. The fallback is written back immediately so
// subsequent reads are consistent.
func Open(logger *slog.Logger, path string, defaults domain.UserData) (*Cell, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("localstore: create dir: %w", err)
	}

	c := &Cell{
		log:  logger.With("component", "localstore"),
		path: path,
		data: defaults,
	}

	raw, err := os.ReadFile(path)
	switch {
	case err == nil:
		var loaded domain.UserData
		if jsonErr := json.Unmarshal(raw, &loaded); jsonErr != nil {
			c.log.Warn("stored document unparseable, using defaults", slog.String("error", jsonErr.Error()))
			c.persist()
		} else {
			c.data = loaded
		}
	case errors.Is(err, os.ErrNotExist):
		c.persist()
	default:
		return nil, fmt.Errorf("localstore: read %s: %w", path, err)
	}

	return c, nil
}

// Get returns a copy of the stored document.
func (c *Cell) Get() domain.UserData {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.data
}

// Set replaces the stored document and mirrors it to disk. Write failures
// are logged, not returned: the in-memory value is already updated and the
// caller's operation should not fail over a persistence hiccup.
func (c *Cell) Set(data domain.UserData) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = data
	c.persist()
}

// persist writes the current value. Callers must hold mu (or be inside Open).
func (c *Cell) persist() {
	raw, err := json.Marshal(c.data)
	if err != nil {
		c.log.Error("marshal document", slog.String("error", err.Error()))
		return
	}
	if err := atomicfile.WriteFile(c.path, raw, 0o644); err != nil {
		c.log.Error("persist document", slog.String("error", err.Error()))
	}
}
