package localstore

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/ignishealth/ignis/internal/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestOpen_MissingFileWritesDefaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "state.json")
	defaults := domain.DefaultUserData()

	c, err := Open(discardLogger(), path, defaults)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	if got := c.Get(); got.Age != defaults.Age {
		t.Errorf("expected defaults, got %+v", got)
	}

	// Defaults were written back so a second open reads the same thing.
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected file to exist: %v", err)
	}
	var onDisk domain.UserData
	if err := json.Unmarshal(raw, &onDisk); err != nil {
		t.Fatalf("unmarshal written defaults: %v", err)
	}
	if onDisk.Age != defaults.Age {
		t.Errorf("on-disk defaults mismatch: %+v", onDisk)
	}
}

func TestOpen_CorruptFileFallsBack(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "state.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("seed corrupt file: %v", err)
	}

	c, err := Open(discardLogger(), path, domain.DefaultUserData())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if got := c.Get(); got.Gender != "male" {
		t.Errorf("expected defaults after corrupt read, got %+v", got)
	}

	// The corrupt content was replaced.
	raw, _ := os.ReadFile(path)
	if !json.Valid(raw) {
		t.Error("expected valid JSON written back")
	}
}

func TestSet_PersistsEveryUpdate(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "state.json")
	c, err := Open(discardLogger(), path, domain.DefaultUserData())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	data := c.Get()
	data.IsProfileComplete = true
	data.Inventory = append(data.Inventory, domain.FoodItem{ID: "1", Name: "Oats", Category: domain.CategoryFood})
	c.Set(data)

	// A fresh cell sees the update.
	c2, err := Open(discardLogger(), path, domain.DefaultUserData())
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	got := c2.Get()
	if !got.IsProfileComplete {
		t.Error("expected persisted profile flag")
	}
	if len(got.Inventory) != 1 || got.Inventory[0].Name != "Oats" {
		t.Errorf("expected persisted inventory, got %+v", got.Inventory)
	}
}
