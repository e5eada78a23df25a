package tracker

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/ignishealth/ignis/internal/domain"
	"github.com/ignishealth/ignis/internal/localstore"
)

// AuthStatus reports whether the remote server accepted our session.
type AuthStatus string

const (
	StatusUnknown         AuthStatus = "unknown"
	StatusAuthenticated   AuthStatus = "authenticated"
	StatusUnauthenticated AuthStatus = "unauthenticated"
)

type remoteStore interface {
	GetData(ctx context.Context) (json.RawMessage, error)
	PutData(ctx context.Context, doc json.RawMessage) error
}

// Store owns the canonical in-memory UserData. Every mutation goes
// through Update, which mirrors the new state to the local cell and,
// when a remote session is live, arms a debounced push so bursts of
// edits collapse into one request.
type Store struct {
	log    *slog.Logger
	cell   *localstore.Cell
	remote remoteStore

	pushTimeout time.Duration
	debouncer   *Debouncer

	mu     sync.Mutex
	data   domain.UserData
	status AuthStatus
}

// New builds a Store seeded from the local cell. The loaded state is
// repaired before use so the rest of the app never sees a partial shape.
func New(logger *slog.Logger, cell *localstore.Cell, remote remoteStore, debounce, pushTimeout time.Duration) *Store {
	data := cell.Get()
	data.Repair()
	cell.Set(data)

	s := &Store{
		log:         logger,
		cell:        cell,
		remote:      remote,
		pushTimeout: pushTimeout,
		data:        data,
		status:      StatusUnknown,
	}
	s.debouncer = NewDebouncer(debounce, s.push)
	return s
}

// Status returns the last known authentication state.
func (s *Store) Status() AuthStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Get returns a snapshot of the canonical state.
func (s *Store) Get() domain.UserData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data
}

// ConnectRemote pulls the server copy and reconciles. A successful fetch
// marks the session authenticated; a non-empty payload replaces the
// local state after repair. Fetch failures leave local state untouched
// and mark the session unauthenticated.
func (s *Store) ConnectRemote(ctx context.Context) error {
	raw, err := s.remote.GetData(ctx)
	if err != nil {
		s.mu.Lock()
		s.status = StatusUnauthenticated
		s.mu.Unlock()
		return fmt.Errorf("fetch remote data: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = StatusAuthenticated

	if len(raw) == 0 {
		// Fresh account on the server side, keep whatever we have.
		return nil
	}

	var data domain.UserData
	if err := json.Unmarshal(raw, &data); err != nil {
		s.log.Warn("remote data is not parseable, keeping local state", slog.String("error", err.Error()))
		return nil
	}
	data.Repair()
	s.data = data
	s.cell.Set(data)
	return nil
}

// Disconnect marks the session gone and drops any pending push.
func (s *Store) Disconnect() {
	s.debouncer.Cancel()
	s.mu.Lock()
	s.status = StatusUnauthenticated
	s.mu.Unlock()
}

// Update applies fn to a copy of the canonical state, commits the
// result, mirrors it locally and arms the debounced push when a session
// is live. The mirror happens under the same lock as the commit so the
// local file always holds the newest committed state.
func (s *Store) Update(fn func(*domain.UserData)) {
	s.mu.Lock()
	data := s.data
	fn(&data)
	s.data = data
	authed := s.status == StatusAuthenticated
	s.cell.Set(data)
	s.mu.Unlock()

	if authed {
		s.debouncer.Arm()
	}
}

// CompleteProfile runs the setup flow against the canonical state.
func (s *Store) CompleteProfile(in domain.ProfileInput) error {
	if err := in.Validate(); err != nil {
		return err
	}
	s.Update(func(d *domain.UserData) {
		d.CompleteProfile(in, domain.Today())
	})
	return nil
}

// LogFood records eaten food under the given meal slot for today.
func (s *Store) LogFood(slot domain.MealSlot, food domain.LoggedFood) {
	s.Update(func(d *domain.UserData) {
		d.LogFood(slot, food, domain.Today())
	})
}

// RecordWeight appends (or replaces, for a same-day entry) a weight
// measurement dated today.
func (s *Store) RecordWeight(value float64) {
	s.Update(func(d *domain.UserData) {
		d.WeightHistory = domain.RecordMetric(d.WeightHistory, value, domain.Today())
	})
}

// RecordBodyFat appends a body fat percentage dated today.
func (s *Store) RecordBodyFat(value float64) {
	s.Update(func(d *domain.UserData) {
		d.BodyFatHistory = domain.RecordMetric(d.BodyFatHistory, value, domain.Today())
	})
}

// ResetSupplementsIfStale clears the taken-today checklist when its date
// is not today. Reports whether anything changed.
func (s *Store) ResetSupplementsIfStale() bool {
	changed := false
	s.Update(func(d *domain.UserData) {
		changed = d.ResetSupplementsIfStale(domain.Today())
	})
	return changed
}

// SyncNow pushes the current state immediately, bypassing the debounce.
func (s *Store) SyncNow(ctx context.Context) error {
	s.debouncer.Cancel()
	doc, err := s.marshal()
	if err != nil {
		return err
	}
	if err := s.remote.PutData(ctx, doc); err != nil {
		return fmt.Errorf("push data: %w", err)
	}
	return nil
}

// Export writes the current state as JSON to w.
func (s *Store) Export(w io.Writer) error {
	s.mu.Lock()
	data := s.data
	s.mu.Unlock()

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("encode export: %w", err)
	}
	return nil
}

// Import replaces the canonical state with the document read from r.
// The document must be a full backup, recognised by the presence of the
// isProfileComplete field.
func (s *Store) Import(r io.Reader) error {
	raw, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read import: %w", err)
	}

	var probe map[string]json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil {
		return fmt.Errorf("%w: import is not a JSON object", domain.ErrValidation)
	}
	if _, ok := probe["isProfileComplete"]; !ok {
		return fmt.Errorf("%w: import does not look like a backup", domain.ErrValidation)
	}

	var data domain.UserData
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("%w: import does not match the expected shape", domain.ErrValidation)
	}
	data.Repair()

	s.mu.Lock()
	s.data = data
	authed := s.status == StatusAuthenticated
	s.cell.Set(data)
	s.mu.Unlock()

	if authed {
		s.debouncer.Arm()
	}
	return nil
}

// Close flushes nothing and drops any pending push.
func (s *Store) Close() {
	s.debouncer.Close()
}

func (s *Store) marshal() (json.RawMessage, error) {
	s.mu.Lock()
	data := s.data
	s.mu.Unlock()

	doc, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("marshal user data: %w", err)
	}
	return doc, nil
}

func (s *Store) push() {
	doc, err := s.marshal()
	if err != nil {
		s.log.Error("sync push skipped", slog.String("error", err.Error()))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.pushTimeout)
	defer cancel()

	if err := s.remote.PutData(ctx, doc); err != nil {
		s.log.Warn("sync push failed", slog.String("error", err.Error()))
		return
	}
	s.log.Debug("sync push done", slog.Int("bytes", len(doc)))
}
