// Package store owns the canonical in-memory record collection and the
// current view parameters. Every mutation is written through to durable
// storage and followed by a change notification carrying the freshly derived
// projection, so stored state, in-memory state and rendered output can never
// drift apart.
package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/apptrack/internal/common"
	"github.com/dmitrijs2005/apptrack/internal/models"
	"github.com/dmitrijs2005/apptrack/internal/persist"
	"github.com/dmitrijs2005/apptrack/internal/validate"
	"github.com/dmitrijs2005/apptrack/internal/view"
)

// ChangeFunc receives the derived view after every successful mutation or
// view-parameter change. The rendering bridge registers one; the store never
// touches any rendering technology itself.
type ChangeFunc func(view.Projection)

// Store is instantiated once per session and injected into its consumers.
// The collection and preferences are owned exclusively by the store; other
// components reach them only through its methods.
//
// The listener runs outside the store's lock, so it may freely read back
// through the store. A read issued from inside the notification always
// observes the mutation that triggered it: persistence and projection both
// complete before the listener is invoked.
type Store struct {
	mu      sync.Mutex
	adapter *persist.Adapter

	records []models.Record
	prefs   models.Preferences
	params  view.Params

	// lastCreatedAt enforces monotonic CreatedAt assignment even when the
	// clock does not advance between two inserts.
	lastCreatedAt time.Time

	onChange ChangeFunc
}

// New loads the persisted collection and preferences through the adapter and
// returns a store with default view parameters.
func New(ctx context.Context, adapter *persist.Adapter) *Store {
	return &Store{
		adapter: adapter,
		records: adapter.LoadRecords(ctx),
		prefs:   adapter.LoadPrefs(ctx),
		params:  view.DefaultParams(),
	}
}

// OnChange registers the change listener. Passing nil disables notification.
func (s *Store) OnChange(fn ChangeFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = fn
}

// List returns a snapshot of the canonical collection in its current held
// order (newest first, since Create prepends).
func (s *Store) List() []models.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Record, len(s.records))
	copy(out, s.records)
	return out
}

// Create inserts a new record built from a payload that has already passed
// validation. It assigns a fresh unique id and a monotonic creation
// timestamp, prepends the record, persists and notifies.
func (s *Store) Create(ctx context.Context, p validate.Payload) models.Record {
	p = p.Normalize()

	s.mu.Lock()
	rec := models.Record{
		ID:        uuid.NewString(),
		CreatedAt: s.nextCreatedAt(),
		Company:   p.Company,
		Role:      p.Role,
		Status:    p.Status,
		Date:      p.Date,
		Link:      p.Link,
		Notes:     p.Notes,
	}
	s.records = append([]models.Record{rec}, s.records...)
	notify := s.persistLocked(ctx)
	s.mu.Unlock()

	notify()
	return rec
}

// Update replaces every payload field on the record matching id, preserving
// its identity and creation time. It fails with common.ErrorNotFound when no
// record has that id; this signals an invariant violation, since ids are
// sourced from the current list.
func (s *Store) Update(ctx context.Context, id string, p validate.Payload) (models.Record, error) {
	p = p.Normalize()

	s.mu.Lock()
	idx := -1
	for i := range s.records {
		if s.records[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return models.Record{}, fmt.Errorf("record %s: %w", id, common.ErrorNotFound)
	}

	rec := &s.records[idx]
	rec.Company = p.Company
	rec.Role = p.Role
	rec.Status = p.Status
	rec.Date = p.Date
	rec.Link = p.Link
	rec.Notes = p.Notes
	updated := *rec

	notify := s.persistLocked(ctx)
	s.mu.Unlock()

	notify()
	return updated, nil
}

// Delete removes the record matching id. A missing id is a harmless no-op,
// not an error; the collection is still persisted so deletes stay
// write-through even when nothing changed.
func (s *Store) Delete(ctx context.Context, id string) {
	s.mu.Lock()
	for i := range s.records {
		if s.records[i].ID == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			break
		}
	}
	notify := s.persistLocked(ctx)
	s.mu.Unlock()

	notify()
}

// ReplaceAll swaps the whole collection, used by the demo-seed and clear-all
// operations. The caller is responsible for any user confirmation.
func (s *Store) ReplaceAll(ctx context.Context, records []models.Record) {
	s.mu.Lock()
	s.records = make([]models.Record, len(records))
	copy(s.records, records)
	notify := s.persistLocked(ctx)
	s.mu.Unlock()

	notify()
}

// Params returns the current view parameters.
func (s *Store) Params() view.Params {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.params
}

// SetParams replaces the view parameters and notifies with the re-derived
// projection. Parameters are ephemeral and never persisted.
func (s *Store) SetParams(ctx context.Context, params view.Params) {
	s.mu.Lock()
	if !params.Sort.Valid() {
		params.Sort = view.SortNewest
	}
	if params.Status == "" {
		params.Status = view.StatusAll
	}
	s.params = params
	notify := s.notifyLocked()
	s.mu.Unlock()

	notify()
}

// Preferences returns the current preferences object.
func (s *Store) Preferences() models.Preferences {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prefs
}

// TogglePreference flips the named boolean preference, persists it and
// notifies so the bridge can re-render with the new density.
func (s *Store) TogglePreference(ctx context.Context, name string) (models.Preferences, error) {
	s.mu.Lock()
	switch name {
	case "compact":
		s.prefs.Compact = !s.prefs.Compact
	default:
		prefs := s.prefs
		s.mu.Unlock()
		return prefs, fmt.Errorf("preference %s: %w", name, common.ErrorUnknownPreference)
	}

	s.adapter.SavePrefs(ctx, s.prefs)
	prefs := s.prefs
	notify := s.notifyLocked()
	s.mu.Unlock()

	notify()
	return prefs, nil
}

// Projection derives the current view without mutating anything.
func (s *Store) Projection() view.Projection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return view.Project(s.records, s.params)
}

// nextCreatedAt returns the current time, nudged forward when the clock has
// not advanced past the previous assignment. Callers hold s.mu.
func (s *Store) nextCreatedAt() time.Time {
	now := time.Now().UTC()
	if !now.After(s.lastCreatedAt) {
		now = s.lastCreatedAt.Add(time.Nanosecond)
	}
	s.lastCreatedAt = now
	return now
}

// persistLocked writes the collection through to storage and returns the
// pending notification. Persisting happens inside the mutating call; the
// returned func is invoked by the caller after releasing the lock, so the
// listener can read back through the store. Callers hold s.mu.
func (s *Store) persistLocked(ctx context.Context) func() {
	s.adapter.SaveRecords(ctx, s.records)
	return s.notifyLocked()
}

// notifyLocked derives the projection under the lock and defers delivery to
// the returned func. Callers hold s.mu.
func (s *Store) notifyLocked() func() {
	if s.onChange == nil {
		return func() {}
	}
	fn := s.onChange
	p := view.Project(s.records, s.params)
	return func() { fn(p) }
}
