// Package persist is the adapter between the record store and the durable
// key-value facility. It serializes the whole collection (and the
// preferences object) as JSON text under two fixed, versioned keys.
//
// Reads are fail-safe: a missing key, malformed JSON or a blob of the wrong
// shape all come back as "no data". Corrupt storage must never crash
// startup, so recovery is defaulting, not an error path.
package persist

import (
	"context"
	"encoding/json"

	"github.com/dmitrijs2005/apptrack/internal/localstore"
	"github.com/dmitrijs2005/apptrack/internal/logging"
	"github.com/dmitrijs2005/apptrack/internal/models"
)

// Storage keys are suffixed with a format version so a future layout change
// can use fresh keys instead of migrating old blobs.
const (
	RecordsKey = "apptrack.records.v1"
	PrefsKey   = "apptrack.prefs.v1"
)

// Adapter reads and writes the two storage entries. It is the only component
// that touches the KV facility.
type Adapter struct {
	kv  localstore.KV
	log logging.Logger
}

func NewAdapter(kv localstore.KV, log logging.Logger) *Adapter {
	return &Adapter{kv: kv, log: log}
}

// LoadRecords returns the persisted collection, or an empty one when the
// entry is absent or unreadable.
func (a *Adapter) LoadRecords(ctx context.Context) []models.Record {
	raw, ok, err := a.kv.Get(ctx, RecordsKey)
	if err != nil {
		a.log.Warn(ctx, "failed to read records entry, starting empty", "error", err)
		return []models.Record{}
	}
	if !ok {
		return []models.Record{}
	}

	var records []models.Record
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		a.log.Warn(ctx, "records entry is corrupt, starting empty", "error", err)
		return []models.Record{}
	}
	if records == nil {
		records = []models.Record{}
	}

	return records
}

// SaveRecords replaces the records entry with the given collection. Called
// synchronously after every mutation, never batched.
func (a *Adapter) SaveRecords(ctx context.Context, records []models.Record) {
	data, err := json.Marshal(records)
	if err != nil {
		a.log.Error(ctx, "failed to serialize records", "error", err)
		return
	}
	if err := a.kv.Set(ctx, RecordsKey, string(data)); err != nil {
		a.log.Error(ctx, "failed to persist records", "error", err)
	}
}

// LoadPrefs returns the persisted preferences merged over the defaults: a
// partially valid stored object keeps default values for the fields it does
// not carry.
func (a *Adapter) LoadPrefs(ctx context.Context) models.Preferences {
	prefs := models.DefaultPreferences()

	raw, ok, err := a.kv.Get(ctx, PrefsKey)
	if err != nil {
		a.log.Warn(ctx, "failed to read preferences entry, using defaults", "error", err)
		return prefs
	}
	if !ok {
		return prefs
	}

	if err := json.Unmarshal([]byte(raw), &prefs); err != nil {
		a.log.Warn(ctx, "preferences entry is corrupt, using defaults", "error", err)
		return models.DefaultPreferences()
	}

	return prefs
}

// SavePrefs replaces the preferences entry.
func (a *Adapter) SavePrefs(ctx context.Context, prefs models.Preferences) {
	data, err := json.Marshal(prefs)
	if err != nil {
		a.log.Error(ctx, "failed to serialize preferences", "error", err)
		return
	}
	if err := a.kv.Set(ctx, PrefsKey, string(data)); err != nil {
		a.log.Error(ctx, "failed to persist preferences", "error", err)
	}
}
