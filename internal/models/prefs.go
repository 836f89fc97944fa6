package models

// Preferences holds per-user display settings, persisted independently of the
// record collection.
type Preferences struct {
	// Compact selects the dense list rendering.
	Compact bool `json:"compact"`
}

// DefaultPreferences returns the preferences used on first start and as the
// base when recovering a partially valid stored object.
func DefaultPreferences() Preferences {
	return Preferences{Compact: false}
}
