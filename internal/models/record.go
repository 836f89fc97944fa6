// Package models defines the application-tracker data types shared by the
// store, projector and rendering layers.
package models

import "time"

// Status is the pipeline stage of one application record.
//
// The set of known values is closed, but values outside it are tolerated:
// records recovered from older storage may carry statuses that are no longer
// (or not yet) part of the enumeration, and those must round-trip verbatim.
type Status string

const (
	StatusApplied   Status = "applied"
	StatusInterview Status = "interview"
	StatusOffer     Status = "offer"
	StatusRejected  Status = "rejected"
)

// Known reports whether s is a member of the current enumeration.
func (s Status) Known() bool {
	switch s {
	case StatusApplied, StatusInterview, StatusOffer, StatusRejected:
		return true
	}
	return false
}

// Label returns the human-readable form of the status. Unrecognized values
// render as "Unknown" but are never normalized in the stored data.
func (s Status) Label() string {
	switch s {
	case StatusApplied:
		return "Applied"
	case StatusInterview:
		return "Interview"
	case StatusOffer:
		return "Offer"
	case StatusRejected:
		return "Rejected"
	}
	return "Unknown"
}

// DateLayout is the canonical, machine-sortable form of the optional
// application date. Localized display is a rendering concern.
const DateLayout = "2006-01-02"

// Record is one job-application entry.
type Record struct {
	// ID is a globally unique identifier assigned at creation. Immutable,
	// never reused.
	ID string `json:"id"`

	// CreatedAt is assigned monotonically at insert time and serves as the
	// default sort key.
	CreatedAt time.Time `json:"createdAt"`

	Company string `json:"company"`
	Role    string `json:"role"`
	Status  Status `json:"status"`

	// Date is the application date in DateLayout form, empty if not set.
	Date string `json:"date,omitempty"`

	// Link is an absolute URL to the posting, empty if not set.
	Link string `json:"link,omitempty"`

	Notes string `json:"notes,omitempty"`
}

// DisplayDate renders Date in a localized day-month-year form, or "—" when
// the date is absent or not in canonical form.
func (r Record) DisplayDate() string {
	if r.Date == "" {
		return "—"
	}
	t, err := time.Parse(DateLayout, r.Date)
	if err != nil {
		return "—"
	}
	return t.Format("2 Jan 2006")
}
