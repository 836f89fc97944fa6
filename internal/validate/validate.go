// Package validate checks candidate record payloads before they are allowed
// into the store. Validation is kept apart from storage so the rules can
// change without touching persistence.
package validate

import (
	"net/url"
	"strings"

	"github.com/dmitrijs2005/apptrack/internal/models"
)

// Payload is a candidate record as entered by the user, before an identity
// has been assigned.
type Payload struct {
	Company string
	Role    string
	Status  models.Status
	Date    string
	Link    string
	Notes   string
}

// Normalize trims surrounding whitespace from every text field. It is applied
// before validation and before storage, so no leading or trailing whitespace
// is ever persisted.
func (p Payload) Normalize() Payload {
	p.Company = strings.TrimSpace(p.Company)
	p.Role = strings.TrimSpace(p.Role)
	p.Status = models.Status(strings.TrimSpace(string(p.Status)))
	p.Date = strings.TrimSpace(p.Date)
	p.Link = strings.TrimSpace(p.Link)
	p.Notes = strings.TrimSpace(p.Notes)
	return p
}

// FieldErrors maps a field name to a human-readable problem description.
// An empty map means the payload is acceptable.
type FieldErrors map[string]string

// Check validates a normalized payload. All rules are evaluated
// independently; a failure in one field never hides a failure in another.
//
// Status is only required to be present. Values outside the known
// enumeration pass deliberately: stored collections may already contain such
// values and the view layer renders them as "Unknown".
func Check(p Payload) FieldErrors {
	errs := FieldErrors{}

	if len([]rune(p.Company)) < 2 {
		errs["company"] = "company must be at least 2 characters"
	}
	if len([]rune(p.Role)) < 2 {
		errs["role"] = "role must be at least 2 characters"
	}
	if p.Status == "" {
		errs["status"] = "status is required"
	}
	if p.Link != "" && !isAbsoluteURL(p.Link) {
		errs["link"] = "link must be a valid absolute URL"
	}

	return errs
}

func isAbsoluteURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.Scheme != "" && u.Host != ""
}
