package view

// SortMode selects the ordering of the visible list.
type SortMode string

const (
	SortNewest  SortMode = "newest"
	SortOldest  SortMode = "oldest"
	SortCompany SortMode = "company"
	SortStatus  SortMode = "status"
)

// Valid reports whether m is a recognized sort mode.
func (m SortMode) Valid() bool {
	switch m {
	case SortNewest, SortOldest, SortCompany, SortStatus:
		return true
	}
	return false
}

// StatusAll is the status-filter value that passes every record through.
const StatusAll = "all"

// Params are the transient view parameters. They are never persisted and
// reset to DefaultParams on every start.
type Params struct {
	// Query is matched case-insensitively as a substring of company and role.
	Query string

	// Status is either StatusAll or an exact status value to filter on.
	Status string

	// Sort is the active sort mode.
	Sort SortMode
}

// DefaultParams returns the parameters active at startup: empty query, no
// status filter, newest first.
func DefaultParams() Params {
	return Params{Query: "", Status: StatusAll, Sort: SortNewest}
}
