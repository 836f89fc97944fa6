// Package view derives the visible, ordered subset of the record collection
// from the current view parameters, together with the aggregate counters.
// The derivation is a pure function of (collection, params); it never mutates
// its input and has no dependency on any rendering technology.
package view

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/dmitrijs2005/apptrack/internal/models"
)

// Counts are the aggregate counters shown above the list. Rejected records
// are counted in Total but have no bucket of their own: the counters track
// pipeline progress, not outcomes.
type Counts struct {
	Total     int
	Applied   int
	Interview int
	Offer     int
}

// Projection is the full derived view handed to the rendering bridge.
//
// Total carried alongside the visible slice lets the caller distinguish an
// empty collection from a non-empty collection whose every record was
// filtered out; the two cases get different empty-state messaging.
type Projection struct {
	// Visible is the filtered, sorted subset of the collection.
	Visible []models.Record

	Counts Counts

	// Summary is the results line, e.g. "2 shown of 5".
	Summary string
}

// collator performs locale-aware ordering for the company and status sort
// modes. Case differences alone never separate otherwise equal strings.
var collator = collate.New(language.English, collate.IgnoreCase)

// Project derives the visible list, counters and summary for the given
// collection and parameters. The input slice is not modified; sorting is
// stable, so records the active mode considers equal keep their relative
// insertion order.
func Project(records []models.Record, params Params) Projection {
	visible := make([]models.Record, 0, len(records))
	for _, r := range records {
		if !matchesQuery(r, params.Query) {
			continue
		}
		if !matchesStatus(r, params.Status) {
			continue
		}
		visible = append(visible, r)
	}

	sortVisible(visible, params.Sort)

	counts := Counts{Total: len(records)}
	for _, r := range records {
		switch r.Status {
		case models.StatusApplied:
			counts.Applied++
		case models.StatusInterview:
			counts.Interview++
		case models.StatusOffer:
			counts.Offer++
		}
	}

	return Projection{
		Visible: visible,
		Counts:  counts,
		Summary: fmt.Sprintf("%d shown of %d", len(visible), len(records)),
	}
}

// matchesQuery reports whether the query is a case-insensitive substring of
// the record's company and role taken together. An empty query matches
// everything.
func matchesQuery(r models.Record, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	haystack := strings.ToLower(r.Company + " " + r.Role)
	return strings.Contains(haystack, q)
}

func matchesStatus(r models.Record, status string) bool {
	if status == "" || status == StatusAll {
		return true
	}
	return string(r.Status) == status
}

func sortVisible(records []models.Record, mode SortMode) {
	switch mode {
	case SortOldest:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].CreatedAt.Before(records[j].CreatedAt)
		})
	case SortCompany:
		sort.SliceStable(records, func(i, j int) bool {
			return collator.CompareString(records[i].Company, records[j].Company) < 0
		})
	case SortStatus:
		// Statuses compare as plain text, not by pipeline order, so unknown
		// values slot in alphabetically instead of failing.
		sort.SliceStable(records, func(i, j int) bool {
			return collator.CompareString(string(records[i].Status), string(records[j].Status)) < 0
		})
	default: // SortNewest
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].CreatedAt.After(records[j].CreatedAt)
		})
	}
}
