package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/apptrack/internal/models"
	"github.com/dmitrijs2005/apptrack/internal/view"
)

// List re-renders the current projection without changing anything.
func (a *App) List(ctx context.Context) error {
	a.render(a.store.Projection())
	return nil
}

// Show prints one record in full, including fields the list omits.
func (a *App) Show(ctx context.Context) error {
	rec, ok, err := a.pickRecord("Enter record id to show")
	if err != nil || !ok {
		return err
	}

	fmt.Fprintf(a.out, "Id:      %s\n", rec.ID)
	fmt.Fprintf(a.out, "Company: %s\n", rec.Company)
	fmt.Fprintf(a.out, "Role:    %s\n", rec.Role)
	fmt.Fprintf(a.out, "Status:  %s\n", rec.Status.Label())
	fmt.Fprintf(a.out, "Applied: %s\n", rec.DisplayDate())
	if rec.Link != "" {
		fmt.Fprintf(a.out, "Link:    %s\n", rec.Link)
	}
	if rec.Notes != "" {
		fmt.Fprintf(a.out, "Notes:   %s\n", rec.Notes)
	}
	return nil
}

// Search sets the free-text query. An empty argument clears it. The store
// notification renders the result.
func (a *App) Search(ctx context.Context, query string) error {
	params := a.store.Params()
	params.Query = strings.TrimSpace(query)
	a.store.SetParams(ctx, params)
	return nil
}

// Filter sets the status filter. "all" or an empty argument clears it.
func (a *App) Filter(ctx context.Context, status string) error {
	status = strings.TrimSpace(status)
	if status == "" {
		status = view.StatusAll
	}
	if status != view.StatusAll && !models.Status(status).Known() {
		fmt.Fprintf(a.out, "Unknown status %q (known: %s, %s, %s, %s)\n", status,
			models.StatusApplied, models.StatusInterview, models.StatusOffer, models.StatusRejected)
		return nil
	}

	params := a.store.Params()
	params.Status = status
	a.store.SetParams(ctx, params)
	return nil
}

// Sort sets the sort mode.
func (a *App) Sort(ctx context.Context, mode string) error {
	m := view.SortMode(strings.TrimSpace(mode))
	if !m.Valid() {
		fmt.Fprintf(a.out, "Unknown sort mode %q (known: %s, %s, %s, %s)\n", mode,
			view.SortNewest, view.SortOldest, view.SortCompany, view.SortStatus)
		return nil
	}

	params := a.store.Params()
	params.Sort = m
	a.store.SetParams(ctx, params)
	return nil
}

// ToggleCompact flips the compact display preference.
func (a *App) ToggleCompact(ctx context.Context) error {
	prefs, err := a.store.TogglePreference(ctx, "compact")
	if err != nil {
		a.log.Error(ctx, "error toggling preference", "error", err)
		return err
	}

	if prefs.Compact {
		fmt.Fprintln(a.out, "Compact mode on.")
	} else {
		fmt.Fprintln(a.out, "Compact mode off.")
	}
	return nil
}
