package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/apptrack/internal/models"
	"github.com/dmitrijs2005/apptrack/internal/seed"
)

// Delete removes one record after explicit confirmation. The confirmation is
// owned here; the store itself never asks.
func (a *App) Delete(ctx context.Context) error {
	rec, ok, err := a.pickRecord("Enter record id to delete")
	if err != nil || !ok {
		return err
	}

	prompt := fmt.Sprintf("Delete %s at %s?", rec.Role, rec.Company)
	if !GetConfirmation(a.reader, prompt, a.out) {
		fmt.Fprintln(a.out, "Kept.")
		return nil
	}

	a.store.Delete(ctx, rec.ID)
	return nil
}

// Clear empties the whole collection after confirmation.
func (a *App) Clear(ctx context.Context) error {
	if !GetConfirmation(a.reader, "Delete ALL applications?", a.out) {
		fmt.Fprintln(a.out, "Kept.")
		return nil
	}

	a.store.ReplaceAll(ctx, []models.Record{})
	return nil
}

// Seed replaces the collection with the demo fixture after confirmation,
// since seeding discards whatever is currently stored.
func (a *App) Seed(ctx context.Context) error {
	if !GetConfirmation(a.reader, "Replace the current collection with demo data?", a.out) {
		fmt.Fprintln(a.out, "Kept.")
		return nil
	}

	records, err := seed.Records(time.Now())
	if err != nil {
		a.log.Error(ctx, "failed to build demo data", "error", err)
		fmt.Fprintln(a.out, "Demo data is unavailable.")
		return err
	}

	a.store.ReplaceAll(ctx, records)
	return nil
}
