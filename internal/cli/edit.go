package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/apptrack/internal/common"
	"github.com/dmitrijs2005/apptrack/internal/models"
	"github.com/dmitrijs2005/apptrack/internal/validate"
)

// Edit prompts for a record id and replacement field values. Empty answers
// keep the current value; identity and creation time are never touched.
func (a *App) Edit(ctx context.Context) error {
	rec, ok, err := a.pickRecord("Enter record id to edit")
	if err != nil || !ok {
		return err
	}

	prev := validate.Payload{
		Company: rec.Company,
		Role:    rec.Role,
		Status:  rec.Status,
		Date:    rec.Date,
		Link:    rec.Link,
		Notes:   rec.Notes,
	}

	payload, err := a.promptPayload(prev)
	if err != nil {
		a.log.Warn(ctx, "input aborted", "error", err)
		return err
	}

	payload = payload.Normalize()
	if errs := validate.Check(payload); len(errs) > 0 {
		a.printFieldErrors(errs)
		return nil
	}

	updated, err := a.store.Update(ctx, rec.ID, payload)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			fmt.Fprintln(a.out, "Record disappeared while editing, nothing changed.")
			return nil
		}
		return err
	}

	fmt.Fprintf(a.out, "Updated %s at %s\n", updated.Role, updated.Company)
	return nil
}

// pickRecord prompts for an id and resolves it against the current list.
// Both the full id and the unique short prefix shown in the list are
// accepted. ok is false when nothing matched (already reported to the user).
func (a *App) pickRecord(prompt string) (models.Record, bool, error) {
	id, err := GetSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return models.Record{}, false, err
	}

	var match models.Record
	var found int
	for _, r := range a.store.List() {
		if r.ID == id {
			return r, true, nil
		}
		if len(id) >= 4 && len(id) < len(r.ID) && r.ID[:len(id)] == id {
			match = r
			found++
		}
	}

	switch found {
	case 1:
		return match, true, nil
	case 0:
		fmt.Fprintf(a.out, "No record with id %s\n", id)
	default:
		fmt.Fprintf(a.out, "Id prefix %s is ambiguous, enter more characters\n", id)
	}
	return models.Record{}, false, nil
}
