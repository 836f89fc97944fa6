package cli

import (
	"context"
	"fmt"
	"sort"

	"github.com/dmitrijs2005/apptrack/internal/models"
	"github.com/dmitrijs2005/apptrack/internal/validate"
)

// Add prompts for a new application, validates it and, if acceptable, hands
// it to the store. Validation failures are reported per field and leave the
// collection untouched.
func (a *App) Add(ctx context.Context) error {
	payload, err := a.promptPayload(validate.Payload{})
	if err != nil {
		a.log.Warn(ctx, "input aborted", "error", err)
		return err
	}

	payload = payload.Normalize()
	if errs := validate.Check(payload); len(errs) > 0 {
		a.printFieldErrors(errs)
		return nil
	}

	rec := a.store.Create(ctx, payload)
	fmt.Fprintf(a.out, "Added %s at %s (id %s)\n", rec.Role, rec.Company, shortID(rec.ID))
	return nil
}

// promptPayload collects every record field. Values from prev are offered as
// defaults, so the same prompts serve both add (zero prev) and edit.
func (a *App) promptPayload(prev validate.Payload) (validate.Payload, error) {
	var p validate.Payload
	var err error

	if p.Company, err = GetTextWithDefault(a.reader, "Company", prev.Company, a.out); err != nil {
		return p, err
	}
	if p.Role, err = GetTextWithDefault(a.reader, "Role", prev.Role, a.out); err != nil {
		return p, err
	}

	statusPrompt := fmt.Sprintf("Status (%s/%s/%s/%s)",
		models.StatusApplied, models.StatusInterview, models.StatusOffer, models.StatusRejected)
	status, err := GetTextWithDefault(a.reader, statusPrompt, string(prev.Status), a.out)
	if err != nil {
		return p, err
	}
	p.Status = models.Status(status)

	if p.Date, err = GetTextWithDefault(a.reader, "Date applied (YYYY-MM-DD, optional)", prev.Date, a.out); err != nil {
		return p, err
	}
	if p.Link, err = GetTextWithDefault(a.reader, "Link (optional)", prev.Link, a.out); err != nil {
		return p, err
	}
	if p.Notes, err = GetMultiline(a.reader, "Notes (optional)", a.out); err != nil {
		return p, err
	}
	if p.Notes == "" {
		p.Notes = prev.Notes
	}

	return p, nil
}

func (a *App) printFieldErrors(errs validate.FieldErrors) {
	fields := make([]string, 0, len(errs))
	for f := range errs {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	fmt.Fprintln(a.out, "Not saved:")
	for _, f := range fields {
		fmt.Fprintf(a.out, "  %s: %s\n", f, errs[f])
	}
}
