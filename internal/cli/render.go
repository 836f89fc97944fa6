package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/apptrack/internal/view"
)

// render writes the projection to the output. It is registered as the
// store's change hook, so it runs after every mutation and view-parameter
// change without any command having to ask for it.
func (a *App) render(p view.Projection) {
	if p.Counts.Total == 0 {
		fmt.Fprintln(a.out, "No applications yet. Type 'add' to create one, or 'seed' for demo data.")
		return
	}

	if len(p.Visible) == 0 {
		fmt.Fprintln(a.out, "No applications match the current filters.")
	} else if a.store.Preferences().Compact {
		for _, r := range p.Visible {
			fmt.Fprintf(a.out, "%s  %s / %s [%s]\n", shortID(r.ID), r.Company, r.Role, r.Status.Label())
		}
	} else {
		w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tCOMPANY\tROLE\tSTATUS\tDATE")
		for _, r := range p.Visible {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				shortID(r.ID), r.Company, r.Role, r.Status.Label(), r.DisplayDate())
		}
		w.Flush()
	}

	fmt.Fprintf(a.out, "%s | total %d | applied %d | interview %d | offer %d\n",
		p.Summary, p.Counts.Total, p.Counts.Applied, p.Counts.Interview, p.Counts.Offer)
}

// shortID is the display form of a record id. Commands accept either the
// short or the full form.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// getStatus summarizes the non-default view parameters for the prompt.
func (a *App) getStatus() string {
	params := a.store.Params()

	var parts []string
	if params.Query != "" {
		parts = append(parts, "q:"+params.Query)
	}
	if params.Status != view.StatusAll {
		parts = append(parts, "status:"+params.Status)
	}
	if params.Sort != view.SortNewest {
		parts = append(parts, "sort:"+string(params.Sort))
	}
	if a.store.Preferences().Compact {
		parts = append(parts, "compact")
	}

	if len(parts) == 0 {
		return ""
	}
	return fmt.Sprintf("(%s)", strings.Join(parts, " "))
}
