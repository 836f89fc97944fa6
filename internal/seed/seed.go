// Package seed builds the demo record collection offered by the "seed"
// command. The fixture lives in an embedded YAML file so the demo data can
// be edited without touching code.
package seed

import (
	_ "embed"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/dmitrijs2005/apptrack/internal/models"
)

//go:embed seed.yaml
var fixture []byte

type seedEntry struct {
	Company string `yaml:"company"`
	Role    string `yaml:"role"`
	Status  string `yaml:"status"`
	DaysAgo int    `yaml:"days_ago"`
	Link    string `yaml:"link"`
	Notes   string `yaml:"notes"`
}

// Records materializes the embedded fixture into full records with fresh
// unique ids. Creation times are staggered into the past by each entry's
// days_ago offset from now, so the default newest-first ordering matches the
// fixture's intent.
func Records(now time.Time) ([]models.Record, error) {
	var entries []seedEntry
	if err := yaml.Unmarshal(fixture, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse seed fixture: %w", err)
	}

	now = now.UTC()
	records := make([]models.Record, 0, len(entries))
	for _, e := range entries {
		created := now.AddDate(0, 0, -e.DaysAgo)
		records = append(records, models.Record{
			ID:        uuid.NewString(),
			CreatedAt: created,
			Company:   e.Company,
			Role:      e.Role,
			Status:    models.Status(e.Status),
			Date:      created.Format(models.DateLayout),
			Link:      e.Link,
			Notes:     e.Notes,
		})
	}

	return records, nil
}
