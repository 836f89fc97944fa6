package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/apptrack/internal/localstore"
	"github.com/dmitrijs2005/apptrack/internal/logging"
	"github.com/dmitrijs2005/apptrack/internal/models"
	"github.com/dmitrijs2005/apptrack/internal/persist"
	"github.com/dmitrijs2005/apptrack/internal/store"
	"github.com/dmitrijs2005/apptrack/internal/validate"
)

// newTestApp builds an App over in-memory storage with scripted stdin and a
// captured output buffer.
func newTestApp(t *testing.T, input string) (*App, *bytes.Buffer) {
	t.Helper()

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	adapter := persist.NewAdapter(localstore.NewMemoryKV(), log)
	st := store.New(context.Background(), adapter)

	var buf bytes.Buffer
	a := &App{
		log:    log,
		store:  st,
		reader: bufio.NewReader(strings.NewReader(input)),
		out:    &buf,
	}
	st.OnChange(a.render)
	return a, &buf
}

func seedOne(t *testing.T, a *App, company, role string, status models.Status) models.Record {
	t.Helper()
	return a.store.Create(context.Background(), validate.Payload{
		Company: company, Role: role, Status: status,
	})
}

func TestRender_EmptyCollectionMessage(t *testing.T) {
	a, buf := newTestApp(t, "")

	require.NoError(t, a.List(context.Background()))

	assert.Contains(t, buf.String(), "No applications yet")
}

func TestRender_NoMatchesMessageDiffersFromEmpty(t *testing.T) {
	a, buf := newTestApp(t, "")
	ctx := context.Background()

	seedOne(t, a, "Acme", "Dev", models.StatusApplied)
	buf.Reset()

	require.NoError(t, a.Search(ctx, "zzz"))

	out := buf.String()
	assert.Contains(t, out, "No applications match")
	assert.NotContains(t, out, "No applications yet")
	assert.Contains(t, out, "0 shown of 1")
}

func TestRender_TableAndCounters(t *testing.T) {
	a, buf := newTestApp(t, "")

	seedOne(t, a, "Acme", "Dev", models.StatusApplied)
	buf.Reset()
	seedOne(t, a, "Figma", "Product Engineer", models.StatusInterview)

	out := buf.String()
	assert.Contains(t, out, "COMPANY")
	assert.Contains(t, out, "Figma")
	assert.Contains(t, out, "2 shown of 2")
	assert.Contains(t, out, "applied 1")
	assert.Contains(t, out, "interview 1")
}

func TestRender_UnknownStatusLabel(t *testing.T) {
	a, buf := newTestApp(t, "")

	seedOne(t, a, "Acme", "Dev", models.Status("ghosted"))

	assert.Contains(t, buf.String(), "Unknown")
}

func TestRender_CompactMode(t *testing.T) {
	a, buf := newTestApp(t, "")
	ctx := context.Background()

	seedOne(t, a, "Acme", "Dev", models.StatusApplied)
	buf.Reset()

	require.NoError(t, a.ToggleCompact(ctx))

	out := buf.String()
	assert.NotContains(t, out, "COMPANY")
	assert.Contains(t, out, "Acme / Dev [Applied]")
	assert.Contains(t, out, "Compact mode on.")
}

func TestAdd_InvalidLinkLeavesStoreUnchanged(t *testing.T) {
	// company, role, status, date, link, then the multiline notes terminator
	input := "Acme\nDev\napplied\n\nnot-a-url\n\n"
	a, buf := newTestApp(t, input)

	require.NoError(t, a.Add(context.Background()))

	assert.Contains(t, buf.String(), "link")
	assert.Empty(t, a.store.List())
}

func TestAdd_ValidPayloadCreates(t *testing.T) {
	input := "Acme\nDev\napplied\n2025-06-01\nhttps://acme.example/jobs/1\nreferred by Sam\n\n"
	a, buf := newTestApp(t, input)

	require.NoError(t, a.Add(context.Background()))

	list := a.store.List()
	require.Len(t, list, 1)
	assert.Equal(t, "Acme", list[0].Company)
	assert.Equal(t, "referred by Sam", list[0].Notes)
	assert.Contains(t, buf.String(), "Added Dev at Acme")
}

func TestDelete_DeclinedConfirmationKeepsRecord(t *testing.T) {
	a, _ := newTestApp(t, "")
	rec := seedOne(t, a, "Acme", "Dev", models.StatusApplied)

	a.reader = bufio.NewReader(strings.NewReader(rec.ID + "\nn\n"))
	require.NoError(t, a.Delete(context.Background()))

	assert.Len(t, a.store.List(), 1)
}

func TestDelete_ConfirmedRemovesRecord(t *testing.T) {
	a, _ := newTestApp(t, "")
	rec := seedOne(t, a, "Acme", "Dev", models.StatusApplied)

	a.reader = bufio.NewReader(strings.NewReader(rec.ID + "\ny\n"))
	require.NoError(t, a.Delete(context.Background()))

	assert.Empty(t, a.store.List())
}

func TestPickRecord_ShortPrefixResolves(t *testing.T) {
	a, buf := newTestApp(t, "")
	rec := seedOne(t, a, "Acme", "Dev", models.StatusApplied)
	buf.Reset()

	a.reader = bufio.NewReader(strings.NewReader(shortID(rec.ID) + "\n"))
	require.NoError(t, a.Show(context.Background()))

	assert.Contains(t, buf.String(), rec.ID)
}

func TestPickRecord_UnknownIdReported(t *testing.T) {
	a, buf := newTestApp(t, "ffffffff\n")
	seedOne(t, a, "Acme", "Dev", models.StatusApplied)

	require.NoError(t, a.Show(context.Background()))

	assert.Contains(t, buf.String(), "No record with id")
}

func TestSeed_ConfirmedReplacesCollection(t *testing.T) {
	a, _ := newTestApp(t, "y\n")
	seedOne(t, a, "Old", "Dev", models.StatusApplied)

	require.NoError(t, a.Seed(context.Background()))

	list := a.store.List()
	require.NotEmpty(t, list)
	for _, r := range list {
		assert.NotEqual(t, "Old", r.Company)
	}
}

func TestClear_ConfirmedEmptiesCollection(t *testing.T) {
	a, _ := newTestApp(t, "y\n")
	seedOne(t, a, "Acme", "Dev", models.StatusApplied)

	require.NoError(t, a.Clear(context.Background()))

	assert.Empty(t, a.store.List())
}

func TestFilter_UnknownStatusRejectedAtBridge(t *testing.T) {
	a, buf := newTestApp(t, "")
	seedOne(t, a, "Acme", "Dev", models.StatusApplied)
	buf.Reset()

	require.NoError(t, a.Filter(context.Background(), "ghosted"))

	assert.Contains(t, buf.String(), "Unknown status")
	assert.Equal(t, "all", a.store.Params().Status)
}

func TestGetStatus_SummarizesNonDefaults(t *testing.T) {
	a, _ := newTestApp(t, "")
	ctx := context.Background()

	assert.Equal(t, "", a.getStatus())

	require.NoError(t, a.Search(ctx, "acme"))
	require.NoError(t, a.Filter(ctx, "offer"))
	require.NoError(t, a.Sort(ctx, "company"))

	s := a.getStatus()
	assert.Contains(t, s, "q:acme")
	assert.Contains(t, s, "status:offer")
	assert.Contains(t, s, "sort:company")
}
