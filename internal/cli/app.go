// Package cli is the rendering bridge: a terminal REPL that drives the record
// store and renders every projection it is notified with. All user
// confirmation for destructive actions lives here; the core never blocks
// waiting for one.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/dmitrijs2005/apptrack/internal/config"
	"github.com/dmitrijs2005/apptrack/internal/localstore"
	"github.com/dmitrijs2005/apptrack/internal/logging"
	"github.com/dmitrijs2005/apptrack/internal/persist"
	"github.com/dmitrijs2005/apptrack/internal/store"
)

type App struct {
	config *config.Config
	log    logging.Logger
	store  *store.Store
	kv     *localstore.SQLiteKV

	reader *bufio.Reader
	out    io.Writer

	// interactive is false when stdin is not a terminal (piped input); the
	// prompt and welcome banner are suppressed then.
	interactive bool
}

func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	kv, err := localstore.Open(ctx, c.DBPath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	adapter := persist.NewAdapter(kv, log)
	st := store.New(ctx, adapter)

	a := &App{
		config:      c,
		log:         log,
		store:       st,
		kv:          kv,
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
		interactive: term.IsTerminal(int(os.Stdin.Fd())),
	}

	// Every mutation and view-parameter change re-renders through this hook.
	st.OnChange(a.render)

	return a, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.Close()

	if a.interactive {
		fmt.Fprintln(a.out, "Welcome to apptrack (type 'help' for commands)")
	}
	a.render(a.store.Projection())

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner, a.interactive)
}

func (a *App) Close() {
	if a.kv != nil {
		if err := a.kv.Close(); err != nil {
			a.log.Warn(context.Background(), "error closing database", "error", err)
		}
	}
}
