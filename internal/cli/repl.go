package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Add(ctx context.Context) error
	Edit(ctx context.Context) error
	Delete(ctx context.Context) error
	Show(ctx context.Context) error
	List(ctx context.Context) error
	Search(ctx context.Context, query string) error
	Filter(ctx context.Context, status string) error
	Sort(ctx context.Context, mode string) error
	Seed(ctx context.Context) error
	Clear(ctx context.Context) error
	ToggleCompact(ctx context.Context) error
}

// runREPL starts the read–eval–print loop of the tracker.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands:
//
//	help             — show available commands
//	add              — add an application (interactive prompts)
//	edit             — edit an application by id
//	delete           — delete an application by id (with confirmation)
//	show             — show one application in full
//	l | list         — render the current view
//	search [text]    — set the query filter (empty clears it)
//	filter [status]  — set the status filter ("all" clears it)
//	sort [mode]      — set the sort mode (newest/oldest/company/status)
//	seed             — replace the collection with demo data (confirmed)
//	clear            — delete every record (confirmed)
//	compact          — toggle the compact display preference
//	exit | quit      — leave the program
//
// Any errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner, interactive bool) {
	for {
		if interactive {
			printlnFn(fmt.Sprintf("apptrack %s> ", statusFn()))
		}
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		rest := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), cmd))

		switch cmd {
		case "help":
			printlnFn("Available commands: add, edit, delete, show, (l)ist, search, filter, sort, seed, clear, compact, exit")

		case "add":
			_ = a.Add(ctx)

		case "edit":
			_ = a.Edit(ctx)

		case "delete":
			_ = a.Delete(ctx)

		case "show":
			_ = a.Show(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "search":
			_ = a.Search(ctx, rest)

		case "filter":
			_ = a.Filter(ctx, rest)

		case "sort":
			_ = a.Sort(ctx, rest)

		case "seed":
			_ = a.Seed(ctx)

		case "clear":
			_ = a.Clear(ctx)

		case "compact":
			_ = a.ToggleCompact(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
