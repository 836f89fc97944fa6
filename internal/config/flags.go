package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/apptrack/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   path of the local database file (default from Config)
//	-l string   minimum log level (default from Config)
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DBPath, "d", cfg.DBPath, "path of the local database file")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "minimum log level (debug/info/warn/error)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
