package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/rentadmin/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string    base URL of the backend API (default from Config)
//	-t string    token file path
//	-p int       default rows per page
//	-log string  logging backend, "zap" or "slog"
//
// The function filters os.Args down to the flags it owns, using flagx.Allow,
// so flags handled elsewhere (like -c) never trip the parse.
func parseFlags(cfg *Config) {
	args := flagx.Allow(os.Args[1:], []string{"-a", "-t", "-p", "-log"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the backend API")
	fs.StringVar(&cfg.TokenFile, "t", cfg.TokenFile, "file the session token is stored in")
	fs.IntVar(&cfg.DefaultPageSize, "p", cfg.DefaultPageSize, "default rows per page")
	fs.StringVar(&cfg.LogBackend, "log", cfg.LogBackend, "logging backend (zap or slog)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
