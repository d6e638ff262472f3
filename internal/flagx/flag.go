// Package flagx contains helpers for splitting one os.Args between several
// independent flag sets. Each config stage filters the arguments down to the
// flags it owns before parsing, so flags belonging to other stages never
// trip flag.Parse.
package flagx

import (
	"flag"
	"os"
	"strings"
)

// Allow returns the subset of args belonging to the given flag names.
//
// Both "-f value" and "-f=value" (or "--flag=value") forms are recognized.
// For the separate-value form the value token is kept together with its
// flag; unknown flags are dropped along with their values.
func Allow(args []string, names []string) []string {
	known := make(map[string]struct{}, len(names))
	for _, n := range names {
		known[n] = struct{}{}
	}

	kept := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		a := args[i]

		// "-f=value" form: match on the part before '='.
		if strings.HasPrefix(a, "-") && strings.Contains(a, "=") {
			if _, ok := known[strings.SplitN(a, "=", 2)[0]]; ok {
				kept = append(kept, a)
			}
			continue
		}

		if _, ok := known[a]; ok {
			kept = append(kept, a)
			// A following token that is not itself a flag is this flag's value.
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				kept = append(kept, args[i+1])
				i++
			}
		}
	}

	return kept
}

// ConfigFileFlag extracts the config file path given via -c or -config.
// Returns an empty string when neither flag is present. Other arguments are
// ignored, so callers can invoke this before their own flag parsing.
func ConfigFileFlag() string {
	var path string

	args := Allow(os.Args[1:], []string{"-c", "-config"})

	fs := flag.NewFlagSet("configfile", flag.ContinueOnError)
	fs.StringVar(&path, "config", "", "path to config file")
	fs.StringVar(&path, "c", "", "path to config file (short)")
	_ = fs.Parse(args)

	return path
}
