package cli

import "github.com/dmitrijs2005/rentadmin/internal/client/view"

// colorEnabled can be switched off for dumb terminals or tests.
var colorEnabled = true

var ansiTones = map[view.Tone]string{
	view.ToneSuccess: "\x1b[32m",
	view.ToneWarning: "\x1b[33m",
	view.ToneError:   "\x1b[31m",
}

const ansiReset = "\x1b[0m"

// paintStatus wraps a status label in the ANSI color of its tone. Every
// screen shares the one tone table; unknown pairs render uncolored.
func paintStatus(resource, status string) string {
	if !colorEnabled {
		return status
	}
	code, ok := ansiTones[view.StatusTone(resource, status)]
	if !ok {
		return status
	}
	return code + status + ansiReset
}
