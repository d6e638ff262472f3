package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/rentadmin/internal/client/session"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	Users(ctx context.Context) error
	Posts(ctx context.Context) error
	Reports(ctx context.Context) error
	Notifications(ctx context.Context) error
	Blogs(ctx context.Context) error
}

// readCommand reads one line and splits it into fields. The second return is
// false on EOF. The whole console reads through one shared bufio.Reader so
// the root loop and the nested screen loops never steal each other's input.
func readCommand(reader *bufio.Reader) ([]string, bool) {
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return nil, false
	}
	return strings.Fields(line), true
}

// runREPL is the top-level read-eval-print loop of the admin console.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. The screen commands (users, posts, reports,
// notifications, blogs) enter a nested loop and return here on "back".
// Unknown commands are reported back to the user. The loop exits on reader
// EOF or when the user types "exit" or "quit".
//
//	Not logged in:
//	  - help           — show available commands
//	  - login          — authenticate
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help           — show available commands
//	  - whoami         — show the current session
//	  - users          — open the user management screen
//	  - posts          — open the listing moderation screen
//	  - reports        — open the abuse report screen
//	  - notifications  — open the notification screen
//	  - blogs          — open the blog screen
//	  - logout         — clear the session
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers print
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("radm %s> ", statusFn()))
		parts, ok := readCommand(reader)
		if !ok {
			return
		}
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		if !a.isLoggedIn() {
			switch cmd {
			case "help":
				printlnFn("Available commands: login, exit")
			case "login":
				_ = a.Login(ctx)
			case "exit", "quit":
				printlnFn("Bye!")
				return
			default:
				printlnFn("Unknown command:", cmd)
			}
			continue
		}

		switch cmd {
		case "help":
			printlnFn("Available commands: users, posts, reports, notifications, blogs, whoami, logout, exit")

		case "login":
			_ = a.Login(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "u", "users":
			reportErr(a.Users(ctx))

		case "p", "posts":
			reportErr(a.Posts(ctx))

		case "r", "reports":
			reportErr(a.Reports(ctx))

		case "n", "notifications":
			reportErr(a.Notifications(ctx))

		case "b", "blogs":
			reportErr(a.Blogs(ctx))

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

// reportErr surfaces screen setup failures; running screens print their own.
func reportErr(err error) {
	if err != nil {
		printlnFn("Error:", err)
	}
}

func (a *App) getStatus() string {
	token, err := a.store.Token()
	if err != nil {
		return ""
	}
	claims, err := session.Peek(token)
	if err != nil || claims.Subject == "" {
		return "(logged in)"
	}
	return fmt.Sprintf("(%s)", claims.Subject)
}

func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to the rentadmin console (type 'help' for commands)")

	if !a.isLoggedIn() {
		_ = a.Login(ctx)
	}

	runREPL(ctx, a, a.getStatus, a.reader)
}
