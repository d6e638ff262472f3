package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/rentadmin/internal/client/view"
)

// screen bundles everything one management screen needs: its controller, how
// to render a row, which status filters it accepts, its create/edit form and
// any screen-specific commands. Screens with no dialog leave form nil; the
// controller rejects the corresponding operations anyway, this just keeps
// them out of the help text.
type screen[E view.Entity, D any] struct {
	name     string
	columns  string
	ctrl     *view.Controller[E, D]
	row      func(E) string
	statuses []string

	// form fills in the draft interactively; creating distinguishes the
	// create dialog (which may ask for extra fields) from edit.
	form func(draft *D, creating bool) error

	// extras are screen commands beyond the shared set, keyed by verb.
	// Each takes the id typed after the verb.
	extras    map[string]func(ctx context.Context, id string) error
	extraHelp string
}

// runScreen drives one management screen until the user types "back". The
// collection is fetched on entry; a failed fetch leaves the screen in the
// errored state with "reload" as the way out.
//
// Shared commands:
//
//	list             — show the current page
//	find [text]      — filter by text across the screen's search fields
//	status <s>       — filter by status ("all" clears)
//	page <n>         — jump to page n (1-based)
//	next | prev      — move one page
//	size <n>         — rows per page
//	add              — open the create dialog
//	edit <id>        — open the edit dialog
//	del <id>         — ask for confirmation, then delete
//	reload           — refetch from the server
//	back             — return to the main prompt
func runScreen[E view.Entity, D any](ctx context.Context, a *App, s *screen[E, D]) error {
	defer s.ctrl.Close()

	if err := s.ctrl.Load(ctx); err != nil {
		a.log.Warn(ctx, "initial fetch failed", "screen", s.name, "error", err)
	}
	s.render(a)

	for {
		fmt.Fprintf(a.out, "radm/%s> ", s.name)
		parts, ok := readCommand(a.reader)
		if !ok {
			return nil
		}
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			s.printHelp(a)

		case "l", "list":
			s.render(a)

		case "find":
			s.ctrl.SetQuery(strings.Join(args, " "))
			s.render(a)

		case "status":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: status <"+s.statusUsage()+">")
				continue
			}
			if err := s.setStatus(args[0]); err != nil {
				fmt.Fprintln(a.out, "Cannot filter by status:", err)
				continue
			}
			s.render(a)

		case "page":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: page <n>")
				continue
			}
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 1 {
				fmt.Fprintln(a.out, "Page must be a positive number")
				continue
			}
			s.ctrl.SetPage(n - 1)
			s.render(a)

		case "next":
			s.ctrl.SetPage(s.ctrl.Window().Page + 1)
			s.render(a)

		case "prev":
			s.ctrl.SetPage(s.ctrl.Window().Page - 1)
			s.render(a)

		case "size":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: size <n>")
				continue
			}
			n, err := strconv.Atoi(args[0])
			if err != nil {
				fmt.Fprintln(a.out, "Size must be a number")
				continue
			}
			if err := s.ctrl.SetPageSize(n); err != nil {
				fmt.Fprintln(a.out, err)
				continue
			}
			s.render(a)

		case "add":
			s.runForm(ctx, a, "")

		case "edit":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: edit <id>")
				continue
			}
			s.runForm(ctx, a, args[0])

		case "del":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: del <id>")
				continue
			}
			s.runDelete(ctx, a, args[0])

		case "reload":
			if err := s.ctrl.Load(ctx); err != nil {
				a.log.Warn(ctx, "fetch failed", "screen", s.name, "error", err)
			}
			s.render(a)

		case "back":
			return nil

		default:
			if fn, found := s.extras[cmd]; found {
				if len(args) == 0 {
					fmt.Fprintf(a.out, "Usage: %s <id>\n", cmd)
					continue
				}
				if err := fn(ctx, args[0]); err != nil {
					fmt.Fprintln(a.out, "Error:", err)
					continue
				}
				s.render(a)
				continue
			}
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}

func (s *screen[E, D]) printHelp(a *App) {
	cmds := []string{"list", "find [text]"}
	if len(s.statuses) > 0 {
		cmds = append(cmds, "status <"+s.statusUsage()+">")
	}
	cmds = append(cmds, "page <n>", "next", "prev", "size <n>")
	if s.form != nil {
		cmds = append(cmds, "add", "edit <id>")
	}
	cmds = append(cmds, "del <id>", "reload", "back")
	fmt.Fprintln(a.out, "Commands:", strings.Join(cmds, ", "))
	if s.extraHelp != "" {
		fmt.Fprintln(a.out, "Also:", s.extraHelp)
	}
}

func (s *screen[E, D]) statusUsage() string {
	return strings.Join(append([]string{view.StatusAll}, s.statuses...), "|")
}

func (s *screen[E, D]) setStatus(status string) error {
	if status == view.StatusAll {
		return s.ctrl.SetStatus(view.StatusAll)
	}
	for _, known := range s.statuses {
		if strings.EqualFold(known, status) {
			return s.ctrl.SetStatus(known)
		}
	}
	return fmt.Errorf("unknown status %q, expected %s", status, s.statusUsage())
}

// render prints the current page. In the errored state it shows the retained
// fetch error instead of rows; stale data is never displayed.
func (s *screen[E, D]) render(a *App) {
	if s.ctrl.Phase() == view.PhaseErrored {
		fmt.Fprintln(a.out, "Could not load", s.name+":", s.ctrl.Err())
		fmt.Fprintln(a.out, "Type 'reload' to try again.")
		return
	}

	crit := s.ctrl.Criteria()
	if !crit.Empty() {
		var parts []string
		if crit.Query != "" {
			parts = append(parts, fmt.Sprintf("text=%q", crit.Query))
		}
		if crit.Status != "" && crit.Status != view.StatusAll {
			parts = append(parts, "status="+crit.Status)
		}
		fmt.Fprintln(a.out, "Filter:", strings.Join(parts, " "))
	}

	fmt.Fprintln(a.out, s.columns)
	for _, e := range s.ctrl.Visible() {
		fmt.Fprintln(a.out, s.row(e))
	}

	total := s.ctrl.TotalPages()
	if total == 0 {
		fmt.Fprintln(a.out, "(no records)")
		return
	}
	fmt.Fprintf(a.out, "Page %d/%d, %d record(s)\n",
		s.ctrl.Window().Page+1, total, len(s.ctrl.Filtered()))
}

// runForm opens the create (id empty) or edit dialog, fills the draft via
// the screen's form and submits. A rejected submit keeps the dialog open so
// the user can correct the draft and retry.
func (s *screen[E, D]) runForm(ctx context.Context, a *App, id string) {
	if s.form == nil {
		fmt.Fprintln(a.out, "This screen has no form.")
		return
	}

	var err error
	if id == "" {
		err = s.ctrl.BeginCreate()
	} else {
		err = s.ctrl.BeginEdit(id)
	}
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}

	for {
		draft, _ := s.ctrl.Draft()
		if err := s.form(&draft, id == ""); err != nil {
			fmt.Fprintln(a.out, "Input aborted:", err)
			s.ctrl.Cancel()
			return
		}
		if err := s.ctrl.SetDraft(draft); err != nil {
			fmt.Fprintln(a.out, "Error:", err)
			return
		}

		err := s.ctrl.Submit(ctx)
		if err == nil {
			fmt.Fprintln(a.out, "Saved.")
			s.render(a)
			return
		}

		fmt.Fprintln(a.out, "Not saved:", err)
		again, rerr := Confirm(a.reader, "Edit and retry?", a.out)
		if rerr != nil || !again {
			s.ctrl.Cancel()
			fmt.Fprintln(a.out, "Discarded.")
			return
		}
	}
}

// runDelete opens the confirmation gate for id; nothing is sent until the
// user answers yes. A failed delete keeps the confirmation open for another
// attempt.
func (s *screen[E, D]) runDelete(ctx context.Context, a *App, id string) {
	if err := s.ctrl.BeginDelete(id); err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}

	for {
		yes, err := Confirm(a.reader, fmt.Sprintf("Delete %s? This cannot be undone.", id), a.out)
		if err != nil || !yes {
			s.ctrl.Cancel()
			fmt.Fprintln(a.out, "Kept.")
			return
		}

		if err := s.ctrl.ConfirmDelete(ctx); err != nil {
			fmt.Fprintln(a.out, "Delete failed:", err)
			continue
		}
		fmt.Fprintln(a.out, "Deleted.")
		s.render(a)
		return
	}
}
