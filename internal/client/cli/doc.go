// Package cli implements the interactive admin console. A top-level REPL
// handles authentication and opens one management screen at a time; each
// screen is its own sub-loop over a view.Controller, with commands for
// filtering, paging, dialogs and screen-specific moderation actions.
package cli
