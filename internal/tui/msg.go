package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/papapumpkin/holocron/internal/enrich"
	"github.com/papapumpkin/holocron/internal/watch"
)

// MsgDirectoryLoaded is sent once the character directory finishes its
// one-time fetch. Err is non-nil when the fetch failed.
type MsgDirectoryLoaded struct {
	Err error
}

// MsgEnriched carries the resolved references for one selection. The
// ticket identifies which selection started the work so stale results can
// be dropped.
type MsgEnriched struct {
	Ticket  enrich.Ticket
	Details enrich.Details
	Err     error
}

// MsgRosterUpdate is sent when the watched roster file changes.
type MsgRosterUpdate struct {
	Names []string
	Err   error
}

// msgRosterClosed is sent when the roster watcher shuts down.
type msgRosterClosed struct{}

// loadDirectoryCmd fetches the character directory off the UI goroutine.
func loadDirectoryCmd(ctx context.Context, d Directory) tea.Cmd {
	return func() tea.Msg {
		return MsgDirectoryLoaded{Err: d.Load(ctx)}
	}
}

// enrichCmd resolves references for the ticket's record.
func enrichCmd(ctx context.Context, e Enricher, tk enrich.Ticket) tea.Cmd {
	return func() tea.Msg {
		d, err := e.Enrich(ctx, tk.Person)
		return MsgEnriched{Ticket: tk, Details: d, Err: err}
	}
}

// waitForRoster blocks until the watcher reports a change.
func waitForRoster(ch <-chan watch.Update) tea.Cmd {
	return func() tea.Msg {
		u, ok := <-ch
		if !ok {
			return msgRosterClosed{}
		}
		return MsgRosterUpdate{Names: u.Names, Err: u.Err}
	}
}
