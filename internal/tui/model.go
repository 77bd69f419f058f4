package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/papapumpkin/holocron/internal/enrich"
	"github.com/papapumpkin/holocron/internal/logging"
	"github.com/papapumpkin/holocron/internal/roster"
	"github.com/papapumpkin/holocron/internal/swapi"
	"github.com/papapumpkin/holocron/internal/telemetry"
	"github.com/papapumpkin/holocron/internal/watch"
)

// Directory finds character records by name.
type Directory interface {
	Load(ctx context.Context) error
	FindByName(name string) (swapi.Person, bool)
}

// Enricher resolves a record's reference lists.
type Enricher interface {
	Enrich(ctx context.Context, p swapi.Person) (enrich.Details, error)
}

// Focus says which widget receives keystrokes.
type Focus int

const (
	FocusChips Focus = iota
	FocusInput
)

// PanelState is what the body of the screen shows.
type PanelState int

const (
	// PanelLoading shows a spinner until the directory is fetched.
	PanelLoading PanelState = iota
	// PanelError replaces the whole body after a failed directory fetch.
	PanelError
	// PanelNotFound reports that the active name has no record.
	PanelNotFound
	// PanelFound shows the selected record.
	PanelFound
)

// Deps are the collaborators a browsing session needs.
type Deps struct {
	Directory Directory
	Enricher  Enricher
	Roster    *roster.Roster
	Updates   <-chan watch.Update // nil when no roster file is watched
	Logger    *slog.Logger
	Events    *telemetry.Emitter
}

// AppModel is the root BubbleTea model for browsing characters.
type AppModel struct {
	Roster   *roster.Roster
	Input    textinput.Model
	Spinner  spinner.Model
	Keys     KeyMap
	Focus    Focus
	Cursor   int // index of the focused chip
	Panel    PanelState
	LoadErr  error
	Active   string // name the panel is showing
	Selected *swapi.Person
	Details  enrich.Details
	// Enriching is true while the selected record's references resolve.
	Enriching bool
	Messages  []string // recent roster notices
	Width     int
	Height    int
	Now       func() time.Time

	ctx       context.Context
	directory Directory
	enricher  Enricher
	tracker   *enrich.Tracker
	updates   <-chan watch.Update
	logger    *slog.Logger
	events    *telemetry.Emitter
}

// maxMessages bounds the notice history shown under the chips.
const maxMessages = 3

// NewAppModel creates a browsing model. ctx bounds every fetch the model
// starts; cancelling it abandons in-flight work.
func NewAppModel(ctx context.Context, deps Deps) AppModel {
	if deps.Roster == nil {
		deps.Roster = roster.New(roster.DefaultNames...)
	}
	if deps.Logger == nil {
		deps.Logger = logging.Discard()
	}

	ti := textinput.New()
	ti.Prompt = "▸ "
	ti.Placeholder = "type a character name"
	ti.CharLimit = 64
	ti.SetValue(deps.Roster.Query())

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorPrimary)

	m := AppModel{
		Roster:    deps.Roster,
		Input:     ti,
		Spinner:   sp,
		Keys:      DefaultKeyMap(),
		Focus:     FocusChips,
		Panel:     PanelLoading,
		Active:    deps.Roster.Query(),
		Now:       time.Now,
		ctx:       ctx,
		directory: deps.Directory,
		enricher:  deps.Enricher,
		tracker:   &enrich.Tracker{},
		updates:   deps.Updates,
		logger:    deps.Logger,
		events:    deps.Events,
	}
	m.Cursor = m.indexOf(m.Active)
	return m
}

// Init starts the spinner, the directory fetch, and the roster watch.
func (m AppModel) Init() tea.Cmd {
	cmds := []tea.Cmd{
		m.Spinner.Tick,
		loadDirectoryCmd(m.ctx, m.directory),
	}
	if m.updates != nil {
		cmds = append(cmds, waitForRoster(m.updates))
	}
	return tea.Batch(cmds...)
}

// Update handles all messages.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Input.Width = max(msg.Width-6, 10)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		cmds = append(cmds, cmd)

	case MsgDirectoryLoaded:
		if msg.Err != nil {
			m.Panel = PanelError
			m.LoadErr = msg.Err
			m.tracker.Reset()
			break
		}
		m.Panel = PanelNotFound
		cmds = append(cmds, m.lookup())

	case MsgEnriched:
		m.applyEnrichment(msg)

	case MsgRosterUpdate:
		m.applyRosterUpdate(msg)
		if m.updates != nil {
			cmds = append(cmds, waitForRoster(m.updates))
		}

	case msgRosterClosed:
		m.updates = nil
	}

	return m, tea.Batch(cmds...)
}

// handleKey routes a keystroke by focus.
func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.Panel == PanelError {
		if key.Matches(msg, m.Keys.Quit) {
			return m, tea.Quit
		}
		return m, nil
	}
	if m.Focus == FocusInput {
		return m.handleInputKey(msg)
	}

	switch {
	case key.Matches(msg, m.Keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.Keys.Left):
		m.moveCursor(-1)
	case key.Matches(msg, m.Keys.Right):
		m.moveCursor(1)
	case key.Matches(msg, m.Keys.Select):
		cmd := m.selectChip()
		return m, cmd
	case key.Matches(msg, m.Keys.Search):
		m.Focus = FocusInput
		m.Keys = InputKeyMap()
		cmd := m.Input.Focus()
		return m, cmd
	}
	return m, nil
}

// handleInputKey handles keystrokes while the search input is focused.
func (m AppModel) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.Keys.Submit):
		cmd := m.submit()
		return m, cmd
	case key.Matches(msg, m.Keys.Back):
		m.blurInput()
		return m, nil
	}

	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)
	m.Roster.SetQuery(m.Input.Value())
	return m, cmd
}

func (m *AppModel) blurInput() {
	m.Input.Blur()
	m.Focus = FocusChips
	m.Keys = DefaultKeyMap()
}

func (m *AppModel) moveCursor(delta int) {
	n := m.Roster.Len()
	if n == 0 {
		return
	}
	m.Cursor = ((m.Cursor+delta)%n + n) % n
}

// selectChip makes the focused chip's name the query and shows its record.
func (m *AppModel) selectChip() tea.Cmd {
	names := m.Roster.Names()
	if m.Cursor < 0 || m.Cursor >= len(names) {
		return nil
	}
	name := names[m.Cursor]
	m.Roster.Select(name)
	m.Input.SetValue(name)
	m.Active = name
	return m.lookup()
}

// submit adds the typed name to the roster and shows its record. The
// record is looked up even when the name was already listed.
func (m *AppModel) submit() tea.Cmd {
	m.Roster.SetQuery(m.Input.Value())
	query := strings.TrimSpace(m.Input.Value())
	if query == "" {
		return nil
	}
	if m.Roster.Submit() {
		added := roster.Normalize(query)
		m.logger.Debug("roster name added", "name", added)
		m.record(telemetry.KindRosterAdded, added, map[string]string{"source": "input"})
	}
	m.Active = roster.Normalize(query)
	m.Cursor = m.indexOf(query)
	m.blurInput()
	return m.lookup()
}

// lookup resolves Active against the directory. A miss cancels any pending
// enrichment; a hit on a new record starts one.
func (m *AppModel) lookup() tea.Cmd {
	if m.Panel == PanelLoading || m.Panel == PanelError {
		return nil
	}

	p, ok := m.directory.FindByName(m.Active)
	if !ok {
		m.Panel = PanelNotFound
		m.Selected = nil
		m.Details = enrich.Details{}
		m.Enriching = false
		m.tracker.Reset()
		return nil
	}

	m.Panel = PanelFound
	if m.Selected != nil && m.Selected.URL == p.URL && m.Selected.Name == p.Name {
		return nil
	}
	m.Selected = &p
	m.Details = enrich.Details{}
	m.Enriching = true
	ctx, tk := m.tracker.Begin(m.ctx, p)
	return enrichCmd(ctx, m.enricher, tk)
}

// applyEnrichment stores a result when it belongs to the current selection.
func (m *AppModel) applyEnrichment(msg MsgEnriched) {
	if !m.tracker.Current(msg.Ticket) {
		m.logger.Debug("dropping stale enrichment",
			"character", msg.Ticket.Person.Name, "seq", msg.Ticket.Seq)
		m.record(telemetry.KindEnrichStale, msg.Ticket.Person.Name, map[string]uint64{"seq": msg.Ticket.Seq})
		return
	}
	m.tracker.Finish(msg.Ticket)
	m.Details = msg.Details
	m.Enriching = false
	if msg.Err != nil {
		m.logger.Warn("enrichment incomplete", "character", msg.Ticket.Person.Name, "error", msg.Err)
	}
}

// applyRosterUpdate merges names from the roster file into the chip row.
func (m *AppModel) applyRosterUpdate(msg MsgRosterUpdate) {
	if msg.Err != nil {
		m.logger.Warn("roster file unreadable", "error", msg.Err)
		m.addMessage(fmt.Sprintf("roster file: %v", msg.Err))
		return
	}
	added := m.Roster.Add(msg.Names...)
	for _, name := range added {
		m.record(telemetry.KindRosterAdded, name, map[string]string{"source": "file"})
	}
	if len(added) > 0 {
		m.logger.Info("roster file merged", "added", len(added))
		m.addMessage(fmt.Sprintf("added %s from roster file", strings.Join(added, ", ")))
	}
}

func (m *AppModel) addMessage(s string) {
	m.Messages = append(m.Messages, s)
	if len(m.Messages) > maxMessages {
		m.Messages = m.Messages[len(m.Messages)-maxMessages:]
	}
}

func (m *AppModel) record(kind, character string, data any) {
	if err := m.events.Record(kind, character, data); err != nil {
		m.logger.Debug("telemetry write failed", "error", err)
	}
}

// indexOf returns the chip index for name, or the current cursor when the
// name is not listed.
func (m AppModel) indexOf(name string) int {
	norm := roster.Normalize(name)
	for i, n := range m.Roster.Names() {
		if n == norm {
			return i
		}
	}
	return m.Cursor
}
