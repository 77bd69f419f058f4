package tui

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/papapumpkin/holocron/internal/enrich"
	"github.com/papapumpkin/holocron/internal/roster"
	"github.com/papapumpkin/holocron/internal/swapi"
	"github.com/papapumpkin/holocron/internal/telemetry"
)

var testPeople = []swapi.Person{
	{Name: "Luke Skywalker", Height: "172", Mass: "77", URL: "https://swapi.dev/api/people/1/"},
	{Name: "Darth Vader", Height: "202", Mass: "136", URL: "https://swapi.dev/api/people/4/"},
	{Name: "Leia Organa", Height: "150", Mass: "49", URL: "https://swapi.dev/api/people/5/"},
	{Name: "Jabba Desilijic Tiure", Height: "175", Mass: "1,358", URL: "https://swapi.dev/api/people/16/"},
	{Name: "Ratts Tyerel", Height: "79", Mass: "unknown", URL: "https://swapi.dev/api/people/47/"},
}

type fakeDirectory struct {
	people []swapi.Person
	err    error
}

func (f fakeDirectory) Load(context.Context) error { return f.err }

func (f fakeDirectory) FindByName(name string) (swapi.Person, bool) {
	for _, p := range f.people {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return swapi.Person{}, false
}

// fakeEnricher gives every record one film named after it.
type fakeEnricher struct {
	calls []string
}

func (f *fakeEnricher) Enrich(_ context.Context, p swapi.Person) (enrich.Details, error) {
	f.calls = append(f.calls, p.Name)
	return enrich.Details{
		Films:     []string{p.Name + " Returns"},
		Species:   []string{"Human"},
		Vehicles:  []string{},
		Starships: []string{},
	}, nil
}

func newTestModel(t *testing.T, dirErr error) (AppModel, *fakeEnricher) {
	t.Helper()
	fe := &fakeEnricher{}
	m := NewAppModel(context.Background(), Deps{
		Directory: fakeDirectory{people: testPeople, err: dirErr},
		Enricher:  fe,
		Roster:    roster.New(roster.DefaultNames...),
	})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	return m, fe
}

// readyModel returns a model whose directory has loaded, plus the command
// enriching the initial selection.
func readyModel(t *testing.T) (AppModel, *fakeEnricher, tea.Cmd) {
	t.Helper()
	m, fe := newTestModel(t, nil)
	m, cmd := update(t, m, MsgDirectoryLoaded{})
	return m, fe, cmd
}

func update(t *testing.T, m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	am, ok := next.(AppModel)
	if !ok {
		t.Fatalf("Update returned %T, want AppModel", next)
	}
	return am, cmd
}

// run executes cmd and flattens batches into their messages.
func run(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, run(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func enriched(t *testing.T, cmd tea.Cmd) MsgEnriched {
	t.Helper()
	for _, msg := range run(cmd) {
		if e, ok := msg.(MsgEnriched); ok {
			return e
		}
	}
	t.Fatal("command produced no MsgEnriched")
	return MsgEnriched{}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func plainView(m AppModel) string {
	return ansi.Strip(m.View())
}

func TestDirectoryLoaded(t *testing.T) {
	t.Parallel()

	t.Run("selects the initial name and starts enrichment", func(t *testing.T) {
		t.Parallel()
		m, fe, cmd := readyModel(t)

		if m.Panel != PanelFound {
			t.Fatalf("Panel = %d, want PanelFound", m.Panel)
		}
		if m.Selected == nil || m.Selected.Name != "Luke Skywalker" {
			t.Fatalf("Selected = %+v, want Luke Skywalker", m.Selected)
		}
		if !m.Enriching {
			t.Error("expected Enriching while references resolve")
		}

		m, _ = update(t, m, enriched(t, cmd))
		if m.Enriching {
			t.Error("expected Enriching to clear once results arrive")
		}
		if got := strings.Join(m.Details.Films, ","); got != "Luke Skywalker Returns" {
			t.Errorf("Films = %q", got)
		}
		if len(fe.calls) != 1 {
			t.Errorf("enricher called %d times, want 1", len(fe.calls))
		}
	})

	t.Run("failure replaces the view with the error text", func(t *testing.T) {
		t.Parallel()
		m, fe := newTestModel(t, errors.New("connection refused"))
		m, cmd := update(t, m, MsgDirectoryLoaded{Err: errors.New("connection refused")})

		if cmd != nil {
			if msgs := run(cmd); len(msgs) != 0 {
				t.Errorf("expected no follow-up work, got %v", msgs)
			}
		}
		if m.Panel != PanelError {
			t.Fatalf("Panel = %d, want PanelError", m.Panel)
		}
		view := plainView(m)
		if !strings.Contains(view, "Error fetching characters") {
			t.Errorf("expected error text in view, got:\n%s", view)
		}
		for _, absent := range []string{"Luke Skywalker", "Physical Stats", "Height"} {
			if strings.Contains(view, absent) {
				t.Errorf("error view should not contain %q:\n%s", absent, view)
			}
		}
		if len(fe.calls) != 0 {
			t.Errorf("enricher called %d times, want 0", len(fe.calls))
		}
	})

	t.Run("error state ignores everything but quit", func(t *testing.T) {
		t.Parallel()
		m, _ := newTestModel(t, nil)
		m, _ = update(t, m, MsgDirectoryLoaded{Err: errors.New("boom")})

		m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
		if cmd != nil {
			t.Error("enter should do nothing in the error state")
		}
		if m.Panel != PanelError {
			t.Errorf("Panel = %d, want PanelError", m.Panel)
		}
		_, cmd = update(t, m, keyRunes("q"))
		if cmd == nil {
			t.Fatal("q should quit")
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Error("q should produce tea.QuitMsg")
		}
	})
}

func TestLoadingView(t *testing.T) {
	t.Parallel()
	m, _ := newTestModel(t, nil)

	view := plainView(m)
	if !strings.Contains(view, "Loading characters") {
		t.Errorf("expected loading text, got:\n%s", view)
	}

	// Selecting before the directory arrives must not start any work.
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Error("selection during loading should not start enrichment")
	}
	if m.Panel != PanelLoading {
		t.Errorf("Panel = %d, want PanelLoading", m.Panel)
	}
}

func TestChipNavigation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		keys []tea.KeyMsg
		want int
	}{
		{"right", []tea.KeyMsg{{Type: tea.KeyRight}}, 1},
		{"right twice", []tea.KeyMsg{{Type: tea.KeyRight}, {Type: tea.KeyRight}}, 2},
		{"left wraps", []tea.KeyMsg{{Type: tea.KeyLeft}}, 2},
		{"right wraps", []tea.KeyMsg{{Type: tea.KeyRight}, {Type: tea.KeyRight}, {Type: tea.KeyRight}}, 0},
		{"tab", []tea.KeyMsg{{Type: tea.KeyTab}}, 1},
		{"vim keys", []tea.KeyMsg{keyRunes("l"), keyRunes("l"), keyRunes("h")}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m, _, _ := readyModel(t)
			for _, k := range tt.keys {
				m, _ = update(t, m, k)
			}
			if m.Cursor != tt.want {
				t.Errorf("Cursor = %d, want %d", m.Cursor, tt.want)
			}
		})
	}
}

func TestSelectChip(t *testing.T) {
	t.Parallel()
	m, _, _ := readyModel(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.Active != "Darth Vader" {
		t.Errorf("Active = %q, want Darth Vader", m.Active)
	}
	if m.Roster.Query() != "Darth Vader" || m.Input.Value() != "Darth Vader" {
		t.Errorf("query = %q, input = %q", m.Roster.Query(), m.Input.Value())
	}
	if got := strings.Join(m.Roster.Names(), ","); got != "Luke Skywalker,Darth Vader,Leia Organa" {
		t.Errorf("selection changed the roster: %s", got)
	}
	if e := enriched(t, cmd); e.Ticket.Person.Name != "Darth Vader" {
		t.Errorf("enrichment started for %q", e.Ticket.Person.Name)
	}
}

func TestSelectSameRecordDoesNotRefetch(t *testing.T) {
	t.Parallel()
	m, fe, cmd := readyModel(t)
	m, _ = update(t, m, enriched(t, cmd))

	m, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Error("reselecting the shown record should not refetch")
	}
	if len(fe.calls) != 1 {
		t.Errorf("enricher called %d times, want 1", len(fe.calls))
	}
	if len(m.Details.Films) != 1 {
		t.Errorf("details were cleared: %+v", m.Details)
	}
}

func TestStaleEnrichmentDiscarded(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "events.jsonl")
	em, err := telemetry.NewEmitter(path)
	if err != nil {
		t.Fatalf("NewEmitter: %v", err)
	}

	m := NewAppModel(context.Background(), Deps{
		Directory: fakeDirectory{people: testPeople},
		Enricher:  &fakeEnricher{},
		Roster:    roster.New(roster.DefaultNames...),
		Events:    em,
	})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	m, lukeCmd := update(t, m, MsgDirectoryLoaded{})

	// Switch to Vader before Luke's references come back.
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, vaderCmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m, _ = update(t, m, enriched(t, lukeCmd))
	if !m.Enriching {
		t.Error("stale result must not finish the current enrichment")
	}
	if len(m.Details.Films) != 0 {
		t.Errorf("stale films applied: %v", m.Details.Films)
	}
	if m.Selected.Name != "Darth Vader" {
		t.Errorf("Selected = %q, want Darth Vader", m.Selected.Name)
	}

	m, _ = update(t, m, enriched(t, vaderCmd))
	if got := strings.Join(m.Details.Films, ","); got != "Darth Vader Returns" {
		t.Errorf("Films = %q, want Vader's", got)
	}

	if err := em.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read telemetry: %v", err)
	}
	if !strings.Contains(string(raw), `"kind":"enrich_stale"`) {
		t.Errorf("expected an enrich_stale event, got:\n%s", raw)
	}
}
