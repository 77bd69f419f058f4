package tui

import (
	"errors"
	"strings"
	"testing"

	"github.com/papapumpkin/holocron/internal/roster"
)

func TestPanelView(t *testing.T) {
	t.Parallel()

	t.Run("numeric stats draw the chart", func(t *testing.T) {
		t.Parallel()
		m, _, cmd := readyModel(t)
		m, _ = update(t, m, enriched(t, cmd))

		view := plainView(m)
		for _, want := range []string{"Luke Skywalker", "Height:", "172 cm", "Luke Skywalker's Physical Stats", "Height (cm)", "Mass (kg)", "█"} {
			if !strings.Contains(view, want) {
				t.Errorf("expected %q in view:\n%s", want, view)
			}
		}
	})

	t.Run("thousands separators still chart", func(t *testing.T) {
		t.Parallel()
		m, _ := newTestModel(t, nil)
		m.Roster = roster.New("Jabba Desilijic Tiure")
		m.Active = "Jabba Desilijic Tiure"
		m, _ = update(t, m, MsgDirectoryLoaded{})

		if view := plainView(m); !strings.Contains(view, "1358") {
			t.Errorf("expected parsed mass in chart:\n%s", view)
		}
	})

	t.Run("unknown mass omits the chart", func(t *testing.T) {
		t.Parallel()
		m, _ := newTestModel(t, nil)
		m.Roster = roster.New("Ratts Tyerel")
		m.Active = "Ratts Tyerel"
		m, _ = update(t, m, MsgDirectoryLoaded{})

		view := plainView(m)
		if !strings.Contains(view, "Ratts Tyerel") {
			t.Fatalf("expected record in view:\n%s", view)
		}
		if strings.Contains(view, "Physical Stats") || strings.Contains(view, "█") {
			t.Errorf("chart drawn for non-numeric mass:\n%s", view)
		}
	})

	t.Run("pending references show a placeholder", func(t *testing.T) {
		t.Parallel()
		m, _, _ := readyModel(t)
		if view := plainView(m); !strings.Contains(view, pendingValue) {
			t.Errorf("expected pending placeholder:\n%s", view)
		}
	})
}

func TestRosterUpdate(t *testing.T) {
	t.Parallel()

	t.Run("new names are merged once", func(t *testing.T) {
		t.Parallel()
		m, _, _ := readyModel(t)

		m, _ = update(t, m, MsgRosterUpdate{Names: []string{"han solo", "Luke Skywalker", "  "}})
		if got := strings.Join(m.Roster.Names(), ","); got != "Luke Skywalker,Darth Vader,Leia Organa,Han Solo" {
			t.Errorf("roster = %s", got)
		}
		if len(m.Messages) != 1 || !strings.Contains(m.Messages[0], "Han Solo") {
			t.Errorf("Messages = %v", m.Messages)
		}
	})

	t.Run("errors are shown but keep the roster", func(t *testing.T) {
		t.Parallel()
		m, _, _ := readyModel(t)

		m, _ = update(t, m, MsgRosterUpdate{Err: errors.New("bad toml")})
		if m.Roster.Len() != 3 {
			t.Errorf("roster changed: %v", m.Roster.Names())
		}
		if view := plainView(m); !strings.Contains(view, "bad toml") {
			t.Errorf("expected error notice:\n%s", view)
		}
	})

	t.Run("messages are bounded", func(t *testing.T) {
		t.Parallel()
		m, _, _ := readyModel(t)
		for i := 0; i < maxMessages+2; i++ {
			m, _ = update(t, m, MsgRosterUpdate{Err: errors.New("bad")})
		}
		if len(m.Messages) != maxMessages {
			t.Errorf("len(Messages) = %d, want %d", len(m.Messages), maxMessages)
		}
	})
}
